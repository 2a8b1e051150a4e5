// Command containers exercises the container engine from the command line: it
// sorts and merges sequences of values and builds balanced trees out of them.
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/g-m-twostay/go-containers/Lists"
	"github.com/g-m-twostay/go-containers/Trees"
	"github.com/g-m-twostay/go-containers/Values"
	"github.com/spf13/cobra"
)

type app struct {
	configPath, kindFlag string
	kind                 Values.Kind
	log                  *slog.Logger
}

func (a *app) setup(cmd *cobra.Command) error {
	config, err := LoadConfig(a.configPath)
	if err != nil {
		return err
	}
	if a.log, err = config.Logger(); err != nil {
		return err
	}
	kind := config.Kind
	if cmd.Flags().Changed("kind") {
		kind = a.kindFlag
	}
	if a.kind, err = parseKind(kind); err != nil {
		return err
	}
	a.log.Debug("configured", "kind", a.kind, "config", a.configPath)
	return nil
}

func (a *app) sortCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "sort VALUE...",
		Short: "Sort the values in ascending order",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseSequence(args, a.kind)
			if err != nil {
				return err
			}
			seq.Sort()
			a.log.Debug("sorted", "len", seq.Len())
			_, err = fmt.Fprintln(cmd.OutOrStdout(), seq)
			return err
		},
	}
}

func (a *app) mergeCmd() *cobra.Command {
	var presorted bool
	cmd := &cobra.Command{
		Use:   "merge LIST LIST",
		Short: "Merge two comma separated lists into one sorted list",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			var seqs [2]*Lists.Sequence
			for i, arg := range args {
				seq, err := parseSequence([]string{arg}, a.kind)
				if err != nil {
					return err
				}
				if !presorted {
					seq.Sort()
				}
				seqs[i] = seq
			}
			m := Lists.Merge(seqs[0], seqs[1])
			a.log.Debug("merged", "left", seqs[0].Len(), "right", seqs[1].Len())
			_, err := fmt.Fprintln(cmd.OutOrStdout(), m)
			return err
		},
	}
	cmd.Flags().BoolVar(&presorted, "presorted", false, "the lists are already sorted, don't sort them first")
	return cmd
}

func (a *app) treeCmd() *cobra.Command {
	var (
		remove []string
		invert bool
	)
	cmd := &cobra.Command{
		Use:   "tree VALUE...",
		Short: "Insert the values into a balanced tree and print it",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			seq, err := parseSequence(args, a.kind)
			if err != nil {
				return err
			}
			tree := Trees.New()
			for v, err := seq.PopFront(); err == nil; v, err = seq.PopFront() {
				if ok, err := tree.Insert(v); err != nil {
					return err
				} else if !ok {
					a.log.Warn("duplicate value skipped", "value", v)
				}
			}
			rm, err := parseSequence(remove, a.kind)
			if err != nil {
				return err
			}
			rm.Range(func(v Values.Value) bool {
				if !tree.Remove(v) {
					a.log.Warn("value to remove not found", "value", v)
				}
				return true
			})
			if invert {
				tree.Invert()
			}
			inOrder := Lists.New()
			tree.InOrder(func(v Values.Value) bool {
				inOrder.PushBack(v)
				return true
			})
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, tree)
			fmt.Fprintln(out, "in-order:", inOrder)
			_, err = fmt.Fprintln(out, "height:", tree.Height())
			return err
		},
	}
	cmd.Flags().StringSliceVar(&remove, "remove", nil, "values to remove after inserting")
	cmd.Flags().BoolVar(&invert, "invert", false, "mirror the tree before printing")
	return cmd
}

func newRootCmd() *cobra.Command {
	a := new(app)
	root := &cobra.Command{
		Use:           "containers",
		Short:         "Sort, merge and build trees of values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", "", "config file (default ~/"+configName+")")
	root.PersistentFlags().StringVarP(&a.kindFlag, "kind", "k", defaultConfig.Kind, "kind of the values: int, float, char, bool, text or opaque")
	root.AddCommand(a.sortCmd(), a.mergeCmd(), a.treeCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "containers:", err)
		os.Exit(1)
	}
}
