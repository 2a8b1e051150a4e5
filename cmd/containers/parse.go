package main

import (
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/g-m-twostay/go-containers/Lists"
	"github.com/g-m-twostay/go-containers/Values"
)

// parseValue reads s as a Value of kind k. Opaque values are given in hex.
func parseValue(s string, k Values.Kind) (Values.Value, error) {
	switch k {
	case Values.Int:
		i, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return Values.Value{}, err
		}
		return Values.FromInt(i), nil
	case Values.Float:
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return Values.Value{}, err
		}
		return Values.FromFloat(f), nil
	case Values.Char:
		r, n := utf8.DecodeRuneInString(s)
		if r == utf8.RuneError || n != len(s) {
			return Values.Value{}, fmt.Errorf("%q is not a single character", s)
		}
		return Values.FromChar(r), nil
	case Values.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return Values.Value{}, err
		}
		return Values.FromBool(b), nil
	case Values.Text:
		return Values.FromText(s), nil
	}
	b, err := hex.DecodeString(strings.TrimPrefix(s, "0x"))
	if err != nil {
		return Values.Value{}, err
	}
	return Values.FromBytes(b), nil
}

func parseKind(s string) (Values.Kind, error) {
	if k, ok := Values.ParseKind(s); ok {
		return k, nil
	}
	return Values.Opaque, fmt.Errorf("unknown kind %q", s)
}

// parseSequence reads every argument, splitting them further at commas unless k is Text.
func parseSequence(args []string, k Values.Kind) (*Lists.Sequence, error) {
	seq := Lists.New()
	for _, a := range args {
		parts := []string{a}
		if k != Values.Text {
			parts = strings.Split(a, ",")
		}
		for _, p := range parts {
			if p = strings.TrimSpace(p); p == "" {
				continue
			}
			v, err := parseValue(p, k)
			if err != nil {
				return nil, fmt.Errorf("bad %s value %q: %w", k, p, err)
			}
			seq.PushBack(v)
		}
	}
	return seq, nil
}
