package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/g-m-twostay/go-containers/Values"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	config := filepath.Join(t.TempDir(), "absent.yaml")
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs(append([]string{"--config", config}, args...))
	err := cmd.Execute()
	return strings.TrimSpace(out.String()), err
}

func TestSortCmd(t *testing.T) {
	got, err := run(t, "sort", "5", "3,8", "1", "9,2")
	if err != nil {
		t.Fatal(err)
	}
	if got != "[1, 2, 3, 5, 8, 9]" {
		t.Errorf("sort printed %s", got)
	}
	if got, _ = run(t, "sort", "-k", "text", "pear", "apple"); got != "[apple, pear]" {
		t.Errorf("text sort printed %s", got)
	}
	if _, err = run(t, "sort", "x"); err == nil {
		t.Errorf("sorting a non integer succeeded")
	}
	if _, err = run(t, "sort", "-k", "complex", "1"); err == nil {
		t.Errorf("unknown kind was accepted")
	}
}

func TestMergeCmd(t *testing.T) {
	got, err := run(t, "merge", "1,4,7", "2,3,9")
	if err != nil {
		t.Fatal(err)
	}
	if got != "[1, 2, 3, 4, 7, 9]" {
		t.Errorf("merge printed %s", got)
	}
	if got, _ = run(t, "merge", "7,1", "2"); got != "[1, 2, 7]" {
		t.Errorf("merge of unsorted lists printed %s", got)
	}
	if got, _ = run(t, "merge", "--presorted", "7,1", "8"); got != "[7, 1, 8]" {
		t.Errorf("presorted merge printed %s", got)
	}
}

func TestTreeCmd(t *testing.T) {
	got, err := run(t, "tree", "5,3,8,1,9,2", "--remove", "5")
	if err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(got, "\n")
	if len(lines) != 3 {
		t.Fatalf("tree printed %q", got)
	}
	if lines[1] != "in-order: [1, 2, 3, 8, 9]" || lines[2] != "height: 2" {
		t.Errorf("tree printed %q", got)
	}
	if got, _ = run(t, "tree", "--invert", "1,2,3"); !strings.Contains(got, "in-order: [3, 2, 1]") {
		t.Errorf("inverted tree printed %q", got)
	}
}

func TestLoadConfig(t *testing.T) {
	dir := t.TempDir()
	c, err := LoadConfig(filepath.Join(dir, "missing.yaml"))
	if err != nil || *c != defaultConfig {
		t.Errorf("missing config gave %v, %v", c, err)
	}
	path := filepath.Join(dir, "c.yaml")
	os.WriteFile(path, []byte("kind: float\n"), 0644)
	if c, err = LoadConfig(path); err != nil || c.Kind != "float" || c.LogLevel != "info" {
		t.Errorf("config is %+v, %v", c, err)
	}
	os.WriteFile(path, []byte("kind: [\n"), 0644)
	if _, err = LoadConfig(path); err == nil {
		t.Errorf("malformed config was accepted")
	}
	if _, err = (&Config{LogLevel: "loud"}).Logger(); err == nil {
		t.Errorf("invalid log level was accepted")
	}
}

func TestConfigKind(t *testing.T) {
	path := filepath.Join(t.TempDir(), "c.yaml")
	os.WriteFile(path, []byte("kind: float\nlog_level: error\n"), 0644)
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"--config", path, "sort", "2.5,1"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if got := strings.TrimSpace(out.String()); got != "[1.00, 2.50]" {
		t.Errorf("float sort printed %s", got)
	}
}

func TestParseValue(t *testing.T) {
	cases := []struct {
		s    string
		k    Values.Kind
		want string
	}{
		{"-4", Values.Int, "-4"},
		{"0.126", Values.Float, "0.13"},
		{"é", Values.Char, "é"},
		{"true", Values.Bool, "true"},
		{"a,b", Values.Text, "a,b"},
		{"0x0aff", Values.Opaque, "0x0aff"},
	}
	for _, c := range cases {
		v, err := parseValue(c.s, c.k)
		if err != nil || v.String() != c.want || v.Kind() != c.k {
			t.Errorf("parse %q as %s gave %v, %v", c.s, c.k, v, err)
		}
	}
	for _, bad := range []struct {
		s string
		k Values.Kind
	}{{"ab", Values.Char}, {"yes?", Values.Bool}, {"zz", Values.Opaque}, {"1.5", Values.Int}} {
		if _, err := parseValue(bad.s, bad.k); err == nil {
			t.Errorf("parse %q as %s succeeded", bad.s, bad.k)
		}
	}
}
