package main

import (
	"os"
	"strings"
	"testing"
)

func TestParseGlobalFlags(t *testing.T) {
	env := map[string]string{}
	getenv := func(k string) string { return env[k] }

	args, verbose, debug := parseGlobalFlags([]string{"setupgen", "--verbose", "copy", "a", "b"}, getenv)
	if !verbose || debug {
		t.Fatalf("verbose=%v debug=%v", verbose, debug)
	}
	if strings.Join(args, " ") != "setupgen copy a b" {
		t.Fatalf("args = %v", args)
	}

	args, _, debug = parseGlobalFlags([]string{"setupgen", "run", "--", "tool", "--debug"}, getenv)
	if debug {
		t.Fatal("--debug after -- belongs to the child command")
	}
	if strings.Join(args, " ") != "setupgen run -- tool --debug" {
		t.Fatalf("args = %v", args)
	}

	env["SETUPGEN_DEBUG"] = "1"
	if _, _, debug = parseGlobalFlags([]string{"setupgen"}, getenv); !debug {
		t.Fatal("SETUPGEN_DEBUG=1 should enable debug")
	}
}

func TestExitStatus(t *testing.T) {
	for in, want := range map[int]int{0: 0, 3: 3, -9: 137, -15: 143} {
		if got := exitStatus(in); got != want {
			t.Errorf("exitStatus(%d) = %d, want %d", in, got, want)
		}
	}
}

func TestMain_Version(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	old := os.Args
	os.Args = []string{"setupgen", "version"}
	defer func() { os.Args = old }()
	main()
}

func TestMain_NoArgs(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	old := os.Args
	os.Args = []string{"setupgen"}
	defer func() { os.Args = old }()
	main()
}
