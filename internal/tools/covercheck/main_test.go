package main

import (
	"strings"
	"testing"
)

const sampleProfile = `mode: set
setupgen/pkg/fileops/copy.go:10.2,12.3 4 1
setupgen/pkg/fileops/copy.go:14.2,15.3 1 0
setupgen/pkg/option/option.go:5.1,9.2 2 0
setupgen/pkg/option/option.go:11.1,12.2 2 1
setupgen/pkg/option/option_test.go:1.1,2.2 9 0
setupgen/internal/cli/cli.go:1.1,2.2 5 0
garbage line
`

func TestCheck(t *testing.T) {
	failed, err := check(strings.NewReader(sampleProfile), 75, []string{"setupgen/pkg/"})
	if err != nil {
		t.Fatal(err)
	}
	if len(failed) != 1 || !strings.HasPrefix(failed[0], "setupgen/pkg/option/option.go: 50.0%") {
		t.Fatalf("unexpected failures %v", failed)
	}
}

func TestCheck_NoFilter(t *testing.T) {
	failed, err := check(strings.NewReader(sampleProfile), 75, nil)
	if err != nil {
		t.Fatal(err)
	}
	if len(failed) != 2 || !strings.HasPrefix(failed[0], "setupgen/internal/cli/cli.go: 0.0%") {
		t.Fatalf("unexpected failures %v", failed)
	}
}

func TestSplitFilters(t *testing.T) {
	got := splitFilters(" a/, ,b ")
	if len(got) != 2 || got[0] != "a/" || got[1] != "b" {
		t.Fatalf("got %v", got)
	}
}
