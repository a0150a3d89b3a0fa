package fileops

import (
	"os"
	"path/filepath"
	"sort"
	"testing"
)

// writeTree creates the given files (with content) under root. Paths ending
// in "/" create directories.
func writeTree(t *testing.T, root string, entries map[string]string) {
	t.Helper()
	for rel, content := range entries {
		p := filepath.Join(root, filepath.FromSlash(rel))
		if rel[len(rel)-1] == '/' {
			if err := os.MkdirAll(p, 0o755); err != nil {
				t.Fatal(err)
			}
			continue
		}
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
			t.Fatal(err)
		}
	}
}

func sorted(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = filepath.ToSlash(s)
	}
	sort.Strings(out)
	return out
}

func equalStrings(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// fixtureTree is a small package layout used across tests.
var fixtureTree = map[string]string{
	"pkg/__init__.py":          "",
	"pkg/core.py":              "print('core')\n",
	"pkg/data.txt":             "data",
	"pkg/sub/__init__.py":      "",
	"pkg/sub/util.py":          "x = 1\n",
	"pkg/sub/deep/__init__.py": "",
	"pkg/sub/deep/leaf.py":     "y = 2\n",
	"pkg/empty/":               "",
	"setup.py":                 "setup()\n",
}
