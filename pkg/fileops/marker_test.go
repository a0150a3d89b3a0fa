package fileops

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	e "setupgen/pkg/errors"
	"setupgen/pkg/logger"
)

func TestCreatePackageMarker_Single(t *testing.T) {
	dir := t.TempDir()
	var buf bytes.Buffer
	if err := CreatePackageMarker(dir, MarkerOptions{Logger: logger.New(&buf, logger.LevelInfo)}); err != nil {
		t.Fatal(err)
	}
	p := filepath.Join(dir, DefaultMarkerName)
	b, err := os.ReadFile(p)
	if err != nil {
		t.Fatal(err)
	}
	if len(b) != 0 {
		t.Fatalf("expected empty marker, got %q", b)
	}
	if !strings.Contains(buf.String(), p) {
		t.Fatalf("expected marker path logged, got %q", buf.String())
	}
}

func TestCreatePackageMarker_RecursiveTemplate(t *testing.T) {
	root := t.TempDir()
	writeTree(t, root, map[string]string{"a/b/c/": "", "a/file.txt": "x", "a/__init__.py": "old"})

	if err := CreatePackageMarker(root, MarkerOptions{Recursive: true, Template: "pkgutil"}); err != nil {
		t.Fatal(err)
	}
	want, err := templateFS.ReadFile("templates/pkgutil.py")
	if err != nil {
		t.Fatal(err)
	}
	for _, dir := range []string{".", "a", "a/b", "a/b/c"} {
		b, err := os.ReadFile(filepath.Join(root, dir, DefaultMarkerName))
		if err != nil {
			t.Fatalf("marker missing in %s: %v", dir, err)
		}
		if !bytes.Equal(b, want) {
			t.Fatalf("marker in %s = %q, want template content", dir, b)
		}
	}
}

func TestCreatePackageMarker_FileTemplateAndName(t *testing.T) {
	dir := t.TempDir()
	tmpl := filepath.Join(t.TempDir(), "header.py")
	if err := os.WriteFile(tmpl, []byte("# generated\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := CreatePackageMarker(dir, MarkerOptions{Template: tmpl, Name: "__init__.pyi"}); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(filepath.Join(dir, "__init__.pyi"))
	if err != nil || string(b) != "# generated\n" {
		t.Fatalf("unexpected marker %q: %v", b, err)
	}
}

func TestCreatePackageMarker_Errors(t *testing.T) {
	err := CreatePackageMarker(t.TempDir(), MarkerOptions{Template: "no-such-template"})
	if !e.HasCode(err, e.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound for unknown template, got %v", err)
	}
	err = CreatePackageMarker(filepath.Join(t.TempDir(), "missing"), MarkerOptions{})
	if !e.HasCode(err, e.ErrFileNotFound) {
		t.Fatalf("expected ErrFileNotFound for missing dir, got %v", err)
	}
}

func TestTemplateNames(t *testing.T) {
	names := TemplateNames()
	if !equalStrings(names, []string{"pkg_resources", "pkgutil"}) {
		t.Fatalf("unexpected templates: %v", names)
	}
}
