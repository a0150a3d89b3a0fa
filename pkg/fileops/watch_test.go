package fileops

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"
)

func waitFor(t *testing.T, what string, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(5 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(20 * time.Millisecond)
	}
	t.Fatalf("timed out waiting for %s", what)
}

func exists(p string) bool {
	_, err := os.Lstat(p)
	return err == nil
}

func TestWatcher_MirrorsChanges(t *testing.T) {
	src := t.TempDir()
	writeTree(t, src, fixtureTree)
	dst := filepath.Join(t.TempDir(), "mirror")

	w, err := NewWatcher(src, dst, WatchOptions{})
	if err != nil {
		t.Fatalf("NewWatcher: %v", err)
	}
	defer w.Close()

	// Initial sync happens before NewWatcher returns.
	if !exists(filepath.Join(dst, "pkg", "sub", "deep", "leaf.py")) {
		t.Fatal("expected initial copy")
	}
	if exists(filepath.Join(dst, "pkg", "__init__.py")) {
		t.Fatal("markers must not be copied")
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	newFile := filepath.Join(src, "pkg", "new.py")
	if err := os.WriteFile(newFile, []byte("z = 3\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "new file copied", func() bool {
		b, err := os.ReadFile(filepath.Join(dst, "pkg", "new.py"))
		return err == nil && string(b) == "z = 3\n"
	})

	if err := os.MkdirAll(filepath.Join(src, "pkg", "fresh"), 0o755); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "new directory mirrored", func() bool {
		return exists(filepath.Join(dst, "pkg", "fresh"))
	})
	if err := os.WriteFile(filepath.Join(src, "pkg", "fresh", "mod.py"), []byte("m\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "file in new directory copied", func() bool {
		return exists(filepath.Join(dst, "pkg", "fresh", "mod.py"))
	})

	if err := os.Remove(filepath.Join(src, "pkg", "core.py")); err != nil {
		t.Fatal(err)
	}
	waitFor(t, "removed file deleted", func() bool {
		return !exists(filepath.Join(dst, "pkg", "core.py"))
	})

	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run returned %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not stop after cancel")
	}
}
