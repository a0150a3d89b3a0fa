package fileops

import (
	"context"
	stdErrors "errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	e "setupgen/pkg/errors"
	"setupgen/pkg/logger"
)

// WatchOptions configures a Watcher.
type WatchOptions struct {
	// Copy controls how files are mirrored, exactly as for CopyTree.
	Copy CopyOptions
	// Logger receives one info line per synced change.
	Logger *logger.Logger
}

// Watcher keeps a destination tree in step with a source tree: it mirrors
// new directories, links or copies created and written source files, and
// removes destination entries whose sources disappear.
type Watcher struct {
	src     string
	dst     string
	opts    WatchOptions
	match   *matcher
	watcher *fsnotify.Watcher
}

// NewWatcher mirrors srcRoot into dstRoot once and starts watching every
// directory under srcRoot. Call Run to process changes and Close when done.
func NewWatcher(srcRoot, dstRoot string, opts WatchOptions) (*Watcher, error) {
	src, err := filepath.Abs(srcRoot)
	if err != nil {
		return nil, e.WrapFS(err, "resolve "+srcRoot)
	}
	m, err := newMatcher(opts.Copy.pattern(), opts.Copy.exclude())
	if err != nil {
		return nil, err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, e.Wrap(err, e.ErrFilesystem, "start file watcher")
	}
	w := &Watcher{src: src, dst: dstRoot, opts: opts, match: m, watcher: fw}
	if err := w.syncDir(src, dstRoot); err != nil {
		fw.Close()
		return nil, err
	}
	return w, nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}

// Run processes filesystem events until ctx is cancelled, returning nil in
// that case, or until the underlying watcher fails.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return nil
			}
			if err := w.handle(ev); err != nil {
				w.opts.Logger.Warnf("sync %s: %v", ev.Name, err)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return nil
			}
			return e.Wrap(err, e.ErrFilesystem, "file watcher failed")
		}
	}
}

// Watch mirrors srcRoot into dstRoot and keeps it in sync until ctx is cancelled.
func Watch(ctx context.Context, srcRoot, dstRoot string, opts WatchOptions) error {
	w, err := NewWatcher(srcRoot, dstRoot, opts)
	if err != nil {
		return err
	}
	defer w.Close()
	return w.Run(ctx)
}

// syncDir mirrors the subtree at srcDir into dstDir and watches every
// directory in it, srcDir included.
//
// Watches are registered before copying so that anything created while the
// copy runs still produces an event.
func (w *Watcher) syncDir(srcDir, dstDir string) error {
	dirs, err := RecursiveGlob(srcDir, "*", GlobOptions{Kind: Dirs, Absolute: true})
	if err != nil {
		return err
	}
	for _, d := range append([]string{srcDir}, dirs...) {
		if err := w.watcher.Add(d); err != nil {
			return e.Wrap(err, e.ErrFilesystem, "watch "+d).WithContext("path", d)
		}
	}
	if err := ReplicateDirectoryStructure(srcDir, dstDir); err != nil {
		return err
	}
	copyOpts := w.opts.Copy
	if copyOpts.Logger == nil {
		copyOpts.Logger = w.opts.Logger
	}
	_, err = CopyTree(srcDir, dstDir, copyOpts)
	return err
}

func (w *Watcher) handle(ev fsnotify.Event) error {
	rel, err := filepath.Rel(w.src, ev.Name)
	if err != nil || rel == "." {
		return nil
	}
	dst := filepath.Join(w.dst, rel)

	switch {
	case ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename):
		return w.remove(ev.Name, dst)
	case ev.Has(fsnotify.Create):
		fi, err := os.Stat(ev.Name)
		if err != nil {
			// Gone again before we looked.
			return nil
		}
		if fi.IsDir() {
			w.opts.Logger.Infof("mirrored directory %s", dst)
			return w.syncDir(ev.Name, dst)
		}
		return w.syncFile(ev.Name, dst)
	case ev.Has(fsnotify.Write) || ev.Has(fsnotify.Chmod):
		if w.opts.Copy.Symlink {
			return nil
		}
		return w.syncFile(ev.Name, dst)
	}
	return nil
}

func (w *Watcher) syncFile(src, dst string) error {
	if !w.match.Match(filepath.Base(src)) {
		return nil
	}
	if w.opts.Copy.Symlink {
		if err := LinkFile(src, dst); err != nil {
			return err
		}
		w.opts.Logger.Infof("linked %s", dst)
		return nil
	}
	changed, err := CopyFile(src, dst)
	if err != nil {
		return err
	}
	if changed {
		w.opts.Logger.Infof("copied %s", dst)
	}
	return nil
}

func (w *Watcher) remove(src, dst string) error {
	fi, err := os.Lstat(dst)
	if err != nil {
		if stdErrors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return e.WrapFS(err, "stat "+dst)
	}
	if fi.IsDir() {
		if err := os.RemoveAll(dst); err != nil {
			return e.WrapFS(err, "remove "+dst)
		}
		w.opts.Logger.Infof("removed directory %s", dst)
		return nil
	}
	if !w.match.Match(filepath.Base(src)) {
		return nil
	}
	if err := os.Remove(dst); err != nil && !stdErrors.Is(err, fs.ErrNotExist) {
		return e.WrapFS(err, "remove "+dst)
	}
	w.opts.Logger.Infof("removed %s", dst)
	return nil
}
