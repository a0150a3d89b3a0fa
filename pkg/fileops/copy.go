package fileops

import (
	stdErrors "errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	e "setupgen/pkg/errors"
	"setupgen/pkg/logger"
)

const (
	// DefaultSourcePattern selects the source files CopyTree mirrors.
	DefaultSourcePattern = "*.py"
	// DefaultMarkerExclude keeps package-marker files out of CopyTree;
	// they are written by CreatePackageMarker instead.
	DefaultMarkerExclude = "__init__*"
)

// CopyOptions configures CopyTree.
type CopyOptions struct {
	// Symlink links destination files to their sources instead of copying.
	Symlink bool
	// Pattern selects source files. Empty means DefaultSourcePattern.
	Pattern string
	// Exclude drops matching files. Empty means DefaultMarkerExclude.
	Exclude string
	// KeepMarkers disables the exclude pattern entirely.
	KeepMarkers bool
	// Logger receives one verbose line per file written.
	Logger *logger.Logger
	// Progress, when set, is called after each file with the number done
	// so far and the number selected.
	Progress func(done, total int)
}

func (o CopyOptions) pattern() string {
	if o.Pattern == "" {
		return DefaultSourcePattern
	}
	return o.Pattern
}

func (o CopyOptions) exclude() string {
	switch {
	case o.KeepMarkers:
		return ""
	case o.Exclude == "":
		return DefaultMarkerExclude
	}
	return o.Exclude
}

// CopyReport counts what CopyTree did.
type CopyReport struct {
	Linked    int
	Copied    int
	Unchanged int
}

// Total is the number of source files visited.
func (r CopyReport) Total() int {
	return r.Linked + r.Copied + r.Unchanged
}

// CopyTree mirrors every selected file under srcRoot to the same relative
// path under dstRoot, either as a symlink to the absolute source path or as
// a copy preserving contents, permission bits, and modification time.
//
// Destination directories must already exist (see
// ReplicateDirectoryStructure); a missing one is an ErrMissingParent error
// carrying the directory in its "dir" context key. Existing destination
// entries are replaced, so running CopyTree twice leaves one entry per file.
func CopyTree(srcRoot, dstRoot string, opts CopyOptions) (CopyReport, error) {
	var report CopyReport

	absSrc, err := filepath.Abs(srcRoot)
	if err != nil {
		return report, e.WrapFS(err, "resolve "+srcRoot)
	}
	files, err := RecursiveGlob(absSrc, opts.pattern(), GlobOptions{
		Exclude: opts.exclude(),
		Kind:    Files,
		Logger:  opts.Logger,
	})
	if err != nil {
		return report, err
	}

	for i, rel := range files {
		if opts.Progress != nil && i > 0 {
			opts.Progress(i, len(files))
		}
		src := filepath.Join(absSrc, rel)
		dst := filepath.Join(dstRoot, rel)
		if opts.Symlink {
			if err := LinkFile(src, dst); err != nil {
				return report, err
			}
			report.Linked++
			opts.Logger.Verbosef("linked %s -> %s", dst, src)
			continue
		}
		changed, err := CopyFile(src, dst)
		if err != nil {
			return report, err
		}
		if changed {
			report.Copied++
			opts.Logger.Verbosef("copied %s -> %s", src, dst)
		} else {
			report.Unchanged++
		}
	}
	if opts.Progress != nil && len(files) > 0 {
		opts.Progress(len(files), len(files))
	}
	return report, nil
}

// LinkFile makes dst a symlink to src, replacing whatever entry dst held.
func LinkFile(src, dst string) error {
	if err := os.Remove(dst); err != nil && !stdErrors.Is(err, fs.ErrNotExist) {
		return e.WrapFS(err, "remove "+dst).WithContext("path", dst)
	}
	if err := os.Symlink(src, dst); err != nil {
		return destinationError(err, "link "+dst, dst)
	}
	return nil
}

// CopyFile copies src to dst preserving permission bits and modification
// time. A symlink at dst is removed first so the copy never writes through
// it. When dst already holds the same bytes only its metadata is refreshed
// and changed is false.
func CopyFile(src, dst string) (changed bool, err error) {
	srcInfo, err := os.Stat(src)
	if err != nil {
		return false, e.WrapFS(err, "stat "+src)
	}

	if dstInfo, lerr := os.Lstat(dst); lerr == nil {
		switch {
		case dstInfo.Mode()&fs.ModeSymlink != 0:
			if err := os.Remove(dst); err != nil {
				return false, e.WrapFS(err, "remove link "+dst)
			}
		case dstInfo.Mode().IsRegular() && dstInfo.Size() == srcInfo.Size():
			same, err := sameContent(src, dst)
			if err != nil {
				return false, err
			}
			if same {
				return false, applyMetadata(dst, srcInfo)
			}
		}
	}

	in, err := os.Open(src)
	if err != nil {
		return false, e.WrapFS(err, "open "+src)
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, srcInfo.Mode().Perm())
	if err != nil {
		return false, destinationError(err, "create "+dst, dst)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return false, e.WrapFS(err, "copy "+src)
	}
	if err := out.Close(); err != nil {
		return false, e.WrapFS(err, "close "+dst)
	}
	return true, applyMetadata(dst, srcInfo)
}

func applyMetadata(dst string, srcInfo fs.FileInfo) error {
	if err := os.Chmod(dst, srcInfo.Mode().Perm()); err != nil {
		return e.WrapFS(err, "chmod "+dst)
	}
	mtime := srcInfo.ModTime()
	if err := os.Chtimes(dst, mtime, mtime); err != nil {
		return e.WrapFS(err, "set times on "+dst)
	}
	return nil
}

// destinationError classifies a failure to create dst, reporting a missing
// parent directory as ErrMissingParent.
func destinationError(err error, message, dst string) error {
	if stdErrors.Is(err, fs.ErrNotExist) {
		dir := filepath.Dir(dst)
		if _, statErr := os.Stat(dir); stdErrors.Is(statErr, fs.ErrNotExist) {
			return e.New(e.ErrMissingParent, "destination directory "+dir+" does not exist").
				WithCause(err).
				WithContext("dir", dir).
				WithContext("path", dst)
		}
	}
	return e.WrapFS(err, message).WithContext("path", dst)
}
