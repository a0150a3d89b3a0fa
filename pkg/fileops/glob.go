package fileops

import (
	stdErrors "errors"
	"fmt"
	"io/fs"
	"path/filepath"

	"github.com/gobwas/glob"

	e "setupgen/pkg/errors"
	"setupgen/pkg/logger"
)

// Kind selects which directory entries RecursiveGlob reports.
type Kind int

const (
	// Files reports regular files (and anything else that is not a directory).
	Files Kind = iota
	// Dirs reports directories only.
	Dirs
	// Both reports files and directories.
	Both
)

// String returns the short flag form of k.
func (k Kind) String() string {
	switch k {
	case Dirs:
		return "d"
	case Both:
		return "b"
	default:
		return "f"
	}
}

// ParseKind accepts f/d/b as well as files/dirs/both.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "f", "file", "files", "":
		return Files, nil
	case "d", "dir", "dirs":
		return Dirs, nil
	case "b", "both":
		return Both, nil
	}
	return Files, e.New(e.ErrUsage, fmt.Sprintf("unknown kind %q", s)).
		WithSuggestion("Use one of: f (files), d (dirs), b (both)")
}

// GlobOptions configures RecursiveGlob.
type GlobOptions struct {
	// Exclude drops names matching this glob. Empty excludes nothing.
	Exclude string
	// Kind selects files, directories, or both.
	Kind Kind
	// Absolute returns absolute paths instead of paths relative to root.
	Absolute bool
	// Logger receives debug messages about skipped directories.
	Logger *logger.Logger
}

// matcher tests base names against an include glob and an optional exclude glob.
type matcher struct {
	include glob.Glob
	exclude glob.Glob
}

func newMatcher(pattern, exclude string) (*matcher, error) {
	inc, err := compilePattern(pattern)
	if err != nil {
		return nil, err
	}
	m := &matcher{include: inc}
	if exclude != "" {
		if m.exclude, err = compilePattern(exclude); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func compilePattern(pattern string) (glob.Glob, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, e.Wrap(err, e.ErrInvalidPattern, fmt.Sprintf("invalid pattern %q", pattern)).
			WithContext("pattern", pattern)
	}
	return g, nil
}

// Match reports whether name is selected.
func (m *matcher) Match(name string) bool {
	if !m.include.Match(name) {
		return false
	}
	return m.exclude == nil || !m.exclude.Match(name)
}

// RecursiveGlob walks root and returns every entry of the requested kind
// whose base name matches pattern and does not match opts.Exclude. Patterns
// use shell-glob syntax and are matched against names, never whole paths.
//
// Results are relative to root unless opts.Absolute is set, in lexical walk
// order. The root itself is never reported. A root that does not exist
// yields an empty result and no error; unreadable subdirectories are skipped.
func RecursiveGlob(root, pattern string, opts GlobOptions) ([]string, error) {
	m, err := newMatcher(pattern, opts.Exclude)
	if err != nil {
		return nil, err
	}

	base := root
	if opts.Absolute {
		if base, err = filepath.Abs(root); err != nil {
			return nil, e.WrapFS(err, "resolve "+root)
		}
	}

	var matches []string
	walkErr := filepath.WalkDir(base, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == base && stdErrors.Is(err, fs.ErrNotExist) {
				return nil
			}
			opts.Logger.Debugf("skipping %s: %v", path, err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if path == base {
			return nil
		}
		switch opts.Kind {
		case Files:
			if d.IsDir() {
				return nil
			}
		case Dirs:
			if !d.IsDir() {
				return nil
			}
		}
		if !m.Match(d.Name()) {
			return nil
		}
		if opts.Absolute {
			matches = append(matches, path)
			return nil
		}
		rel, err := filepath.Rel(base, path)
		if err != nil {
			return err
		}
		matches = append(matches, rel)
		return nil
	})
	if walkErr != nil {
		return matches, e.WrapFS(walkErr, "walk "+root)
	}
	return matches, nil
}
