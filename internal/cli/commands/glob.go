package commands

import (
	"fmt"
	"path/filepath"

	"setupgen/internal/config"
	"setupgen/pkg/fileops"
	"setupgen/pkg/logger"
)

const globUsage = "glob <root> [pattern] [--exclude PATTERN] [--kind files|dirs|both] [--abs]"

// Glob prints every entry under root whose base name matches pattern, one
// path per line. The pattern defaults to the configured source pattern.
func Glob(cfg *config.Config, args []string) error {
	cfg = orDefault(cfg)
	p := parseArgs(args)
	exclude, err := p.String("exclude", "")
	if err != nil {
		return err
	}
	kindName, err := p.String("kind", "files")
	if err != nil {
		return err
	}
	kind, err := fileops.ParseKind(kindName)
	if err != nil {
		return err
	}
	abs := p.Bool("--abs", "-a")
	pos, err := p.Positional(globUsage, 1, 2)
	if err != nil {
		return err
	}
	root, pattern := pos[0], cfg.SourcePattern
	if len(pos) == 2 {
		pattern = pos[1]
	}

	matches, err := fileops.RecursiveGlob(root, pattern, fileops.GlobOptions{
		Exclude:  exclude,
		Kind:     kind,
		Absolute: abs,
		Logger:   logger.Default(),
	})
	if err != nil {
		return err
	}
	for _, m := range matches {
		fmt.Println(filepath.ToSlash(m))
	}
	logger.Verbosef("%d entries matched %q under %s", len(matches), pattern, root)
	return nil
}
