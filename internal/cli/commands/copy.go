package commands

import (
	stdErrors "errors"
	"fmt"

	"setupgen/internal/config"
	e "setupgen/pkg/errors"
	"setupgen/pkg/fileops"
	"setupgen/pkg/logger"
	"setupgen/pkg/terminal"
)

const copyUsage = "copy <src> <dst> [--symlink|--copy] [--pattern P] [--exclude P] [--keep-markers] [--no-mkdir]"

// Copy mirrors the source files of src into dst, as symlinks or copies.
// The destination layout is created first unless --no-mkdir is given; a
// destination directory that is still missing is created on demand and the
// copy retried.
func Copy(cfg *config.Config, args []string) error {
	cfg = orDefault(cfg)
	p := parseArgs(args)
	pattern, err := p.String("pattern", cfg.SourcePattern)
	if err != nil {
		return err
	}
	exclude, err := p.String("exclude", cfg.MarkerExclude)
	if err != nil {
		return err
	}
	symlink := cfg.Symlink
	if p.Bool("--symlink", "-s") {
		symlink = true
	}
	if p.Bool("--copy") {
		symlink = false
	}
	keepMarkers := p.Bool("--keep-markers")
	noMkdir := p.Bool("--no-mkdir")
	pos, err := p.Positional(copyUsage, 2, 2)
	if err != nil {
		return err
	}
	src, dst := pos[0], pos[1]

	logger.StartTimer("copy " + src)
	defer logger.EndTimer("copy " + src)

	if !noMkdir {
		if err := fileops.ReplicateDirectoryStructure(src, dst); err != nil {
			return err
		}
	}

	verb := "Copying"
	if symlink {
		verb = "Linking"
	}
	var bar *terminal.ProgressBar
	opts := fileops.CopyOptions{
		Symlink:     symlink,
		Pattern:     pattern,
		Exclude:     exclude,
		KeepMarkers: keepMarkers,
		Logger:      logger.Default(),
		Progress: func(done, total int) {
			if bar == nil {
				bar = terminal.NewProgressBar(total, verb)
			}
			bar.Update(done)
		},
	}

	report, err := copyWithRecovery(src, dst, opts)
	if bar != nil {
		bar.Finish()
	}
	if err != nil {
		return err
	}

	if symlink {
		fmt.Printf("%s Linked %d files into %s\n", terminal.IconLink, report.Linked, dst)
	} else {
		fmt.Printf("%s Copied %d files into %s (%d unchanged)\n", terminal.IconFile, report.Copied, dst, report.Unchanged)
	}
	return nil
}

// copyWithRecovery runs CopyTree, repairing each missing destination
// directory it reports and retrying. A directory that is reported missing
// twice ends the attempt.
func copyWithRecovery(src, dst string, opts fileops.CopyOptions) (fileops.CopyReport, error) {
	recoverer := e.NewRecoverer(false)
	repaired := map[string]bool{}
	for {
		report, err := fileops.CopyTree(src, dst, opts)
		var se *e.Error
		if err == nil || !stdErrors.As(err, &se) || !se.Recoverable {
			return report, err
		}
		dir := se.Context["dir"]
		if repaired[dir] {
			return report, err
		}
		if recErr := recoverer.Recover(se); recErr != nil {
			return report, err
		}
		repaired[dir] = true
		logger.Verbosef("created missing destination directory %s", dir)
	}
}
