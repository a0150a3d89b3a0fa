package commands

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"setupgen/internal/config"
	"setupgen/pkg/fileops"
	"setupgen/pkg/logger"
	"setupgen/pkg/terminal"
)

const watchUsage = "watch <src> <dst> [--symlink|--copy] [--pattern P] [--exclude P]"

// Watch mirrors src into dst and keeps it in sync until interrupted.
func Watch(cfg *config.Config, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return watch(ctx, cfg, args)
}

func watch(ctx context.Context, cfg *config.Config, args []string) error {
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
	pos, err := p.Positional(watchUsage, 2, 2)
	if err != nil {
		return err
	}

	w, err := fileops.NewWatcher(pos[0], pos[1], fileops.WatchOptions{
		Copy: fileops.CopyOptions{
			Symlink: symlink,
			Pattern: pattern,
			Exclude: exclude,
		},
		Logger: logger.Default(),
	})
	if err != nil {
		return err
	}
	defer w.Close()

	fmt.Printf("%s Watching %s %s %s (Ctrl+C to stop)\n", terminal.IconWatch, pos[0], terminal.IconArrow, pos[1])
	return w.Run(ctx)
}
