package commands

import (
	"fmt"
	"strings"

	"setupgen/internal/config"
	"setupgen/pkg/fileops"
	"setupgen/pkg/logger"
	"setupgen/pkg/terminal"
)

const initUsage = "init <path> [--recursive] [--template NAME|FILE] [--name FILE] | init --list-templates"

// Init writes package-marker files into path, or into every directory
// below it with --recursive.
func Init(cfg *config.Config, args []string) error {
	cfg = orDefault(cfg)
	p := parseArgs(args)
	if p.Bool("--list-templates") {
		for _, name := range fileops.TemplateNames() {
			fmt.Printf("  %s %s\n", terminal.IconDot, name)
		}
		return nil
	}
	template, err := p.String("template", cfg.MarkerTemplate)
	if err != nil {
		return err
	}
	name, err := p.String("name", cfg.MarkerName)
	if err != nil {
		return err
	}
	recursive := p.Bool("--recursive", "-r")
	pos, err := p.Positional(initUsage, 1, 1)
	if err != nil {
		return err
	}

	err = fileops.CreatePackageMarker(pos[0], fileops.MarkerOptions{
		Recursive: recursive,
		Template:  template,
		Name:      name,
		Logger:    logger.Default(),
	})
	if err != nil {
		return err
	}

	scope := pos[0]
	if recursive {
		scope = "every directory under " + pos[0]
	}
	detail := ""
	if template != "" {
		detail = " from " + strings.TrimSpace(template)
	}
	fmt.Printf("%s Wrote %s%s in %s\n", terminal.IconPackage, name, detail, scope)
	return nil
}
