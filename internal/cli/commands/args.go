// Package commands implements the setupgen subcommands. Each command is a
// function taking the loaded configuration and its own arguments; the cli
// package routes to them by name.
package commands

import (
	"fmt"
	"strings"

	"setupgen/internal/config"
	e "setupgen/pkg/errors"
	"setupgen/pkg/option"
)

// ExitError asks the entry point to exit with Code without printing an
// error, for commands whose exit status is itself the result.
type ExitError struct {
	Code int
}

func (x *ExitError) Error() string {
	return fmt.Sprintf("exit status %d", x.Code)
}

// argParser pulls flags out of a command's arguments. Valued flags accept
// both --name value and --name=value; whatever is left is positional.
type argParser struct {
	args *option.Args
}

func parseArgs(args []string) *argParser {
	return &argParser{args: option.New(args).WithLookup(nil)}
}

// String returns the value of --name, or def when absent.
func (p *argParser) String(name, def string) (string, error) {
	v, found, err := p.args.Value(name)
	if err != nil {
		return "", err
	}
	if !found {
		return def, nil
	}
	return v, nil
}

// Strings returns every value given for a repeatable --name.
func (p *argParser) Strings(name string) ([]string, error) {
	var out []string
	for {
		v, found, err := p.args.Value(name)
		if err != nil {
			return nil, err
		}
		if !found {
			return out, nil
		}
		out = append(out, v)
	}
}

// Bool removes every occurrence of the given switches and reports whether
// any was present.
func (p *argParser) Bool(names ...string) bool {
	rest := p.args.Remaining()
	kept := rest[:0]
	seen := false
	for _, a := range rest {
		if contains(names, a) {
			seen = true
			continue
		}
		kept = append(kept, a)
	}
	p.args = option.New(kept).WithLookup(nil)
	return seen
}

// Positional returns the remaining arguments, rejecting leftover flags and
// enforcing the expected count.
func (p *argParser) Positional(usage string, min, max int) ([]string, error) {
	rest := p.args.Remaining()
	for _, a := range rest {
		if strings.HasPrefix(a, "-") && a != "-" {
			return nil, usageError(usage, "unknown flag "+a)
		}
	}
	if len(rest) < min || (max >= 0 && len(rest) > max) {
		return nil, usageError(usage, "wrong number of arguments")
	}
	return rest, nil
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}

// splitDashDash separates arguments at the first "--".
func splitDashDash(args []string) (before, after []string, found bool) {
	for i, a := range args {
		if a == "--" {
			return args[:i], args[i+1:], true
		}
	}
	return args, nil, false
}

func usageError(usage, problem string) error {
	return e.New(e.ErrUsage, problem).WithDetails("Usage: setupgen " + usage)
}

func orDefault(cfg *config.Config) *config.Config {
	if cfg == nil {
		return config.Default()
	}
	return cfg
}
