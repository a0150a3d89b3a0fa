package commands

import (
	"os"
	"strings"

	"setupgen/internal/config"
	e "setupgen/pkg/errors"
	"setupgen/pkg/logger"
	"setupgen/pkg/runner"
)

const runUsage = "run [--cwd DIR] [--env KEY=VALUE]... [--shell|--no-shell] -- <command> [args...]"

// Run executes a command, logging its combined output line by line. A
// non-zero exit status is returned as an *ExitError carrying the code.
func Run(cfg *config.Config, args []string) error {
	cfg = orDefault(cfg)
	flags, argv, dashed := splitDashDash(args)
	p := parseArgs(flags)
	dir, err := p.String("cwd", "")
	if err != nil {
		return err
	}
	pairs, err := p.Strings("env")
	if err != nil {
		return err
	}
	shell := runner.ShellAuto
	if p.Bool("--shell") {
		shell = runner.ShellAlways
	}
	if p.Bool("--no-shell") {
		shell = runner.ShellNever
	}
	rest, err := p.Positional(runUsage, 0, -1)
	if err != nil {
		return err
	}
	if !dashed {
		argv = rest
	} else if len(rest) > 0 {
		return usageError(runUsage, "unexpected arguments before --: "+strings.Join(rest, " "))
	}
	if len(argv) == 0 {
		return usageError(runUsage, "no command given")
	}

	env, err := mergeEnv(os.Environ(), pairs)
	if err != nil {
		return err
	}

	opts := runner.Options{
		Dir:          dir,
		Env:          env,
		Shell:        shell,
		PollInterval: cfg.PollInterval(),
	}
	if l := logger.Default(); l != nil {
		opts.Logger = l
	}

	logger.StartTimer("run " + argv[0])
	code, err := runner.Run(argv, opts)
	logger.EndTimer("run " + argv[0])
	if err != nil {
		return err
	}
	if code != 0 {
		return &ExitError{Code: code}
	}
	return nil
}

// mergeEnv overlays KEY=VALUE pairs on base. A nil map is never returned so
// the child always gets exactly this environment.
func mergeEnv(base, pairs []string) (map[string]string, error) {
	env := make(map[string]string, len(base)+len(pairs))
	for _, kv := range base {
		if k, v, ok := strings.Cut(kv, "="); ok && k != "" {
			env[k] = v
		}
	}
	for _, kv := range pairs {
		k, v, ok := strings.Cut(kv, "=")
		if !ok || k == "" {
			return nil, e.New(e.ErrUsage, "invalid --env value "+kv).
				WithSuggestion("Use --env KEY=VALUE")
		}
		env[k] = v
	}
	return env, nil
}
