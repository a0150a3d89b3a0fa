package main

import (
	stdErrors "errors"
	"os"
	"strings"

	"setupgen/internal/cli"
	"setupgen/internal/cli/commands"
	"setupgen/internal/config"
	"setupgen/pkg/logger"
)

func main() {
	args, verbose, debug := parseGlobalFlags(os.Args, os.Getenv)

	logger.Initialize(verbose, debug)

	cfg, err := config.Load()
	if err != nil {
		// Fall back to built-in defaults; a bad config file should not block the build
		logger.Warnf("ignoring configuration: %v", err)
		cfg = nil
	}

	handler := cli.NewErrorHandler(verbose, debug)
	// Install a panic recoverer to avoid raw panics
	var ph cli.PanicHandler
	defer ph.Recover()

	app := cli.New(cfg)
	err = app.Run(args)
	logger.Close()

	var exitErr *commands.ExitError
	if stdErrors.As(err, &exitErr) {
		os.Exit(exitStatus(exitErr.Code))
	}
	if err != nil {
		handler.Handle(err)
	}
}

// parseGlobalFlags strips --verbose and --debug from args. The environment
// variables SETUPGEN_VERBOSE=1 and SETUPGEN_DEBUG=1 turn them on as well.
// Everything after a "--" is left alone.
func parseGlobalFlags(argv []string, getenv func(string) string) (args []string, verbose, debug bool) {
	args = make([]string, 0, len(argv))
	passthrough := false
	for i, a := range argv {
		if i == 0 || passthrough {
			args = append(args, a)
			continue
		}
		switch a {
		case "--verbose":
			verbose = true
		case "--debug":
			debug = true
		default:
			if a == "--" {
				passthrough = true
			}
			args = append(args, a)
		}
	}
	if strings.EqualFold(getenv("SETUPGEN_VERBOSE"), "1") {
		verbose = true
	}
	if strings.EqualFold(getenv("SETUPGEN_DEBUG"), "1") {
		debug = true
	}
	return args, verbose, debug
}

// exitStatus maps a child's exit code onto ours. A child killed by signal
// N reports -N and becomes 128+N, as shells do.
func exitStatus(code int) int {
	if code < 0 {
		return 128 - code
	}
	return code
}
