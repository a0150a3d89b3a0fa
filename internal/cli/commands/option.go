package commands

import (
	"fmt"

	"setupgen/pkg/option"
)

const optionUsage = "option <name> [--no-env] -- <args...>"

// Option extracts --name from the arguments after "--" and prints its
// value on the first line, then each argument left over on a line of its
// own so empty and quoted arguments survive. When
// the option is absent the environment variable derived from its name is
// used unless --no-env is given. Nothing found exits with status 1.
func Option(args []string) error {
	flags, argv, _ := splitDashDash(args)
	p := parseArgs(flags)
	noEnv := p.Bool("--no-env")
	pos, err := p.Positional(optionUsage, 1, 1)
	if err != nil {
		return err
	}

	a := option.New(argv)
	if noEnv {
		a = a.WithLookup(nil)
	}
	value, found, err := a.Value(pos[0])
	if err != nil {
		return err
	}
	if !found {
		return &ExitError{Code: 1}
	}
	fmt.Println(value)
	for _, arg := range a.Remaining() {
		fmt.Println(arg)
	}
	return nil
}
