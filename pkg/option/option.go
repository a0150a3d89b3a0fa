// Package option pulls individual --name value options out of an argument
// list before the rest of the list reaches another parser, falling back to
// an environment variable when the option is absent.
package option

import (
	"fmt"
	"os"
	"strings"

	e "setupgen/pkg/errors"
)

// LookupFunc resolves an environment variable, like os.LookupEnv.
type LookupFunc func(key string) (string, bool)

// Args is an argument list that options are consumed from.
type Args struct {
	argv   []string
	lookup LookupFunc
}

// New wraps argv. The slice is copied; argv itself is never modified.
// Environment fallbacks use os.LookupEnv.
func New(argv []string) *Args {
	return &Args{argv: append([]string(nil), argv...), lookup: os.LookupEnv}
}

// WithLookup replaces the environment lookup used for fallbacks.
func (a *Args) WithLookup(lookup LookupFunc) *Args {
	a.lookup = lookup
	return a
}

// Remaining returns the arguments not consumed so far.
func (a *Args) Remaining() []string {
	return append([]string(nil), a.argv...)
}

// EnvName maps an option name to its environment variable:
// upper-cased, with hyphens turned into underscores.
func EnvName(name string) string {
	return strings.ToUpper(strings.ReplaceAll(name, "-", "_"))
}

// Value finds the first --name value or --name=value in the list, removes
// the tokens it used, and returns the value. When the option is absent the
// environment variable EnvName(name) is consulted; found is false only when
// neither is present. A trailing --name with nothing after it is an
// ErrMissingValue error.
func (a *Args) Value(name string) (value string, found bool, err error) {
	flag := "--" + name
	for i, arg := range a.argv {
		if arg == flag {
			if i+1 >= len(a.argv) {
				return "", false, e.New(e.ErrMissingValue, fmt.Sprintf("the option %s requires a value", flag)).
					WithContext("option", flag)
			}
			value = a.argv[i+1]
			a.argv = append(a.argv[:i], a.argv[i+2:]...)
			return value, true, nil
		}
		if strings.HasPrefix(arg, flag+"=") {
			value = arg[len(flag)+1:]
			a.argv = append(a.argv[:i], a.argv[i+1:]...)
			return value, true, nil
		}
	}
	if a.lookup != nil {
		if v, ok := a.lookup(EnvName(name)); ok {
			return v, true, nil
		}
	}
	return "", false, nil
}

// Extract is Value over a caller-held slice: on success *argv is replaced
// by the list with the option removed.
func Extract(argv *[]string, name string) (string, bool, error) {
	a := New(*argv)
	value, found, err := a.Value(name)
	if err != nil {
		return "", false, err
	}
	*argv = a.argv
	return value, found, nil
}
