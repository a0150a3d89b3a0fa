// Package exec provides command construction wrappers for setupgen.
// It centralizes how external commands are built, which shell is used when
// a command line must be interpreted, and how arguments are quoted, and it
// exposes a Commander interface so tests can substitute the process factory.
package exec
