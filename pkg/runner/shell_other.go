//go:build !windows

package runner

// argvNeedsShell reports whether spawning from an argument vector requires
// a shell to interpret the command line.
const argvNeedsShell = false
