package exec

import (
	"os/exec"
)

// Commander provides an interface for command execution that can be mocked in tests.
// This enables dependency injection and makes code more testable.
type Commander interface {
	Command(name string, args ...string) *exec.Cmd
}

// DefaultCommander implements Commander using the standard exec.Command.
type DefaultCommander struct{}

// Command creates a new exec.Cmd using the standard library exec.Command.
func (DefaultCommander) Command(name string, args ...string) *exec.Cmd {
	return exec.Command(name, args...)
}

// Default is the Commander used when none is supplied.
var Default Commander = DefaultCommander{}

// ShellCommand builds a command that runs argv through the platform shell.
// The arguments are quoted and joined into a single command line; on
// Windows that line is also installed as the raw process command line.
func ShellCommand(c Commander, argv []string) *exec.Cmd {
	if c == nil {
		c = Default
	}
	shell := getShell()
	cmd := c.Command(shell, shellFlag(), JoinArgs(argv))
	setShellCmdLine(cmd, shell, argv)
	return cmd
}
