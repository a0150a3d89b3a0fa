package exec

import (
	"os/exec"
	"syscall"
)

// setShellCmdLine replaces the command line Go would build from cmd.Args.
// Go escapes arguments for the C runtime's parser, which cmd.exe does not
// use, so the line is passed through verbatim instead.
func setShellCmdLine(cmd *exec.Cmd, shell string, argv []string) {
	if cmd.SysProcAttr == nil {
		cmd.SysProcAttr = &syscall.SysProcAttr{}
	}
	cmd.SysProcAttr.CmdLine = windowsCmdLine(shell, argv)
}
