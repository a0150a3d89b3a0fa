package exec

import (
	"os"
	"runtime"
	"strings"
)

// getShell returns the appropriate shell for the platform
func getShell() string {
	if runtime.GOOS == "windows" {
		if comspec := os.Getenv("COMSPEC"); comspec != "" {
			return comspec
		}
		return "cmd.exe"
	}

	if shell := os.Getenv("SHELL"); shell != "" {
		return shell
	}

	return "/bin/sh"
}

// shellFlag returns the flag that makes the shell run a single command line
func shellFlag() string {
	if runtime.GOOS == "windows" {
		return "/C"
	}
	return "-c"
}

// Quote quotes a string for the platform shell.
func Quote(s string) string {
	return quoteFor(runtime.GOOS, s)
}

// quoteFor quotes s for the shell of goos. cmd.exe takes double quotes
// with embedded quotes doubled and backslashes literal; POSIX shells take
// single quotes with embedded single quotes closed, escaped and reopened.
func quoteFor(goos, s string) string {
	if goos == "windows" {
		return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
	}
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}

// JoinArgs joins arguments for shell execution
func JoinArgs(args []string) string {
	return joinArgsFor(runtime.GOOS, args)
}

func joinArgsFor(goos string, args []string) string {
	quoted := make([]string, len(args))
	for i, arg := range args {
		quoted[i] = quoteFor(goos, arg)
	}
	return strings.Join(quoted, " ")
}

// windowsCmdLine is the raw command line handed to cmd.exe. /S makes cmd
// strip exactly the outer pair of quotes around the command, so the quoted
// line inside reaches it unchanged.
func windowsCmdLine(shell string, argv []string) string {
	return quoteFor("windows", shell) + ` /S /C "` + joinArgsFor("windows", argv) + `"`
}

// DisplayArgs renders argv for humans: arguments containing a space are
// wrapped in double quotes, everything else is left as is.
func DisplayArgs(args []string) string {
	shown := make([]string, len(args))
	for i, arg := range args {
		if strings.Contains(arg, " ") {
			arg = `"` + arg + `"`
		}
		shown[i] = arg
	}
	return strings.Join(shown, " ")
}
