//go:build unix

package runner

import (
	"os"
	"syscall"
)

// exitCode returns the child's exit status, or the negated signal number
// when a signal terminated it.
func exitCode(state *os.ProcessState) int {
	if state == nil {
		return -1
	}
	if ws, ok := state.Sys().(syscall.WaitStatus); ok && ws.Signaled() {
		return -int(ws.Signal())
	}
	return state.ExitCode()
}
