//go:build !windows

package exec

import "os/exec"

// setShellCmdLine is a no-op: POSIX shells receive the joined line as one
// argv entry without further escaping.
func setShellCmdLine(cmd *exec.Cmd, shell string, argv []string) {}
