package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"setupgen/pkg/terminal"
	"setupgen/pkg/version"
)

// PanicHandler recovers from panics and shows friendly errors
type PanicHandler struct{}

// Recover catches panics and converts them to friendly output. It must be
// called directly by a deferred statement.
func (p *PanicHandler) Recover() { //nolint:revive
	if r := recover(); r != nil {
		p.handlePanic(r)
	}
}

func (p *PanicHandler) handlePanic(r interface{}) {
	message := panicMessage(r)
	crashReport := p.saveCrashReport(message, string(debug.Stack()))

	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "💥 %s%ssetupgen crashed unexpectedly%s\n", terminal.Red, terminal.Bold, terminal.Reset)
	fmt.Fprintln(os.Stderr)
	fmt.Fprintf(os.Stderr, "Error: %s\n", message)
	if crashReport != "" {
		fmt.Fprintln(os.Stderr)
		fmt.Fprintf(os.Stderr, "A crash report has been saved to:\n%s\n", crashReport)
		fmt.Fprintln(os.Stderr, "Include it and what you were doing when reporting this issue.")
	}

	os.Exit(2)
}

func panicMessage(r interface{}) string {
	switch v := r.(type) {
	case string:
		return v
	case error:
		return v.Error()
	default:
		return fmt.Sprintf("%v", r)
	}
}

// saveCrashReport writes the report under ~/.setupgen/crashes and returns
// its path, or "" when it could not be written.
func (p *PanicHandler) saveCrashReport(message, stack string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	crashDir := filepath.Join(home, ".setupgen", "crashes")
	if err := os.MkdirAll(crashDir, 0o755); err != nil {
		return ""
	}
	ts := time.Now().Format("2006-01-02-15-04-05")
	fp := filepath.Join(crashDir, fmt.Sprintf("crash-%s.txt", ts))
	report := fmt.Sprintf(`setupgen Crash Report
=====================
Time: %s
Version: %s
OS: %s
Arch: %s

Error:
%s

Stack Trace:
%s

Environment:
%s
`, time.Now().Format(time.RFC3339), version.Version, runtime.GOOS, runtime.GOARCH, message, stack, p.getEnvironmentInfo())
	if err := os.WriteFile(fp, []byte(report), 0o644); err != nil {
		return ""
	}
	return fp
}

func (p *PanicHandler) getEnvironmentInfo() string {
	var info []string
	for _, key := range []string{"SETUPGEN_DEBUG", "SETUPGEN_VERBOSE", "SETUPGEN_CONFIG", "PWD", "PATH"} {
		if v := os.Getenv(key); v != "" {
			info = append(info, fmt.Sprintf("%s=%s", key, v))
		}
	}
	return strings.Join(info, "\n")
}
