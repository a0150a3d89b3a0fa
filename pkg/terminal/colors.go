// Package terminal provides terminal output utilities: ANSI colors that
// switch off when stdout is not a terminal or NO_COLOR is set, status
// icons, and a single-line progress bar.
package terminal

import (
	"fmt"
	"os"
)

// Color codes for terminal output
const (
	Reset  = "\033[0m"
	Dim    = "\033[2m"
	Red    = "\033[31m"
	Green  = "\033[32m"
	Yellow = "\033[33m"
	Blue   = "\033[34m"
	Cyan   = "\033[36m"
	Bold   = "\033[1m"
)

// IsTerminal reports whether f is attached to a character device.
func IsTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}

// colorEnabled reports whether escape codes should be written to stdout.
func colorEnabled() bool {
	return os.Getenv("NO_COLOR") == "" && IsTerminal(os.Stdout)
}

// Colorize wraps text in color when stdout supports it.
func Colorize(color, text string) string {
	if !colorEnabled() {
		return text
	}
	return fmt.Sprintf("%s%s%s", color, text, Reset)
}

// Success renders text green.
func Success(text string) string { return Colorize(Green, text) }

// Error renders text red.
func Error(text string) string { return Colorize(Red, text) }

// Warning renders text yellow.
func Warning(text string) string { return Colorize(Yellow, text) }

// Info renders text cyan.
func Info(text string) string { return Colorize(Cyan, text) }

// Faint renders text dimmed.
func Faint(text string) string { return Colorize(Dim, text) }

// BoldText renders text bold.
func BoldText(text string) string { return Colorize(Bold, text) }
