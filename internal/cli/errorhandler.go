// Package cli: Central error handling for CLI
// Provides consistent error presentation and suggestions
package cli

import (
	stdErrors "errors"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	e "setupgen/pkg/errors"
	"setupgen/pkg/terminal"
)

// ErrorHandler handles errors consistently across the CLI
type ErrorHandler struct {
	verbose bool
	debug   bool
	out     io.Writer
}

// NewErrorHandler creates an error handler writing to stderr
func NewErrorHandler(verbose, debug bool) *ErrorHandler {
	return &ErrorHandler{verbose: verbose, debug: debug, out: os.Stderr}
}

// Handle displays err and exits with status 1. Commands that could repair
// their own failure have already tried by the time an error gets here.
func (h *ErrorHandler) Handle(err error) {
	if err == nil {
		return
	}
	h.display(err)
	os.Exit(1)
}

// display renders err, wrapping anything that is not an *e.Error.
func (h *ErrorHandler) display(err error) {
	var setupErr *e.Error
	if !stdErrors.As(err, &setupErr) {
		setupErr = e.Wrap(err, e.ErrUnknown, "An unexpected error occurred")
	}
	h.displayError(setupErr)
}

func (h *ErrorHandler) displayError(err *e.Error) {
	w := h.out
	fmt.Fprintln(w)
	icon := h.getErrorIcon(err.Code)
	fmt.Fprintf(w, "%s %s%s%s\n", icon, terminal.Bold, err.Message, terminal.Reset)

	// Usage text is the point of a usage error, so it is always shown.
	if err.Details != "" && (h.verbose || err.Code == e.ErrUsage) {
		fmt.Fprintf(w, "\n%s%s%s\n", terminal.Dim, err.Details, terminal.Reset)
	}

	if len(err.Context) > 0 && h.verbose {
		fmt.Fprintln(w, "\nContext:")
		keys := make([]string, 0, len(err.Context))
		for k := range err.Context {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			fmt.Fprintf(w, "  %s: %s\n", k, err.Context[k])
		}
	}

	if err.Suggestion != "" {
		fmt.Fprintf(w, "\n💡 %s%s%s\n", terminal.Yellow, err.Suggestion, terminal.Reset)
	}

	if err.Cause != nil && h.verbose {
		fmt.Fprintf(w, "\n%sCaused by:%s\n", terminal.Dim, terminal.Reset)
		h.displayCauseChain(err.Cause, 1)
	}

	if h.debug && len(err.Stack) > 0 {
		fmt.Fprintf(w, "\n%sStack trace:%s\n", terminal.Dim, terminal.Reset)
		for _, f := range err.Stack {
			fmt.Fprintf(w, "  %s\n", h.formatStackFrame(f))
		}
	}

	fmt.Fprintln(w)
	if !h.verbose {
		fmt.Fprintf(w, "%sRun with --verbose for more details%s\n", terminal.Dim, terminal.Reset)
	}
	if !h.debug && err.Code == e.ErrUnknown {
		fmt.Fprintf(w, "%sRun with --debug for stack trace%s\n", terminal.Dim, terminal.Reset)
	}
}

func (h *ErrorHandler) displayCauseChain(err error, depth int) {
	indent := strings.Repeat("  ", depth)
	if setupErr, ok := err.(*e.Error); ok {
		fmt.Fprintf(h.out, "%s• %s\n", indent, setupErr.Message)
		if setupErr.Cause != nil {
			h.displayCauseChain(setupErr.Cause, depth+1)
		}
		return
	}
	fmt.Fprintf(h.out, "%s• %s\n", indent, err.Error())
}

func (h *ErrorHandler) formatStackFrame(frame e.StackFrame) string {
	file := frame.File
	if idx := strings.LastIndex(file, "/setupgen/"); idx >= 0 {
		file = "..." + file[idx:]
	}
	fn := frame.Function
	if idx := strings.LastIndex(fn, "."); idx >= 0 {
		fn = fn[idx+1:]
	}
	return fmt.Sprintf("%s:%d %s()", file, frame.Line, fn)
}

func (h *ErrorHandler) getErrorIcon(code e.ErrorCode) string {
	icons := map[e.ErrorCode]string{
		e.ErrUsage:            "❓",
		e.ErrMissingValue:     "✏️",
		e.ErrInvalidPattern:   "🔣",
		e.ErrFilesystem:       "💾",
		e.ErrMissingParent:    "📁",
		e.ErrFileNotFound:     "🔍",
		e.ErrPermissionDenied: "🚫",
		e.ErrLaunchFailed:     "🚀",
		e.ErrEnvironment:      "🌐",
		e.ErrInvalidConfig:    "⚙️",
		e.ErrUnknown:          "❓",
	}
	if ic, ok := icons[code]; ok {
		return ic
	}
	return terminal.IconError
}
