// Package errors provides the coded error type used across setupgen.
// Errors carry a suggestion, a context map, and a lightweight stack trace
// so the CLI can explain what went wrong and what to try next.
package errors

import (
	stdErrors "errors"
	"io/fs"
	"runtime"
	"strings"
)

// ErrorCode categorizes errors for handling
type ErrorCode string

const (
	// Usage errors
	ErrUsage        ErrorCode = "USAGE"
	ErrMissingValue ErrorCode = "MISSING_VALUE"

	// Pattern errors
	ErrInvalidPattern ErrorCode = "INVALID_PATTERN"

	// Filesystem errors
	ErrFilesystem       ErrorCode = "FILESYSTEM"
	ErrMissingParent    ErrorCode = "MISSING_PARENT"
	ErrFileNotFound     ErrorCode = "FILE_NOT_FOUND"
	ErrPermissionDenied ErrorCode = "PERMISSION_DENIED"

	// Process errors
	ErrLaunchFailed ErrorCode = "LAUNCH_FAILED"

	// Environment and configuration errors
	ErrEnvironment   ErrorCode = "ENVIRONMENT"
	ErrInvalidConfig ErrorCode = "INVALID_CONFIG"

	// Unknown errors
	ErrUnknown ErrorCode = "UNKNOWN"
)

// StackFrame represents a single stack frame
type StackFrame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// Error is the base error type with rich context
type Error struct {
	Code        ErrorCode         `json:"code"`
	Message     string            `json:"message"`
	Details     string            `json:"details,omitempty"`
	Suggestion  string            `json:"suggestion,omitempty"`
	Cause       error             `json:"-"`
	Context     map[string]string `json:"context,omitempty"`
	Recoverable bool              `json:"recoverable"`
	Stack       []StackFrame      `json:"stack,omitempty"`
}

// Error implements the error interface
func (e *Error) Error() string {
	var sb strings.Builder
	sb.WriteString(e.Message)
	if e.Details != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Details)
	}
	if e.Cause != nil {
		sb.WriteString("\nCaused by: ")
		sb.WriteString(e.Cause.Error())
	}
	return sb.String()
}

// Unwrap returns the underlying cause so errors.Is and errors.As see through it.
func (e *Error) Unwrap() error {
	return e.Cause
}

// WithSuggestion adds a suggestion for fixing the error
func (e *Error) WithSuggestion(suggestion string) *Error {
	e.Suggestion = suggestion
	return e
}

// WithContext adds contextual information
func (e *Error) WithContext(key, value string) *Error {
	if e.Context == nil {
		e.Context = make(map[string]string)
	}
	e.Context[key] = value
	return e
}

// WithCause wraps another error
func (e *Error) WithCause(cause error) *Error {
	e.Cause = cause
	return e
}

// WithDetails adds detailed information
func (e *Error) WithDetails(details string) *Error {
	e.Details = details
	return e
}

// New creates a new Error
func New(code ErrorCode, message string) *Error {
	err := &Error{
		Code:        code,
		Message:     message,
		Recoverable: isRecoverable(code),
		Context:     make(map[string]string),
	}
	err.captureStack()
	err.Suggestion = getDefaultSuggestion(code)
	return err
}

// Wrap wraps a standard error with Error
func Wrap(err error, code ErrorCode, message string) *Error {
	if err == nil {
		return nil
	}
	if setupErr, ok := err.(*Error); ok {
		// Prepend message context
		if message != "" {
			setupErr.Message = message + ": " + setupErr.Message
		}
		return setupErr
	}
	return New(code, message).WithCause(err)
}

// WrapFS wraps a filesystem error, picking a more specific code than
// ErrFilesystem when the cause is recognisable.
func WrapFS(err error, message string) *Error {
	if err == nil {
		return nil
	}
	code := ErrFilesystem
	switch {
	case stdErrors.Is(err, fs.ErrPermission):
		code = ErrPermissionDenied
	case stdErrors.Is(err, fs.ErrNotExist):
		code = ErrFileNotFound
	}
	return Wrap(err, code, message)
}

// HasCode reports whether any Error in err's chain carries code.
func HasCode(err error, code ErrorCode) bool {
	for err != nil {
		if setupErr, ok := err.(*Error); ok && setupErr.Code == code {
			return true
		}
		err = stdErrors.Unwrap(err)
	}
	return false
}

// captureStack captures the current stack trace
func (e *Error) captureStack() {
	const maxFrames = 10
	pc := make([]uintptr, maxFrames)
	n := runtime.Callers(3, pc) // Skip runtime.Callers, captureStack, New/Wrap
	frames := runtime.CallersFrames(pc[:n])
	for {
		frame, more := frames.Next()
		if strings.Contains(frame.File, "runtime/") || strings.Contains(frame.File, "testing/") {
			if !more {
				break
			}
			continue
		}
		e.Stack = append(e.Stack, StackFrame{
			Function: frame.Function,
			File:     frame.File,
			Line:     frame.Line,
		})
		if !more {
			break
		}
	}
}

// isRecoverable determines if an error can be automatically recovered
func isRecoverable(code ErrorCode) bool {
	switch code {
	case ErrMissingParent:
		return true
	default:
		return false
	}
}

// getDefaultSuggestion provides default fix suggestions
func getDefaultSuggestion(code ErrorCode) string {
	suggestions := map[ErrorCode]string{
		ErrUsage:            "Run 'setupgen help' for usage",
		ErrMissingValue:     "Pass the value as --name value or --name=value",
		ErrInvalidPattern:   "Check the glob syntax: * ? [abc] [!abc] {a,b}",
		ErrMissingParent:    "Create the destination tree first: setupgen mirror <src> <dst>",
		ErrFileNotFound:     "Check that the path exists",
		ErrPermissionDenied: "Check file permissions or run with sudo",
		ErrLaunchFailed:     "Check that the program is installed and on PATH",
		ErrEnvironment:      "Run setupgen from the directory containing your packaging script",
		ErrInvalidConfig:    "Fix or remove ~/.setupgen.json",
	}
	if s, ok := suggestions[code]; ok {
		return s
	}
	return "Run with --debug for a stack trace"
}
