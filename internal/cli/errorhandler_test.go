package cli

import (
	"bytes"
	"fmt"
	"strings"
	"testing"

	e "setupgen/pkg/errors"
)

func newTestHandler(verbose, debug bool) (*ErrorHandler, *bytes.Buffer) {
	var buf bytes.Buffer
	h := NewErrorHandler(verbose, debug)
	h.out = &buf
	return h, &buf
}

func TestErrorHandler_DisplayError(t *testing.T) {
	h, buf := newTestHandler(true, false)
	err := e.New(e.ErrMissingParent, "destination directory build/pkg does not exist").
		WithDetails("while copying pkg/core.py").
		WithContext("dir", "build/pkg").
		WithCause(fmt.Errorf("no such file or directory"))

	h.display(err)
	out := buf.String()
	for _, want := range []string{"📁", "build/pkg does not exist", "while copying", "dir: build/pkg", "Caused by:", "no such file", "setupgen mirror"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Run with --verbose") {
		t.Error("verbose hint should not be shown in verbose mode")
	}
}

func TestErrorHandler_QuietHidesDetails(t *testing.T) {
	h, buf := newTestHandler(false, false)
	h.display(e.New(e.ErrFilesystem, "copy failed").WithDetails("secret detail").WithContext("path", "x"))
	out := buf.String()
	if strings.Contains(out, "secret detail") || strings.Contains(out, "Context:") {
		t.Fatalf("details leaked without --verbose:\n%s", out)
	}
	if !strings.Contains(out, "Run with --verbose") {
		t.Fatalf("missing verbose hint:\n%s", out)
	}
}

func TestErrorHandler_UsageAlwaysShowsUsage(t *testing.T) {
	h, buf := newTestHandler(false, false)
	h.display(e.New(e.ErrUsage, "wrong number of arguments").WithDetails("Usage: setupgen mirror <src> <dst>"))
	if !strings.Contains(buf.String(), "Usage: setupgen mirror") {
		t.Fatalf("usage text missing:\n%s", buf.String())
	}
}

func TestErrorHandler_WrapsPlainErrors(t *testing.T) {
	h, buf := newTestHandler(false, false)
	h.display(fmt.Errorf("boom"))
	out := buf.String()
	if !strings.Contains(out, "An unexpected error occurred") || !strings.Contains(out, "--debug") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestErrorHandler_FindsWrappedError(t *testing.T) {
	h, buf := newTestHandler(false, false)
	inner := e.New(e.ErrLaunchFailed, "failed to start nosuch")
	h.display(fmt.Errorf("run: %w", inner))
	if !strings.Contains(buf.String(), "failed to start nosuch") {
		t.Fatalf("wrapped error not unwrapped:\n%s", buf.String())
	}
}

func TestErrorHandler_DebugShowsStack(t *testing.T) {
	h, buf := newTestHandler(false, true)
	h.display(e.New(e.ErrUnknown, "odd"))
	if !strings.Contains(buf.String(), "Stack trace:") {
		t.Fatalf("expected stack trace:\n%s", buf.String())
	}
}

func TestErrorHandler_Icons(t *testing.T) {
	h := NewErrorHandler(false, false)
	if h.getErrorIcon(e.ErrPermissionDenied) != "🚫" {
		t.Error("permission icon")
	}
	if h.getErrorIcon(e.ErrorCode("NOPE")) != "❌" {
		t.Error("fallback icon")
	}
}

func TestErrorHandler_FormatStackFrame(t *testing.T) {
	h := NewErrorHandler(false, false)
	got := h.formatStackFrame(e.StackFrame{File: "/home/u/src/setupgen/pkg/fileops/copy.go", Line: 12, Function: "setupgen/pkg/fileops.CopyTree"})
	if got != ".../setupgen/pkg/fileops/copy.go:12 CopyTree()" {
		t.Fatalf("got %q", got)
	}
}

func TestPanicMessage(t *testing.T) {
	for in, want := range map[interface{}]string{"s": "s", 7: "7"} {
		if got := panicMessage(in); got != want {
			t.Errorf("panicMessage(%v) = %q", in, got)
		}
	}
	if got := panicMessage(fmt.Errorf("err")); got != "err" {
		t.Errorf("error panic = %q", got)
	}
}

func TestPanicHandler_CrashReport(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("USERPROFILE", home)
	t.Setenv("SETUPGEN_DEBUG", "1")

	var p PanicHandler
	path := p.saveCrashReport("boom", "stack")
	if path == "" || !strings.HasPrefix(path, home) {
		t.Fatalf("unexpected report path %q", path)
	}
	if !strings.Contains(p.getEnvironmentInfo(), "SETUPGEN_DEBUG=1") {
		t.Fatal("environment info missing SETUPGEN_DEBUG")
	}
}
