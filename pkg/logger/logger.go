// Package logger provides simple structured logging with levels and optional colors.
// It supports -v (verbose) and --debug flags. In debug mode, logs are also written
// to $HOME/.setupgen/logs/setupgen-YYYY-MM-DD.log for troubleshooting.
//
// Library packages accept a *Logger explicitly; the package-level functions
// write to the default logger installed by Initialize.
package logger

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"
	"time"
)

// Level represents log severity
type Level int

const (
	LevelError Level = iota
	LevelWarn
	LevelInfo
	LevelVerbose
	LevelDebug
)

// Logger provides structured logging. A nil *Logger discards everything.
type Logger struct {
	mu      sync.Mutex
	level   Level
	output  io.Writer
	file    *os.File
	colors  bool
	timings map[string]time.Time
}

var (
	defaultLogger *Logger
	once          sync.Once
)

// New creates a logger writing to w at the given level without colors.
func New(w io.Writer, level Level) *Logger {
	return &Logger{
		level:   level,
		output:  w,
		timings: make(map[string]time.Time),
	}
}

// Initialize sets up the global logger
func Initialize(verbose, debug bool) {
	once.Do(func() {
		level := LevelInfo
		if verbose {
			level = LevelVerbose
		}
		if debug {
			level = LevelDebug
		}

		defaultLogger = New(os.Stderr, level)
		defaultLogger.colors = isTerminal()

		// Also log to file in debug mode
		if debug {
			logDir := os.ExpandEnv("$HOME/.setupgen/logs")
			_ = os.MkdirAll(logDir, 0o755)
			logFile := filepath.Join(logDir, fmt.Sprintf("setupgen-%s.log", time.Now().Format("2006-01-02")))
			if file, err := os.OpenFile(logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644); err == nil {
				defaultLogger.file = file
				Debugf("Logging to %s", logFile)
			}
		}
	})
}

// Default returns the global logger, or nil before Initialize.
func Default() *Logger {
	return defaultLogger
}

// Close closes any resources used by the logger
func Close() {
	if defaultLogger != nil && defaultLogger.file != nil {
		_ = defaultLogger.file.Close()
	}
}

// Info logs at info level (always shown)
func (l *Logger) Info(msg string) { l.log(LevelInfo, msg) }

// Infof logs a formatted message at info level
func (l *Logger) Infof(format string, args ...interface{}) { l.Info(fmt.Sprintf(format, args...)) }

// Verbose logs at verbose level (shown with -v)
func (l *Logger) Verbose(msg string) { l.log(LevelVerbose, msg) }

// Verbosef logs a formatted message at verbose level
func (l *Logger) Verbosef(format string, args ...interface{}) { l.Verbose(fmt.Sprintf(format, args...)) }

// Debug logs at debug level (shown with --debug)
func (l *Logger) Debug(msg string) { l.log(LevelDebug, msg) }

// Debugf logs a formatted message at debug level
func (l *Logger) Debugf(format string, args ...interface{}) { l.Debug(fmt.Sprintf(format, args...)) }

// Warn logs warnings
func (l *Logger) Warn(msg string) { l.log(LevelWarn, msg) }

// Warnf logs a formatted warning
func (l *Logger) Warnf(format string, args ...interface{}) { l.Warn(fmt.Sprintf(format, args...)) }

// Error logs errors (always shown)
func (l *Logger) Error(msg string) { l.log(LevelError, msg) }

// Errorf logs a formatted error
func (l *Logger) Errorf(format string, args ...interface{}) { l.Error(fmt.Sprintf(format, args...)) }

func Info(msg string) { defaultLogger.Info(msg) }
func Infof(format string, args ...interface{}) { defaultLogger.Infof(format, args...) }
func Verbose(msg string) { defaultLogger.Verbose(msg) }
func Verbosef(format string, args ...interface{}) { defaultLogger.Verbosef(format, args...) }
func Debug(msg string) { defaultLogger.Debug(msg) }
func Debugf(format string, args ...interface{}) { defaultLogger.Debugf(format, args...) }
func Warn(msg string) { defaultLogger.Warn(msg) }
func Warnf(format string, args ...interface{}) { defaultLogger.Warnf(format, args...) }
func Error(msg string) { defaultLogger.Error(msg) }
func Errorf(format string, args ...interface{}) { defaultLogger.Errorf(format, args...) }

// StartTimer begins timing an operation
func StartTimer(operation string) {
	l := defaultLogger
	if l != nil && l.level >= LevelVerbose {
		l.mu.Lock()
		l.timings[operation] = time.Now()
		l.mu.Unlock()
		l.Verbosef("⏱  Starting: %s", operation)
	}
}

// EndTimer logs the duration of an operation
func EndTimer(operation string) {
	l := defaultLogger
	if l != nil && l.level >= LevelVerbose {
		l.mu.Lock()
		if start, ok := l.timings[operation]; ok {
			delete(l.timings, operation)
			l.mu.Unlock()
			l.Verbosef("✓ Completed %s in %v", operation, time.Since(start))
		} else {
			l.mu.Unlock()
		}
	}
}

// log writes a log message with level, timestamp and optional caller
func (l *Logger) log(level Level, msg string) {
	if l == nil || level > l.level {
		return
	}
	l.mu.Lock()
	defer l.mu.Unlock()

	timestamp := time.Now().Format("15:04:05")
	var prefix, color string
	switch level {
	case LevelError:
		prefix, color = "ERROR", "\033[31m" // red
	case LevelWarn:
		prefix, color = "WARN", "\033[33m" // yellow
	case LevelInfo:
		prefix, color = "INFO", "\033[32m" // green
	case LevelVerbose:
		prefix, color = "VERBOSE", "\033[36m" // cyan
	case LevelDebug:
		prefix, color = "DEBUG", "\033[35m" // magenta
	}

	caller := ""
	if level == LevelDebug {
		if _, file, line, ok := runtime.Caller(3); ok {
			caller = fmt.Sprintf(" [%s:%d]", filepath.Base(file), line)
		}
	}

	msg = strings.TrimRight(msg, "\n")
	var output string
	if l.colors {
		// Colorize the level prefix only
		output = fmt.Sprintf("[%s] %s%s%s%s: %s\n", timestamp, color, prefix, "\033[0m", caller, msg)
	} else {
		output = fmt.Sprintf("[%s] %s%s: %s\n", timestamp, prefix, caller, msg)
	}

	fmt.Fprint(l.output, output)
	if l.file != nil {
		fmt.Fprint(l.file, output)
	}
}

func isTerminal() bool {
	fi, err := os.Stderr.Stat()
	if err != nil {
		return false
	}
	return (fi.Mode() & os.ModeCharDevice) != 0
}
