// Package runner runs an external command to completion while streaming
// its combined stdout and stderr to a logger one line at a time.
//
// Run blocks the caller until the child exits. Internally it polls: each
// iteration checks whether the child is still alive and then waits a
// bounded time for output, so a child that goes quiet never hangs the
// reader and a child that exits is noticed within one poll interval.
package runner

import (
	stdErrors "errors"
	"io"
	"os"
	osexec "os/exec"
	"sort"
	"time"

	e "setupgen/pkg/errors"
	"setupgen/pkg/exec"
	"setupgen/pkg/logger"
)

// DefaultPollInterval bounds each wait for output.
const DefaultPollInterval = 100 * time.Millisecond

// LineLogger receives each line of child output. *logger.Logger satisfies it.
type LineLogger interface {
	Info(msg string)
}

// ShellMode decides whether the command line goes through the platform shell.
type ShellMode int

const (
	// ShellAuto uses the shell only where argument-vector spawning needs it.
	ShellAuto ShellMode = iota
	// ShellAlways always runs the command through the shell.
	ShellAlways
	// ShellNever always spawns the program directly.
	ShellNever
)

// Options configures Run. The zero value runs in the current directory
// with the current environment and logs to the default logger.
type Options struct {
	// Dir is the child's working directory; empty inherits ours.
	Dir string
	// Env replaces the child's environment; nil inherits ours.
	Env map[string]string
	// Shell selects direct or shell spawning.
	Shell ShellMode
	// PollInterval overrides DefaultPollInterval.
	PollInterval time.Duration
	// Logger receives the summary line and every output line.
	Logger LineLogger
	// Commander builds the command; nil uses exec.Default.
	Commander exec.Commander
}

func (o Options) logger() LineLogger {
	if o.Logger != nil {
		return o.Logger
	}
	if l := logger.Default(); l != nil {
		return l
	}
	return logger.New(os.Stderr, logger.LevelInfo)
}

func (o Options) pollInterval() time.Duration {
	if o.PollInterval > 0 {
		return o.PollInterval
	}
	return DefaultPollInterval
}

func (o Options) useShell() bool {
	switch o.Shell {
	case ShellAlways:
		return true
	case ShellNever:
		return false
	}
	return argvNeedsShell
}

func (o Options) command(argv []string) *osexec.Cmd {
	c := o.Commander
	if c == nil {
		c = exec.Default
	}
	if o.useShell() {
		return exec.ShellCommand(c, argv)
	}
	return c.Command(argv[0], argv[1:]...)
}

// environ flattens Env into KEY=value pairs, sorted for determinism.
func (o Options) environ() []string {
	if o.Env == nil {
		return os.Environ()
	}
	env := make([]string, 0, len(o.Env))
	for k, v := range o.Env {
		env = append(env, k+"="+v)
	}
	sort.Strings(env)
	return env
}

// Run starts argv, streams its merged output to opts.Logger line by line,
// and returns the exit code once the child has been reaped.
//
// A summary line "Running process: ..." is logged first. Output without a
// trailing newline is emitted as a final line after the child exits. A
// non-zero exit code is returned as data with a nil error; on Unix a child
// killed by a signal reports the negated signal number. Failing to start
// the child is an ErrLaunchFailed error.
func Run(argv []string, opts Options) (int, error) {
	if len(argv) == 0 {
		return -1, e.New(e.ErrUsage, "no command given")
	}
	log := opts.logger()
	display := exec.DisplayArgs(argv)
	log.Info("Running process: " + display)

	cmd := opts.command(argv)
	cmd.Dir = opts.Dir
	cmd.Env = opts.environ()

	pipe, w, err := openPipe()
	if err != nil {
		return -1, e.Wrap(err, e.ErrLaunchFailed, "create output pipe").WithContext("command", display)
	}
	defer pipe.Close()
	cmd.Stdout = w
	cmd.Stderr = w

	// Nobody writes to stdin, but it stays open so the child never sees a
	// closed descriptor. Wait closes it.
	if _, err := cmd.StdinPipe(); err != nil {
		w.Close()
		return -1, e.Wrap(err, e.ErrLaunchFailed, "create stdin pipe").WithContext("command", display)
	}

	if err := cmd.Start(); err != nil {
		w.Close()
		return -1, e.Wrap(err, e.ErrLaunchFailed, "failed to start "+argv[0]).
			WithContext("command", display).
			WithContext("dir", opts.Dir)
	}
	// The child has its own copy; ours must go or EOF never arrives.
	w.Close()

	// Exactly one Wait per process; exited is closed once it returns.
	var waitErr error
	exited := make(chan struct{})
	go func() {
		waitErr = cmd.Wait()
		close(exited)
	}()

	lines := newLineBuffer(log.Info)
	readErr := collect(pipe, lines, exited, opts.pollInterval())

	if waitErr != nil {
		var exitErr *osexec.ExitError
		if !stdErrors.As(waitErr, &exitErr) {
			return -1, e.Wrap(waitErr, e.ErrUnknown, "wait for "+argv[0]).WithContext("command", display)
		}
	}
	code := exitCode(cmd.ProcessState)
	if readErr != nil {
		return code, e.Wrap(readErr, e.ErrFilesystem, "read output of "+argv[0]).WithContext("command", display)
	}
	return code, nil
}

// collect streams output until the child has exited and whatever it left
// in the pipe has been read, then flushes the last partial line. When a
// read fails the pipe is closed before waiting, so a child blocked on a
// full pipe gets a write error and exits instead of hanging the call.
func collect(pipe outputPipe, lines *lineBuffer, exited <-chan struct{}, interval time.Duration) error {
	defer lines.Flush()
	if err := pump(pipe, lines, exited, interval); err != nil {
		pipe.Close()
		<-exited
		return err
	}
	<-exited
	return drain(pipe, lines, drainWait)
}

// pump alternates liveness checks and bounded reads until the child exits,
// the pipe reaches EOF, or a read fails. EOF is not an error: the child may
// have closed its output and still be running, so the caller goes on to
// wait for it.
func pump(pipe outputPipe, lines *lineBuffer, exited <-chan struct{}, interval time.Duration) error {
	for {
		select {
		case <-exited:
			return nil
		default:
		}
		chunk, err := pipe.ReadTimeout(interval)
		lines.Write(chunk)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
