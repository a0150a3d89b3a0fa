package runner

import (
	"io"
	"os"
	"time"
)

// outputPipe is the read end of the child's merged stdout/stderr.
type outputPipe interface {
	// ReadTimeout waits at most d for output and returns whatever is
	// available. It returns (nil, nil) when nothing arrived in time and
	// io.EOF once every writer has closed and the pipe is empty.
	ReadTimeout(d time.Duration) ([]byte, error)
	Close() error
}

// openPipe creates the merged output pipe. The caller hands w to the child
// and closes its own copy once the child has started.
func openPipe() (outputPipe, *os.File, error) {
	r, w, err := os.Pipe()
	if err != nil {
		return nil, nil, err
	}
	p, err := newOutputPipe(r)
	if err != nil {
		r.Close()
		w.Close()
		return nil, nil, err
	}
	return p, w, nil
}

// drain reads everything the pipe still holds after the child has exited.
// It stops at EOF or as soon as a read waits wait without finding anything,
// so a grandchild that inherited the pipe and keeps it open cannot stall
// the caller for longer than wait.
func drain(p outputPipe, lines *lineBuffer, wait time.Duration) error {
	for {
		chunk, err := p.ReadTimeout(wait)
		lines.Write(chunk)
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
		if len(chunk) == 0 {
			return nil
		}
	}
}
