//go:build unix

package runner

import (
	"os"
	"syscall"
	"time"

	"golang.org/x/sys/unix"
)

// Everything a dead child wrote is already in the pipe, so draining never waits.
const drainWait = 0

// pollPipe waits for readability with poll(2) and then reads through the
// *os.File, so a read is only issued when it cannot block.
type pollPipe struct {
	f   *os.File
	rc  syscall.RawConn
	buf []byte
}

func newOutputPipe(r *os.File) (outputPipe, error) {
	rc, err := r.SyscallConn()
	if err != nil {
		return nil, err
	}
	return &pollPipe{f: r, rc: rc, buf: make([]byte, 32*1024)}, nil
}

func (p *pollPipe) ReadTimeout(d time.Duration) ([]byte, error) {
	ready, err := p.wait(d)
	if err != nil || !ready {
		return nil, err
	}
	n, err := p.f.Read(p.buf)
	if n > 0 {
		return append([]byte(nil), p.buf[:n]...), nil
	}
	return nil, err
}

// wait reports whether the descriptor is readable (data or hang-up) within d.
func (p *pollPipe) wait(d time.Duration) (bool, error) {
	var ready bool
	var pollErr error
	deadline := time.Now().Add(d)
	ctlErr := p.rc.Control(func(fd uintptr) {
		fds := []unix.PollFd{{Fd: int32(fd), Events: unix.POLLIN}}
		for {
			timeout := int(time.Until(deadline) / time.Millisecond)
			if timeout < 0 {
				timeout = 0
			}
			n, err := unix.Poll(fds, timeout)
			if err == unix.EINTR {
				continue
			}
			if err != nil {
				pollErr = os.NewSyscallError("poll", err)
				return
			}
			ready = n > 0 && fds[0].Revents&(unix.POLLIN|unix.POLLHUP|unix.POLLERR) != 0
			return
		}
	})
	if ctlErr != nil {
		return false, ctlErr
	}
	return ready, pollErr
}

func (p *pollPipe) Close() error {
	return p.f.Close()
}
