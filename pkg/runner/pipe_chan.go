package runner

import (
	"errors"
	"io"
	"os"
	"sync"
	"time"
)

// chanPipe reads the pipe on its own goroutine and hands chunks over a
// channel, which ReadTimeout can wait on with a timer. It serves platforms
// whose pipes cannot be polled.
type chanPipe struct {
	f         *os.File
	chunks    chan []byte
	done      chan struct{}
	closeOnce sync.Once
	err       error
}

func newChanPipe(r *os.File) *chanPipe {
	p := &chanPipe{f: r, chunks: make(chan []byte, 16), done: make(chan struct{})}
	go p.pump()
	return p
}

func (p *chanPipe) pump() {
	buf := make([]byte, 32*1024)
	for {
		n, err := p.f.Read(buf)
		if n > 0 {
			select {
			case p.chunks <- append([]byte(nil), buf[:n]...):
			case <-p.done:
				return
			}
		}
		if err != nil {
			p.err = err
			close(p.chunks)
			return
		}
	}
}

func (p *chanPipe) ReadTimeout(d time.Duration) ([]byte, error) {
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case chunk, ok := <-p.chunks:
		if !ok {
			if p.err == nil || p.err == io.EOF || errors.Is(p.err, os.ErrClosed) {
				return nil, io.EOF
			}
			return nil, p.err
		}
		return chunk, nil
	case <-timer.C:
		return nil, nil
	}
}

// Close may be called more than once.
func (p *chanPipe) Close() error {
	var err error
	p.closeOnce.Do(func() {
		close(p.done)
		err = p.f.Close()
	})
	return err
}
