package runner

import "bytes"

// lineBuffer accumulates output and emits each complete line once its
// newline has arrived. Whatever follows the last newline stays pending
// until more data or Flush.
type lineBuffer struct {
	pending []byte
	emit    func(string)
}

func newLineBuffer(emit func(string)) *lineBuffer {
	return &lineBuffer{emit: emit}
}

// Write appends p and emits every line it completes.
func (b *lineBuffer) Write(p []byte) {
	if len(p) == 0 {
		return
	}
	b.pending = append(b.pending, p...)
	consumed := 0
	for {
		i := bytes.IndexByte(b.pending[consumed:], '\n')
		if i < 0 {
			break
		}
		b.emit(trimCR(b.pending[consumed : consumed+i]))
		consumed += i + 1
	}
	if consumed > 0 {
		b.pending = append([]byte(nil), b.pending[consumed:]...)
	}
}

// Flush emits the pending fragment, if any, as a final line.
func (b *lineBuffer) Flush() {
	if len(b.pending) == 0 {
		return
	}
	b.emit(trimCR(b.pending))
	b.pending = nil
}

// trimCR drops the carriage return of a CRLF line ending.
func trimCR(line []byte) string {
	return string(bytes.TrimSuffix(line, []byte{'\r'}))
}
