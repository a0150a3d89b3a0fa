package terminal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// ProgressBar draws a single-line progress bar, redrawn in place with a
// carriage return. Nothing is drawn unless the output is a terminal.
type ProgressBar struct {
	out     io.Writer
	enabled bool
	total   int
	current int
	width   int
	prefix  string
	start   time.Time
}

// NewProgressBar creates a progress bar on stdout.
func NewProgressBar(total int, prefix string) *ProgressBar {
	return NewProgressBarTo(os.Stdout, IsTerminal(os.Stdout), total, prefix)
}

// NewProgressBarTo creates a progress bar on w; enabled false makes every
// method a no-op.
func NewProgressBarTo(w io.Writer, enabled bool, total int, prefix string) *ProgressBar {
	return &ProgressBar{
		out:     w,
		enabled: enabled,
		total:   total,
		width:   40,
		prefix:  prefix,
		start:   time.Now(),
	}
}

// Update sets the number of completed items and redraws.
func (p *ProgressBar) Update(current int) {
	p.current = current
	p.render()
}

// Increment advances by one item.
func (p *ProgressBar) Increment() {
	p.current++
	p.render()
}

// Finish fills the bar and ends the line.
func (p *ProgressBar) Finish() {
	p.current = p.total
	p.render()
	if p.enabled {
		fmt.Fprintln(p.out)
	}
}

func (p *ProgressBar) render() {
	if !p.enabled || p.total <= 0 {
		return
	}
	current := p.current
	if current > p.total {
		current = p.total
	}
	filled := current * p.width / p.total
	bar := strings.Repeat("█", filled) + strings.Repeat("░", p.width-filled)

	rate := 0.0
	if elapsed := time.Since(p.start).Seconds(); elapsed > 0 {
		rate = float64(current) / elapsed
	}
	fmt.Fprintf(p.out, "\r%s [%s] %d/%d (%.0f/s)", p.prefix, bar, current, p.total, rate)
}
