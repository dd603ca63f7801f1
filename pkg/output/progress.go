package output

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Progress is a simple single-line progress indicator for operations
// that touch many files, such as scanning a tree for manifests.
//
// Fields:
//   - writer: Destination for progress output (typically os.Stderr)
//   - total: Total number of steps in the operation
//   - current: Current step number
//   - message: Descriptive message displayed with the progress
//   - mu: Mutex protecting the counters
//   - enabled: Whether progress output is enabled
//   - lastWidth: Width of the last rendered line, for clearing
type Progress struct {
	writer    io.Writer
	total     int
	current   int
	message   string
	mu        sync.Mutex
	enabled   bool
	lastWidth int
}

// NewProgress creates a new progress indicator and returns it.
//
// Parameters:
//   - writer: Destination for progress output (typically os.Stderr)
//   - total: Total number of steps in the operation
//   - message: Descriptive message to display (e.g., "Checking manifests")
//
// Returns:
//   - *Progress: A new progress indicator, initially enabled
func NewProgress(writer io.Writer, total int, message string) *Progress {
	return &Progress{
		writer:  writer,
		total:   total,
		message: message,
		enabled: true,
	}
}

// SetEnabled enables or disables progress output.
//
// Progress is suppressed in non-interactive environments and whenever
// a structured format goes to stdout.
//
// Parameters:
//   - enabled: true to enable progress output; false to disable
func (p *Progress) SetEnabled(enabled bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = enabled
}

// Increment advances the progress by one step and re-renders.
//
// The counters are copied under the lock and the render happens
// outside it, so slow writers cannot block other goroutines. Safe for
// concurrent use.
func (p *Progress) Increment() {
	p.mu.Lock()
	p.current++
	current := p.current
	total := p.total
	enabled := p.enabled
	p.mu.Unlock()

	if enabled && total > 0 {
		p.renderValues(current, total)
	}
}

// Done marks the progress as complete and prints a newline.
//
// This should be called when the operation completes.
func (p *Progress) Done() {
	p.mu.Lock()
	p.current = p.total
	current := p.current
	total := p.total
	enabled := p.enabled
	p.mu.Unlock()

	if enabled && total > 0 {
		p.renderValues(current, total)
		_, _ = fmt.Fprintln(p.writer)
	}
}

// Clear erases the progress line from the display.
//
// This overwrites the current line with spaces and returns the cursor
// to the start, so other content can be printed without the indicator
// interfering.
func (p *Progress) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.enabled && p.lastWidth > 0 {
		_, _ = fmt.Fprintf(p.writer, "\r%s\r", strings.Repeat(" ", p.lastWidth))
	}
}

// renderValues renders progress with the given values.
//
// The lock is held only for lastWidth bookkeeping; the counters arrive
// as copies.
//
// Parameters:
//   - current: Current step number
//   - total: Total number of steps
func (p *Progress) renderValues(current, total int) {
	percentage := float64(current) / float64(total) * 100
	line := fmt.Sprintf("\r%s: %d/%d (%.0f%%)", p.message, current, total, percentage)

	p.mu.Lock()
	// Pad over leftovers when the new line is shorter
	if len(line) < p.lastWidth {
		line += strings.Repeat(" ", p.lastWidth-len(line))
	}
	p.lastWidth = len(line)
	p.mu.Unlock()

	_, _ = fmt.Fprint(p.writer, line)

	// Flush stderr so progress renders immediately in CI environments
	if f, ok := p.writer.(*os.File); ok {
		_ = f.Sync()
	}
}
