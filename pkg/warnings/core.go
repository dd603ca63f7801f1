// Package warnings routes non-fatal diagnostics to a swappable writer.
//
// Manifest loading and list expansion emit warnings for conditions that do
// not stop processing, such as unknown variants left unresolved or empty
// matrix products. Commands that print structured output redirect warnings
// through a Collector so they never corrupt the payload on stdout.
package warnings

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu         sync.RWMutex
	warnWriter io.Writer = os.Stderr
)

// Warnf writes formatted warning messages to the configured warning writer.
//
// It performs the following operations:
//   - Acquires a read lock to safely access the warning writer
//   - Formats the message using the provided format string and arguments
//   - Writes the formatted message to the configured writer
//   - Releases the read lock
//
// Parameters:
//   - format: Printf-style format string for the warning message
//   - args: Variadic arguments to format into the string
//
// Returns:
//   - None
func Warnf(format string, args ...any) {
	mu.RLock()
	w := warnWriter
	mu.RUnlock()
	_, _ = fmt.Fprintf(w, format, args...)
}

// WarningWriter returns the currently configured warning writer.
//
// It performs the following operations:
//   - Acquires a read lock to ensure thread-safe access
//   - Reads the current warning writer value
//   - Releases the read lock
//
// Returns:
//   - io.Writer: The currently configured writer for warning messages
func WarningWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return warnWriter
}

// SetWarningWriter swaps the warning writer and returns a restore function.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Saves the previous warning writer for restoration
//   - Sets the new warning writer (defaults to os.Stderr if nil)
//   - Releases the write lock
//   - Returns a function that restores the previous writer when called
//
// Parameters:
//   - w: The new io.Writer to use; if nil, defaults to os.Stderr
//
// Returns:
//   - func(): A restore function that sets the writer back to the previous value
func SetWarningWriter(w io.Writer) func() {
	mu.Lock()
	defer mu.Unlock()

	previous := warnWriter
	if w == nil {
		warnWriter = os.Stderr
	} else {
		warnWriter = w
	}

	return func() {
		mu.Lock()
		defer mu.Unlock()
		warnWriter = previous
	}
}

// Collector buffers warnings emitted while it is installed.
//
// A Collector is installed with Install, which redirects the package writer
// into the collector's buffer. Calling the returned restore function puts the
// previous writer back. Collected lines can then be replayed or inspected
// without interleaving with command output.
type Collector struct {
	buf bytes.Buffer
}

// Install redirects package warnings into the collector and returns a restore function.
//
// It performs the following operations:
//   - Swaps the package warning writer for the collector's buffer
//   - Returns the restore function produced by SetWarningWriter
//
// Returns:
//   - func(): A restore function that sets the writer back to the previous value
func (c *Collector) Install() func() {
	return SetWarningWriter(&c.buf)
}

// Lines returns the collected warnings split into individual lines.
//
// Trailing newlines are trimmed before splitting so an empty buffer yields an
// empty slice rather than a single empty line.
//
// Returns:
//   - []string: The collected warning lines in emission order
func (c *Collector) Lines() []string {
	out := strings.TrimRight(c.buf.String(), "\n")
	if out == "" {
		return nil
	}
	return strings.Split(out, "\n")
}

// Replay writes the collected warnings to the given writer.
//
// Parameters:
//   - w: The destination writer, typically os.Stderr
//
// Returns:
//   - None
func (c *Collector) Replay(w io.Writer) {
	if c.buf.Len() > 0 {
		_, _ = io.Copy(w, bytes.NewReader(c.buf.Bytes()))
	}
}
