package display

import (
	"io"
	"os"

	"github.com/Jordan474/spack/pkg/output"
)

// Progress re-exports output.Progress for convenience.
// Use NewProgress or NewStderrProgress to create instances.
type Progress = output.Progress

// NewProgress creates a progress indicator for long-running operations.
//
// Progress indicators show the current state of batch operations,
// updating in place on the terminal. They are thread-safe and can
// be updated from concurrent goroutines.
//
// Parameters:
//   - w: Writer to output progress to (typically os.Stderr)
//   - total: Total number of items to process
//   - message: Message prefix shown before the progress (e.g., "Scanning")
//
// Returns:
//   - *Progress: A new progress indicator ready for use
//
// Example:
//
//	progress := display.NewProgress(os.Stderr, len(files), "Scanning manifests")
//	for _, file := range files {
//	    // ... load and expand ...
//	    progress.Increment()
//	}
//	progress.Done()
func NewProgress(w io.Writer, total int, message string) *Progress {
	return output.NewProgress(w, total, message)
}

// NewStderrProgress creates a progress indicator that writes to stderr.
//
// This is a convenience wrapper around NewProgress that uses os.Stderr
// as the output writer, which is the most common use case.
//
// Parameters:
//   - total: Total number of items to process
//   - message: Message prefix shown before the progress
//
// Returns:
//   - *Progress: A new progress indicator writing to stderr
func NewStderrProgress(total int, message string) *Progress {
	return NewProgress(os.Stderr, total, message)
}
