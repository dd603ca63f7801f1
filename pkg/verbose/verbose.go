// Package verbose provides debug logging for expansion tracing.
package verbose

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

var (
	mu         sync.RWMutex
	enabled    bool
	suppressed int
	writer     io.Writer = os.Stderr
)

// Enable turns on verbose logging and allows debug messages to be printed.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Sets the enabled flag to true
//   - Releases the write lock
//
// Returns:
//   - None
func Enable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = true
}

// Disable turns off verbose logging and prevents debug messages from being printed.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Sets the enabled flag to false
//   - Releases the write lock
//
// Returns:
//   - None
func Disable() {
	mu.Lock()
	defer mu.Unlock()
	enabled = false
}

// IsEnabled returns whether verbose messages are currently printed.
//
// It performs the following operations:
//   - Acquires a read lock to ensure thread-safe access
//   - Reads the enabled flag and the suppression counter
//   - Releases the read lock
//
// Returns:
//   - bool: true if verbose logging is enabled and not suppressed
func IsEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled && suppressed == 0
}

// Suppress temporarily mutes verbose output without changing the
// enabled flag.
//
// Suppression nests: every Suppress call must be paired with an
// Unsuppress call before output resumes. Use it around operations that
// probe many files and would otherwise flood the debug log.
//
// Returns:
//   - None
func Suppress() {
	mu.Lock()
	defer mu.Unlock()
	suppressed++
}

// Unsuppress reverses one Suppress call.
//
// Calling Unsuppress without a matching Suppress is a no-op.
//
// Returns:
//   - None
func Unsuppress() {
	mu.Lock()
	defer mu.Unlock()
	if suppressed > 0 {
		suppressed--
	}
}

// SetWriter sets the output writer for verbose messages.
//
// It performs the following operations:
//   - Acquires a write lock to ensure thread-safe modification
//   - Updates the writer if the provided writer is not nil
//   - Releases the write lock
//
// Parameters:
//   - w: The io.Writer to use for output; if nil, the writer remains unchanged
//
// Returns:
//   - None
func SetWriter(w io.Writer) {
	mu.Lock()
	defer mu.Unlock()
	if w != nil {
		writer = w
	}
}

// getWriter returns the current writer with proper locking for internal use.
//
// It performs the following operations:
//   - Acquires a read lock to ensure thread-safe access
//   - Reads the writer value
//   - Releases the read lock
//
// Returns:
//   - io.Writer: The currently configured output writer
func getWriter() io.Writer {
	mu.RLock()
	defer mu.RUnlock()
	return writer
}

// isEnabled returns whether verbose is enabled with proper locking for internal use.
//
// It performs the following operations:
//   - Acquires a read lock to ensure thread-safe access
//   - Reads the enabled flag and the suppression counter
//   - Releases the read lock
//
// Returns:
//   - bool: true if verbose logging is enabled and not suppressed
func isEnabled() bool {
	mu.RLock()
	defer mu.RUnlock()
	return enabled && suppressed == 0
}

// Printf prints a formatted verbose message if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Formats and prints the message with [DEBUG] prefix to the configured writer
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
//
// Returns:
//   - None
func Printf(format string, args ...any) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// Info prints an informational verbose message if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the message with [DEBUG] prefix to the configured writer
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - msg: The message string to print
//
// Returns:
//   - None
func Info(msg string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] %s\n", msg)
	}
}

// Infof prints a formatted informational verbose message if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Formats and prints the message with [DEBUG] prefix to the configured writer
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - format: Printf-style format string
//   - args: Variadic arguments to format into the string
//
// Returns:
//   - None
func Infof(format string, args ...any) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] "+format+"\n", args...)
	}
}

// ManifestLoaded logs which manifest file was loaded if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the path to the loaded manifest file
//   - If named definitions exist, prints their names in declaration order
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - path: The file path to the manifest that was loaded
//   - definitions: The names of the definition lists the manifest declares
//
// Returns:
//   - None
func ManifestLoaded(path string, definitions []string) {
	if !isEnabled() {
		return
	}
	w := getWriter()
	_, _ = fmt.Fprintf(w, "[DEBUG] Manifest loaded: %s\n", path)
	if len(definitions) > 0 {
		_, _ = fmt.Fprintf(w, "        Definitions: %s\n", strings.Join(definitions, ", "))
	}
}

// ReferenceExpanded logs the splice of a named list reference if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the reference name, the sigil applied, and the record count spliced in
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - name: The name of the referenced list
//   - sigil: The sigil prefix applied to spliced records; empty for none
//   - count: The number of records spliced into the surrounding list
//
// Returns:
//   - None
func ReferenceExpanded(name, sigil string, count int) {
	if isEnabled() {
		if sigil == "" {
			_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Reference '$%s' expanded: %d record(s)\n", name, count)
		} else {
			_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Reference '$%s%s' expanded with sigil '%s': %d record(s)\n", sigil, name, sigil, count)
		}
	}
}

// MatrixExpanded logs the result of a matrix expansion if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the row count, the raw combination count, and how many survived exclusion
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - rows: The number of rows in the matrix
//   - combos: The number of combinations produced by the cross product
//   - kept: The number of combinations remaining after exclusion filtering
//
// Returns:
//   - None
func MatrixExpanded(rows, combos, kept int) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Matrix expanded: %d row(s), %d combination(s), %d kept\n", rows, combos, kept)
	}
}

// CombinationExcluded logs when an exclusion pattern drops a combination if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the dropped combination and the pattern that matched it
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - combo: The rendered combination that was dropped
//   - pattern: The exclusion pattern it satisfied
//
// Returns:
//   - None
func CombinationExcluded(combo, pattern string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Combination '%s' excluded by '%s'\n", combo, pattern)
	}
}

// CacheInvalidated logs a cache invalidation on a spec list if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the list name and the mutation that forced recomputation
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - list: The name of the spec list whose caches were dropped
//   - reason: The mutation that triggered the invalidation
//
// Returns:
//   - None
func CacheInvalidated(list, reason string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Caches invalidated for '%s': %s\n", list, reason)
	}
}

// ConstraintApplied logs the folding of a constraint onto a base record if enabled.
//
// It performs the following operations:
//   - Checks if verbose logging is enabled
//   - Prints the base record and the constraint folded onto it
//   - Truncates long records to 60 characters for readability
//   - Does nothing if verbose logging is disabled
//
// Parameters:
//   - base: The record receiving the constraint
//   - constraint: The record being folded onto the base
//
// Returns:
//   - None
func ConstraintApplied(base, constraint string) {
	if isEnabled() {
		_, _ = fmt.Fprintf(getWriter(), "[DEBUG] Constraint applied: %s <- %s\n", truncate(base, 60), truncate(constraint, 60))
	}
}

// truncate shortens a string to the specified maximum length.
//
// It performs the following operations:
//   - Returns the original string if it's within the maxLen limit
//   - Truncates the string to maxLen-3 and appends "..." if it exceeds maxLen
//
// Parameters:
//   - s: The string to truncate
//   - maxLen: The maximum length for the returned string (must be at least 3)
//
// Returns:
//   - string: The original or truncated string with "..." suffix if truncated
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}
