package display

import (
	"fmt"
	"io"

	"github.com/Jordan474/spack/pkg/constants"
)

// PrintWarnings prints warning messages to the writer.
//
// Formats each warning on its own line with a warning icon prefix.
// Does nothing if warnings slice is empty.
// Prints a blank line before the warnings for separation.
//
// Parameters:
//   - w: Writer to output to (typically os.Stderr)
//   - warnings: Slice of warning messages
//
// Example output:
//
//	<blank line>
//	Warning: ignoring unknown manifest section "mirrors"
//	Warning: variant pic is not defined for zlib
func PrintWarnings(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	_, _ = fmt.Fprintln(w)
	for _, warning := range warnings {
		_, _ = fmt.Fprintf(w, "%s %s\n", constants.IconWarn, warning)
	}
}

// PrintWarningsInline prints warning messages without a leading blank line.
//
// Same as PrintWarnings but without the leading blank line.
//
// Parameters:
//   - w: Writer to output to
//   - warnings: Slice of warning messages
func PrintWarningsInline(w io.Writer, warnings []string) {
	if len(warnings) == 0 {
		return
	}

	for _, warning := range warnings {
		_, _ = fmt.Fprintf(w, "%s %s\n", constants.IconWarn, warning)
	}
}

// Summary holds list validation summary data.
//
// Fields:
//   - Total: Total lists processed
//   - Valid: Lists that expanded without errors
//   - Invalid: Lists that failed to expand
type Summary struct {
	// Total is the total number of lists processed.
	Total int

	// Valid is the number of lists that expanded cleanly.
	Valid int

	// Invalid is the number of lists that failed to expand.
	Invalid int
}

// PrintSummary prints a validation summary.
//
// Parameters:
//   - w: Writer to output to
//   - summary: Summary data to display
//
// Example output:
//
//	Summary: 4 lists total, 3 valid, 1 invalid
func PrintSummary(w io.Writer, summary Summary) {
	_, _ = fmt.Fprintf(w, "Summary: %d lists total", summary.Total)
	if summary.Valid > 0 {
		_, _ = fmt.Fprintf(w, ", %d valid", summary.Valid)
	}
	if summary.Invalid > 0 {
		_, _ = fmt.Fprintf(w, ", %d invalid", summary.Invalid)
	}
	_, _ = fmt.Fprintln(w)
}

// PrintNoSpecsMessage prints a "no specs" message for an empty list.
//
// Parameters:
//   - w: Writer to output to
//   - listName: Name of the list that expanded to nothing (optional)
//
// Example output:
//
//	No specs found
//	No specs found in list "packages"
func PrintNoSpecsMessage(w io.Writer, listName string) {
	if listName != "" {
		_, _ = fmt.Fprintf(w, "No specs found in list %q\n", listName)
	} else {
		_, _ = fmt.Fprintln(w, "No specs found")
	}
}
