package display

import (
	"fmt"
	"io"
	"strings"
)

// FormatConstraintGroup formats one ordered constraint group for display.
//
// Constraints within a group are joined with two spaces so multi-token
// constraints remain readable. Group numbering is 1-based.
//
// Parameters:
//   - index: Zero-based position of the group
//   - constraints: Ordered constraint strings for this group
//
// Returns:
//   - string: Numbered constraint line (e.g., "1: zlib  %gcc@12")
//
// Example:
//
//	display.FormatConstraintGroup(0, []string{"zlib", "%gcc@12"})
//	// Returns "1: zlib  %gcc@12"
func FormatConstraintGroup(index int, constraints []string) string {
	return fmt.Sprintf("%d: %s", index+1, strings.Join(constraints, "  "))
}

// PrintConstraintGroups prints all constraint groups, one per line.
//
// Does nothing if groups is empty.
//
// Parameters:
//   - w: Writer to output to
//   - groups: Ordered constraint groups to display
//
// Example output:
//
//	1: zlib  %gcc@12
//	2: hdf5  +mpi  %gcc@12
func PrintConstraintGroups(w io.Writer, groups [][]string) {
	for i, group := range groups {
		_, _ = fmt.Fprintln(w, FormatConstraintGroup(i, group))
	}
}
