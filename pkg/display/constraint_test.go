package display

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestFormatConstraintGroup tests the behavior of FormatConstraintGroup.
//
// It verifies:
//   - Numbering is 1-based
//   - Constraints are joined with two spaces
//   - Single-constraint groups render without trailing separators
func TestFormatConstraintGroup(t *testing.T) {
	tests := []struct {
		name        string
		index       int
		constraints []string
		want        string
	}{
		{"single constraint", 0, []string{"zlib"}, "1: zlib"},
		{"multiple constraints", 1, []string{"hdf5", "+mpi", "%gcc@12"}, "2: hdf5  +mpi  %gcc@12"},
		{"empty group", 2, nil, "3: "},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatConstraintGroup(tt.index, tt.constraints))
		})
	}
}

// TestPrintConstraintGroups tests the behavior of PrintConstraintGroups.
//
// It verifies:
//   - Each group is printed on its own line in order
//   - Nothing is written for an empty set of groups
func TestPrintConstraintGroups(t *testing.T) {
	t.Run("ordered output", func(t *testing.T) {
		var buf bytes.Buffer
		PrintConstraintGroups(&buf, [][]string{
			{"zlib", "%gcc@12"},
			{"hdf5", "%gcc@12"},
		})

		assert.Equal(t, "1: zlib  %gcc@12\n2: hdf5  %gcc@12\n", buf.String())
	})

	t.Run("empty groups", func(t *testing.T) {
		var buf bytes.Buffer
		PrintConstraintGroups(&buf, nil)
		assert.Empty(t, buf.String())
	})
}
