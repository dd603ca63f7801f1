package utils

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// DisplayWidth returns the number of terminal cells a string occupies.
//
// Byte and rune counts both misalign table columns when a value holds
// wide characters, so padding must be computed from display cells.
//
// Parameters:
//   - val: The string to measure
//
// Returns:
//   - int: The width in character cells; wide characters count as 2
func DisplayWidth(val string) int {
	return runewidth.StringWidth(val)
}

// ToWidth pads a string with trailing spaces up to a display width.
//
// Strings already at or beyond the target width are returned
// unchanged, as is any string when the width is zero or negative.
//
// Parameters:
//   - val: The string to pad
//   - width: The target display width in character cells
//
// Returns:
//   - string: The padded string
func ToWidth(val string, width int) string {
	if width <= 0 {
		return val
	}
	pad := width - DisplayWidth(val)
	if pad <= 0 {
		return val
	}
	return val + strings.Repeat(" ", pad)
}
