package display

import (
	"strings"

	"github.com/Jordan474/spack/pkg/constants"
)

// SafeVersionsValue returns a display-safe version constraint.
//
// If the value is empty or whitespace-only, returns "*" because an
// absent version constraint admits any version.
// Otherwise returns the trimmed value.
//
// Parameters:
//   - val: The version constraint string, may be empty
//
// Returns:
//   - string: The trimmed value, or "*" if empty
//
// Example:
//
//	display.SafeVersionsValue("1.2:1.8")  // Returns "1.2:1.8"
//	display.SafeVersionsValue("")         // Returns "*"
func SafeVersionsValue(val string) string {
	trimmed := strings.TrimSpace(val)
	if trimmed == "" {
		return constants.PlaceholderAny
	}
	return trimmed
}

// SafeCellValue returns a display-safe value for an optional spec field.
//
// If the value is empty or whitespace-only, returns "-" so empty table
// cells stay visually distinct from padding.
// Otherwise returns the trimmed value.
//
// Parameters:
//   - val: The field value, may be empty
//
// Returns:
//   - string: The trimmed value, or "-" if empty
//
// Example:
//
//	display.SafeCellValue("gcc@12")  // Returns "gcc@12"
//	display.SafeCellValue("  ")      // Returns "-"
func SafeCellValue(val string) string {
	trimmed := strings.TrimSpace(val)
	if trimmed == "" {
		return constants.PlaceholderNone
	}
	return trimmed
}
