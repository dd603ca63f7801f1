package display

import (
	"fmt"

	"github.com/Jordan474/spack/pkg/constants"
)

// FormatStatus formats a status string with the appropriate icon.
//
// Parameters:
//   - status: The status string (e.g., "valid", "invalid", "error")
//
// Returns:
//   - string: Formatted status with icon prefix (e.g., "✓ valid")
//
// Example:
//
//	display.FormatStatus("valid")    // Returns "✓ valid"
//	display.FormatStatus("invalid")  // Returns "✗ invalid"
func FormatStatus(status string) string {
	icon := StatusIcon(status)
	if icon == "" {
		return status
	}
	return fmt.Sprintf("%s %s", icon, status)
}

// StatusIcon returns the icon for a given status.
//
// Parameters:
//   - status: The status string
//
// Returns:
//   - string: The icon for this status, or empty string if unknown
func StatusIcon(status string) string {
	switch status {
	case constants.StatusValid:
		return constants.IconCheckmark
	case constants.StatusInvalid:
		return constants.IconCross
	case constants.StatusError:
		return constants.IconError
	default:
		return ""
	}
}

// IsFailureStatus returns true if the status indicates failure.
//
// Parameters:
//   - status: The status string to check
//
// Returns:
//   - bool: true if status is invalid or error
func IsFailureStatus(status string) bool {
	return status == constants.StatusInvalid || status == constants.StatusError
}
