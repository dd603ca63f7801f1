// Package constants provides centralized string constants used throughout the application.
// This eliminates magic strings and provides a single source of truth for status values.
package constants

// List status constants represent the state of a spec list after expansion.
const (
	// StatusValid indicates the list expanded without errors.
	StatusValid = "valid"

	// StatusInvalid indicates the list failed to expand.
	StatusInvalid = "invalid"

	// StatusError indicates the manifest could not be read or parsed at all.
	StatusError = "error"
)

// Placeholder values for display when data is not available.
const (
	// PlaceholderAny is used when a version is unconstrained.
	PlaceholderAny = "*"

	// PlaceholderNone is used when an optional spec field is absent.
	PlaceholderNone = "-"
)

// Icon constants for status display.
// These provide visual indicators for list states in CLI output.
const (
	// IconSuccess indicates a successful or positive state (green circle).
	IconSuccess = "🟢"

	// IconError indicates an error or failed state (red X).
	IconError = "❌"

	// IconCheckmark indicates a passed check (checkmark).
	IconCheckmark = "✓"

	// IconCross indicates a failed check (cross).
	IconCross = "✗"

	// IconWarn is the warning prefix for messages.
	IconWarn = "⚠️"
)
