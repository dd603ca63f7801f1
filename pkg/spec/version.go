package spec

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// parsedVersion represents a parsed and normalized version string.
//
// Fields:
//   - raw: The original raw version string as provided
//   - canonical: The canonical semver representation (e.g., "v1.2.3")
//   - parts: The numeric dotted segments extracted from the version
//   - hasNumbers: Whether numeric segments were successfully extracted
type parsedVersion struct {
	raw        string
	canonical  string
	parts      []int
	hasNumbers bool
}

// parseVersion parses a version string into comparable form.
//
// It performs the following operations:
//   - Attempts semver canonicalization, padding missing segments
//   - Extracts numeric dotted segments as a fallback
//   - Keeps the raw string for named versions like "develop"
//
// Parameters:
//   - version: The version string to parse (e.g., "1.2", "2022.1.0", "develop")
//
// Returns:
//   - parsedVersion: The parsed version with extracted components
func parseVersion(version string) parsedVersion {
	cleaned := strings.TrimSpace(version)
	pv := parsedVersion{raw: cleaned}
	if cleaned == "" {
		return pv
	}

	pv.canonical = canonicalSemver(cleaned)

	parts := strings.FieldsFunc(cleaned, func(r rune) bool {
		return r == '.' || r == '-' || r == '_'
	})
	for _, part := range parts {
		value, err := strconv.Atoi(part)
		if err != nil {
			break
		}
		pv.parts = append(pv.parts, value)
	}
	pv.hasNumbers = len(pv.parts) > 0

	return pv
}

// CompareVersions compares two version strings and returns their ordering.
//
// It performs the following operations:
//   - Prefers semver comparison when both canonicalize
//   - Falls back to segment-wise numeric comparison, treating missing
//     segments as zero
//   - Uses string comparison as final fallback
//
// Parameters:
//   - a: The first version to compare
//   - b: The second version to compare
//
// Returns:
//   - int: Negative if a < b, zero if a == b, positive if a > b
func CompareVersions(a, b string) int {
	left := parseVersion(a)
	right := parseVersion(b)

	if left.canonical != "" && right.canonical != "" {
		if cmp := semver.Compare(left.canonical, right.canonical); cmp != 0 {
			return cmp
		}
		return strings.Compare(left.raw, right.raw)
	}

	if left.hasNumbers && right.hasNumbers {
		length := len(left.parts)
		if len(right.parts) > length {
			length = len(right.parts)
		}
		for i := 0; i < length; i++ {
			if cmp := compareInts(segmentAt(left.parts, i), segmentAt(right.parts, i)); cmp != 0 {
				return cmp
			}
		}
	}

	return strings.Compare(left.raw, right.raw)
}

// segmentAt returns the numeric segment at an index, zero when absent.
func segmentAt(parts []int, index int) int {
	if index >= len(parts) {
		return 0
	}
	return parts[index]
}

// compareInts compares two integers and returns their ordering.
//
// Parameters:
//   - a: The first integer to compare
//   - b: The second integer to compare
//
// Returns:
//   - int: 1 if a > b, -1 if a < b, 0 if a == b
func compareInts(a, b int) int {
	switch {
	case a > b:
		return 1
	case a < b:
		return -1
	default:
		return 0
	}
}

// canonicalSemver converts a version string to canonical semver format.
//
// It performs the following operations:
//   - Adds a "v" prefix if missing
//   - Pads missing minor/patch segments with zeros until valid semver
//     is found
//   - Returns the canonical form using semver.Canonical
//
// Parameters:
//   - version: The version string to canonicalize (e.g., "1.2", "v1.2.3")
//
// Returns:
//   - string: Canonical semver string (e.g., "v1.2.0"); empty string if not valid semver
func canonicalSemver(version string) string {
	cleaned := strings.TrimSpace(version)
	if cleaned == "" {
		return ""
	}

	if !strings.HasPrefix(cleaned, "v") {
		cleaned = "v" + cleaned
	}

	trimmed := strings.TrimPrefix(cleaned, "v")
	parts := strings.Split(trimmed, ".")
	for len(parts) > 0 && len(parts) < 3 {
		candidate := "v" + strings.Join(parts, ".")
		if semver.IsValid(candidate) {
			return semver.Canonical(candidate)
		}
		parts = append(parts, "0")
	}

	if semver.IsValid(cleaned) {
		return semver.Canonical(cleaned)
	}

	return ""
}

// VersionRange is a closed version interval. An empty bound is
// unbounded on that side; the zero value matches any version.
//
// Fields:
//   - Lo: The lowest version included, empty for no lower bound
//   - Hi: The highest version included, empty for no upper bound
type VersionRange struct {
	Lo string
	Hi string
}

// parseVersionRange parses the text after a "@" into a range.
//
// Accepted forms are "1.2" (exact), "1.2:1.8", "1.2:", ":1.8" and ":".
//
// Parameters:
//   - text: The version constraint text without the "@" prefix
//
// Returns:
//   - VersionRange: the parsed range
//   - error: error if the text is empty or the bounds are inverted
func parseVersionRange(text string) (VersionRange, error) {
	if text == "" {
		return VersionRange{}, fmt.Errorf("version constraint is missing a version")
	}

	lo, hi, isRange := strings.Cut(text, ":")
	if !isRange {
		return VersionRange{Lo: text, Hi: text}, nil
	}
	if strings.Contains(hi, ":") {
		return VersionRange{}, fmt.Errorf("version range %q has more than one colon", text)
	}
	if lo != "" && hi != "" && CompareVersions(lo, hi) > 0 {
		return VersionRange{}, fmt.Errorf("version range %q is inverted", text)
	}
	return VersionRange{Lo: lo, Hi: hi}, nil
}

// IsAny reports whether the range allows every version.
func (r VersionRange) IsAny() bool {
	return r.Lo == "" && r.Hi == ""
}

// String renders the range in constraint syntax, without the "@".
func (r VersionRange) String() string {
	if r.Lo != "" && r.Lo == r.Hi {
		return r.Lo
	}
	return r.Lo + ":" + r.Hi
}

// Subset reports whether every version in the range is also in other.
//
// Parameters:
//   - other: the containing range to test against
//
// Returns:
//   - bool: true when the range is fully contained in other
func (r VersionRange) Subset(other VersionRange) bool {
	if other.Lo != "" {
		if r.Lo == "" || CompareVersions(r.Lo, other.Lo) < 0 {
			return false
		}
	}
	if other.Hi != "" {
		if r.Hi == "" || CompareVersions(r.Hi, other.Hi) > 0 {
			return false
		}
	}
	return true
}

// Intersect returns the overlap of two ranges.
//
// Parameters:
//   - other: the range to intersect with
//
// Returns:
//   - VersionRange: the overlapping range
//   - bool: false when the ranges do not overlap
func (r VersionRange) Intersect(other VersionRange) (VersionRange, bool) {
	lo := r.Lo
	if lo == "" || (other.Lo != "" && CompareVersions(other.Lo, lo) > 0) {
		lo = other.Lo
	}
	hi := r.Hi
	if hi == "" || (other.Hi != "" && CompareVersions(other.Hi, hi) < 0) {
		hi = other.Hi
	}
	if lo != "" && hi != "" && CompareVersions(lo, hi) > 0 {
		return VersionRange{}, false
	}
	return VersionRange{Lo: lo, Hi: hi}, true
}
