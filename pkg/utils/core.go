// Package utils provides small string and display helpers shared across commands.
package utils

import "strings"

// TrimAndSplit splits a string by separator and trims whitespace from each part.
//
// It performs the following operations:
//   - Step 1: Returns empty slice if input is "" or "all"
//   - Step 2: Splits string by separator
//   - Step 3: Trims whitespace from each part
//   - Step 4: Filters out empty strings after trimming
//
// Parameters:
//   - s: The string to split and trim
//   - sep: The separator to split on
//
// Returns:
//   - []string: Slice of trimmed non-empty strings; empty slice if input is "" or "all"
func TrimAndSplit(s string, sep string) []string {
	if s == "" || s == "all" {
		return []string{}
	}

	parts := strings.Split(s, sep)
	result := make([]string, 0, len(parts))

	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}

	return result
}

// Dedupe returns the slice with duplicate entries removed, keeping first occurrences.
//
// Order is preserved. The input slice is not modified.
//
// Parameters:
//   - slice: The slice of strings to deduplicate
//
// Returns:
//   - []string: A new slice containing each distinct value once, in first-seen order
func Dedupe(slice []string) []string {
	seen := make(map[string]struct{}, len(slice))
	result := make([]string, 0, len(slice))
	for _, s := range slice {
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		result = append(result, s)
	}
	return result
}
