package speclist

import (
	"sort"
	"strings"
)

// Ordering classes for constraint tokens inside one matrix
// combination. Lower classes render earlier so the joined text forms
// a parseable constraint: package names first, then anonymous
// qualifiers, then compiler, hash and dependency tokens.
const (
	classPackage    = 1
	classQualifier  = 2
	classCompiler   = 3
	classHash       = 4
	classDependency = 5
)

// OrderingKey returns the sort class of a single constraint token.
//
// Classification depends only on the token's leading character, with
// one exception: a "=" anywhere marks a key=value qualifier.
//
// Parameters:
//   - token: the constraint token to classify
//
// Returns:
//   - int: the ordering class, ascending in render position
func OrderingKey(token string) int {
	switch {
	case strings.HasPrefix(token, "^"):
		return classDependency
	case strings.HasPrefix(token, "/"):
		return classHash
	case strings.HasPrefix(token, "%"):
		return classCompiler
	case strings.HasPrefix(token, "~"), strings.HasPrefix(token, "-"),
		strings.HasPrefix(token, "+"), strings.HasPrefix(token, "@"),
		strings.Contains(token, "="):
		return classQualifier
	default:
		return classPackage
	}
}

// orderTokens returns a new slice with the tokens sorted by their
// ordering class. The sort is stable, so tokens within one class keep
// their original relative order.
func orderTokens(tokens []string) []string {
	ordered := append([]string(nil), tokens...)
	sort.SliceStable(ordered, func(i, j int) bool {
		return OrderingKey(ordered[i]) < OrderingKey(ordered[j])
	})
	return ordered
}
