package speclist

import (
	"strings"

	"github.com/Jordan474/spack/pkg/verbose"
)

// ExpandMatrix expands a matrix record into constraint combinations.
//
// It performs the following operations:
//  1. Flattens every row into a list of alternative tokens, expanding
//     nested matrices into composite tokens
//  2. Walks the Cartesian product of the rows
//  3. Orders each combination canonically and drops it when it
//     satisfies an exclude pattern
//  4. Applies the sigil to the leading token of each survivor
//  5. Parses every token of each surviving combination
//
// Parameters:
//   - m: the matrix record to expand
//   - api: record operations used for parsing and exclusion checks
//
// Returns:
//   - [][]Spec: one parsed constraint group per surviving combination
//   - error: error if a row has an invalid shape or a token fails to parse
func ExpandMatrix(m *Matrix, api SpecAPI) ([][]Spec, error) {
	return expandMatrix(m, api, "")
}

// expandMatrix is ExpandMatrix with list context for error messages.
func expandMatrix(m *Matrix, api SpecAPI, list string) ([][]Spec, error) {
	combos, err := expandMatrixTokens(m, api, list)
	if err != nil {
		return nil, err
	}

	groups := make([][]Spec, 0, len(combos))
	for _, combo := range combos {
		group := make([]Spec, 0, len(combo))
		for _, token := range combo {
			spec, err := api.Parse(token)
			if err != nil {
				return nil, &InvalidConstraintError{List: list, Text: token, Err: err}
			}
			group = append(group, spec)
		}
		groups = append(groups, group)
	}
	return groups, nil
}

// expandMatrixTokens expands a matrix into ordered token combinations.
//
// Each returned combination holds one token per row, sorted by
// OrderingKey, filtered against the exclude patterns and carrying the
// matrix sigil on its first token.
func expandMatrixTokens(m *Matrix, api SpecAPI, list string) ([][]string, error) {
	rows, err := expandRows(m, api, list)
	if err != nil {
		return nil, err
	}

	excludes := make([]Spec, 0, len(m.Exclude))
	for _, pattern := range m.Exclude {
		spec, err := api.Parse(pattern)
		if err != nil {
			return nil, &InvalidConstraintError{List: list, Text: pattern, Err: err}
		}
		excludes = append(excludes, spec)
	}

	// A matrix without rows generates nothing. An empty row empties
	// the whole product.
	total := 1
	for _, row := range rows {
		total *= len(row)
	}
	if len(rows) == 0 || total == 0 {
		verbose.MatrixExpanded(len(rows), 0, 0)
		return nil, nil
	}

	var results [][]string
	indices := make([]int, len(rows))
	for {
		combo := make([]string, len(rows))
		for i, row := range rows {
			combo[i] = row[indices[i]]
		}

		ordered := orderTokens(combo)
		kept, err := keepCombination(ordered, excludes, m.Exclude, api, list)
		if err != nil {
			return nil, err
		}
		if kept {
			if m.Sigil != "" {
				ordered[0] = m.Sigil + ordered[0]
			}
			results = append(results, ordered)
		}

		// Advance the rightmost index first so combinations come out
		// in row-major order.
		pos := len(indices) - 1
		for pos >= 0 {
			indices[pos]++
			if indices[pos] < len(rows[pos]) {
				break
			}
			indices[pos] = 0
			pos--
		}
		if pos < 0 {
			break
		}
	}

	verbose.MatrixExpanded(len(rows), total, len(results))
	return results, nil
}

// keepCombination reports whether an ordered combination survives the
// exclude patterns. The joined combination is always parsed as a
// single record, which also rejects combinations whose tokens
// conflict with each other, then checked for satisfaction against
// every pattern after best-effort variant substitution.
func keepCombination(ordered []string, excludes []Spec, patterns []string, api SpecAPI, list string) (bool, error) {
	joined := strings.Join(ordered, " ")
	test, err := api.Parse(joined)
	if err != nil {
		return false, &InvalidConstraintError{List: list, Text: joined, Err: err}
	}
	test, _ = api.SubstituteAbstractVariants(test)

	for i, exclude := range excludes {
		if api.Satisfies(test, exclude) {
			verbose.CombinationExcluded(joined, patterns[i])
			return false, nil
		}
	}
	return true, nil
}

// expandRows converts matrix rows into their alternative token lists.
//
// A sequence row contributes its flattened cells, a string row is a
// single-alternative dimension, and a nested matrix row turns each of
// its own combinations into a separate single-alternative dimension.
func expandRows(m *Matrix, api SpecAPI, list string) ([][]string, error) {
	var rows [][]string
	for _, row := range m.Rows {
		switch r := row.(type) {
		case Sequence:
			flat, err := flattenRow(r, api, list)
			if err != nil {
				return nil, err
			}
			rows = append(rows, flat)
		case Token:
			rows = append(rows, []string{string(r)})
		case *Matrix:
			flat, err := flattenRow(Sequence{r}, api, list)
			if err != nil {
				return nil, err
			}
			for _, token := range flat {
				rows = append(rows, []string{token})
			}
		default:
			return nil, &InvalidEntryError{List: list, Detail: "matrix rows must be strings, sequences or nested matrices"}
		}
	}
	return rows, nil
}

// flattenRow flattens one row into its alternative tokens.
//
// Nested sequences are flattened in place. A nested matrix cell is
// expanded and each of its combinations joined into one composite
// token, so the inner combination stays atomic within the outer
// product.
func flattenRow(row Sequence, api SpecAPI, list string) ([]string, error) {
	var out []string
	for _, cell := range row {
		switch c := cell.(type) {
		case Sequence:
			flat, err := flattenRow(c, api, list)
			if err != nil {
				return nil, err
			}
			out = append(out, flat...)
		case Token:
			out = append(out, string(c))
		case *Matrix:
			combos, err := expandMatrixTokens(c, api, list)
			if err != nil {
				return nil, err
			}
			for _, combo := range combos {
				out = append(out, strings.Join(combo, " "))
			}
		default:
			return nil, &InvalidEntryError{List: list, Detail: "matrix cells must be strings, sequences or nested matrices"}
		}
	}
	return out, nil
}
