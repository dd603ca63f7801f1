package speclist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestExpandMatrix verifies Cartesian expansion of matrix records.
//
// It verifies:
//   - combinations come out in row-major order
//   - tokens inside a combination are canonically ordered
//   - a plain string row acts as a single-alternative dimension
func TestExpandMatrix(t *testing.T) {
	t.Run("two by two product", func(t *testing.T) {
		matrix := &Matrix{Rows: []Entry{
			Sequence{Token("zlib"), Token("hdf5")},
			Sequence{Token("%gcc"), Token("%clang")},
		}}

		groups, err := ExpandMatrix(matrix, fakeAPI{})

		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"zlib", "%gcc"},
			{"zlib", "%clang"},
			{"hdf5", "%gcc"},
			{"hdf5", "%clang"},
		}, groupStrings(groups))
	})

	t.Run("orders tokens within a combination", func(t *testing.T) {
		matrix := &Matrix{Rows: []Entry{
			Sequence{Token("+shared")},
			Sequence{Token("zlib")},
		}}

		groups, err := ExpandMatrix(matrix, fakeAPI{})

		require.NoError(t, err)
		assert.Equal(t, [][]string{{"zlib", "+shared"}}, groupStrings(groups))
	})

	t.Run("string row is a single alternative", func(t *testing.T) {
		matrix := &Matrix{Rows: []Entry{
			Token("zlib"),
			Sequence{Token("@1.0"), Token("@2.0")},
		}}

		groups, err := ExpandMatrix(matrix, fakeAPI{})

		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"zlib", "@1.0"},
			{"zlib", "@2.0"},
		}, groupStrings(groups))
	})

	t.Run("flattens nested sequences in a row", func(t *testing.T) {
		matrix := &Matrix{Rows: []Entry{
			Sequence{Token("@1.0"), Sequence{Token("@2.0"), Token("@3.0")}},
			Sequence{Token("pkg")},
		}}

		groups, err := ExpandMatrix(matrix, fakeAPI{})

		require.NoError(t, err)
		assert.Len(t, groups, 3)
	})
}

// TestExpandMatrixExclude verifies exclusion filtering.
//
// It verifies:
//   - combinations satisfying an exclude pattern are dropped
//   - abstract variant settings substitute before the check
//   - surviving combinations keep their original tokens
func TestExpandMatrixExclude(t *testing.T) {
	t.Run("drops excluded combinations", func(t *testing.T) {
		matrix := &Matrix{
			Rows: []Entry{
				Sequence{Token("pkg")},
				Sequence{Token("@1.0"), Token("@2.0")},
			},
			Exclude: []string{"pkg@2.0"},
		}

		groups, err := ExpandMatrix(matrix, fakeAPI{})

		require.NoError(t, err)
		assert.Equal(t, [][]string{{"pkg", "@1.0"}}, groupStrings(groups))
	})

	t.Run("substitutes variants before matching", func(t *testing.T) {
		matrix := &Matrix{
			Rows: []Entry{
				Sequence{Token("pkg")},
				Sequence{Token("debug=true"), Token("debug=false")},
			},
			Exclude: []string{"pkg+debug"},
		}

		groups, err := ExpandMatrix(matrix, fakeAPI{})

		require.NoError(t, err)
		assert.Equal(t, [][]string{{"pkg", "debug=false"}}, groupStrings(groups))
	})

	t.Run("can drop every combination", func(t *testing.T) {
		matrix := &Matrix{
			Rows:    []Entry{Sequence{Token("pkg")}},
			Exclude: []string{"pkg"},
		}

		groups, err := ExpandMatrix(matrix, fakeAPI{})

		require.NoError(t, err)
		assert.Empty(t, groups)
	})

	t.Run("rejects unparseable exclude patterns", func(t *testing.T) {
		matrix := &Matrix{
			Rows:    []Entry{Sequence{Token("pkg")}},
			Exclude: []string{"one two"},
		}

		_, err := ExpandMatrix(matrix, fakeAPI{})

		require.Error(t, err)
		conErr, ok := IsInvalidConstraint(err)
		require.True(t, ok)
		assert.Equal(t, "one two", conErr.Text)
	})
}

// TestExpandMatrixSigil verifies sigil application.
//
// It verifies:
//   - the sigil lands on the first token after ordering
//   - only surviving combinations receive the sigil
func TestExpandMatrixSigil(t *testing.T) {
	t.Run("prefixes the leading token", func(t *testing.T) {
		matrix := &Matrix{
			Rows: []Entry{
				Sequence{Token("+shared")},
				Sequence{Token("mpi")},
			},
			Sigil: "^",
		}

		groups, err := ExpandMatrix(matrix, fakeAPI{})

		require.NoError(t, err)
		assert.Equal(t, [][]string{{"^mpi", "+shared"}}, groupStrings(groups))
	})

	t.Run("applies after exclusion", func(t *testing.T) {
		matrix := &Matrix{
			Rows: []Entry{
				Sequence{Token("mpi"), Token("zlib")},
			},
			Exclude: []string{"zlib"},
			Sigil:   "%",
		}

		groups, err := ExpandMatrix(matrix, fakeAPI{})

		require.NoError(t, err)
		assert.Equal(t, [][]string{{"%mpi"}}, groupStrings(groups))
	})
}

// TestExpandMatrixNested verifies nested matrix handling.
//
// It verifies:
//   - a matrix cell expands to composite tokens that stay atomic in
//     the outer product
//   - a matrix row turns each inner combination into its own
//     single-alternative dimension
func TestExpandMatrixNested(t *testing.T) {
	t.Run("matrix cell yields atomic composite tokens", func(t *testing.T) {
		inner := &Matrix{Rows: []Entry{
			Sequence{Token("a")},
			Sequence{Token("@1"), Token("@2")},
		}}
		outer := &Matrix{Rows: []Entry{
			Sequence{inner, Token("b")},
			Sequence{Token("%gcc")},
		}}

		groups, err := ExpandMatrix(outer, fakeAPI{})

		require.NoError(t, err)
		assert.Equal(t, [][]string{
			{"a @1", "%gcc"},
			{"a @2", "%gcc"},
			{"b", "%gcc"},
		}, groupStrings(groups))
	})

	t.Run("matrix row yields singleton dimensions", func(t *testing.T) {
		inner := &Matrix{Rows: []Entry{
			Sequence{Token("a")},
			Sequence{Token("@1"), Token("@2")},
		}}
		outer := &Matrix{Rows: []Entry{
			inner,
			Sequence{Token("%gcc")},
		}}

		groups, err := ExpandMatrix(outer, fakeAPI{})

		require.NoError(t, err)
		require.Len(t, groups, 1)
		assert.Equal(t, []string{"a @1", "a @2", "%gcc"}, specStrings(groups[0]))
	})
}

// TestExpandMatrixEdgeCases verifies degenerate matrix shapes.
//
// It verifies:
//   - a matrix with zero rows generates nothing
//   - an empty row empties the whole product
//   - combinations whose tokens conflict are rejected
func TestExpandMatrixEdgeCases(t *testing.T) {
	t.Run("zero rows", func(t *testing.T) {
		groups, err := ExpandMatrix(&Matrix{}, fakeAPI{})

		require.NoError(t, err)
		assert.Empty(t, groups)
	})

	t.Run("empty row", func(t *testing.T) {
		matrix := &Matrix{Rows: []Entry{
			Sequence{Token("pkg")},
			Sequence{},
		}}

		groups, err := ExpandMatrix(matrix, fakeAPI{})

		require.NoError(t, err)
		assert.Empty(t, groups)
	})

	t.Run("conflicting tokens across rows", func(t *testing.T) {
		matrix := &Matrix{Rows: []Entry{
			Sequence{Token("one")},
			Sequence{Token("two")},
		}}

		_, err := ExpandMatrix(matrix, fakeAPI{})

		require.Error(t, err)
		_, ok := IsInvalidConstraint(err)
		assert.True(t, ok)
	})
}
