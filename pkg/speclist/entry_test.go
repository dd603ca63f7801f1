package speclist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

// TestEntriesUnmarshalYAML verifies YAML decoding of spec list entries.
//
// It verifies:
//   - scalars decode to tokens
//   - nested sequences decode recursively
//   - matrix mappings decode with exclude and sigil
//   - invalid shapes are rejected with descriptive errors
func TestEntriesUnmarshalYAML(t *testing.T) {
	t.Run("decodes scalar entries", func(t *testing.T) {
		var entries Entries
		err := yaml.Unmarshal([]byte("[zlib@1.2, hdf5 +mpi]"), &entries)

		require.NoError(t, err)
		assert.Equal(t, Entries{Token("zlib@1.2"), Token("hdf5 +mpi")}, entries)
	})

	t.Run("decodes nested sequences", func(t *testing.T) {
		var entries Entries
		err := yaml.Unmarshal([]byte("[[a, b], c]"), &entries)

		require.NoError(t, err)
		assert.Equal(t, Entries{Sequence{Token("a"), Token("b")}, Token("c")}, entries)
	})

	t.Run("decodes a matrix", func(t *testing.T) {
		src := `
- matrix:
    - [zlib, hdf5]
    - ["%gcc", "%clang"]
  exclude:
    - hdf5%clang
  sigil: "^"
`
		var entries Entries
		err := yaml.Unmarshal([]byte(src), &entries)

		require.NoError(t, err)
		require.Len(t, entries, 1)
		matrix, ok := entries[0].(*Matrix)
		require.True(t, ok)
		assert.Equal(t, []Entry{
			Sequence{Token("zlib"), Token("hdf5")},
			Sequence{Token("%gcc"), Token("%clang")},
		}, matrix.Rows)
		assert.Equal(t, []string{"hdf5%clang"}, matrix.Exclude)
		assert.Equal(t, "^", matrix.Sigil)
	})

	t.Run("decodes a nested matrix cell", func(t *testing.T) {
		src := `
- matrix:
    - [{matrix: [[a], [b]]}]
    - ["%gcc"]
`
		var entries Entries
		err := yaml.Unmarshal([]byte(src), &entries)

		require.NoError(t, err)
		matrix := entries[0].(*Matrix)
		row, ok := matrix.Rows[0].(Sequence)
		require.True(t, ok)
		_, ok = row[0].(*Matrix)
		assert.True(t, ok)
	})

	t.Run("rejects a mapping without matrix key", func(t *testing.T) {
		var entries Entries
		err := yaml.Unmarshal([]byte("[{exclude: [a]}]"), &entries)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "missing the matrix key")
	})

	t.Run("rejects unknown matrix keys", func(t *testing.T) {
		var entries Entries
		err := yaml.Unmarshal([]byte("[{matrix: [[a]], excludes: [b]}]"), &entries)

		require.Error(t, err)
		assert.Contains(t, err.Error(), `unsupported matrix key "excludes"`)
	})

	t.Run("rejects null entries", func(t *testing.T) {
		var entries Entries
		err := yaml.Unmarshal([]byte("[zlib, ~]"), &entries)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must not be null")
	})

	t.Run("rejects non-sequence input", func(t *testing.T) {
		var entries Entries
		err := yaml.Unmarshal([]byte("zlib"), &entries)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "must be a sequence")
	})

	t.Run("rejects non-sequence matrix rows", func(t *testing.T) {
		var entries Entries
		err := yaml.Unmarshal([]byte("[{matrix: zlib}]"), &entries)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "matrix rows must be a sequence")
	})
}

// TestEntryString verifies the diagnostic rendering of entries.
func TestEntryString(t *testing.T) {
	t.Run("token", func(t *testing.T) {
		assert.Equal(t, "zlib@1.2", Token("zlib@1.2").String())
	})

	t.Run("sequence", func(t *testing.T) {
		seq := Sequence{Token("a"), Sequence{Token("b")}}
		assert.Equal(t, "[a, [b]]", seq.String())
	})

	t.Run("matrix", func(t *testing.T) {
		matrix := &Matrix{
			Rows:    []Entry{Sequence{Token("a"), Token("b")}},
			Exclude: []string{"a+x"},
			Sigil:   "^",
		}
		assert.Equal(t, "{matrix: [[a, b]], exclude: [a+x], sigil: ^}", matrix.String())
	})
}

// TestCopyEntries verifies deep copying of entry trees.
//
// It verifies:
//   - copies compare equal to the original
//   - modifying a copied matrix leaves the original untouched
func TestCopyEntries(t *testing.T) {
	original := []Entry{
		Token("zlib"),
		Sequence{Token("a"), &Matrix{Rows: []Entry{Sequence{Token("b")}}}},
		&Matrix{Rows: []Entry{Sequence{Token("c")}}, Exclude: []string{"c@1"}},
	}

	copied := copyEntries(original)
	require.Equal(t, original, copied)

	copiedMatrix := copied[2].(*Matrix)
	copiedMatrix.Sigil = "^"
	copiedMatrix.Exclude[0] = "changed"
	copiedMatrix.Rows[0].(Sequence)[0] = Token("changed")

	originalMatrix := original[2].(*Matrix)
	assert.Equal(t, "", originalMatrix.Sigil)
	assert.Equal(t, []string{"c@1"}, originalMatrix.Exclude)
	assert.Equal(t, Token("c"), originalMatrix.Rows[0].(Sequence)[0])
}

// TestEntryMarshalYAML verifies that entries render back to their
// authored YAML form.
func TestEntryMarshalYAML(t *testing.T) {
	entries := Entries{
		Token("zlib@1.2"),
		&Matrix{
			Rows:    []Entry{Sequence{Token("a"), Token("b")}, Sequence{Token("%gcc")}},
			Exclude: []string{"a%gcc"},
		},
	}

	data, err := yaml.Marshal(entries)
	require.NoError(t, err)

	var decoded Entries
	require.NoError(t, yaml.Unmarshal(data, &decoded))
	assert.Equal(t, entries, decoded)
}
