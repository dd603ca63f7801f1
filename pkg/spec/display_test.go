package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDisplayStrings tests the per-component display helpers.
//
// It verifies:
//   - VersionsString is empty for unconstrained versions
//   - VariantsString renders boolean sigils before name=value pairs
//   - CompilerString drops the percent sign and keeps versions
//   - DependenciesString sorts dependencies and keeps the caret form
func TestDisplayStrings(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		versions string
		variants string
		compiler string
		deps     string
	}{
		{
			name:     "bare package",
			text:     "zlib",
			versions: "",
			variants: "",
			compiler: "",
			deps:     "",
		},
		{
			name:     "versioned with compiler",
			text:     "zlib@1.2:1.8%gcc@12",
			versions: "1.2:1.8",
			variants: "",
			compiler: "gcc@12",
			deps:     "",
		},
		{
			name:     "variants in canonical order",
			text:     "hdf5+mpi~shared api=v112",
			versions: "",
			variants: "+mpi~shared api=v112",
			compiler: "",
			deps:     "",
		},
		{
			name:     "dependencies sorted by name",
			text:     "trilinos ^zlib@1.2 ^mpich",
			versions: "",
			variants: "",
			compiler: "",
			deps:     "^mpich ^zlib@1.2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, err := Parse(tt.text)
			require.NoError(t, err)

			assert.Equal(t, tt.versions, s.VersionsString())
			assert.Equal(t, tt.variants, s.VariantsString())
			assert.Equal(t, tt.compiler, s.CompilerString())
			assert.Equal(t, tt.deps, s.DependenciesString())
		})
	}
}

// TestCompilerStringUnversioned tests CompilerString for a compiler
// without a version constraint.
//
// It verifies:
//   - Only the compiler name is returned
func TestCompilerStringUnversioned(t *testing.T) {
	s, err := Parse("zlib%clang")
	require.NoError(t, err)
	assert.Equal(t, "clang", s.CompilerString())
}
