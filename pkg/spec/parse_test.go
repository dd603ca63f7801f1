package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// mustParse parses constraint text and fails the test on error.
func mustParse(t *testing.T, text string) *Spec {
	t.Helper()
	parsed, err := Parse(text)
	require.NoError(t, err, "parse %q", text)
	return parsed
}

// TestParse verifies record parsing.
//
// It verifies:
//   - glued and space-separated qualifiers parse identically
//   - "^" switches the attachment target to a dependency
//   - "@" after "%" attaches to the compiler
func TestParse(t *testing.T) {
	t.Run("bare name", func(t *testing.T) {
		parsed := mustParse(t, "zlib")

		assert.Equal(t, "zlib", parsed.Name)
		assert.True(t, parsed.Versions.IsAny())
		assert.Nil(t, parsed.Compiler)
		assert.Empty(t, parsed.Variants)
		assert.Empty(t, parsed.Deps)
	})

	t.Run("hyphenated name", func(t *testing.T) {
		parsed := mustParse(t, "gcc-compiler")
		assert.Equal(t, "gcc-compiler", parsed.Name)
	})

	t.Run("glued qualifiers", func(t *testing.T) {
		parsed := mustParse(t, "zlib@1.2+shared%gcc@12/abc123")

		assert.Equal(t, "zlib", parsed.Name)
		assert.Equal(t, VersionRange{Lo: "1.2", Hi: "1.2"}, parsed.Versions)
		assert.Equal(t, boolVariant(true), parsed.Variants["shared"])
		require.NotNil(t, parsed.Compiler)
		assert.Equal(t, "gcc", parsed.Compiler.Name)
		assert.Equal(t, VersionRange{Lo: "12", Hi: "12"}, parsed.Compiler.Versions)
		assert.Equal(t, "abc123", parsed.Hash)
	})

	t.Run("spread qualifiers match glued", func(t *testing.T) {
		glued := mustParse(t, "zlib@1.2+shared%gcc@12")
		spread := mustParse(t, "zlib @1.2 +shared %gcc @12")

		assert.True(t, glued.Equal(spread))
	})

	t.Run("variant forms", func(t *testing.T) {
		parsed := mustParse(t, "hdf5 +mpi ~fortran -cxx build_type=Release")

		assert.Equal(t, boolVariant(true), parsed.Variants["mpi"])
		assert.Equal(t, boolVariant(false), parsed.Variants["fortran"])
		assert.Equal(t, boolVariant(false), parsed.Variants["cxx"])
		assert.Equal(t, VariantValue{Kind: AbstractVariant, Value: "Release"}, parsed.Variants["build_type"])
	})

	t.Run("flag values keep punctuation", func(t *testing.T) {
		parsed := mustParse(t, "pkg cflags=-O2~fast")

		assert.Equal(t, VariantValue{Kind: AbstractVariant, Value: "-O2~fast"}, parsed.Variants["cflags"])
	})

	t.Run("compiler version after space", func(t *testing.T) {
		parsed := mustParse(t, "pkg %gcc @12.2")

		assert.True(t, parsed.Versions.IsAny())
		require.NotNil(t, parsed.Compiler)
		assert.Equal(t, VersionRange{Lo: "12.2", Hi: "12.2"}, parsed.Compiler.Versions)
	})

	t.Run("variant closes the compiler context", func(t *testing.T) {
		parsed := mustParse(t, "pkg %gcc +x @9")

		assert.Equal(t, VersionRange{Lo: "9", Hi: "9"}, parsed.Versions)
		require.NotNil(t, parsed.Compiler)
		assert.True(t, parsed.Compiler.Versions.IsAny())
	})

	t.Run("dependency context persists", func(t *testing.T) {
		parsed := mustParse(t, "hdf5 ^zlib@1.2 +pic")

		assert.Empty(t, parsed.Variants)
		require.Contains(t, parsed.Deps, "zlib")
		dep := parsed.Deps["zlib"]
		assert.Equal(t, VersionRange{Lo: "1.2", Hi: "1.2"}, dep.Versions)
		assert.Equal(t, boolVariant(true), dep.Variants["pic"])
	})

	t.Run("repeated dependency accumulates", func(t *testing.T) {
		parsed := mustParse(t, "a ^b@1.0: ^b +x")

		require.Len(t, parsed.Deps, 1)
		dep := parsed.Deps["b"]
		assert.Equal(t, VersionRange{Lo: "1.0"}, dep.Versions)
		assert.Equal(t, boolVariant(true), dep.Variants["x"])
	})

	t.Run("version ranges intersect", func(t *testing.T) {
		parsed := mustParse(t, "pkg@1.0:3.0 @2.0:")

		assert.Equal(t, VersionRange{Lo: "2.0", Hi: "3.0"}, parsed.Versions)
	})

	t.Run("anonymous records", func(t *testing.T) {
		parsed := mustParse(t, "+shared")
		assert.Equal(t, "", parsed.Name)
		assert.Equal(t, boolVariant(true), parsed.Variants["shared"])

		parsed = mustParse(t, "%gcc@12")
		assert.Equal(t, "", parsed.Name)
		require.NotNil(t, parsed.Compiler)

		parsed = mustParse(t, "")
		assert.True(t, parsed.Equal(&Spec{}))
	})

	t.Run("hash prefixes merge", func(t *testing.T) {
		parsed := mustParse(t, "pkg/abc /abcdef")
		assert.Equal(t, "abcdef", parsed.Hash)
	})
}

// TestParseErrors verifies rejection of malformed constraint text.
func TestParseErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
		want string
	}{
		{"two package names", "one two", "more than one package name"},
		{"repeated name", "zlib zlib", "more than one package name"},
		{"missing version", "zlib@", "missing a version"},
		{"inverted range", "zlib@2.0:1.0", "inverted"},
		{"disjoint versions", "zlib@1.2 @2.0", "do not overlap"},
		{"missing dependency name", "pkg ^", "dependency name missing"},
		{"missing compiler name", "pkg %", "compiler name missing"},
		{"two compilers", "pkg %gcc %clang", "more than one compiler"},
		{"missing variant name", "pkg +", "variant name missing"},
		{"conflicting bool variant", "pkg +x ~x", "set to both"},
		{"conflicting value variant", "pkg a=1 a=2", "set to both"},
		{"missing variant value", "pkg a=", "missing a value"},
		{"invalid package name", "pkg$", "invalid package name"},
		{"missing hash", "pkg/", "hash missing"},
		{"invalid hash", "pkg/ab-cd", "invalid hash"},
		{"conflicting hashes", "pkg/abc /abd", "conflicting hashes"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.text)

			require.Error(t, err)
			parseErr, ok := IsParse(err)
			require.True(t, ok)
			assert.Equal(t, tt.text, parseErr.Text)
			assert.Contains(t, err.Error(), tt.want)
		})
	}
}
