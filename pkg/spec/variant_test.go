package spec

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRegistry verifies variant definition storage.
func TestRegistry(t *testing.T) {
	t.Run("register and lookup", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register("hdf5", "mpi", VariantDef{Bool: true})
		registry.Register("hdf5", "build_type", VariantDef{Allowed: []string{"Debug", "Release"}})

		def, ok := registry.Lookup("hdf5", "mpi")
		require.True(t, ok)
		assert.True(t, def.Bool)

		_, ok = registry.Lookup("hdf5", "unknown")
		assert.False(t, ok)

		_, ok = registry.Lookup("unknown", "mpi")
		assert.False(t, ok)
	})

	t.Run("nil registry knows nothing", func(t *testing.T) {
		var registry *Registry

		_, ok := registry.Lookup("hdf5", "mpi")
		assert.False(t, ok)
	})

	t.Run("packages are sorted", func(t *testing.T) {
		registry := NewRegistry()
		registry.Register("zlib", "shared", VariantDef{Bool: true})
		registry.Register("hdf5", "mpi", VariantDef{Bool: true})

		assert.Equal(t, []string{"hdf5", "zlib"}, registry.Packages())
	})
}

// TestSubstituteAbstractVariants verifies substitution of abstract
// settings.
//
// It verifies:
//   - boolean definitions convert "name=true" to "+name" form
//   - allowed multi values become concrete
//   - unknown and contradicting settings stay abstract
//   - dependencies substitute too
//   - the input record is never modified
func TestSubstituteAbstractVariants(t *testing.T) {
	registry := NewRegistry()
	registry.Register("hdf5", "mpi", VariantDef{Bool: true})
	registry.Register("hdf5", "build_type", VariantDef{Allowed: []string{"Debug", "Release"}})
	registry.Register("hdf5", "api", VariantDef{})
	registry.Register("zlib", "shared", VariantDef{Bool: true})

	t.Run("bool settings", func(t *testing.T) {
		spec := mustParse(t, "hdf5 mpi=true")

		out, complete := SubstituteAbstractVariants(spec, registry)

		assert.True(t, complete)
		assert.Equal(t, "hdf5+mpi", out.String())
		assert.Equal(t, "hdf5 mpi=true", spec.String())
	})

	t.Run("bool false settings", func(t *testing.T) {
		out, complete := SubstituteAbstractVariants(mustParse(t, "hdf5 mpi=False"), registry)

		assert.True(t, complete)
		assert.Equal(t, "hdf5~mpi", out.String())
	})

	t.Run("allowed multi value", func(t *testing.T) {
		out, complete := SubstituteAbstractVariants(mustParse(t, "hdf5 build_type=Release"), registry)

		assert.True(t, complete)
		assert.Equal(t, MultiVariant, out.Variants["build_type"].Kind)
	})

	t.Run("unrestricted multi value", func(t *testing.T) {
		out, complete := SubstituteAbstractVariants(mustParse(t, "hdf5 api=v110"), registry)

		assert.True(t, complete)
		assert.Equal(t, MultiVariant, out.Variants["api"].Kind)
	})

	t.Run("disallowed value stays abstract", func(t *testing.T) {
		out, complete := SubstituteAbstractVariants(mustParse(t, "hdf5 build_type=Fast"), registry)

		assert.False(t, complete)
		assert.Equal(t, AbstractVariant, out.Variants["build_type"].Kind)
	})

	t.Run("unknown variant stays abstract", func(t *testing.T) {
		out, complete := SubstituteAbstractVariants(mustParse(t, "hdf5 threads=on"), registry)

		assert.False(t, complete)
		assert.Equal(t, AbstractVariant, out.Variants["threads"].Kind)
	})

	t.Run("unknown package stays abstract", func(t *testing.T) {
		_, complete := SubstituteAbstractVariants(mustParse(t, "other mpi=true"), registry)

		assert.False(t, complete)
	})

	t.Run("dependencies substitute", func(t *testing.T) {
		out, complete := SubstituteAbstractVariants(mustParse(t, "hdf5 mpi=true ^zlib shared=true"), registry)

		assert.True(t, complete)
		assert.Equal(t, "hdf5+mpi ^zlib+shared", out.String())
	})

	t.Run("nil registry resolves nothing", func(t *testing.T) {
		spec := mustParse(t, "hdf5 mpi=true")

		out, complete := SubstituteAbstractVariants(spec, nil)

		assert.False(t, complete)
		assert.True(t, out.Equal(spec))
	})
}
