package verbose

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestEnableDisable tests the behavior of Enable and Disable functions.
//
// It verifies:
//   - Disable sets enabled state to false
//   - Enable sets enabled state to true
//   - IsEnabled returns correct state
func TestEnableDisable(t *testing.T) {
	// Reset state
	Disable()
	assert.False(t, IsEnabled())

	Enable()
	assert.True(t, IsEnabled())

	Disable()
	assert.False(t, IsEnabled())
}

// TestSetWriter tests the behavior of SetWriter.
//
// It verifies:
//   - Writer can be set and messages are written to it
//   - nil writer parameter is ignored
//   - Verbose messages include [DEBUG] prefix
func TestSetWriter(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	Enable()
	Printf("test message")
	Disable()

	assert.Contains(t, buf.String(), "[DEBUG] test message")

	// Test nil writer is ignored
	SetWriter(nil)
	buf.Reset()
	Enable()
	Printf("another message")
	Disable()
	assert.Contains(t, buf.String(), "[DEBUG] another message")
}

// TestPrintf tests the behavior of Printf.
//
// It verifies:
//   - No output when verbose is disabled
//   - Formatted output appears when verbose is enabled
//   - Format string and arguments are properly interpolated
func TestPrintf(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	Printf("should not appear")
	assert.Empty(t, buf.String())

	// When enabled, output appears
	Enable()
	Printf("test %s %d", "arg", 42)
	Disable()

	assert.Contains(t, buf.String(), "[DEBUG] test arg 42")
}

// TestInfo tests the behavior of Info.
//
// It verifies:
//   - No output when verbose is disabled
//   - Message appears with [DEBUG] prefix when enabled
func TestInfo(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	Info("should not appear")
	assert.Empty(t, buf.String())

	// When enabled, output appears
	Enable()
	Info("info message")
	Disable()

	assert.Contains(t, buf.String(), "[DEBUG] info message")
}

// TestInfof tests the behavior of Infof.
//
// It verifies:
//   - No output when verbose is disabled
//   - Formatted message appears when enabled
func TestInfof(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	Infof("should not %s", "appear")
	assert.Empty(t, buf.String())

	// When enabled, output appears
	Enable()
	Infof("info %s %d", "formatted", 123)
	Disable()

	assert.Contains(t, buf.String(), "[DEBUG] info formatted 123")
}

func TestManifestLoaded(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	ManifestLoaded("/path/to/spack.yaml", []string{"compilers"})
	assert.Empty(t, buf.String())

	// With definitions
	Enable()
	ManifestLoaded("/path/to/spack.yaml", []string{"compilers", "packages"})
	output := buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Manifest loaded: /path/to/spack.yaml")
	assert.Contains(t, output, "Definitions: compilers, packages")

	// Without definitions
	buf.Reset()
	Enable()
	ManifestLoaded("/path/to/spack.yaml", nil)
	output = buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Manifest loaded: /path/to/spack.yaml")
	assert.NotContains(t, output, "Definitions:")
}

func TestReferenceExpanded(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	ReferenceExpanded("compilers", "", 3)
	assert.Empty(t, buf.String())

	// Plain reference
	Enable()
	ReferenceExpanded("compilers", "", 3)
	output := buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Reference '$compilers' expanded: 3 record(s)")

	// Sigiled reference
	buf.Reset()
	Enable()
	ReferenceExpanded("compilers", "%", 2)
	output = buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Reference '$%compilers' expanded with sigil '%': 2 record(s)")
}

func TestMatrixExpanded(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	MatrixExpanded(2, 6, 5)
	assert.Empty(t, buf.String())

	// When enabled, output appears
	Enable()
	MatrixExpanded(2, 6, 5)
	output := buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Matrix expanded: 2 row(s), 6 combination(s), 5 kept")
}

func TestCombinationExcluded(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	CombinationExcluded("zlib@1.2 %gcc", "%gcc")
	assert.Empty(t, buf.String())

	// When enabled, output appears
	Enable()
	CombinationExcluded("zlib@1.2 %gcc", "%gcc")
	output := buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Combination 'zlib@1.2 %gcc' excluded by '%gcc'")
}

func TestCacheInvalidated(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	CacheInvalidated("specs", "remove")
	assert.Empty(t, buf.String())

	// When enabled, output appears
	Enable()
	CacheInvalidated("specs", "remove")
	output := buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Caches invalidated for 'specs': remove")
}

func TestConstraintApplied(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)

	// When disabled, no output
	Disable()
	ConstraintApplied("zlib", "+shared")
	assert.Empty(t, buf.String())

	// When enabled, output appears
	Enable()
	ConstraintApplied("zlib", "+shared")
	output := buf.String()
	Disable()

	assert.Contains(t, output, "[DEBUG] Constraint applied: zlib <- +shared")
}

func TestTruncate(t *testing.T) {
	// Short string - no truncation
	assert.Equal(t, "short", truncate("short", 10))

	// Exact length - no truncation
	assert.Equal(t, "exact", truncate("exact", 5))

	// Long string - truncated
	assert.Equal(t, "this is a l...", truncate("this is a long string", 14))

	// Very short maxLen
	assert.Equal(t, "...", truncate("test", 3))
}

func TestSuppress(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)
	Enable()
	defer Disable()

	// Suppressed output is dropped even while enabled
	Suppress()
	Info("hidden")
	assert.Empty(t, buf.String())
	assert.False(t, IsEnabled())

	// Output resumes after the matching Unsuppress
	Unsuppress()
	Info("visible")
	assert.Contains(t, buf.String(), "[DEBUG] visible")
	assert.True(t, IsEnabled())
}

func TestSuppressNesting(t *testing.T) {
	buf := &bytes.Buffer{}
	SetWriter(buf)
	Enable()
	defer Disable()

	// Nested suppression only lifts once all levels are released
	Suppress()
	Suppress()
	Unsuppress()
	Info("still hidden")
	assert.Empty(t, buf.String())

	Unsuppress()
	Info("shown")
	assert.Contains(t, buf.String(), "[DEBUG] shown")

	// Unbalanced Unsuppress is a no-op
	Unsuppress()
	assert.True(t, IsEnabled())
}
