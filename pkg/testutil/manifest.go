package testutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// ManifestBuilder provides a fluent API for building test manifests.
//
// Use this builder to construct manifest YAML for testing purposes
// without hand-writing indentation. Tokens are always double-quoted so
// sigils like % and $ survive YAML parsing.
type ManifestBuilder struct {
	envelope    bool
	definitions []definitionBlock
	specs       []string
	variants    []variantSetting
}

// definitionBlock is one named list under the definitions section.
type definitionBlock struct {
	name    string
	entries []string
}

// variantSetting is one variant definition line under the variants section.
type variantSetting struct {
	pkg  string
	name string
	def  string
}

// NewManifest creates a new ManifestBuilder.
//
// Returns:
//   - *ManifestBuilder: New builder instance ready for method chaining
func NewManifest() *ManifestBuilder {
	return &ManifestBuilder{}
}

// WithEnvelope wraps the manifest in a top-level spack key.
//
// Returns:
//   - *ManifestBuilder: Self for method chaining
func (b *ManifestBuilder) WithEnvelope() *ManifestBuilder {
	b.envelope = true
	return b
}

// WithDefinition appends a named definition list.
//
// Calling it twice with the same name produces two blocks, which the
// loader merges by extension.
//
// Parameters:
//   - name: Definition list name
//   - tokens: Plain spec tokens for the list
//
// Returns:
//   - *ManifestBuilder: Self for method chaining
func (b *ManifestBuilder) WithDefinition(name string, tokens ...string) *ManifestBuilder {
	b.definitions = append(b.definitions, definitionBlock{name: name, entries: tokens})
	return b
}

// WithSpecs appends tokens to the root specs list.
//
// Parameters:
//   - tokens: Plain spec tokens, including $name references
//
// Returns:
//   - *ManifestBuilder: Self for method chaining
func (b *ManifestBuilder) WithSpecs(tokens ...string) *ManifestBuilder {
	b.specs = append(b.specs, tokens...)
	return b
}

// WithVariant adds one variant definition for a package.
//
// The definition is written verbatim, so pass "bool" or a flow list
// like "[v110, v112]".
//
// Parameters:
//   - pkg: Package name
//   - name: Variant name
//   - def: Raw YAML value for the variant definition
//
// Returns:
//   - *ManifestBuilder: Self for method chaining
func (b *ManifestBuilder) WithVariant(pkg, name, def string) *ManifestBuilder {
	b.variants = append(b.variants, variantSetting{pkg: pkg, name: name, def: def})
	return b
}

// Build renders the manifest to YAML.
//
// Returns:
//   - string: The manifest document
func (b *ManifestBuilder) Build() string {
	var body strings.Builder

	if len(b.definitions) > 0 {
		body.WriteString("definitions:\n")
		for _, block := range b.definitions {
			fmt.Fprintf(&body, "  - %s:\n", block.name)
			for _, token := range block.entries {
				fmt.Fprintf(&body, "      - %q\n", token)
			}
		}
	}

	if len(b.specs) > 0 {
		body.WriteString("specs:\n")
		for _, token := range b.specs {
			fmt.Fprintf(&body, "  - %q\n", token)
		}
	}

	if len(b.variants) > 0 {
		body.WriteString("variants:\n")
		var lastPkg string
		for _, setting := range b.variants {
			if setting.pkg != lastPkg {
				fmt.Fprintf(&body, "  %s:\n", setting.pkg)
				lastPkg = setting.pkg
			}
			fmt.Fprintf(&body, "    %s: %s\n", setting.name, setting.def)
		}
	}

	if !b.envelope {
		return body.String()
	}

	var wrapped strings.Builder
	wrapped.WriteString("spack:\n")
	for _, line := range strings.Split(strings.TrimRight(body.String(), "\n"), "\n") {
		if line == "" {
			wrapped.WriteString("\n")
			continue
		}
		wrapped.WriteString("  " + line + "\n")
	}
	return wrapped.String()
}

// Write renders the manifest and writes it to dir/spack.yaml.
//
// Parameters:
//   - t: Testing instance for helper marking and failure reporting
//   - dir: Directory to write into, typically t.TempDir()
//
// Returns:
//   - string: Path of the written manifest
func (b *ManifestBuilder) Write(t *testing.T, dir string) string {
	t.Helper()
	return WriteManifest(t, dir, b.Build())
}

// WriteManifest writes raw manifest content to dir/spack.yaml.
//
// Use this for manifests the builder cannot express, such as matrix
// entries.
//
// Parameters:
//   - t: Testing instance for helper marking and failure reporting
//   - dir: Directory to write into, typically t.TempDir()
//   - content: Manifest YAML
//
// Returns:
//   - string: Path of the written manifest
func WriteManifest(t *testing.T, dir, content string) string {
	t.Helper()

	path := filepath.Join(dir, "spack.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("failed to write manifest: %v", err)
	}
	return path
}
