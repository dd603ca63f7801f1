// Package manifest handles loading YAML environment manifests for spack.
// A manifest carries an ordered list of named spec list definitions, the
// root specs list that may reference them, and an optional variants
// section that feeds the abstract variant substitution registry.
package manifest

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/Jordan474/spack/pkg/spec"
	"github.com/Jordan474/spack/pkg/speclist"
	"github.com/Jordan474/spack/pkg/verbose"
	"github.com/Jordan474/spack/pkg/warnings"
)

// DefaultFileName is the manifest file name looked up in the working
// directory when no explicit path is given.
const DefaultFileName = "spack.yaml"

// envelopeKey is the optional top-level mapping key that wraps the
// manifest sections.
const envelopeKey = "spack"

// DefaultMaxManifestFileSize is the maximum manifest file size (10MB).
const DefaultMaxManifestFileSize int64 = 10 * 1024 * 1024

// LoadManifest loads an environment manifest from the specified path
// or from the working directory.
//
// If manifestPath is provided, it loads that specific file. Otherwise
// it looks for spack.yaml in the working directory and fails when none
// is found. Definitions are processed in document order: each block
// sees the lists completed before it as references, and a repeated
// name extends the earlier list.
//
// Parameters:
//   - manifestPath: path to the manifest file, or empty to search workDir
//   - workDir: working directory used when manifestPath is empty
//
// Returns:
//   - *Manifest: the loaded manifest with all lists wired
//   - error: any error encountered during loading or decoding
func LoadManifest(manifestPath, workDir string) (*Manifest, error) {
	path := manifestPath
	if path == "" {
		path = filepath.Join(workDir, DefaultFileName)
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("no manifest found in %q (expected %s): %w", workDir, DefaultFileName, err)
		}
		verbose.Infof("Found local manifest: %s", path)
	} else {
		verbose.Infof("Loading manifest from: %s", path)
	}

	loaded, err := loadManifestFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest file: %w", err)
	}
	loaded.Path = path

	verbose.ManifestLoaded(path, loaded.DefinitionNames())
	return loaded, nil
}

// loadManifestFile loads a manifest file with the default size limit.
//
// Parameters:
//   - path: path to the manifest file
//
// Returns:
//   - *Manifest: the loaded manifest
//   - error: error if the file cannot be loaded or parsed
func loadManifestFile(path string) (*Manifest, error) {
	return loadManifestFileWithLimit(path, DefaultMaxManifestFileSize)
}

// loadManifestFileWithLimit loads a manifest file with a size limit.
//
// This enforces a maximum file size to prevent memory exhaustion.
//
// Parameters:
//   - path: path to the manifest file
//   - maxSize: maximum allowed file size in bytes
//
// Returns:
//   - *Manifest: the loaded manifest
//   - error: error if the file is too large, not found, or has invalid YAML
func loadManifestFileWithLimit(path string, maxSize int64) (*Manifest, error) {
	// Check file size before reading to prevent memory exhaustion
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.Size() > maxSize {
		return nil, fmt.Errorf("manifest file too large: %d bytes (max %d bytes)", info.Size(), maxSize)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	return loadManifestData(data)
}

// loadManifestData parses YAML manifest data.
//
// The manifest sections may appear at the top level or nested under a
// single "spack" envelope key. An empty document yields an empty
// manifest with no definitions and no specs.
//
// Parameters:
//   - data: YAML manifest data as bytes
//
// Returns:
//   - *Manifest: the parsed manifest
//   - error: error if the YAML is invalid or malformed
func loadManifestData(data []byte) (*Manifest, error) {
	var doc yaml.Node
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind == 0 || (root.Kind == yaml.ScalarNode && root.Tag == "!!null") {
		return buildManifest(&manifestContent{})
	}
	if root.Kind != yaml.MappingNode {
		return nil, fmt.Errorf("manifest must be a YAML mapping of sections")
	}

	content := root
	if len(root.Content) == 2 {
		var key string
		if root.Content[0].Decode(&key) == nil && key == envelopeKey {
			content = root.Content[1]
		}
	}
	warnUnknownSections(content)

	var file manifestContent
	if err := content.Decode(&file); err != nil {
		return nil, fmt.Errorf("invalid YAML: %w", err)
	}

	return buildManifest(&file)
}

// manifestContent is the raw YAML shape of a manifest document. The
// definitions and variants sections keep their node form so their
// order and structure survive into decoding.
type manifestContent struct {
	Definitions []yaml.Node      `yaml:"definitions,omitempty"`
	Specs       speclist.Entries `yaml:"specs,omitempty"`
	Variants    yaml.Node        `yaml:"variants,omitempty"`
}

// manifestSections are the recognized manifest mapping keys.
var manifestSections = map[string]bool{
	"definitions": true,
	"specs":       true,
	"variants":    true,
}

// warnUnknownSections reports manifest keys outside the known schema.
// Unknown keys are skipped rather than rejected so manifests written
// for newer versions still load.
func warnUnknownSections(content *yaml.Node) {
	if content.Kind != yaml.MappingNode {
		return
	}
	for i := 0; i+1 < len(content.Content); i += 2 {
		var key string
		if content.Content[i].Decode(&key) != nil {
			continue
		}
		if !manifestSections[key] {
			warnings.Warnf("Warning: ignoring unknown manifest section %q\n", key)
		}
	}
}

// buildManifest assembles the loaded lists from decoded manifest data.
//
// Definition blocks are processed in document order. Every block is
// constructed against the reference map of the lists completed so far,
// so a block can only reference names that appear before it. A block
// whose name already exists extends that list and hands it the newer
// reference view.
//
// Parameters:
//   - file: the decoded manifest sections
//
// Returns:
//   - *Manifest: the assembled manifest
//   - error: error if a block, entry, or variant definition is invalid
func buildManifest(file *manifestContent) (*Manifest, error) {
	registry, err := decodeVariants(&file.Variants)
	if err != nil {
		return nil, err
	}
	api := spec.NewAPI(registry)

	lists := make(map[string]*speclist.SpecList)
	var order []string
	for i := range file.Definitions {
		name, entries, err := decodeDefinitionBlock(&file.Definitions[i])
		if err != nil {
			return nil, fmt.Errorf("definitions[%d]: %w", i, err)
		}
		if name == speclist.DefaultName {
			return nil, fmt.Errorf("definitions[%d]: %q is reserved for the root spec list", i, name)
		}

		block, err := speclist.New(name, api, entries, lists)
		if err != nil {
			return nil, fmt.Errorf("definitions[%d]: %w", i, err)
		}
		if existing, ok := lists[name]; ok {
			existing.Extend(block, true)
		} else {
			lists[name] = block
			order = append(order, name)
		}
	}

	specs, err := speclist.New(speclist.DefaultName, api, file.Specs, lists)
	if err != nil {
		return nil, err
	}

	return &Manifest{
		Specs:       specs,
		Registry:    registry,
		definitions: lists,
		order:       order,
	}, nil
}
