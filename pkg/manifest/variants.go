package manifest

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Jordan474/spack/pkg/spec"
)

// variantKindBool marks a variant definition as boolean.
const variantKindBool = "bool"

// decodeVariants decodes the optional variants section into a
// registry. The section maps package names to their variant
// definitions, each either the scalar "bool" or a list of allowed
// values (an empty list allows any value):
//
//	hdf5:
//	  shared: bool
//	  api: [v110, v112]
//
// Parameters:
//   - node: the YAML node of the variants section
//
// Returns:
//   - *spec.Registry: the registry, or nil when the section is absent
//   - error: error if the section shape is invalid
func decodeVariants(node *yaml.Node) (*spec.Registry, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind == 0 || (node.Kind == yaml.ScalarNode && node.Tag == "!!null") {
		return nil, nil
	}
	if node.Kind != yaml.MappingNode {
		return nil, errors.New("variants must map package names to their variant definitions")
	}

	registry := spec.NewRegistry()
	for i := 0; i+1 < len(node.Content); i += 2 {
		var pkg string
		if err := node.Content[i].Decode(&pkg); err != nil {
			return nil, fmt.Errorf("variants: %w", err)
		}
		if err := decodePackageVariants(registry, pkg, node.Content[i+1]); err != nil {
			return nil, err
		}
	}
	return registry, nil
}

// decodePackageVariants registers the variant definitions of one
// package.
//
// Parameters:
//   - registry: the registry to fill
//   - pkg: the package name
//   - node: the mapping of variant names to definitions
//
// Returns:
//   - error: error if a definition is invalid
func decodePackageVariants(registry *spec.Registry, pkg string, node *yaml.Node) error {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("variants for %s must map variant names to %q or a list of allowed values", pkg, variantKindBool)
	}
	for i := 0; i+1 < len(node.Content); i += 2 {
		var name string
		if err := node.Content[i].Decode(&name); err != nil {
			return fmt.Errorf("variants for %s: %w", pkg, err)
		}
		def, err := decodeVariantDef(node.Content[i+1])
		if err != nil {
			return fmt.Errorf("variant %s.%s: %w", pkg, name, err)
		}
		registry.Register(pkg, name, def)
	}
	return nil
}

// decodeVariantDef decodes a single variant definition node.
func decodeVariantDef(node *yaml.Node) (spec.VariantDef, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	switch node.Kind {
	case yaml.ScalarNode:
		var kind string
		if err := node.Decode(&kind); err != nil {
			return spec.VariantDef{}, err
		}
		if kind != variantKindBool {
			return spec.VariantDef{}, fmt.Errorf("unsupported kind %q, expected %q or a list of allowed values", kind, variantKindBool)
		}
		return spec.VariantDef{Bool: true}, nil
	case yaml.SequenceNode:
		var allowed []string
		if err := node.Decode(&allowed); err != nil {
			return spec.VariantDef{}, err
		}
		return spec.VariantDef{Allowed: allowed}, nil
	default:
		return spec.VariantDef{}, fmt.Errorf("must be %q or a list of allowed values", variantKindBool)
	}
}
