package manifest

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/Jordan474/spack/pkg/speclist"
)

// decodeDefinitionBlock decodes one element of the definitions
// sequence. A block is a mapping from exactly one list name to the
// entries of that list:
//
//	- packages: [hdf5, zlib]
//
// Parameters:
//   - node: the YAML node of the block
//
// Returns:
//   - string: the list name
//   - speclist.Entries: the decoded entries
//   - error: error if the block shape or its entries are invalid
func decodeDefinitionBlock(node *yaml.Node) (string, speclist.Entries, error) {
	if node.Kind == yaml.AliasNode {
		node = node.Alias
	}
	if node == nil || node.Kind != yaml.MappingNode {
		return "", nil, errors.New("definition block must be a mapping from one list name to its entries")
	}
	if len(node.Content) != 2 {
		return "", nil, fmt.Errorf("definition block must name exactly one list, got %d keys", len(node.Content)/2)
	}

	var name string
	if err := node.Content[0].Decode(&name); err != nil {
		return "", nil, fmt.Errorf("definition list name: %w", err)
	}
	if name == "" {
		return "", nil, errors.New("definition list name cannot be empty")
	}

	var entries speclist.Entries
	if err := node.Content[1].Decode(&entries); err != nil {
		return "", nil, fmt.Errorf("definition list %q: %w", name, err)
	}
	return name, entries, nil
}
