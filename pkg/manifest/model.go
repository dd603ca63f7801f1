package manifest

import (
	"github.com/Jordan474/spack/pkg/spec"
	"github.com/Jordan474/spack/pkg/speclist"
)

// Manifest is a loaded environment manifest.
type Manifest struct {
	// Path is the file the manifest was loaded from. It is empty for
	// manifests built directly from data.
	Path string

	// Specs is the root spec list. It can reference every definition
	// by name.
	Specs *speclist.SpecList

	// Registry holds the variant definitions from the variants
	// section, or nil when the manifest has none.
	Registry *spec.Registry

	definitions map[string]*speclist.SpecList
	order       []string
}

// Definition returns the named definition list.
//
// Parameters:
//   - name: the definition list name
//
// Returns:
//   - *speclist.SpecList: the list when defined
//   - bool: true if the manifest defines the name
func (m *Manifest) Definition(name string) (*speclist.SpecList, bool) {
	list, ok := m.definitions[name]
	return list, ok
}

// List resolves a list name to the root specs list or a definition.
// An empty name selects the root list.
//
// Parameters:
//   - name: the list name, or empty for the root specs list
//
// Returns:
//   - *speclist.SpecList: the resolved list
//   - bool: true if the name resolves
func (m *Manifest) List(name string) (*speclist.SpecList, bool) {
	if name == "" || name == speclist.DefaultName {
		return m.Specs, true
	}
	return m.Definition(name)
}

// DefinitionNames returns the definition names in document order.
// Repeated blocks keep the position of their first appearance.
func (m *Manifest) DefinitionNames() []string {
	names := make([]string, len(m.order))
	copy(names, m.order)
	return names
}
