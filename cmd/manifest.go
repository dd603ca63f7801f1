package cmd

import (
	"github.com/Jordan474/spack/pkg/errors"
	"github.com/Jordan474/spack/pkg/manifest"
	"github.com/Jordan474/spack/pkg/speclist"
)

// loadManifestFunc allows tests to substitute manifest loading.
var loadManifestFunc = manifest.LoadManifest

// loadList loads a manifest and selects the requested spec list.
//
// Load and lookup failures are manifest authoring errors, so both carry
// the config exit code.
//
// Parameters:
//   - manifestPath: Explicit manifest path, empty to search the directory
//   - dir: Directory searched when no explicit path is given
//   - listName: List to select, empty for the root specs list
//
// Returns:
//   - *manifest.Manifest: The loaded manifest
//   - *speclist.SpecList: The selected list
//   - error: ExitError with ExitConfigError on load or lookup failure
func loadList(manifestPath, dir, listName string) (*manifest.Manifest, *speclist.SpecList, error) {
	m, err := loadManifestFunc(manifestPath, dir)
	if err != nil {
		return nil, nil, errors.NewExitError(errors.ExitConfigError, err)
	}

	list, ok := m.List(listName)
	if !ok {
		return nil, nil, errors.NewExitErrorf(errors.ExitConfigError, "spec list %q is not defined in %s", listName, m.Path)
	}

	return m, list, nil
}
