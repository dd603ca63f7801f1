package spec

import (
	"github.com/Jordan474/spack/pkg/speclist"
)

// API adapts this package's records to the expansion engine's record
// operations. All methods expect records produced by this API's Parse;
// a record from another implementation is a programming error.
//
// Fields:
//   - registry: variant definitions used for substitution, may be nil
type API struct {
	registry *Registry
}

// NewAPI creates a record API backed by the given variant registry.
//
// Parameters:
//   - registry: variant definitions for substitution, nil for none
//
// Returns:
//   - *API: the record API
func NewAPI(registry *Registry) *API {
	return &API{registry: registry}
}

var _ speclist.SpecAPI = (*API)(nil)

// record unwraps an engine record produced by this API.
func record(s speclist.Spec) *Spec {
	return s.(*Spec)
}

// Parse builds a record from constraint text.
func (a *API) Parse(text string) (speclist.Spec, error) {
	parsed, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return parsed, nil
}

// Copy returns an independent deep copy of a record.
func (a *API) Copy(s speclist.Spec) speclist.Spec {
	return record(s).Copy()
}

// Constrain merges the other record's constraints into a copy of base.
func (a *API) Constrain(base, other speclist.Spec) (speclist.Spec, error) {
	merged, err := record(base).Constrain(record(other))
	if err != nil {
		return nil, err
	}
	return merged, nil
}

// Satisfies reports whether record a fulfills every constraint of b.
func (a *API) Satisfies(x, y speclist.Spec) bool {
	return record(x).Satisfies(record(y))
}

// Equal reports whether two records express identical constraints.
func (a *API) Equal(x, y speclist.Spec) bool {
	return record(x).Equal(record(y))
}

// SubstituteAbstractVariants resolves abstract variant settings
// against the registry.
func (a *API) SubstituteAbstractVariants(s speclist.Spec) (speclist.Spec, bool) {
	return SubstituteAbstractVariants(record(s), a.registry)
}
