package speclist

import (
	"fmt"
	"strings"

	"github.com/Jordan474/spack/pkg/verbose"
)

// DefaultName is used for lists constructed without an explicit name.
const DefaultName = "specs"

// SpecList is a named, ordered collection of constraint entries with
// lazily computed derived views.
//
// The three views form a pipeline: Expanded resolves references,
// Constraints expands matrices into combinations, and Specs folds
// each combination into one record. Each view is cached independently
// and recomputed only after a mutation invalidates it.
//
// A SpecList is not safe for concurrent use.
type SpecList struct {
	name      string
	api       SpecAPI
	entries   []Entry
	reference map[string]*SpecList

	expanded      []Entry
	expandedFresh bool
	expanding     bool

	constraints      [][]Spec
	constraintsFresh bool

	specs      []Spec
	specsFresh bool
}

// New creates a spec list from authored entries.
//
// Parameters:
//   - name: list name used in messages, DefaultName when empty
//   - api: record operations, required
//   - entries: authored entries, deep-copied
//   - reference: named lists available to "$name" references
//
// Returns:
//   - *SpecList: the constructed list
//   - error: error if api is nil or an entry has an invalid shape
func New(name string, api SpecAPI, entries []Entry, reference map[string]*SpecList) (*SpecList, error) {
	if name == "" {
		name = DefaultName
	}
	if api == nil {
		return nil, fmt.Errorf("spec list %s requires a record API", name)
	}
	if err := validateEntries(entries, name); err != nil {
		return nil, err
	}
	return &SpecList{
		name:      name,
		api:       api,
		entries:   copyEntries(entries),
		reference: copyReferenceMap(reference),
	}, nil
}

// validateEntries rejects nil entries at construction time so the
// expansion code can assume well-formed input.
func validateEntries(entries []Entry, list string) error {
	for _, entry := range entries {
		switch v := entry.(type) {
		case Token:
		case Sequence:
			if err := validateEntries(v, list); err != nil {
				return err
			}
		case *Matrix:
			if v == nil {
				return &InvalidEntryError{List: list, Detail: "matrix entries must not be nil"}
			}
			if err := validateEntries(v.Rows, list); err != nil {
				return err
			}
		default:
			return &InvalidEntryError{List: list, Detail: "entries must be strings, sequences or matrix mappings"}
		}
	}
	return nil
}

// copyReferenceMap returns a shallow copy of a reference map. The
// referenced lists themselves are shared.
func copyReferenceMap(reference map[string]*SpecList) map[string]*SpecList {
	if reference == nil {
		return nil
	}
	out := make(map[string]*SpecList, len(reference))
	for name, list := range reference {
		out[name] = list
	}
	return out
}

// Name returns the list name.
func (l *SpecList) Name() string {
	return l.name
}

// Entries returns a deep copy of the raw authored entries.
func (l *SpecList) Entries() []Entry {
	return copyEntries(l.entries)
}

// Expanded returns the entry list with all references resolved.
//
// The result is cached until a mutation invalidates it. Callers must
// not modify the returned slice.
//
// Returns:
//   - []Entry: the reference-expanded entries
//   - error: error if a reference is undefined or part of a cycle
func (l *SpecList) Expanded() ([]Entry, error) {
	if l.expandedFresh {
		return l.expanded, nil
	}
	if l.expanding {
		return nil, &CyclicReferenceError{List: l.name}
	}

	l.expanding = true
	defer func() { l.expanding = false }()

	expanded, err := l.expandReferences(l.entries)
	if err != nil {
		return nil, err
	}
	l.expanded = expanded
	l.expandedFresh = true
	return l.expanded, nil
}

// Constraints returns the ordered constraint combinations of the
// list, one group per future record.
//
// Plain entries become single-element groups. Matrix entries expand
// into one group per surviving combination. The result is cached
// until a mutation invalidates it; callers must not modify it.
//
// Returns:
//   - [][]Spec: the constraint groups in list order
//   - error: error if expansion fails or an entry cannot be parsed
func (l *SpecList) Constraints() ([][]Spec, error) {
	if l.constraintsFresh {
		return l.constraints, nil
	}

	expanded, err := l.Expanded()
	if err != nil {
		return nil, err
	}

	var constraints [][]Spec
	for _, entry := range expanded {
		switch e := entry.(type) {
		case *Matrix:
			groups, err := expandMatrix(e, l.api, l.name)
			if err != nil {
				return nil, err
			}
			constraints = append(constraints, groups...)
		case Token:
			spec, err := l.api.Parse(string(e))
			if err != nil {
				return nil, &InvalidConstraintError{List: l.name, Text: string(e), Err: err}
			}
			constraints = append(constraints, []Spec{spec})
		default:
			return nil, &InvalidEntryError{List: l.name, Detail: fmt.Sprintf("nested sequence %s cannot be used directly as a constraint", entry)}
		}
	}
	l.constraints = constraints
	l.constraintsFresh = true
	return l.constraints, nil
}

// Specs returns the concrete records of the list, one per constraint
// group.
//
// Each group is folded left to right: the first constraint is copied
// and every following constraint merged into it. The result is cached
// until a mutation invalidates it; callers must not modify it.
//
// Returns:
//   - []Spec: the folded records in list order
//   - error: error if expansion fails or a group holds incompatible constraints
func (l *SpecList) Specs() ([]Spec, error) {
	if l.specsFresh {
		return l.specs, nil
	}

	constraints, err := l.Constraints()
	if err != nil {
		return nil, err
	}

	specs := make([]Spec, 0, len(constraints))
	for _, group := range constraints {
		if len(group) == 0 {
			continue
		}
		spec := l.api.Copy(group[0])
		for _, constraint := range group[1:] {
			verbose.ConstraintApplied(spec.String(), constraint.String())
			spec, err = l.api.Constrain(spec, constraint)
			if err != nil {
				return nil, err
			}
		}
		specs = append(specs, spec)
	}
	l.specs = specs
	l.specsFresh = true
	return l.specs, nil
}

// Len returns the number of records the list expands to.
func (l *SpecList) Len() (int, error) {
	specs, err := l.Specs()
	if err != nil {
		return 0, err
	}
	return len(specs), nil
}

// At returns the expanded record at the given position.
func (l *SpecList) At(index int) (Spec, error) {
	specs, err := l.Specs()
	if err != nil {
		return nil, err
	}
	if index < 0 || index >= len(specs) {
		return nil, fmt.Errorf("spec list %s has %d specs, index %d out of range", l.name, len(specs), index)
	}
	return specs[index], nil
}

// Add appends a constraint string to the list.
//
// A plain constraint is also appended to the expanded cache when that
// cache is fresh, since appending cannot change already-expanded
// entries. A reference invalidates the expanded cache instead. The
// constraint and record caches are always invalidated.
//
// Parameters:
//   - text: the constraint or reference string to append
func (l *SpecList) Add(text string) {
	l.entries = append(l.entries, Token(text))
	if strings.HasPrefix(text, referencePrefix) {
		l.expandedFresh = false
	} else if l.expandedFresh {
		l.expanded = append(l.expanded, Token(text))
	}
	l.constraintsFresh = false
	l.specsFresh = false
	verbose.CacheInvalidated(l.name, "add")
}

// Remove deletes a raw constraint entry from the list.
//
// Only plain string entries are candidates: references and matrix
// records never match, so constraints generated by a matrix cannot be
// removed. The match compares parsed records, not raw text.
//
// Parameters:
//   - text: the constraint to remove
//
// Returns:
//   - error: RemovalError if nothing matches, AmbiguousRemovalError if
//     several entries match, or a parse failure
func (l *SpecList) Remove(text string) error {
	target, err := l.api.Parse(text)
	if err != nil {
		return &InvalidConstraintError{List: l.name, Text: text, Err: err}
	}

	matched := -1
	count := 0
	for i, entry := range l.entries {
		token, ok := entry.(Token)
		if !ok || strings.HasPrefix(string(token), referencePrefix) {
			continue
		}
		parsed, err := l.api.Parse(string(token))
		if err != nil {
			return &InvalidConstraintError{List: l.name, Text: string(token), Err: err}
		}
		if l.api.Equal(parsed, target) {
			if matched < 0 {
				matched = i
			}
			count++
		}
	}

	if count == 0 {
		return &RemovalError{Spec: text, List: l.name}
	}
	if count > 1 {
		return &AmbiguousRemovalError{Spec: text, List: l.name, Count: count}
	}

	l.entries = append(l.entries[:matched], l.entries[matched+1:]...)
	l.invalidate("remove")
	return nil
}

// Extend appends a deep copy of another list's raw entries.
//
// Parameters:
//   - other: the list whose entries are appended
//   - copyReference: when true, this list adopts the other list's
//     reference map
func (l *SpecList) Extend(other *SpecList, copyReference bool) {
	l.entries = append(l.entries, copyEntries(other.entries)...)
	if copyReference {
		l.reference = copyReferenceMap(other.reference)
	}
	l.invalidate("extend")
}

// UpdateReference replaces the reference map and invalidates every
// cached view, since any reference may now resolve differently.
//
// Parameters:
//   - reference: the new named lists available to references
func (l *SpecList) UpdateReference(reference map[string]*SpecList) {
	l.reference = copyReferenceMap(reference)
	l.invalidate("update reference")
}

// invalidate drops all three cached views.
func (l *SpecList) invalidate(reason string) {
	l.expandedFresh = false
	l.constraintsFresh = false
	l.specsFresh = false
	verbose.CacheInvalidated(l.name, reason)
}
