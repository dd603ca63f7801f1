package spec

import (
	"fmt"
	"sort"
	"strings"
)

// Spec is a package constraint record: a package name plus the
// constraints applied to it. Every component is optional, so the zero
// value is the anonymous record that constrains nothing.
//
// Fields:
//   - Name: the package name, empty for anonymous records
//   - Versions: the allowed version range
//   - Compiler: the compiler constraint, nil when unconstrained
//   - Variants: variant settings by name
//   - Hash: an installation hash prefix
//   - Deps: dependency constraints by package name
type Spec struct {
	Name     string
	Versions VersionRange
	Compiler *CompilerSpec
	Variants map[string]VariantValue
	Hash     string
	Deps     map[string]*Spec
}

// CompilerSpec constrains the compiler of a record.
//
// Fields:
//   - Name: the compiler name
//   - Versions: the allowed compiler version range
type CompilerSpec struct {
	Name     string
	Versions VersionRange
}

// String renders the record in canonical constraint syntax: name,
// versions, variants, compiler, hash, then dependencies sorted by
// name.
func (s *Spec) String() string {
	var b strings.Builder
	b.WriteString(s.Name)
	if !s.Versions.IsAny() {
		b.WriteString("@")
		b.WriteString(s.Versions.String())
	}
	b.WriteString(renderVariants(s.Variants))
	if s.Compiler != nil {
		b.WriteString("%")
		b.WriteString(s.Compiler.Name)
		if !s.Compiler.Versions.IsAny() {
			b.WriteString("@")
			b.WriteString(s.Compiler.Versions.String())
		}
	}
	if s.Hash != "" {
		b.WriteString("/")
		b.WriteString(s.Hash)
	}
	for _, name := range s.depNames() {
		b.WriteString(" ^")
		b.WriteString(s.Deps[name].String())
	}
	return strings.TrimSpace(b.String())
}

// Copy returns an independent deep copy of the record.
func (s *Spec) Copy() *Spec {
	if s == nil {
		return nil
	}
	out := &Spec{Name: s.Name, Versions: s.Versions, Hash: s.Hash}
	if s.Compiler != nil {
		compiler := *s.Compiler
		out.Compiler = &compiler
	}
	if s.Variants != nil {
		out.Variants = make(map[string]VariantValue, len(s.Variants))
		for name, value := range s.Variants {
			out.Variants[name] = value
		}
	}
	if s.Deps != nil {
		out.Deps = make(map[string]*Spec, len(s.Deps))
		for name, dep := range s.Deps {
			out.Deps[name] = dep.Copy()
		}
	}
	return out
}

// Equal reports whether two records express identical constraints.
func (s *Spec) Equal(other *Spec) bool {
	if s == nil || other == nil {
		return s == other
	}
	if s.Name != other.Name || s.Versions != other.Versions || s.Hash != other.Hash {
		return false
	}
	if (s.Compiler == nil) != (other.Compiler == nil) {
		return false
	}
	if s.Compiler != nil && *s.Compiler != *other.Compiler {
		return false
	}
	if len(s.Variants) != len(other.Variants) {
		return false
	}
	for name, value := range s.Variants {
		if other.Variants[name] != value {
			return false
		}
	}
	if len(s.Deps) != len(other.Deps) {
		return false
	}
	for name, dep := range s.Deps {
		if !dep.Equal(other.Deps[name]) {
			return false
		}
	}
	return true
}

// Satisfies reports whether the record fulfills every constraint
// expressed by other.
//
// It performs the following operations:
//   - Matches the package name when other names one
//   - Requires the version range to be a subset of other's range
//   - Requires every variant of other to be present with the same value
//   - Matches the compiler name and version subset
//   - Matches the hash by prefix
//   - Recurses into other's dependency constraints
//
// An unconstrained component of other is always fulfilled; an
// unconstrained component of the record never fulfills a constrained
// one.
//
// Parameters:
//   - other: the constraint to test against
//
// Returns:
//   - bool: true when every constraint of other holds for the record
func (s *Spec) Satisfies(other *Spec) bool {
	if other == nil {
		return true
	}
	if other.Name != "" && s.Name != other.Name {
		return false
	}
	if !other.Versions.IsAny() {
		if s.Versions.IsAny() || !s.Versions.Subset(other.Versions) {
			return false
		}
	}
	for name, want := range other.Variants {
		have, ok := s.Variants[name]
		if !ok || have.Value != want.Value {
			return false
		}
	}
	if other.Compiler != nil {
		if s.Compiler == nil || s.Compiler.Name != other.Compiler.Name {
			return false
		}
		if !other.Compiler.Versions.IsAny() {
			if s.Compiler.Versions.IsAny() || !s.Compiler.Versions.Subset(other.Compiler.Versions) {
				return false
			}
		}
	}
	if other.Hash != "" && !strings.HasPrefix(s.Hash, other.Hash) {
		return false
	}
	for name, wantDep := range other.Deps {
		haveDep, ok := s.Deps[name]
		if !ok || !haveDep.Satisfies(wantDep) {
			return false
		}
	}
	return true
}

// Constrain merges other's constraints into a copy of the record.
//
// It performs the following operations:
//   - Adopts other's name, compiler and hash where the record is
//     unconstrained
//   - Intersects version ranges
//   - Merges variant settings, upgrading abstract settings to their
//     typed form when other carries one
//   - Recursively constrains dependencies shared by name
//
// Parameters:
//   - other: the constraints to apply, never modified
//
// Returns:
//   - *Spec: the merged record
//   - error: ConflictError if any component is incompatible
func (s *Spec) Constrain(other *Spec) (*Spec, error) {
	out := s.Copy()
	if other == nil {
		return out, nil
	}
	conflict := func(format string, args ...interface{}) error {
		return &ConflictError{Spec: s.String(), Other: other.String(), Detail: fmt.Sprintf(format, args...)}
	}

	if other.Name != "" {
		if out.Name != "" && out.Name != other.Name {
			return nil, conflict("package names %s and %s differ", out.Name, other.Name)
		}
		out.Name = other.Name
	}

	versions, ok := out.Versions.Intersect(other.Versions)
	if !ok {
		return nil, conflict("versions @%s and @%s do not overlap", out.Versions, other.Versions)
	}
	out.Versions = versions

	for name, value := range other.Variants {
		have, ok := out.Variants[name]
		if !ok {
			out.setVariant(name, value)
			continue
		}
		if have.Value != value.Value {
			return nil, conflict("variant %s set to both %q and %q", name, have.Value, value.Value)
		}
		if have.Kind == AbstractVariant && value.Kind != AbstractVariant {
			out.Variants[name] = value
		}
	}

	if other.Compiler != nil {
		if out.Compiler == nil {
			compiler := *other.Compiler
			out.Compiler = &compiler
		} else {
			if out.Compiler.Name != other.Compiler.Name {
				return nil, conflict("compilers %s and %s differ", out.Compiler.Name, other.Compiler.Name)
			}
			versions, ok := out.Compiler.Versions.Intersect(other.Compiler.Versions)
			if !ok {
				return nil, conflict("compiler versions @%s and @%s do not overlap", out.Compiler.Versions, other.Compiler.Versions)
			}
			out.Compiler.Versions = versions
		}
	}

	if other.Hash != "" {
		switch {
		case out.Hash == "", strings.HasPrefix(other.Hash, out.Hash):
			out.Hash = other.Hash
		case strings.HasPrefix(out.Hash, other.Hash):
		default:
			return nil, conflict("hashes /%s and /%s differ", out.Hash, other.Hash)
		}
	}

	for name, dep := range other.Deps {
		existing, ok := out.Deps[name]
		if !ok {
			if out.Deps == nil {
				out.Deps = make(map[string]*Spec)
			}
			out.Deps[name] = dep.Copy()
			continue
		}
		merged, err := existing.Constrain(dep)
		if err != nil {
			return nil, err
		}
		out.Deps[name] = merged
	}

	return out, nil
}

// setVariant stores a variant setting, allocating the map on first use.
func (s *Spec) setVariant(name string, value VariantValue) {
	if s.Variants == nil {
		s.Variants = make(map[string]VariantValue)
	}
	s.Variants[name] = value
}

// depNames returns the dependency names in sorted order.
func (s *Spec) depNames() []string {
	if len(s.Deps) == 0 {
		return nil
	}
	names := make([]string, 0, len(s.Deps))
	for name := range s.Deps {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// nodes returns the record and its dependencies in stable order.
func (s *Spec) nodes() []*Spec {
	nodes := []*Spec{s}
	for _, name := range s.depNames() {
		nodes = append(nodes, s.Deps[name])
	}
	return nodes
}
