package spec

import (
	"sort"
	"strings"
)

// VariantKind describes how a variant value was expressed and how it
// renders.
type VariantKind int

const (
	// BoolVariant renders as "+name" or "~name".
	BoolVariant VariantKind = iota
	// MultiVariant renders as "name=value" and is known to the
	// package's variant definitions.
	MultiVariant
	// AbstractVariant renders as "name=value" but has not been
	// resolved against variant definitions yet.
	AbstractVariant
)

// VariantValue is one variant setting on a record.
//
// Satisfaction and conflicts compare only the Value; the Kind decides
// rendering and whether the setting still counts as abstract.
//
// Fields:
//   - Kind: how the setting was expressed
//   - Value: the canonical comparison value, "true" or "false" for
//     boolean settings
type VariantValue struct {
	Kind  VariantKind
	Value string
}

// boolVariant builds a concrete boolean setting.
func boolVariant(enabled bool) VariantValue {
	if enabled {
		return VariantValue{Kind: BoolVariant, Value: "true"}
	}
	return VariantValue{Kind: BoolVariant, Value: "false"}
}

// render returns the constraint syntax for the setting.
func (v VariantValue) render(name string) string {
	if v.Kind == BoolVariant {
		if v.Value == "true" {
			return "+" + name
		}
		return "~" + name
	}
	return name + "=" + v.Value
}

// VariantDef describes one variant a package declares.
//
// Fields:
//   - Bool: whether the variant is boolean
//   - Allowed: permitted values for non-boolean variants, empty for
//     unrestricted
type VariantDef struct {
	Bool    bool
	Allowed []string
}

// Registry holds the variant definitions of known packages. It backs
// the substitution of abstract "name=value" settings into their typed
// form.
//
// The zero value knows no packages, leaving every abstract setting
// unresolved.
type Registry struct {
	packages map[string]map[string]VariantDef
}

// NewRegistry creates an empty variant registry.
func NewRegistry() *Registry {
	return &Registry{packages: make(map[string]map[string]VariantDef)}
}

// Register adds or replaces a variant definition for a package.
//
// Parameters:
//   - pkg: the package name
//   - variant: the variant name
//   - def: the variant definition
func (r *Registry) Register(pkg, variant string, def VariantDef) {
	if r.packages == nil {
		r.packages = make(map[string]map[string]VariantDef)
	}
	variants, ok := r.packages[pkg]
	if !ok {
		variants = make(map[string]VariantDef)
		r.packages[pkg] = variants
	}
	variants[variant] = def
}

// Lookup returns the definition of a package's variant.
//
// Parameters:
//   - pkg: the package name
//   - variant: the variant name
//
// Returns:
//   - VariantDef: the definition when found
//   - bool: true if the package declares the variant
func (r *Registry) Lookup(pkg, variant string) (VariantDef, bool) {
	if r == nil || r.packages == nil {
		return VariantDef{}, false
	}
	def, ok := r.packages[pkg][variant]
	return def, ok
}

// Packages returns the registered package names in sorted order.
func (r *Registry) Packages() []string {
	if r == nil {
		return nil
	}
	names := make([]string, 0, len(r.packages))
	for name := range r.packages {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// substitute resolves one abstract setting against a definition.
//
// Returns the resolved value and whether resolution succeeded. Values
// that contradict the definition are left abstract rather than
// rejected, since exclusion checks run on speculative records.
func (def VariantDef) substitute(value VariantValue) (VariantValue, bool) {
	if def.Bool {
		switch strings.ToLower(value.Value) {
		case "true":
			return boolVariant(true), true
		case "false":
			return boolVariant(false), true
		default:
			return value, false
		}
	}

	if len(def.Allowed) == 0 {
		return VariantValue{Kind: MultiVariant, Value: value.Value}, true
	}
	for _, allowed := range def.Allowed {
		if value.Value == allowed {
			return VariantValue{Kind: MultiVariant, Value: value.Value}, true
		}
	}
	return value, false
}

// SubstituteAbstractVariants rewrites abstract settings on a record
// and its dependencies into their typed form where the registry knows
// the variant.
//
// It performs the following operations:
//   - Looks up each abstract setting against the owning package
//   - Converts boolean definitions to "+name"/"~name" form
//   - Marks allowed multi values as concrete
//   - Leaves unknown or contradicting settings abstract
//
// Parameters:
//   - s: the record to rewrite, never modified
//   - registry: the variant definitions, may be nil
//
// Returns:
//   - *Spec: the rewritten record
//   - bool: true when every abstract setting was resolved
func SubstituteAbstractVariants(s *Spec, registry *Registry) (*Spec, bool) {
	out := s.Copy()
	complete := true
	for _, node := range out.nodes() {
		for name, value := range node.Variants {
			if value.Kind != AbstractVariant {
				continue
			}
			def, ok := registry.Lookup(node.Name, name)
			if !ok {
				complete = false
				continue
			}
			resolved, ok := def.substitute(value)
			if !ok {
				complete = false
				continue
			}
			node.Variants[name] = resolved
		}
	}
	return out, complete
}

// renderVariants renders a variant map in canonical order: boolean
// settings first, glued to the preceding text, then key=value
// settings space-separated, each group sorted by name.
func renderVariants(variants map[string]VariantValue) string {
	if len(variants) == 0 {
		return ""
	}
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)

	var b strings.Builder
	for _, name := range names {
		if value := variants[name]; value.Kind == BoolVariant {
			b.WriteString(value.render(name))
		}
	}
	for _, name := range names {
		if value := variants[name]; value.Kind != BoolVariant {
			b.WriteString(" ")
			b.WriteString(value.render(name))
		}
	}
	return b.String()
}
