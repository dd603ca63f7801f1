package spec

import "strings"

// VersionsString returns the version constraint in display form.
//
// Returns an empty string when any version is allowed, so callers can
// substitute their own placeholder.
func (s *Spec) VersionsString() string {
	if s.Versions.IsAny() {
		return ""
	}
	return s.Versions.String()
}

// VariantsString returns the variant settings in canonical order.
//
// Boolean variants render first in sigil form (+mpi, ~shared), other
// variants follow as name=value pairs. Returns an empty string when no
// variants are set.
func (s *Spec) VariantsString() string {
	return strings.TrimSpace(renderVariants(s.Variants))
}

// CompilerString returns the compiler constraint without the leading
// percent sign, empty when the compiler is unconstrained.
func (s *Spec) CompilerString() string {
	if s.Compiler == nil {
		return ""
	}
	if s.Compiler.Versions.IsAny() {
		return s.Compiler.Name
	}
	return s.Compiler.Name + "@" + s.Compiler.Versions.String()
}

// DependenciesString returns the dependency constraints sorted by
// package name, each in ^ form, joined with single spaces.
func (s *Spec) DependenciesString() string {
	if len(s.Deps) == 0 {
		return ""
	}
	parts := make([]string, 0, len(s.Deps))
	for _, name := range s.depNames() {
		parts = append(parts, "^"+s.Deps[name].String())
	}
	return strings.Join(parts, " ")
}
