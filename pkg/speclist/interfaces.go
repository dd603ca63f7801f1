package speclist

import "fmt"

// Spec is an opaque constraint record produced and consumed by a
// SpecAPI. The engine never inspects a record beyond rendering it,
// so the only requirement is a canonical string form.
type Spec interface {
	fmt.Stringer
}

// SpecAPI defines the record operations the expansion engine depends
// on. Implementations own the constraint syntax and semantics; the
// engine only sequences the calls.
//
// All methods must treat their arguments as immutable. Operations
// that combine records (Constrain) return a new record rather than
// modifying either input.
type SpecAPI interface {
	// Parse builds a constraint record from its textual form.
	// The input may contain multiple whitespace-separated tokens
	// that all apply to one record.
	Parse(text string) (Spec, error)

	// Copy returns an independent deep copy of a record.
	Copy(s Spec) Spec

	// Constrain merges the other record's constraints into a copy of
	// base and returns the result. It fails when the two records are
	// incompatible.
	Constrain(base, other Spec) (Spec, error)

	// Satisfies reports whether record a fulfills every constraint
	// expressed by record b.
	Satisfies(a, b Spec) bool

	// Equal reports whether two records express identical constraints.
	Equal(a, b Spec) bool

	// SubstituteAbstractVariants rewrites abstract key=value settings
	// into their concrete typed form where the variant is known. It
	// returns the rewritten record and whether every setting could be
	// resolved; unknown settings are left in place, never rejected.
	SubstituteAbstractVariants(s Spec) (Spec, bool)
}
