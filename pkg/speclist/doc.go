// Package speclist implements the constraint-list expansion engine.
//
// A spec list is a user-authored, ordered collection of constraint
// entries. An entry is one of:
//   - a plain constraint string ("zlib@1.2 +shared")
//   - a nested sequence of entries
//   - a matrix record: rows of alternatives whose Cartesian product
//     generates constraint combinations, optionally filtered by an
//     exclude list and tagged with a sigil
//
// Strings beginning with "$" are references to other named lists and
// are spliced in place during expansion. A reference may carry a sigil
// ("$^name", "$%name") that is propagated onto every spliced element.
//
// The engine produces three derived views of a list, each computed
// lazily and cached until a mutation invalidates it:
//   - Expanded: the entry list with all references resolved
//   - Constraints: ordered constraint combinations, one per future spec
//   - Specs: concrete records built by folding each combination
//
// Constraint records themselves are opaque to this package. All record
// operations (parsing, constraining, satisfaction) are delegated to a
// SpecAPI implementation supplied at construction.
package speclist
