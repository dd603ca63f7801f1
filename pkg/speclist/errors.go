package speclist

import (
	"errors"
	"fmt"
)

// UndefinedReferenceError indicates a "$name" token that names a list
// absent from the container's reference map.
//
// Fields:
//   - List: name of the list holding the dangling reference
//   - Name: the referenced list name that could not be resolved
type UndefinedReferenceError struct {
	List string
	Name string
}

// Error returns a human-readable error message.
func (e *UndefinedReferenceError) Error() string {
	return fmt.Sprintf("spec list %s refers to named list %s which does not appear in its reference map", e.List, e.Name)
}

// IsUndefinedReference checks if an error is an UndefinedReferenceError.
//
// Parameters:
//   - err: the error to check
//
// Returns:
//   - *UndefinedReferenceError: the typed error if found, nil otherwise
//   - bool: true if the error is an UndefinedReferenceError
func IsUndefinedReference(err error) (*UndefinedReferenceError, bool) {
	var refErr *UndefinedReferenceError
	if errors.As(err, &refErr) {
		return refErr, true
	}
	return nil, false
}

// CyclicReferenceError indicates that resolving a reference re-entered
// a list that is already being expanded.
//
// Fields:
//   - List: name of the list detected as part of the cycle
type CyclicReferenceError struct {
	List string
}

// Error returns a human-readable error message.
func (e *CyclicReferenceError) Error() string {
	return fmt.Sprintf("spec list %s is part of a reference cycle", e.List)
}

// IsCyclicReference checks if an error is a CyclicReferenceError.
//
// Parameters:
//   - err: the error to check
//
// Returns:
//   - *CyclicReferenceError: the typed error if found, nil otherwise
//   - bool: true if the error is a CyclicReferenceError
func IsCyclicReference(err error) (*CyclicReferenceError, bool) {
	var cycErr *CyclicReferenceError
	if errors.As(err, &cycErr) {
		return cycErr, true
	}
	return nil, false
}

// RemovalError indicates a removal target that matched no raw entry.
//
// Matrix-generated constraints never match because removal only
// inspects plain string entries.
//
// Fields:
//   - Spec: the constraint text passed to Remove
//   - List: name of the list the removal was attempted on
type RemovalError struct {
	Spec string
	List string
}

// Error returns a human-readable error message.
func (e *RemovalError) Error() string {
	return fmt.Sprintf("cannot remove %s from spec list %s: either %s is not in %s or %s is expanded from a matrix and cannot be removed directly",
		e.Spec, e.List, e.Spec, e.List, e.Spec)
}

// IsRemoval checks if an error is a RemovalError.
//
// Parameters:
//   - err: the error to check
//
// Returns:
//   - *RemovalError: the typed error if found, nil otherwise
//   - bool: true if the error is a RemovalError
func IsRemoval(err error) (*RemovalError, bool) {
	var remErr *RemovalError
	if errors.As(err, &remErr) {
		return remErr, true
	}
	return nil, false
}

// AmbiguousRemovalError indicates a removal target that matched more
// than one raw entry, so no single entry can be chosen.
//
// Fields:
//   - Spec: the constraint text passed to Remove
//   - List: name of the list the removal was attempted on
//   - Count: how many raw entries matched
type AmbiguousRemovalError struct {
	Spec  string
	List  string
	Count int
}

// Error returns a human-readable error message.
func (e *AmbiguousRemovalError) Error() string {
	return fmt.Sprintf("cannot remove %s from spec list %s: %d raw entries match", e.Spec, e.List, e.Count)
}

// IsAmbiguousRemoval checks if an error is an AmbiguousRemovalError.
//
// Parameters:
//   - err: the error to check
//
// Returns:
//   - *AmbiguousRemovalError: the typed error if found, nil otherwise
//   - bool: true if the error is an AmbiguousRemovalError
func IsAmbiguousRemoval(err error) (*AmbiguousRemovalError, bool) {
	var ambErr *AmbiguousRemovalError
	if errors.As(err, &ambErr) {
		return ambErr, true
	}
	return nil, false
}

// InvalidEntryError indicates an entry whose shape the engine cannot
// process, for example a nested sequence used directly as a
// constraint.
//
// Fields:
//   - List: name of the list holding the entry, empty when unknown
//   - Detail: description of the offending shape
type InvalidEntryError struct {
	List   string
	Detail string
}

// Error returns a human-readable error message.
func (e *InvalidEntryError) Error() string {
	if e.List == "" {
		return fmt.Sprintf("invalid spec list entry: %s", e.Detail)
	}
	return fmt.Sprintf("invalid entry in spec list %s: %s", e.List, e.Detail)
}

// IsInvalidEntry checks if an error is an InvalidEntryError.
//
// Parameters:
//   - err: the error to check
//
// Returns:
//   - *InvalidEntryError: the typed error if found, nil otherwise
//   - bool: true if the error is an InvalidEntryError
func IsInvalidEntry(err error) (*InvalidEntryError, bool) {
	var entryErr *InvalidEntryError
	if errors.As(err, &entryErr) {
		return entryErr, true
	}
	return nil, false
}

// InvalidConstraintError wraps a record parse failure with the list
// and constraint text it occurred on.
//
// Fields:
//   - List: name of the list being expanded
//   - Text: the constraint text that failed to parse
//   - Err: the underlying parse error
type InvalidConstraintError struct {
	List string
	Text string
	Err  error
}

// Error returns a human-readable error message.
func (e *InvalidConstraintError) Error() string {
	return fmt.Sprintf("invalid constraint %q in spec list %s: %v", e.Text, e.List, e.Err)
}

// Unwrap returns the underlying parse error.
func (e *InvalidConstraintError) Unwrap() error {
	return e.Err
}

// IsInvalidConstraint checks if an error is an InvalidConstraintError.
//
// Parameters:
//   - err: the error to check
//
// Returns:
//   - *InvalidConstraintError: the typed error if found, nil otherwise
//   - bool: true if the error is an InvalidConstraintError
func IsInvalidConstraint(err error) (*InvalidConstraintError, bool) {
	var conErr *InvalidConstraintError
	if errors.As(err, &conErr) {
		return conErr, true
	}
	return nil, false
}
