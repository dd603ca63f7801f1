package spec

import (
	"errors"
	"fmt"
)

// ParseError indicates constraint text that does not follow the
// record syntax.
//
// Fields:
//   - Text: the full constraint text being parsed
//   - Detail: description of the offending token
type ParseError struct {
	Text   string
	Detail string
}

// Error returns a human-readable error message.
func (e *ParseError) Error() string {
	return fmt.Sprintf("invalid spec %q: %s", e.Text, e.Detail)
}

// IsParse checks if an error is a ParseError.
//
// Parameters:
//   - err: the error to check
//
// Returns:
//   - *ParseError: the typed error if found, nil otherwise
//   - bool: true if the error is a ParseError
func IsParse(err error) (*ParseError, bool) {
	var parseErr *ParseError
	if errors.As(err, &parseErr) {
		return parseErr, true
	}
	return nil, false
}

// ConflictError indicates two records whose constraints cannot hold
// at the same time.
//
// Fields:
//   - Spec: the record being constrained
//   - Other: the record applied to it
//   - Detail: the incompatible component
type ConflictError struct {
	Spec   string
	Other  string
	Detail string
}

// Error returns a human-readable error message.
func (e *ConflictError) Error() string {
	return fmt.Sprintf("cannot constrain %q with %q: %s", e.Spec, e.Other, e.Detail)
}

// IsConflict checks if an error is a ConflictError.
//
// Parameters:
//   - err: the error to check
//
// Returns:
//   - *ConflictError: the typed error if found, nil otherwise
//   - bool: true if the error is a ConflictError
func IsConflict(err error) (*ConflictError, bool) {
	var conflictErr *ConflictError
	if errors.As(err, &conflictErr) {
		return conflictErr, true
	}
	return nil, false
}
