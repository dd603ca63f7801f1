package speclist

import (
	"strings"

	"github.com/Jordan474/spack/pkg/verbose"
)

// referencePrefix marks a token as a reference to another named list.
const referencePrefix = "$"

// expandReferences resolves every "$name" token in an entry slice.
//
// It performs the following operations:
//  1. Splices referenced lists in place of reference tokens, using
//     the referenced list's own expanded view
//  2. Applies the reference sigil to every spliced element
//  3. Recurses into sequences and matrix rows
//  4. Resolves references inside matrix exclude patterns, which must
//     expand to plain tokens
//
// Spliced elements are deep copies, so expanding one list never
// mutates the cached state of another.
func (l *SpecList) expandReferences(entries []Entry) ([]Entry, error) {
	out := make([]Entry, 0, len(entries))
	for _, entry := range entries {
		switch e := entry.(type) {
		case Token:
			if !strings.HasPrefix(string(e), referencePrefix) {
				out = append(out, e)
				continue
			}
			spliced, err := l.resolveReference(string(e))
			if err != nil {
				return nil, err
			}
			out = append(out, spliced...)
		case Sequence:
			nested, err := l.expandReferences(e)
			if err != nil {
				return nil, err
			}
			out = append(out, Sequence(nested))
		case *Matrix:
			expanded, err := l.expandMatrixReferences(e)
			if err != nil {
				return nil, err
			}
			out = append(out, expanded)
		default:
			return nil, &InvalidEntryError{List: l.name, Detail: "entries must be strings, sequences or matrix mappings"}
		}
	}
	return out, nil
}

// expandMatrixReferences resolves references inside a matrix record.
// The result is a new record; the input is never modified.
func (l *SpecList) expandMatrixReferences(m *Matrix) (*Matrix, error) {
	rows, err := l.expandReferences(m.Rows)
	if err != nil {
		return nil, err
	}

	exclude := make([]string, 0, len(m.Exclude))
	for _, pattern := range m.Exclude {
		if !strings.HasPrefix(pattern, referencePrefix) {
			exclude = append(exclude, pattern)
			continue
		}
		spliced, err := l.resolveReference(pattern)
		if err != nil {
			return nil, err
		}
		for _, entry := range spliced {
			token, ok := entry.(Token)
			if !ok {
				return nil, &InvalidEntryError{List: l.name, Detail: "matrix exclude references must expand to plain constraint strings"}
			}
			exclude = append(exclude, string(token))
		}
	}
	if len(exclude) == 0 {
		exclude = nil
	}

	return &Matrix{Rows: rows, Exclude: exclude, Sigil: m.Sigil}, nil
}

// resolveReference expands one "$name" token into the referenced
// list's entries, sigiled as requested.
func (l *SpecList) resolveReference(token string) ([]Entry, error) {
	name, sigil, err := l.parseReference(token)
	if err != nil {
		return nil, err
	}

	referent, err := l.reference[name].Expanded()
	if err != nil {
		return nil, err
	}

	out := make([]Entry, 0, len(referent))
	for _, entry := range referent {
		out = append(out, sigilify(entry, sigil))
	}
	verbose.ReferenceExpanded(name, sigil, len(out))
	return out, nil
}

// parseReference splits a reference token into the referenced list
// name and an optional sigil.
//
// The leading "$" is stripped, then a single "^" or "%" directly
// after it is taken as the sigil. The remaining name must appear in
// the reference map.
//
// Parameters:
//   - token: the reference token, including the "$" prefix
//
// Returns:
//   - string: the referenced list name
//   - string: the sigil, empty when the reference carries none
//   - error: UndefinedReferenceError if the name is not in the map
func (l *SpecList) parseReference(token string) (string, string, error) {
	name := strings.TrimPrefix(token, referencePrefix)
	sigil := ""
	if strings.HasPrefix(name, "^") || strings.HasPrefix(name, "%") {
		sigil = name[:1]
		name = name[1:]
	}
	if _, ok := l.reference[name]; !ok {
		return "", "", &UndefinedReferenceError{List: l.name, Name: name}
	}
	return name, sigil, nil
}

// sigilify returns a copy of an entry with the sigil applied.
//
// Strings are prefixed directly. A matrix stores the sigil in its
// record so it can be applied after expansion, once per combination.
// Sequences propagate the sigil to each element.
func sigilify(entry Entry, sigil string) Entry {
	switch e := entry.(type) {
	case Token:
		return Token(sigil + string(e))
	case Sequence:
		out := make(Sequence, len(e))
		for i, nested := range e {
			out[i] = sigilify(nested, sigil)
		}
		return out
	case *Matrix:
		out := copyMatrix(e)
		if sigil != "" {
			out.Sigil = sigil
		}
		return out
	default:
		return entry
	}
}
