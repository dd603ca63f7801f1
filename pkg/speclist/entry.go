package speclist

import (
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry is a single element of a spec list. Exactly three concrete
// types implement it: Token, Sequence, and *Matrix.
type Entry interface {
	fmt.Stringer

	// entryNode restricts implementations to this package so the
	// expansion engine can switch exhaustively over entry kinds.
	entryNode()
}

// Token is a plain constraint string, for example "zlib@1.2 +shared".
// Tokens beginning with "$" are references to other named lists.
type Token string

// Sequence is a nested list of entries. Sequences pass through
// reference expansion unchanged in shape; inside a matrix row they
// are flattened into the row's alternatives.
type Sequence []Entry

// Matrix describes a Cartesian product of constraint rows.
//
// Fields:
//   - Rows: the product dimensions; each row contributes one
//     constraint token to every generated combination
//   - Exclude: constraint strings; combinations satisfying any of
//     them are dropped
//   - Sigil: prefix applied to the first token of every surviving
//     combination, set when the matrix was spliced in through a
//     sigiled reference
type Matrix struct {
	Rows    []Entry
	Exclude []string
	Sigil   string
}

func (Token) entryNode()    {}
func (Sequence) entryNode() {}
func (*Matrix) entryNode()  {}

// String returns the raw constraint text.
func (t Token) String() string {
	return string(t)
}

// String renders the sequence in flow style for diagnostics.
func (s Sequence) String() string {
	parts := make([]string, len(s))
	for i, entry := range s {
		parts[i] = entry.String()
	}
	return "[" + strings.Join(parts, ", ") + "]"
}

// String renders the matrix in flow style for diagnostics.
func (m *Matrix) String() string {
	var b strings.Builder
	b.WriteString("{matrix: [")
	for i, row := range m.Rows {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(row.String())
	}
	b.WriteString("]")
	if len(m.Exclude) > 0 {
		fmt.Fprintf(&b, ", exclude: [%s]", strings.Join(m.Exclude, ", "))
	}
	if m.Sigil != "" {
		fmt.Fprintf(&b, ", sigil: %s", m.Sigil)
	}
	b.WriteString("}")
	return b.String()
}

// MarshalYAML renders a token as its raw string.
func (t Token) MarshalYAML() (interface{}, error) {
	return string(t), nil
}

// MarshalYAML renders a sequence as a plain YAML list.
func (s Sequence) MarshalYAML() (interface{}, error) {
	return []Entry(s), nil
}

// MarshalYAML renders a matrix as its source mapping form.
func (m *Matrix) MarshalYAML() (interface{}, error) {
	return struct {
		Matrix  []Entry  `yaml:"matrix"`
		Exclude []string `yaml:"exclude,omitempty"`
		Sigil   string   `yaml:"sigil,omitempty"`
	}{Matrix: m.Rows, Exclude: m.Exclude, Sigil: m.Sigil}, nil
}

// Entries is a list of spec list entries with custom YAML decoding.
//
// It accepts the authored form of a spec list: a sequence whose items
// are constraint strings, nested sequences, or matrix mappings.
type Entries []Entry

// UnmarshalYAML implements custom YAML unmarshaling for Entries.
//
// Parameters:
//   - value: the YAML node to unmarshal
//
// Returns:
//   - error: error if the node is not a sequence of valid entries
func (e *Entries) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.SequenceNode {
		return fmt.Errorf("spec list must be a sequence, got %s", kindName(value.Kind))
	}
	entries, err := decodeEntryNodes(value.Content)
	if err != nil {
		return err
	}
	*e = entries
	return nil
}

// decodeEntryNodes decodes a slice of YAML nodes into entries.
func decodeEntryNodes(nodes []*yaml.Node) ([]Entry, error) {
	entries := make([]Entry, 0, len(nodes))
	for _, item := range nodes {
		entry, err := decodeEntryNode(item)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

// decodeEntryNode decodes one YAML node into the matching entry kind.
//
// Scalars become Tokens, sequences become Sequences, and mappings
// become matrix records. Anything else is rejected.
//
// Parameters:
//   - node: the YAML node to decode
//
// Returns:
//   - Entry: the decoded entry
//   - error: error if the node kind or structure is invalid
func decodeEntryNode(node *yaml.Node) (Entry, error) {
	switch node.Kind {
	case yaml.ScalarNode:
		if node.Tag == "!!null" {
			return nil, fmt.Errorf("spec list entries must not be null")
		}
		var text string
		if err := node.Decode(&text); err != nil {
			return nil, fmt.Errorf("failed to decode spec entry: %w", err)
		}
		return Token(text), nil
	case yaml.SequenceNode:
		nested, err := decodeEntryNodes(node.Content)
		if err != nil {
			return nil, err
		}
		return Sequence(nested), nil
	case yaml.MappingNode:
		return decodeMatrixNode(node)
	case yaml.AliasNode:
		return decodeEntryNode(node.Alias)
	default:
		return nil, fmt.Errorf("spec list entries must be strings, sequences or matrix mappings, got %s", kindName(node.Kind))
	}
}

// decodeMatrixNode decodes a mapping node into a Matrix.
//
// The mapping must carry a "matrix" key holding the rows. The
// optional "exclude" key holds constraint strings and the optional
// "sigil" key a prefix applied to generated combinations.
//
// Parameters:
//   - node: the mapping node to decode
//
// Returns:
//   - *Matrix: the decoded matrix record
//   - error: error if a key is unknown or a value has the wrong shape
func decodeMatrixNode(node *yaml.Node) (*Matrix, error) {
	if len(node.Content)%2 != 0 {
		return nil, fmt.Errorf("matrix mapping entries must be key/value pairs")
	}

	matrix := &Matrix{}
	seen := false
	for i := 0; i < len(node.Content); i += 2 {
		key := strings.TrimSpace(node.Content[i].Value)
		value := node.Content[i+1]

		switch key {
		case "matrix":
			if value.Kind != yaml.SequenceNode {
				return nil, fmt.Errorf("matrix rows must be a sequence, got %s", kindName(value.Kind))
			}
			rows, err := decodeEntryNodes(value.Content)
			if err != nil {
				return nil, err
			}
			matrix.Rows = rows
			seen = true
		case "exclude":
			if err := value.Decode(&matrix.Exclude); err != nil {
				return nil, fmt.Errorf("matrix exclude must be a sequence of strings: %w", err)
			}
		case "sigil":
			if err := value.Decode(&matrix.Sigil); err != nil {
				return nil, fmt.Errorf("matrix sigil must be a string: %w", err)
			}
		default:
			return nil, fmt.Errorf("unsupported matrix key %q", key)
		}
	}

	if !seen {
		return nil, fmt.Errorf("matrix mapping is missing the matrix key")
	}
	return matrix, nil
}

// kindName returns a human-readable name for a YAML node kind.
func kindName(kind yaml.Kind) string {
	switch kind {
	case yaml.DocumentNode:
		return "document"
	case yaml.SequenceNode:
		return "sequence"
	case yaml.MappingNode:
		return "mapping"
	case yaml.ScalarNode:
		return "scalar"
	case yaml.AliasNode:
		return "alias"
	default:
		return "unknown"
	}
}

// copyEntries returns an independent deep copy of an entry slice.
func copyEntries(entries []Entry) []Entry {
	if entries == nil {
		return nil
	}
	out := make([]Entry, len(entries))
	for i, entry := range entries {
		out[i] = copyEntry(entry)
	}
	return out
}

// copyEntry returns an independent deep copy of a single entry.
func copyEntry(entry Entry) Entry {
	switch v := entry.(type) {
	case Token:
		return v
	case Sequence:
		return Sequence(copyEntries(v))
	case *Matrix:
		return copyMatrix(v)
	default:
		return entry
	}
}

// copyMatrix returns an independent deep copy of a matrix record.
func copyMatrix(m *Matrix) *Matrix {
	out := &Matrix{Sigil: m.Sigil}
	out.Rows = copyEntries(m.Rows)
	if m.Exclude != nil {
		out.Exclude = append([]string(nil), m.Exclude...)
	}
	return out
}
