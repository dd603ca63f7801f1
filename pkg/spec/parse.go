package spec

import (
	"fmt"
	"regexp"
	"strings"
)

var (
	namePattern = regexp.MustCompile(`^[A-Za-z0-9][A-Za-z0-9_.-]*$`)
	hashPattern = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

// Parse parses constraint text into a record.
//
// It performs the following operations:
//   - Splits the text into whitespace-separated fields, then splits
//     glued qualifiers at "@", "+", "~", "%", "^" and "/" boundaries
//   - Applies each token to the current attachment target: the root
//     record until a "^" token switches to a dependency
//   - Attaches "@" tokens to the compiler while a "%" token is open
//
// All tokens of one text describe a single record; a second package
// name is rejected.
//
// Parameters:
//   - text: the constraint text, e.g. "hdf5@1.12 +mpi %gcc@12 ^zlib@1.2"
//
// Returns:
//   - *Spec: the parsed record
//   - error: ParseError if a token is malformed or contradicts an earlier one
func Parse(text string) (*Spec, error) {
	p := &parser{text: text, root: &Spec{}}
	p.current = p.root
	for _, field := range strings.Fields(text) {
		for _, token := range splitCompact(field) {
			if err := p.apply(token); err != nil {
				return nil, err
			}
		}
	}
	return p.root, nil
}

// splitCompact splits one field into its qualifier tokens. A "="
// turns the rest of the field into the value of a single key=value
// token, so flag values keep their punctuation.
func splitCompact(field string) []string {
	var tokens []string
	start := 0
	inValue := false
	for i := 0; i < len(field) && !inValue; i++ {
		switch field[i] {
		case '=':
			inValue = true
		case '@', '+', '~', '%', '^', '/':
			if i > start {
				tokens = append(tokens, field[start:i])
				start = i
			}
		}
	}
	return append(tokens, field[start:])
}

// parser tracks the attachment state while applying tokens.
//
// Fields:
//   - text: the full input, for error messages
//   - root: the record being built
//   - current: the node receiving qualifiers, the root or a dependency
//   - compiler: whether the last token opened a compiler so a
//     following "@" attaches to it
type parser struct {
	text     string
	root     *Spec
	current  *Spec
	compiler bool
}

// fail builds a ParseError carrying the full input text.
func (p *parser) fail(format string, args ...interface{}) error {
	return &ParseError{Text: p.text, Detail: fmt.Sprintf(format, args...)}
}

// apply routes one token to its handler based on the leading character.
func (p *parser) apply(token string) error {
	switch {
	case strings.HasPrefix(token, "^"):
		p.compiler = false
		return p.dependency(token[1:])
	case strings.HasPrefix(token, "%"):
		return p.compilerName(token[1:])
	case strings.HasPrefix(token, "@"):
		return p.version(token[1:])
	case strings.HasPrefix(token, "/"):
		p.compiler = false
		return p.hash(token[1:])
	case strings.HasPrefix(token, "+"):
		p.compiler = false
		return p.boolVariant(token[1:], true)
	case strings.HasPrefix(token, "~"), strings.HasPrefix(token, "-"):
		p.compiler = false
		return p.boolVariant(token[1:], false)
	case strings.Contains(token, "="):
		p.compiler = false
		return p.keyValue(token)
	default:
		p.compiler = false
		return p.packageName(token)
	}
}

// packageName names the current node. A node can only be named once.
func (p *parser) packageName(token string) error {
	if !namePattern.MatchString(token) {
		return p.fail("invalid package name %q", token)
	}
	if p.current.Name != "" {
		return p.fail("more than one package name: %q and %q", p.current.Name, token)
	}
	p.current.Name = token
	return nil
}

// version narrows the version range of the current node, or of its
// compiler while a compiler token is open.
func (p *parser) version(text string) error {
	r, err := parseVersionRange(text)
	if err != nil {
		return p.fail("%v", err)
	}

	if p.compiler {
		merged, ok := p.current.Compiler.Versions.Intersect(r)
		if !ok {
			return p.fail("compiler versions @%s and @%s do not overlap", p.current.Compiler.Versions, r)
		}
		p.current.Compiler.Versions = merged
		return nil
	}

	merged, ok := p.current.Versions.Intersect(r)
	if !ok {
		return p.fail("versions @%s and @%s do not overlap", p.current.Versions, r)
	}
	p.current.Versions = merged
	return nil
}

// compilerName sets the compiler of the current node and opens the
// compiler context for following version tokens.
func (p *parser) compilerName(name string) error {
	if name == "" {
		return p.fail("compiler name missing after %%")
	}
	if !namePattern.MatchString(name) {
		return p.fail("invalid compiler name %q", name)
	}
	if p.current.Compiler != nil && p.current.Compiler.Name != name {
		return p.fail("more than one compiler: %q and %q", p.current.Compiler.Name, name)
	}
	if p.current.Compiler == nil {
		p.current.Compiler = &CompilerSpec{Name: name}
	}
	p.compiler = true
	return nil
}

// dependency switches the attachment target to a dependency of the
// root. Repeating a dependency name accumulates onto the same node.
func (p *parser) dependency(name string) error {
	if name == "" {
		return p.fail("dependency name missing after ^")
	}
	if !namePattern.MatchString(name) {
		return p.fail("invalid dependency name %q", name)
	}

	if p.root.Deps == nil {
		p.root.Deps = make(map[string]*Spec)
	}
	dep, ok := p.root.Deps[name]
	if !ok {
		dep = &Spec{Name: name}
		p.root.Deps[name] = dep
	}
	p.current = dep
	return nil
}

// hash narrows the hash constraint of the current node. Two hash
// tokens are compatible when one is a prefix of the other.
func (p *parser) hash(h string) error {
	if h == "" {
		return p.fail("hash missing after /")
	}
	if !hashPattern.MatchString(h) {
		return p.fail("invalid hash %q", h)
	}

	switch {
	case p.current.Hash == "", strings.HasPrefix(h, p.current.Hash):
		p.current.Hash = h
	case strings.HasPrefix(p.current.Hash, h):
	default:
		return p.fail("conflicting hashes /%s and /%s", p.current.Hash, h)
	}
	return nil
}

// boolVariant sets a boolean variant on the current node.
func (p *parser) boolVariant(name string, enabled bool) error {
	if name == "" {
		return p.fail("variant name missing")
	}
	if !namePattern.MatchString(name) {
		return p.fail("invalid variant name %q", name)
	}

	value := boolVariant(enabled)
	if have, ok := p.current.Variants[name]; ok && have.Value != value.Value {
		return p.fail("variant %s set to both %q and %q", name, have.Value, value.Value)
	}
	p.current.setVariant(name, value)
	return nil
}

// keyValue sets an abstract key=value variant on the current node.
func (p *parser) keyValue(token string) error {
	key, value, _ := strings.Cut(token, "=")
	if key == "" {
		return p.fail("variant name missing before = in %q", token)
	}
	if !namePattern.MatchString(key) {
		return p.fail("invalid variant name %q", key)
	}
	if value == "" {
		return p.fail("variant %s is missing a value", key)
	}

	setting := VariantValue{Kind: AbstractVariant, Value: value}
	if have, ok := p.current.Variants[key]; ok && have.Value != setting.Value {
		return p.fail("variant %s set to both %q and %q", key, have.Value, setting.Value)
	}
	if _, ok := p.current.Variants[key]; !ok {
		p.current.setVariant(key, setting)
	}
	return nil
}
