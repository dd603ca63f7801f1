package speclist

import (
	"fmt"
	"sort"
	"strings"
	"testing"
)

// fakeSpec is a minimal constraint record for exercising the engine
// without a real parser. A record is just the set of its tokens.
type fakeSpec struct {
	tokens map[string]bool
}

// String renders the tokens sorted by ordering class, then
// lexicographically within a class.
func (s *fakeSpec) String() string {
	tokens := make([]string, 0, len(s.tokens))
	for token := range s.tokens {
		tokens = append(tokens, token)
	}
	sort.Slice(tokens, func(i, j int) bool {
		ki, kj := OrderingKey(tokens[i]), OrderingKey(tokens[j])
		if ki != kj {
			return ki < kj
		}
		return tokens[i] < tokens[j]
	})
	return strings.Join(tokens, " ")
}

// fakeAPI implements SpecAPI with token-set semantics: parsing splits
// constraint text into tokens, satisfaction is token subset,
// constraining is token union.
type fakeAPI struct{}

var _ SpecAPI = fakeAPI{}

// splitFakeTokens splits constraint text on whitespace, then splits
// glued qualifiers at "@", "+", "~", "%" and "/" boundaries, so
// "zlib@1.2+shared" and "zlib @1.2 +shared" parse identically.
func splitFakeTokens(text string) []string {
	var tokens []string
	for _, field := range strings.Fields(text) {
		start := 0
		for i := 1; i < len(field); i++ {
			switch field[i] {
			case '@', '+', '~', '%', '/':
				tokens = append(tokens, field[start:i])
				start = i
			}
		}
		tokens = append(tokens, field[start:])
	}
	return tokens
}

func (fakeAPI) Parse(text string) (Spec, error) {
	spec := &fakeSpec{tokens: map[string]bool{}}
	name := ""
	for _, token := range splitFakeTokens(text) {
		if OrderingKey(token) == classPackage {
			if name != "" && name != token {
				return nil, fmt.Errorf("more than one package name in %q", text)
			}
			name = token
		}
		spec.tokens[token] = true
	}
	return spec, nil
}

func (fakeAPI) Copy(s Spec) Spec {
	in := s.(*fakeSpec)
	out := &fakeSpec{tokens: make(map[string]bool, len(in.tokens))}
	for token := range in.tokens {
		out.tokens[token] = true
	}
	return out
}

func (a fakeAPI) Constrain(base, other Spec) (Spec, error) {
	merged := a.Copy(base).(*fakeSpec)
	for token := range other.(*fakeSpec).tokens {
		merged.tokens[token] = true
	}

	name, version := "", ""
	for token := range merged.tokens {
		switch {
		case OrderingKey(token) == classPackage:
			if name != "" && name != token {
				return nil, fmt.Errorf("conflicting package names %s and %s", name, token)
			}
			name = token
		case strings.HasPrefix(token, "@"):
			if version != "" && version != token {
				return nil, fmt.Errorf("conflicting versions %s and %s", version, token)
			}
			version = token
		}
	}
	return merged, nil
}

func (fakeAPI) Satisfies(a, b Spec) bool {
	have := a.(*fakeSpec).tokens
	for token := range b.(*fakeSpec).tokens {
		if !have[token] {
			return false
		}
	}
	return true
}

func (fakeAPI) Equal(a, b Spec) bool {
	left, right := a.(*fakeSpec).tokens, b.(*fakeSpec).tokens
	if len(left) != len(right) {
		return false
	}
	for token := range left {
		if !right[token] {
			return false
		}
	}
	return true
}

// SubstituteAbstractVariants rewrites "name=true" to "+name" and
// "name=false" to "~name". Other key=value tokens stay abstract.
func (a fakeAPI) SubstituteAbstractVariants(s Spec) (Spec, bool) {
	out := a.Copy(s).(*fakeSpec)
	complete := true
	for token := range s.(*fakeSpec).tokens {
		key, value, found := strings.Cut(token, "=")
		if !found {
			continue
		}
		switch value {
		case "true":
			delete(out.tokens, token)
			out.tokens["+"+key] = true
		case "false":
			delete(out.tokens, token)
			out.tokens["~"+key] = true
		default:
			complete = false
		}
	}
	return out, complete
}

// specStrings renders a record slice for assertions.
func specStrings(specs []Spec) []string {
	out := make([]string, len(specs))
	for i, spec := range specs {
		out[i] = spec.String()
	}
	return out
}

// groupStrings renders constraint groups for assertions.
func groupStrings(groups [][]Spec) [][]string {
	out := make([][]string, len(groups))
	for i, group := range groups {
		out[i] = specStrings(group)
	}
	return out
}

// mustList builds a list with the fake API and fails the test on error.
func mustList(t *testing.T, name string, entries []Entry, reference map[string]*SpecList) *SpecList {
	t.Helper()
	list, err := New(name, fakeAPI{}, entries, reference)
	if err != nil {
		t.Fatalf("failed to build spec list %s: %v", name, err)
	}
	return list
}
