package polaris

import (
	"maps"
	"slices"

	"github.com/lithammer/fuzzysearch/fuzzy"
)

// Binding is a name bound in a Scope: a Variable or a Function.
type Binding interface {
	binding()
}

// Variable binds a name to a pre-evaluated value.
type Variable struct {
	Value Value // Bound value
}

// NativeFunc is the body of a Function. It receives the calling scope and
// the raw, unevaluated argument nodes, and evaluates them itself.
type NativeFunc func(scope *Scope, args []Node) (Value, error)

// Function binds a name to a native callable.
type Function struct {
	Call  NativeFunc // Function body
	Arity int        // Number of arguments; negative means variadic
}

func (Variable) binding() {}
func (Function) binding() {}

// Scope is one frame of a lexical scope chain. Scopes are immutable once
// built and may be shared between evaluations.
type Scope struct {
	parent   *Scope             // Enclosing scope, nil for the root
	bindings map[string]Binding // Local bindings
}

// NewScope creates a scope with the given parent and local bindings.
// The bindings map is copied.
func NewScope(parent *Scope, bindings map[string]Binding) *Scope {
	return &Scope{parent: parent, bindings: maps.Clone(bindings)}
}

// Parent returns the enclosing scope, or nil for a root scope.
func (s *Scope) Parent() *Scope {
	return s.parent
}

// Lookup finds name in this scope or, failing that, in its ancestors.
func (s *Scope) Lookup(name string) (Binding, bool) {
	for cur := s; cur != nil; cur = cur.parent {
		if b, ok := cur.bindings[name]; ok {
			return b, true
		}
	}

	return nil, false
}

// Names returns every visible name, sorted. Shadowed names appear once.
func (s *Scope) Names() []string {
	seen := map[string]struct{}{}
	for cur := s; cur != nil; cur = cur.parent {
		for name := range cur.bindings {
			seen[name] = struct{}{}
		}
	}

	return slices.Sorted(maps.Keys(seen))
}

// suggest returns the visible name closest to name, or "".
func (s *Scope) suggest(name string) string {
	if s == nil {
		return ""
	}

	ranks := fuzzy.RankFindFold(name, s.Names())
	if len(ranks) == 0 {
		return suggestBySubsequence(name, s.Names())
	}

	// Lowest distance first; names break ties for stable output.
	slices.SortFunc(ranks, func(a, b fuzzy.Rank) int {
		if a.Distance != b.Distance {
			return a.Distance - b.Distance
		}
		if a.Target < b.Target {
			return -1
		}
		if a.Target > b.Target {
			return 1
		}
		return 0
	})

	return ranks[0].Target
}

// suggestBySubsequence finds a visible name contained in the misspelled
// one, e.g. "deg" for "degree".
func suggestBySubsequence(name string, names []string) string {
	for _, candidate := range names {
		if fuzzy.MatchFold(candidate, name) {
			return candidate
		}
	}

	return ""
}

// unbound builds an UnboundNameError for name with a suggestion from s.
func (s *Scope) unbound(name string) error {
	return &UnboundNameError{Name: name, Suggestion: s.suggest(name)}
}
