package polaris

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/rs/zerolog"
)

// Entity is a host object to place: a reference used for prefix matching
// and an optional expression attached directly to it.
type Entity struct {
	ID         string `json:"id,omitempty" yaml:"id,omitempty"`                 // Host identifier, defaults to Reference
	Reference  string `json:"reference" yaml:"reference"`                       // Reference designator, e.g. "R12"
	Expression string `json:"expression,omitempty" yaml:"expression,omitempty"` // Directly attached expression
}

// Key returns the key used for the entity in resolution results.
func (e Entity) Key() string {
	if e.ID != "" {
		return e.ID
	}

	return e.Reference
}

// IndexVariable is the name bound to the trailing number of an entity reference.
const IndexVariable = "index"

// Resolve parses scripts, then computes one Transform per entity, keyed by
// Entity.Key. Sources without the script(polaris) header are ignored. Any
// other error, including two entities with the same key, aborts the whole
// call and no results are returned.
func Resolve(scripts []string, entities []Entity, opt *ResolveOptions) (map[string]Transform, error) {
	if keys := duplicateKeys(entities); len(keys) > 0 {
		return nil, &DuplicateEntityError{Keys: keys}
	}

	matchers, err := ReadScripts(scripts, opt)
	if err != nil {
		return nil, err
	}

	r, err := NewResolver(matchers, opt)
	if err != nil {
		return nil, err
	}

	out := make(map[string]Transform, len(entities))
	for _, e := range entities {
		t, err := r.ResolveEntity(e)
		if err != nil {
			return nil, err
		}
		out[e.Key()] = t
	}

	return out, nil
}

// ReadScripts parses every script and concatenates their matchers in order.
// Sources that fail the header check are skipped.
func ReadScripts(scripts []string, opt *ResolveOptions) ([]Matcher, error) {
	ropt := opt.normalize()
	popt := ropt.Parse.normalize()

	var out []Matcher
	for i, src := range scripts {
		o := popt
		if o.Filename == "" {
			o.Filename = fmt.Sprintf("script[%d]", i)
		}

		matchers, err := ParseScript(src, &o)
		if errors.Is(err, ErrNotScript) {
			ropt.Logger.Debug().Str("source", o.Filename).Msg("skipping text without script(polaris) header")
			continue
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", o.Filename, err)
		}

		ropt.Logger.Debug().Str("source", o.Filename).Int("matchers", len(matchers)).Msg("read script")
		out = append(out, matchers...)
	}

	return out, nil
}

// Resolver applies a fixed set of matchers to entities.
type Resolver struct {
	root     *Scope          // Root scope for every evaluation
	log      *zerolog.Logger // Debug logger
	parse    ParseOptions    // Options for direct expressions
	matchers []Matcher       // Matchers sorted by prefix length
}

// NewResolver checks matchers for duplicate prefixes and orders them from the
// shortest prefix to the longest, so general matchers apply before specific
// ones. Matchers with equal prefix lengths keep their declaration order.
func NewResolver(matchers []Matcher, opt *ResolveOptions) (*Resolver, error) {
	ropt := opt.normalize()

	if dups := duplicatePrefixes(matchers); len(dups) != 0 {
		return nil, &DuplicatePrefixError{Prefixes: dups}
	}

	sorted := slices.Clone(matchers)
	slices.SortStableFunc(sorted, func(a, b Matcher) int {
		return len(a.Prefix) - len(b.Prefix)
	})

	return &Resolver{
		root:     ropt.Root,
		log:      ropt.Logger,
		parse:    ropt.Parse.normalize(),
		matchers: sorted,
	}, nil
}

// Matchers returns the matchers in application order.
func (r *Resolver) Matchers() []Matcher {
	return slices.Clone(r.matchers)
}

// ResolveEntity computes the transform of a single entity. Matching script
// expressions apply first, in order; the entity's own expression applies last.
func (r *Resolver) ResolveEntity(e Entity) (Transform, error) {
	index := ReferenceIndex(e.Reference)
	scope := NewScope(r.root, map[string]Binding{
		IndexVariable: Variable{Value: Number(index)},
	})

	acc := Identity()
	for _, m := range r.matchers {
		if !strings.HasPrefix(e.Reference, m.Prefix) {
			continue
		}

		t, err := EvaluateTransform(scope, m.Expr)
		if err != nil {
			return Transform{}, fmt.Errorf("entity %q: matcher %q at %s: %w", e.Reference, m.Prefix, m.Pos, err)
		}

		r.log.Debug().
			Str("entity", e.Reference).
			Str("prefix", m.Prefix).
			Float64("index", index).
			Stringer("transform", t).
			Msg("applying matcher")
		acc = Compose(t, acc)
	}

	if e.Expression != "" {
		o := r.parse
		if o.Filename == "" {
			o.Filename = e.Reference
		}

		node, err := ParseExpression(e.Expression, &o)
		if err != nil {
			return Transform{}, fmt.Errorf("entity %q: expression: %w", e.Reference, err)
		}

		// Direct expressions see the root scope only; index is not bound.
		t, err := EvaluateTransform(r.root, node)
		if err != nil {
			return Transform{}, fmt.Errorf("entity %q: expression: %w", e.Reference, err)
		}

		r.log.Debug().
			Str("entity", e.Reference).
			Stringer("transform", t).
			Msg("applying entity expression")
		acc = Compose(t, acc)
	}

	return acc, nil
}

// ReferenceIndex returns the number formed by the trailing ASCII digits of
// ref, e.g. 12 for "R12". A reference without trailing digits yields 0.
func ReferenceIndex(ref string) float64 {
	i := len(ref)
	for i > 0 && ref[i-1] >= '0' && ref[i-1] <= '9' {
		i--
	}

	if i == len(ref) {
		return 0
	}

	// A run of ASCII digits always parses; runs beyond float64 range give +Inf.
	v, _ := numberValue(ref[i:])
	return v
}

// duplicateKeys returns every entity key produced more than once, sorted.
func duplicateKeys(entities []Entity) []string {
	seen := make(map[string]int, len(entities))
	for _, e := range entities {
		seen[e.Key()]++
	}

	var out []string
	for key, n := range seen {
		if n > 1 {
			out = append(out, key)
		}
	}
	slices.Sort(out)

	return out
}

// duplicatePrefixes returns every prefix bound more than once, sorted.
func duplicatePrefixes(matchers []Matcher) []string {
	seen := make(map[string]int, len(matchers))
	for _, m := range matchers {
		seen[m.Prefix]++
	}

	var out []string
	for prefix, n := range seen {
		if n > 1 {
			out = append(out, prefix)
		}
	}
	slices.Sort(out)

	return out
}
