package polaris

import (
	"fmt"
	"strings"
)

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError indicates a problem that makes Resolve fail.
	IssueError IssueLevel = "error"
	// IssueWarning indicates a likely mistake that Resolve may still accept.
	IssueWarning IssueLevel = "warning"
)

// Issue codes.
const (
	CodeDuplicatePrefix = "duplicate_prefix"
	CodeUnmatchedPrefix = "unmatched_prefix"
	CodeUnknownName     = "unknown_name"
	CodeUnknownFunction = "unknown_function"
	CodeNotAVariable    = "not_a_variable"
	CodeNotAFunction    = "not_a_function"
	CodeArity           = "arity"
	CodeExpressionParse = "expression_parse"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level" yaml:"level"`                   // Severity level
	Code    string     `json:"code,omitempty" yaml:"code,omitempty"` // Machine-readable code
	Message string     `json:"message" yaml:"message"`               // Issue message
	Path    string     `json:"path,omitempty" yaml:"path,omitempty"` // Matcher prefix or entity reference
}

// String implements fmt.Stringer.
func (i Issue) String() string {
	if i.Path == "" {
		return fmt.Sprintf("%s: %s", i.Level, i.Message)
	}

	return fmt.Sprintf("%s: %s: %s", i.Level, i.Path, i.Message)
}

// Validate checks matchers and entities without evaluating anything and
// returns the issues found, matchers first.
func Validate(matchers []Matcher, entities []Entity, opt *ValidateOptions) []Issue {
	vopt := opt.normalize()
	var out []Issue

	for _, prefix := range duplicatePrefixes(matchers) {
		out = append(out, Issue{Level: IssueError, Code: CodeDuplicatePrefix, Message: "prefix bound by more than one matcher", Path: prefix})
	}

	// Matcher expressions see index; entity expressions do not.
	matcherScope := NewScope(vopt.Root, map[string]Binding{
		IndexVariable: Variable{Value: Number(0)},
	})

	for _, m := range matchers {
		path := "matcher " + m.Prefix

		if !vopt.DisableUnmatchedCheck && len(entities) > 0 && !matchesAny(m.Prefix, entities) {
			out = append(out, Issue{Level: IssueWarning, Code: CodeUnmatchedPrefix, Message: "prefix matches no entity", Path: path})
		}

		if !vopt.DisableNameCheck {
			out = append(out, validateNames(matcherScope, m.Expr, path)...)
		}
	}

	if vopt.DisableExpressionCheck {
		return out
	}

	for _, e := range entities {
		if e.Expression == "" {
			continue
		}

		path := "entity " + e.Reference
		n, err := ParseExpression(e.Expression, &ParseOptions{Filename: e.Reference})
		if err != nil {
			out = append(out, Issue{Level: IssueError, Code: CodeExpressionParse, Message: err.Error(), Path: path})
			continue
		}

		if !vopt.DisableNameCheck {
			out = append(out, validateNames(vopt.Root, n, path)...)
		}
	}

	return out
}

// validateNames checks every name used in n against scope.
func validateNames(scope *Scope, n Node, path string) []Issue {
	var out []Issue
	Inspect(n, func(n Node) bool {
		switch n := n.(type) {
		case VariableRead:
			b, ok := scope.Lookup(n.Name)
			if !ok {
				out = append(out, Issue{Level: IssueWarning, Code: CodeUnknownName, Message: withSuggestion("unknown variable "+n.Name, scope.suggest(n.Name)), Path: path})
				break
			}
			if _, ok := b.(Variable); !ok {
				out = append(out, Issue{Level: IssueWarning, Code: CodeNotAVariable, Message: n.Name + " is a function, not a variable", Path: path})
			}

		case FunctionCall:
			b, ok := scope.Lookup(n.Name)
			if !ok {
				out = append(out, Issue{Level: IssueWarning, Code: CodeUnknownFunction, Message: withSuggestion("unknown function "+n.Name, scope.suggest(n.Name)), Path: path})
				break
			}

			fn, ok := b.(Function)
			if !ok {
				out = append(out, Issue{Level: IssueWarning, Code: CodeNotAFunction, Message: n.Name + " is a variable, not a function", Path: path})
				break
			}
			if fn.Arity >= 0 && fn.Arity != len(n.Args) {
				out = append(out, Issue{Level: IssueWarning, Code: CodeArity, Message: fmt.Sprintf("%s expects %d argument(s), got %d", n.Name, fn.Arity, len(n.Args)), Path: path})
			}
		}

		return true
	})

	return out
}

// matchesAny checks if any entity reference starts with prefix.
func matchesAny(prefix string, entities []Entity) bool {
	for _, e := range entities {
		if strings.HasPrefix(e.Reference, prefix) {
			return true
		}
	}

	return false
}

// withSuggestion appends a "did you mean" hint when one is available.
func withSuggestion(msg, suggestion string) string {
	if suggestion == "" {
		return msg
	}

	return fmt.Sprintf("%s (did you mean %q?)", msg, suggestion)
}
