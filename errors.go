package polaris

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrLex indicates that the parser consumed an unrecognized character.
	ErrLex = errors.New("lex error")

	// ErrParse indicates a parser failure.
	ErrParse = errors.New("parse error")

	// ErrNotScript indicates the source does not start with the script(polaris) header.
	ErrNotScript = errors.New("not a polaris script")

	// ErrUnboundName indicates a name missing from the whole scope chain.
	ErrUnboundName = errors.New("unbound name")

	// ErrType indicates an operation applied to values it does not support.
	ErrType = errors.New("type error")

	// ErrArity indicates a function called with the wrong number of arguments.
	ErrArity = errors.New("arity error")

	// ErrDuplicatePrefix indicates two or more matchers share a prefix.
	ErrDuplicatePrefix = errors.New("duplicate prefix")

	// ErrDuplicateEntity indicates two or more entities share a result key.
	ErrDuplicateEntity = errors.New("duplicate entity key")
)

// LexError reports an unrecognized character consumed by the parser.
type LexError struct {
	Pos  Position // Position of the character
	Char string   // Offending character
}

// Error implements the error interface.
func (e *LexError) Error() string {
	return fmt.Sprintf("%v at %s: unexpected character %q", ErrLex, e.Pos, e.Char)
}

// Unwrap returns ErrLex.
func (e *LexError) Unwrap() error { return ErrLex }

// ParseError reports a token that does not fit the grammar.
type ParseError struct {
	Pos      Position  // Position of the offending token
	Expected string    // Description of what the parser expected
	Found    TokenKind // Kind of the offending token
	Lit      string    // Literal text of the offending token
}

// Error implements the error interface.
func (e *ParseError) Error() string {
	if e.Found == TokenEOF {
		return fmt.Sprintf("%v at %s: expected %s, found end of input", ErrParse, e.Pos, e.Expected)
	}

	return fmt.Sprintf("%v at %s: expected %s, found %q which is %s", ErrParse, e.Pos, e.Expected, e.Lit, e.Found)
}

// Unwrap returns ErrParse.
func (e *ParseError) Unwrap() error { return ErrParse }

// UnboundNameError reports a variable or function name that is not bound.
type UnboundNameError struct {
	Name       string // Name that failed to resolve
	Suggestion string // Closest visible name, if any
}

// Error implements the error interface.
func (e *UnboundNameError) Error() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v %q (did you mean %q?)", ErrUnboundName, e.Name, e.Suggestion)
	}

	return fmt.Sprintf("%v %q", ErrUnboundName, e.Name)
}

// Unwrap returns ErrUnboundName.
func (e *UnboundNameError) Unwrap() error { return ErrUnboundName }

// TypeError reports an operator or binding used with unsupported value kinds.
type TypeError struct {
	Op     string      // Operator or construct that failed
	Detail string      // Optional free-form detail
	Kinds  []ValueKind // Kinds of the operands involved
}

// Error implements the error interface.
func (e *TypeError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%v: %s", ErrType, e.Detail)
	}

	kinds := make([]string, len(e.Kinds))
	for i, k := range e.Kinds {
		kinds[i] = k.String()
	}

	return fmt.Sprintf("%v: operator %q not defined for %s", ErrType, e.Op, strings.Join(kinds, " and "))
}

// Unwrap returns ErrType.
func (e *TypeError) Unwrap() error { return ErrType }

// ArityError reports a function call with the wrong number of arguments.
type ArityError struct {
	Name string // Function name
	Want int    // Declared arity
	Got  int    // Number of arguments supplied
}

// Error implements the error interface.
func (e *ArityError) Error() string {
	return fmt.Sprintf("%v: %s expects %d argument(s), got %d", ErrArity, e.Name, e.Want, e.Got)
}

// Unwrap returns ErrArity.
func (e *ArityError) Unwrap() error { return ErrArity }

// DuplicatePrefixError lists every prefix bound by more than one matcher.
type DuplicatePrefixError struct {
	Prefixes []string // Duplicated prefixes, sorted
}

// Error implements the error interface.
func (e *DuplicatePrefixError) Error() string {
	quoted := make([]string, len(e.Prefixes))
	for i, p := range e.Prefixes {
		quoted[i] = fmt.Sprintf("%q", p)
	}

	return fmt.Sprintf("%v: %s", ErrDuplicatePrefix, strings.Join(quoted, ", "))
}

// Unwrap returns ErrDuplicatePrefix.
func (e *DuplicatePrefixError) Unwrap() error { return ErrDuplicatePrefix }

// DuplicateEntityError lists every entity key produced by more than one entity.
type DuplicateEntityError struct {
	Keys []string // Duplicated keys, sorted
}

// Error implements the error interface.
func (e *DuplicateEntityError) Error() string {
	quoted := make([]string, len(e.Keys))
	for i, k := range e.Keys {
		quoted[i] = fmt.Sprintf("%q", k)
	}

	return fmt.Sprintf("%v: %s (set distinct entity IDs)", ErrDuplicateEntity, strings.Join(quoted, ", "))
}

// Unwrap returns ErrDuplicateEntity.
func (e *DuplicateEntityError) Unwrap() error { return ErrDuplicateEntity }
