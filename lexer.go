package polaris

import (
	"errors"
	"fmt"
	"iter"
	"strconv"
	"strings"

	plexer "github.com/alecthomas/participle/v2/lexer"
)

// TokenKind represents a kind of a token.
type TokenKind int

// token kinds.
const (
	TokenEOF        TokenKind = iota // End of input
	TokenNumber                      // Numeric literal
	TokenIdent                       // Identifier
	TokenOp                          // Operator: + - * / @
	TokenLeft                        // Left parenthesis
	TokenRight                       // Right parenthesis
	TokenComma                       // Comma
	TokenColon                       // Colon
	TokenWhitespace                  // Run of whitespace
	TokenError                       // Any other single character
)

// String returns the name of a token kind.
func (k TokenKind) String() string {
	switch k {
	case TokenEOF:
		return "EOF"
	case TokenNumber:
		return "NUMBER"
	case TokenIdent:
		return "ID"
	case TokenOp:
		return "OP"
	case TokenLeft:
		return "LEFT"
	case TokenRight:
		return "RIGHT"
	case TokenComma:
		return "COMMA"
	case TokenColon:
		return "COLON"
	case TokenWhitespace:
		return "WHITESPACE"
	case TokenError:
		return "ERROR"
	default:
		return "token"
	}
}

// Position represents a position in the source.
type Position struct {
	Filename string // Source name, may be empty
	Offset   int    // Byte offset
	Line     int    // Line number, starting at 1
	Col      int    // Column number, starting at 1
}

// String implements fmt.Stringer.
func (p Position) String() string {
	if p.Filename == "" {
		return fmt.Sprintf("%d:%d", p.Line, p.Col)
	}

	return fmt.Sprintf("%s:%d:%d", p.Filename, p.Line, p.Col)
}

// Token is a lexeme together with its kind and position.
type Token struct {
	Lit  string    // Literal text of the token
	Pos  Position  // Position of the first character
	Kind TokenKind // Kind of the token
}

// Rules are tried in order; the first one that matches wins. Error catches
// every character the other rules reject, so lexing never fails.
var polarisLexer = plexer.MustSimple([]plexer.SimpleRule{
	{Name: "Number", Pattern: `\d[\d_]*(\.\d[\d_]*)?([eE][+\-]?\d[\d_]*)?`},
	{Name: "Ident", Pattern: `[A-Za-z]\w*`},
	{Name: "Op", Pattern: `[-+*/@]`},
	{Name: "Left", Pattern: `\(`},
	{Name: "Right", Pattern: `\)`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Colon", Pattern: `:`},
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "Error", Pattern: `.`},
})

// tokenKinds maps participle token types to token kinds.
var tokenKinds = func() map[plexer.TokenType]TokenKind {
	kinds := map[string]TokenKind{
		"EOF":        TokenEOF,
		"Number":     TokenNumber,
		"Ident":      TokenIdent,
		"Op":         TokenOp,
		"Left":       TokenLeft,
		"Right":      TokenRight,
		"Comma":      TokenComma,
		"Colon":      TokenColon,
		"Whitespace": TokenWhitespace,
		"Error":      TokenError,
	}

	out := make(map[plexer.TokenType]TokenKind, len(kinds))
	for name, tt := range polarisLexer.Symbols() {
		if k, ok := kinds[name]; ok {
			out[tt] = k
		}
	}

	return out
}()

// lexer produces tokens from a source string.
type lexer struct {
	l        plexer.Lexer // Underlying rule lexer
	filename string       // Source name for positions
	done     bool         // EOF already produced
}

// newLexer creates a new lexer for src.
func newLexer(filename, src string) *lexer {
	// LexString never fails for a string source.
	l, _ := polarisLexer.LexString(filename, src)
	return &lexer{l: l, filename: filename}
}

// next returns the next token. After the end of input it keeps returning EOF.
func (l *lexer) next() Token {
	if l.done {
		return Token{Kind: TokenEOF}
	}

	tok, err := l.l.Next()
	if err != nil {
		// Unreachable with the Error rule in place; surface it as an ERROR token.
		l.done = true
		return Token{Kind: TokenError, Lit: err.Error()}
	}

	pos := Position{Filename: l.filename, Offset: tok.Pos.Offset, Line: tok.Pos.Line, Col: tok.Pos.Column}
	if tok.EOF() {
		l.done = true
		return Token{Kind: TokenEOF, Pos: pos}
	}

	return Token{Kind: tokenKinds[tok.Type], Lit: tok.Value, Pos: pos}
}

// Tokenize returns the token sequence of src, whitespace included and EOF
// excluded. Every iteration lexes src again from the start.
func Tokenize(src string) iter.Seq[Token] {
	return func(yield func(Token) bool) {
		l := newLexer("", src)
		for {
			tok := l.next()
			if tok.Kind == TokenEOF {
				return
			}
			if !yield(tok) {
				return
			}
		}
	}
}

// numberValue converts a NUMBER literal to float64, dropping digit separators.
// Out-of-range literals become +Inf or 0, as IEEE arithmetic would.
func numberValue(lit string) (float64, error) {
	v, err := strconv.ParseFloat(strings.ReplaceAll(lit, "_", ""), 64)
	if errors.Is(err, strconv.ErrRange) {
		return v, nil
	}

	return v, err
}
