package polaris

import (
	"fmt"
	"io"
	"os"
)

// ParseExpression parses a single expression. The whole source must be
// consumed by the expression.
func ParseExpression(src string, opt *ParseOptions) (Node, error) {
	popt := opt.normalize()
	p := newParser(popt.Filename, src)

	n, err := p.parseExpression()
	if err != nil {
		return nil, err
	}

	if tok := p.c.peek(); tok.Kind != TokenEOF {
		if _, err := p.c.next(); err != nil {
			return nil, err
		}
		return nil, unexpected(tok, "end of input")
	}

	return n, nil
}

// ParseScript parses a script(polaris) block into its matchers, in
// declaration order. A source without the header returns an error wrapping
// ErrNotScript; any failure after the header is a LexError or ParseError.
func ParseScript(src string, opt *ParseOptions) ([]Matcher, error) {
	popt := opt.normalize()
	p := newParser(popt.Filename, src)
	return p.parseScript()
}

// DecodeScript parses a script from reader.
func DecodeScript(r io.Reader, opt *ParseOptions) ([]Matcher, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	return ParseScript(string(b), opt)
}

// DecodeScriptFile parses a script from a file.
func DecodeScriptFile(path string, opt *ParseOptions) ([]Matcher, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	o := opt.normalize()
	if o.Filename == "" {
		o.Filename = path
	}

	return ParseScript(string(b), &o)
}

// parser is a recursive-descent parser over a token cursor.
type parser struct {
	c *cursor // Token cursor
}

// newParser creates a new parser for src.
func newParser(filename, src string) *parser {
	return &parser{c: newCursor(filename, src)}
}

// scriptHeader is the token sequence every script starts with.
var scriptHeader = []Token{
	{Kind: TokenIdent, Lit: "script"},
	{Kind: TokenLeft, Lit: "("},
	{Kind: TokenIdent, Lit: "polaris"},
	{Kind: TokenRight, Lit: ")"},
}

// parseScript parses the header and then prefix: expression pairs until EOF.
func (p *parser) parseScript() ([]Matcher, error) {
	for _, want := range scriptHeader {
		tok := p.c.peek()
		if tok.Kind != want.Kind || tok.Lit != want.Lit {
			return nil, fmt.Errorf("%w at %s: found %q", ErrNotScript, tok.Pos, tok.Lit)
		}
		_, _ = p.c.next()
	}

	var out []Matcher
	for p.c.peek().Kind != TokenEOF {
		prefix, err := p.c.expect(TokenIdent)
		if err != nil {
			return nil, err
		}

		if _, err := p.c.expect(TokenColon); err != nil {
			return nil, err
		}

		expr, err := p.parseExpression()
		if err != nil {
			return nil, err
		}

		out = append(out, Matcher{Prefix: prefix.Lit, Expr: expr, Pos: prefix.Pos})
	}

	return out, nil
}

// parseExpression parses term (('+'|'-') term)*.
func (p *parser) parseExpression() (Node, error) {
	left, err := p.parseTerm()
	if err != nil {
		return nil, err
	}

	for isOp(p.c.peek(), "+", "-") {
		op, _ := p.c.next()
		right, err := p.parseTerm()
		if err != nil {
			return nil, err
		}

		left = BinaryOp{Left: left, Op: op.Lit, Right: right, Pos: left.Position()}
	}

	return left, nil
}

// parseTerm parses factor (('*'|'/'|'@') factor)*.
func (p *parser) parseTerm() (Node, error) {
	left, err := p.parseFactor()
	if err != nil {
		return nil, err
	}

	for isOp(p.c.peek(), "*", "/", "@") {
		op, _ := p.c.next()
		right, err := p.parseFactor()
		if err != nil {
			return nil, err
		}

		left = BinaryOp{Left: left, Op: op.Lit, Right: right, Pos: left.Position()}
	}

	return left, nil
}

// parseFactor parses ('+'|'-')? primary.
func (p *parser) parseFactor() (Node, error) {
	if tok := p.c.peek(); isOp(tok, "+", "-") {
		_, _ = p.c.next()
		operand, err := p.parsePrimary()
		if err != nil {
			return nil, err
		}

		return UnaryOp{Op: tok.Lit, Operand: operand, Pos: tok.Pos}, nil
	}

	return p.parsePrimary()
}

// parsePrimary parses NUMBER | '(' expression ')' | ID ['(' arglist ')'].
func (p *parser) parsePrimary() (Node, error) {
	tok, err := p.c.next()
	if err != nil {
		return nil, err
	}

	switch tok.Kind {
	case TokenNumber:
		v, err := numberValue(tok.Lit)
		if err != nil {
			return nil, unexpected(tok, "number")
		}
		return Constant{Value: v, Pos: tok.Pos}, nil

	case TokenLeft:
		n, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		if _, err := p.c.expect(TokenRight); err != nil {
			return nil, err
		}
		return n, nil

	case TokenIdent:
		if p.c.peek().Kind != TokenLeft {
			return VariableRead{Name: tok.Lit, Pos: tok.Pos}, nil
		}
		_, _ = p.c.next()

		args, err := p.parseArgs()
		if err != nil {
			return nil, err
		}
		return FunctionCall{Name: tok.Lit, Args: args, Pos: tok.Pos}, nil

	default:
		return nil, unexpected(tok, "number, identifier or '('")
	}
}

// parseArgs parses an argument list after '(' up to and including ')'.
func (p *parser) parseArgs() ([]Node, error) {
	// Empty argument list.
	if p.c.peek().Kind == TokenRight {
		_, _ = p.c.next()
		return nil, nil
	}

	var args []Node
	for {
		arg, err := p.parseExpression()
		if err != nil {
			return nil, err
		}
		args = append(args, arg)

		tok, err := p.c.next()
		if err != nil {
			return nil, err
		}

		switch tok.Kind {
		case TokenComma:
			continue
		case TokenRight:
			return args, nil
		default:
			return nil, unexpected(tok, "',' or ')'")
		}
	}
}

// isOp reports whether tok is one of the given operators.
func isOp(tok Token, ops ...string) bool {
	if tok.Kind != TokenOp {
		return false
	}

	for _, op := range ops {
		if tok.Lit == op {
			return true
		}
	}

	return false
}
