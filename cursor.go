package polaris

// cursor is a one-token lookahead buffer over a lexer. Whitespace is
// dropped here, so the parser never sees it.
type cursor struct {
	l   *lexer // Token source
	buf Token  // Buffered token
	has bool   // Has buffered token
}

// newCursor creates a cursor over src.
func newCursor(filename, src string) *cursor {
	return &cursor{l: newLexer(filename, src)}
}

// peek returns the next significant token without consuming it.
// ERROR tokens are returned as-is; they only fail once consumed.
func (c *cursor) peek() Token {
	if !c.has {
		c.buf = c.fill()
		c.has = true
	}

	return c.buf
}

// next consumes the next significant token.
func (c *cursor) next() (Token, error) {
	tok := c.peek()
	c.has = false

	if tok.Kind == TokenError {
		return tok, &LexError{Pos: tok.Pos, Char: tok.Lit}
	}

	return tok, nil
}

// expect consumes the next token and checks its kind.
func (c *cursor) expect(kind TokenKind) (Token, error) {
	tok, err := c.next()
	if err != nil {
		return tok, err
	}

	if tok.Kind != kind {
		return tok, unexpected(tok, kind.String())
	}

	return tok, nil
}

// fill pulls tokens from the lexer until a non-whitespace one appears.
func (c *cursor) fill() Token {
	for {
		tok := c.l.next()
		if tok.Kind != TokenWhitespace {
			return tok
		}
	}
}

// unexpected builds a ParseError for tok.
func unexpected(tok Token, expected string) error {
	return &ParseError{Pos: tok.Pos, Expected: expected, Found: tok.Kind, Lit: tok.Lit}
}
