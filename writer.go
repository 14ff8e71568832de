package polaris

import (
	"bufio"
	"bytes"
	"io"
	"os"
	"strconv"
	"strings"
)

// EncodeScript writes matchers as a script(polaris) block to writer.
func EncodeScript(w io.Writer, matchers []Matcher, opt *FormatOptions) error {
	fopt := opt.normalize()
	bw := bufio.NewWriter(w)
	wr := &writer{w: bw, indent: fopt.Indent}
	if err := wr.writeScript(matchers); err != nil {
		return err
	}

	return bw.Flush()
}

// EncodeScriptFile writes matchers as a script to a file.
func EncodeScriptFile(path string, matchers []Matcher, opt *FormatOptions) error {
	b, err := FormatScript(matchers, opt)
	if err != nil {
		return err
	}

	return os.WriteFile(path, b, 0o600)
}

// FormatScript renders matchers as a script(polaris) block.
func FormatScript(matchers []Matcher, opt *FormatOptions) ([]byte, error) {
	var buf bytes.Buffer
	if err := EncodeScript(&buf, matchers, opt); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// FormatExpression renders an expression with the fewest parentheses that
// keep its structure when parsed again.
func FormatExpression(n Node) string {
	var b strings.Builder
	writeNode(&b, n)
	return b.String()
}

// writer writes a script to a writer.
type writer struct {
	w      io.Writer // Writer to write to
	indent string    // Indentation of matcher lines
}

// writeScript writes the header and one matcher per line.
func (w *writer) writeScript(matchers []Matcher) error {
	if err := w.writeString("script(polaris)\n"); err != nil {
		return err
	}

	for _, m := range matchers {
		line := w.indent + m.Prefix + ": " + FormatExpression(m.Expr) + "\n"
		if err := w.writeString(line); err != nil {
			return err
		}
	}

	return nil
}

// writeString writes a string to the writer.
func (w *writer) writeString(s string) error {
	_, err := io.WriteString(w.w, s)
	return err
}

// Binding strength of each node shape, loosest first.
const (
	precSum     = iota + 1 // + -
	precProduct            // * / @
	precUnary              // prefix + -
	precPrimary            // literals, names, calls
)

// precedence returns the binding strength of n.
func precedence(n Node) int {
	switch n := n.(type) {
	case BinaryOp:
		if n.Op == "+" || n.Op == "-" {
			return precSum
		}
		return precProduct
	case UnaryOp:
		return precUnary
	case Constant:
		// Negative literals only come from hand-built trees; they print as unary minus.
		if n.Value < 0 {
			return precUnary
		}
		return precPrimary
	default:
		return precPrimary
	}
}

// writeNode renders n into b.
func writeNode(b *strings.Builder, n Node) {
	switch n := n.(type) {
	case Constant:
		b.WriteString(strconv.FormatFloat(n.Value, 'g', -1, 64))

	case VariableRead:
		b.WriteString(n.Name)

	case UnaryOp:
		b.WriteString(n.Op)
		// The grammar only allows a primary after a sign.
		writeOperand(b, n.Operand, precPrimary-1)

	case BinaryOp:
		p := precedence(n)
		writeOperand(b, n.Left, p-1)
		b.WriteString(" " + n.Op + " ")
		// Operators are left-associative, so an equal-precedence right operand needs parentheses.
		writeOperand(b, n.Right, p)

	case FunctionCall:
		b.WriteString(n.Name)
		b.WriteByte('(')
		for i, arg := range n.Args {
			if i > 0 {
				b.WriteString(", ")
			}
			writeNode(b, arg)
		}
		b.WriteByte(')')
	}
}

// writeOperand renders n, parenthesized unless it binds tighter than floor.
func writeOperand(b *strings.Builder, n Node, floor int) {
	if precedence(n) > floor {
		writeNode(b, n)
		return
	}

	b.WriteByte('(')
	writeNode(b, n)
	b.WriteByte(')')
}
