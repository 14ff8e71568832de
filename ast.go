package polaris

// Node is an expression AST node. The set of node types is closed:
// Constant, VariableRead, UnaryOp, BinaryOp and FunctionCall.
type Node interface {
	// Position returns the position of the node's first token.
	Position() Position
	node()
}

// Constant is a numeric literal.
type Constant struct {
	Pos   Position // Position of the literal
	Value float64  // Literal value
}

// VariableRead reads a variable from the scope.
type VariableRead struct {
	Name string   // Variable name
	Pos  Position // Position of the identifier
}

// UnaryOp is a prefix + or - applied to an operand.
type UnaryOp struct {
	Operand Node     // Operand expression
	Op      string   // Operator: "+" or "-"
	Pos     Position // Position of the operator
}

// BinaryOp is an infix operator applied to two operands.
type BinaryOp struct {
	Left  Node     // Left operand
	Right Node     // Right operand
	Op    string   // Operator: "+", "-", "*", "/" or "@"
	Pos   Position // Position of the left operand
}

// FunctionCall calls a function with unevaluated argument nodes.
type FunctionCall struct {
	Name string   // Function name
	Args []Node   // Argument expressions, in order
	Pos  Position // Position of the function name
}

// Matcher binds a reference prefix to an expression.
type Matcher struct {
	Expr   Node     // Expression evaluated for matching entities
	Prefix string   // Reference prefix
	Pos    Position // Position of the prefix
}

// Position implements Node.
func (n Constant) Position() Position { return n.Pos }

// Position implements Node.
func (n VariableRead) Position() Position { return n.Pos }

// Position implements Node.
func (n UnaryOp) Position() Position { return n.Pos }

// Position implements Node.
func (n BinaryOp) Position() Position { return n.Pos }

// Position implements Node.
func (n FunctionCall) Position() Position { return n.Pos }

func (Constant) node()     {}
func (VariableRead) node() {}
func (UnaryOp) node()      {}
func (BinaryOp) node()     {}
func (FunctionCall) node() {}

// Inspect traverses n depth-first, calling fn for each node before its
// children. Children are skipped when fn returns false.
func Inspect(n Node, fn func(Node) bool) {
	if n == nil || !fn(n) {
		return
	}

	switch n := n.(type) {
	case UnaryOp:
		Inspect(n.Operand, fn)
	case BinaryOp:
		Inspect(n.Left, fn)
		Inspect(n.Right, fn)
	case FunctionCall:
		for _, arg := range n.Args {
			Inspect(arg, fn)
		}
	}
}
