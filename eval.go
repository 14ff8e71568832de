package polaris

import "fmt"

// Evaluate evaluates node against scope.
//
// Operators evaluate their operands eagerly, left before right. Function
// arguments are passed to the function body unevaluated.
func Evaluate(scope *Scope, node Node) (Value, error) {
	switch n := node.(type) {
	case Constant:
		return Number(n.Value), nil

	case VariableRead:
		b, ok := scope.Lookup(n.Name)
		if !ok {
			return Value{}, scope.unbound(n.Name)
		}

		v, ok := b.(Variable)
		if !ok {
			return Value{}, &TypeError{Op: n.Name, Detail: fmt.Sprintf("%s is a function, not a variable", n.Name)}
		}
		return v.Value, nil

	case UnaryOp:
		v, err := Evaluate(scope, n.Operand)
		if err != nil {
			return Value{}, err
		}
		return evalUnary(n.Op, v)

	case BinaryOp:
		left, err := Evaluate(scope, n.Left)
		if err != nil {
			return Value{}, err
		}

		right, err := Evaluate(scope, n.Right)
		if err != nil {
			return Value{}, err
		}
		return evalBinary(n.Op, left, right)

	case FunctionCall:
		b, ok := scope.Lookup(n.Name)
		if !ok {
			return Value{}, scope.unbound(n.Name)
		}

		fn, ok := b.(Function)
		if !ok {
			return Value{}, &TypeError{Op: n.Name, Detail: fmt.Sprintf("%s is a variable, not a function", n.Name)}
		}

		if fn.Arity >= 0 && len(n.Args) != fn.Arity {
			return Value{}, &ArityError{Name: n.Name, Want: fn.Arity, Got: len(n.Args)}
		}
		return fn.Call(scope, n.Args)

	default:
		return Value{}, fmt.Errorf("unhandled AST node %T", node)
	}
}

// EvaluateNumber evaluates node and requires a number.
func EvaluateNumber(scope *Scope, node Node) (float64, error) {
	v, err := Evaluate(scope, node)
	if err != nil {
		return 0, err
	}

	if v.Kind != ValueNumber {
		return 0, &TypeError{Detail: fmt.Sprintf("expected number, got %s", v.Kind)}
	}

	return v.Num, nil
}

// EvaluateTransform evaluates node and requires a transform.
func EvaluateTransform(scope *Scope, node Node) (Transform, error) {
	v, err := Evaluate(scope, node)
	if err != nil {
		return Transform{}, err
	}

	if v.Kind != ValuePose {
		return Transform{}, &TypeError{Detail: fmt.Sprintf("expected transform, got %s", v.Kind)}
	}

	return v.Pose, nil
}

// evalUnary applies a prefix operator.
func evalUnary(op string, v Value) (Value, error) {
	if v.Kind != ValueNumber {
		return Value{}, &TypeError{Op: op, Kinds: []ValueKind{v.Kind}}
	}

	switch op {
	case "+":
		return v, nil
	case "-":
		return Number(-v.Num), nil
	default:
		return Value{}, &TypeError{Op: op, Kinds: []ValueKind{v.Kind}}
	}
}

// evalBinary applies an infix operator.
func evalBinary(op string, l, r Value) (Value, error) {
	if op == "@" {
		if l.Kind != ValuePose || r.Kind != ValuePose {
			return Value{}, &TypeError{Op: op, Kinds: []ValueKind{l.Kind, r.Kind}}
		}
		return Pose(Compose(l.Pose, r.Pose)), nil
	}

	if l.Kind != ValueNumber || r.Kind != ValueNumber {
		return Value{}, &TypeError{Op: op, Kinds: []ValueKind{l.Kind, r.Kind}}
	}

	// Division by zero follows IEEE 754.
	switch op {
	case "+":
		return Number(l.Num + r.Num), nil
	case "-":
		return Number(l.Num - r.Num), nil
	case "*":
		return Number(l.Num * r.Num), nil
	case "/":
		return Number(l.Num / r.Num), nil
	default:
		return Value{}, &TypeError{Op: op, Kinds: []ValueKind{l.Kind, r.Kind}}
	}
}
