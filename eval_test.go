package polaris

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func evalString(t *testing.T, scope *Scope, src string) (Value, error) {
	t.Helper()
	return Evaluate(scope, mustParse(t, src))
}

func TestEvaluateNodes(t *testing.T) {
	scope := NewScope(nil, map[string]Binding{"v": Variable{Value: Number(1)}})

	tests := []struct {
		node Node
		want float64
	}{
		{Constant{Value: 12}, 12},
		{UnaryOp{Op: "-", Operand: Constant{Value: 12}}, -12},
		{UnaryOp{Op: "+", Operand: Constant{Value: 11}}, 11},
		{BinaryOp{Left: Constant{Value: 12}, Op: "+", Right: Constant{Value: 10}}, 22},
		{BinaryOp{Left: Constant{Value: 10}, Op: "-", Right: Constant{Value: 12}}, -2},
		{BinaryOp{Left: Constant{Value: 12}, Op: "*", Right: Constant{Value: 10}}, 120},
		{BinaryOp{Left: Constant{Value: 12}, Op: "/", Right: Constant{Value: 10}}, 1.2},
		{VariableRead{Name: "v"}, 1},
	}
	for _, tt := range tests {
		got, err := EvaluateNumber(scope, tt.node)
		require.NoError(t, err)
		assert.InDelta(t, tt.want, got, eps)
	}
}

func TestEvaluateBuiltins(t *testing.T) {
	tests := []struct {
		in   string
		want Transform
	}{
		{"mm(1, 2)", Transform{X: 1, Y: 2}},
		{"inch(1, 0)", Transform{X: 25.4}},
		{"mil(1000, -500)", Transform{X: 25.4, Y: -12.7}},
		{"deg(90)", Transform{Theta: math.Pi / 2}},
		{"grad(200)", Transform{Theta: math.Pi}},
		{"rad(1)", Transform{Theta: 1}},
		{"turn(0.5)", Transform{Theta: math.Pi}},
		{"deg(45 * 2)", Transform{Theta: math.Pi / 2}},
		{"mm(10, 5) @ deg(90)", Transform{X: -5, Y: 10, Theta: math.Pi / 2}},
	}
	root := NewRootScope()
	for _, tt := range tests {
		got, err := EvaluateTransform(root, mustParse(t, tt.in))
		require.NoError(t, err, tt.in)
		assertTransform(t, tt.want, got)
	}
}

func TestEvaluateUnboundName(t *testing.T) {
	_, err := Evaluate(NewRootScope(), VariableRead{Name: "unknown_var"})
	var unbound *UnboundNameError
	require.ErrorAs(t, err, &unbound)
	assert.ErrorIs(t, err, ErrUnboundName)
	assert.Equal(t, "unknown_var", unbound.Name)

	_, err = evalString(t, NewScope(nil, nil), "nothing(1)")
	assert.ErrorIs(t, err, ErrUnboundName)
}

func TestEvaluateSuggestion(t *testing.T) {
	tests := map[string]string{
		"degg(90)": "deg",
		"dg(90)":   "deg",
		"trn(1)":   "turn",
	}
	for in, want := range tests {
		_, err := evalString(t, NewRootScope(), in)
		var unbound *UnboundNameError
		require.ErrorAs(t, err, &unbound, in)
		assert.Equal(t, want, unbound.Suggestion, in)
		assert.Contains(t, err.Error(), "did you mean", in)
	}
}

func TestEvaluateTypeErrors(t *testing.T) {
	scope := NewScope(NewRootScope(), map[string]Binding{"x": Variable{Value: Number(3)}})
	for _, in := range []string{
		"mm(1, 2) + 1",
		"1 - deg(90)",
		"mm(1, 2) * mm(1, 2)",
		"1 @ 2",
		"deg(90) @ 2",
		"-deg(90)",
		"+deg(90)",
		"deg(mm(1, 2))",
		"mm(1, deg(1))",
		"x(1)",
		"deg",
	} {
		_, err := evalString(t, scope, in)
		var typeErr *TypeError
		assert.ErrorAs(t, err, &typeErr, in)
		assert.ErrorIs(t, err, ErrType, in)
	}
}

func TestEvaluateArity(t *testing.T) {
	for _, in := range []string{"deg(1, 2)", "mm(1)", "turn()"} {
		_, err := evalString(t, NewRootScope(), in)
		var arity *ArityError
		require.ErrorAs(t, err, &arity, in)
		assert.ErrorIs(t, err, ErrArity, in)
	}
}

func TestEvaluateDivisionByZero(t *testing.T) {
	v, err := EvaluateNumber(nil, mustParse(t, "1 / 0"))
	require.NoError(t, err)
	assert.True(t, math.IsInf(v, 1))

	v, err = EvaluateNumber(nil, mustParse(t, "0 / 0"))
	require.NoError(t, err)
	assert.True(t, math.IsNaN(v))
}

func TestEvaluateDeferredArguments(t *testing.T) {
	var seen []Node
	scope := NewScope(NewRootScope(), map[string]Binding{
		"count": Function{Arity: -1, Call: func(_ *Scope, args []Node) (Value, error) {
			seen = args
			return Number(float64(len(args))), nil
		}},
	})

	v, err := evalString(t, scope, "count(undefined_name, 1 @ 2, mm(1, 2))")
	require.NoError(t, err)
	assert.Equal(t, Number(3), v)
	require.Len(t, seen, 3)
	assert.Equal(t, "undefined_name", seen[0].(VariableRead).Name)
}

func TestEvaluateFunctionScope(t *testing.T) {
	// Built-ins evaluate their arguments in the calling scope.
	scope := NewScope(NewRootScope(), map[string]Binding{"index": Variable{Value: Number(4)}})
	got, err := EvaluateTransform(scope, mustParse(t, "mm(2.54 * index, -index)"))
	require.NoError(t, err)
	assertTransform(t, Transform{X: 10.16, Y: -4}, got)
}

func TestEvaluatePoseVariable(t *testing.T) {
	scope := NewScope(NewRootScope(), map[string]Binding{"origin": Variable{Value: Pose(FromTranslation(100, 50))}})
	got, err := EvaluateTransform(scope, mustParse(t, "mm(1, 0) @ origin"))
	require.NoError(t, err)
	assertTransform(t, Transform{X: 101, Y: 50}, got)
}

func TestEvaluateTransformWantsPose(t *testing.T) {
	_, err := EvaluateTransform(NewRootScope(), mustParse(t, "5"))
	assert.ErrorIs(t, err, ErrType)

	_, err = EvaluateNumber(NewRootScope(), mustParse(t, "deg(5)"))
	assert.ErrorIs(t, err, ErrType)
}
