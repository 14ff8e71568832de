package polaris

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScopeLookupChain(t *testing.T) {
	root := NewRootScope()
	child := NewScope(root, map[string]Binding{"index": Variable{Value: Number(7)}})

	b, ok := child.Lookup("index")
	require.True(t, ok)
	assert.Equal(t, Variable{Value: Number(7)}, b)

	b, ok = child.Lookup("deg")
	require.True(t, ok)
	assert.IsType(t, Function{}, b)

	_, ok = root.Lookup("index")
	assert.False(t, ok)
	assert.Same(t, root, child.Parent())
}

func TestScopeShadowing(t *testing.T) {
	root := NewRootScope()
	child := NewScope(root, map[string]Binding{"deg": Variable{Value: Number(1)}})

	v, err := EvaluateNumber(child, VariableRead{Name: "deg"})
	require.NoError(t, err)
	assert.Equal(t, 1.0, v)

	b, _ := root.Lookup("deg")
	assert.IsType(t, Function{}, b)
}

func TestScopeCopiesBindings(t *testing.T) {
	bindings := map[string]Binding{"a": Variable{Value: Number(1)}}
	s := NewScope(nil, bindings)
	bindings["b"] = Variable{Value: Number(2)}

	_, ok := s.Lookup("b")
	assert.False(t, ok)
}

func TestScopeNames(t *testing.T) {
	child := NewScope(NewRootScope(), map[string]Binding{"index": Variable{Value: Number(0)}, "mm": Variable{Value: Number(0)}})
	assert.Equal(t, []string{"deg", "grad", "inch", "index", "mil", "mm", "rad", "turn"}, child.Names())
}
