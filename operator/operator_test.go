package operator

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestConstructors(t *testing.T) {
	u := NewUnary("negate", "-")
	require.Equal(t, Unary, u.Kind)
	require.Equal(t, 1, u.Arity())

	b := NewBinary("add", "+", Normal)
	require.Equal(t, Binary, b.Kind)
	require.Equal(t, Normal, b.Precedence)
	require.Equal(t, 2, b.Arity())

	f := NewFunction("max", "max", 2)
	require.Equal(t, Function, f.Kind)
	require.Equal(t, 2, f.Arity())
}

func TestPrecedenceOrdering(t *testing.T) {
	require.True(t, Low < Normal)
	require.True(t, Normal < Medium)
	require.True(t, Medium < High)
}

func TestDefaults(t *testing.T) {
	ops := Defaults()
	bySymbol := map[string]Operator{}
	for _, op := range ops {
		bySymbol[op.Symbol] = op
	}

	require.Equal(t, Binary, bySymbol["+"].Kind)
	require.Equal(t, Binary, bySymbol["-"].Kind)
	require.True(t, bySymbol["*"].Precedence > bySymbol["+"].Precedence)
	require.True(t, bySymbol["^"].Precedence > bySymbol["*"].Precedence)
	require.Equal(t, 1, bySymbol["sin"].Arity())
	require.Equal(t, 2, bySymbol["max"].Arity())

	// The unary minus is not part of the catalogue.
	for _, op := range ops {
		require.NotEqual(t, Unary, op.Kind)
	}
}

func TestDefaultsReturnsCopy(t *testing.T) {
	a := Defaults()
	a[0] = NewBinary("mangled", "@@", High)
	b := Defaults()
	require.NotEqual(t, a[0], b[0])
}

func TestNegate(t *testing.T) {
	n := Negate()
	require.Equal(t, Unary, n.Kind)
	require.Equal(t, "-", n.Symbol)
}

func TestMultiply(t *testing.T) {
	m := Multiply()
	require.Equal(t, Binary, m.Kind)
	require.Equal(t, "*", m.Symbol)
}
