package ast

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evalia/mathast/operator"
	"github.com/evalia/mathast/token"
)

func TestLiteral(t *testing.T) {
	n := NewLiteral(1500, "1.5e3", token.NewSpan(0, 5))
	require.Equal(t, LiteralType, n.Type())
	require.Equal(t, "1.5e3", n.String())
	require.Equal(t, token.NewSpan(0, 5), n.Span())

	// Without a lexeme the value is rendered.
	n = NewLiteral(2.5, "", token.NewSpan(0, 3))
	require.Equal(t, "2.5", n.String())
}

func TestVariable(t *testing.T) {
	n := NewVariable("x", token.NewSpan(4, 5))
	require.Equal(t, VariableType, n.Type())
	require.Equal(t, "x", n.String())
}

func TestNewUnaryOp(t *testing.T) {
	neg := operator.Negate()
	x := NewVariable("x", token.NewSpan(1, 2))

	n, err := NewUnaryOp(neg, x, token.NewSpan(0, 2))
	require.NoError(t, err)
	require.Equal(t, UnaryType, n.Type())
	require.Equal(t, "(-x)", n.String())

	_, err = NewUnaryOp(neg, nil, token.Span{})
	require.Error(t, err)
	require.IsType(t, &ArityError{}, err)

	// Kind is validated, not assumed.
	_, err = NewUnaryOp(operator.NewBinary("add", "+", operator.Normal), x, token.Span{})
	require.Error(t, err)
	require.IsType(t, &KindError{}, err)
}

func TestNewBinaryOp(t *testing.T) {
	add := operator.NewBinary("add", "+", operator.Normal)
	one := NewLiteral(1, "1", token.NewSpan(0, 1))
	two := NewLiteral(2, "2", token.NewSpan(4, 5))

	n, err := NewBinaryOp(add, one, two, token.NewSpan(0, 5))
	require.NoError(t, err)
	require.Equal(t, "(1 + 2)", n.String())

	_, err = NewBinaryOp(add, one, nil, token.Span{})
	require.Error(t, err)
	ae, ok := err.(*ArityError)
	require.True(t, ok)
	require.Equal(t, 1, ae.Got)

	_, err = NewBinaryOp(operator.Negate(), one, two, token.Span{})
	require.IsType(t, &KindError{}, err)
}

func TestNewFunctionOp(t *testing.T) {
	max := operator.NewFunction("max", "max", 2)
	one := NewLiteral(1, "1", token.NewSpan(4, 5))
	two := NewLiteral(2, "2", token.NewSpan(7, 8))

	n, err := NewFunctionOp(max, []Node{one, two}, token.NewSpan(0, 9))
	require.NoError(t, err)
	require.Equal(t, "max(1, 2)", n.String())

	// A child count different from the arity must fail, never truncate
	// or pad.
	_, err = NewFunctionOp(max, []Node{one}, token.Span{})
	require.Error(t, err)
	ae, ok := err.(*ArityError)
	require.True(t, ok)
	require.Equal(t, 1, ae.Got)

	_, err = NewFunctionOp(max, []Node{one, two, one}, token.Span{})
	require.Error(t, err)

	_, err = NewFunctionOp(max, []Node{one, nil}, token.Span{})
	require.Error(t, err)
}

func TestMarshalJSON(t *testing.T) {
	add := operator.NewBinary("add", "+", operator.Normal)
	one := NewLiteral(1, "1", token.NewSpan(0, 1))
	x := NewVariable("x", token.NewSpan(4, 5))
	n, err := NewBinaryOp(add, one, x, token.NewSpan(0, 5))
	require.NoError(t, err)

	data, err := json.Marshal(n)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "binary",
		"name": "add",
		"start": 0,
		"end": 5,
		"children": [
			{"type": "literal", "value": 1, "start": 0, "end": 1},
			{"type": "variable", "name": "x", "start": 4, "end": 5}
		]
	}`, string(data))
}

func TestMarshalJSONUnaryAndFunction(t *testing.T) {
	neg := operator.Negate()
	one := NewLiteral(1, "1", token.NewSpan(1, 2))
	u, err := NewUnaryOp(neg, one, token.NewSpan(0, 2))
	require.NoError(t, err)

	data, err := json.Marshal(u)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "unary",
		"name": "negate",
		"start": 0,
		"end": 2,
		"children": [{"type": "literal", "value": 1, "start": 1, "end": 2}]
	}`, string(data))

	sin := operator.NewFunction("sin", "sin", 1)
	f, err := NewFunctionOp(sin, []Node{NewVariable("x", token.NewSpan(4, 5))}, token.NewSpan(0, 6))
	require.NoError(t, err)

	data, err = json.Marshal(f)
	require.NoError(t, err)
	require.JSONEq(t, `{
		"type": "function",
		"name": "sin",
		"start": 0,
		"end": 6,
		"children": [{"type": "variable", "name": "x", "start": 4, "end": 5}]
	}`, string(data))
}

func TestWalk(t *testing.T) {
	add := operator.NewBinary("add", "+", operator.Normal)
	one := NewLiteral(1, "1", token.NewSpan(0, 1))
	x := NewVariable("x", token.NewSpan(4, 5))
	n, err := NewBinaryOp(add, one, x, token.NewSpan(0, 5))
	require.NoError(t, err)

	var visited []NodeType
	Walk(n, func(node Node) bool {
		visited = append(visited, node.Type())
		return true
	})
	require.Equal(t, []NodeType{BinaryType, LiteralType, VariableType}, visited)

	// Returning false skips children.
	count := 0
	Walk(n, func(node Node) bool {
		count++
		return false
	})
	require.Equal(t, 1, count)
}
