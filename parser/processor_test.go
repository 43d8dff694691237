package parser

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/evalia/mathast/operator"
	"github.com/evalia/mathast/token"
)

func newTestProcessor(input string) *processor {
	return newProcessor(input, true, true, operator.Multiply())
}

// Only a literal or a closing parenthesis on the previous pass forces a
// binary reading of "-". Start of input, operators, open parens, separators,
// and variables all leave it unary.
func TestShouldProcessMinusAsUnary(t *testing.T) {
	p := newTestProcessor("x")
	require.True(t, p.shouldProcessMinusAsUnary())

	require.NoError(t, p.addLiteral(1, "1", token.NewSpan(0, 1)))
	require.False(t, p.shouldProcessMinusAsUnary())

	require.NoError(t, p.addOperator(operator.NewBinary("add", "+", operator.Normal), token.NewSpan(1, 2)))
	require.True(t, p.shouldProcessMinusAsUnary())

	require.NoError(t, p.addOpenParens(token.NewSpan(2, 3)))
	require.True(t, p.shouldProcessMinusAsUnary())

	require.NoError(t, p.addVariable("x", token.NewSpan(3, 4)))
	require.True(t, p.shouldProcessMinusAsUnary())

	require.NoError(t, p.addCloseSymbol(")", token.NewSpan(4, 5)))
	require.False(t, p.shouldProcessMinusAsUnary())
}

func TestMinusAfterSeparatorIsUnary(t *testing.T) {
	p := newTestProcessor("max(1,-2)")
	max := operator.NewFunction("max", "max", 2)
	require.NoError(t, p.addOperator(max, token.NewSpan(0, 3)))
	require.NoError(t, p.addLiteral(1, "1", token.NewSpan(4, 5)))
	require.NoError(t, p.addCloseSymbol(",", token.NewSpan(5, 6)))
	require.True(t, p.shouldProcessMinusAsUnary())
}

// A synthesized multiplication must not overwrite the pass kind of the real
// token, so a "-" after "2(3)..." style adjacency still disambiguates off
// the real token.
func TestImplicitMulPreservesPassKind(t *testing.T) {
	p := newTestProcessor("2x")
	require.NoError(t, p.addLiteral(2, "2", token.NewSpan(0, 1)))
	require.NoError(t, p.addVariable("x", token.NewSpan(1, 2)))
	// The pass kind is the variable's, not the synthetic product's.
	require.Equal(t, passVariable, p.prev)
	require.True(t, p.shouldProcessMinusAsUnary())
}

func TestCloseSymbolWithEmptyStack(t *testing.T) {
	p := newTestProcessor(")")
	err := p.addCloseSymbol(")", token.NewSpan(0, 1))
	require.Error(t, err)
	require.IsType(t, &SyntaxError{}, err)

	p = newTestProcessor(",")
	err = p.addCloseSymbol(",", token.NewSpan(0, 1))
	require.Error(t, err)
}

func TestDoneWithResidualMarker(t *testing.T) {
	p := newTestProcessor("(1")
	require.NoError(t, p.addOpenParens(token.NewSpan(0, 1)))
	require.NoError(t, p.addLiteral(1, "1", token.NewSpan(1, 2)))
	_, err := p.done()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unbalanced")
}

func TestDoneWithResidualFunctionMarker(t *testing.T) {
	p := newTestProcessor("sin(1")
	sin := operator.NewFunction("sin", "sin", 1)
	require.NoError(t, p.addOperator(sin, token.NewSpan(0, 3)))
	require.NoError(t, p.addLiteral(1, "1", token.NewSpan(4, 5)))
	_, err := p.done()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unbalanced")
}

func TestDoneRequiresSingleRoot(t *testing.T) {
	p := newTestProcessor("")
	_, err := p.done()
	require.Error(t, err)
	require.Contains(t, err.Error(), "invalid equation")
}

// Pending unary operators outrank everything: a binary operator's
// precedence check never pops them, so negation applies to the whole
// subexpression up to the next structural boundary.
func TestUnaryReducedOnlyByStructuralDrain(t *testing.T) {
	p := newTestProcessor("-3*4")
	neg := operator.Negate()
	mul := operator.Multiply()
	require.NoError(t, p.addOperator(neg, token.NewSpan(0, 1)))
	require.NoError(t, p.addLiteral(3, "3", token.NewSpan(1, 2)))
	require.NoError(t, p.addOperator(mul, token.NewSpan(2, 3)))
	require.NoError(t, p.addLiteral(4, "4", token.NewSpan(3, 4)))

	node, err := p.done()
	require.NoError(t, err)
	require.Equal(t, "(-(3 * 4))", node.String())
}
