package ast

import (
	"strconv"

	"github.com/evalia/mathast/token"
)

// Literal is a leaf node holding a numeric constant.
type Literal struct {
	Value float64
	// Text is the lexeme as it appeared in the input, e.g. "1.5e3".
	Text string

	span token.Span
}

// NewLiteral returns a Literal for the given value. text should be the
// original lexeme; if empty, a rendering of value is used.
func NewLiteral(value float64, text string, span token.Span) *Literal {
	if text == "" {
		text = strconv.FormatFloat(value, 'g', -1, 64)
	}
	return &Literal{Value: value, Text: text, span: span}
}

func (n *Literal) Type() NodeType   { return LiteralType }
func (n *Literal) Span() token.Span { return n.span }
func (n *Literal) String() string   { return n.Text }

// Variable is a leaf node referring to a single-letter variable by name.
type Variable struct {
	Name string

	span token.Span
}

// NewVariable returns a Variable with the given name.
func NewVariable(name string, span token.Span) *Variable {
	return &Variable{Name: name, span: span}
}

func (n *Variable) Type() NodeType   { return VariableType }
func (n *Variable) Span() token.Span { return n.span }
func (n *Variable) String() string   { return n.Name }
