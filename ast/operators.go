package ast

import (
	"bytes"
	"fmt"

	"github.com/evalia/mathast/operator"
	"github.com/evalia/mathast/token"
)

// ArityError reports an attempt to construct an operator node with a child
// count different from the operator's declared arity. It indicates a
// malformed operator table rather than bad input, but it is checked on every
// construction and never assumed away.
type ArityError struct {
	Op  operator.Operator
	Got int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("operator %q requires %d operand(s), got %d",
		e.Op.Name, e.Op.Arity(), e.Got)
}

// KindError reports an attempt to construct a node with an operator of the
// wrong kind, e.g. a binary operator passed to NewUnaryOp.
type KindError struct {
	Op   operator.Operator
	Want operator.Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("operator %q is %s, not %s", e.Op.Name, e.Op.Kind, e.Want)
}

// UnaryOp applies a unary operator to a single operand.
type UnaryOp struct {
	Op operator.Operator
	X  Node

	span token.Span
}

// NewUnaryOp builds a UnaryOp node, validating that op is a unary operator
// and that exactly one operand is present.
func NewUnaryOp(op operator.Operator, x Node, span token.Span) (*UnaryOp, error) {
	if op.Kind != operator.Unary {
		return nil, &KindError{Op: op, Want: operator.Unary}
	}
	if x == nil {
		return nil, &ArityError{Op: op, Got: 0}
	}
	return &UnaryOp{Op: op, X: x, span: span}, nil
}

func (n *UnaryOp) Type() NodeType   { return UnaryType }
func (n *UnaryOp) Span() token.Span { return n.span }

func (n *UnaryOp) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(n.Op.Symbol)
	out.WriteString(n.X.String())
	out.WriteString(")")
	return out.String()
}

// BinaryOp applies a binary operator to two operands. Left/right order is
// significant.
type BinaryOp struct {
	Op    operator.Operator
	Left  Node
	Right Node

	span token.Span
}

// NewBinaryOp builds a BinaryOp node, validating that op is a binary
// operator and that both operands are present.
func NewBinaryOp(op operator.Operator, left, right Node, span token.Span) (*BinaryOp, error) {
	if op.Kind != operator.Binary {
		return nil, &KindError{Op: op, Want: operator.Binary}
	}
	got := 0
	if left != nil {
		got++
	}
	if right != nil {
		got++
	}
	if got != 2 {
		return nil, &ArityError{Op: op, Got: got}
	}
	return &BinaryOp{Op: op, Left: left, Right: right, span: span}, nil
}

func (n *BinaryOp) Type() NodeType   { return BinaryType }
func (n *BinaryOp) Span() token.Span { return n.span }

func (n *BinaryOp) String() string {
	var out bytes.Buffer
	out.WriteString("(")
	out.WriteString(n.Left.String())
	out.WriteString(" " + n.Op.Symbol + " ")
	out.WriteString(n.Right.String())
	out.WriteString(")")
	return out.String()
}

// FunctionOp applies a named function to an ordered argument list whose
// length always equals the function's declared arity.
type FunctionOp struct {
	Op   operator.Operator
	Args []Node

	span token.Span
}

// NewFunctionOp builds a FunctionOp node, validating that op is a function
// operator and that the argument count equals its declared arity.
func NewFunctionOp(op operator.Operator, args []Node, span token.Span) (*FunctionOp, error) {
	if op.Kind != operator.Function {
		return nil, &KindError{Op: op, Want: operator.Function}
	}
	if len(args) != op.Arity() {
		return nil, &ArityError{Op: op, Got: len(args)}
	}
	for _, arg := range args {
		if arg == nil {
			return nil, &ArityError{Op: op, Got: len(args) - 1}
		}
	}
	return &FunctionOp{Op: op, Args: args, span: span}, nil
}

func (n *FunctionOp) Type() NodeType   { return FunctionType }
func (n *FunctionOp) Span() token.Span { return n.span }

func (n *FunctionOp) String() string {
	var out bytes.Buffer
	out.WriteString(n.Op.Symbol)
	out.WriteString("(")
	for i, arg := range n.Args {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(arg.String())
	}
	out.WriteString(")")
	return out.String()
}
