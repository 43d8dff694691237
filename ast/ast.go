// Package ast defines the abstract syntax tree produced by parsing a math
// expression. Trees are built exclusively through the constructors in this
// package, which validate operator kind and arity before assembling a node.
package ast

import (
	"github.com/evalia/mathast/token"
)

// NodeType identifies the variety of a node. It is the discriminant used in
// the JSON form of a tree and is stable across releases.
type NodeType string

const (
	LiteralType  NodeType = "literal"
	VariableType NodeType = "variable"
	UnaryType    NodeType = "unary"
	BinaryType   NodeType = "binary"
	FunctionType NodeType = "function"
)

// Node is one node of an expression tree. All nodes carry the span of source
// text they cover, inclusive of operator symbol and operands, for use in
// diagnostics. A node exclusively owns its children: trees are never shared
// and contain no cycles.
type Node interface {
	// Type returns the discriminant identifying the node variety.
	Type() NodeType

	// Span returns the source byte range covered by the node, inclusive of
	// operator symbol and operands. A synthesized implicit multiplication
	// has no symbol of its own; its span covers just its two operands.
	Span() token.Span

	// String returns a parenthesized, source-like rendering of the node.
	String() string
}
