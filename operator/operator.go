// Package operator defines the operators understood by the expression parser:
// unary and binary operators and fixed-arity functions, along with the
// default catalogue that seeds every parser instance.
package operator

import "fmt"

// Kind discriminates the three operator varieties. Every consumer (scanner
// selection, stack reduction, node construction, arity lookup) switches
// exhaustively over these values.
type Kind int

const (
	Unary Kind = iota
	Binary
	Function
)

func (k Kind) String() string {
	switch k {
	case Unary:
		return "unary"
	case Binary:
		return "binary"
	case Function:
		return "function"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// Precedence orders binary operators. Higher values bind tighter. Functions
// carry no precedence: they reduce at their closing parenthesis and are never
// compared against other operators.
type Precedence int

const (
	Low Precedence = iota
	Normal
	Medium
	High
)

func (p Precedence) String() string {
	switch p {
	case Low:
		return "low"
	case Normal:
		return "normal"
	case Medium:
		return "medium"
	case High:
		return "high"
	default:
		return fmt.Sprintf("precedence(%d)", int(p))
	}
}

// Operator describes one operator: a display name, the symbol matched in the
// input, and kind-specific data. Precedence is meaningful only for Binary
// operators and FuncArity only for Function operators.
type Operator struct {
	Name       string
	Symbol     string
	Kind       Kind
	Precedence Precedence
	FuncArity  int
}

// NewUnary returns a unary operator with the given display name and symbol.
func NewUnary(name, symbol string) Operator {
	return Operator{Name: name, Symbol: symbol, Kind: Unary}
}

// NewBinary returns a binary operator with the given display name, symbol,
// and precedence level.
func NewBinary(name, symbol string, prec Precedence) Operator {
	return Operator{Name: name, Symbol: symbol, Kind: Binary, Precedence: prec}
}

// NewFunction returns a function operator taking exactly arity operands.
func NewFunction(name, symbol string, arity int) Operator {
	return Operator{Name: name, Symbol: symbol, Kind: Function, FuncArity: arity}
}

// Arity returns the number of operands the operator consumes when reduced.
func (o Operator) Arity() int {
	switch o.Kind {
	case Unary:
		return 1
	case Binary:
		return 2
	case Function:
		return o.FuncArity
	default:
		return 0
	}
}

func (o Operator) String() string {
	return fmt.Sprintf("%s(%q)", o.Name, o.Symbol)
}
