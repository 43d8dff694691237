package parser

import (
	"fmt"

	"github.com/evalia/mathast/ast"
	"github.com/evalia/mathast/operator"
	"github.com/evalia/mathast/token"
)

// passKind records what sort of token the processor accepted on a pass. One
// pass is one token handed over by the driver. The kind recorded by the
// previous pass drives both unary-minus disambiguation and implicit
// multiplication.
type passKind int

const (
	passNone passKind = iota
	passLiteral
	passVariable
	passUnary
	passBinary
	passFunction
	passOpen
	passClose
	passSeparator
)

// The operator stack holds three entry varieties: a pending operator waiting
// to be reduced, an open-parenthesis marker, and a function-start marker.
// Modeling them as a closed set of types keeps every consumer an exhaustive
// type switch.
type stackEntry interface {
	stackEntry()
}

// pendingOp is an operator that has been accepted but not yet reduced.
type pendingOp struct {
	op   operator.Operator
	span token.Span
}

// openMarker is pushed for an explicit "(" and popped by the matching ")".
type openMarker struct {
	span token.Span
}

// funcMarker sits directly above its function's pendingOp. It takes the
// place of the function's opening parenthesis, which the driver consumes
// together with the function symbol. remaining counts the operands the
// function still expects; commas decrement it.
type funcMarker struct {
	remaining int
}

func (*pendingOp) stackEntry()  {}
func (*openMarker) stackEntry() {}
func (*funcMarker) stackEntry() {}

// processor is the operator-precedence stack machine. It consumes one token
// per pass and reduces completed subtrees onto the node stack. All state is
// local to a single Parse call.
type processor struct {
	input string

	nodes []ast.Node
	ops   []stackEntry

	// prev is the token kind recorded by the previous pass. A synthesized
	// implicit multiplication never overwrites it; only the real token of
	// the pass does.
	prev passKind

	implicitMul bool
	leftAssoc   bool
	product     operator.Operator
}

func newProcessor(input string, implicitMul, leftAssoc bool, product operator.Operator) *processor {
	return &processor{
		input:       input,
		implicitMul: implicitMul,
		leftAssoc:   leftAssoc,
		product:     product,
	}
}

func (p *processor) top() stackEntry {
	if len(p.ops) == 0 {
		return nil
	}
	return p.ops[len(p.ops)-1]
}

func (p *processor) pop() stackEntry {
	entry := p.ops[len(p.ops)-1]
	p.ops = p.ops[:len(p.ops)-1]
	return entry
}

// popNodes removes the top n nodes in stack order, so the oldest node comes
// first and becomes the leftmost operand.
func (p *processor) popNodes(n int, op operator.Operator, at token.Span) ([]ast.Node, error) {
	if len(p.nodes) < n {
		return nil, NewSyntaxError(ErrorOpts{
			Message: fmt.Sprintf("missing operand for %q", op.Name),
			Span:    at,
			Input:   p.input,
		})
	}
	args := make([]ast.Node, n)
	copy(args, p.nodes[len(p.nodes)-n:])
	p.nodes = p.nodes[:len(p.nodes)-n]
	return args, nil
}

// reduce pops the operator's operands off the node stack, builds the node,
// and pushes the result. Extra spans (such as a function's closing
// parenthesis) widen the node's span.
func (p *processor) reduce(entry *pendingOp, extra ...token.Span) error {
	op := entry.op
	args, err := p.popNodes(op.Arity(), op, entry.span)
	if err != nil {
		return err
	}
	span := entry.span
	for _, arg := range args {
		span = span.Union(arg.Span())
	}
	for _, sp := range extra {
		span = span.Union(sp)
	}

	var node ast.Node
	var cerr error
	switch op.Kind {
	case operator.Unary:
		node, cerr = ast.NewUnaryOp(op, args[0], span)
	case operator.Binary:
		node, cerr = ast.NewBinaryOp(op, args[0], args[1], span)
	case operator.Function:
		node, cerr = ast.NewFunctionOp(op, args, span)
	default:
		cerr = fmt.Errorf("unknown operator kind %v", op.Kind)
	}
	if cerr != nil {
		return NewArityError(ErrorOpts{
			Cause: cerr,
			Span:  entry.span,
			Input: p.input,
		})
	}
	p.nodes = append(p.nodes, node)
	return nil
}

// pushBinary reduces pending binary operators that outrank op, then pushes
// op. Under left associativity an equal-precedence operator on the stack
// also reduces; under right associativity only a strictly higher one does.
// Pending unary operators are never reduced here: they come off the stack
// only when a closing symbol or the end of the equation drains it.
func (p *processor) pushBinary(op operator.Operator, span token.Span) error {
	for {
		top, ok := p.top().(*pendingOp)
		if !ok || top.op.Kind != operator.Binary {
			break
		}
		if p.leftAssoc {
			if top.op.Precedence < op.Precedence {
				break
			}
		} else {
			if top.op.Precedence <= op.Precedence {
				break
			}
		}
		p.pop()
		if err := p.reduce(top); err != nil {
			return err
		}
	}
	p.ops = append(p.ops, &pendingOp{op: op, span: span})
	return nil
}

// maybeImplicitMul synthesizes a multiplication when two operand-like tokens
// are adjacent: the previous pass produced a value (")", variable, literal)
// and the current token can begin one ("(", unary or function operator,
// literal, variable). The synthetic operator runs through the ordinary
// binary push logic with a zero-width span at the junction and does not
// count as the pass's own token.
func (p *processor) maybeImplicitMul(next passKind, at int) error {
	if !p.implicitMul {
		return nil
	}
	switch p.prev {
	case passClose, passVariable, passLiteral:
	default:
		return nil
	}
	switch next {
	case passOpen, passUnary, passFunction, passLiteral, passVariable:
	default:
		return nil
	}
	return p.pushBinary(p.product, token.NewSpan(at, at))
}

func (p *processor) addLiteral(value float64, text string, span token.Span) error {
	if err := p.maybeImplicitMul(passLiteral, span.Start); err != nil {
		return err
	}
	p.nodes = append(p.nodes, ast.NewLiteral(value, text, span))
	p.prev = passLiteral
	return nil
}

func (p *processor) addVariable(name string, span token.Span) error {
	if err := p.maybeImplicitMul(passVariable, span.Start); err != nil {
		return err
	}
	p.nodes = append(p.nodes, ast.NewVariable(name, span))
	p.prev = passVariable
	return nil
}

func (p *processor) addOperator(op operator.Operator, span token.Span) error {
	switch op.Kind {
	case operator.Unary:
		if err := p.maybeImplicitMul(passUnary, span.Start); err != nil {
			return err
		}
		// Unary operators are pushed unconditionally and never compared by
		// precedence; structural drains are the only thing that pops them.
		p.ops = append(p.ops, &pendingOp{op: op, span: span})
		p.prev = passUnary
	case operator.Binary:
		if err := p.pushBinary(op, span); err != nil {
			return err
		}
		p.prev = passBinary
	case operator.Function:
		if err := p.maybeImplicitMul(passFunction, span.Start); err != nil {
			return err
		}
		p.ops = append(p.ops, &pendingOp{op: op, span: span})
		p.ops = append(p.ops, &funcMarker{remaining: op.Arity()})
		p.prev = passFunction
	default:
		return NewSyntaxError(ErrorOpts{
			Message: fmt.Sprintf("unknown operator kind %v", op.Kind),
			Span:    span,
			Input:   p.input,
		})
	}
	return nil
}

func (p *processor) addOpenParens(span token.Span) error {
	if err := p.maybeImplicitMul(passOpen, span.Start); err != nil {
		return err
	}
	p.ops = append(p.ops, &openMarker{span: span})
	p.prev = passOpen
	return nil
}

// addCloseSymbol handles ")" and ",". Everything above the nearest marker
// reduces unconditionally. A ")" pops an open-paren marker, or reduces the
// function belonging to a function-start marker using exactly its declared
// arity. A "," only decrements the expected-operand count of the enclosing
// function and leaves the marker in place so further arguments accumulate.
func (p *processor) addCloseSymbol(symbol string, span token.Span) error {
	kind := passClose
	if symbol == "," {
		kind = passSeparator
	}
	// Close symbols are not operand-like, so this never fires; it keeps
	// every entry point running the same adjacency check.
	if err := p.maybeImplicitMul(kind, span.Start); err != nil {
		return err
	}
	for {
		switch top := p.top().(type) {
		case nil:
			return NewSyntaxError(ErrorOpts{
				Message: fmt.Sprintf("unexpected %q", symbol),
				Span:    span,
				Input:   p.input,
			})
		case *openMarker:
			if symbol == "," {
				return NewSyntaxError(ErrorOpts{
					Message: "unexpected \",\" outside function arguments",
					Span:    span,
					Input:   p.input,
				})
			}
			p.pop()
			p.prev = passClose
			return nil
		case *funcMarker:
			var fn *pendingOp
			if len(p.ops) >= 2 {
				fn, _ = p.ops[len(p.ops)-2].(*pendingOp)
			}
			if fn == nil || fn.op.Kind != operator.Function {
				return NewSyntaxError(ErrorOpts{
					Message: "invalid function call",
					Span:    span,
					Input:   p.input,
				})
			}
			if symbol == "," {
				top.remaining--
				if top.remaining < 1 {
					return NewSyntaxError(ErrorOpts{
						Message: fmt.Sprintf("too many arguments in call to %q", fn.op.Name),
						Span:    span,
						Input:   p.input,
					})
				}
				p.prev = passSeparator
				return nil
			}
			if top.remaining != 1 {
				return NewSyntaxError(ErrorOpts{
					Message: fmt.Sprintf("%q expects %d argument(s)", fn.op.Name, fn.op.Arity()),
					Span:    span,
					Input:   p.input,
				})
			}
			p.pop() // the marker
			p.pop() // the function operator
			if err := p.reduce(fn, span); err != nil {
				return err
			}
			p.prev = passClose
			return nil
		case *pendingOp:
			p.pop()
			if err := p.reduce(top); err != nil {
				return err
			}
		}
	}
}

// shouldProcessMinusAsUnary reports whether a "-" at the cursor should be
// read as unary negation. Only a literal or a closing parenthesis on the
// previous pass forces the binary subtraction reading; every other state,
// including a variable, the start of input, or another operator, yields
// negation.
func (p *processor) shouldProcessMinusAsUnary() bool {
	return p.prev != passLiteral && p.prev != passClose
}

// done drains the operator stack, reducing every remaining operator
// unconditionally, and returns the single root node. A residual marker
// means a parenthesis was never closed; any node count other than one means
// the input was not a single well-formed expression.
func (p *processor) done() (ast.Node, error) {
	for len(p.ops) > 0 {
		switch top := p.pop().(type) {
		case *openMarker:
			return nil, NewSyntaxError(ErrorOpts{
				Message: "unbalanced parentheses",
				Span:    top.span,
				Input:   p.input,
			})
		case *funcMarker:
			span := token.NewSpan(len(p.input), len(p.input))
			if fn, ok := p.top().(*pendingOp); ok {
				span = fn.span
			}
			return nil, NewSyntaxError(ErrorOpts{
				Message: "unbalanced parentheses",
				Span:    span,
				Input:   p.input,
			})
		case *pendingOp:
			if err := p.reduce(top); err != nil {
				return nil, err
			}
		}
	}
	if len(p.nodes) != 1 {
		return nil, NewSyntaxError(ErrorOpts{
			Message: "invalid equation",
			Span:    token.NewSpan(len(p.input), len(p.input)),
			Input:   p.input,
		})
	}
	return p.nodes[0], nil
}
