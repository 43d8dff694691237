// Package parser converts textual math expressions into abstract syntax
// trees.
//
// A Parser owns an operator registry seeded from the default catalogue and
// extended with AddOperator. The registry lives for the Parser's lifetime;
// the stacks used during parsing are allocated fresh on every Parse call, so
// a Parser may be reused. Registering an operator while another goroutine is
// parsing is not synchronized and is the embedding application's
// responsibility to avoid.
package parser

import (
	"context"
	"fmt"
	"strconv"

	"github.com/evalia/mathast/ast"
	"github.com/evalia/mathast/internal/scanner"
	"github.com/evalia/mathast/operator"
	"github.com/evalia/mathast/token"
)

// Option is a configuration function for a Parser.
type Option func(*Parser)

// WithoutImplicitMultiplication disables synthesizing a multiplication
// between adjacent operands, so inputs like "2x" become syntax errors
// instead of products.
func WithoutImplicitMultiplication() Option {
	return func(p *Parser) {
		p.implicitMul = false
	}
}

// WithRightAssociativity makes operators of equal precedence group to the
// right, so "1 - 2 - 3" parses as 1 - (2 - 3). The default is left
// associativity.
func WithRightAssociativity() Option {
	return func(p *Parser) {
		p.leftAssoc = false
	}
}

// WithVariables restricts variables to the given single-letter names. Any
// other letter in the input is rejected with a VariableError. Without this
// option every ASCII letter is a valid variable.
func WithVariables(names ...rune) Option {
	return func(p *Parser) {
		p.variables = map[byte]bool{}
		for _, r := range names {
			if r < 0x80 {
				p.variables[byte(r)] = true
			}
		}
	}
}

// WithOperators registers additional operators at construction time, in the
// given order.
func WithOperators(ops ...operator.Operator) Option {
	return func(p *Parser) {
		for _, op := range ops {
			p.AddOperator(op)
		}
	}
}

// Parser converts expression text into syntax trees.
type Parser struct {
	// The registry, partitioned by kind in registration order. The first
	// operator whose symbol matches at the cursor wins, which makes symbol
	// collisions deterministic.
	unary    []operator.Operator
	binary   []operator.Operator
	function []operator.Operator

	// The built-in unary minus. It is kept out of the ordinary unary list
	// and tried only when the preceding token allows a unary reading.
	negate operator.Operator

	// The operator used for synthesized implicit multiplications.
	product operator.Operator

	implicitMul bool
	leftAssoc   bool
	variables   map[byte]bool // nil means unrestricted
}

// New returns a Parser seeded with the default operator catalogue and
// configured with the given options.
func New(options ...Option) *Parser {
	p := &Parser{
		negate:      operator.Negate(),
		product:     operator.Multiply(),
		implicitMul: true,
		leftAssoc:   true,
	}
	for _, op := range operator.Defaults() {
		p.AddOperator(op)
	}
	for _, opt := range options {
		opt(p)
	}
	return p
}

// AddOperator registers op into the kind-list it belongs to. There is no
// uniqueness check: a later registration with a colliding symbol simply
// scans after the earlier one, and the first match wins.
func (p *Parser) AddOperator(op operator.Operator) {
	switch op.Kind {
	case operator.Unary:
		p.unary = append(p.unary, op)
	case operator.Binary:
		p.binary = append(p.binary, op)
	case operator.Function:
		p.function = append(p.function, op)
	}
}

// Parse converts input into a syntax tree using a default Parser configured
// with the given options.
func Parse(ctx context.Context, input string, options ...Option) (ast.Node, error) {
	return New(options...).Parse(ctx, input)
}

// claimOperator tries each operator in registration order and returns the
// first whose symbol matches at pos.
func claimOperator(ops []operator.Operator, input string, pos int) (operator.Operator, token.Span, bool) {
	for _, op := range ops {
		if sp, ok := scanner.Symbol(input, pos, op.Symbol); ok {
			return op, sp, true
		}
	}
	return operator.Operator{}, token.Span{}, false
}

// Parse converts input into a syntax tree. The scan is a single pass: at
// each cursor position the scanners are tried in a fixed priority (literal,
// "(", ")" or ",", registered unary operators, the built-in unary minus,
// registered binary operators, registered function operators, variable) and
// the first claim is handed to the precedence processor. The returned root
// node is owned by the caller.
func (p *Parser) Parse(ctx context.Context, input string) (ast.Node, error) {
	proc := newProcessor(input, p.implicitMul, p.leftAssoc, p.product)

	var allowed func(byte) bool
	if p.variables != nil {
		allowed = func(c byte) bool { return p.variables[c] }
	}

	pos := 0
	for pos < len(input) {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		if sp, ok := scanner.Whitespace(input, pos); ok {
			pos = sp.End
			continue
		}

		if sp, ok := scanner.Literal(input, pos); ok {
			text := sp.Text(input)
			value, err := strconv.ParseFloat(text, 64)
			if err != nil {
				// Out-of-range literals round to ±Inf; anything else the
				// literal scanner claims must parse.
				if ne, ok := err.(*strconv.NumError); !ok || ne.Err != strconv.ErrRange {
					return nil, NewSyntaxError(ErrorOpts{
						Message: fmt.Sprintf("invalid number %q", text),
						Cause:   err,
						Span:    sp,
						Input:   input,
					})
				}
			}
			if err := proc.addLiteral(value, text, sp); err != nil {
				return nil, err
			}
			pos = sp.End
			continue
		}

		if sp, ok := scanner.Symbol(input, pos, "("); ok {
			if err := proc.addOpenParens(sp); err != nil {
				return nil, err
			}
			pos = sp.End
			continue
		}

		if sp, ok := scanner.Symbol(input, pos, ")"); ok {
			if err := proc.addCloseSymbol(")", sp); err != nil {
				return nil, err
			}
			pos = sp.End
			continue
		}

		if sp, ok := scanner.Symbol(input, pos, ","); ok {
			if err := proc.addCloseSymbol(",", sp); err != nil {
				return nil, err
			}
			pos = sp.End
			continue
		}

		if op, sp, ok := claimOperator(p.unary, input, pos); ok {
			if err := proc.addOperator(op, sp); err != nil {
				return nil, err
			}
			pos = sp.End
			continue
		}

		// The built-in unary minus is tried only after registered unary
		// operators, and only where a unary reading is possible. Otherwise
		// the "-" falls through to the binary subtraction below.
		if proc.shouldProcessMinusAsUnary() {
			if sp, ok := scanner.Symbol(input, pos, p.negate.Symbol); ok {
				if err := proc.addOperator(p.negate, sp); err != nil {
					return nil, err
				}
				pos = sp.End
				continue
			}
		}

		if op, sp, ok := claimOperator(p.binary, input, pos); ok {
			if err := proc.addOperator(op, sp); err != nil {
				return nil, err
			}
			pos = sp.End
			continue
		}

		if op, sp, ok := claimOperator(p.function, input, pos); ok {
			if sp.End >= len(input) || input[sp.End] != '(' {
				return nil, NewSyntaxError(ErrorOpts{
					Message: fmt.Sprintf("function %q must be followed by \"(\"", op.Name),
					Span:    sp,
					Input:   input,
				})
			}
			if err := proc.addOperator(op, sp); err != nil {
				return nil, err
			}
			// The "(" belongs to the function token; the function-start
			// marker stands in for it on the stack.
			pos = sp.End + 1
			continue
		}

		if sp, ok := scanner.Variable(input, pos, allowed); ok {
			if err := proc.addVariable(sp.Text(input), sp); err != nil {
				return nil, err
			}
			pos = sp.End
			continue
		}

		// Nothing claimed the character. A letter rejected by the variable
		// whitelist gets its own error type.
		at := token.NewSpan(pos, pos+1)
		c := input[pos]
		if p.variables != nil && isASCIILetter(c) {
			return nil, NewVariableError(ErrorOpts{
				Message: fmt.Sprintf("variable %q is not allowed", string(c)),
				Span:    at,
				Input:   input,
			})
		}
		return nil, NewSyntaxError(ErrorOpts{
			Message: fmt.Sprintf("unexpected character %q", string(c)),
			Span:    at,
			Input:   input,
		})
	}

	return proc.done()
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
