package parser

import (
	"fmt"

	"github.com/evalia/mathast/errors"
	"github.com/evalia/mathast/token"
)

// ErrorOpts holds the data used to build a parser error. All fields are
// optional, although one of Cause or Message is recommended. If Cause is
// set, its message takes precedence over Message.
type ErrorOpts struct {
	ErrType string
	Message string
	Cause   error
	Span    token.Span
	Input   string
}

// ParserError is the interface implemented by all errors returned from
// Parse. Every error is raised synchronously at the point of detection and
// unwinds the whole call; there is no partial result and no recovery.
type ParserError interface {
	error
	Type() string
	Message() string
	Span() token.Span
	Input() string
	FriendlyErrorMessage() string
}

// BaseParserError is the common implementation behind the concrete error
// types.
type BaseParserError struct {
	errType string
	message string
	cause   error
	span    token.Span
	input   string
}

// NewParserError returns a BaseParserError populated from opts.
func NewParserError(opts ErrorOpts) *BaseParserError {
	return &BaseParserError{
		errType: opts.ErrType,
		message: opts.Message,
		cause:   opts.Cause,
		span:    opts.Span,
		input:   opts.Input,
	}
}

func (e *BaseParserError) Error() string {
	var msg string
	if e.cause != nil {
		msg = e.cause.Error()
	} else {
		msg = e.message
	}
	if e.errType != "" {
		msg = fmt.Sprintf("%s: %s", e.errType, msg)
	}
	return msg
}

func (e *BaseParserError) Type() string     { return e.errType }
func (e *BaseParserError) Message() string  { return e.message }
func (e *BaseParserError) Span() token.Span { return e.span }
func (e *BaseParserError) Input() string    { return e.input }
func (e *BaseParserError) Unwrap() error    { return e.cause }

// ToFormatted converts the error to a FormattedError for display.
func (e *BaseParserError) ToFormatted() *errors.FormattedError {
	message := e.message
	if e.cause != nil {
		message = e.cause.Error()
	}
	return &errors.FormattedError{
		Kind:       e.errType,
		Message:    message,
		Expression: e.input,
		Start:      e.span.Start,
		End:        e.span.End,
	}
}

// FriendlyErrorMessage renders the error with the offending expression and a
// marker under the failing span.
func (e *BaseParserError) FriendlyErrorMessage() string {
	return errors.NewFormatter(false).Format(e.ToFormatted())
}

// SyntaxError reports malformed input: an unrecognized character,
// unbalanced parentheses, a function not followed by "(", or a final
// reduction that does not leave exactly one root.
type SyntaxError struct {
	*BaseParserError
}

// NewSyntaxError returns a SyntaxError populated from opts.
func NewSyntaxError(opts ErrorOpts) *SyntaxError {
	opts.ErrType = "syntax error"
	return &SyntaxError{BaseParserError: NewParserError(opts)}
}

// ArityError reports an operator reduced with a child count different from
// its declared arity. This indicates a malformed operator table; it is
// checked on every reduction rather than assumed impossible.
type ArityError struct {
	*BaseParserError
}

// NewArityError returns an ArityError populated from opts.
func NewArityError(opts ErrorOpts) *ArityError {
	opts.ErrType = "arity error"
	return &ArityError{BaseParserError: NewParserError(opts)}
}

// VariableError reports a letter that is not in the configured variable
// whitelist.
type VariableError struct {
	*BaseParserError
}

// NewVariableError returns a VariableError populated from opts.
func NewVariableError(opts ErrorOpts) *VariableError {
	opts.ErrType = "variable error"
	return &VariableError{BaseParserError: NewParserError(opts)}
}
