// Package errors renders parse failures for display, pointing at the
// offending span of the expression.
package errors

import (
	"strings"

	"github.com/fatih/color"
)

// FormattedError is a parse failure prepared for display.
type FormattedError struct {
	// Kind of the failure, e.g. "syntax error".
	Kind string
	// Message describes the failure.
	Message string
	// Expression is the full input text.
	Expression string
	// Start and End are the byte offsets of the offending span. A
	// zero-width span marks a position, rendered as a single caret.
	Start int
	End   int
}

// Formatter formats errors, optionally with ANSI colors.
type Formatter struct {
	UseColor bool
}

// NewFormatter returns a Formatter.
func NewFormatter(useColor bool) *Formatter {
	return &Formatter{UseColor: useColor}
}

var (
	colorKind   = color.New(color.FgHiRed, color.Bold)
	colorCaret  = color.New(color.FgHiRed)
	colorSource = color.New(color.FgWhite)
)

// Format renders the error header, the expression, and a caret line marking
// the failing span:
//
//	syntax error: unexpected character "@"
//
//	  1 + @2
//	      ^
func (f *Formatter) Format(err *FormattedError) string {
	var b strings.Builder

	kind := err.Kind
	if kind == "" {
		kind = "error"
	}
	b.WriteString(f.paint(colorKind, kind))
	b.WriteString(": ")
	b.WriteString(err.Message)
	b.WriteString("\n")

	if err.Expression == "" {
		return b.String()
	}
	b.WriteString("\n  ")
	b.WriteString(f.paint(colorSource, err.Expression))
	b.WriteString("\n  ")
	b.WriteString(f.caretLine(err))
	b.WriteString("\n")
	return b.String()
}

func (f *Formatter) caretLine(err *FormattedError) string {
	start := err.Start
	if start < 0 {
		start = 0
	}
	if start > len(err.Expression) {
		start = len(err.Expression)
	}
	width := err.End - start
	if width < 1 {
		width = 1
	}
	if rest := len(err.Expression) - start; width > rest && rest > 0 {
		width = rest
	}
	pad := strings.Repeat(" ", start)
	return pad + f.paint(colorCaret, strings.Repeat("^", width))
}

func (f *Formatter) paint(c *color.Color, s string) string {
	if !f.UseColor {
		return s
	}
	return c.Sprint(s)
}
