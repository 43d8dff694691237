// Package token defines the source spans claimed by the expression scanners.
package token

import "fmt"

// Span identifies a half-open byte range [Start, End) in the input text.
// Scanners report "no match" by returning a false second value, never by
// returning a zero-width span.
type Span struct {
	Start int
	End   int
}

// NewSpan returns a Span covering [start, end).
func NewSpan(start, end int) Span {
	return Span{Start: start, End: end}
}

// Width returns the number of bytes covered by the span.
func (s Span) Width() int {
	return s.End - s.Start
}

// IsZero returns true if the span covers no bytes. Synthetic tokens, such as
// an implicit multiplication, carry a zero-width span at the junction point
// between their operands.
func (s Span) IsZero() bool {
	return s.End <= s.Start
}

// Union returns the smallest span covering both s and o.
func (s Span) Union(o Span) Span {
	u := s
	if o.Start < u.Start {
		u.Start = o.Start
	}
	if o.End > u.End {
		u.End = o.End
	}
	return u
}

// Text returns the portion of src covered by the span.
func (s Span) Text(src string) string {
	if s.Start < 0 || s.End > len(src) || s.IsZero() {
		return ""
	}
	return src[s.Start:s.End]
}

func (s Span) String() string {
	return fmt.Sprintf("[%d,%d)", s.Start, s.End)
}
