// Package scanner provides the stateless claim scanners used by the parser.
// Each scanner inspects the full source text at a cursor position and either
// claims a span of input or reports no match. Scanners never advance the
// cursor themselves; the parser owns cursor movement.
package scanner

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/evalia/mathast/token"
)

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

// Literal claims a decimal number at pos: an optional integer part, an
// optional "." with fractional digits, and an optional exponent suffix. At
// least one digit must appear in the integer or fractional part. The
// exponent ("e" or "E", an optional sign, and digits) is claimed only when
// at least one digit follows, so "3e" claims just "3".
func Literal(src string, pos int) (token.Span, bool) {
	i := pos
	digits := 0
	for i < len(src) && isDigit(src[i]) {
		i++
		digits++
	}
	if i < len(src) && src[i] == '.' {
		j := i + 1
		for j < len(src) && isDigit(src[j]) {
			j++
			digits++
		}
		// Claim the dot only as part of a number, never a bare ".".
		if digits > 0 {
			i = j
		}
	}
	if digits == 0 {
		return token.Span{}, false
	}
	if i < len(src) && (src[i] == 'e' || src[i] == 'E') {
		j := i + 1
		if j < len(src) && (src[j] == '+' || src[j] == '-') {
			j++
		}
		exp := 0
		for j < len(src) && isDigit(src[j]) {
			j++
			exp++
		}
		if exp > 0 {
			i = j
		}
	}
	return token.NewSpan(pos, i), true
}

// Variable claims a single ASCII letter at pos. When allowed is non-nil it
// acts as a whitelist: a letter outside the whitelist fails the claim
// entirely, so the parser reports the character as disallowed rather than
// silently accepting it.
func Variable(src string, pos int, allowed func(byte) bool) (token.Span, bool) {
	if pos >= len(src) || !isLetter(src[pos]) {
		return token.Span{}, false
	}
	if allowed != nil && !allowed(src[pos]) {
		return token.Span{}, false
	}
	return token.NewSpan(pos, pos+1), true
}

// Symbol claims the given operator symbol at pos. Matching is an exact
// string prefix comparison with no normalization.
func Symbol(src string, pos int, symbol string) (token.Span, bool) {
	if symbol == "" || pos >= len(src) {
		return token.Span{}, false
	}
	if !strings.HasPrefix(src[pos:], symbol) {
		return token.Span{}, false
	}
	return token.NewSpan(pos, pos+len(symbol)), true
}

// Whitespace claims one or more consecutive whitespace characters at pos.
// The parser skips the claimed span without emitting a token.
func Whitespace(src string, pos int) (token.Span, bool) {
	i := pos
	for i < len(src) {
		r, size := utf8.DecodeRuneInString(src[i:])
		if !unicode.IsSpace(r) {
			break
		}
		i += size
	}
	if i == pos {
		return token.Span{}, false
	}
	return token.NewSpan(pos, i), true
}
