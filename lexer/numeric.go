package lexer

import (
	"errors"
	"strconv"

	"github.com/shopspring/decimal"
)

// Numeric is a floating-point literal recognized in the source.
type Numeric struct {
	Text  string  // Exact matched source text (zero-copy slice of the source)
	Value float64 // Parsed value
}

// ParseNumeric parses the longest floating-point literal prefix of s.
//
// The accepted grammar is
//
//	[+-]? ( digits ( '.' digits? )? | '.' digits ) ( [eE] [+-]? digits )?
//
// An exponent marker is only consumed when at least one digit follows it.
// Anything after the prefix is ignored. ParseNumeric reports false when s
// does not start with a literal, or when the literal is out of float64 range:
// too large, or so small that a non-zero literal rounds to zero.
func ParseNumeric(s string) (Numeric, bool) {
	n := numericPrefixLen(s)
	if n == 0 {
		return Numeric{}, false
	}

	text := s[:n]
	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// ErrRange for literals beyond float64; ErrSyntax cannot happen for
		// anything numericPrefixLen accepts.
		return Numeric{}, false
	}
	// strconv rounds underflow to zero without reporting ErrRange.
	if value == 0 && hasNonZeroMantissa(text) {
		return Numeric{}, false
	}

	return Numeric{Text: text, Value: value}, true
}

// numericPrefixLen returns the byte length of the literal at the start of s,
// or 0 if there is none.
func numericPrefixLen(s string) int {
	i := 0
	if i < len(s) && (s[i] == '+' || s[i] == '-') {
		i++
	}

	intDigits := skipDigits(s, i)
	i += intDigits

	fracDigits := 0
	if i < len(s) && s[i] == '.' {
		fracDigits = skipDigits(s, i+1)
		// A lone "." is not a literal, but "1." is.
		if intDigits > 0 || fracDigits > 0 {
			i += 1 + fracDigits
		}
	}

	if intDigits == 0 && fracDigits == 0 {
		return 0
	}

	if i < len(s) && (s[i] == 'e' || s[i] == 'E') {
		j := i + 1
		if j < len(s) && (s[j] == '+' || s[j] == '-') {
			j++
		}
		if expDigits := skipDigits(s, j); expDigits > 0 {
			i = j + expDigits
		}
	}

	return i
}

// hasNonZeroMantissa reports whether a digit before the exponent is non-zero.
func hasNonZeroMantissa(text string) bool {
	for i := 0; i < len(text); i++ {
		switch c := text[i]; {
		case c == 'e' || c == 'E':
			return false
		case c >= '1' && c <= '9':
			return true
		}
	}
	return false
}

func skipDigits(s string, from int) int {
	n := 0
	for from+n < len(s) && isDigit(s[from+n]) {
		n++
	}
	return n
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}

// Decimal returns the exact decimal value of the literal text, without the
// rounding applied to Value.
func (n Numeric) Decimal() (decimal.Decimal, error) {
	if n.Text == "" {
		return decimal.Zero, errors.New("empty numeric literal")
	}
	return decimal.NewFromString(n.Text)
}

// String returns the literal text.
func (n Numeric) String() string {
	return n.Text
}
