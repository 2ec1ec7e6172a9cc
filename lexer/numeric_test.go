package lexer

import (
	"math"
	"testing"

	"github.com/alecthomas/assert/v2"
)

func TestParseNumeric(t *testing.T) {
	tests := []struct {
		input string
		text  string
		value float64
	}{
		{"1234", "1234", 1234},
		{"1234.", "1234.", 1234},
		{"1234.5", "1234.5", 1234.5},
		{"0.50", "0.50", 0.5},
		{".5", ".5", 0.5},
		{"-12", "-12", -12},
		{"+12", "+12", 12},
		{"1e3", "1e3", 1000},
		{"1E+3", "1E+3", 1000},
		{"2.5e-1", "2.5e-1", 0.25},
		{"007", "007", 7},
		{"0e-400", "0e-400", 0},
		{"0.000", "0.000", 0},
		{"4.9e-324", "4.9e-324", 5e-324},

		// Trailing content is left alone.
		{"123abc", "123", 123},
		{"1+2", "1", 1},
		{"1.2.3", "1.2", 1.2},
		{"12 ", "12", 12},

		// An exponent marker without digits is not part of the literal.
		{"1e", "1", 1},
		{"1e+", "1", 1},
		{"1ex", "1", 1},
		{"3.e", "3.", 3},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, ok := ParseNumeric(tt.input)
			assert.True(t, ok, "expected %q to parse", tt.input)
			assert.Equal(t, tt.text, got.Text)
			assert.Equal(t, tt.value, got.Value)
		})
	}
}

func TestParseNumericRejects(t *testing.T) {
	inputs := []string{
		"",
		"abc",
		".",
		"-",
		"+.",
		"e5",
		" 1",
		"(1)",
		"1e999",  // out of range
		"-1e400", // out of range
		"1e-400", // underflows to zero
		"-2.5e-999",
	}

	for _, input := range inputs {
		t.Run(input, func(t *testing.T) {
			got, ok := ParseNumeric(input)
			assert.False(t, ok)
			assert.Equal(t, Numeric{}, got)
		})
	}
}

func TestParseNumericTextIsPrefix(t *testing.T) {
	source := "42.125 * 3"
	got, ok := ParseNumeric(source)
	assert.True(t, ok)
	assert.Equal(t, source[:len(got.Text)], got.Text)
	assert.Equal(t, 6, len(got.Text))
}

func TestParseNumericLargeButFinite(t *testing.T) {
	got, ok := ParseNumeric("1e308")
	assert.True(t, ok)
	assert.False(t, math.IsInf(got.Value, 0))
}

func TestNumericDecimal(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"1234.", "1234"},
		{"0.1", "0.1"},
		{"1.50", "1.5"},
		{"2.5e-1", "0.25"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			lit, ok := ParseNumeric(tt.input)
			assert.True(t, ok)

			d, err := lit.Decimal()
			assert.NoError(t, err)
			assert.Equal(t, tt.want, d.String())
		})
	}

	_, err := Numeric{}.Decimal()
	assert.Error(t, err)
}
