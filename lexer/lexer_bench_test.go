package lexer

import (
	"strings"
	"testing"
)

func BenchmarkLexExpression(b *testing.B) {
	source := strings.Repeat("(12.5 * 3) - 4 / (0.25 + 1e3)\n", 1000)

	b.SetBytes(int64(len(source)))
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		buf := Lex(source)
		if buf.Len() == 0 {
			b.Fatal("no tokens")
		}
	}
}

func BenchmarkParseNumeric(b *testing.B) {
	for i := 0; i < b.N; i++ {
		if _, ok := ParseNumeric("1234.5678e-3 + 1"); !ok {
			b.Fatal("expected a literal")
		}
	}
}
