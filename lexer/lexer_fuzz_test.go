package lexer

import (
	"strings"
	"testing"

	"github.com/robinvdvleuten/exprlex/token"
)

func FuzzLex(f *testing.F) {
	seeds := []string{
		// Symbols and groups
		"+", "-", "*", "/", "(", ")",

		// Numbers
		"0", "123", "123.45", "1234.", "1e10", "1E-3", "2.5e+2", "1e999", "007",

		// Expressions
		"(123 * 123)",
		"1 + 2 * (3 - 4) / 5",
		"1@2",
		"((((1))))",

		// Whitespace
		" ", "\t", "\n", "\r\n", " \n\t ",

		// Edge cases
		"",
		".",
		"1.2.3",
		"\xff\xfe",
		"é",
	}

	for _, seed := range seeds {
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, source string) {
		defer func() {
			if r := recover(); r != nil {
				t.Errorf("Lex panicked on input %q: %v", source, r)
			}
		}()

		buf := Lex(source)
		tokens := buf.Tokens()

		if len(tokens) == 0 {
			t.Fatal("Lex returned zero tokens (expected at least EndOfFile)")
		}

		for i, tok := range tokens {
			if (tok.Kind == token.EndOfFile()) != (i == len(tokens)-1) {
				t.Errorf("token %d: EndOfFile must appear exactly once, at the end", i)
			}
			if tok.Loc.Line < 1 || tok.Loc.Column < 1 {
				t.Errorf("token %d has invalid location %s", i, tok.Loc)
			}
			if int(tok.Loc.Offset) > len(source) {
				t.Errorf("token %d: offset %d beyond source length %d", i, tok.Loc.Offset, len(source))
			}
			if i > 0 && tok.Loc.Offset <= tokens[i-1].Loc.Offset && tok.Kind != token.EndOfFile() {
				t.Errorf("token %d: offsets must strictly increase", i)
			}

			text := buf.Text(tok)
			if !strings.HasPrefix(source[tok.Loc.Offset:], text) {
				t.Errorf("token %d: text %q is not at offset %d", i, text, tok.Loc.Offset)
			}
			if (tok.Kind.IsSymbol() || tok.Kind.IsGroup()) && len(text) != int(tok.Kind.Sizing()) {
				t.Errorf("token %d: %s accounts for %d bytes, sizing is %d", i, tok.Kind, len(text), tok.Kind.Sizing())
			}

			if lit, ok := buf.LiteralOf(tok); ok {
				direct, ok := ParseNumeric(source[tok.Loc.Offset:])
				if !ok || direct != lit {
					t.Errorf("token %d: literal %+v does not match direct parse %+v", i, lit, direct)
				}
			}
		}

		again := Lex(source)
		if again.Len() != buf.Len() {
			t.Errorf("second pass produced %d tokens, first produced %d", again.Len(), buf.Len())
		}
	})
}
