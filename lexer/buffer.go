package lexer

import (
	"golang.org/x/exp/slices"

	"github.com/robinvdvleuten/exprlex/token"
)

// TokenIndex is the stable position of a token in a Buffer.
type TokenIndex uint32

// LiteralIndex is the stable position of a literal in a Buffer.
type LiteralIndex uint32

// Token is a classified, positioned unit of source text.
//
// Loc.Offset is always the byte offset of the token in the source. Tokens
// of a literal kind additionally reference their value in the buffer's
// literal list; that reference is only reachable through LiteralIndex, so
// it can never be mistaken for a source offset.
type Token struct {
	Kind token.Kind
	Loc  Location

	literal LiteralIndex
}

// LiteralIndex returns the index of the token's literal in the buffer that
// produced it. It reports false for kinds that carry no literal.
func (t Token) LiteralIndex() (LiteralIndex, bool) {
	if !t.Kind.IsLiteral() {
		return 0, false
	}
	return t.literal, true
}

// String returns the display name of the token's kind.
func (t Token) String() string {
	return t.Kind.String()
}

// Buffer is the result of a lex pass: the tokens in source order plus a side
// list of the numeric literals they reference.
//
// A Buffer is only ever appended to by the lexer. Once Lex returns it is
// read-only; no token or literal is removed or reordered.
type Buffer struct {
	source   string
	tokens   []Token
	literals []Numeric
}

// newBuffer creates an empty buffer over source.
func newBuffer(source string) *Buffer {
	// Roughly one token per three bytes for typical arithmetic input
	// ("12 + 3"); this avoids most slice growth without over-allocating.
	return &Buffer{
		source:   source,
		tokens:   make([]Token, 0, len(source)/3+1),
		literals: make([]Numeric, 0, len(source)/6+1),
	}
}

func (b *Buffer) pushToken(tok Token) TokenIndex {
	b.tokens = append(b.tokens, tok)
	return TokenIndex(len(b.tokens) - 1)
}

func (b *Buffer) pushLiteral(lit Numeric) LiteralIndex {
	b.literals = append(b.literals, lit)
	return LiteralIndex(len(b.literals) - 1)
}

// Source returns the text the buffer was lexed from.
func (b *Buffer) Source() string {
	return b.source
}

// Len returns the number of tokens, including the trailing EndOfFile.
func (b *Buffer) Len() int {
	return len(b.tokens)
}

// Token returns the token at idx.
func (b *Buffer) Token(idx TokenIndex) Token {
	return b.tokens[idx]
}

// Tokens returns a copy of all tokens in source order.
func (b *Buffer) Tokens() []Token {
	return slices.Clone(b.tokens)
}

// Literal returns the literal at idx.
func (b *Buffer) Literal(idx LiteralIndex) Numeric {
	return b.literals[idx]
}

// Literals returns a copy of all literals in source order.
func (b *Buffer) Literals() []Numeric {
	return slices.Clone(b.literals)
}

// LiteralOf returns the literal referenced by tok, if tok has a literal kind.
func (b *Buffer) LiteralOf(tok Token) (Numeric, bool) {
	idx, ok := tok.LiteralIndex()
	if !ok || int(idx) >= len(b.literals) {
		return Numeric{}, false
	}
	return b.literals[idx], true
}

// Text returns the source text a token accounts for. EndOfFile accounts for
// nothing, an Invalid token for exactly one byte.
func (b *Buffer) Text(tok Token) string {
	start := int(tok.Loc.Offset)
	if start > len(b.source) {
		return ""
	}

	switch {
	case tok.Kind == token.EndOfFile():
		return ""
	case tok.Kind == token.Invalid():
		if start == len(b.source) {
			return ""
		}
		return b.source[start : start+1]
	case tok.Kind.IsLiteral():
		if lit, ok := b.LiteralOf(tok); ok {
			return lit.Text
		}
		return ""
	default:
		end := start + int(tok.Kind.Sizing())
		if end > len(b.source) {
			end = len(b.source)
		}
		return b.source[start:end]
	}
}

// Errors returns one *InvalidByteError per Invalid token, in source order.
func (b *Buffer) Errors() []error {
	var errs []error
	for _, tok := range b.tokens {
		if tok.Kind != token.Invalid() {
			continue
		}
		errs = append(errs, &InvalidByteError{
			Loc:  tok.Loc,
			Byte: b.source[tok.Loc.Offset],
		})
	}
	return errs
}
