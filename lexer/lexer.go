// Package lexer turns arithmetic expression source text into a Buffer of
// classified tokens and numeric literals.
//
// Scanning is driven by a 256-entry table indexed by the byte at the current
// offset. Each entry is a scan routine that consumes some input and may push
// tokens; the lexer loops, re-dispatching on the next byte, until the source
// is exhausted and a single EndOfFile token has been pushed. Input the lexer
// does not recognize becomes Invalid tokens, one per byte, so a pass always
// completes.
package lexer

import (
	"context"
	"fmt"

	"github.com/robinvdvleuten/exprlex/telemetry"
	"github.com/robinvdvleuten/exprlex/token"
)

// Lexer holds the state of a single lex pass.
type Lexer struct {
	buf *Buffer
	loc Location
}

// Lex tokenizes source in a single pass. It never fails: unrecognized bytes
// and malformed literals show up as Invalid tokens, and the returned buffer
// always ends with exactly one EndOfFile token.
func Lex(source string) *Buffer {
	l := &Lexer{
		buf: newBuffer(source),
		loc: startLocation(),
	}
	l.run()
	return l.buf
}

// LexContext is Lex with the pass timed under the telemetry collector carried
// by ctx, if any.
func LexContext(ctx context.Context, source string) *Buffer {
	timer := telemetry.FromContext(ctx).Start(fmt.Sprintf("lex %d bytes", len(source)))
	defer timer.End()

	buf := Lex(source)
	timer.Annotate(fmt.Sprintf("%d tokens, %d literals", buf.Len(), len(buf.literals)))
	return buf
}

// run is the trampoline: dispatch on the current byte until the end of the
// source. Routines return to the loop instead of calling each other, so
// stack depth stays constant regardless of input size.
func (l *Lexer) run() {
	src := l.buf.source
	for int(l.loc.Offset) < len(src) {
		dispatch[src[l.loc.Offset]](l)
	}

	l.buf.pushToken(Token{Kind: token.EndOfFile(), Loc: l.loc})
}

// curr returns the byte at the current offset. Callers check atEnd first.
func (l *Lexer) curr() byte {
	return l.buf.source[l.loc.Offset]
}

func (l *Lexer) atEnd() bool {
	return int(l.loc.Offset) >= len(l.buf.source)
}

// inc advances past n bytes, stopping at the end of the source.
func (l *Lexer) inc(n int) {
	for i := 0; i < n && !l.atEnd(); i++ {
		l.loc.advance(l.curr())
	}
}

func (l *Lexer) scanInvalid() {
	l.buf.pushToken(Token{Kind: token.Invalid(), Loc: l.loc})
	l.inc(1)
}

func (l *Lexer) scanHorizontalWhitespace() {
	for !l.atEnd() && isHorizontalWhitespace(l.curr()) {
		l.inc(1)
	}
}

func (l *Lexer) scanVerticalWhitespace() {
	for !l.atEnd() && isVerticalWhitespace(l.curr()) {
		l.inc(1)
	}
}

// scanFixed pushes a token of a fixed-width kind and consumes exactly as many
// bytes as the kind's sizing says.
func (l *Lexer) scanFixed(kind token.Kind) {
	l.buf.pushToken(Token{Kind: kind, Loc: l.loc})
	l.inc(int(kind.Sizing()))
}

func (l *Lexer) scanNumeric() {
	lit, ok := ParseNumeric(l.buf.source[l.loc.Offset:])
	if !ok {
		l.scanInvalid()
		return
	}

	l.buf.pushToken(Token{
		Kind:    token.Real(),
		Loc:     l.loc,
		literal: l.buf.pushLiteral(lit),
	})
	l.inc(len(lit.Text))
}

func isHorizontalWhitespace(b byte) bool {
	return b == ' ' || b == '\t'
}

func isVerticalWhitespace(b byte) bool {
	return b == '\n'
}
