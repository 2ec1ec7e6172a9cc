package lexer

import (
	"fmt"

	"github.com/robinvdvleuten/exprlex/token"
)

// scanFunc consumes input at the lexer's current location. Every scanFunc
// must consume at least one byte so the trampoline makes progress.
type scanFunc func(*Lexer)

type dispatchTable [256]scanFunc

// dispatch maps every possible byte to its scan routine. It is built during
// package initialization, before any exported function can run, and never
// written to afterwards, so concurrent passes may share it.
var dispatch = newDispatchTable()

func newDispatchTable() *dispatchTable {
	var (
		table   dispatchTable
		claimed [256]bool
	)

	set := func(b byte, fn scanFunc) {
		if claimed[b] {
			panic(fmt.Sprintf("lexer: byte %q dispatched twice", b))
		}
		claimed[b] = true
		table[b] = fn
	}

	for i := range table {
		table[i] = (*Lexer).scanInvalid
	}

	set(' ', (*Lexer).scanHorizontalWhitespace)
	set('\t', (*Lexer).scanHorizontalWhitespace)
	set('\n', (*Lexer).scanVerticalWhitespace)

	for c := byte('0'); c <= '9'; c++ {
		set(c, (*Lexer).scanNumeric)
	}

	// Symbols and groups register themselves by their spelling so the kind
	// declarations stay the only place a spelling is written down.
	for _, kind := range token.Kinds() {
		if !kind.IsSymbol() && !kind.IsGroup() {
			continue
		}

		spelling := kind.Spelling()
		if len(spelling) != 1 {
			panic(fmt.Sprintf("lexer: no dispatch rule for multi-byte spelling %q of %s", spelling, kind))
		}
		set(spelling[0], func(l *Lexer) { l.scanFixed(kind) })
	}

	return &table
}
