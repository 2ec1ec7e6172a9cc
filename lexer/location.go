package lexer

import "fmt"

// Location is a position in the source text.
type Location struct {
	Line   uint32 // Line number (1-indexed)
	Column uint32 // Column number in bytes (1-indexed)
	Offset uint32 // Byte offset into the source
}

// startLocation is where every lex pass begins.
func startLocation() Location {
	return Location{Line: 1, Column: 1}
}

// advance moves the location past b.
func (l *Location) advance(b byte) {
	l.Offset++
	if b == '\n' {
		l.Line++
		l.Column = 1
	} else {
		l.Column++
	}
}

// String returns a human-readable representation of the location.
func (l Location) String() string {
	return fmt.Sprintf("%d:%d", l.Line, l.Column)
}

// GoString returns a Go-syntax representation of the location.
func (l Location) GoString() string {
	return fmt.Sprintf("Location{Line: %d, Column: %d, Offset: %d}", l.Line, l.Column, l.Offset)
}
