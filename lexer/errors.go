package lexer

import (
	"fmt"
	"unicode/utf8"
)

// InvalidByteError describes a byte the lexer could not classify.
//
// The lexer never fails; these errors are derived from the Invalid tokens of
// a finished Buffer for diagnostic rendering.
type InvalidByteError struct {
	Loc  Location
	Byte byte
}

func (e *InvalidByteError) Error() string {
	return fmt.Sprintf("%s: unexpected %s", e.Loc, describeByte(e.Byte))
}

// GetPosition returns where the offending byte was found.
func (e *InvalidByteError) GetPosition() Location {
	return e.Loc
}

func describeByte(b byte) string {
	if b < utf8.RuneSelf && b >= 0x20 && b != 0x7f {
		return fmt.Sprintf("character %q", rune(b))
	}
	return fmt.Sprintf("byte 0x%02X", b)
}
