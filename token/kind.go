// Package token defines the closed set of token kinds produced by the lexer
// together with their classification tables.
//
// Every kind is declared exactly once in the declarations list below. The
// literal, symbol, group, sizing, spelling and naming tables are all derived
// from that list when the package is initialized, so adding a kind cannot
// leave its classification out of sync with its spelling.
package token

// Kind identifies the category of a token.
//
// The zero value is EndOfFile. Kinds can only be obtained through the named
// constructors in this package.
type Kind struct {
	ord uint8
}

const (
	ordEndOfFile uint8 = iota
	ordInvalid

	// Symbols
	ordAdd
	ordSub
	ordMul
	ordDiv

	// Groups
	ordOpenParen
	ordCloseParen

	// Literals
	ordReal

	kindCount
)

// declarations is the single source of truth for every kind. Entries must
// appear in ordinal order.
var declarations = [...]declaration{
	plain(ordEndOfFile, "EndOfFile"),
	plain(ordInvalid, "Invalid"),

	symbol(ordAdd, "Add", "+"),
	symbol(ordSub, "Sub", "-"),
	symbol(ordMul, "Mul", "*"),
	symbol(ordDiv, "Div", "/"),

	group(ordOpenParen, "OpenParen", "("),
	group(ordCloseParen, "CloseParen", ")"),

	literal(ordReal, "Real"),
}

// Compile-time check that there is one declaration per ordinal.
var _ = [kindCount]struct{}([len(declarations)]struct{}{})

var tables = mustDeriveTables(declarations[:])

func EndOfFile() Kind  { return Kind{ordEndOfFile} }
func Invalid() Kind    { return Kind{ordInvalid} }
func Add() Kind        { return Kind{ordAdd} }
func Sub() Kind        { return Kind{ordSub} }
func Mul() Kind        { return Kind{ordMul} }
func Div() Kind        { return Kind{ordDiv} }
func OpenParen() Kind  { return Kind{ordOpenParen} }
func CloseParen() Kind { return Kind{ordCloseParen} }
func Real() Kind       { return Kind{ordReal} }

// Kinds returns every kind in ordinal order.
func Kinds() []Kind {
	kinds := make([]Kind, kindCount)
	for i := range kinds {
		kinds[i] = Kind{uint8(i)}
	}
	return kinds
}

// IsLiteral reports whether tokens of this kind carry a literal value.
func (k Kind) IsLiteral() bool {
	return tables.literals[k.ord]
}

// IsSymbol reports whether k is a fixed-text operator.
func (k Kind) IsSymbol() bool {
	return tables.symbols[k.ord]
}

// IsGroup reports whether k is a parenthesis-like token.
func (k Kind) IsGroup() bool {
	return tables.groups[k.ord]
}

// Sizing returns the number of source bytes a token of this kind always
// consumes, or 0 for kinds without a fixed width.
func (k Kind) Sizing() uint8 {
	return tables.sizings[k.ord]
}

// Spelling returns the fixed source text of a symbol or group kind.
func (k Kind) Spelling() string {
	return tables.spellings[k.ord]
}

// Ordinal returns the position of k in Kinds().
func (k Kind) Ordinal() int {
	return int(k.ord)
}

// String returns the display name of the kind.
func (k Kind) String() string {
	return tables.names[k.ord]
}

// GoString returns a Go-syntax representation of the kind.
func (k Kind) GoString() string {
	return "token." + tables.names[k.ord] + "()"
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}
