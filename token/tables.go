package token

import "fmt"

type category uint8

const (
	categoryNone category = iota
	categorySymbol
	categoryGroup
	categoryLiteral
	categorySized
)

// declaration describes a single kind: its display name, its category and,
// for symbols and groups, the exact source spelling.
type declaration struct {
	ord      uint8
	name     string
	category category
	spelling string
	size     uint8 // only for categorySized
}

func plain(ord uint8, name string) declaration {
	return declaration{ord: ord, name: name}
}

func symbol(ord uint8, name, spelling string) declaration {
	return declaration{ord: ord, name: name, category: categorySymbol, spelling: spelling}
}

func group(ord uint8, name, spelling string) declaration {
	return declaration{ord: ord, name: name, category: categoryGroup, spelling: spelling}
}

func literal(ord uint8, name string) declaration {
	return declaration{ord: ord, name: name, category: categoryLiteral}
}

// sized declares a kind with a fixed width but no single spelling.
func sized(ord uint8, name string, size uint8) declaration {
	return declaration{ord: ord, name: name, category: categorySized, size: size}
}

// kindTables holds every attribute of every kind, indexed by ordinal.
type kindTables struct {
	literals  []bool
	symbols   []bool
	groups    []bool
	sizings   []uint8
	spellings []string
	names     []string
}

// deriveTables builds the classification tables from an ordered declaration
// list. It rejects lists that are out of order, name a kind twice, or give a
// symbol or group an empty or oversized spelling.
func deriveTables(decls []declaration) (kindTables, error) {
	n := len(decls)
	t := kindTables{
		literals:  make([]bool, n),
		symbols:   make([]bool, n),
		groups:    make([]bool, n),
		sizings:   make([]uint8, n),
		spellings: make([]string, n),
		names:     make([]string, n),
	}

	seen := make(map[string]bool, n)
	for i, d := range decls {
		if int(d.ord) != i {
			return kindTables{}, fmt.Errorf("kind %q declared at position %d has ordinal %d", d.name, i, d.ord)
		}
		if d.name == "" {
			return kindTables{}, fmt.Errorf("kind at position %d has no name", i)
		}
		if seen[d.name] {
			return kindTables{}, fmt.Errorf("kind %q declared twice", d.name)
		}
		seen[d.name] = true
		t.names[i] = d.name

		switch d.category {
		case categorySymbol, categoryGroup:
			if d.spelling == "" || len(d.spelling) > 255 {
				return kindTables{}, fmt.Errorf("kind %q has invalid spelling %q", d.name, d.spelling)
			}
			t.symbols[i] = d.category == categorySymbol
			t.groups[i] = d.category == categoryGroup
			t.spellings[i] = d.spelling
			t.sizings[i] = uint8(len(d.spelling))
		case categoryLiteral:
			t.literals[i] = true
		case categorySized:
			t.sizings[i] = d.size
		}
	}

	return t, nil
}

func mustDeriveTables(decls []declaration) kindTables {
	t, err := deriveTables(decls)
	if err != nil {
		panic(fmt.Sprintf("token: %v", err))
	}
	if len(t.names) != int(kindCount) {
		panic(fmt.Sprintf("token: %d kind tables entries for %d kinds", len(t.names), kindCount))
	}
	return t
}
