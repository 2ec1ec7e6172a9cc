package cli

import (
	"fmt"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/exprlex/token"
)

// KindsCmd prints the kind classification table.
type KindsCmd struct{}

// Run executes the kinds command.
func (cmd *KindsCmd) Run(ctx *kong.Context, globals *Globals) error {
	styles := applyColor(globals.Color, ctx.Stdout)

	header := fmt.Sprintf("%s %s %s %s",
		runewidth.FillRight("KIND", 11),
		runewidth.FillRight("CATEGORY", 9),
		runewidth.FillRight("SPELLING", 9),
		"SIZING",
	)
	_, _ = fmt.Fprintln(ctx.Stdout, styles.Keyword(header))

	for _, kind := range token.Kinds() {
		spelling := "-"
		if kind.Spelling() != "" {
			spelling = strconv.Quote(kind.Spelling())
		}

		_, _ = fmt.Fprintf(ctx.Stdout, "%s %s %s %d\n",
			styles.Kind(kind, runewidth.FillRight(kind.String(), 11)),
			runewidth.FillRight(category(kind), 9),
			runewidth.FillRight(spelling, 9),
			kind.Sizing(),
		)
	}

	return nil
}

func category(kind token.Kind) string {
	switch {
	case kind.IsLiteral():
		return "literal"
	case kind.IsSymbol():
		return "symbol"
	case kind.IsGroup():
		return "group"
	default:
		return "-"
	}
}
