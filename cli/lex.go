package cli

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strconv"

	"github.com/alecthomas/kong"
	"github.com/alecthomas/repr"
	json "github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/mattn/go-runewidth"
	"github.com/samber/lo"

	"github.com/robinvdvleuten/exprlex/lexer"
	"github.com/robinvdvleuten/exprlex/output"
	"github.com/robinvdvleuten/exprlex/telemetry"
	"github.com/robinvdvleuten/exprlex/token"
)

// LexCmd shows the tokens of an expression.
type LexCmd struct {
	Source

	Format  string `help:"Output format (${enum})." enum:"table,json,yaml,repr" default:"table" short:"f"`
	ShowEOF bool   `help:"Include the trailing EndOfFile token." name:"show-eof"`
	Summary bool   `help:"Print the number of tokens per kind after the tokens."`
}

// tokenView is the serialized form of a token.
type tokenView struct {
	Kind   string   `json:"kind" yaml:"kind"`
	Line   uint32   `json:"line" yaml:"line"`
	Column uint32   `json:"column" yaml:"column"`
	Offset uint32   `json:"offset" yaml:"offset"`
	Text   string   `json:"text" yaml:"text"`
	Value  *float64 `json:"value,omitempty" yaml:"value,omitempty"`
	Exact  string   `json:"exact,omitempty" yaml:"exact,omitempty"`
}

// Run executes the lex command.
func (cmd *LexCmd) Run(ctx *kong.Context, globals *Globals) error {
	filename, source, err := cmd.Source.Load()
	if err != nil {
		return err
	}

	runCtx, report := startTelemetry(ctx, globals, "lex "+filepath.Base(filename))
	defer report()

	buf := lexer.LexContext(runCtx, source)

	tokens := buf.Tokens()
	if !cmd.ShowEOF {
		tokens = tokens[:len(tokens)-1]
	}

	styles := applyColor(globals.Color, ctx.Stdout)

	switch cmd.Format {
	case "json":
		data, err := json.MarshalIndent(viewTokens(buf, tokens), "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode tokens: %w", err)
		}
		_, _ = fmt.Fprintln(ctx.Stdout, string(data))

	case "yaml":
		data, err := yaml.Marshal(viewTokens(buf, tokens))
		if err != nil {
			return fmt.Errorf("failed to encode tokens: %w", err)
		}
		_, _ = fmt.Fprint(ctx.Stdout, string(data))

	case "repr":
		repr.New(ctx.Stdout, repr.Indent("  ")).Println(viewTokens(buf, tokens))

	default:
		writeTokenTable(ctx.Stdout, buf, tokens, styles)
	}

	if cmd.Summary {
		writeSummary(ctx.Stdout, tokens, styles)
	}

	return nil
}

// startTelemetry installs a timing collector when --telemetry is set. The
// returned function ends the root timer and prints the report to stderr.
func startTelemetry(ctx *kong.Context, globals *Globals, name string) (context.Context, func()) {
	runCtx := context.Background()
	if !globals.Telemetry {
		return runCtx, func() {}
	}

	collector := telemetry.NewTimingCollector()
	runCtx = telemetry.WithCollector(runCtx, collector)
	timer := collector.Start(name)

	return runCtx, func() {
		timer.End()
		_, _ = fmt.Fprintln(ctx.Stderr)
		collector.Report(ctx.Stderr, applyColor(globals.Color, ctx.Stderr))
	}
}

func viewTokens(buf *lexer.Buffer, tokens []lexer.Token) []tokenView {
	return lo.Map(tokens, func(tok lexer.Token, _ int) tokenView {
		view := tokenView{
			Kind:   tok.Kind.String(),
			Line:   tok.Loc.Line,
			Column: tok.Loc.Column,
			Offset: tok.Loc.Offset,
			Text:   buf.Text(tok),
		}
		if lit, ok := buf.LiteralOf(tok); ok {
			value := lit.Value
			view.Value = &value
			if d, err := lit.Decimal(); err == nil {
				view.Exact = d.String()
			}
		}
		return view
	})
}

// writeTokenTable prints one token per line: KIND line:col offset "text" value.
func writeTokenTable(w io.Writer, buf *lexer.Buffer, tokens []lexer.Token, styles *output.Styles) {
	for _, tok := range tokens {
		kind := runewidth.FillRight(tok.Kind.String(), 11)
		loc := runewidth.FillRight(tok.Loc.String(), 8)
		offset := runewidth.FillRight(strconv.FormatUint(uint64(tok.Loc.Offset), 10), 6)

		line := fmt.Sprintf("%s %s %s %q",
			styles.Kind(tok.Kind, kind),
			styles.Dim(loc),
			styles.Dim(offset),
			buf.Text(tok),
		)

		if lit, ok := buf.LiteralOf(tok); ok {
			line += " " + strconv.FormatFloat(lit.Value, 'g', -1, 64)
		}

		_, _ = fmt.Fprintln(w, line)
	}
}

// writeSummary prints how many tokens of each kind were found, in kind order.
func writeSummary(w io.Writer, tokens []lexer.Token, styles *output.Styles) {
	byKind := lo.GroupBy(tokens, func(tok lexer.Token) token.Kind {
		return tok.Kind
	})

	_, _ = fmt.Fprintln(w)
	for _, kind := range token.Kinds() {
		group, ok := byKind[kind]
		if !ok {
			continue
		}
		_, _ = fmt.Fprintf(w, "%s %d\n", styles.Kind(kind, runewidth.FillRight(kind.String(), 11)), len(group))
	}
}
