package cli

import (
	"fmt"
	"io"
	"path/filepath"

	"github.com/alecthomas/kong"

	"github.com/robinvdvleuten/exprlex/errors"
	"github.com/robinvdvleuten/exprlex/lexer"
)

// CheckCmd reports every byte of the input the lexer could not classify.
type CheckCmd struct {
	Source

	Format string `help:"Diagnostics format (${enum})." enum:"text,json" default:"text" short:"f"`
}

// Run executes the check command.
func (cmd *CheckCmd) Run(ctx *kong.Context, globals *Globals) error {
	filename, source, err := cmd.Source.Load()
	if err != nil {
		return err
	}

	runCtx, report := startTelemetry(ctx, globals, "check "+filepath.Base(filename))
	defer report()

	setColorProfile(globals.Color)

	buf := lexer.LexContext(runCtx, source)
	if !reportDiagnostics(ctx.Stdout, ctx.Stderr, filename, buf, cmd.Format) {
		return NewCommandError(1)
	}

	return nil
}

// reportDiagnostics prints the diagnostics of buf and reports whether the
// input was clean.
func reportDiagnostics(stdout, stderr io.Writer, filename string, buf *lexer.Buffer, format string) bool {
	errs := buf.Errors()

	if format == "json" {
		_, _ = fmt.Fprintln(stdout, errors.NewJSONFormatter(filename).FormatAll(errs))
		return len(errs) == 0
	}

	if len(errs) == 0 {
		literals := len(buf.Literals())
		printSuccess(stdout, fmt.Sprintf("%s: %d tokens, %d literals", filename, buf.Len(), literals))
		return true
	}

	renderer := NewErrorRenderer(filename, buf.Source())
	_, _ = fmt.Fprint(stderr, renderer.FormatAll(errs))
	_, _ = fmt.Fprintln(stderr)
	printError(stderr, fmt.Sprintf("%d invalid byte(s) found", len(errs)))

	return false
}
