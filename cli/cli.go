// Package cli implements the exprlex command-line interface.
package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/term"

	"github.com/robinvdvleuten/exprlex/output"
)

var (
	successSymbol = "✓"
	errorSymbol   = "✗"
	infoSymbol    = "→"

	successStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#00D787", Dark: "#00D787"})
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#5FAFFF", Dark: "#5FAFFF"})
)

func printSuccess(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		successStyle.Render(successSymbol),
		message,
	)
}

func printError(w io.Writer, message string) {
	_, _ = fmt.Fprintf(w, "%s %s\n",
		errorStyle.Render(errorSymbol),
		errorStyle.Render(message),
	)
}

func printInfof(w io.Writer, format string, args ...interface{}) {
	formatted := fmt.Sprintf(format, args...)
	_, _ = fmt.Fprintf(w, "%s %s\n",
		infoStyle.Render(infoSymbol),
		formatted,
	)
}

// setColorProfile configures the lipgloss printers for the --color flag.
// "auto" leaves lipgloss detecting the terminal itself.
func setColorProfile(mode string) {
	switch mode {
	case "never":
		lipgloss.SetColorProfile(termenv.Ascii)
	case "always":
		lipgloss.SetColorProfile(termenv.ANSI256)
	}
}

// applyColor configures lipgloss for the --color flag and returns matching
// termenv styles for w.
func applyColor(mode string, w io.Writer) *output.Styles {
	setColorProfile(mode)

	switch mode {
	case "never":
		return output.NewPlainStyles(w)
	case "always":
		return output.NewStylesWithProfile(w, termenv.ANSI256)
	default:
		return output.NewStyles(w)
	}
}

func isTerminal() bool {
	return term.IsTerminal(int(os.Stdin.Fd()))
}

// promptExpression asks for an expression interactively. Replaced in tests.
var promptExpression = func() (string, error) {
	var expr string

	form := huh.NewInput().
		Title("Expression").
		Placeholder("(1 + 2) * 3").
		Value(&expr)

	if err := form.Run(); err != nil {
		return "", fmt.Errorf("failed to read expression: %w", err)
	}
	return expr, nil
}

const (
	stdinName = "<stdin>"
	exprName  = "<expr>"
)

// FileOrStdin accepts either a file path or "-" for stdin.
// For stdin: Filename="<stdin>", Contents populated.
// For files: Filename set, Contents nil (read on demand).
type FileOrStdin struct {
	Filename string
	Contents []byte
}

// Decode implements kong.MapperValue.
func (f *FileOrStdin) Decode(ctx *kong.DecodeContext) error {
	var filename string
	if err := ctx.Scan.PopValueInto("filename", &filename); err != nil {
		return err
	}

	if filename == "-" || filename == "" {
		contents, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("failed to read from stdin: %w", err)
		}
		f.Filename = stdinName
		f.Contents = contents
		return nil
	}

	if _, err := os.Stat(filename); err != nil {
		return err
	}
	f.Filename = filename
	f.Contents = nil

	return nil
}

// Source is the input shared by the commands that lex something: a file, an
// inline expression, stdin, or an interactive prompt.
type Source struct {
	File FileOrStdin `help:"Expression file (use '-' for stdin, or omit for stdin)." arg:"" optional:""`
	Expr string      `help:"Lex this expression instead of reading a file." short:"e"`
}

// Load returns a display name for the input and its contents.
func (s *Source) Load() (string, string, error) {
	if s.Expr != "" {
		return exprName, s.Expr, nil
	}

	switch {
	case s.File.Filename == stdinName:
		return stdinName, string(s.File.Contents), nil

	case s.File.Filename != "":
		contents, err := os.ReadFile(s.File.Filename)
		if err != nil {
			return "", "", fmt.Errorf("failed to read file: %w", err)
		}
		return s.File.Filename, string(contents), nil

	case isTerminal():
		expr, err := promptExpression()
		if err != nil {
			return "", "", err
		}
		return exprName, strings.TrimRight(expr, "\n"), nil

	default:
		contents, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", "", fmt.Errorf("failed to read from stdin: %w", err)
		}
		return stdinName, string(contents), nil
	}
}
