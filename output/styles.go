// Package output provides styling helpers for terminal output.
package output

import (
	"io"

	"github.com/muesli/termenv"

	"github.com/robinvdvleuten/exprlex/token"
)

// Styles provides styled output helpers for the CLI.
type Styles struct {
	output *termenv.Output
}

// NewStyles creates a new Styles instance for the given writer. Colors are
// only emitted when the writer is a terminal that supports them.
func NewStyles(w io.Writer) *Styles {
	return &Styles{
		output: termenv.NewOutput(w),
	}
}

// NewStylesWithProfile creates a Styles instance with a fixed color profile,
// regardless of what w supports.
func NewStylesWithProfile(w io.Writer, profile termenv.Profile) *Styles {
	return &Styles{
		output: termenv.NewOutput(w, termenv.WithProfile(profile)),
	}
}

// NewPlainStyles creates a Styles instance that never emits escape codes.
func NewPlainStyles(w io.Writer) *Styles {
	return NewStylesWithProfile(w, termenv.Ascii)
}

// Success returns a styled success string (green + bold).
func (s *Styles) Success(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("2")).
		Bold().
		String()
}

// Error returns a styled error string (red + bold).
func (s *Styles) Error(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("1")).
		Bold().
		String()
}

// FilePath returns a styled file path (cyan).
func (s *Styles) FilePath(text string) string {
	return s.output.String(text).
		Foreground(s.output.Color("6")).
		String()
}

// Keyword returns a styled keyword (bold).
func (s *Styles) Keyword(text string) string {
	return s.output.String(text).
		Bold().
		String()
}

// Dim returns dimmed text (for secondary information).
func (s *Styles) Dim(text string) string {
	return s.output.String(text).
		Faint().
		String()
}

// Kind styles text according to the category of the token kind it belongs
// to: literals magenta, symbols yellow, groups cyan, invalid red, and the
// end of file dimmed.
func (s *Styles) Kind(kind token.Kind, text string) string {
	switch {
	case kind.IsLiteral():
		return s.output.String(text).Foreground(s.output.Color("5")).String()
	case kind.IsSymbol():
		return s.output.String(text).Foreground(s.output.Color("3")).String()
	case kind.IsGroup():
		return s.output.String(text).Foreground(s.output.Color("6")).String()
	case kind == token.Invalid():
		return s.Error(text)
	case kind == token.EndOfFile():
		return s.Dim(text)
	default:
		return text
	}
}

// Timing returns a styled timing string: slow operations red, others dimmed.
func (s *Styles) Timing(text string, isSlowOperation bool) string {
	if isSlowOperation {
		return s.output.String(text).
			Foreground(s.output.Color("1")).
			String()
	}
	return s.Dim(text)
}
