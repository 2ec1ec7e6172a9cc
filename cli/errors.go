package cli

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/robinvdvleuten/exprlex/errors"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// NewErrorRenderer returns a text formatter that renders diagnostics with
// terminal styling and source context.
func NewErrorRenderer(filename, source string) *errors.TextFormatter {
	return errors.NewTextFormatter(source,
		errors.WithFilename(filename),
		errors.WithHighlight(
			func(s string) string { return errorStyle.Render(s) },
			func(s string) string { return errContextStyle.Render(s) },
			func(s string) string { return errCaretStyle.Render(s) },
		),
	)
}
