package output

import (
	"bytes"
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/muesli/termenv"

	"github.com/robinvdvleuten/exprlex/token"
)

func TestNewStyles(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	assert.NotZero(t, styles)
	assert.NotZero(t, styles.output)
}

func TestStylesContainText(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	tests := []struct {
		name   string
		render func(string) string
	}{
		{"Success", styles.Success},
		{"Error", styles.Error},
		{"FilePath", styles.FilePath},
		{"Keyword", styles.Keyword},
		{"Dim", styles.Dim},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, tt.render("some text"), "some text")
		})
	}
}

func TestStylesKind(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStyles(&buf)

	for _, kind := range token.Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			assert.Contains(t, styles.Kind(kind, kind.String()), kind.String())
		})
	}
}

func TestPlainStylesEmitNoEscapes(t *testing.T) {
	var buf bytes.Buffer
	styles := NewPlainStyles(&buf)

	assert.Equal(t, "Real", styles.Kind(token.Real(), "Real"))
	assert.Equal(t, "oops", styles.Error("oops"))
	assert.Equal(t, "12ms", styles.Timing("12ms", true))
	assert.Equal(t, "input.expr", styles.FilePath("input.expr"))
}

func TestStylesWithProfileForcesColor(t *testing.T) {
	var buf bytes.Buffer
	styles := NewStylesWithProfile(&buf, termenv.ANSI256)

	styled := styles.Kind(token.Invalid(), "Invalid")
	assert.Contains(t, styled, "Invalid")
	assert.NotEqual(t, "Invalid", styled)
}
