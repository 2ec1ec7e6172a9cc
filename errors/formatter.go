// Package errors renders lexer diagnostics for different consumers.
//
// The lexer itself never fails; it marks bytes it cannot classify as Invalid
// tokens. lexer.Buffer.Errors turns those into positioned errors, and this
// package formats them:
//   - TextFormatter: message plus the surrounding source lines with a caret
//     under the offending column, for terminals
//   - JSONFormatter: structured objects for tooling
package errors

import (
	"fmt"
	"strings"

	json "github.com/goccy/go-json"
	"github.com/mattn/go-runewidth"

	"github.com/robinvdvleuten/exprlex/lexer"
)

// Formatter formats errors for output in different formats.
type Formatter interface {
	// Format formats a single error.
	Format(err error) string

	// FormatAll formats multiple errors.
	FormatAll(errs []error) string
}

// positioned is implemented by errors that know where in the source they
// occurred.
type positioned interface {
	error
	GetPosition() lexer.Location
}

// TextFormatter formats errors for command-line output.
type TextFormatter struct {
	source   string
	filename string
	before   int
	after    int
	caret    func(string) string
	context  func(string) string
	message  func(string) string
}

// TextFormatterOption is an option for configuring TextFormatter.
type TextFormatterOption func(*TextFormatter)

// WithFilename prefixes positions with a file name.
func WithFilename(filename string) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.filename = filename
	}
}

// WithContextLines sets how many source lines are shown before and after the
// offending line.
func WithContextLines(before, after int) TextFormatterOption {
	return func(tf *TextFormatter) {
		tf.before = before
		tf.after = after
	}
}

// WithHighlight sets render functions for the message, the context lines and
// the caret. Nil functions leave that part unstyled.
func WithHighlight(message, context, caret func(string) string) TextFormatterOption {
	return func(tf *TextFormatter) {
		if message != nil {
			tf.message = message
		}
		if context != nil {
			tf.context = context
		}
		if caret != nil {
			tf.caret = caret
		}
	}
}

func identity(s string) string { return s }

// NewTextFormatter creates a new text formatter over source. An empty source
// disables the context lines.
func NewTextFormatter(source string, opts ...TextFormatterOption) *TextFormatter {
	tf := &TextFormatter{
		source:  source,
		before:  2,
		after:   1,
		caret:   identity,
		context: identity,
		message: identity,
	}
	for _, opt := range opts {
		opt(tf)
	}
	return tf
}

// Format formats a single error.
func (tf *TextFormatter) Format(err error) string {
	e, ok := err.(positioned)
	if !ok {
		return tf.message(err.Error())
	}

	message := e.Error()
	if tf.filename != "" {
		message = tf.filename + ":" + message
	}

	if tf.source == "" {
		return tf.message(message)
	}
	return tf.formatWithSourceContext(e.GetPosition(), message)
}

// FormatAll formats multiple errors, one after another.
func (tf *TextFormatter) FormatAll(errs []error) string {
	if len(errs) == 0 {
		return ""
	}

	var buf strings.Builder
	for i, err := range errs {
		buf.WriteString(tf.Format(err))

		if i < len(errs)-1 {
			buf.WriteString("\n")
		}
	}

	return buf.String()
}

// formatWithSourceContext shows the message followed by the source lines
// around the position and a caret under the offending column.
func (tf *TextFormatter) formatWithSourceContext(pos lexer.Location, message string) string {
	var buf strings.Builder

	buf.WriteString(tf.message(message))
	buf.WriteString("\n\n")

	// A final newline terminates the last line rather than starting another.
	lines := strings.Split(strings.TrimSuffix(tf.source, "\n"), "\n")
	errLine := int(pos.Line) - 1

	start := errLine - tf.before
	if start < 0 {
		start = 0
	}
	end := errLine + tf.after
	if end >= len(lines) {
		end = len(lines) - 1
	}

	for i := start; i <= end; i++ {
		buf.WriteString("   ")
		buf.WriteString(tf.context(expandTabs(lines[i])))
		buf.WriteByte('\n')

		if i == errLine && pos.Column > 0 {
			buf.WriteString("   ")
			buf.WriteString(strings.Repeat(" ", caretPadding(lines[i], int(pos.Column))))
			buf.WriteString(tf.caret("^"))
			buf.WriteByte('\n')
		}
	}

	return buf.String()
}

// caretPadding converts a 1-based byte column into the number of terminal
// cells before it, so the caret lines up under wide or multi-byte text.
func caretPadding(line string, column int) int {
	n := column - 1
	if n > len(line) {
		n = len(line)
	}
	return runewidth.StringWidth(expandTabs(line[:n]))
}

func expandTabs(s string) string {
	return strings.ReplaceAll(s, "\t", "    ")
}

// JSONFormatter formats errors as JSON.
type JSONFormatter struct {
	filename string
}

// NewJSONFormatter creates a new JSON formatter. filename may be empty.
func NewJSONFormatter(filename string) *JSONFormatter {
	return &JSONFormatter{filename: filename}
}

// ErrorJSON represents an error in JSON format.
type ErrorJSON struct {
	Type     string        `json:"type"`
	Message  string        `json:"message"`
	Position *PositionJSON `json:"position,omitempty"`
	Byte     *string       `json:"byte,omitempty"`
}

// PositionJSON represents a source position in JSON format.
type PositionJSON struct {
	Filename string `json:"filename,omitempty"`
	Line     uint32 `json:"line"`
	Column   uint32 `json:"column"`
	Offset   uint32 `json:"offset"`
}

// Format formats a single error as JSON.
func (jf *JSONFormatter) Format(err error) string {
	data, _ := json.Marshal(jf.toJSON(err))
	return string(data)
}

// FormatAll formats multiple errors as a JSON array.
func (jf *JSONFormatter) FormatAll(errs []error) string {
	data, _ := json.MarshalIndent(jf.FormatAllToSlice(errs), "", "  ")
	return string(data)
}

// FormatAllToSlice returns errors as a slice of ErrorJSON structs.
func (jf *JSONFormatter) FormatAllToSlice(errs []error) []ErrorJSON {
	result := make([]ErrorJSON, 0, len(errs))
	for _, err := range errs {
		result = append(result, jf.toJSON(err))
	}
	return result
}

func (jf *JSONFormatter) toJSON(err error) ErrorJSON {
	errJSON := ErrorJSON{
		Type:    typeName(err),
		Message: err.Error(),
	}

	if e, ok := err.(positioned); ok {
		pos := e.GetPosition()
		errJSON.Position = &PositionJSON{
			Filename: jf.filename,
			Line:     pos.Line,
			Column:   pos.Column,
			Offset:   pos.Offset,
		}
	}

	if e, ok := err.(*lexer.InvalidByteError); ok {
		b := fmt.Sprintf("0x%02X", e.Byte)
		errJSON.Byte = &b
	}

	return errJSON
}

func typeName(err error) string {
	switch err.(type) {
	case *lexer.InvalidByteError:
		return "invalid_byte"
	default:
		return fmt.Sprintf("%T", err)
	}
}
