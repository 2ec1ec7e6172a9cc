package lexer

import (
	"bytes"
	"context"
	"testing"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/exprlex/telemetry"
)

func TestLexContextRecordsTiming(t *testing.T) {
	collector := telemetry.NewTimingCollector()
	ctx := telemetry.WithCollector(context.Background(), collector)

	buf := LexContext(ctx, "(123 * 123)")
	assert.Equal(t, 6, buf.Len())

	var out bytes.Buffer
	collector.Report(&out, nil)
	assert.Contains(t, out.String(), "lex 11 bytes")
	assert.Contains(t, out.String(), "6 tokens, 2 literals")
}

func TestLexContextWithoutCollector(t *testing.T) {
	buf := LexContext(context.Background(), "1+2")
	assert.Equal(t, Lex("1+2").Tokens(), buf.Tokens())
}
