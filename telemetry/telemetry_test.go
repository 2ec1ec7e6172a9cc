package telemetry

import (
	"bytes"
	"context"
	"strings"
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"

	"github.com/robinvdvleuten/exprlex/output"
)

// fakeClock advances by step on every reading.
func fakeClock(step time.Duration) func() time.Time {
	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	return func() time.Time {
		now = now.Add(step)
		return now
	}
}

func TestNoOpCollector(t *testing.T) {
	collector := noOpCollector{}

	timer := collector.Start("test")
	timer.Annotate("ignored")
	child := timer.Child("child")
	child.End()
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	assert.Equal(t, 0, buf.Len())
}

func TestFromContextReturnsNoOpWhenMissing(t *testing.T) {
	collector := FromContext(context.Background())

	_, ok := collector.(noOpCollector)
	assert.True(t, ok, "got %T", collector)
}

func TestWithCollector(t *testing.T) {
	collector := NewTimingCollector()
	ctx := WithCollector(context.Background(), collector)

	retrieved, ok := FromContext(ctx).(*TimingCollector)
	assert.True(t, ok)
	assert.True(t, retrieved == collector)
}

func TestTimingCollectorReport(t *testing.T) {
	collector := NewTimingCollector()
	collector.now = fakeClock(time.Millisecond)

	root := collector.Start("check input.expr")
	read := root.Child("read source")
	read.End()
	lex := root.Child("lex 11 bytes")
	lex.Annotate("6 tokens")
	lex.End()
	root.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	assert.Equal(t, strings.Join([]string{
		"check input.expr: 5ms",
		"├─ read source: 1ms",
		"└─ lex 11 bytes: 1ms (6 tokens)",
		"",
	}, "\n"), buf.String())
}

func TestTimingCollectorNestsStartUnderRunningTimer(t *testing.T) {
	collector := NewTimingCollector()
	collector.now = fakeClock(time.Millisecond)

	outer := collector.Start("outer")
	inner := collector.Start("inner")
	inner.End()
	outer.End()

	after := collector.Start("after")
	after.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	out := buf.String()
	assert.Contains(t, out, "└─ inner")
	assert.Contains(t, out, "\nafter: ")
}

func TestTimingCollectorDeepNesting(t *testing.T) {
	collector := NewTimingCollector()

	t1 := collector.Start("Level 1")
	t2 := t1.Child("Level 2")
	t3 := t2.Child("Level 3")
	t3.End()
	t2.End()
	t1.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, 3, len(lines))
	assert.True(t, strings.HasPrefix(lines[2], "   └─ Level 3"), "got %q", lines[2])
}

func TestTimingCollectorEndIsIdempotent(t *testing.T) {
	collector := NewTimingCollector()
	collector.now = fakeClock(time.Millisecond)

	timer := collector.Start("once")
	timer.End()
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	assert.Equal(t, "once: 1ms\n", buf.String())
}

func TestTimingCollectorStyledReport(t *testing.T) {
	collector := NewTimingCollector()
	collector.now = fakeClock(200 * time.Millisecond)

	timer := collector.Start("slow")
	timer.End()

	var buf bytes.Buffer
	collector.Report(&buf, output.NewPlainStyles(&buf))
	assert.Equal(t, "slow: 200ms\n", buf.String())
}

func TestTimingCollectorEmptyReport(t *testing.T) {
	collector := NewTimingCollector()

	var buf bytes.Buffer
	collector.Report(&buf, nil)
	assert.Equal(t, 0, buf.Len())
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		want     string
	}{
		{1 * time.Millisecond, "1ms"},
		{10 * time.Millisecond, "10ms"},
		{999 * time.Millisecond, "999ms"},
		{1 * time.Second, "1.00s"},
		{1500 * time.Millisecond, "1.50s"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, formatDuration(tt.duration))
	}
}
