// Package telemetry provides hierarchical timing collection for operations.
//
// Collectors travel through a context so instrumented code does not need to
// know whether timing is enabled. Without a collector in the context every
// call is a no-op.
//
//	collector := telemetry.NewTimingCollector()
//	ctx := telemetry.WithCollector(context.Background(), collector)
//
//	timer := collector.Start("check input.expr")
//	buf := lexer.LexContext(ctx, source)
//	timer.End()
//
//	collector.Report(os.Stderr, output.NewStyles(os.Stderr))
package telemetry

import (
	"context"
	"io"

	"github.com/robinvdvleuten/exprlex/output"
)

type contextKey struct{}

var collectorKey = contextKey{}

// Collector collects timings for a run.
type Collector interface {
	// Start begins timing an operation. Operations started while another
	// one is running are nested under it.
	Start(name string) Timer

	// Report writes the collected timings as a tree. styles may be nil for
	// unstyled output.
	Report(w io.Writer, styles *output.Styles)
}

// Timer tracks a single operation's timing.
type Timer interface {
	// End stops the timer.
	End()

	// Child creates a nested timer under this timer.
	Child(name string) Timer

	// Annotate attaches a short detail, such as a token count, that is
	// printed next to the operation in the report.
	Annotate(detail string)
}

// WithCollector adds a collector to a context.
func WithCollector(ctx context.Context, collector Collector) context.Context {
	return context.WithValue(ctx, collectorKey, collector)
}

// FromContext extracts the collector from context, or a no-op collector if
// none is present.
func FromContext(ctx context.Context) Collector {
	if collector, ok := ctx.Value(collectorKey).(Collector); ok {
		return collector
	}
	return noOpCollector{}
}
