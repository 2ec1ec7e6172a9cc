package telemetry

import (
	"fmt"
	"io"
	"time"

	"github.com/robinvdvleuten/exprlex/output"
)

// slowOperation is the duration from which an operation is highlighted.
const slowOperation = 100 * time.Millisecond

// formatTimingTree writes a timer and its children, for example:
//
//	check input.expr: 3ms
//	├─ read source: 0ms
//	└─ lex 4096 bytes: 2ms (1310 tokens)
func formatTimingTree(w io.Writer, root *timerNode, styles *output.Styles) {
	name := root.name
	if styles != nil {
		name = styles.Keyword(name)
	}
	_, _ = fmt.Fprintf(w, "%s: %s\n", name, formatTiming(root, styles))

	for i, child := range root.children {
		formatNode(w, child, "", i == len(root.children)-1, styles)
	}
}

func formatNode(w io.Writer, node *timerNode, prefix string, isLast bool, styles *output.Styles) {
	branch, extension := "├─ ", "│  "
	if isLast {
		branch, extension = "└─ ", "   "
	}

	tree := prefix + branch
	if styles != nil {
		tree = styles.Dim(tree)
	}
	_, _ = fmt.Fprintf(w, "%s%s: %s\n", tree, node.name, formatTiming(node, styles))

	for i, child := range node.children {
		formatNode(w, child, prefix+extension, i == len(node.children)-1, styles)
	}
}

func formatTiming(node *timerNode, styles *output.Styles) string {
	d := node.end.Sub(node.start)
	if node.end.IsZero() {
		d = 0
	}

	text := formatDuration(d)
	if node.detail != "" {
		text += " (" + node.detail + ")"
	}
	if styles != nil {
		text = styles.Timing(text, d >= slowOperation)
	}
	return text
}

// formatDuration shows milliseconds below one second, seconds above.
func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%.0fms", float64(d)/float64(time.Millisecond))
	}
	return fmt.Sprintf("%.2fs", float64(d)/float64(time.Second))
}
