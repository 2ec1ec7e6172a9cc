// Large Expression File Generator
//
// This tool generates a large expression file for performance testing and
// profiling. Each line is a random arithmetic expression mixing integers,
// fractions, exponents, nested groups and the occasional stray byte, so the
// lexer exercises every entry of its dispatch table.
//
// Usage:
//
//	go run main.go > large.expr
//	go run main.go 20000000 > large.expr  # Specify target size in bytes
package main

import (
	"bufio"
	"fmt"
	"io"
	"math/rand"
	"os"
	"strconv"
	"strings"
)

const (
	defaultTargetSize = 10 * 1024 * 1024 // 10MB
	maxDepth          = 4
)

var (
	operators = []string{"+", "-", "*", "/"}

	// stray bytes the lexer reports as invalid
	strays = []string{"@", "#", "$", "\r", "x"}
)

func main() {
	targetSize := defaultTargetSize
	if len(os.Args) > 1 {
		if size, err := strconv.Atoi(os.Args[1]); err == nil {
			targetSize = size
		}
	}

	w := bufio.NewWriter(os.Stdout)
	bytesWritten, lines := generate(w, rand.New(rand.NewSource(rand.Int63())), targetSize, 0.01)
	if err := w.Flush(); err != nil {
		fmt.Fprintf(os.Stderr, "failed to write output: %v\n", err)
		os.Exit(1)
	}

	fmt.Fprintf(os.Stderr, "\nGenerated %d bytes with %d expressions\n", bytesWritten, lines)
}

// generate writes expressions, one per line, until at least targetSize bytes
// were written. strayRate is the chance of inserting an invalid byte between
// two terms.
func generate(w io.Writer, r *rand.Rand, targetSize int, strayRate float64) (int, int) {
	bytesWritten := 0
	lines := 0

	for bytesWritten < targetSize {
		line := generateExpression(r, 0, strayRate) + "\n"
		n, _ := io.WriteString(w, line)
		bytesWritten += n
		lines++
	}

	return bytesWritten, lines
}

func generateExpression(r *rand.Rand, depth int, strayRate float64) string {
	var b strings.Builder

	terms := 2 + r.Intn(4)
	for i := 0; i < terms; i++ {
		if i > 0 {
			b.WriteString(separator(r))
			b.WriteString(operators[r.Intn(len(operators))])
			b.WriteString(separator(r))
		}

		if r.Float64() < strayRate {
			b.WriteString(strays[r.Intn(len(strays))])
		}

		if depth < maxDepth && r.Intn(4) == 0 {
			b.WriteString("(")
			b.WriteString(generateExpression(r, depth+1, strayRate))
			b.WriteString(")")
			continue
		}

		b.WriteString(randNumber(r))
	}

	return b.String()
}

func separator(r *rand.Rand) string {
	switch r.Intn(8) {
	case 0:
		return ""
	case 1:
		return "\t"
	case 2:
		return "  "
	default:
		return " "
	}
}

// randNumber returns a literal in one of the shapes the lexer accepts.
func randNumber(r *rand.Rand) string {
	switch r.Intn(6) {
	case 0:
		return strconv.Itoa(r.Intn(1000))
	case 1:
		return fmt.Sprintf("%d.%d", r.Intn(10000), r.Intn(100))
	case 2:
		return fmt.Sprintf("%d.", r.Intn(100))
	case 3:
		return fmt.Sprintf("%de%d", 1+r.Intn(9), r.Intn(20))
	case 4:
		return fmt.Sprintf("%d.%de-%d", r.Intn(10), r.Intn(1000), r.Intn(10))
	default:
		return strconv.FormatFloat(r.Float64()*1e6, 'f', 2, 64)
	}
}
