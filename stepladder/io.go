package stepladder

import (
	"bufio"
	"fmt"
	"io"

	"github.com/katalvlaran/combsearch/internal/ioscan"
)

// Run reads the word-length header, the raw word list, and writes the
// maximum stepladder score as a single integer line.
func Run(in io.Reader, out io.Writer) error {
	sc := ioscan.New(in)

	kLine, ok := sc.Line()
	if !ok {
		return fmt.Errorf("%w: missing K", ErrMalformedHeader)
	}
	k, err := ioscan.Int(kLine, "K")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	nLine, ok := sc.Line()
	if !ok {
		return fmt.Errorf("%w: missing N", ErrMalformedHeader)
	}
	n, err := ioscan.Int(nLine, "N")
	if err != nil {
		return fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}

	words := make([]string, 0, n)
	for i := 0; i < n; i++ {
		line, ok := sc.Line()
		if !ok {
			return fmt.Errorf("%w: expected %d words, got %d", ErrMalformedWord, n, i)
		}
		words = append(words, line)
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("stepladder: reading input: %w", err)
	}

	writer := bufio.NewWriter(out)
	if _, err := fmt.Fprintln(writer, Solve(words, k)); err != nil {
		return fmt.Errorf("stepladder: writing output: %w", err)
	}
	return writer.Flush()
}
