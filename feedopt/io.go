package feedopt

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/combsearch/internal/ioscan"
)

// Run drives the Feed Optimizer event loop end to end: parse the header,
// process each event, and write one output line per "R" event.
func Run(in io.Reader, out io.Writer) error {
	sc := ioscan.New(in)

	header, ok := sc.Line()
	if !ok {
		return fmt.Errorf("feedopt: %w: missing header", ErrMalformedHeader)
	}
	n, w, h, err := parseHeader(header)
	if err != nil {
		return err
	}
	if h <= 0 {
		return ErrNegativeCapacity
	}

	engine := NewEngine(w, h)
	writer := bufio.NewWriter(out)
	defer writer.Flush()

	for i := 0; i < n; i++ {
		line, ok := sc.Line()
		if !ok {
			return fmt.Errorf("feedopt: %w: expected %d events, got %d", ErrMalformedEvent, n, i)
		}
		fields := ioscan.Fields(line)
		if len(fields) == 0 {
			return fmt.Errorf("feedopt: %w: empty event line", ErrMalformedEvent)
		}

		switch fields[0] {
		case "S":
			t, s, h, err := parseStore(fields)
			if err != nil {
				return err
			}
			engine.Store(t, s, h)
		case "R":
			t, err := parseReload(fields)
			if err != nil {
				return err
			}
			sol := engine.Reload(t)
			if err := writeSolution(writer, sol); err != nil {
				return fmt.Errorf("feedopt: writing output: %w", err)
			}
		default:
			return fmt.Errorf("feedopt: %w: unknown event type %q", ErrMalformedEvent, fields[0])
		}
	}

	if err := sc.Err(); err != nil {
		return fmt.Errorf("feedopt: reading input: %w", err)
	}
	return writer.Flush()
}

func parseHeader(line string) (n int, w, h int64, err error) {
	fields := ioscan.Fields(line)
	if len(fields) != 3 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedHeader, line)
	}
	ni, err := ioscan.Int(fields[0], "N")
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %v", ErrMalformedHeader, err)
	}
	wi, err := strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: bad W: %v", ErrMalformedHeader, err)
	}
	hi, err := strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: bad H: %v", ErrMalformedHeader, err)
	}
	return ni, wi, hi, nil
}

func parseStore(fields []string) (t, s, h int64, err error) {
	if len(fields) != 4 {
		return 0, 0, 0, fmt.Errorf("%w: %q", ErrMalformedEvent, strings.Join(fields, " "))
	}
	t, err = strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: bad t: %v", ErrMalformedEvent, err)
	}
	s, err = strconv.ParseInt(fields[2], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: bad score: %v", ErrMalformedEvent, err)
	}
	h, err = strconv.ParseInt(fields[3], 10, 64)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: bad height: %v", ErrMalformedEvent, err)
	}
	return t, s, h, nil
}

func parseReload(fields []string) (t int64, err error) {
	if len(fields) != 2 {
		return 0, fmt.Errorf("%w: %q", ErrMalformedEvent, strings.Join(fields, " "))
	}
	t, err = strconv.ParseInt(fields[1], 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: bad t: %v", ErrMalformedEvent, err)
	}
	return t, nil
}

func writeSolution(w *bufio.Writer, sol Solution) error {
	if _, err := fmt.Fprintf(w, "%d %d", sol.Score, sol.Size); err != nil {
		return err
	}
	for _, id := range sol.IDs {
		if _, err := fmt.Fprintf(w, " %d", id); err != nil {
			return err
		}
	}
	_, err := w.WriteString("\n")
	return err
}
