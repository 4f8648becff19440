// Package ioscan is the line/field tokenizer shared by the three cores'
// io.go parsers: a buffered line scanner plus strings.Fields is all three
// record grammars need, since every field is space-separated base-10
// ASCII.
package ioscan

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// maxLineBytes bounds a single input line; the three grammars never
// legitimately need more than a few hundred fields per line (question
// records top out at ten topic ids), so this is a generous ceiling that
// just keeps a malformed stream from growing bufio.Scanner's token buffer
// without bound.
const maxLineBytes = 1 << 20

// Reader scans an input stream line by line.
type Reader struct {
	sc *bufio.Scanner
}

// New wraps r for line-oriented reads.
func New(r io.Reader) *Reader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &Reader{sc: sc}
}

// Line returns the next non-EOF line (without its terminator), and false
// once the stream is exhausted.
func (r *Reader) Line() (string, bool) {
	if !r.sc.Scan() {
		return "", false
	}
	return r.sc.Text(), true
}

// Err returns any error encountered while scanning (not io.EOF).
func (r *Reader) Err() error {
	return r.sc.Err()
}

// Fields splits a line on whitespace, mirroring the single-space field
// separator the three grammars use.
func Fields(line string) []string {
	return strings.Fields(line)
}

// Int parses a base-10 integer field, wrapping strconv's error with the
// field's name for a more useful diagnostic on malformed input.
func Int(field string, what string) (int, error) {
	v, err := strconv.Atoi(field)
	if err != nil {
		return 0, fmt.Errorf("ioscan: invalid %s %q: %w", what, field, err)
	}
	return v, nil
}

// Float parses a base-10 decimal field.
func Float(field string, what string) (float64, error) {
	v, err := strconv.ParseFloat(field, 64)
	if err != nil {
		return 0, fmt.Errorf("ioscan: invalid %s %q: %w", what, field, err)
	}
	return v, nil
}
