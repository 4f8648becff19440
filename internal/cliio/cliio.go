// Package cliio resolves the "-f <path>" / "-o <path>" flags shared by all
// three cores' command-line entrypoints, falling back to stdin/stdout on a
// missing flag value or an unopenable path. The flag grammar is two
// optional string flags, so the standard library's flag package is all
// this needs.
package cliio

import (
	"flag"
	"io"
	"log/slog"
	"os"
)

// Streams bundles the resolved input/output and a Close that releases any
// file handles cliio opened (a no-op for stdin/stdout).
type Streams struct {
	In    io.Reader
	Out   io.Writer
	Close func() error
}

// Parse reads "-f" and "-o" out of args (typically os.Args[1:]) and resolves
// the input/output streams. A missing file, or a missing value for either
// flag, is logged as a warning and the corresponding stream falls back to
// stdin/stdout — never a fatal error.
func Parse(args []string, log *slog.Logger) Streams {
	fs := flag.NewFlagSet("combsearch", flag.ContinueOnError)
	fs.SetOutput(io.Discard) // we emit our own diagnostics via applog

	inPath := fs.String("f", "", "read input from this file instead of stdin")
	outPath := fs.String("o", "", "write output to this file instead of stdout")

	var closers []func() error
	closeAll := func() error {
		var first error
		for i := len(closers) - 1; i >= 0; i-- {
			if err := closers[i](); err != nil && first == nil {
				first = err
			}
		}
		return first
	}

	if err := fs.Parse(args); err != nil {
		log.Warn("failed to parse CLI flags, falling back to stdin/stdout", "error", err)
		return Streams{In: os.Stdin, Out: os.Stdout, Close: closeAll}
	}

	var in io.Reader = os.Stdin
	if *inPath != "" {
		f, err := os.Open(*inPath)
		if err != nil {
			log.Warn("requested input file does not exist, reading from stdin instead", "path", *inPath, "error", err)
		} else {
			in = f
			closers = append(closers, f.Close)
		}
	}

	var out io.Writer = os.Stdout
	if *outPath != "" {
		f, err := os.Create(*outPath)
		if err != nil {
			log.Warn("requested output file could not be created, writing to stdout instead", "path", *outPath, "error", err)
		} else {
			out = f
			closers = append(closers, f.Close)
		}
	}

	return Streams{In: in, Out: out, Close: closeAll}
}
