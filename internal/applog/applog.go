// Package applog provides the single diagnostic logger shared by the three
// CLI entrypoints. The algorithmic core packages (feedopt, nearby,
// stepladder) never import it: logging is an ambient CLI-shell concern,
// not something a hot backtracking loop should carry.
package applog

import (
	"log/slog"
	"os"
)

// New returns a text-handler logger writing to stderr, tagged with
// component (e.g. "feedopt", "nearby", "stepladder").
func New(component string) *slog.Logger {
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})

	return slog.New(handler).With("component", component)
}
