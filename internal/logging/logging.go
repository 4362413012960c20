// Package logging builds the structured logger the chef binary and the
// chef execution engine share, wrapping the standard library's log/slog.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// New returns a text-handler logger writing to stderr at the given
// level. debug controls whether Debug-level records (one per dispatched
// statement) are emitted; when false, only Info and above are shown.
func New(debug bool) *slog.Logger {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// Discard returns a logger that drops every record, the same kind of
// logger the chef package builds for itself by default so library
// consumers see no output unless they opt in with chef.WithLogger.
func Discard() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
