package chef

import (
	"io"
	"log/slog"
)

// defaultMaxSousChefDepth bounds nested Serve-with invocation depth.
const defaultMaxSousChefDepth = 200

// defaultMaxStatements bounds how many normalized statements Execute will
// accept before refusing to parse further — a resource guard against
// pathological input, not a language feature.
const defaultMaxStatements = 200000

// Options tunes the ambient resource guards around the Chef execution
// core. The zero value is not directly usable; construct one with
// DefaultOptions and apply Option functions to it, or simply call Execute
// with zero or more Options.
type Options struct {
	MaxSousChefDepth int
	MaxStatements    int
	Logger           *slog.Logger
}

// DefaultOptions returns the options Execute uses when none are supplied.
func DefaultOptions() Options {
	return Options{
		MaxSousChefDepth: defaultMaxSousChefDepth,
		MaxStatements:    defaultMaxStatements,
		Logger:           slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
}

// Option mutates an Options value. Functional options keep Execute's
// zero-argument call shape (spec.md section 6) intact while still letting
// a caller (the CLI, internal/config, or a test) override a single knob.
type Option func(*Options)

// WithMaxSousChefDepth overrides the sous-chef recursion cap.
func WithMaxSousChefDepth(depth int) Option {
	return func(o *Options) { o.MaxSousChefDepth = depth }
}

// WithMaxStatements overrides the statement-count guard.
func WithMaxStatements(max int) Option {
	return func(o *Options) { o.MaxStatements = max }
}

// WithLogger installs a structured logger the engine uses to trace
// dispatched statements (debug level) and raised faults (error level).
// The default logger discards everything, so library use stays silent
// unless a caller opts in.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}

func resolveOptions(opts []Option) Options {
	o := DefaultOptions()
	for _, apply := range opts {
		apply(&o)
	}
	return o
}
