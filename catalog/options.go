// SPDX-License-Identifier: MIT

package catalog

import (
	"log/slog"

	"github.com/katalvlaran/molpath/fingerprint"
)

// Options configures Open.
type Options struct {
	// Dir is the Badger data directory. Ignored when InMemory is set.
	Dir string

	// InMemory keeps the catalog in memory only.
	InMemory bool

	// Size is the fingerprint width for a new catalog. An existing catalog
	// must have been created with the same width.
	Size int

	// Logger receives catalog events and Badger's own log output.
	Logger *slog.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns the defaults: no location, fingerprint.DefaultSize,
// slog.Default() tagged with component=catalog.
func DefaultOptions() Options {
	return Options{
		Size:   fingerprint.DefaultSize,
		Logger: slog.Default().With(slog.String("component", "catalog")),
	}
}

// WithDir stores the catalog under dir. Panics on "".
func WithDir(dir string) Option {
	if dir == "" {
		panic("catalog: WithDir(\"\")")
	}
	return func(o *Options) {
		o.Dir = dir
	}
}

// WithInMemory keeps the catalog in memory.
func WithInMemory() Option {
	return func(o *Options) {
		o.InMemory = true
	}
}

// WithSize sets the fingerprint width. Panics if n < 1.
func WithSize(n int) Option {
	if n < 1 {
		panic("catalog: WithSize(n < 1)")
	}
	return func(o *Options) {
		o.Size = n
	}
}

// WithLogger sets the logger. Nil has no effect.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
