// SPDX-License-Identifier: MIT

package fingerprint

import (
	"context"
	"log/slog"
	"runtime"
)

const (
	// DefaultSize is the default fingerprint width in bits.
	DefaultSize = 1024

	// DefaultDepth is the default walk depth in bonds.
	DefaultDepth = 7
)

// DefaultWorkers is the default ComputeAll concurrency.
var DefaultWorkers = runtime.GOMAXPROCS(0)

// config holds resolved Fingerprinter settings.
type config struct {
	size    int
	depth   int
	workers int
	ctx     context.Context
	logger  *slog.Logger
}

func defaultConfig() config {
	return config{
		size:    DefaultSize,
		depth:   DefaultDepth,
		workers: DefaultWorkers,
		ctx:     context.Background(),
		logger:  slog.Default().With(slog.String("component", "fingerprint")),
	}
}

// Option configures a Fingerprinter.
type Option func(*config)

// WithSize sets the fingerprint width in bits. Panics if n < 1.
func WithSize(n int) Option {
	if n < 1 {
		panic("fingerprint: WithSize(n < 1)")
	}
	return func(c *config) {
		c.size = n
	}
}

// WithDepth sets the maximum walk depth in bonds. Panics if depth < 0.
func WithDepth(depth int) Option {
	if depth < 0 {
		panic("fingerprint: WithDepth(depth < 0)")
	}
	return func(c *config) {
		c.depth = depth
	}
}

// WithWorkers caps how many structures ComputeAll fingerprints at once.
// Panics if n < 1.
func WithWorkers(n int) Option {
	if n < 1 {
		panic("fingerprint: WithWorkers(n < 1)")
	}
	return func(c *config) {
		c.workers = n
	}
}

// WithContext sets the context passed to every walk. Nil has no effect.
func WithContext(ctx context.Context) Option {
	return func(c *config) {
		if ctx != nil {
			c.ctx = ctx
		}
	}
}

// WithLogger sets the logger used by the Fingerprinter and its walks.
// Nil has no effect.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}
