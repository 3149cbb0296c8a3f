// SPDX-License-Identifier: MIT
// Package: molpath/builder
//
// config.go: internal configuration and deterministic defaults.
//
// Deterministic defaults:
//   • symbolFn       = constant "C"
//   • multiplicityFn = constant 1 (single bonds)
//   • aromatic       = false

package builder

import "github.com/katalvlaran/molpath/walk"

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors.
type builderConfig struct {
	// Atom symbol strategy: local index -> symbol.
	symbolFn func(int) string
	// Bond multiplicity strategy: local bond index -> multiplicity.
	multiplicityFn func(int) int
	// Flag every atom a constructor adds as aromatic.
	aromatic bool
}

const defaultSymbol = "C"

// newBuilderConfig constructs a config with defaults and applies all options
// in order (later overrides earlier).
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		symbolFn:       func(int) string { return defaultSymbol },
		multiplicityFn: func(int) int { return walk.Single },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}
