// SPDX-License-Identifier: MIT
// Package: molpath/builder
//
// options.go: functional options for the builder package.
//
// Contract:
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//   • Constructors themselves MUST NOT panic.

package builder

import "github.com/katalvlaran/molpath/walk"

// Option customizes builderConfig before construction begins.
type Option func(*builderConfig)

// WithSymbol gives every atom the same symbol. Panics on "".
func WithSymbol(symbol string) Option {
	if symbol == "" {
		panic("builder: WithSymbol(\"\")")
	}
	return func(c *builderConfig) {
		c.symbolFn = func(int) string { return symbol }
	}
}

// WithSymbolScheme sets the local index -> symbol function. Panics on nil.
func WithSymbolScheme(fn func(int) string) Option {
	if fn == nil {
		panic("builder: WithSymbolScheme(nil)")
	}
	return func(c *builderConfig) {
		c.symbolFn = fn
	}
}

// WithMultiplicityScheme sets the local bond index -> multiplicity function.
// Panics on nil.
func WithMultiplicityScheme(fn func(int) int) Option {
	if fn == nil {
		panic("builder: WithMultiplicityScheme(nil)")
	}
	return func(c *builderConfig) {
		c.multiplicityFn = fn
	}
}

// WithAromatic flags every atom added by the constructors as aromatic.
func WithAromatic() Option {
	return func(c *builderConfig) {
		c.aromatic = true
	}
}

// Alternating is a multiplicity scheme: double on even bond indices, single
// on odd ones. On an even ring it yields a Kekulé structure.
func Alternating(i int) int {
	if i%2 == 0 {
		return walk.Double
	}
	return walk.Single
}

// Symbols returns a scheme cycling through symbols by local index.
// Panics on an empty list.
func Symbols(symbols ...string) func(int) string {
	if len(symbols) == 0 {
		panic("builder: Symbols()")
	}
	return func(i int) string {
		return symbols[i%len(symbols)]
	}
}
