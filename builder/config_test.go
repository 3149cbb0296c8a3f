// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/molpath/builder"
	"github.com/katalvlaran/molpath/walk"
)

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithSymbol("") })
	assert.Panics(t, func() { builder.WithSymbolScheme(nil) })
	assert.Panics(t, func() { builder.WithMultiplicityScheme(nil) })
	assert.Panics(t, func() { builder.Symbols() })
}

func TestSchemes(t *testing.T) {
	assert.Equal(t, walk.Double, builder.Alternating(0))
	assert.Equal(t, walk.Single, builder.Alternating(1))
	assert.Equal(t, walk.Double, builder.Alternating(4))

	sym := builder.Symbols("C", "N", "O")
	assert.Equal(t, []string{"C", "N", "O", "C"}, []string{sym(0), sym(1), sym(2), sym(3)})
}

// TestOptions_LastWins checks that later options override earlier ones.
func TestOptions_LastWins(t *testing.T) {
	m, err := builder.BuildMolecule([]builder.Option{
		builder.WithSymbol("N"),
		builder.WithSymbol("O"),
	}, builder.Chain(1))
	assert.NoError(t, err)

	a, err := m.Atom(0)
	assert.NoError(t, err)
	assert.Equal(t, "O", a.Symbol())
}
