// SPDX-License-Identifier: MIT

package pathwriter_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molpath/mol"
	"github.com/katalvlaran/molpath/walk"
)

// fixture is a decoded molecule with short accessors.
type fixture struct {
	t *testing.T
	m *mol.Molecule
}

func load(t *testing.T, doc string) fixture {
	t.Helper()
	m, err := mol.Unmarshal([]byte(doc))
	require.NoError(t, err)
	return fixture{t: t, m: m}
}

func (f fixture) atom(i int) walk.Atom {
	f.t.Helper()
	a, err := f.m.Atom(i)
	require.NoError(f.t, err)
	return a
}

func (f fixture) bond(i, j int) walk.Bond {
	f.t.Helper()
	b := walk.BondBetween(f.atom(i), f.atom(j))
	require.NotNil(f.t, b)
	return b
}

// feedPath streams WalkStart, the path through atom indices idx, and WalkEnd.
func feedPath(t *testing.T, obs walk.Observer, f fixture, idx ...int) {
	t.Helper()
	require.NoError(t, obs.WalkStart(f.atom(idx[0])))
	require.NoError(t, obs.AtomFound(f.atom(idx[0])))
	for k := 1; k < len(idx); k++ {
		require.NoError(t, obs.BondFound(f.bond(idx[k-1], idx[k])))
		require.NoError(t, obs.AtomFound(f.atom(idx[k])))
	}
	require.NoError(t, obs.WalkEnd(f.atom(idx[0])))
}

// loopBond is a malformed bond whose far end is always the atom asked about.
type loopBond struct{}

func (loopBond) Multiplicity() int { return walk.Single }
func (loopBond) Mate(a walk.Atom) walk.Atom { return a }
