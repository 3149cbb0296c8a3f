// SPDX-License-Identifier: MIT

package pathwriter_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molpath/builder"
	"github.com/katalvlaran/molpath/pathwriter"
	"github.com/katalvlaran/molpath/walk"
)

const (
	chain3 = `
atoms: [C, C, C]
bonds: [[0, 1], [1, 2]]
`
	triangle = `
atoms: [C, C, C]
bonds: [[0, 1], [1, 2], [2, 0]]
`
)

func TestWriter_Chain(t *testing.T) {
	f := load(t, chain3)
	var got pathwriter.Records

	feedPath(t, pathwriter.New(&got), f, 0, 1, 2)
	assert.Equal(t, pathwriter.Records{"C", "CC", "CCC"}, got)
}

func TestWriter_RingClosure(t *testing.T) {
	f := load(t, triangle)
	var got pathwriter.Records
	w := pathwriter.New(&got)

	require.NoError(t, w.WalkStart(f.atom(0)))
	require.NoError(t, w.AtomFound(f.atom(0)))
	require.NoError(t, w.BondFound(f.bond(0, 1)))
	require.NoError(t, w.AtomFound(f.atom(1)))
	require.NoError(t, w.BondFound(f.bond(1, 2)))
	require.NoError(t, w.AtomFound(f.atom(2)))
	require.NoError(t, w.RingClosed(f.bond(2, 0)))
	assert.Equal(t, pathwriter.Records{"C", "CC", "CCC", "CCC-3"}, got)

	// Nothing new since the ring flush.
	require.NoError(t, w.WalkEnd(f.atom(0)))
	assert.Len(t, got, 4)
}

func TestWriter_Branch(t *testing.T) {
	f := load(t, `
atoms: [C, C, C, C]
bonds: [[0, 1], [1, 2], [0, 3]]
`)
	var got pathwriter.Records
	w := pathwriter.New(&got)

	require.NoError(t, w.WalkStart(f.atom(0)))
	require.NoError(t, w.AtomFound(f.atom(0)))
	require.NoError(t, w.BondFound(f.bond(0, 1)))
	require.NoError(t, w.AtomFound(f.atom(1)))
	require.NoError(t, w.BondFound(f.bond(1, 2)))
	require.NoError(t, w.AtomFound(f.atom(2)))
	require.NoError(t, w.BranchStart(f.atom(0)))
	require.NoError(t, w.BondFound(f.bond(0, 3)))
	require.NoError(t, w.AtomFound(f.atom(3)))
	require.NoError(t, w.BranchEnd(f.atom(0)))
	require.NoError(t, w.WalkEnd(f.atom(0)))

	assert.Equal(t, pathwriter.Records{"C", "CC", "CCC", "C", "CC"}, got)
}

func TestWriter_Markers(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		path []int
		want pathwriter.Records
	}{
		{
			name: "double bond first",
			doc:  "atoms: [C, C, C]\nbonds: [[0, 1, 2], [1, 2]]\n",
			path: []int{0, 1, 2},
			want: pathwriter.Records{"C", "C%", "C%C%", "C%C%C"},
		},
		{
			name: "double bond second",
			doc:  "atoms: [C, C, C]\nbonds: [[0, 1], [1, 2, 2]]\n",
			path: []int{0, 1, 2},
			want: pathwriter.Records{"C", "CC", "CC%", "CC%C%"},
		},
		{
			name: "triple bond",
			doc:  "atoms: [N, C]\nbonds: [[0, 1, 3]]\n",
			path: []int{0, 1},
			want: pathwriter.Records{"N#", "N#C#"},
		},
		{
			name: "quadruple bond is unmarked",
			doc:  "atoms: [C, C]\nbonds: [[0, 1, 4]]\n",
			path: []int{0, 1},
			want: pathwriter.Records{"C", "CC"},
		},
		{
			name: "double bond off the path",
			doc:  "atoms: [C, O]\nbonds: [[0, 1, 2]]\n",
			path: []int{0},
			want: pathwriter.Records{"C"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := load(t, tc.doc)
			var got pathwriter.Records

			feedPath(t, pathwriter.New(&got), f, tc.path...)
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("records mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriter_AromaticOverride(t *testing.T) {
	f := load(t, "atoms: [C, C, C]\nbonds: [[0, 1, 2], [1, 2]]\n")
	var got pathwriter.Records
	w := pathwriter.New(&got)
	w.SetAromatics(f.atom(0))

	feedPath(t, w, f, 0, 1, 2)
	assert.Equal(t, pathwriter.Records{"C%", "C%C%", "C%C%C"}, got)

	// Replacing the set drops the override.
	got = nil
	w.SetAromatics()
	feedPath(t, w, f, 0, 1, 2)
	assert.Equal(t, pathwriter.Records{"C", "C%", "C%C%", "C%C%C"}, got)
}

// TestWriter_DoubleBondBackToStart: the closing double bond O=C is the last
// bond on the path, so C is marked, and O's double bond leads back to the
// first atom, so no extra record is written.
func TestWriter_DoubleBondBackToStart(t *testing.T) {
	f := load(t, "atoms: [C, N, O]\nbonds: [[0, 1], [1, 2], [2, 0, 2]]\n")
	var got pathwriter.Records
	w := pathwriter.New(&got)

	require.NoError(t, w.WalkStart(f.atom(0)))
	require.NoError(t, w.AtomFound(f.atom(0)))
	require.NoError(t, w.BondFound(f.bond(0, 1)))
	require.NoError(t, w.AtomFound(f.atom(1)))
	require.NoError(t, w.BondFound(f.bond(1, 2)))
	require.NoError(t, w.AtomFound(f.atom(2)))
	require.NoError(t, w.BondFound(f.bond(2, 0)))
	require.NoError(t, w.WalkEnd(f.atom(0)))

	assert.Equal(t, pathwriter.Records{"C%", "C%N", "C%NO%"}, got)
}

func TestWriter_ProtocolErrors(t *testing.T) {
	f := load(t, chain3)

	t.Run("atom without bond", func(t *testing.T) {
		w := pathwriter.New(nil)
		require.NoError(t, w.AtomFound(f.atom(0)))
		assert.ErrorIs(t, w.AtomFound(f.atom(1)), pathwriter.ErrAtomWithoutBond)
	})

	t.Run("branch from missing atom", func(t *testing.T) {
		w := pathwriter.New(nil)
		require.NoError(t, w.AtomFound(f.atom(0)))
		assert.ErrorIs(t, w.BranchStart(f.atom(2)), pathwriter.ErrBranchFromMissingAtom)
	})

	t.Run("close empty path", func(t *testing.T) {
		w := pathwriter.New(nil)
		assert.ErrorIs(t, w.RingClosed(f.bond(0, 1)), pathwriter.ErrCloseEmptyPath)
	})

	t.Run("close to atom off the path", func(t *testing.T) {
		w := pathwriter.New(nil)
		require.NoError(t, w.AtomFound(f.atom(0)))
		require.NoError(t, w.BondFound(f.bond(0, 1)))
		require.NoError(t, w.AtomFound(f.atom(1)))
		assert.ErrorIs(t, w.RingClosed(f.bond(1, 2)), pathwriter.ErrCloseMissingAtom)
	})

	t.Run("close over bond not touching the last atom", func(t *testing.T) {
		w := pathwriter.New(nil)
		require.NoError(t, w.AtomFound(f.atom(0)))
		assert.ErrorIs(t, w.RingClosed(f.bond(1, 2)), pathwriter.ErrCloseMissingAtom)
	})

	t.Run("ring of two", func(t *testing.T) {
		w := pathwriter.New(nil)
		require.NoError(t, w.AtomFound(f.atom(0)))
		require.NoError(t, w.BondFound(f.bond(0, 1)))
		require.NoError(t, w.AtomFound(f.atom(1)))
		assert.ErrorIs(t, w.RingClosed(f.bond(0, 1)), pathwriter.ErrRingTooSmall)
	})

	t.Run("ring of one", func(t *testing.T) {
		w := pathwriter.New(nil)
		require.NoError(t, w.AtomFound(f.atom(0)))
		assert.ErrorIs(t, w.RingClosed(loopBond{}), pathwriter.ErrRingTooSmall)
	})
}

func TestWriter_WalkStartResets(t *testing.T) {
	f := load(t, chain3)
	var got pathwriter.Records
	w := pathwriter.New(&got)

	// An abandoned walk leaves a pending path behind.
	require.NoError(t, w.WalkStart(f.atom(0)))
	require.NoError(t, w.AtomFound(f.atom(0)))
	require.NoError(t, w.BondFound(f.bond(0, 1)))
	require.NoError(t, w.AtomFound(f.atom(1)))

	feedPath(t, w, f, 2, 1)
	assert.Equal(t, pathwriter.Records{"C", "CC"}, got)
}

func TestWriter_Outputs(t *testing.T) {
	f := load(t, chain3)

	// Nil sink discards.
	w := pathwriter.New(nil)
	feedPath(t, w, f, 0, 1)

	var first, second pathwriter.Records
	w.SetOutput(&first)
	feedPath(t, w, f, 0, 1)
	w.SetOutput(&second)
	feedPath(t, w, f, 1, 2)
	assert.Equal(t, pathwriter.Records{"C", "CC"}, first)
	assert.Equal(t, pathwriter.Records{"C", "CC"}, second)

	n := 0
	w.SetOutput(pathwriter.SinkFunc(func(string) { n++ }))
	feedPath(t, w, f, 0, 1, 2)
	assert.Equal(t, 3, n)
}

func TestWriter_WithWalk(t *testing.T) {
	tests := []struct {
		name string
		doc  string
		opts []walk.Option
		want pathwriter.Records
	}{
		{
			name: "chain",
			doc:  chain3,
			want: pathwriter.Records{"C", "CC", "CCC"},
		},
		{
			name: "triangle",
			doc:  triangle,
			want: pathwriter.Records{"C", "CC", "CCC", "CCC-3"},
		},
		{
			name: "branch then ring",
			doc:  "atoms: [C, N, O, S]\nbonds: [[0, 1], [1, 2], [2, 0], [1, 3]]\n",
			want: pathwriter.Records{"C", "CO", "CON", "CONS", "C", "CO", "CON", "CON-3"},
		},
		{
			name: "four-ring cut at depth two",
			doc:  "atoms: [C, C, C, C]\nbonds: [[0, 1], [1, 2], [2, 3], [3, 0]]\n",
			opts: []walk.Option{walk.WithMaxDepth(2)},
			want: pathwriter.Records{"C", "CC", "CCC", "C", "CC"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := load(t, tc.doc)
			var got pathwriter.Records

			require.NoError(t, walk.Walk(f.atom(0), pathwriter.New(&got), tc.opts...))
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Errorf("records mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestWriter_WithBuilder(t *testing.T) {
	m, err := builder.BuildMolecule(
		[]builder.Option{builder.WithSymbolScheme(builder.Symbols("N", "C", "O"))},
		builder.Star(3),
	)
	require.NoError(t, err)
	root, err := m.Atom(0)
	require.NoError(t, err)

	var got pathwriter.Records
	require.NoError(t, walk.Walk(root, pathwriter.New(&got)))
	assert.Equal(t, pathwriter.Records{"N", "NO", "N", "NC"}, got)
}
