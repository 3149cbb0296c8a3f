// SPDX-License-Identifier: MIT

package walk_test

import (
	"bytes"
	"context"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molpath/builder"
	"github.com/katalvlaran/molpath/mol"
	"github.com/katalvlaran/molpath/walk"
)

func TestWalk_NilInputs(t *testing.T) {
	m := build(t, nil, builder.Chain(1))

	assert.ErrorIs(t, walk.Walk(nil, &recorder{}), walk.ErrNilAtom)
	assert.ErrorIs(t, walk.Walk(atomAt(t, m, 0), nil), walk.ErrNilObserver)
}

func TestWalk_SingleAtom(t *testing.T) {
	m := build(t, nil, builder.Chain(1))
	rec := &recorder{}

	require.NoError(t, walk.Walk(atomAt(t, m, 0), rec))
	assert.Equal(t, []string{"start C#0", "atom C#0", "end C#0"}, rec.events)
}

func TestWalk_Chain(t *testing.T) {
	m := build(t, nil, builder.Chain(3))
	rec := &recorder{}

	require.NoError(t, walk.Walk(atomAt(t, m, 0), rec))
	assert.Equal(t, []string{
		"start C#0",
		"atom C#0",
		"bond C#0-C#1(1)",
		"atom C#1",
		"bond C#1-C#2(1)",
		"atom C#2",
		"end C#0",
	}, rec.events)
}

// TestWalk_Triangle walks C0's neighbors last-first (C2 before C1) and
// closes the ring from C1 back to C0.
func TestWalk_Triangle(t *testing.T) {
	m := build(t, nil, builder.Ring(3))
	rec := &recorder{}

	require.NoError(t, walk.Walk(atomAt(t, m, 0), rec))
	assert.Equal(t, []string{
		"start C#0",
		"atom C#0",
		"bond C#2-C#0(1)",
		"atom C#2",
		"bond C#1-C#2(1)",
		"atom C#1",
		"ring C#0-C#1(1)",
		"end C#0",
	}, rec.events)
}

// TestWalk_BranchMarkers checks that the second step out of the center is
// wrapped in BranchStart/BranchEnd and the first one is not.
func TestWalk_BranchMarkers(t *testing.T) {
	m := build(t, []builder.Option{builder.WithSymbolScheme(builder.Symbols("N", "C", "O"))}, builder.Star(3))
	rec := &recorder{}

	require.NoError(t, walk.Walk(atomAt(t, m, 0), rec))
	assert.Equal(t, []string{
		"start N#0",
		"atom N#0",
		"bond N#0-O#2(1)",
		"atom O#2",
		"branch+ N#0",
		"bond N#0-C#1(1)",
		"atom C#1",
		"branch- N#0",
		"end N#0",
	}, rec.events)
}

// TestWalk_RingClosedAfterBranch uses a triangle C0,N1,O2 with a tail S3 on
// N1. N1 first descends into S3, then closes the ring inside a branch.
func TestWalk_RingClosedAfterBranch(t *testing.T) {
	m, err := mol.Unmarshal([]byte(`
atoms: [C, N, O, S]
bonds:
  - [0, 1]
  - [1, 2]
  - [2, 0]
  - [1, 3]
`))
	require.NoError(t, err)
	rec := &recorder{}

	require.NoError(t, walk.Walk(atomAt(t, m, 0), rec))
	assert.Equal(t, []string{
		"start C#0",
		"atom C#0",
		"bond O#2-C#0(1)",
		"atom O#2",
		"bond N#1-O#2(1)",
		"atom N#1",
		"bond N#1-S#3(1)",
		"atom S#3",
		"branch+ N#1",
		"ring C#0-N#1(1)",
		"branch- N#1",
		"end C#0",
	}, rec.events)
}

func TestWalk_MaxDepth(t *testing.T) {
	m := build(t, nil, builder.Chain(4))

	rec := &recorder{}
	require.NoError(t, walk.Walk(atomAt(t, m, 0), rec, walk.WithMaxDepth(0)))
	assert.Equal(t, []string{"start C#0", "atom C#0", "end C#0"}, rec.events)

	rec = &recorder{}
	require.NoError(t, walk.Walk(atomAt(t, m, 0), rec, walk.WithMaxDepth(1)))
	assert.Equal(t, []string{
		"start C#0",
		"atom C#0",
		"bond C#0-C#1(1)",
		"atom C#1",
		"end C#0",
	}, rec.events)
}

// TestWalk_DepthLimitSkipsFinishedAtoms walks a 4-ring to depth 2. C1 is
// cut off below C2, later reached from C0, and its bond back to the
// finished C2 must not be reported as a ring.
func TestWalk_DepthLimitSkipsFinishedAtoms(t *testing.T) {
	m := build(t, nil, builder.Ring(4))
	rec := &recorder{}

	require.NoError(t, walk.Walk(atomAt(t, m, 0), rec, walk.WithMaxDepth(2)))
	assert.Equal(t, []string{
		"start C#0",
		"atom C#0",
		"bond C#3-C#0(1)",
		"atom C#3",
		"bond C#2-C#3(1)",
		"atom C#2",
		"branch+ C#0",
		"bond C#0-C#1(1)",
		"atom C#1",
		"branch- C#0",
		"end C#0",
	}, rec.events)
}

func TestWalk_InheritModeRejectsDeepSteps(t *testing.T) {
	chain := build(t, nil, builder.Chain(3))
	err := walk.Walk(atomAt(t, chain, 0), &recorder{}, walk.WithPathMode(walk.PathInherit))
	assert.ErrorIs(t, err, walk.ErrNotAdjacent)

	// Every atom of a triangle touches the root, so inherit mode succeeds.
	ring := build(t, nil, builder.Ring(3))
	rec := &recorder{}
	require.NoError(t, walk.Walk(atomAt(t, ring, 0), rec, walk.WithPathMode(walk.PathInherit)))
	assert.Contains(t, rec.events, "ring C#0-C#1(1)")
}

func TestWalk_MissingBond(t *testing.T) {
	a := &looseAtom{symbol: "A"}
	b := &looseAtom{symbol: "B", nbrs: []walk.Atom{a}}
	a.nbrs = []walk.Atom{b}

	err := walk.Walk(a, &recorder{})
	assert.ErrorIs(t, err, walk.ErrMissingBond)
}

func TestWalk_ObserverErrorAborts(t *testing.T) {
	m := build(t, nil, builder.Chain(3))

	for _, kind := range []string{"start", "atom", "bond", "end"} {
		t.Run(kind, func(t *testing.T) {
			rec := &recorder{failOn: kind}
			err := walk.Walk(atomAt(t, m, 0), rec)
			assert.ErrorIs(t, err, errBoom)
			assert.Equal(t, kind, rec.events[len(rec.events)-1][:len(kind)])
		})
	}
}

func TestWalk_ObserverBranchAndRingErrors(t *testing.T) {
	star := build(t, nil, builder.Star(3))
	for _, kind := range []string{"branch+", "branch-"} {
		err := walk.Walk(atomAt(t, star, 0), &recorder{failOn: kind})
		assert.ErrorIs(t, err, errBoom, kind)
	}

	ring := build(t, nil, builder.Ring(3))
	err := walk.Walk(atomAt(t, ring, 0), &recorder{failOn: "ring"})
	assert.ErrorIs(t, err, errBoom)
}

func TestWalk_ContextCanceled(t *testing.T) {
	m := build(t, nil, builder.Chain(3))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	rec := &recorder{}
	err := walk.Walk(atomAt(t, m, 0), rec, walk.WithContext(ctx))
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, []string{"start C#0", "atom C#0"}, rec.events)
}

func TestWalk_LogsRingClosure(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
	m := build(t, nil, builder.Ring(3))

	require.NoError(t, walk.Walk(atomAt(t, m, 0), &recorder{}, walk.WithLogger(logger)))
	out := buf.String()
	assert.Contains(t, out, "walk start")
	assert.Contains(t, out, `msg="ring closed" from=C to=C depth=2`)
	assert.Contains(t, out, "walk end")
}

func TestDefaultOptions(t *testing.T) {
	o := walk.DefaultOptions()
	assert.Equal(t, -1, o.MaxDepth)
	assert.Equal(t, walk.PathExtend, o.PathMode)
	assert.NotNil(t, o.Ctx)
	assert.NotNil(t, o.Logger)
}

func TestBondBetween(t *testing.T) {
	m := build(t, nil, builder.Chain(3))
	a0, a1, a2 := atomAt(t, m, 0), atomAt(t, m, 1), atomAt(t, m, 2)

	b := walk.BondBetween(a0, a1)
	require.NotNil(t, b)
	assert.Equal(t, walk.Atom(a1), b.Mate(a0))
	assert.Nil(t, walk.BondBetween(a0, a2))
	assert.Nil(t, walk.BondBetween(nil, a0))
	assert.Equal(t, []string{"C", "C", "C"}, walk.Symbols([]walk.Atom{a0, a1, a2}))
}
