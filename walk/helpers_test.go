// SPDX-License-Identifier: MIT
// Package walk_test contains shared fixtures for walk tests.

package walk_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molpath/builder"
	"github.com/katalvlaran/molpath/mol"
	"github.com/katalvlaran/molpath/walk"
)

// recorder is an Observer that logs every event as "<kind> <operand>".
// failOn, when set, makes the named event kind fail with errBoom.
type recorder struct {
	events []string
	failOn string
}

var errBoom = errors.New("boom")

func (r *recorder) log(kind string, v any) error {
	r.events = append(r.events, fmt.Sprintf("%s %v", kind, v))
	if kind == r.failOn {
		return errBoom
	}
	return nil
}

func (r *recorder) WalkStart(a walk.Atom) error { return r.log("start", a) }
func (r *recorder) AtomFound(a walk.Atom) error { return r.log("atom", a) }
func (r *recorder) BondFound(b walk.Bond) error { return r.log("bond", b) }
func (r *recorder) BranchStart(a walk.Atom) error { return r.log("branch+", a) }
func (r *recorder) BranchEnd(a walk.Atom) error { return r.log("branch-", a) }
func (r *recorder) RingClosed(b walk.Bond) error { return r.log("ring", b) }
func (r *recorder) WalkEnd(a walk.Atom) error { return r.log("end", a) }

// build runs builder.BuildMolecule and fails the test on error.
func build(t testing.TB, opts []builder.Option, cons ...builder.Constructor) *mol.Molecule {
	t.Helper()
	m, err := builder.BuildMolecule(opts, cons...)
	require.NoError(t, err)
	return m
}

// atomAt returns atom i of m and fails the test on error.
func atomAt(t testing.TB, m *mol.Molecule, i int) *mol.Atom {
	t.Helper()
	a, err := m.Atom(i)
	require.NoError(t, err)
	return a
}

// looseAtom is a model atom whose neighbor list may disagree with its bond
// list, for exercising ErrMissingBond.
type looseAtom struct {
	symbol string
	nbrs   []walk.Atom
}

func (a *looseAtom) Symbol() string { return a.symbol }
func (a *looseAtom) Neighbors() []walk.Atom { return a.nbrs }
func (a *looseAtom) Bonds() []walk.Bond { return nil }
func (a *looseAtom) IsConnectedTo(o walk.Atom) bool {
	for _, nb := range a.nbrs {
		if nb == o {
			return true
		}
	}
	return false
}
