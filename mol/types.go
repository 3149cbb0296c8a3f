// SPDX-License-Identifier: MIT
// Package: molpath/mol
//
// types.go: Molecule, Atom and Bond declarations, sentinel errors and the
// New constructor.
//
// Errors:
//
//	ErrEmptySymbol      - atom symbol is the empty string.
//	ErrNilAtom          - atom pointer is nil.
//	ErrForeignAtom      - atom belongs to another Molecule.
//	ErrLoopNotAllowed   - bond from an atom to itself.
//	ErrBondExists       - second bond between the same pair of atoms.
//	ErrBadMultiplicity  - multiplicity below 1.
//	ErrAtomNotFound     - index outside the atom list.
//	ErrBadDocument      - YAML document references missing atoms or is malformed.

package mol

import (
	"errors"
	"sync"
)

// Sentinel errors for molecule construction and lookup.
var (
	// ErrEmptySymbol indicates AddAtom was called with an empty symbol.
	ErrEmptySymbol = errors.New("mol: atom symbol is empty")

	// ErrNilAtom indicates a nil *Atom was passed where an atom is required.
	ErrNilAtom = errors.New("mol: atom is nil")

	// ErrForeignAtom indicates an atom owned by a different Molecule.
	ErrForeignAtom = errors.New("mol: atom belongs to another molecule")

	// ErrLoopNotAllowed indicates a bond from an atom to itself.
	ErrLoopNotAllowed = errors.New("mol: self-bond not allowed")

	// ErrBondExists indicates a second bond between the same two atoms.
	ErrBondExists = errors.New("mol: atoms already bonded")

	// ErrBadMultiplicity indicates a bond multiplicity below 1.
	ErrBadMultiplicity = errors.New("mol: bond multiplicity must be positive")

	// ErrAtomNotFound indicates an atom index outside [0, AtomCount()).
	ErrAtomNotFound = errors.New("mol: atom not found")

	// ErrBadDocument indicates a YAML molecule document that cannot be built.
	ErrBadDocument = errors.New("mol: bad molecule document")
)

// Atom is a vertex of a Molecule. Atoms are created by Molecule.AddAtom and
// compared by identity.
type Atom struct {
	mol      *Molecule
	index    int     // position in mol.atoms
	symbol   string  // display symbol
	aromatic bool    // aromatic override flag
	nbrs     []*Atom // neighbors in bonding order
	bonds    []*Bond // incident bonds in bonding order
}

// Bond is an edge of a Molecule joining two distinct atoms.
type Bond struct {
	index        int // position in mol.bonds
	source       *Atom
	target       *Atom
	multiplicity int
}

// Molecule is an undirected simple graph of atoms and bonds.
//
// Atoms and bonds keep insertion order; each atom lists its neighbors and
// bonds in the order they were connected. mu guards every slice; the walk
// contract methods on Atom take the read lock.
type Molecule struct {
	mu    sync.RWMutex
	atoms []*Atom
	bonds []*Bond
}

// New returns an empty Molecule.
// Complexity: O(1)
func New() *Molecule {
	return &Molecule{}
}
