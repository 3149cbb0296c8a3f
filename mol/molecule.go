// SPDX-License-Identifier: MIT
// Package: molpath/mol
//
// molecule.go: atom/bond lifecycle and molecule-wide queries.
//
// Determinism:
//   - Atoms() and Bonds() return insertion order.
//   - Atom neighbor and bond lists follow Connect call order.
//
// Concurrency:
//   - All mutation under mu write lock; enumeration under mu read lock.

package mol

import (
	"fmt"

	"github.com/katalvlaran/molpath/walk"
)

// AddAtom appends a new atom with the given symbol.
//
// Errors:
//   - ErrEmptySymbol if symbol == "".
//
// Complexity: O(1) amortized.
func (m *Molecule) AddAtom(symbol string) (*Atom, error) {
	if symbol == "" {
		return nil, ErrEmptySymbol
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	a := &Atom{mol: m, index: len(m.atoms), symbol: symbol}
	m.atoms = append(m.atoms, a)

	return a, nil
}

// Connect bonds a and b with the given multiplicity. The new bond is appended
// to both atoms' bond lists, and each atom to the other's neighbor list.
//
// Errors:
//   - ErrNilAtom         if a or b is nil.
//   - ErrForeignAtom     if a or b belongs to another Molecule.
//   - ErrLoopNotAllowed  if a == b.
//   - ErrBadMultiplicity if multiplicity < 1.
//   - ErrBondExists      if a and b are already bonded.
//
// Complexity: O(deg(a)) for the duplicate check.
func (m *Molecule) Connect(a, b *Atom, multiplicity int) (*Bond, error) {
	// Stage 1: argument validation that needs no lock.
	if a == nil || b == nil {
		return nil, ErrNilAtom
	}
	if a.mol != m || b.mol != m {
		return nil, ErrForeignAtom
	}
	if a == b {
		return nil, fmt.Errorf("mol: Connect(%s#%d): %w", a.symbol, a.index, ErrLoopNotAllowed)
	}
	if multiplicity < 1 {
		return nil, fmt.Errorf("mol: Connect multiplicity=%d: %w", multiplicity, ErrBadMultiplicity)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	// Stage 2: simple-graph invariant.
	for _, nb := range a.nbrs {
		if nb == b {
			return nil, fmt.Errorf("mol: Connect(%d,%d): %w", a.index, b.index, ErrBondExists)
		}
	}

	// Stage 3: register on the molecule and on both endpoints.
	bond := &Bond{index: len(m.bonds), source: a, target: b, multiplicity: multiplicity}
	m.bonds = append(m.bonds, bond)
	a.nbrs = append(a.nbrs, b)
	a.bonds = append(a.bonds, bond)
	b.nbrs = append(b.nbrs, a)
	b.bonds = append(b.bonds, bond)

	return bond, nil
}

// Atom returns the atom at index i.
//
// Errors:
//   - ErrAtomNotFound if i is out of range.
func (m *Molecule) Atom(i int) (*Atom, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if i < 0 || i >= len(m.atoms) {
		return nil, fmt.Errorf("mol: Atom(%d): %w", i, ErrAtomNotFound)
	}

	return m.atoms[i], nil
}

// AtomCount returns the number of atoms.
func (m *Molecule) AtomCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.atoms)
}

// BondCount returns the number of bonds.
func (m *Molecule) BondCount() int {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return len(m.bonds)
}

// Atoms returns every atom in insertion order.
func (m *Molecule) Atoms() []walk.Atom {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]walk.Atom, len(m.atoms))
	for i, a := range m.atoms {
		out[i] = a
	}

	return out
}

// Bonds returns every bond in insertion order.
func (m *Molecule) Bonds() []walk.Bond {
	m.mu.RLock()
	defer m.mu.RUnlock()

	out := make([]walk.Bond, len(m.bonds))
	for i, b := range m.bonds {
		out[i] = b
	}

	return out
}

// SetAromatic flags or unflags a as aromatic. The flag is model data only;
// encoders read it through AromaticAtoms.
//
// Errors:
//   - ErrNilAtom, ErrForeignAtom.
func (m *Molecule) SetAromatic(a *Atom, aromatic bool) error {
	if a == nil {
		return ErrNilAtom
	}
	if a.mol != m {
		return ErrForeignAtom
	}

	m.mu.Lock()
	a.aromatic = aromatic
	m.mu.Unlock()

	return nil
}

// AromaticAtoms returns the atoms flagged aromatic, in insertion order.
func (m *Molecule) AromaticAtoms() []walk.Atom {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []walk.Atom
	for _, a := range m.atoms {
		if a.aromatic {
			out = append(out, a)
		}
	}

	return out
}
