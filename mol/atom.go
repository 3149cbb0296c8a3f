// SPDX-License-Identifier: MIT
// Package: molpath/mol
//
// atom.go: Atom and Bond accessors; both types satisfy walk.Atom / walk.Bond.

package mol

import (
	"fmt"

	"github.com/katalvlaran/molpath/walk"
)

var (
	_ walk.Atom = (*Atom)(nil)
	_ walk.Bond = (*Bond)(nil)
)

// Index returns the atom's position in its Molecule.
func (a *Atom) Index() int { return a.index }

// Symbol returns the atom's display symbol.
func (a *Atom) Symbol() string { return a.symbol }

// Aromatic reports whether the atom carries the aromatic flag.
func (a *Atom) Aromatic() bool {
	a.mol.mu.RLock()
	defer a.mol.mu.RUnlock()

	return a.aromatic
}

// Neighbors returns adjacent atoms in bonding order.
func (a *Atom) Neighbors() []walk.Atom {
	a.mol.mu.RLock()
	defer a.mol.mu.RUnlock()

	out := make([]walk.Atom, len(a.nbrs))
	for i, nb := range a.nbrs {
		out[i] = nb
	}

	return out
}

// Bonds returns incident bonds in bonding order.
func (a *Atom) Bonds() []walk.Bond {
	a.mol.mu.RLock()
	defer a.mol.mu.RUnlock()

	out := make([]walk.Bond, len(a.bonds))
	for i, b := range a.bonds {
		out[i] = b
	}

	return out
}

// IsConnectedTo reports whether other is bonded to a. Atoms of other models
// are never connected.
func (a *Atom) IsConnectedTo(other walk.Atom) bool {
	o, ok := other.(*Atom)
	if !ok || o == nil {
		return false
	}

	a.mol.mu.RLock()
	defer a.mol.mu.RUnlock()

	for _, nb := range a.nbrs {
		if nb == o {
			return true
		}
	}

	return false
}

// String renders the atom as symbol#index.
func (a *Atom) String() string {
	return fmt.Sprintf("%s#%d", a.symbol, a.index)
}

// Index returns the bond's position in its Molecule.
func (b *Bond) Index() int { return b.index }

// Multiplicity returns the bond order.
func (b *Bond) Multiplicity() int { return b.multiplicity }

// Source returns the first atom passed to Connect.
func (b *Bond) Source() *Atom { return b.source }

// Target returns the second atom passed to Connect.
func (b *Bond) Target() *Atom { return b.target }

// Mate returns the endpoint opposite atom, or nil if atom is not an endpoint.
func (b *Bond) Mate(atom walk.Atom) walk.Atom {
	a, ok := atom.(*Atom)
	if !ok {
		return nil
	}
	switch a {
	case b.source:
		return b.target
	case b.target:
		return b.source
	default:
		return nil
	}
}

// String renders the bond as source-target with its multiplicity.
func (b *Bond) String() string {
	return fmt.Sprintf("%s-%s(%d)", b.source, b.target, b.multiplicity)
}
