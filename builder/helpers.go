// SPDX-License-Identifier: MIT
// Package: molpath/builder
//
// helpers.go: shared atom/bond emission for constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/molpath/mol"
)

// addAtoms appends n atoms named by cfg.symbolFn and applies the aromatic
// flag. Returned slice is indexed by local index.
func addAtoms(method string, m *mol.Molecule, cfg builderConfig, n int) ([]*mol.Atom, error) {
	atoms := make([]*mol.Atom, n)
	for i := 0; i < n; i++ {
		sym := cfg.symbolFn(i)
		a, err := m.AddAtom(sym)
		if err != nil {
			return nil, fmt.Errorf("%s: AddAtom(%q): %w: %w", method, sym, ErrConstructFailed, err)
		}
		if cfg.aromatic {
			if err = m.SetAromatic(a, true); err != nil {
				return nil, fmt.Errorf("%s: SetAromatic(%d): %w: %w", method, i, ErrConstructFailed, err)
			}
		}
		atoms[i] = a
	}

	return atoms, nil
}

// connect bonds a and b with cfg.multiplicityFn(k), k being the local bond
// index.
func connect(method string, m *mol.Molecule, cfg builderConfig, k int, a, b *mol.Atom) error {
	mult := cfg.multiplicityFn(k)
	if _, err := m.Connect(a, b, mult); err != nil {
		return fmt.Errorf("%s: Connect(%s,%s,%d): %w: %w", method, a, b, mult, ErrConstructFailed, err)
	}

	return nil
}
