// SPDX-License-Identifier: MIT
// Package: molpath/builder
//
// impl_ring.go: implementation of Ring(n) constructor.
//
// Contract:
//   • n ≥ 3 (else ErrTooFewAtoms).
//   • Adds atoms 0..n-1 via cfg.symbolFn.
//   • Emits bonds k→k+1 for k=0..n-2, then the closing bond n-1→0 (k=n-1).
//     Atom 0 therefore lists atom 1 before atom n-1 as neighbors.
//
// Complexity: O(n) atoms + O(n) bonds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/molpath/mol"
)

const (
	methodRing   = "Ring"
	minRingAtoms = 3
)

// Ring returns a Constructor that builds a simple ring of n atoms.
func Ring(n int) Constructor {
	return func(m *mol.Molecule, cfg builderConfig) error {
		if n < minRingAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodRing, n, minRingAtoms, ErrTooFewAtoms)
		}

		atoms, err := addAtoms(methodRing, m, cfg, n)
		if err != nil {
			return err
		}

		for k := 0; k < n; k++ {
			if err = connect(methodRing, m, cfg, k, atoms[k], atoms[(k+1)%n]); err != nil {
				return err
			}
		}

		return nil
	}
}
