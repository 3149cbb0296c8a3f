// SPDX-License-Identifier: MIT
// Package: molpath/builder
//
// impl_chain.go: implementation of Chain(n) constructor.
//
// Contract:
//   • n ≥ 1 (else ErrTooFewAtoms).
//   • Adds atoms 0..n-1 via cfg.symbolFn.
//   • Emits bonds (i-1)→i for i=1..n-1; bond k uses cfg.multiplicityFn(k).
//
// Complexity: O(n) atoms + O(n) bonds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/molpath/mol"
)

const (
	methodChain   = "Chain"
	minChainAtoms = 1
)

// Chain returns a Constructor that builds a linear chain of n atoms.
func Chain(n int) Constructor {
	return func(m *mol.Molecule, cfg builderConfig) error {
		if n < minChainAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodChain, n, minChainAtoms, ErrTooFewAtoms)
		}

		atoms, err := addAtoms(methodChain, m, cfg, n)
		if err != nil {
			return err
		}

		// Bond k joins atoms k and k+1.
		for k := 0; k+1 < n; k++ {
			if err = connect(methodChain, m, cfg, k, atoms[k], atoms[k+1]); err != nil {
				return err
			}
		}

		return nil
	}
}
