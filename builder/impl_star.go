// SPDX-License-Identifier: MIT
// Package: molpath/builder
//
// impl_star.go: implementation of Star(n) constructor.
//
// Contract:
//   • n ≥ 2 (else ErrTooFewAtoms).
//   • Local atom 0 is the center; atoms 1..n-1 are leaves.
//   • Emits bonds 0→i for i=1..n-1; bond k=i-1 uses cfg.multiplicityFn(k).
//
// Complexity: O(n) atoms + O(n) bonds.

package builder

import (
	"fmt"

	"github.com/katalvlaran/molpath/mol"
)

const (
	methodStar   = "Star"
	minStarAtoms = 2
)

// Star returns a Constructor that builds a center atom with n-1 leaves.
func Star(n int) Constructor {
	return func(m *mol.Molecule, cfg builderConfig) error {
		if n < minStarAtoms {
			return fmt.Errorf("%s: n=%d < min=%d: %w", methodStar, n, minStarAtoms, ErrTooFewAtoms)
		}

		atoms, err := addAtoms(methodStar, m, cfg, n)
		if err != nil {
			return err
		}

		for i := 1; i < n; i++ {
			if err = connect(methodStar, m, cfg, i-1, atoms[0], atoms[i]); err != nil {
				return err
			}
		}

		return nil
	}
}
