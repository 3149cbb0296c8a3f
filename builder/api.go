// SPDX-License-Identifier: MIT
// Package: molpath/builder
//
// api.go: public entry-point and constructor type for the builder package.
//
// Design contract (strict):
//   - One orchestrator: BuildMolecule(opts, cons...). Creates m, resolves cfg, runs cons in order.
//   - Constructors append atoms after whatever earlier constructors added; they
//     never bond to atoms they did not create.
//   - Determinism: same options and constructor order ⇒ identical molecules,
//     including atom neighbor order (and therefore walk order).
//   - Safety: never panic at build time; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/molpath/mol"
)

// Constructor applies a deterministic molecule mutation using the resolved
// builderConfig. Constructors MUST:
//   - Validate parameters early and return sentinel errors (no panics).
//   - Add atoms in ascending local index order and bonds in a documented order.
type Constructor func(m *mol.Molecule, cfg builderConfig) error

// BuildMolecule creates a new mol.Molecule, resolves the builder
// configuration from opts, and applies all constructors in order.
// Any constructor error is wrapped with "BuildMolecule: %w" and returned
// immediately; no partial cleanup is attempted.
//
// Complexity:
//   - Resolving options: O(len(opts)).
//   - Applying K constructors: Σ cost of each constructor.
//
// Errors:
//   - ErrConstructFailed for a nil constructor.
//   - Constructor sentinels (ErrTooFewAtoms) and mol sentinels, wrapped.
func BuildMolecule(opts []Option, cons ...Constructor) (*mol.Molecule, error) {
	m := mol.New()
	cfg := newBuilderConfig(opts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildMolecule: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(m, cfg); err != nil {
			return nil, fmt.Errorf("BuildMolecule: %w", err)
		}
	}

	return m, nil
}
