// SPDX-License-Identifier: MIT

// Package builder assembles deterministic molecule fixtures from small
// topology constructors, in the functional-options style.
//
//   - BuildMolecule(opts, cons...) runs constructors in order on a fresh
//     mol.Molecule; each constructor adds its own atoms after earlier ones.
//   - Constructors: Chain(n), Ring(n), Star(n).
//   - Options: WithSymbol, WithSymbolScheme, WithMultiplicityScheme,
//     WithAromatic. Helpers Alternating and Symbols are ready-made schemes.
//
// Because constructors emit bonds in a fixed order, the neighbor order of
// every atom, and with it the order a walk visits them, is stable across
// runs.
//
// Errors: ErrTooFewAtoms, ErrConstructFailed (wrapping mol sentinels).
package builder
