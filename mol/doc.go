// SPDX-License-Identifier: MIT

// Package mol is an in-memory molecule graph: atoms with symbols joined by
// bonds with integer multiplicities. *Atom and *Bond satisfy walk.Atom and
// walk.Bond, so a Molecule can be walked and encoded directly.
//
// What:
//
//   - Molecule: undirected simple graph (no self-bonds, no parallel bonds)
//     that keeps atoms, bonds, per-atom neighbors and per-atom bonds in
//     insertion order. That order is the model order walks depend on.
//   - Aromatic flags: plain model data set via SetAromatic; AromaticAtoms
//     feeds encoders that mark aromatic atoms without scanning bonds.
//   - YAML documents: Decode/Unmarshal and MarshalYAML (gopkg.in/yaml.v3).
//   - Line fixtures: ParseLine("CC(=O)O"), parsed with participle.
//
// Concurrency:
//
//	A sync.RWMutex guards the molecule; accessors take the read lock.
//	Mutating a molecule while it is being walked is not supported.
//
// Complexity:
//
//   - AddAtom: O(1) amortized
//   - Connect: O(deg) duplicate check
//   - IsConnectedTo: O(deg)
package mol
