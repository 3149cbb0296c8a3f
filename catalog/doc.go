// SPDX-License-Identifier: MIT

// Package catalog persists named fingerprints in a Badger key-value store and
// answers screening queries against them.
//
// What:
//
//   - Put/Get/Delete/Len: named fingerprints, one key per name.
//   - Screen(q): names whose fingerprint may contain q's structure
//     (every bit of q set), in name order.
//   - Similar(q, threshold, limit): names ranked by Tanimoto score.
//
// A catalog holds fingerprints of a single width, fixed when it is first
// opened and checked on every later Open and Put.
//
// Keys:
//
//	meta/size   uvarint width in bits
//	fp/<name>   uvarint width, then the fingerprint words little-endian
//
// Errors:
//
//   - ErrNoLocation   neither a directory nor in-memory mode was chosen
//   - ErrEmptyName    Put/Get/Delete with ""
//   - ErrNotFound     Get/Delete of an unknown name
//   - ErrCorrupt      a stored value does not decode
//   - fingerprint.ErrSizeMismatch for a width other than the catalog's
//
// Complexity: Screen and Similar scan every stored fingerprint, O(N·Size/64).
package catalog
