// SPDX-License-Identifier: MIT

// Package fingerprint hashes the path records of a structure into a
// fixed-width bit set.
//
// Compute walks from every atom of a Structure with walk.Walk (depth
// limited), encodes each walk with a pathwriter.Writer, and sets bit
// xxhash64(record) mod Size for every record written. Two structures that
// share a substructure share its records, so a query's bits being a subset
// of a target's bits (Contains) is a cheap screen before an exact match, and
// Tanimoto gives a similarity score.
//
// ComputeAll fingerprints many structures concurrently (errgroup, bounded
// by WithWorkers). Words and FromWords move a fingerprint in and out of its
// raw 64-bit words for storage.
//
// Defaults: Size 1024 bits, Depth 7 bonds, GOMAXPROCS workers.
//
// Errors:
//
//   - ErrNilStructure   Compute/Paths called with nil
//   - ErrSizeMismatch   comparing fingerprints of different widths
//   - ErrBadWords       FromWords input of the wrong length or with stray bits
//   - walk and pathwriter errors, wrapped with the root atom
package fingerprint
