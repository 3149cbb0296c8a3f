// SPDX-License-Identifier: MIT

// Package pathwriter turns the event stream of a walk into a compact linear
// encoding of every path the walk explored.
//
// Writer implements walk.Observer. It tracks the active path (atoms and the
// bonds between them), rewinds it on BranchStart, measures rings on
// RingClosed, and appends text records to a caller-supplied Sink.
//
// Record format:
//
//	symbol[marker] symbol[marker] ... [-ringSize]
//
//	%  aromatic-override atom, or a double bond at this position
//	#  triple bond at this position
//	-N closes a ring of N atoms (always the last record of a flush)
//
// Every flush writes one record per prefix of the active path, so a path
// C-C-C yields "C", "CC", "CCC". A double bond that leaves an atom toward
// the next path position (and does not lead back to the path's first atom)
// adds one extra record holding the text written before its marker.
//
// Scenarios:
//
//	chain C-C-C                      C, CC, CCC
//	triangle, ring closed at C3      C, CC, CCC, CCC-3
//	C1 with arms C2-C4 and C3        C, CC, CCC, C, CC
//
// Errors:
//
//   - ErrAtomWithoutBond        AtomFound twice without BondFound
//   - ErrBranchFromMissingAtom  BranchStart off the active path
//   - ErrCloseEmptyPath         RingClosed before any atom
//   - ErrCloseMissingAtom       RingClosed whose far end is off the path
//   - ErrRingTooSmall           ring of one or two atoms
//
// A Writer is not safe for concurrent use; use one Writer per walk in
// flight. The encoding is private to this module and is not a chemical
// interchange notation.
package pathwriter
