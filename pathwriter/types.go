// SPDX-License-Identifier: MIT

package pathwriter

import "errors"

// Markers written after an atom's symbol, and the separator before a ring
// size.
const (
	// MarkerAromatic marks aromatic-override atoms and double bonds.
	MarkerAromatic = '%'

	// MarkerTriple marks a triple bond.
	MarkerTriple = '#'

	// RingSeparator precedes the ring size in a ring-closure record.
	RingSeparator = '-'
)

// Protocol errors. Each one means the driver broke the event contract.
var (
	// ErrAtomWithoutBond indicates AtomFound without a preceding BondFound
	// (the first atom of a walk is exempt).
	ErrAtomWithoutBond = errors.New("pathwriter: atom added without a preceding bond")

	// ErrBranchFromMissingAtom indicates BranchStart on an atom that is not
	// on the active path.
	ErrBranchFromMissingAtom = errors.New("pathwriter: branch from nonexistent atom")

	// ErrCloseEmptyPath indicates RingClosed while the active path is empty.
	ErrCloseEmptyPath = errors.New("pathwriter: close of empty path")

	// ErrCloseMissingAtom indicates RingClosed whose far endpoint is not on
	// the active path.
	ErrCloseMissingAtom = errors.New("pathwriter: close to nonexistent atom")

	// ErrRingTooSmall indicates a ring closure of fewer than three atoms.
	ErrRingTooSmall = errors.New("pathwriter: ring smaller than three")
)

// Sink receives encoded records. The Writer only ever appends; it never
// reads back or replaces what it wrote.
type Sink interface {
	Append(record string)
}

// Records is an ordered, caller-owned collection of records.
type Records []string

// Append implements Sink.
func (r *Records) Append(record string) {
	*r = append(*r, record)
}

// SinkFunc adapts a function to Sink.
type SinkFunc func(record string)

// Append implements Sink.
func (f SinkFunc) Append(record string) {
	f(record)
}
