// SPDX-License-Identifier: MIT

package pathwriter

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/sets/hashset"

	"github.com/katalvlaran/molpath/walk"
)

var _ walk.Observer = (*Writer)(nil)

// Writer is a walk.Observer that encodes every path of a walk as text.
//
// It keeps an active path of atoms and the bonds between them. The two
// slices move in lock-step: after every AtomFound past the first,
// len(bonds) == len(atoms)-1, and a BondFound is the only thing allowed to
// make them equal. When the path is flushed, each prefix of the path is
// written as its own record.
type Writer struct {
	out       Sink
	aromatics *hashset.Set // walk.Atom values consulted before any bond scan
	atoms     []walk.Atom  // active atom path
	bonds     []walk.Bond  // active bond path
	dirty     bool         // atoms added since the last flush
}

// New returns a Writer appending to out. A nil out discards records.
func New(out Sink) *Writer {
	return &Writer{
		out:       out,
		aromatics: hashset.New(),
	}
}

// SetOutput replaces the sink. Do not call mid-walk.
func (w *Writer) SetOutput(out Sink) {
	w.out = out
}

// SetAromatics replaces the aromatic-override set. Do not call mid-walk.
func (w *Writer) SetAromatics(atoms ...walk.Atom) {
	w.aromatics.Clear()
	for _, a := range atoms {
		w.aromatics.Add(a)
	}
}

// WalkStart clears the active path.
func (w *Writer) WalkStart(walk.Atom) error {
	w.atoms = w.atoms[:0]
	w.bonds = w.bonds[:0]
	w.dirty = false

	return nil
}

// AtomFound extends the active path by atom.
func (w *Writer) AtomFound(atom walk.Atom) error {
	if len(w.atoms) > 0 && len(w.atoms) != len(w.bonds) {
		return fmt.Errorf("%w: %s", ErrAtomWithoutBond, atom.Symbol())
	}
	w.atoms = append(w.atoms, atom)
	w.dirty = true

	return nil
}

// BondFound extends the active bond path.
func (w *Writer) BondFound(bond walk.Bond) error {
	w.bonds = append(w.bonds, bond)

	return nil
}

// BranchStart writes out any pending path, then rewinds the active path so
// that atom is its last atom and no bond leaves it.
func (w *Writer) BranchStart(atom walk.Atom) error {
	w.flush(0)

	i := slices.Index(w.atoms, atom)
	if i < 0 {
		return fmt.Errorf("%w: %s", ErrBranchFromMissingAtom, atom.Symbol())
	}
	w.atoms = w.atoms[:i+1]
	if len(w.bonds) > i {
		w.bonds = w.bonds[:i]
	}

	return nil
}

// BranchEnd does nothing.
func (w *Writer) BranchEnd(walk.Atom) error {
	return nil
}

// RingClosed writes the active path followed by a record carrying the size
// of the ring that bond closes.
func (w *Writer) RingClosed(bond walk.Bond) error {
	if len(w.atoms) == 0 {
		return ErrCloseEmptyPath
	}

	last := w.atoms[len(w.atoms)-1]
	mate := bond.Mate(last)
	i := slices.Index(w.atoms, mate)
	if mate == nil || i < 0 {
		return fmt.Errorf("%w: from %s", ErrCloseMissingAtom, last.Symbol())
	}

	size := len(w.atoms) - i
	if size < 3 {
		return fmt.Errorf("%w: size %d at %s", ErrRingTooSmall, size, mate.Symbol())
	}

	w.dirty = true
	w.flush(size)

	return nil
}

// WalkEnd writes any pending path.
func (w *Writer) WalkEnd(walk.Atom) error {
	w.flush(0)

	return nil
}

// flush writes one record per prefix of the active path, then, for a
// non-zero ringSize, the full path suffixed with "-<ringSize>".
func (w *Writer) flush(ringSize int) {
	if !w.dirty {
		return
	}

	var buf strings.Builder
	for _, a := range w.atoms {
		w.encode(a, &buf)
		w.emit(buf.String())
	}
	if ringSize != 0 {
		w.emit(buf.String() + string(RingSeparator) + strconv.Itoa(ringSize))
	}

	w.dirty = false
}

// encode writes atom's symbol and at most one marker.
//
// Aromatic-override atoms get MarkerAromatic without a bond scan. Otherwise
// the atom's bonds are scanned in model order; only bonds on the active
// bond path with multiplicity 2 or 3 can produce a marker:
//   - triple: MarkerTriple.
//   - double leaving atom toward the next path position: MarkerAromatic,
//     preceded by a standalone record of the buffer unless the bond leads
//     back to the first atom of the path.
//   - double arriving from the previous path position, or the most recent
//     bond on the path: MarkerAromatic.
func (w *Writer) encode(atom walk.Atom, buf *strings.Builder) {
	buf.WriteString(atom.Symbol())

	if w.aromatics.Contains(atom) {
		buf.WriteByte(MarkerAromatic)
		return
	}

	atomIndex := slices.Index(w.atoms, atom)
	for _, bond := range atom.Bonds() {
		m := bond.Multiplicity()
		if m == walk.Single {
			continue
		}
		bondIndex := slices.Index(w.bonds, bond)
		if bondIndex < 0 {
			continue
		}

		switch m {
		case walk.Triple:
			buf.WriteByte(MarkerTriple)
			return
		case walk.Double:
			if bondIndex == atomIndex {
				if bond.Mate(atom) != w.atoms[0] {
					w.emit(buf.String())
				}
				buf.WriteByte(MarkerAromatic)
				return
			}
			if bondIndex == atomIndex-1 || bondIndex == len(w.bonds)-1 {
				buf.WriteByte(MarkerAromatic)
				return
			}
		}
	}
}

func (w *Writer) emit(record string) {
	if w.out != nil {
		w.out.Append(record)
	}
}
