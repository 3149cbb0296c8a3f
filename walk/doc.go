// SPDX-License-Identifier: MIT

// Package walk implements a backtracking depth-first walk over an atom/bond
// graph and the event contract used to observe it.
//
// What:
//
//   - Atom, Bond: the graph model contract consumed by the walk. Any model
//     whose atoms and bonds are comparable pointer types can be walked.
//   - State: an immutable-per-step cursor. It knows the atom it stands on,
//     the neighbors it has not tried yet, and the path that led to it.
//   - Observer: seven structural events (walk start/end, atom found, bond
//     found, branch start/end, ring closed) describing the walk's shape.
//   - Walk: a reference driver that advances States and fires Observer
//     events in the documented order.
//
// Traversal order:
//
//	A State pushes its root's neighbors in model order and pops them from the
//	end, so candidates are offered in the REVERSE of the model's neighbor
//	order. Output built from a walk is reproducible only if this holds.
//
// Path modes:
//
//   - PathInherit (NewState default): a child copies its parent's path and
//     does not append its own root. The head used by CanAdvanceTo stays at
//     the walk's original root for every state past the first.
//   - PathExtend: a child appends its own root, so the head is the most
//     recently visited atom.
//
// Event order fired by Walk:
//
//	WalkStart(root) AtomFound(root)
//	  BondFound(b) AtomFound(a) ...            tree step
//	  BranchStart(x) ... BranchEnd(x)          later steps out of x
//	  RingClosed(b)                            edge back onto the path
//	WalkEnd(root)
//
// Complexity:
//
//   - Walk: Time O(V + E) events, plus O(d²) path copying for depth d.
//   - Memory: O(d) states alive at once, each holding a path of length ≤ d.
//
// Errors:
//
//   - ErrNilAtom        nil root or nil candidate
//   - ErrNilObserver    Walk called without an observer
//   - ErrNoCandidates   Next on an exhausted State
//   - ErrNotAdjacent    Advance to an atom not adjacent to the head
//   - ErrMissingBond    model lists a neighbor without a connecting bond
//   - context errors    Walk canceled via WithContext
//   - observer errors   propagated, wrapped with the failing event
package walk
