// SPDX-License-Identifier: MIT

package walk

import (
	"fmt"

	"github.com/emirpasic/gods/stacks/arraystack"
)

// State is one position of a depth-first walk: the atom the walker stands on,
// the neighbors of that atom not yet offered, and the path that led here.
//
// A State never changes after construction except that Next destructively
// pops its own neighbor stack, so each neighbor is offered at most once.
// States are values in a tree; a child owns a copy of its parent's path and
// holds no reference back to the parent.
type State struct {
	root      Atom              // atom this state represents
	neighbors *arraystack.Stack // untried neighbors; top = last in model order
	path      []Atom            // atoms visited to reach this state
	mode      PathMode          // inherited by children
}

// NewState returns the root State of a walk positioned at root, with path
// [root]. The default PathMode is PathInherit.
//
// Errors:
//   - ErrNilAtom if root is nil.
func NewState(root Atom, opts ...StateOption) (*State, error) {
	if root == nil {
		return nil, ErrNilAtom
	}

	s := &State{
		root:      root,
		neighbors: stackOf(root),
		path:      []Atom{root},
		mode:      PathInherit,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s, nil
}

// Root returns the atom this State is positioned at.
func (s *State) Root() Atom { return s.root }

// Mode returns the PathMode shared by this State and its descendants.
func (s *State) Mode() PathMode { return s.mode }

// Path returns a copy of the atoms visited to reach this State.
func (s *State) Path() []Atom {
	out := make([]Atom, len(s.path))
	copy(out, s.path)

	return out
}

// Head returns the last atom of the path, the atom adjacency is validated
// against. Under PathInherit this is the walk's original root for every
// state past the first.
func (s *State) Head() Atom {
	return s.path[len(s.path)-1]
}

// HasNext reports whether any neighbor has not been offered yet.
func (s *State) HasNext() bool {
	return !s.neighbors.Empty()
}

// Next pops and returns the next untried neighbor. Neighbors come out in the
// reverse of the model's neighbor order.
//
// Errors:
//   - ErrNoCandidates if every neighbor has already been returned.
func (s *State) Next() (Atom, error) {
	v, ok := s.neighbors.Pop()
	if !ok {
		return nil, fmt.Errorf("walk: Next at %s: %w", s.root.Symbol(), ErrNoCandidates)
	}

	return v.(Atom), nil
}

// CanAdvanceTo reports whether the head of the path is adjacent to atom.
// It does not mutate the State.
func (s *State) CanAdvanceTo(atom Atom) bool {
	if atom == nil {
		return false
	}

	return s.Head().IsConnectedTo(atom)
}

// Advance returns a new State positioned at atom. The child's neighbor stack
// is built fresh from atom.Neighbors(); its path is a copy of this State's
// path, extended by atom only under PathExtend.
//
// Errors:
//   - ErrNilAtom if atom is nil.
//   - ErrNotAdjacent if CanAdvanceTo(atom) is false.
func (s *State) Advance(atom Atom) (*State, error) {
	if atom == nil {
		return nil, ErrNilAtom
	}
	if !s.CanAdvanceTo(atom) {
		return nil, fmt.Errorf("walk: Advance %s→%s (%s path): %w",
			s.Head().Symbol(), atom.Symbol(), s.mode, ErrNotAdjacent)
	}

	// Copy the parent's path; the extra slot is only used under PathExtend.
	path := make([]Atom, len(s.path), len(s.path)+1)
	copy(path, s.path)
	if s.mode == PathExtend {
		path = append(path, atom)
	}

	return &State{
		root:      atom,
		neighbors: stackOf(atom),
		path:      path,
		mode:      s.mode,
	}, nil
}

// stackOf pushes atom's neighbors in model order, so Pop yields them last
// first.
func stackOf(atom Atom) *arraystack.Stack {
	st := arraystack.New()
	for _, nb := range atom.Neighbors() {
		st.Push(nb)
	}

	return st
}
