// SPDX-License-Identifier: MIT

package walk

import (
	"fmt"
	"log/slog"
)

// walker carries the bookkeeping of a single Walk call.
type walker struct {
	obs     Observer
	opts    Options
	visited map[Atom]bool // atoms reported via AtomFound
	onPath  map[Atom]bool // atoms on the current root→atom stack
	used    map[Bond]bool // bonds already reported (step or ring closure)
}

// Walk performs one depth-first walk from root and reports it to obs.
//
// Each bond is reported at most once. A neighbor not yet visited becomes a
// tree step (BondFound, AtomFound). A neighbor still on the current path,
// reached over an unused bond, is reported with RingClosed. The first event
// leaving an atom is reported bare; every later one is wrapped in
// BranchStart/BranchEnd on that atom, so observers can rewind their own
// path before it.
//
// Errors:
//   - ErrNilAtom, ErrNilObserver on invalid input.
//   - ErrNotAdjacent, ErrMissingBond from an inconsistent model (or
//     PathInherit past the root's neighbors).
//   - ctx.Err() if the context is canceled.
//   - Observer errors, wrapped with the failing event.
func Walk(root Atom, obs Observer, opts ...Option) error {
	// 1. Validate inputs.
	if root == nil {
		return ErrNilAtom
	}
	if obs == nil {
		return ErrNilObserver
	}

	// 2. Apply options.
	wopts := DefaultOptions()
	for _, fn := range opts {
		fn(&wopts)
	}

	state, err := NewState(root, WithStatePathMode(wopts.PathMode))
	if err != nil {
		return err
	}

	w := &walker{
		obs:     obs,
		opts:    wopts,
		visited: make(map[Atom]bool),
		onPath:  make(map[Atom]bool),
		used:    make(map[Bond]bool),
	}

	w.opts.Logger.Debug("walk start",
		slog.String("root", root.Symbol()),
		slog.String("path_mode", wopts.PathMode.String()),
		slog.Int("max_depth", wopts.MaxDepth))

	// 3. Root events, then the recursive walk.
	if err = obs.WalkStart(root); err != nil {
		return fmt.Errorf("walk: WalkStart(%s): %w", root.Symbol(), err)
	}
	w.visited[root] = true
	if err = obs.AtomFound(root); err != nil {
		return fmt.Errorf("walk: AtomFound(%s): %w", root.Symbol(), err)
	}
	if err = w.visit(state, 0); err != nil {
		return err
	}
	if err = obs.WalkEnd(root); err != nil {
		return fmt.Errorf("walk: WalkEnd(%s): %w", root.Symbol(), err)
	}

	w.opts.Logger.Debug("walk end",
		slog.String("root", root.Symbol()),
		slog.Int("atoms", len(w.visited)),
		slog.Int("bonds", len(w.used)))

	return nil
}

// visit drains state's neighbor stack, recursing on tree steps.
func (w *walker) visit(state *State, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	atom := state.Root()
	w.onPath[atom] = true
	defer delete(w.onPath, atom)

	branching := false
	for state.HasNext() {
		next, err := state.Next()
		if err != nil {
			return err
		}
		if next == nil {
			return fmt.Errorf("walk: neighbor of %s: %w", atom.Symbol(), ErrNilAtom)
		}

		bond := BondBetween(atom, next)
		if bond == nil {
			return fmt.Errorf("walk: %s→%s: %w", atom.Symbol(), next.Symbol(), ErrMissingBond)
		}
		if w.used[bond] {
			continue
		}

		ring := w.visited[next]
		switch {
		case ring && !w.onPath[next]:
			// Finished atom reached around a depth cut-off; not a ring on
			// this path.
			continue
		case !ring && w.opts.MaxDepth >= 0 && depth >= w.opts.MaxDepth:
			w.opts.Logger.Debug("depth limit",
				slog.String("atom", atom.Symbol()),
				slog.String("skipped", next.Symbol()),
				slog.Int("depth", depth))
			continue
		}
		w.used[bond] = true

		if branching {
			if err = w.obs.BranchStart(atom); err != nil {
				return fmt.Errorf("walk: BranchStart(%s): %w", atom.Symbol(), err)
			}
		}

		if ring {
			w.opts.Logger.Debug("ring closed",
				slog.String("from", atom.Symbol()),
				slog.String("to", next.Symbol()),
				slog.Int("depth", depth))
			if err = w.obs.RingClosed(bond); err != nil {
				return fmt.Errorf("walk: RingClosed(%s-%s): %w", atom.Symbol(), next.Symbol(), err)
			}
		} else if err = w.step(state, bond, next, depth); err != nil {
			return err
		}

		if branching {
			if err = w.obs.BranchEnd(atom); err != nil {
				return fmt.Errorf("walk: BranchEnd(%s): %w", atom.Symbol(), err)
			}
		}
		branching = true
	}

	return nil
}

// step advances onto next over bond, reports the pair and descends.
func (w *walker) step(state *State, bond Bond, next Atom, depth int) error {
	child, err := state.Advance(next)
	if err != nil {
		return err
	}
	if err = w.obs.BondFound(bond); err != nil {
		return fmt.Errorf("walk: BondFound(%s-%s): %w", state.Root().Symbol(), next.Symbol(), err)
	}
	w.visited[next] = true
	if err = w.obs.AtomFound(next); err != nil {
		return fmt.Errorf("walk: AtomFound(%s): %w", next.Symbol(), err)
	}

	return w.visit(child, depth+1)
}
