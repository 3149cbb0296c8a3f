// SPDX-License-Identifier: MIT

package walk

import (
	"context"
	"errors"
	"log/slog"
)

// Bond multiplicities recognized by encoders. Any other value is treated as
// non-default but unrecognized.
const (
	Single = 1
	Double = 2
	Triple = 3
)

// Sentinel errors. Every failure is a caller violating the calling contract;
// none of them is transient.
var (
	// ErrNilAtom indicates a nil root or candidate atom.
	ErrNilAtom = errors.New("walk: atom is nil")

	// ErrNilObserver indicates Walk was called without an Observer.
	ErrNilObserver = errors.New("walk: observer is nil")

	// ErrNoCandidates indicates Next was called on a State whose neighbor
	// stack is already exhausted.
	ErrNoCandidates = errors.New("walk: no untried neighbors")

	// ErrNotAdjacent indicates Advance was asked to step to an atom that is
	// not adjacent to the State's head.
	ErrNotAdjacent = errors.New("walk: atom does not connect to head")

	// ErrMissingBond indicates the model listed a neighbor for which none of
	// the atom's bonds has that neighbor as mate.
	ErrMissingBond = errors.New("walk: no bond between neighbors")
)

// Atom is the graph model's vertex. Implementations must be comparable and
// identity-based (pointer types): atoms are used as map keys and compared
// with ==.
type Atom interface {
	// Symbol returns the display symbol written into encodings.
	Symbol() string

	// Neighbors returns adjacent atoms in model order.
	Neighbors() []Atom

	// Bonds returns incident bonds in model order.
	Bonds() []Bond

	// IsConnectedTo reports whether other is adjacent to this atom.
	IsConnectedTo(other Atom) bool
}

// Bond is the graph model's edge.
type Bond interface {
	// Multiplicity returns 1 (single), 2 (double), 3 (triple) or any other
	// model-specific value.
	Multiplicity() int

	// Mate returns the endpoint opposite atom, or nil if atom is not an
	// endpoint of this bond.
	Mate(atom Atom) Atom
}

// Observer receives the structural events of a walk. The driver fires them
// synchronously in the order documented on the package; an Observer may rely
// on that order. A non-nil error aborts the walk.
type Observer interface {
	WalkStart(root Atom) error
	AtomFound(atom Atom) error
	BondFound(bond Bond) error
	BranchStart(atom Atom) error
	BranchEnd(atom Atom) error
	RingClosed(bond Bond) error
	WalkEnd(root Atom) error
}

// PathMode selects how a child State builds its path from its parent's.
type PathMode int

const (
	// PathInherit copies the parent's path unchanged. Every state past the
	// first validates adjacency against the walk's original root.
	PathInherit PathMode = iota

	// PathExtend copies the parent's path and appends the child's own root,
	// so adjacency is validated against the most recently visited atom.
	PathExtend
)

// String implements fmt.Stringer.
func (m PathMode) String() string {
	switch m {
	case PathInherit:
		return "inherit"
	case PathExtend:
		return "extend"
	default:
		return "unknown"
	}
}

// StateOption configures a root State created by NewState.
type StateOption func(*State)

// WithStatePathMode sets the PathMode of a root State; children inherit it.
// Panics on an unknown mode.
func WithStatePathMode(mode PathMode) StateOption {
	if mode != PathInherit && mode != PathExtend {
		panic("walk: WithStatePathMode(unknown mode)")
	}
	return func(s *State) {
		s.mode = mode
	}
}

// Option configures optional behavior of Walk.
type Option func(*Options)

// Options holds configurable parameters for Walk.
type Options struct {
	// Ctx allows cancellation; checked once per visited atom.
	Ctx context.Context

	// MaxDepth, if non-negative, keeps atoms farther than MaxDepth bonds from
	// the root out of the walk. Default is -1 (no limit).
	MaxDepth int

	// PathMode is applied to the root State. Default is PathExtend; with
	// PathInherit any step not adjacent to the root fails with ErrNotAdjacent.
	PathMode PathMode

	// Logger receives Debug records for walk boundaries, ring closures and
	// depth cut-offs.
	Logger *slog.Logger
}

// DefaultOptions returns Options with:
//   - Background context
//   - No depth limit (MaxDepth = -1)
//   - PathExtend
//   - slog.Default() tagged with component=walk
func DefaultOptions() Options {
	return Options{
		Ctx:      context.Background(),
		MaxDepth: -1,
		PathMode: PathExtend,
		Logger:   slog.Default().With(slog.String("component", "walk")),
	}
}

// WithContext sets the Context checked during Walk.
// Passing a nil context has no effect.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth limits the walk to atoms at most limit bonds from the root.
// A limit of 0 reports only the root. Negative means unlimited.
func WithMaxDepth(limit int) Option {
	return func(o *Options) {
		o.MaxDepth = limit
	}
}

// WithPathMode sets the PathMode of the root State used by Walk.
// Panics on an unknown mode.
func WithPathMode(mode PathMode) Option {
	if mode != PathInherit && mode != PathExtend {
		panic("walk: WithPathMode(unknown mode)")
	}
	return func(o *Options) {
		o.PathMode = mode
	}
}

// WithLogger installs logger for Debug records. Nil has no effect.
func WithLogger(logger *slog.Logger) Option {
	return func(o *Options) {
		if logger != nil {
			o.Logger = logger
		}
	}
}
