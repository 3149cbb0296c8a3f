// SPDX-License-Identifier: MIT

package fingerprint

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/cespare/xxhash/v2"
	"github.com/soniakeys/bits"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/molpath/pathwriter"
	"github.com/katalvlaran/molpath/walk"
)

var (
	// ErrNilStructure indicates Compute or Paths was called with nil.
	ErrNilStructure = errors.New("fingerprint: structure is nil")

	// ErrSizeMismatch indicates two fingerprints of different widths were
	// compared.
	ErrSizeMismatch = errors.New("fingerprint: size mismatch")

	// ErrBadWords indicates FromWords input that does not describe a
	// fingerprint of the given size.
	ErrBadWords = errors.New("fingerprint: bad word encoding")
)

// Structure is a walkable collection of atoms. *mol.Molecule satisfies it.
type Structure interface {
	// Atoms returns every atom; each one roots a walk.
	Atoms() []walk.Atom

	// AromaticAtoms returns the atoms encoded with the aromatic marker.
	AromaticAtoms() []walk.Atom
}

// Fingerprinter computes fingerprints with fixed settings. It holds no
// per-structure state and may be shared across goroutines.
type Fingerprinter struct {
	cfg config
}

// New returns a Fingerprinter with defaults overridden by opts.
func New(opts ...Option) *Fingerprinter {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Fingerprinter{cfg: cfg}
}

// Size returns the width of fingerprints this Fingerprinter produces.
func (f *Fingerprinter) Size() int { return f.cfg.size }

// Depth returns the walk depth limit in bonds.
func (f *Fingerprinter) Depth() int { return f.cfg.depth }

// Compute returns the fingerprint of s.
func (f *Fingerprinter) Compute(s Structure) (*Fingerprint, error) {
	if s == nil {
		return nil, ErrNilStructure
	}

	return f.compute(f.cfg.ctx, s)
}

// ComputeAll fingerprints every structure, at most WithWorkers at a time.
// Result i belongs to ss[i]. The first failure cancels the rest and is
// returned with the index of the structure that caused it.
func (f *Fingerprinter) ComputeAll(ss []Structure) ([]*Fingerprint, error) {
	for i, s := range ss {
		if s == nil {
			return nil, fmt.Errorf("fingerprint: ComputeAll[%d]: %w", i, ErrNilStructure)
		}
	}

	out := make([]*Fingerprint, len(ss))
	g, ctx := errgroup.WithContext(f.cfg.ctx)
	g.SetLimit(f.cfg.workers)
	for i, s := range ss {
		i, s := i, s
		g.Go(func() error {
			fp, err := f.compute(ctx, s)
			if err != nil {
				return fmt.Errorf("fingerprint: ComputeAll[%d]: %w", i, err)
			}
			out[i] = fp
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return out, nil
}

func (f *Fingerprinter) compute(ctx context.Context, s Structure) (*Fingerprint, error) {

	fp := &Fingerprint{set: bits.New(f.cfg.size)}
	size := uint64(f.cfg.size)
	records := 0
	sink := pathwriter.SinkFunc(func(record string) {
		fp.set.SetBit(int(xxhash.Sum64String(record)%size), 1)
		records++
	})
	if err := f.walkAll(ctx, s, sink); err != nil {
		return nil, err
	}

	f.cfg.logger.Debug("fingerprint computed",
		slog.Int("records", records),
		slog.Int("bits_set", fp.Cardinality()),
		slog.Int("size", f.cfg.size))

	return fp, nil
}

// Paths returns every distinct record written while walking s, in the
// order first written.
func (f *Fingerprinter) Paths(s Structure) ([]string, error) {
	if s == nil {
		return nil, ErrNilStructure
	}

	seen := make(map[string]struct{})
	var out pathwriter.Records
	sink := pathwriter.SinkFunc(func(record string) {
		if _, ok := seen[record]; ok {
			return
		}
		seen[record] = struct{}{}
		out.Append(record)
	})
	if err := f.walkAll(f.cfg.ctx, s, sink); err != nil {
		return nil, err
	}

	return out, nil
}

// walkAll roots one walk at every atom of s, all reporting to one Writer.
func (f *Fingerprinter) walkAll(ctx context.Context, s Structure, sink pathwriter.Sink) error {
	w := pathwriter.New(sink)
	w.SetAromatics(s.AromaticAtoms()...)

	for _, root := range s.Atoms() {
		err := walk.Walk(root, w,
			walk.WithMaxDepth(f.cfg.depth),
			walk.WithContext(ctx),
			walk.WithLogger(f.cfg.logger),
		)
		if err != nil {
			return fmt.Errorf("fingerprint: walk from %s: %w", root.Symbol(), err)
		}
	}

	return nil
}

// Fingerprint is a fixed-width bit set of hashed path records.
type Fingerprint struct {
	set bits.Bits
}

// FromWords rebuilds a fingerprint of size bits from the words returned by
// Words.
func FromWords(size int, words []uint64) (*Fingerprint, error) {
	if size < 1 || len(words) != (size+63)/64 {
		return nil, fmt.Errorf("%w: %d words for %d bits", ErrBadWords, len(words), size)
	}
	if tail := size % 64; tail != 0 && words[len(words)-1]>>uint(tail) != 0 {
		return nil, fmt.Errorf("%w: bits set past %d", ErrBadWords, size)
	}

	set := bits.New(size)
	copy(set.Bits, words)

	return &Fingerprint{set: set}, nil
}

// Size returns the width in bits.
func (fp *Fingerprint) Size() int { return fp.set.Num }

// Words returns a copy of the bit set as 64-bit words, bit i in word i/64
// at position i%64.
func (fp *Fingerprint) Words() []uint64 {
	out := make([]uint64, len(fp.set.Bits))
	copy(out, fp.set.Bits)

	return out
}

// Bit reports whether bit i is set. Out-of-range indices report false.
func (fp *Fingerprint) Bit(i int) bool {
	if i < 0 || i >= fp.set.Num {
		return false
	}

	return fp.set.Bit(i) == 1
}

// Cardinality returns the number of set bits.
func (fp *Fingerprint) Cardinality() int {
	return fp.set.OnesCount()
}

// Contains reports whether every bit set in q is also set in fp. A false
// result proves q's structure is not a substructure of fp's; a true result
// only means it may be.
func (fp *Fingerprint) Contains(q *Fingerprint) (bool, error) {
	if fp.Size() != q.Size() {
		return false, fmt.Errorf("%w: %d vs %d", ErrSizeMismatch, fp.Size(), q.Size())
	}
	for i := 0; i < q.set.Num; i++ {
		if q.set.Bit(i) == 1 && fp.set.Bit(i) == 0 {
			return false, nil
		}
	}

	return true, nil
}

// Tanimoto returns |fp ∧ o| / |fp ∨ o|. Two empty fingerprints score 1.
func (fp *Fingerprint) Tanimoto(o *Fingerprint) (float64, error) {
	if fp.Size() != o.Size() {
		return 0, fmt.Errorf("%w: %d vs %d", ErrSizeMismatch, fp.Size(), o.Size())
	}

	var both, either int
	for i := 0; i < fp.set.Num; i++ {
		a, b := fp.set.Bit(i), o.set.Bit(i)
		if a == 1 && b == 1 {
			both++
		}
		if a == 1 || b == 1 {
			either++
		}
	}
	if either == 0 {
		return 1, nil
	}

	return float64(both) / float64(either), nil
}
