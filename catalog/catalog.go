// SPDX-License-Identifier: MIT

package catalog

import (
	"cmp"
	"encoding/binary"
	"errors"
	"fmt"
	"log/slog"
	"slices"

	"github.com/dgraph-io/badger/v3"

	"github.com/katalvlaran/molpath/fingerprint"
)

var (
	// ErrNoLocation indicates Open without WithDir or WithInMemory.
	ErrNoLocation = errors.New("catalog: no directory and not in memory")

	// ErrEmptyName indicates an empty fingerprint name.
	ErrEmptyName = errors.New("catalog: empty name")

	// ErrNotFound indicates a name with no stored fingerprint.
	ErrNotFound = errors.New("catalog: name not found")

	// ErrCorrupt indicates a stored value that does not decode.
	ErrCorrupt = errors.New("catalog: corrupt value")
)

// Hit is one Similar result.
type Hit struct {
	Name  string
	Score float64
}

// Catalog is a Badger-backed store of named fingerprints. It is safe for
// concurrent use.
type Catalog struct {
	db     *badger.DB
	size   int
	logger *slog.Logger
}

// Open opens or creates a catalog.
//
// Errors:
//   - ErrNoLocation if no directory was given and InMemory is unset.
//   - fingerprint.ErrSizeMismatch if an existing catalog has another width.
//   - ErrCorrupt if the stored width does not decode.
//   - Badger errors, wrapped.
func Open(opts ...Option) (*Catalog, error) {
	// 1. Resolve options.
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.Dir == "" && !o.InMemory {
		return nil, ErrNoLocation
	}

	// 2. Open Badger.
	dbOpts := badger.DefaultOptions(o.Dir).WithLogger(badgerLogger{l: o.Logger})
	if o.InMemory {
		dbOpts = dbOpts.WithDir("").WithValueDir("").WithInMemory(true)
	}
	db, err := badger.Open(dbOpts)
	if err != nil {
		return nil, fmt.Errorf("catalog: open %q: %w", o.Dir, err)
	}

	c := &Catalog{db: db, size: o.Size, logger: o.Logger}

	// 3. Pin or verify the width.
	if err = c.loadSize(); err != nil {
		_ = db.Close()
		return nil, err
	}
	c.logger.Debug("catalog opened",
		slog.String("dir", o.Dir),
		slog.Bool("in_memory", o.InMemory),
		slog.Int("size", c.size))

	return c, nil
}

// loadSize records the width of a new catalog, or checks it against the
// stored one.
func (c *Catalog) loadSize() error {
	return c.db.Update(func(txn *badger.Txn) error {
		item, err := txn.Get(metaSizeKey)
		if errors.Is(err, badger.ErrKeyNotFound) {
			return txn.Set(metaSizeKey, binary.AppendUvarint(nil, uint64(c.size)))
		}
		if err != nil {
			return fmt.Errorf("catalog: read size: %w", err)
		}

		return item.Value(func(val []byte) error {
			stored, n := binary.Uvarint(val)
			if n <= 0 {
				return fmt.Errorf("%w: size record", ErrCorrupt)
			}
			if int(stored) != c.size {
				return fmt.Errorf("catalog: stored width %d, requested %d: %w",
					stored, c.size, fingerprint.ErrSizeMismatch)
			}
			return nil
		})
	})
}

// Close flushes and closes the underlying store.
func (c *Catalog) Close() error {
	return c.db.Close()
}

// Size returns the catalog's fingerprint width.
func (c *Catalog) Size() int { return c.size }

// Put stores fp under name, replacing any previous entry.
func (c *Catalog) Put(name string, fp *fingerprint.Fingerprint) error {
	if name == "" {
		return ErrEmptyName
	}
	if fp.Size() != c.size {
		return fmt.Errorf("catalog: Put(%q) width %d, catalog %d: %w",
			name, fp.Size(), c.size, fingerprint.ErrSizeMismatch)
	}

	err := c.db.Update(func(txn *badger.Txn) error {
		return txn.Set(fpKey(name), encode(fp))
	})
	if err != nil {
		return fmt.Errorf("catalog: Put(%q): %w", name, err)
	}

	return nil
}

// Get returns the fingerprint stored under name.
func (c *Catalog) Get(name string) (*fingerprint.Fingerprint, error) {
	if name == "" {
		return nil, ErrEmptyName
	}

	var fp *fingerprint.Fingerprint
	err := c.db.View(func(txn *badger.Txn) error {
		item, err := txn.Get(fpKey(name))
		if errors.Is(err, badger.ErrKeyNotFound) {
			return ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			fp, err = decode(val)
			return err
		})
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: Get(%q): %w", name, err)
	}

	return fp, nil
}

// Delete removes name.
func (c *Catalog) Delete(name string) error {
	if name == "" {
		return ErrEmptyName
	}

	err := c.db.Update(func(txn *badger.Txn) error {
		key := fpKey(name)
		if _, err := txn.Get(key); err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return ErrNotFound
			}
			return err
		}
		return txn.Delete(key)
	})
	if err != nil {
		return fmt.Errorf("catalog: Delete(%q): %w", name, err)
	}

	return nil
}

// Len returns the number of stored fingerprints.
func (c *Catalog) Len() (int, error) {
	n := 0
	err := c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = fpPrefix
		opts.PrefetchValues = false
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			n++
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("catalog: Len: %w", err)
	}

	return n, nil
}

// Screen returns, in name order, every name whose fingerprint contains q.
func (c *Catalog) Screen(q *fingerprint.Fingerprint) ([]string, error) {
	var out []string
	err := c.scan(q, func(name string, fp *fingerprint.Fingerprint) error {
		ok, err := fp.Contains(q)
		if err != nil {
			return err
		}
		if ok {
			out = append(out, name)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: Screen: %w", err)
	}

	c.logger.Debug("screen", slog.Int("query_bits", q.Cardinality()), slog.Int("hits", len(out)))

	return out, nil
}

// Similar returns the names scoring at least threshold against q, best
// first, ties broken by name. A limit of 0 or less returns every hit.
func (c *Catalog) Similar(q *fingerprint.Fingerprint, threshold float64, limit int) ([]Hit, error) {
	var out []Hit
	err := c.scan(q, func(name string, fp *fingerprint.Fingerprint) error {
		score, err := fp.Tanimoto(q)
		if err != nil {
			return err
		}
		if score >= threshold {
			out = append(out, Hit{Name: name, Score: score})
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("catalog: Similar: %w", err)
	}

	slices.SortFunc(out, func(a, b Hit) int {
		if d := cmp.Compare(b.Score, a.Score); d != 0 {
			return d
		}
		return cmp.Compare(a.Name, b.Name)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}

	return out, nil
}

// scan decodes every stored fingerprint in key order and hands it to fn.
func (c *Catalog) scan(q *fingerprint.Fingerprint, fn func(name string, fp *fingerprint.Fingerprint) error) error {
	if q.Size() != c.size {
		return fmt.Errorf("query width %d, catalog %d: %w", q.Size(), c.size, fingerprint.ErrSizeMismatch)
	}

	return c.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = fpPrefix
		it := txn.NewIterator(opts)
		defer it.Close()

		for it.Rewind(); it.Valid(); it.Next() {
			item := it.Item()
			name := string(item.Key()[len(fpPrefix):])
			err := item.Value(func(val []byte) error {
				fp, err := decode(val)
				if err != nil {
					return fmt.Errorf("%s: %w", name, err)
				}
				return fn(name, fp)
			})
			if err != nil {
				return err
			}
		}
		return nil
	})
}
