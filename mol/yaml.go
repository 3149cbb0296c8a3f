// SPDX-License-Identifier: MIT
// Package: molpath/mol
//
// yaml.go: molecule documents.
//
// Document shape:
//
//	atoms: [C, C, O]
//	bonds:
//	  - [0, 1, 2]   # from, to, multiplicity
//	  - [1, 2]      # multiplicity defaults to 1
//	aromatic: [0]
//
// Atom indices are zero-based positions in `atoms`. Bonds are connected in
// document order, which fixes each atom's neighbor order and therefore the
// walk order.

package mol

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"
)

// document is the YAML representation of a Molecule.
type document struct {
	Atoms    []string `yaml:"atoms"`
	Bonds    [][]int  `yaml:"bonds,omitempty"`
	Aromatic []int    `yaml:"aromatic,omitempty"`
}

// Unmarshal builds a Molecule from a YAML document.
//
// Errors:
//   - ErrBadDocument wrapping the YAML or structural problem.
//   - Connect/AddAtom sentinels (ErrEmptySymbol, ErrBondExists, ...) wrapped.
func Unmarshal(data []byte) (*Molecule, error) {
	return Decode(bytes.NewReader(data))
}

// Decode reads one YAML document from r and builds a Molecule.
// An empty input yields an empty Molecule.
func Decode(r io.Reader) (*Molecule, error) {
	var doc document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("%w: %v", ErrBadDocument, err)
	}

	return doc.build()
}

// build materializes the document in order: atoms, bonds, aromatic flags.
func (d *document) build() (*Molecule, error) {
	m := New()

	atoms := make([]*Atom, len(d.Atoms))
	for i, sym := range d.Atoms {
		a, err := m.AddAtom(sym)
		if err != nil {
			return nil, fmt.Errorf("mol: atoms[%d]: %w", i, err)
		}
		atoms[i] = a
	}

	lookup := func(i int) (*Atom, error) {
		if i < 0 || i >= len(atoms) {
			return nil, fmt.Errorf("%w: atom index %d out of range", ErrBadDocument, i)
		}
		return atoms[i], nil
	}

	for i, spec := range d.Bonds {
		if len(spec) < 2 || len(spec) > 3 {
			return nil, fmt.Errorf("%w: bonds[%d] needs [from, to] or [from, to, multiplicity]", ErrBadDocument, i)
		}
		from, err := lookup(spec[0])
		if err != nil {
			return nil, fmt.Errorf("mol: bonds[%d]: %w", i, err)
		}
		to, err := lookup(spec[1])
		if err != nil {
			return nil, fmt.Errorf("mol: bonds[%d]: %w", i, err)
		}
		multiplicity := 1
		if len(spec) == 3 {
			multiplicity = spec[2]
		}
		if _, err = m.Connect(from, to, multiplicity); err != nil {
			return nil, fmt.Errorf("mol: bonds[%d]: %w", i, err)
		}
	}

	for i, idx := range d.Aromatic {
		a, err := lookup(idx)
		if err != nil {
			return nil, fmt.Errorf("mol: aromatic[%d]: %w", i, err)
		}
		a.aromatic = true
	}

	return m, nil
}

// MarshalYAML implements yaml.Marshaler. Bonds of multiplicity 1 are written
// in the short [from, to] form.
func (m *Molecule) MarshalYAML() (interface{}, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	doc := document{Atoms: make([]string, len(m.atoms))}
	for i, a := range m.atoms {
		doc.Atoms[i] = a.symbol
		if a.aromatic {
			doc.Aromatic = append(doc.Aromatic, i)
		}
	}
	for _, b := range m.bonds {
		spec := []int{b.source.index, b.target.index}
		if b.multiplicity != 1 {
			spec = append(spec, b.multiplicity)
		}
		doc.Bonds = append(doc.Bonds, spec)
	}

	return doc, nil
}
