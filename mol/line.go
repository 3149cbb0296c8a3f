// SPDX-License-Identifier: MIT
// Package: molpath/mol
//
// line.go: compact one-line molecule fixtures.
//
// Grammar:
//
//	node   := atom ring* ( "(" link ")" )* link?
//	link   := bond? node
//	ring   := bond? digit
//	atom   := Cl | Br | [A-Z] | [a-z] | "[" letters "]"
//	bond   := "-" (1) | "=" (2) | "#" (3); omitted means 1
//
// A lowercase atom is its uppercase symbol with the aromatic flag set. Equal
// ring digits pair up: the first opens a ring bond, the second closes it.
// Bonds are connected in reading order, so "CC(=O)O" gives C1 the neighbors
// C0, O2, O3 in that order.

package mol

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// ErrBadLine indicates a line fixture that does not parse or leaves a ring
// bond open.
var ErrBadLine = errors.New("mol: bad line fixture")

type lineNode struct {
	Atom     string      `parser:"@(Atom | Bracket)"`
	Rings    []*lineRing `parser:"@@*"`
	Branches []*lineLink `parser:"( \"(\" @@ \")\" )*"`
	Next     *lineLink   `parser:"@@?"`
}

type lineRing struct {
	Bond  string `parser:"@Bond?"`
	Label string `parser:"@Digit"`
}

type lineLink struct {
	Bond string    `parser:"@Bond?"`
	Node *lineNode `parser:"@@"`
}

var (
	lineLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Bracket", Pattern: `\[[A-Za-z]+\]`},
		{Name: "Atom", Pattern: `Cl|Br|[A-Za-z]`},
		{Name: "Digit", Pattern: `[0-9]`},
		{Name: "Bond", Pattern: `[-=#]`},
		{Name: "Punct", Pattern: `[()]`},
		{Name: "Whitespace", Pattern: `\s+`},
	})

	lineParser = participle.MustBuild[lineNode](
		participle.Lexer(lineLexer),
		participle.Elide("Whitespace"),
		participle.UseLookahead(2),
	)
)

// ParseLine builds a Molecule from a line fixture such as "CC(=O)O" or
// "c1ccccc1".
//
// Errors:
//   - ErrBadLine for syntax errors, unclosed rings, or ring digits whose two
//     ends name different bonds.
//   - Connect sentinels (ErrLoopNotAllowed, ErrBondExists), wrapped.
func ParseLine(line string) (*Molecule, error) {
	ast, err := lineParser.ParseString("", line)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrBadLine, err)
	}

	b := &lineBuilder{m: New(), open: make(map[string]openRing)}
	if err = b.node(ast, nil, ""); err != nil {
		return nil, fmt.Errorf("mol: ParseLine(%q): %w", line, err)
	}
	if len(b.open) > 0 {
		labels := make([]string, 0, len(b.open))
		for label := range b.open {
			labels = append(labels, label)
		}
		slices.Sort(labels)
		return nil, fmt.Errorf("%w: ring %s left open in %q", ErrBadLine, strings.Join(labels, ","), line)
	}

	return b.m, nil
}

type openRing struct {
	atom *Atom
	bond string
}

type lineBuilder struct {
	m    *Molecule
	open map[string]openRing
}

// node adds n's atom, bonds it to parent, then handles ring digits,
// branches and the continuation in reading order.
func (b *lineBuilder) node(n *lineNode, parent *Atom, bond string) error {
	symbol, aromatic := atomSymbol(n.Atom)
	a, err := b.m.AddAtom(symbol)
	if err != nil {
		return err
	}
	a.aromatic = aromatic

	if parent != nil {
		if _, err = b.m.Connect(parent, a, multiplicity(bond)); err != nil {
			return err
		}
	}

	for _, r := range n.Rings {
		o, ok := b.open[r.Label]
		if !ok {
			b.open[r.Label] = openRing{atom: a, bond: r.Bond}
			continue
		}
		delete(b.open, r.Label)

		ringBond := o.bond
		switch {
		case ringBond == "":
			ringBond = r.Bond
		case r.Bond != "" && r.Bond != ringBond:
			return fmt.Errorf("%w: ring %s opened with %q, closed with %q", ErrBadLine, r.Label, ringBond, r.Bond)
		}
		if _, err = b.m.Connect(o.atom, a, multiplicity(ringBond)); err != nil {
			return err
		}
	}

	for _, br := range n.Branches {
		if err = b.node(br.Node, a, br.Bond); err != nil {
			return err
		}
	}
	if n.Next != nil {
		return b.node(n.Next.Node, a, n.Next.Bond)
	}

	return nil
}

// atomSymbol strips brackets and maps a lowercase atom to its aromatic
// uppercase symbol.
func atomSymbol(tok string) (string, bool) {
	if strings.HasPrefix(tok, "[") {
		return strings.Trim(tok, "[]"), false
	}
	if lower := strings.ToLower(tok); tok == lower && len(tok) == 1 {
		return strings.ToUpper(tok), true
	}

	return tok, false
}

func multiplicity(bond string) int {
	switch bond {
	case "=":
		return 2
	case "#":
		return 3
	default:
		return 1
	}
}
