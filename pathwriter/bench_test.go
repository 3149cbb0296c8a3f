// SPDX-License-Identifier: MIT

package pathwriter_test

import (
	"testing"

	"github.com/katalvlaran/molpath/builder"
	"github.com/katalvlaran/molpath/pathwriter"
	"github.com/katalvlaran/molpath/walk"
)

// BenchmarkWriter_Ring32 encodes a full walk of an alternating 32-ring.
// Every flush is quadratic in the path length, so this is the worst case
// for a single ring.
func BenchmarkWriter_Ring32(b *testing.B) {
	m, err := builder.BuildMolecule(
		[]builder.Option{builder.WithMultiplicityScheme(builder.Alternating)},
		builder.Ring(32),
	)
	if err != nil {
		b.Fatal(err)
	}
	root, _ := m.Atom(0)

	var records pathwriter.Records
	w := pathwriter.New(&records)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		records = records[:0]
		if err = walk.Walk(root, w); err != nil {
			b.Fatal(err)
		}
	}
}
