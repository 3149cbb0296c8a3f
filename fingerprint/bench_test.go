// SPDX-License-Identifier: MIT

package fingerprint_test

import (
	"testing"

	"github.com/katalvlaran/molpath/builder"
	"github.com/katalvlaran/molpath/fingerprint"
)

// BenchmarkCompute_Naphthalene fingerprints two fused six-rings, built as a
// 10-ring with alternating bonds plus a bridging bond.
func BenchmarkCompute_Naphthalene(b *testing.B) {
	m, err := builder.BuildMolecule(
		[]builder.Option{builder.WithMultiplicityScheme(builder.Alternating)},
		builder.Ring(10),
	)
	if err != nil {
		b.Fatal(err)
	}
	a0, _ := m.Atom(0)
	a5, _ := m.Atom(5)
	if _, err = m.Connect(a0, a5, 1); err != nil {
		b.Fatal(err)
	}
	f := fingerprint.New()

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err = f.Compute(m); err != nil {
			b.Fatal(err)
		}
	}
}
