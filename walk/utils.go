// SPDX-License-Identifier: MIT

package walk

// BondBetween returns the first bond of a (in model order) whose mate of a is
// b, or nil if a and b are not bonded.
// Time Complexity: O(deg(a)).
func BondBetween(a, b Atom) Bond {
	if a == nil || b == nil {
		return nil
	}
	for _, bond := range a.Bonds() {
		if bond.Mate(a) == b {
			return bond
		}
	}

	return nil
}

// Symbols maps atoms to their symbols, in order.
func Symbols(atoms []Atom) []string {
	out := make([]string, len(atoms))
	for i, a := range atoms {
		out[i] = a.Symbol()
	}

	return out
}
