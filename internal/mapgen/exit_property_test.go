package mapgen

import (
	"testing"

	"pgregory.net/rapid"
)

// ExitBits.Has is a plain bitmask test; this checks it against the bit-level
// definition directly for every possible 3-bit value, the same style of
// property check dungo's graph_test.go runs over its own bitset helpers.
func TestExitBitsHasProperty(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		bits := ExitBits(rapid.IntRange(0, 7).Draw(t, "bits"))
		for _, dir := range []ExitBits{ExitRight, ExitUp, ExitLeft} {
			want := bits&dir == dir
			if got := bits.Has(dir); got != want {
				t.Fatalf("ExitBits(%03b).Has(%03b) = %v, want %v", bits, dir, got, want)
			}
		}
	})
}
