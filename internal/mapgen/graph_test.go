package mapgen

import (
	"reflect"
	"testing"

	"github.com/nkessler/spireengine/internal/rng"
)

func vecU8(rows ...[]uint8) [][]uint8 { return rows }

func TestGraphBuilderSeed2ExitBits(t *testing.T) {
	sts := rng.NewStsRandom(rng.Seed(2))
	grid := NewGraphBuilder(sts).Build()
	want := vecU8(
		[]uint8{0, 6, 0, 1, 0, 0, 0},
		[]uint8{1, 2, 0, 0, 6, 0, 0},
		[]uint8{0, 2, 0, 6, 5, 0, 0},
		[]uint8{0, 6, 4, 5, 0, 1, 0},
		[]uint8{1, 1, 2, 0, 1, 0, 4},
		[]uint8{0, 4, 3, 0, 0, 3, 0},
		[]uint8{2, 0, 5, 2, 0, 4, 2},
		[]uint8{2, 4, 0, 6, 4, 0, 4},
		[]uint8{1, 0, 2, 6, 0, 1, 0},
		[]uint8{0, 1, 2, 2, 0, 0, 4},
		[]uint8{0, 0, 6, 4, 0, 4, 0},
		[]uint8{0, 2, 7, 0, 4, 0, 0},
		[]uint8{0, 3, 1, 2, 0, 0, 0},
		[]uint8{0, 1, 2, 5, 0, 0, 0},
	)
	got := grid.ExitBitsAsVec()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("exit bits mismatch:\n got=%v\nwant=%v", got, want)
	}
}

func TestGraphBuilderSeed3ExitBits(t *testing.T) {
	sts := rng.NewStsRandom(rng.Seed(3))
	grid := NewGraphBuilder(sts).Build()
	want := vecU8(
		[]uint8{2, 0, 1, 1, 0, 0, 2},
		[]uint8{1, 0, 0, 2, 6, 0, 4},
		[]uint8{0, 4, 0, 3, 1, 2, 0},
		[]uint8{1, 0, 0, 2, 2, 7, 0},
		[]uint8{0, 1, 0, 1, 3, 2, 2},
		[]uint8{0, 0, 4, 0, 2, 3, 2},
		[]uint8{0, 4, 0, 0, 6, 4, 6},
		[]uint8{2, 0, 0, 4, 6, 4, 4},
		[]uint8{1, 0, 1, 1, 1, 2, 0},
		[]uint8{0, 4, 0, 1, 1, 3, 0},
		[]uint8{1, 0, 0, 0, 2, 2, 4},
		[]uint8{0, 1, 0, 0, 2, 7, 0},
		[]uint8{0, 0, 1, 0, 6, 3, 2},
		[]uint8{0, 0, 0, 6, 4, 1, 2},
	)
	got := grid.ExitBitsAsVec()
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("exit bits mismatch:\n got=%v\nwant=%v", got, want)
	}
}
