package rng

import "testing"

func TestStsRandomDeterministic(t *testing.T) {
	seed := Seed(12345)
	a := NewStsRandom(seed)
	b := NewStsRandom(seed)
	for i := 0; i < 50; i++ {
		if got, want := a.GenRange(0, 99), b.GenRange(0, 99); got != want {
			t.Fatalf("draw %d diverged: %d vs %d", i, got, want)
		}
	}
}

func TestStsRandomGenRangeBounds(t *testing.T) {
	r := NewStsRandom(Seed(7))
	for i := 0; i < 1000; i++ {
		v := r.GenRange(3, 8)
		if v < 3 || v > 8 {
			t.Fatalf("GenRange(3, 8) produced out-of-range value %d", v)
		}
	}
}

func TestStsRandomGen01Bounds(t *testing.T) {
	r := NewStsRandom(Seed(99))
	for i := 0; i < 1000; i++ {
		v := r.Gen01()
		if v < 0 || v >= 1 {
			t.Fatalf("Gen01 produced out-of-range value %v", v)
		}
	}
}

func TestStsRandomCloneIndependence(t *testing.T) {
	r := NewStsRandom(Seed(1))
	r.GenRange(0, 9)
	clone := r.Clone()
	seqA := make([]int, 10)
	seqB := make([]int, 10)
	for i := range seqA {
		seqA[i] = r.GenRange(0, 999)
	}
	for i := range seqB {
		seqB[i] = clone.GenRange(0, 999)
	}
	for i := range seqA {
		if seqA[i] != seqB[i] {
			t.Fatalf("clone diverged at %d: %d vs %d", i, seqA[i], seqB[i])
		}
	}
	// Advancing the original must not affect the clone's prior state capture.
	r.GenRange(0, 999)
	if r.Counter() == clone.Counter() {
		t.Fatalf("expected counters to diverge after independent draws")
	}
}

func TestStsRandomSampleWithoutReplacementDistinct(t *testing.T) {
	r := NewStsRandom(Seed(55))
	out := r.SampleWithoutReplacement(20, 5)
	if len(out) != 5 {
		t.Fatalf("expected 5 samples, got %d", len(out))
	}
	seen := make(map[int]bool)
	for _, v := range out {
		if seen[v] {
			t.Fatalf("sample contained duplicate index %d", v)
		}
		seen[v] = true
		if v < 0 || v >= 20 {
			t.Fatalf("sample index %d out of range", v)
		}
	}
}

func TestStsRandomWeightedChoosePrefersHeavyWeight(t *testing.T) {
	r := NewStsRandom(Seed(2024))
	counts := make([]int, 3)
	for i := 0; i < 2000; i++ {
		counts[r.WeightedChoose([]float64{0, 0, 1})]++
	}
	if counts[2] != 2000 {
		t.Fatalf("expected all-weight index to win every draw, got counts %v", counts)
	}
}

func TestStsRandomAdvanceMatchesSingleDraw(t *testing.T) {
	a := NewStsRandom(Seed(321))
	b := NewStsRandom(Seed(321))
	a.Advance()
	b.GenRange(0, 1<<30-1)
	if a.core.state != b.core.state {
		t.Fatalf("Advance did not consume exactly one draw's worth of state")
	}
}
