package rng

// StsRandom is the primary, long-lived PRNG stream used for almost every
// decision in a run: map rooms, card/relic/potion/event rolls, enemy AI, and
// so on. Unlike JavaRandom it is never discarded after a single use — callers
// hold onto a StsRandom for the lifetime of whatever subsystem owns it (one
// per generator, per the reference's per-subsystem-stream design).
type StsRandom struct {
	core    lcg
	counter uint64
}

// NewStsRandom seeds a StsRandom from a Seed.
func NewStsRandom(seed Seed) *StsRandom {
	return &StsRandom{core: newLCG(seed.Uint64())}
}

// Counter reports how many draws this stream has produced, mirroring
// original_source's get_counter() diagnostic used by its own test vectors.
func (r *StsRandom) Counter() uint64 {
	return r.counter
}

// Advance discards a single draw, used to replicate the reference's
// occasional "extra tick" (e.g. Neow's blessing construction consumes one
// extra draw beyond its visible choices).
func (r *StsRandom) Advance() {
	r.core.next(31)
	r.counter++
}

// AdvanceBy discards n draws.
func (r *StsRandom) AdvanceBy(n uint64) {
	for i := uint64(0); i < n; i++ {
		r.Advance()
	}
}

// Clone returns an independent copy of the stream's current state, used by
// speculative lookahead (e.g. combat-reward rolls that may be re-rolled by a
// relic) without disturbing the original.
func (r *StsRandom) Clone() *StsRandom {
	return &StsRandom{core: r.core, counter: r.counter}
}

// NextUint8 draws a value in [0, 255].
func (r *StsRandom) NextUint8() uint8 {
	r.counter++
	return uint8(r.core.next(8))
}

// NextBool draws a single bit.
func (r *StsRandom) NextBool() bool {
	r.counter++
	return r.core.next(1) != 0
}

// GenRange draws a uniform integer in [lo, hi] inclusive.
func (r *StsRandom) GenRange(lo, hi int) int {
	if hi < lo {
		panic("rng: GenRange requires hi >= lo")
	}
	span := int32(hi-lo) + 1
	r.counter++
	return lo + int(r.core.nextBounded(span))
}

// Gen01 draws a uniform float64 in [0, 1), used for percentage-threshold
// rolls (room quotas, elite/shop probabilities).
func (r *StsRandom) Gen01() float64 {
	r.counter++
	hi := r.core.next(26)
	lo := r.core.next(27)
	return float64((int64(hi)<<27)+int64(lo)) / float64(int64(1)<<53)
}

// Choose picks one element uniformly from a non-empty slice of indices
// [0, n).
func (r *StsRandom) Choose(n int) int {
	if n <= 0 {
		panic("rng: Choose requires a non-empty range")
	}
	r.counter++
	return int(r.core.nextBounded(int32(n)))
}

// WeightedChoose picks an index in [0, len(weights)) with probability
// proportional to weights[i], via a single cumulative-weight draw over the
// sum of all weights. Weights must be non-negative and sum to > 0.
func (r *StsRandom) WeightedChoose(weights []float64) int {
	var total float64
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		panic("rng: WeightedChoose requires a positive weight sum")
	}
	roll := r.Gen01() * total
	var cum float64
	for i, w := range weights {
		cum += w
		if roll < cum {
			return i
		}
	}
	return len(weights) - 1
}

// SampleWithoutReplacement draws k distinct indices from [0, n), in draw
// order, by repeatedly rolling and skipping indices already taken — this
// matches the reference's rejection-based sampling rather than a
// partial-Fisher-Yates, since the reference never materializes the full
// shuffle for small-k draws.
func (r *StsRandom) SampleWithoutReplacement(n, k int) []int {
	if k > n {
		panic("rng: SampleWithoutReplacement requires k <= n")
	}
	taken := make(map[int]bool, k)
	out := make([]int, 0, k)
	for len(out) < k {
		i := r.Choose(n)
		if taken[i] {
			continue
		}
		taken[i] = true
		out = append(out, i)
	}
	return out
}

// JavaCompatShuffle performs an in-stream Fisher-Yates shuffle using the
// same bounded-draw algorithm as JavaRandom.Shuffle, but consuming this
// StsRandom's own stream directly rather than spawning a side generator —
// this is how the relic generator shuffles its four rarity pools up front.
func (r *StsRandom) JavaCompatShuffle(swap func(i, j int), n int) {
	for i := n - 1; i >= 1; i-- {
		j := int(r.core.nextBounded(int32(i + 1)))
		r.counter++
		swap(i, j)
	}
}
