package generators

import (
	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/rng"
)

// EncounterGenerator rolls which encounter a monster/elite/boss room spawns,
// owning its own StsRandom stream exactly as the reference's
// `rng::EncounterGenerator` does (constructed once per run from the run
// seed in `sim/simulator.rs`'s `StsSimulator::new`). The reference's own
// rng/encounter.rs source file was not present in the retrieved pack — only
// its call sites (`next_monster_encounter` in simulator.rs) — so the
// weak-then-strong monster sequencing and weighted-pool draw below are
// grounded on data/act.rs's pool *shape* (which was retrieved) plus
// simulator.rs's call pattern, not on a ported function body; this mirrors
// the IRONCLAD card-pool-order grounding gap documented in DESIGN.md.
type EncounterGenerator struct {
	rng      *rng.StsRandom
	act      *data.Act
	weakUsed int
}

// NewEncounterGenerator seeds the generator directly from the run seed, as
// `EncounterGenerator::new(seed)` does — unlike the per-floor card/misc RNG
// streams simulator.rs reseeds every floor, this stream persists for the
// run's lifetime.
func NewEncounterGenerator(seed rng.Seed) (*EncounterGenerator, error) {
	act, err := data.LookupAct(1)
	if err != nil {
		return nil, err
	}
	return &EncounterGenerator{rng: rng.NewStsRandom(seed), act: act}, nil
}

func weightsOf(pool []data.WeightedEncounter) []float64 {
	weights := make([]float64, len(pool))
	for i, w := range pool {
		weights[i] = w.Weight
	}
	return weights
}

// NextMonsterEncounter returns the next monster-room encounter: the act's
// weak pool for its first WeakMonsterEncounterCount rolls, then the strong
// pool thereafter, matching simulator.rs's floor loop calling
// `next_monster_encounter()` once per Room::Monster in increasing-floor
// order. The returned coinFlip feeds encounters like SmallSlimes that
// branch on an extra bool draw (EnemyPartyFor's second parameter).
func (g *EncounterGenerator) NextMonsterEncounter() (data.EncounterID, bool) {
	pool := g.act.StrongMonsterPool
	if g.weakUsed < g.act.WeakMonsterEncounterCount {
		pool = g.act.WeakMonsterPool
		g.weakUsed++
	}
	idx := g.rng.WeightedChoose(weightsOf(pool))
	return pool[idx].Encounter, g.rng.NextBool()
}

// NextEliteEncounter returns the next elite-room encounter from the act's
// elite pool.
func (g *EncounterGenerator) NextEliteEncounter() (data.EncounterID, bool) {
	idx := g.rng.WeightedChoose(weightsOf(g.act.EliteEncounterPool))
	return g.act.EliteEncounterPool[idx].Encounter, g.rng.NextBool()
}

// NextBossEncounter picks one of the act's fixed boss encounters. The
// reference selects the run's single boss once near run start rather than
// per-call; callers here are expected to call this exactly once per act and
// cache the result, same usage shape.
func (g *EncounterGenerator) NextBossEncounter() data.EncounterID {
	return g.act.BossEncounterPool[g.rng.Choose(len(g.act.BossEncounterPool))]
}
