package generators

import (
	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/rng"
)

// RelicGenerator rolls relic rewards from per-tier pools, ported from
// lib/src/rng/relic.rs's RelicGenerator. Each pool is shuffled once at
// construction and handed out front-to-back; an exhausted pool falls
// through to the next tier up, and an exhausted rare pool falls back to
// the Circlet sentinel.
type RelicGenerator struct {
	commonPool   []data.RelicID
	uncommonPool []data.RelicID
	rarePool     []data.RelicID
	bossPool     []data.RelicID
}

// NewRelicGenerator shuffles character's relic pools with a dedicated RNG
// stream, ported from RelicGenerator::new.
func NewRelicGenerator(seed rng.Seed, character *data.Character) *RelicGenerator {
	relicRNG := rng.NewStsRandom(seed)
	common := append([]data.RelicID(nil), character.CommonRelicPool...)
	uncommon := append([]data.RelicID(nil), character.UncommonRelicPool...)
	rare := append([]data.RelicID(nil), character.RareRelicPool...)
	boss := append([]data.RelicID(nil), character.BossRelicPool...)
	shuffle := func(pool []data.RelicID) {
		relicRNG.JavaCompatShuffle(func(i, j int) { pool[i], pool[j] = pool[j], pool[i] }, len(pool))
	}
	shuffle(common)
	shuffle(uncommon)
	shuffle(rare)
	shuffle(boss)
	return &RelicGenerator{
		commonPool:   common,
		uncommonPool: uncommon,
		rarePool:     rare,
		bossPool:     boss,
	}
}

// popFront returns and removes pool[0], along with whether it was present.
func popFront(pool *[]data.RelicID) (data.RelicID, bool) {
	if len(*pool) == 0 {
		return data.RelicUnknown, false
	}
	r := (*pool)[0]
	*pool = (*pool)[1:]
	return r, true
}

// CommonRelic draws the next common relic, falling through to uncommon when
// the common pool runs dry.
func (g *RelicGenerator) CommonRelic() data.RelicID {
	if r, ok := popFront(&g.commonPool); ok {
		return r
	}
	return g.UncommonRelic()
}

// UncommonRelic draws the next uncommon relic, falling through to rare when
// the uncommon pool runs dry.
func (g *RelicGenerator) UncommonRelic() data.RelicID {
	if r, ok := popFront(&g.uncommonPool); ok {
		return r
	}
	return g.RareRelic()
}

// RareRelic draws the next rare relic, falling back to Circlet when the rare
// pool runs dry.
func (g *RelicGenerator) RareRelic() data.RelicID {
	if r, ok := popFront(&g.rarePool); ok {
		return r
	}
	return data.RelicCirclet
}

// BossRelic draws the next boss relic, falling back to Circlet when the
// boss pool runs dry, ported from RelicGenerator::_boss_relic.
func (g *RelicGenerator) BossRelic() data.RelicID {
	if r, ok := popFront(&g.bossPool); ok {
		return r
	}
	return data.RelicCirclet
}
