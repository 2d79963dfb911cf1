package data

// RelicID is the closed identifier set for relics.
type RelicID int

const (
	RelicUnknown RelicID = iota
	RelicBurningBlood
	RelicAkabeko
	RelicBagOfMarbles
	RelicOrichalcum
	RelicSneckoEye
	RelicRunicDome
	RelicCirclet // sentinel fallback per relic-pool exhaustion (lib/src/rng/relic.rs)
)

// RelicTier mirrors the reference's per-rarity shuffled pools (Common,
// Uncommon, Rare, Shop, Boss) that RelicGenerator draws from.
type RelicTier int

const (
	RelicTierStarter RelicTier = iota
	RelicTierCommon
	RelicTierUncommon
	RelicTierRare
	RelicTierShop
	RelicTierBoss
)

// RelicHooks is the set of combat-lifecycle callbacks a relic may bind.
// Every field is optional; the combat engine calls whichever are non-nil at
// the matching lifecycle point, mirroring the teacher's
// CardEffect{OnFieldEffect,OnLeaveField,ContinuousApply} optional-closure
// shape generalized to relic hook points instead of per-card ones.
type RelicHooks struct {
	OnCombatStart func(ctx EffectContext)
	OnTurnStart   func(ctx EffectContext)
	OnTurnEnd     func(ctx EffectContext)
	OnCombatEnd   func(ctx EffectContext)
}

type Relic struct {
	ID          RelicID
	Name        string
	Tier        RelicTier
	Description string
	Hooks       RelicHooks
}

var RelicRegistry = map[RelicID]func() *Relic{
	RelicBurningBlood: newBurningBlood,
	RelicAkabeko:      newAkabeko,
	RelicBagOfMarbles: newBagOfMarbles,
	RelicOrichalcum:   newOrichalcum,
	RelicSneckoEye:    newSneckoEye,
	RelicRunicDome:    newRunicDome,
	RelicCirclet:      newCirclet,
}

func LookupRelic(id RelicID) (*Relic, error) {
	ctor, ok := RelicRegistry[id]
	if !ok {
		return nil, NewUnimplementedError(KindRelic, "relic")
	}
	return ctor(), nil
}
