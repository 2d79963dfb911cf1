package generators

import (
	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/rng"
)

// PotionGenerator rolls potion rewards, ported from
// lib/src/systems/rng/potion_generator.rs's PotionGenerator.
type PotionGenerator struct {
	character      *data.Character
	rng            *rng.StsRandom
	awardThreshold int32
}

// NewPotionGenerator constructs a PotionGenerator, ported from
// PotionGenerator::new.
func NewPotionGenerator(seed rng.Seed, character *data.Character) *PotionGenerator {
	return &PotionGenerator{
		character:      character,
		rng:            rng.NewStsRandom(seed),
		awardThreshold: 40,
	}
}

// GenPotions rolls count independent potions, ported from gen_potions (used
// for shop stock rather than combat rewards, so no rarity gate applies).
func (g *PotionGenerator) GenPotions(count int) []data.PotionID {
	result := make([]data.PotionID, count)
	for i := range result {
		result[i] = g.character.PotionPool[g.rng.Choose(len(g.character.PotionPool))]
	}
	return result
}

// CombatReward rolls whether a potion drops after combat and, if so, which
// one, ported from combat_reward. The award threshold slides by 10 on every
// roll (down on an award, up on a miss) exactly as the reference does, and
// the post-roll rarity re-roll loop is the reference's own documented hack
// for picking a potion of a specific rarity without a rarity-indexed pool.
func (g *PotionGenerator) CombatReward() (data.PotionID, bool) {
	awardedD100 := int32(g.rng.GenRange(0, 99))
	if awardedD100 >= g.awardThreshold {
		g.awardThreshold += 10
		return data.PotionUnknown, false
	}
	g.awardThreshold -= 10

	rarityD100 := int32(g.rng.GenRange(0, 99))
	var targetRarity data.PotionRarity
	switch {
	case rarityD100 < 65:
		targetRarity = data.PotionRarityCommon
	case rarityD100 < 90:
		targetRarity = data.PotionRarityUncommon
	default:
		targetRarity = data.PotionRarityRare
	}

	pool := g.character.PotionPool
	id := pool[g.rng.Choose(len(pool))]
	potion, err := data.LookupPotion(id)
	for err == nil && potion.Rarity != targetRarity {
		id = pool[g.rng.Choose(len(pool))]
		potion, err = data.LookupPotion(id)
	}
	return id, true
}
