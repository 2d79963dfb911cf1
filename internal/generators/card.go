// Package generators implements the reference's per-subsystem RNG-backed
// reward rollers (cards, potions, relics, events, Neow's blessing), ported
// from original_source/lib/src/systems/rng/*.rs and lib/src/rng/*.rs. Each
// generator owns its own StsRandom stream, matching the reference's design
// of never sharing a single PRNG across unrelated subsystems.
package generators

import (
	"fmt"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/rng"
)

// RewardCard pairs a rolled card with whether it was upgraded on the way
// into the reward screen. CombatRewards returns an UnimplementedError
// whenever its upgrade roll hits a non-rare card, so every RewardCard it
// returns has Upgraded false.
type RewardCard struct {
	ID       data.CardID
	Upgraded bool
}

// CardGenerator rolls combat card rewards and colorless/curse choices,
// ported from lib/src/systems/rng/card_generator.rs's CardGenerator.
type CardGenerator struct {
	character          *data.Character
	upgradeProbability float64
	rng                *rng.StsRandom

	// rarityBias is the running rarity-bias counter credited in the
	// reference to "gamerpuppy" for reverse-engineering the game's
	// cardRarityFactor mechanic: every Common roll nudges the next roll's
	// rare/uncommon odds upward, reset to 5 whenever a Rare is actually
	// rolled.
	rarityBias int32
}

// NewCardGenerator constructs a CardGenerator for a character and act,
// ported from CardGenerator::new.
func NewCardGenerator(seed rng.Seed, character *data.Character, actNumber int) (*CardGenerator, error) {
	var rareProb float64
	switch actNumber {
	case 1:
		rareProb = 0.0
	case 2:
		rareProb = 0.25
	case 3, 4:
		rareProb = 0.5
	default:
		return nil, fmt.Errorf("generators: unknown act number %d", actNumber)
	}
	return &CardGenerator{
		character:          character,
		upgradeProbability: rareProb,
		rng:                rng.NewStsRandom(seed),
		rarityBias:         5,
	}, nil
}

// poolForClass rolls the rarity-biased d100 and returns whether the result
// is Rare along with the pool it came from, ported from pool_for_class.
func (g *CardGenerator) poolForClass() (bool, []data.CardID) {
	d100 := int32(g.rng.GenRange(0, 99)) + g.rarityBias
	switch {
	case d100 < 3:
		g.rarityBias = 5
		return true, g.character.RarePool
	case d100 < 40:
		return false, g.character.UncommonPool
	default:
		g.rarityBias = max32(g.rarityBias-1, -40)
		return false, g.character.CommonPool
	}
}

// CombatRewards rolls three distinct cards for a post-combat reward screen,
// ported from combat_rewards. The reference's own upgrade-the-reward-card
// branch is a bare todo!() (it only ever fires outside Act 1, where
// upgradeProbability is 0), so this returns the same UnimplementedError in
// that branch rather than guessing at unported behavior.
func (g *CardGenerator) CombatRewards() ([]RewardCard, error) {
	picks := make([]cardPick, 0, 3)
	for i := 0; i < 3; i++ {
		isRare, pool := g.poolForClass()
		idx := g.rng.Choose(len(pool))
		card := pool[idx]
		for containsCardID(picks, card) {
			idx = g.rng.Choose(len(pool))
			card = pool[idx]
		}
		picks = append(picks, cardPick{id: card, rare: isRare})
	}

	result := make([]RewardCard, 0, len(picks))
	for _, p := range picks {
		shouldUpgrade := g.rng.WeightedChoose([]float64{g.upgradeProbability, 1.0}) == 0
		shouldUpgrade = shouldUpgrade && !p.rare
		if shouldUpgrade {
			return nil, data.NewUnimplementedError(data.KindEffect, "reward card upgrade")
		}
		result = append(result, RewardCard{ID: p.id})
	}
	return result, nil
}

// cardPick tracks a rolled card's identity and rarity while combatRewards
// dedupes its three draws.
type cardPick struct {
	id   data.CardID
	rare bool
}

func containsCardID(picks []cardPick, id data.CardID) bool {
	for _, p := range picks {
		if p.id == id {
			return true
		}
	}
	return false
}

// ThreeColorlessCardChoices offers three distinct uncommon colorless cards,
// ported from three_colorless_card_choices's sample_without_replacement.
func (g *CardGenerator) ThreeColorlessCardChoices() []data.CardID {
	idxs := g.rng.SampleWithoutReplacement(len(data.UncommonColorlessPool), 3)
	out := make([]data.CardID, len(idxs))
	for i, idx := range idxs {
		out[i] = data.UncommonColorlessPool[idx]
	}
	return out
}

// OneCurse draws a single random curse card, ported from one_curse.
func (g *CardGenerator) OneCurse() data.CardID {
	return data.CursePool[g.rng.Choose(len(data.CursePool))]
}

func max32(a, b int32) int32 {
	if a > b {
		return a
	}
	return b
}
