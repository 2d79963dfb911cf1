package generators

import (
	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/rng"
)

// NeowChoice is one of the four options Neow offers at the start of a run.
// Every slot names a plain Blessing except the third, which is always a
// bonus/penalty pair — mirroring the reference's
// NeowBlessing::Composite(bonus, penalty) variant.
type NeowChoice struct {
	Blessing data.NeowBlessing
	Bonus    data.NeowBonus    // only meaningful when Blessing == data.NeowComposite
	Penalty  data.NeowPenalty  // only meaningful when Blessing == data.NeowComposite
}

// NeowGenerator rolls the run-opening Neow encounter, ported from
// lib/src/rng/neow.rs's NeowGenerator.
type NeowGenerator struct {
	neowRNG   *rng.StsRandom
	cardRNG   *rng.StsRandom
	character *data.Character
	choices   [4]NeowChoice
}

// NewNeowGenerator constructs the generator and immediately rolls the four
// blessing choices, ported from NeowGenerator::new. cardRNG is the run's
// shared card-roll stream — the reference deliberately routes some of
// Neow's own rolls (three_colorless_card_choices, one_curse) through it
// instead of neowRNG, and this port preserves that.
func NewNeowGenerator(seed rng.Seed, character *data.Character, cardRNG *rng.StsRandom) *NeowGenerator {
	neowRNG := rng.NewStsRandom(seed)
	first := data.FirstNeowPool[neowRNG.Choose(len(data.FirstNeowPool))]
	second := data.SecondNeowPool[neowRNG.Choose(len(data.SecondNeowPool))]
	penaltyAndBonuses := data.ThirdNeowPool[neowRNG.Choose(len(data.ThirdNeowPool))]
	bonus := penaltyAndBonuses.Bonuses[neowRNG.Choose(len(penaltyAndBonuses.Bonuses))]

	choices := [4]NeowChoice{
		{Blessing: first},
		{Blessing: second},
		{Blessing: data.NeowComposite, Bonus: bonus, Penalty: penaltyAndBonuses.Penalty},
		{Blessing: data.NeowReplaceStarterRelic},
	}
	// Reference code advances the rng an extra tick, so so shall we.
	neowRNG.Advance()

	return &NeowGenerator{
		neowRNG:   neowRNG,
		cardRNG:   cardRNG,
		character: character,
		choices:   choices,
	}
}

// BlessingChoices returns the four rolled options.
func (g *NeowGenerator) BlessingChoices() [4]NeowChoice {
	return g.choices
}

// ThreeCardChoices rolls three distinct cards for the ChooseCard blessing,
// ported from three_card_choices: each draw picks uncommon (33%) or common
// (67%) before choosing within that pool.
func (g *NeowGenerator) ThreeCardChoices() []data.CardID {
	result := make([]data.CardID, 0, 3)
	for i := 0; i < 3; i++ {
		poolIdx := g.neowRNG.WeightedChoose([]float64{0.33, 0.67})
		var pool []data.CardID
		if poolIdx == 0 {
			pool = g.character.UncommonPool
		} else {
			pool = g.character.CommonPool
		}
		idx := g.neowRNG.Choose(len(pool))
		card := pool[idx]
		for containsCardID(toPicks(result), card) {
			idx = g.neowRNG.Choose(len(pool))
			card = pool[idx]
		}
		result = append(result, card)
	}
	return result
}

func toPicks(ids []data.CardID) []cardPick {
	picks := make([]cardPick, len(ids))
	for i, id := range ids {
		picks[i] = cardPick{id: id}
	}
	return picks
}

// ThreeColorlessCardChoices offers three distinct uncommon colorless cards
// for the ChooseColorlessCard blessing. Ported to intentionally use the
// shared card RNG stream rather than neowRNG, matching the reference.
func (g *NeowGenerator) ThreeColorlessCardChoices() []data.CardID {
	idxs := g.cardRNG.SampleWithoutReplacement(len(data.UncommonColorlessPool), 3)
	out := make([]data.CardID, len(idxs))
	for i, idx := range idxs {
		out[i] = data.UncommonColorlessPool[idx]
	}
	return out
}

// OneRandomRareCard rolls the ObtainRandomRareCard bonus's card.
func (g *NeowGenerator) OneRandomRareCard() data.CardID {
	pool := g.character.RarePool
	return pool[g.neowRNG.Choose(len(pool))]
}

// OneCurse rolls the ObtainCurse penalty's curse, again intentionally using
// the shared card RNG stream rather than neowRNG.
func (g *NeowGenerator) OneCurse() data.CardID {
	return data.CursePool[g.cardRNG.Choose(len(data.CursePool))]
}
