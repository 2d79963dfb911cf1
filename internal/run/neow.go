package run

import (
	stdctx "context"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/generators"
	"github.com/nkessler/spireengine/internal/proto"
	"github.com/nkessler/spireengine/internal/rng"
)

// neowEvent runs the run's opening event, ported from
// lib/src/systems/sim/neow_simulator.rs's NeowSimulator::run/
// handle_neow_blessing. The reference constructs its card_rng and
// potion_rng at the run seed's unmodified starting state (before the floor
// loop's per-floor reseed ever runs), so neowGen here is built the same way
// rather than from currentFloorSeed (floor is still 0 at this point).
func (r *Run) neowEvent(ctx stdctx.Context) error {
	cardRNG := rng.NewStsRandom(r.seed)
	neowGen := generators.NewNeowGenerator(r.seed, r.character, cardRNG)

	blessings := neowGen.BlessingChoices()
	choices := make([]proto.Choice, len(blessings))
	for i, b := range blessings {
		choices[i] = proto.NeowBlessingChoice{Index: i, Label: neowLabel(b)}
	}
	pick, err := r.controller.PromptChoice(ctx, proto.PromptChooseNeow, choices)
	if err != nil {
		return err
	}
	if pick < 0 || pick >= len(blessings) {
		pick = 0
	}
	return r.applyNeowBlessing(ctx, neowGen, blessings[pick])
}

func neowLabel(c generators.NeowChoice) string {
	if c.Blessing == data.NeowComposite {
		return c.Penalty.Description() + " — " + c.Bonus.Description()
	}
	return c.Blessing.Description()
}

func (r *Run) applyNeowBlessing(ctx stdctx.Context, neowGen *generators.NeowGenerator, c generators.NeowChoice) error {
	switch c.Blessing {
	case data.NeowChooseCard:
		return r.chooseCardToObtain(ctx, neowGen.ThreeCardChoices())
	case data.NeowChooseColorlessCard:
		return r.chooseCardToObtain(ctx, neowGen.ThreeColorlessCardChoices())
	case data.NeowGainOneHundredGold:
		return r.gainGold(ctx, 100)
	case data.NeowIncreaseMaxHpByTenPercent:
		return r.increaseMaxHP(ctx, r.persistent.HPMax/10)
	case data.NeowsLament:
		// NeowsLament has no RelicID in this engine's content-table scope
		// (it grants "enemies in the next three combat rooms have 1 HP",
		// a run-level modifier this engine has no slot for yet); approximated
		// as the nearest blessing this engine can actually grant, an extra
		// common relic, rather than silently doing nothing.
		return r.obtainRelic(ctx, r.relicGen.CommonRelic())
	case data.NeowObtainRandomCommonRelic:
		return r.obtainRelic(ctx, r.relicGen.CommonRelic())
	case data.NeowObtainRandomRareCard:
		return r.obtainCard(ctx, neowGen.OneRandomRareCard(), false)
	case data.NeowObtainThreeRandomPotions:
		return r.choosePotionsToObtain(ctx, r.potionGen.GenPotions(3))
	case data.NeowRemoveCard:
		return r.chooseCardToRemove(ctx)
	case data.NeowReplaceStarterRelic:
		starter := r.character.StartingRelic
		replacement := r.relicGen.BossRelic()
		r.persistent.RemoveRelic(starter)
		return r.obtainRelic(ctx, replacement)
	case data.NeowTransformCard, data.NeowUpgradeCard:
		// Both are bare todo!() in the reference itself (outside this
		// engine's content-table scope, same as every other
		// UnimplementedError boundary); skip rather than guess at
		// unported behavior.
		return data.NewUnimplementedError(data.KindEffect, "neow transform/upgrade card")
	case data.NeowComposite:
		return r.applyNeowComposite(ctx, neowGen, c.Bonus, c.Penalty)
	default:
		return data.NewUnimplementedError(data.KindEffect, "neow blessing")
	}
}

func (r *Run) applyNeowComposite(ctx stdctx.Context, neowGen *generators.NeowGenerator, bonus data.NeowBonus, penalty data.NeowPenalty) error {
	switch penalty {
	case data.NeowPenaltyDecreaseMaxHpByTenPercent:
		if err := r.decreaseMaxHP(ctx, r.persistent.HPMax/10); err != nil {
			return err
		}
	case data.NeowPenaltyLoseAllGold:
		if err := r.loseGold(ctx, r.persistent.Gold); err != nil {
			return err
		}
	case data.NeowPenaltyObtainCurse:
		if err := r.obtainCard(ctx, neowGen.OneCurse(), false); err != nil {
			return err
		}
	case data.NeowPenaltyTakeDamage:
		if err := r.takeNeowDamage(ctx, r.persistent.HP/10*3); err != nil {
			return err
		}
	}

	switch bonus {
	case data.NeowBonusGainTwoHundredFiftyGold:
		return r.gainGold(ctx, 250)
	case data.NeowBonusIncreaseMaxHpByTwentyPercent:
		return r.increaseMaxHP(ctx, r.persistent.HPMax/5)
	case data.NeowBonusObtainRandomRareRelic:
		return r.obtainRelic(ctx, r.relicGen.RareRelic())
	case data.NeowBonusChooseRareCard:
		return r.chooseCardToObtain(ctx, r.character.RarePool)
	case data.NeowBonusChooseRareColorlessCard, data.NeowBonusRemoveTwoCards, data.NeowBonusTransformTwoCards:
		// Bare todo!() in the reference (see handle_neow_blessing's bonus
		// match arm); not ported for the same reason.
		return data.NewUnimplementedError(data.KindEffect, "neow composite bonus")
	default:
		return data.NewUnimplementedError(data.KindEffect, "neow composite bonus")
	}
}

// chooseCardToObtain offers a set of cards plus a Skip option, ported from
// choose_card_to_obtain.
func (r *Run) chooseCardToObtain(ctx stdctx.Context, cards []data.CardID) error {
	choices := make([]proto.Choice, 0, len(cards)+1)
	for i, id := range cards {
		card, err := data.LookupCard(id)
		if err != nil {
			return err
		}
		choices = append(choices, proto.ObtainCardChoice{RewardIndex: i, Card: cardViewFor(card, false)})
	}
	choices = append(choices, proto.SkipChoice{})

	pick, err := r.controller.PromptChoice(ctx, proto.PromptChooseOne, choices)
	if err != nil {
		return err
	}
	if pick < 0 || pick >= len(cards) {
		return nil
	}
	return r.obtainCard(ctx, cards[pick], false)
}

// chooseCardToRemove offers the whole deck for removal, ported from
// choose_card_to_remove.
func (r *Run) chooseCardToRemove(ctx stdctx.Context) error {
	choices := make([]proto.Choice, len(r.persistent.Deck))
	for i, dc := range r.persistent.Deck {
		card, err := data.LookupCard(dc.ID)
		if err != nil {
			return err
		}
		choices[i] = proto.RemoveCardChoice{DeckIndex: i, Card: cardViewFor(card, dc.Upgraded)}
	}
	pick, err := r.controller.PromptChoice(ctx, proto.PromptRemoveCard, choices)
	if err != nil {
		return err
	}
	if pick < 0 || pick >= len(choices) {
		return nil
	}
	return r.removeCardAt(ctx, pick)
}
