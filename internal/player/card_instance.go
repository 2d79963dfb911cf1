package player

import "github.com/nkessler/spireengine/internal/data"

// CardInstance is a single card living somewhere in a combat: hand, draw
// pile, discard pile, or exhaust pile. It pairs the static data.Card with
// the mutable state spec.md §3's CardCombatState calls out — split the same
// way the teacher keeps Card (static) separate from CardInstance (runtime)
// in internal/game/types.go, generalized from the teacher's zone/owner
// fields to this engine's cost-tracking fields instead.
type CardInstance struct {
	Card *data.Card

	// DeckIndex is a stable identity used only for reporting (notifications
	// sort draw/exhaust piles by it before emission); it does not change as
	// the card moves between piles.
	DeckIndex int

	Upgraded bool

	// BaseCost is this card's energy cost at the start of combat (before any
	// this-turn modifier such as Confused's cost randomisation or
	// Corruption's "Skills cost 0"). ThisTurnCost is reset to BaseCost at
	// end of turn (§4.4.4); UntilPlayedCost, when non-nil, overrides
	// ThisTurnCost for exactly one play (Armaments-style "cost 0 until
	// played" effects) and is cleared once consumed.
	BaseCost       int
	ThisTurnCost   int
	UntilPlayedCost *int

	// AdditionalDamage accumulates per-combat damage boosts scoped to this
	// specific card instance (e.g. a Pen Nib-style doubling is engine-wide
	// rather than per-card in this content-table scope, so this field stays
	// at 0 for every card this engine currently implements; it is carried
	// because spec.md §3 names it as part of CardCombatState).
	AdditionalDamage int
}

// NewCardInstance builds a fresh instance from static card data, as it would
// appear freshly drawn into a pile with no cost modifiers applied yet.
func NewCardInstance(card *data.Card, deckIndex int, upgraded bool) *CardInstance {
	cost := card.EffectiveCost(upgraded)
	return &CardInstance{
		Card:         card,
		DeckIndex:    deckIndex,
		Upgraded:     upgraded,
		BaseCost:     cost,
		ThisTurnCost: cost,
	}
}

// EffectiveCost returns the cost this instance would spend if played right
// now: the until-played override if one is pending, else this turn's cost.
func (ci *CardInstance) EffectiveCost() int {
	if ci.UntilPlayedCost != nil {
		return *ci.UntilPlayedCost
	}
	return ci.ThisTurnCost
}

// ResetToCombatCost clears any this-turn or until-played override, restoring
// the instance to its base-combat cost (§4.4.4: "reset every card's
// this-turn cost to its this-combat cost" at end of turn).
func (ci *CardInstance) ResetToCombatCost() {
	ci.ThisTurnCost = ci.BaseCost
	ci.UntilPlayedCost = nil
}
