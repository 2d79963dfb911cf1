package combat

import "github.com/nkessler/spireengine/internal/player"

// discard.go implements end-of-turn hand disposal per §4.4.4: each card
// still in hand either lingers (OnLinger fires first), retains (stays in
// hand, cost reset), exhausts (Ethereal takes priority over Retain), or
// discards — in that priority order.

// endOfTurnDiscard processes the whole hand once PlayerTurn ends, in hand
// order, then resets every pile card's this-turn cost back to its base
// combat cost.
func (c *Context) endOfTurnDiscard() {
	hand := c.Combat.Piles.Hand
	c.Combat.Piles.Hand = nil

	var retained []*player.CardInstance
	for _, inst := range hand {
		if inst.Card.OnLinger != nil {
			inst.Card.OnLinger.Resolve(c, -1, inst.Upgraded)
		}
		switch {
		case inst.Card.Ethereal:
			c.Combat.Piles.ToExhaust(inst)
		case inst.Card.Retain:
			retained = append(retained, inst)
		default:
			c.Combat.Piles.ToDiscard(inst)
		}
	}
	c.Combat.Piles.Hand = retained

	for _, inst := range c.Combat.Piles.AllCards() {
		inst.ResetToCombatCost()
	}
}
