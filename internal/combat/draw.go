package combat

import "github.com/nkessler/spireengine/internal/data"

// draw.go implements the single-card draw step spec §4.4.3 describes:
// reshuffle-on-empty, Confused's cost randomisation, and the OnDraw hook.
// Multi-card draws (the public Draw(n) in effectcontext.go) just call this
// once per card.

// drawOne pops the top of the draw pile into the hand, reshuffling the
// discard pile into the draw pile first if it's empty (§4.4.3: "if the draw
// pile is empty, shuffle the discard pile into it using the shuffle rng
// stream, emitting a shuffle notification, before drawing"). A combat with
// both piles empty is a no-op, matching the reference's behavior rather than
// panicking. Respects NoDraw and the hand-size-10 cap: either makes the call
// a no-op.
func (c *Context) drawOne() {
	if c.Combat.Conditions.StacksOf(data.ConditionNoDraw) > 0 {
		return
	}
	if len(c.Combat.Piles.Hand) >= maxHandSize {
		return
	}

	if len(c.Combat.Piles.Draw) == 0 {
		if len(c.Combat.Piles.Discard) == 0 {
			return
		}
		c.Combat.Piles.ShuffleDiscardIntoDraw(c.ShuffleStream.JavaCompatShuffle)
		if c.goCtx != nil {
			_ = c.notifyShuffle(c.goCtx)
		}
	}

	inst := c.Combat.Piles.DrawOne()
	if inst == nil {
		return
	}

	if c.Combat.Conditions.StacksOf(data.ConditionConfusion) > 0 && !inst.Card.Innate {
		inst.ThisTurnCost = c.CardRandomiserStream.GenRange(0, 3)
	}

	c.Combat.Piles.AddToHand(inst)

	if inst.Card.OnDraw != nil {
		inst.Card.OnDraw.Resolve(c, -1, inst.Upgraded)
	}
}
