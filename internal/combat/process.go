package combat

import (
	stdctx "context"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/player"
)

// process.go is spec §4.4.1's Effect Queue drain loop: pop the front
// element, resolve it against whichever combatant it addresses, check for
// newly-dead enemies, repeat until the queue empties or the player dies.
// Grounded on original_source's EncounterSimulator::play_card, which
// resolves a card's effect chain and checks for enemy death after each step
// rather than batching the checks at the end.

func effectsForCard(inst *player.CardInstance) []data.PlayerEffect {
	if inst.Upgraded && inst.Card.UpgradedEffects != nil {
		return inst.Card.UpgradedEffects
	}
	return inst.Card.Effects
}

// EnqueueCard pushes a played card's full effect chain onto the back of the
// queue, addressed at target (an enemy slot, or -1 for self/all-enemies
// effects that resolve their own targeting).
func (c *Context) EnqueueCard(inst *player.CardInstance, target int) {
	for _, eff := range effectsForCard(inst) {
		resolve := eff.Resolve
		c.queue.PushBack(QueuedEffect{Player: &PlayerEffectCall{
			Resolve:  func(ctx *Context, target int, upgraded bool) { resolve(ctx, target, upgraded) },
			Target:   target,
			Upgraded: inst.Upgraded,
		}})
	}
}

// EnqueueEnemyMove pushes the enemy's currently chosen move's effect onto
// the queue. A move's Effect.Hits field describes how many times its Resolve
// closure applies damage internally (the closures in internal/data already
// bake that in, e.g. nothing in this content-table scope has Hits > 1 yet,
// so Resolve is called exactly once per move regardless).
func (c *Context) EnqueueEnemyMove(slot int) {
	e := c.Enemies[slot]
	if e == nil || e.Move == nil {
		return
	}
	resolve := e.Move.Effect.Resolve
	c.queue.PushBack(QueuedEffect{Enemy: &EnemyEffectCall{
		Resolve:   func(ctx *Context, upgraded bool) { resolve(ctx, upgraded) },
		EnemySlot: slot,
	}})
}

// ProcessQueue drains the effect queue to quiescence, stashing ctx so any
// effect that needs to prompt (ChooseCardInHandToUpgrade) can reach the
// controller. Stops early if the player dies mid-resolution, per spec
// invariant that a dead player ends combat immediately regardless of what
// else is still queued.
func (c *Context) ProcessQueue(ctx stdctx.Context) error {
	c.goCtx = ctx
	for {
		qe, ok := c.queue.PopFront()
		if !ok {
			break
		}
		switch {
		case qe.Player != nil:
			c.resolvingEnemy = -1
			qe.Player.Resolve(c, qe.Player.Target, qe.Player.Upgraded)
		case qe.Enemy != nil:
			c.resolvingEnemy = qe.Enemy.EnemySlot
			qe.Enemy.Resolve(c, qe.Enemy.Upgraded)
			c.resolvingEnemy = -1
		}
		if err := c.checkEnemyDeaths(ctx); err != nil {
			return err
		}
		if !c.Persistent.IsAlive() {
			break
		}
	}
	return nil
}

// checkEnemyDeaths clears any enemy slot whose HP has reached zero and
// notifies the controller, emptying the slot so EnemyCountAlive/targeting
// skip it from here on.
func (c *Context) checkEnemyDeaths(ctx stdctx.Context) error {
	for i, e := range c.Enemies {
		if e != nil && !e.IsAlive() {
			if err := c.notifyEnemyDied(ctx, i); err != nil {
				return err
			}
			c.Enemies[i] = nil
		}
	}
	return nil
}
