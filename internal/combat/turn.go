package combat

import (
	stdctx "context"
	"errors"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/proto"
)

// turn.go is spec §4.4's top-level state machine:
// [Start]→OnCombatStarted→[PlayerTurnStart]→[PlayerTurn]→[EnemiesTurnStart]→
// [EnemyResolutions]→[EnemiesTurnEnd]→[CheckEnd], looping until CheckEnd
// fires. Grounded on original_source's EncounterSimulator::run/
// conduct_player_turn/conduct_enemies_turn/play_card, generalized from its
// single-player's-turn-then-single-enemy's-turn duel shape (this engine
// already supports a multi-enemy party; the reference's own loop iterates
// every living enemy's action the same way).

// startingHandSize and startingEnergy are the vanilla per-turn constants
// every character in this engine's content-table scope shares (Ironclad is
// the only implemented character; Defect's orb-driven energy variance has no
// port here).
const (
	startingHandSize = 5
	startingEnergy   = 3

	// maxHandSize is the hand-size cap drawOne respects (spec §4.4.3: a draw
	// that would put the hand over 10 cards does nothing instead).
	maxHandSize = 10
)

var errNoLivingEnemySlots = errors.New("combat: no living enemy to target")

// Run drives the whole encounter to completion and returns whether the
// player won.
func (c *Context) Run(ctx stdctx.Context) (bool, error) {
	c.goCtx = ctx
	for !c.CombatShouldEnd() {
		if err := c.conductPlayerTurn(ctx); err != nil {
			return false, err
		}
		if c.CombatShouldEnd() {
			break
		}
		if err := c.conductEnemiesTurn(ctx); err != nil {
			return false, err
		}
	}
	victory := c.Victorious()
	if err := c.notifyCombatEnded(ctx, victory); err != nil {
		return victory, err
	}
	c.fireOnCombatEnd()
	return victory, nil
}

// conductPlayerTurn runs PlayerTurnStart then loops PlayerTurn prompts until
// the player ends their turn or the encounter resolves mid-turn (e.g. an
// Enrage-style enemy reaction kills the player — not reachable in this
// content-table scope, but the CombatShouldEnd check guards it generically).
func (c *Context) conductPlayerTurn(ctx stdctx.Context) error {
	c.Combat.ResetTurnState()
	c.Combat.Energy = startingEnergy
	c.Draw(startingHandSize)
	c.fireOnTurnStart()

	if err := c.notifyHand(ctx); err != nil {
		return err
	}
	if err := c.notifyEnergy(ctx); err != nil {
		return err
	}

	for {
		if c.CombatShouldEnd() {
			return nil
		}
		choices, handIndices, potionSlots := c.playerActionChoices()
		pick, err := c.Controller.PromptChoice(ctx, proto.PromptCombatAction, choices)
		if err != nil {
			return err
		}
		if pick < 0 || pick >= len(choices) {
			continue
		}
		switch choices[pick].(type) {
		case proto.EndTurnChoice:
			c.endOfTurnDiscard()
			c.tickPlayerConditions()
			c.fireOnTurnEnd()
			return nil
		case proto.PlayCardChoice:
			if err := c.playCard(ctx, handIndices[pick]); err != nil {
				return err
			}
		case proto.ExpendPotionChoice:
			if err := c.playPotion(ctx, potionSlots[pick]); err != nil {
				return err
			}
		}
	}
}

// playerActionChoices renders the current hand and filled potion slots as
// play choices plus an always-available EndTurnChoice. handIndices[i] and
// potionSlots[i] map choices[i] back to the hand/potion index it came from
// (only meaningful for the matching Choice variant at that position).
func (c *Context) playerActionChoices() ([]proto.Choice, []int, []int) {
	var choices []proto.Choice
	var handIndices []int
	var potionSlots []int

	for i, inst := range c.Combat.Piles.Hand {
		if len(effectsForCard(inst)) == 0 {
			continue
		}
		if inst.EffectiveCost() > c.Combat.Energy && inst.EffectiveCost() >= 0 {
			continue
		}
		choices = append(choices, proto.PlayCardChoice{HandIndex: i, Card: cardView(inst), Cost: inst.EffectiveCost()})
		handIndices = append(handIndices, i)
		potionSlots = append(potionSlots, -1)
	}
	for i, p := range c.Persistent.Potions {
		if p == nil {
			continue
		}
		potion, err := data.LookupPotion(*p)
		if err != nil {
			continue
		}
		choices = append(choices, proto.ExpendPotionChoice{Action: proto.PotionActionDrink, Slot: i, Potion: potion.Name})
		handIndices = append(handIndices, -1)
		potionSlots = append(potionSlots, i)
	}
	choices = append(choices, proto.EndTurnChoice{})
	handIndices = append(handIndices, -1)
	potionSlots = append(potionSlots, -1)

	return choices, handIndices, potionSlots
}

// playCard resolves a single card play: pay its cost, remove it from hand,
// prompt for a target if one is needed, enqueue its effect chain, and drain
// the queue. Exhausts-on-play cards (distinct from ExhaustSelf on an
// individual PlayerEffect) move to the exhaust pile instead of discard.
func (c *Context) playCard(ctx stdctx.Context, handIndex int) error {
	inst := c.Combat.Piles.Hand[handIndex]
	cost := inst.EffectiveCost()
	c.Combat.Energy -= cost
	c.Combat.Piles.RemoveFromHandAt(handIndex)
	c.Combat.PlayingHandIndex = handIndex

	target := -1
	if inst.Card.Target == data.TargetSingleEnemy {
		var err error
		target, err = c.promptTargetEnemy(ctx)
		if err != nil {
			return err
		}
	}

	c.EnqueueCard(inst, target)
	if err := c.ProcessQueue(ctx); err != nil {
		return err
	}

	if inst.Card.Exhausts {
		c.Combat.Piles.ToExhaust(inst)
	} else {
		c.Combat.Piles.ToDiscard(inst)
	}
	c.Combat.PlayingHandIndex = -1

	if err := c.notifyHand(ctx); err != nil {
		return err
	}
	if err := c.notifyEnergy(ctx); err != nil {
		return err
	}
	return c.notifyPlayerState(ctx)
}

// playPotion resolves drinking a potion: its Drink closure runs through the
// same queue as a card effect, then the slot empties.
func (c *Context) playPotion(ctx stdctx.Context, slot int) error {
	id := c.Persistent.Potions[slot]
	if id == nil {
		return nil
	}
	potion, err := data.LookupPotion(*id)
	if err != nil {
		return err
	}

	target := -1
	drink := potion.Drink
	c.queue.PushBack(QueuedEffect{Player: &PlayerEffectCall{
		Resolve: func(ctx *Context, target int, upgraded bool) { drink(ctx, target) },
		Target:  target,
	}})
	if err := c.ProcessQueue(ctx); err != nil {
		return err
	}

	c.Persistent.ClearPotionSlot(slot)
	return c.notifyPlayerState(ctx)
}

// promptTargetEnemy prompts for which living enemy a single-target effect
// addresses.
func (c *Context) promptTargetEnemy(ctx stdctx.Context) (int, error) {
	var choices []proto.Choice
	var slots []int
	for i, e := range c.Enemies {
		if e.IsAlive() {
			choices = append(choices, proto.TargetEnemyChoice{Slot: i, Enemy: enemyView(i, e)})
			slots = append(slots, i)
		}
	}
	if len(slots) == 0 {
		return 0, errNoLivingEnemySlots
	}
	pick, err := c.Controller.PromptChoice(ctx, proto.PromptTargetEnemy, choices)
	if err != nil {
		return 0, err
	}
	if pick < 0 || pick >= len(slots) {
		pick = 0
	}
	return slots[pick], nil
}

// conductEnemiesTurn runs EnemiesTurnStart/EnemyResolutions/EnemiesTurnEnd:
// every living enemy's block resets to 0 (the enemy-side counterpart to
// CombatState.ResetTurnState, per spec invariant 5's turn-scoped block),
// then each picks and resolves its queued move in slot order, then all
// enemy conditions tick.
func (c *Context) conductEnemiesTurn(ctx stdctx.Context) error {
	for _, e := range c.Enemies {
		if e.IsAlive() {
			e.Block = 0
		}
	}

	for i, e := range c.Enemies {
		if !e.IsAlive() {
			continue
		}
		if e.Move == nil {
			c.chooseEnemyMove(e)
		}
		c.EnqueueEnemyMove(i)
		if err := c.ProcessQueue(ctx); err != nil {
			return err
		}
		if err := c.notifyPlayerState(ctx); err != nil {
			return err
		}
		if c.CombatShouldEnd() {
			return nil
		}
	}

	c.tickEnemyConditions()

	for i, e := range c.Enemies {
		if e.IsAlive() {
			c.chooseEnemyMove(e)
			if err := c.notifyEnemyStatus(ctx, i); err != nil {
				return err
			}
		}
	}
	return nil
}
