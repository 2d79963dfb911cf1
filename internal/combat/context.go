// Package combat implements spec.md §4.4's combat engine (L4–L6): the
// effect queue, damage calculator, draw/discard/exhaust systems, enemy AI,
// and condition ticking, grounded on the teacher's internal/game package
// (its Duel/GameState/effect-closure pattern) generalized from a two-player
// duel to a one-player-vs-enemy-party encounter.
package combat

import (
	stdctx "context"
	"sort"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/player"
	"github.com/nkessler/spireengine/internal/proto"
	"github.com/nkessler/spireengine/internal/rng"
)

// Context is the combat engine's live state, analogous to tcgx's *Duel: it
// holds the player's persistent and combat state, the enemy party, every
// RNG stream a card/relic/enemy effect might need, and the proto.Controller
// used to emit notifications and prompt for choices (the L9 boundary this
// package never crosses directly). Context implements data.EffectContext so
// card, relic, and potion closures can call back into combat state without
// internal/data importing internal/combat.
type Context struct {
	Persistent *player.PersistentState
	Combat     *player.CombatState
	Enemies    [5]*EnemyState

	// AIStream drives enemy move selection only (§4.4.5: "used only for AI
	// decisions"). ShuffleStream backs discard-into-draw reshuffles.
	// MiscStream backs AddCardToDrawPileRandom's insert position.
	// CardRandomiserStream backs Confused's cost randomisation.
	AIStream             *rng.StsRandom
	ShuffleStream        *rng.StsRandom
	MiscStream           *rng.StsRandom
	CardRandomiserStream *rng.StsRandom

	Controller proto.Controller

	queue *EffectQueue

	// resolvingEnemy is the slot index of the enemy whose EnemyEffect is
	// currently resolving, or -1 while resolving a PlayerEffect. It backs
	// every "Self"-named EffectContext method (SelfHP, ApplyConditionSelf,
	// HealSelf, SelfBlock, SelfStacksOf): "self" means the bearer of the
	// effect currently in flight, not always the player.
	resolvingEnemy int

	nextDeckIndex int

	// goCtx is the standard-library context for the in-flight prompt/notify
	// calls. data.EffectContext's methods can't take one directly (its
	// signature is fixed by internal/data, which must not import
	// "context"-aware packages beyond the stdlib "context" itself for this
	// one purpose), so ProcessQueue and the turn orchestration stash it
	// here before resolving any effect that might need to prompt
	// (ChooseCardInHandToUpgrade).
	goCtx stdctx.Context
}

// NewContext wires a fresh combat context around a persistent state, ready
// for Setup to populate the enemy party and starting hand. floorSeed is the
// run seed offset for the current floor (spec §4.4.5: "the AI rng is seeded
// from the current floor's seed"); the other three streams are seeded from
// the same floor seed too, mirroring simulator.rs reseeding card_rng/
// misc_rng per floor via seed.with_offset(floor).
func NewContext(persistent *player.PersistentState, floorSeed rng.Seed, controller proto.Controller) *Context {
	return &Context{
		Persistent:            persistent,
		Combat:                player.NewCombatState(persistent),
		AIStream:              rng.NewStsRandom(floorSeed),
		ShuffleStream:         rng.NewStsRandom(floorSeed.WithOffset(1)),
		MiscStream:            rng.NewStsRandom(floorSeed.WithOffset(2)),
		CardRandomiserStream:  rng.NewStsRandom(floorSeed.WithOffset(3)),
		Controller:            controller,
		queue:                 NewEffectQueue(),
		resolvingEnemy:        -1,
	}
}

// Setup populates the draw pile from the persistent deck (shuffled) and
// spawns the enemy party, per spec §4.4's [Start] → OnCombatStarted
// transition.
func (c *Context) Setup(goCtx stdctx.Context, enemies []*EnemyState) error {
	copy(c.Enemies[:], enemies)

	c.Combat.Piles = player.CardPiles{}
	for _, dc := range c.Persistent.Deck {
		card, err := data.LookupCard(dc.ID)
		if err != nil {
			return err
		}
		inst := player.NewCardInstance(card, c.nextDeckIndex, dc.Upgraded)
		c.nextDeckIndex++
		c.Combat.Piles.ToDrawTop(inst)
	}
	c.ShuffleStream.JavaCompatShuffle(func(i, j int) {
		c.Combat.Piles.Draw[i], c.Combat.Piles.Draw[j] = c.Combat.Piles.Draw[j], c.Combat.Piles.Draw[i]
	}, len(c.Combat.Piles.Draw))

	// Innate cards sort to the top of the draw pile (§4.4.3: "combat-start
	// extras: sort draw pile so innate cards end up on top").
	sort.SliceStable(c.Combat.Piles.Draw, func(i, j int) bool {
		return !c.Combat.Piles.Draw[i].Card.Innate && c.Combat.Piles.Draw[j].Card.Innate
	})

	for _, enemy := range c.Enemies {
		if enemy != nil && enemy.Enemy.FirstMove != nil {
			enemy.Move = enemy.Enemy.FirstMove
			enemy.RunLength = 1
		}
	}

	c.fireOnCombatStart()

	return c.notifyEnemyParty(goCtx)
}

// EnemyCountAlive reports how many enemy slots are still occupied.
func (c *Context) EnemyCountAlive() int {
	n := 0
	for _, e := range c.Enemies {
		if e != nil {
			n++
		}
	}
	return n
}

// CombatShouldEnd reports spec §4.4's [CheckEnd] condition.
func (c *Context) CombatShouldEnd() bool {
	return !c.Persistent.IsAlive() || c.EnemyCountAlive() == 0
}

// Victorious reports whether the just-ended combat was a win.
func (c *Context) Victorious() bool {
	return c.Persistent.IsAlive() && c.EnemyCountAlive() == 0
}

func (c *Context) currentEnemy() *EnemyState {
	if c.resolvingEnemy < 0 || c.resolvingEnemy >= len(c.Enemies) {
		return nil
	}
	return c.Enemies[c.resolvingEnemy]
}
