package combat

import (
	"context"

	"github.com/nkessler/spireengine/internal/player"
	"github.com/nkessler/spireengine/internal/proto"
)

// notify.go builds the sanitised proto.*View snapshots every Notify call
// sends out, and the handful of notify* helper methods the turn/process/draw
// files call at each state-change point spec.md §6 documents. Grounded on
// tcgx's EventView construction helpers in internal/game/view.go, generalized
// from two-player duel views to the player-vs-enemy-party shape this engine
// needs.

func cardView(inst *player.CardInstance) proto.CardView {
	return proto.CardView{
		Name:     inst.Card.Name,
		Cost:     inst.EffectiveCost(),
		Upgraded: inst.Upgraded,
	}
}

func cardViews(insts []*player.CardInstance) []proto.CardView {
	views := make([]proto.CardView, len(insts))
	for i, inst := range insts {
		views[i] = cardView(inst)
	}
	return views
}

func conditionViews(cl player.ConditionList) []proto.ConditionView {
	views := make([]proto.ConditionView, len(cl))
	for i, cond := range cl {
		views[i] = proto.ConditionView{Name: cond.ID.String(), Stacks: cond.Stacks}
	}
	return views
}

func enemyView(slot int, e *EnemyState) proto.EnemyView {
	if e == nil {
		return proto.EnemyView{Slot: slot}
	}
	views := conditionViews(e.Conditions)
	if e.Strength != 0 {
		views = append(views, proto.ConditionView{Name: "Strength", Stacks: e.Strength})
	}
	return proto.EnemyView{
		Slot:       slot,
		Name:       e.Enemy.Name,
		HP:         e.HP,
		HPMax:      e.HPMax,
		Block:      e.Block,
		Intent:     e.Intent(),
		Conditions: views,
	}
}

func (c *Context) enemyPartyView() []proto.EnemyView {
	var views []proto.EnemyView
	for i, e := range c.Enemies {
		if e != nil {
			views = append(views, enemyView(i, e))
		}
	}
	return views
}

func (c *Context) playerConditionViews() []proto.ConditionView {
	views := conditionViews(c.Combat.Conditions)
	if c.Combat.Strength != 0 {
		views = append(views, proto.ConditionView{Name: "Strength", Stacks: c.Combat.Strength})
	}
	if c.Combat.Dexterity != 0 {
		views = append(views, proto.ConditionView{Name: "Dexterity", Stacks: c.Combat.Dexterity})
	}
	return views
}

// notifyEnemyParty emits the combat-start enemy party snapshot (§4.4's
// OnCombatStarted transition).
func (c *Context) notifyEnemyParty(ctx context.Context) error {
	return c.Controller.Notify(ctx, proto.Notification{
		Kind:       proto.NotifyCombatStarted,
		EnemyParty: c.enemyPartyView(),
		HP:         c.Persistent.HP,
		HPMax:      c.Persistent.HPMax,
	})
}

// notifyHand, notifyEnemyStatus, notifyHP, and notifyShuffle cover the
// remaining per-state-change notification points this package's turn/draw/
// process code calls into.
func (c *Context) notifyHand(ctx context.Context) error {
	return c.Controller.Notify(ctx, proto.Notification{
		Kind: proto.NotifyHandChanged,
		Hand: cardViews(c.Combat.Piles.Hand),
	})
}

func (c *Context) notifyEnemyStatus(ctx context.Context, slot int) error {
	return c.Controller.Notify(ctx, proto.Notification{
		Kind:  proto.NotifyEnemyStatusChanged,
		Enemy: enemyView(slot, c.Enemies[slot]),
	})
}

func (c *Context) notifyEnemyDied(ctx context.Context, slot int) error {
	return c.Controller.Notify(ctx, proto.Notification{
		Kind:  proto.NotifyEnemyDied,
		Enemy: enemyView(slot, c.Enemies[slot]),
	})
}

func (c *Context) notifyHP(ctx context.Context) error {
	return c.Controller.Notify(ctx, proto.Notification{
		Kind:  proto.NotifyHPChanged,
		HP:    c.Persistent.HP,
		HPMax: c.Persistent.HPMax,
	})
}

func (c *Context) notifyBlock(ctx context.Context) error {
	return c.Controller.Notify(ctx, proto.Notification{
		Kind:  proto.NotifyBlockChanged,
		Block: c.Combat.Block,
	})
}

func (c *Context) notifyEnergy(ctx context.Context) error {
	return c.Controller.Notify(ctx, proto.Notification{
		Kind:   proto.NotifyEnergyChanged,
		Energy: c.Combat.Energy,
	})
}

func (c *Context) notifyConditions(ctx context.Context) error {
	return c.Controller.Notify(ctx, proto.Notification{
		Kind:       proto.NotifyConditionsChanged,
		Conditions: c.playerConditionViews(),
	})
}

func (c *Context) notifyShuffle(ctx context.Context) error {
	return c.Controller.Notify(ctx, proto.Notification{Kind: proto.NotifyShuffleOccurred, Shuffled: true})
}

func (c *Context) notifyCombatEnded(ctx context.Context, victory bool) error {
	return c.Controller.Notify(ctx, proto.Notification{Kind: proto.NotifyCombatEnded, Victory: victory})
}

// notifyPlayerState sends the HP/block/condition snapshot together, the
// bundle every queue-drain (a card play, a potion, an enemy's move) can
// change at once.
func (c *Context) notifyPlayerState(ctx context.Context) error {
	if err := c.notifyHP(ctx); err != nil {
		return err
	}
	if err := c.notifyBlock(ctx); err != nil {
		return err
	}
	return c.notifyConditions(ctx)
}
