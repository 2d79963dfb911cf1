package run

import (
	stdctx "context"

	"github.com/nkessler/spireengine/internal/combat"
	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/mapgen"
	"github.com/nkessler/spireengine/internal/player"
	"github.com/nkessler/spireengine/internal/proto"
	"github.com/nkessler/spireengine/internal/rng"
)

// rooms.go implements the per-room-kind handlers SPEC_FULL.md §4.5 names,
// ported from simulator.rs's Room dispatch — only Room::Monster has a body
// in the reference itself (every other arm is a bare todo!()), so the
// elite/boss/event/treasure/rest-site handlers below generalize that single
// combat-room pattern using this engine's own generators package rather than
// porting unported reference code.

func (r *Run) monsterRoom(ctx stdctx.Context) error {
	encounterID, coinFlip := r.encounterGen.NextMonsterEncounter()
	return r.runCombat(ctx, encounterID, coinFlip, false)
}

func (r *Run) eliteRoom(ctx stdctx.Context) error {
	encounterID, coinFlip := r.encounterGen.NextEliteEncounter()
	return r.runCombat(ctx, encounterID, coinFlip, false)
}

// bossRoom rolls the act's single boss encounter once and caches it, since
// NextBossEncounter is meant to be called exactly once per act (the
// reference picks the run's boss near run start, not per floor-arrival).
func (r *Run) bossRoom(ctx stdctx.Context) error {
	if r.bossEncounter == data.EncounterUnknown {
		r.bossEncounter = r.encounterGen.NextBossEncounter()
	}
	return r.runCombat(ctx, r.bossEncounter, false, true)
}

// runCombat resolves one combat room: build the enemy party, hand off to
// internal/combat for the turn loop, then grant the victor's rewards. Boss
// victories additionally grant a boss-tier relic (SPEC_FULL.md §3's
// content-table scope; relic.rs's RelicGenerator::_boss_relic), on top of
// the usual card/gold/potion rewards rather than instead of them.
func (r *Run) runCombat(ctx stdctx.Context, encounterID data.EncounterID, coinFlip, isBoss bool) error {
	enemyIDs, err := data.EnemyPartyFor(encounterID, coinFlip)
	if err != nil {
		return err
	}

	floorSeed := r.currentFloorSeed()
	cc := combat.NewContext(r.persistent, floorSeed, r.controller)

	// A stream distinct from the four NewContext already seeds (offsets
	// 0-3), mirroring party_generator.rs's EnemyInCombat::new(enemy, hp_rng,
	// ai_rng) split between the HP roll and the AI dispatcher's own stream.
	hpRNG := rng.NewStsRandom(floorSeed.WithOffset(4))
	enemies := make([]*combat.EnemyState, 0, len(enemyIDs))
	for _, id := range enemyIDs {
		enemy, err := data.LookupEnemy(id)
		if err != nil {
			return err
		}
		enemies = append(enemies, combat.NewEnemyState(enemy, hpRNG))
	}

	if err := cc.Setup(ctx, enemies); err != nil {
		return err
	}
	victory, err := cc.Run(ctx)
	if err != nil {
		return err
	}
	if !victory {
		return nil
	}
	if err := r.grantCombatRewards(ctx); err != nil {
		return err
	}
	if isBoss {
		return r.obtainRelic(ctx, r.relicGen.BossRelic())
	}
	return nil
}

// grantCombatRewards offers the post-victory card choice and applies the
// gold and potion rolls, ported from combat_rewards's call site in
// simulator.rs's Room::Monster arm. The reference's own gold-reward roll
// table was outside the retrieved pack, so a flat 10-gold award stands in
// for it (documented in DESIGN.md).
func (r *Run) grantCombatRewards(ctx stdctx.Context) error {
	cardGen, err := r.cardGenerator()
	if err != nil {
		return err
	}
	cards, err := cardGen.CombatRewards()
	if err != nil {
		return err
	}

	choices := make([]proto.Choice, 0, len(cards)+1)
	for i, rc := range cards {
		card, err := data.LookupCard(rc.ID)
		if err != nil {
			return err
		}
		choices = append(choices, proto.ObtainCardChoice{RewardIndex: i, Card: cardViewFor(card, rc.Upgraded)})
	}
	choices = append(choices, proto.SkipChoice{})

	pick, err := r.controller.PromptChoice(ctx, proto.PromptChooseCombatReward, choices)
	if err != nil {
		return err
	}
	if pick >= 0 && pick < len(cards) {
		if err := r.obtainCard(ctx, cards[pick].ID, cards[pick].Upgraded); err != nil {
			return err
		}
	}

	if err := r.gainGold(ctx, 10); err != nil {
		return err
	}

	if potionID, ok := r.potionGen.CombatReward(); ok {
		if err := r.choosePotionsToObtain(ctx, []data.PotionID{potionID}); err != nil {
			return err
		}
	}
	return nil
}

// restSiteRoom offers Rest (heal 30% max HP, rounded down) or Smith (upgrade
// a card), ported from SPEC_FULL.md §4.5's rest-site note.
func (r *Run) restSiteRoom(ctx stdctx.Context) error {
	upgradable := firstUpgradableDeckIndex(r.persistent.Deck)
	choices := []proto.Choice{proto.RestChoice{}}
	if upgradable >= 0 {
		choices = append(choices, proto.SmithChoice{})
	}
	choices = append(choices, proto.SkipChoice{})

	pick, err := r.controller.PromptChoice(ctx, proto.PromptChooseRestSiteAction, choices)
	if err != nil {
		return err
	}
	if pick < 0 || pick >= len(choices) {
		return nil
	}
	switch choices[pick].(type) {
	case proto.RestChoice:
		heal := r.persistent.HPMax * 3 / 10
		r.persistent.HP += heal
		if r.persistent.HP > r.persistent.HPMax {
			r.persistent.HP = r.persistent.HPMax
		}
		return r.notifyHP(ctx)
	case proto.SmithChoice:
		return r.upgradeCardAt(ctx, upgradable)
	default:
		return nil
	}
}

func firstUpgradableDeckIndex(deck []player.DeckCard) int {
	for i, dc := range deck {
		if !dc.Upgraded {
			return i
		}
	}
	return -1
}

// shopRoom is stubbed per SPEC_FULL.md §4.5: the shop's own pricing/stock
// logic was outside the retrieved reference pack's file cap, so it is
// treated like any other not-yet-ported content rather than guessed at.
func (r *Run) shopRoom(ctx stdctx.Context) error {
	return data.NewUnimplementedError(data.KindEffect, "shop")
}

// eventRoom rolls the `?` node's outcome. A roll can land on a disguised
// monster/shop/treasure room (EventGenerator.NextEvent's own documented
// behavior) as well as a genuine event; genuine events always surface
// UnimplementedError since data.LookupEvent never resolves one, matching
// this engine's content-table boundary for every other unported room kind.
func (r *Run) eventRoom(ctx stdctx.Context) error {
	roll := r.eventGen.NextEvent(r.floor, len(r.persistent.Deck), r.persistent.Gold, r.persistent.HP, len(r.persistent.Relics))
	switch roll.Room {
	case mapgen.RoomEvent:
		return data.LookupEvent(roll.Event)
	default:
		return r.enterRoom(ctx, roll.Room)
	}
}

// treasureRoom opens a reward chest, ported from SPEC_FULL.md §4.5's
// treasure-room note: a single relic roll from the run's relic generator.
func (r *Run) treasureRoom(ctx stdctx.Context) error {
	return r.obtainRelic(ctx, r.relicGen.CommonRelic())
}
