// Package run implements spec.md §2's L8 run loop: the per-floor state
// machine that sits above internal/combat, owning the player's persistent
// state, the act's map, and every reward generator a non-combat room needs.
// Grounded on original_source's lib/src/sim/simulator.rs's StsSimulator,
// generalized from its all-todo!()-but-Monster room dispatch to the fuller
// room coverage this engine's generators package already supports.
package run

import (
	stdctx "context"
	"fmt"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/generators"
	"github.com/nkessler/spireengine/internal/mapgen"
	"github.com/nkessler/spireengine/internal/player"
	"github.com/nkessler/spireengine/internal/proto"
	"github.com/nkessler/spireengine/internal/rng"
)

// Run drives one complete playthrough attempt from Neow's blessing through
// victory or death. One Run is used once; construct a fresh one per attempt.
type Run struct {
	seed       rng.Seed
	character  *data.Character
	ascension  data.Ascension
	persistent *player.PersistentState
	controller proto.Controller

	encounterGen *generators.EncounterGenerator
	relicGen     *generators.RelicGenerator
	potionGen    *generators.PotionGenerator
	eventGen     *generators.EventGenerator

	act       *data.Act
	actNumber int
	nav       *navigator

	floor int

	// bossEncounter caches the act's single rolled boss encounter, set on
	// first arrival at a RoomBoss (EncounterUnknown means not yet rolled).
	bossEncounter data.EncounterID
}

// NewRun constructs a fresh run for the given seed and character, ready for
// Run to be called once. ascension 0 is the only difficulty this engine's
// content-table scope exercises beyond the map builder's elite-frequency
// table (spec.md §3's Ascension field).
func NewRun(seed rng.Seed, characterID data.CharacterID, ascension data.Ascension, controller proto.Controller) (*Run, error) {
	character, err := data.LookupCharacter(characterID)
	if err != nil {
		return nil, err
	}
	encounterGen, err := generators.NewEncounterGenerator(seed)
	if err != nil {
		return nil, err
	}
	return &Run{
		seed:         seed,
		character:    character,
		ascension:    ascension,
		persistent:   player.NewPersistentState(character),
		controller:   controller,
		encounterGen: encounterGen,
		relicGen:     generators.NewRelicGenerator(seed, character),
		potionGen:    generators.NewPotionGenerator(seed, character),
		eventGen:     generators.NewEventGenerator(seed),
		actNumber:    1,
	}, nil
}

// Run plays the attempt to completion, returning true on a win (there is no
// win condition short of an Act 4 boss kill outside this engine's
// content-table scope, so in practice every run here ends in either death or
// an UnimplementedError once the run reaches content or an act this engine
// doesn't carry) and the terminal error, if any.
func (r *Run) Run(ctx stdctx.Context) (bool, error) {
	if err := r.startAct(ctx); err != nil {
		return false, err
	}
	if err := r.neowEvent(ctx); err != nil {
		return false, err
	}

	for {
		if !r.persistent.IsAlive() {
			if err := r.controller.GameOver(ctx, false); err != nil {
				return false, err
			}
			return false, nil
		}

		room, err := r.nav.advance(ctx, r.controller)
		if err != nil {
			return false, err
		}
		r.floor++

		if err := r.enterRoom(ctx, room); err != nil {
			return false, err
		}

		if room == mapgen.RoomBoss {
			if err := r.advanceAct(ctx); err != nil {
				return false, err
			}
		}
	}
}

// enterRoom dispatches a just-entered room to its handler, per SPEC_FULL.md
// §4.5's room-handler list.
func (r *Run) enterRoom(ctx stdctx.Context, room mapgen.Room) error {
	switch room {
	case mapgen.RoomMonster:
		return r.monsterRoom(ctx)
	case mapgen.RoomElite, mapgen.RoomBurningElite1, mapgen.RoomBurningElite2,
		mapgen.RoomBurningElite3, mapgen.RoomBurningElite4:
		return r.eliteRoom(ctx)
	case mapgen.RoomBoss:
		return r.bossRoom(ctx)
	case mapgen.RoomRestSite:
		return r.restSiteRoom(ctx)
	case mapgen.RoomShop:
		return r.shopRoom(ctx)
	case mapgen.RoomEvent:
		return r.eventRoom(ctx)
	case mapgen.RoomTreasure:
		return r.treasureRoom(ctx)
	default:
		return &FatalError{Reason: fmt.Sprintf("run: unknown room kind %d", room)}
	}
}

// startAct (re)builds the current act's map, seeded per
// MapBuilder::from(seed, act)'s own act.MapSeedOffset convention, and resets
// the navigator to the map's bottom row.
func (r *Run) startAct(ctx stdctx.Context) error {
	act, err := data.LookupAct(r.actNumber)
	if err != nil {
		return err
	}
	r.act = act
	m := mapgen.NewMapBuilder(r.seed, r.ascension, act).Build()
	r.nav = newNavigator(m)
	return r.nav.notifyMap(ctx, r.controller)
}

// advanceAct moves to the next act's floor 1, per spec.md §3's "act
// transition at floor 16/33/50" note (LookupAct returning
// UnimplementedError for Acts 2-4 is this engine's content-table boundary:
// a completed Act 1 boss kill ends any run attempted here).
func (r *Run) advanceAct(ctx stdctx.Context) error {
	r.actNumber++
	return r.startAct(ctx)
}

// currentFloorSeed is the per-floor RNG seed every combat/reward roll for
// this floor derives from, mirroring simulator.rs's
// `self.seed.with_offset(floor)` reseed-every-floor convention.
func (r *Run) currentFloorSeed() rng.Seed {
	return r.seed.WithOffset(uint64(r.floor))
}

// cardGenerator builds a fresh CardGenerator for the current floor, ported
// from card_rng's per-floor reseed: this engine's CardGenerator owns its
// stream rather than borrowing a shared one, so a new instance per floor
// reward achieves the same effect.
func (r *Run) cardGenerator() (*generators.CardGenerator, error) {
	return generators.NewCardGenerator(r.currentFloorSeed(), r.character, r.actNumber)
}
