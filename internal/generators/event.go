package generators

import (
	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/mapgen"
	"github.com/nkessler/spireengine/internal/rng"
)

// shrineProbability is the reference's SHRINE_PROBABILITY constant.
const shrineProbability = 0.25

// EventGenerator rolls the room type entered from a `?` node and, when that
// room is an Event, which specific event fires. Ported from
// lib/src/rng/event.rs's EventGenerator. Only Act 1's pools are wired (see
// internal/data's Act1EventPool/Act1ShrinePool doc comment); the reference's
// cross-act one_time_event_pool names events this engine's content tables
// don't carry, so it is omitted rather than guessed at.
type EventGenerator struct {
	monsterRoomProbability  float64
	shopProbability         float64
	treasureRoomProbability float64
	rng                     *rng.StsRandom
}

// NewEventGenerator constructs an EventGenerator, ported from
// EventGenerator::new.
func NewEventGenerator(seed rng.Seed) *EventGenerator {
	return &EventGenerator{
		monsterRoomProbability:  0.1,
		shopProbability:         0.03,
		treasureRoomProbability: 0.02,
		rng:                     rng.NewStsRandom(seed),
	}
}

// EventRoll is the result of NextEvent: the room type the player lands in,
// and, only when Room == RoomEvent, the specific event rolled.
type EventRoll struct {
	Room  mapgen.Room
	Event data.EventID
}

// NextEvent rolls the next `?` node's outcome, ported from next_event.
// floor, deckSize, gold, hp, and relicCount are passed to filterEvents, which
// consults only floor; the other four do not affect eligibility.
func (g *EventGenerator) NextEvent(floor, deckSize, gold, hp, relicCount int) EventRoll {
	roll := g.rng.WeightedChoose([]float64{
		g.monsterRoomProbability,
		g.shopProbability,
		g.treasureRoomProbability,
		1.0,
	})
	switch roll {
	case 0:
		g.monsterRoomProbability = 0.1
		g.shopProbability += 0.03
		g.treasureRoomProbability += 0.02
		return EventRoll{Room: mapgen.RoomMonster}
	case 1:
		g.monsterRoomProbability += 0.1
		g.shopProbability = 0.03
		g.treasureRoomProbability += 0.02
		return EventRoll{Room: mapgen.RoomShop}
	case 2:
		g.monsterRoomProbability += 0.1
		g.shopProbability += 0.03
		g.treasureRoomProbability = 0.02
		return EventRoll{Room: mapgen.RoomTreasure}
	default:
		g.monsterRoomProbability += 0.1
		g.shopProbability += 0.03
		g.treasureRoomProbability += 0.02

		shrinePool := filterEvents(data.Act1ShrinePool, floor, deckSize, gold, hp, relicCount)
		regularPool := filterEvents(data.Act1EventPool, floor, deckSize, gold, hp, relicCount)

		poolIdx := g.rng.WeightedChoose([]float64{shrineProbability, 1 - shrineProbability})
		pool := regularPool
		if poolIdx == 0 {
			pool = shrinePool
		}
		return EventRoll{Room: mapgen.RoomEvent, Event: pool[g.rng.Choose(len(pool))]}
	}
}

// filterEvents mirrors EventGenerator::filter_event's per-event eligibility
// predicates, restricted to the events this engine's content tables
// actually carry (the reference also gates several Act 2/3-only events this
// engine has no EventID for, so those branches have no analogue here).
func filterEvents(pool []data.EventID, floor, _, _, _, _ int) []data.EventID {
	out := make([]data.EventID, 0, len(pool))
	for _, e := range pool {
		if eventEligible(e, floor) {
			out = append(out, e)
		}
	}
	return out
}

func eventEligible(e data.EventID, floor int) bool {
	switch e {
	case data.EventHypnotizingColoredMushrooms:
		return floor >= 7
	default:
		return true
	}
}
