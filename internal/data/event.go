package data

// EventID enumerates Act 1's ordinary-event and shrine pools, ported from
// lib/src/data/act.rs's event_pool/shrine_pool. Event resolution logic
// itself is out of this engine's content-table scope (see DESIGN.md): events
// mutate run-level state (gold, HP, deck, relics) outside combat, and the
// reference's own event data files were not part of the retrieved pack, so
// every EventID here resolves through the same UnimplementedError path as
// an unported card or encounter rather than being guessed at.
type EventID int

const (
	EventUnknown EventID = iota
	EventBigFish
	EventTheCleric
	EventDeadAdventurer
	EventGoldenIdol
	EventWingStatue
	EventWorldOfGoop
	EventTheSsssserpent
	EventLivingWall
	EventHypnotizingColoredMushrooms
	EventScrapOoze
	EventShiningLight
	EventMatchAndKeep
	EventGoldenShrine
	EventTransmogrifier
	EventPurifier
	EventUpgradeShrine
	EventWheelOfChange
)

var Act1EventPool = []EventID{
	EventBigFish, EventTheCleric, EventDeadAdventurer, EventGoldenIdol,
	EventWingStatue, EventWorldOfGoop, EventTheSsssserpent, EventLivingWall,
	EventHypnotizingColoredMushrooms, EventScrapOoze, EventShiningLight,
}

var Act1ShrinePool = []EventID{
	EventMatchAndKeep, EventGoldenShrine, EventTransmogrifier, EventPurifier,
	EventUpgradeShrine, EventWheelOfChange,
}

var eventNames = map[EventID]string{
	EventBigFish: "Big Fish", EventTheCleric: "The Cleric",
	EventDeadAdventurer: "Dead Adventurer", EventGoldenIdol: "Golden Idol",
	EventWingStatue: "Wing Statue", EventWorldOfGoop: "World of Goop",
	EventTheSsssserpent: "The Ssssserpent", EventLivingWall: "Living Wall",
	EventHypnotizingColoredMushrooms: "Hypnotizing Colored Mushrooms",
	EventScrapOoze:                   "Scrap Ooze",
	EventShiningLight:                "Shining Light",
	EventMatchAndKeep:                "Match and Keep",
	EventGoldenShrine:                "Golden Shrine",
	EventTransmogrifier:              "Transmogrifier",
	EventPurifier:                    "Purifier",
	EventUpgradeShrine:               "Upgrade Shrine",
	EventWheelOfChange:                "Wheel of Change",
}

// LookupEvent always returns UnimplementedError; see the EventID doc comment.
func LookupEvent(id EventID) error {
	name, ok := eventNames[id]
	if !ok {
		name = "event"
	}
	return NewUnimplementedError(KindEvent, name)
}
