package generators

import (
	"testing"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/mapgen"
	"github.com/nkessler/spireengine/internal/rng"
)

func TestEventGeneratorRoomIsAlwaysNamed(t *testing.T) {
	g := NewEventGenerator(rng.Seed(3))
	for i := 0; i < 30; i++ {
		roll := g.NextEvent(i, 10, 99, 80, 1)
		switch roll.Room {
		case mapgen.RoomMonster, mapgen.RoomShop, mapgen.RoomTreasure, mapgen.RoomEvent:
		default:
			t.Fatalf("unexpected room %v at roll %d", roll.Room, i)
		}
		if roll.Room == mapgen.RoomEvent {
			if roll.Event == data.EventUnknown {
				t.Fatalf("event room at roll %d produced no event", i)
			}
		}
	}
}

func TestEventGeneratorDeterministic(t *testing.T) {
	g1 := NewEventGenerator(rng.Seed(9))
	g2 := NewEventGenerator(rng.Seed(9))
	for i := 0; i < 10; i++ {
		r1 := g1.NextEvent(i, 10, 99, 80, 1)
		r2 := g2.NextEvent(i, 10, 99, 80, 1)
		if r1 != r2 {
			t.Fatalf("same seed produced different rolls at %d: %v vs %v", i, r1, r2)
		}
	}
}

func TestEventGeneratorHypnotizingMushroomsGatedByFloor(t *testing.T) {
	low := filterEvents([]data.EventID{data.EventHypnotizingColoredMushrooms}, 3, 0, 0, 0, 0)
	if len(low) != 0 {
		t.Fatal("expected HypnotizingColoredMushrooms to be filtered out below floor 7")
	}
	high := filterEvents([]data.EventID{data.EventHypnotizingColoredMushrooms}, 7, 0, 0, 0, 0)
	if len(high) != 1 {
		t.Fatal("expected HypnotizingColoredMushrooms to be eligible at floor 7")
	}
}
