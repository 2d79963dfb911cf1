package mapgen

import (
	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/rng"
)

// Room-quota constants, ported verbatim from
// original_source/sim/src/map/builder.rs.
const (
	shopRoomChance        = 0.05
	restRoomChance        = 0.12
	treasureRoomChance    = 0.0
	eliteRoomChanceA0     = 0.08
	eliteRoomChanceA1Plus = eliteRoomChanceA0 * 1.6
	eventRoomChance       = 0.22

	treasureRowIndex = 8
	restRowIndex     = RowCount - 1
	monsterRowIndex  = 0
)

// MapBuilder builds a complete, room-assigned act map for a seed and
// ascension level, ported from sim/src/map/builder.rs's MapBuilder.
type MapBuilder struct {
	act       *data.Act
	ascension data.Ascension
	sts       *rng.StsRandom
}

// NewMapBuilder seeds the map's own StsRandom stream via the act's
// map-seed offset, exactly as the reference's MapBuilder::from does.
func NewMapBuilder(seed rng.Seed, ascension data.Ascension, act *data.Act) *MapBuilder {
	return &MapBuilder{
		act:       act,
		ascension: ascension,
		sts:       rng.NewStsRandom(seed.WithOffset(act.MapSeedOffset)),
	}
}

// Build generates the path graph and assigns rooms, returning the finalized
// map.
func (b *MapBuilder) Build() *Map {
	grid := NewGraphBuilder(b.sts).Build()
	return newRoomAssigner(grid, b.ascension, b.sts).assignRooms().finish()
}

type roomAssigner struct {
	ascension  data.Ascension
	grid       *Grid
	eliteRooms [][2]int
	sts        *rng.StsRandom
}

func newRoomAssigner(grid *Grid, ascension data.Ascension, sts *rng.StsRandom) *roomAssigner {
	return &roomAssigner{ascension: ascension, grid: grid, sts: sts}
}

// roomOrdinal gives each Room a stable small index, mirroring the
// reference's `rooms_already_considered: [bool; 10]` array indexed by the
// Rust enum's discriminant.
func roomOrdinal(r Room) int {
	return int(r)
}

func (a *roomAssigner) assignRooms() *roomAssigner {
	a.grid.SetAllRoomsInRow(monsterRowIndex, RoomMonster)
	a.grid.SetAllRoomsInRow(treasureRowIndex, RoomTreasure)
	a.grid.SetAllRoomsInRow(restRowIndex, RoomRestSite)

	unassignedRoomCount := a.grid.UnassignedRoomCount()
	roomTotal := a.grid.RoomAlmostTotal()

	shopRoomCount := roundF(shopRoomChance * float64(roomTotal))
	restRoomCount := roundF(restRoomChance * float64(roomTotal))
	treasureRoomCount := roundF(treasureRoomChance * float64(roomTotal))
	var eliteRoomCount int
	if a.ascension == 0 {
		eliteRoomCount = roundF(eliteRoomChanceA0 * float64(roomTotal))
	} else {
		eliteRoomCount = roundF(eliteRoomChanceA1Plus * float64(roomTotal))
	}
	eventRoomCount := roundF(eventRoomChance * float64(roomTotal))

	unassigned := make([]*Room, 0, unassignedRoomCount)
	appendN := func(room Room, n int) {
		for i := 0; i < n && len(unassigned) < unassignedRoomCount; i++ {
			r := room
			unassigned = append(unassigned, &r)
		}
	}
	appendN(RoomShop, shopRoomCount)
	appendN(RoomRestSite, restRoomCount)
	appendN(RoomTreasure, treasureRoomCount)
	appendN(RoomElite, eliteRoomCount)
	appendN(RoomEvent, eventRoomCount)
	for len(unassigned) < unassignedRoomCount {
		r := RoomMonster
		unassigned = append(unassigned, &r)
	}

	a.sts.JavaCompatShuffle(func(i, j int) { unassigned[i], unassigned[j] = unassigned[j], unassigned[i] }, len(unassigned))

	startIndex := 0
	for row := 0; row < RowCount-1; row++ {
		if row == monsterRowIndex || row == treasureRowIndex {
			continue
		}
		for _, col := range a.grid.NonemptyColsForRow(row) {
			var roomsAlreadyConsidered [11]bool
			someRoomAlreadyRejected := false
			for i := startIndex; i < len(unassigned); i++ {
				entry := unassigned[i]
				if entry == nil {
					continue
				}
				room := *entry
				if roomsAlreadyConsidered[roomOrdinal(room)] {
					continue
				}
				roomsAlreadyConsidered[roomOrdinal(room)] = true

				var rejectOutright, parentMustBeDifferent bool
				switch room {
				case RoomRestSite:
					rejectOutright, parentMustBeDifferent = !(row >= 5 && row <= 12), true
				case RoomElite:
					rejectOutright, parentMustBeDifferent = row <= 4, true
				case RoomEvent, RoomMonster:
					rejectOutright, parentMustBeDifferent = false, false
				case RoomShop:
					rejectOutright, parentMustBeDifferent = false, true
				}

				if rejectOutright ||
					(parentMustBeDifferent && a.grid.HasParentRoomOf(row, col, room)) ||
					a.grid.HasLeftSiblingRoomOf(row, col, room) {
					someRoomAlreadyRejected = true
					continue
				}

				a.grid.SetRoom(row, col, room)
				if room == RoomElite {
					a.eliteRooms = append(a.eliteRooms, [2]int{row, col})
				}
				unassigned[i] = nil
				if !someRoomAlreadyRejected {
					startIndex = i
				}
				break
			}
		}
	}

	a.assignBurningElite()
	return a
}

func (a *roomAssigner) assignBurningElite() {
	if len(a.eliteRooms) < 2 {
		// Known reference bug (see sim/src/map/builder.rs): on maps with
		// fewer than two elite rooms, no burning elite is assigned at all.
		return
	}
	pick := a.eliteRooms[a.sts.Choose(len(a.eliteRooms))]
	var room Room
	switch a.sts.GenRange(0, 3) {
	case 0:
		room = RoomBurningElite1
	case 1:
		room = RoomBurningElite2
	case 2:
		room = RoomBurningElite3
	default:
		room = RoomBurningElite4
	}
	a.grid.SetRoom(pick[0], pick[1], room)
}

func (a *roomAssigner) finish() *Map {
	return a.grid.Build()
}

func roundF(f float64) int {
	if f < 0 {
		return int(f - 0.5)
	}
	return int(f + 0.5)
}
