package run

import (
	stdctx "context"

	"github.com/nkessler/spireengine/internal/mapgen"
	"github.com/nkessler/spireengine/internal/proto"
)

// navigator tracks the player's position on the current act's map and
// resolves each ClimbFloor prompt into the room entered, ported from
// lib/src/sim/map.rs's MapSimulator. location is nil before the player has
// taken their first step (mirroring the reference's player_location: None),
// and becomes (row, col) once they've picked a column in the bottom row.
type navigator struct {
	m        *mapgen.Map
	location *[2]int
}

func newNavigator(m *mapgen.Map) *navigator {
	return &navigator{m: m}
}

// advance prompts for the next floor and returns the room entered, exactly
// as MapSimulator::advance does: from the top row the player proceeds
// straight to the boss without consuming a choice, otherwise they pick among
// the columns reachable from their current node's exits (or, before their
// first step, any column in the bottom row).
func (n *navigator) advance(ctx stdctx.Context, controller proto.Controller) (mapgen.Room, error) {
	var nextRow int
	var options []int

	switch {
	case n.location == nil:
		nextRow = 0
		options = n.m.NonemptyColumnsForRow(0)
	case n.location[0] == mapgen.RowCount-1:
		n.location = nil
		if err := n.notifyMap(ctx, controller); err != nil {
			return 0, err
		}
		return mapgen.RoomBoss, nil
	default:
		row, col := n.location[0], n.location[1]
		node := n.m.Get(row, col)
		nextRow = row + 1
		if node.ExitBits.Has(mapgen.ExitLeft) {
			options = append(options, col-1)
		}
		if node.ExitBits.Has(mapgen.ExitUp) {
			options = append(options, col)
		}
		if node.ExitBits.Has(mapgen.ExitRight) {
			options = append(options, col+1)
		}
	}

	choices := make([]proto.Choice, len(options))
	for i, col := range options {
		choices[i] = proto.ClimbFloorChoice{Column: col}
	}
	pick, err := controller.PromptChoice(ctx, proto.PromptClimbFloor, choices)
	if err != nil {
		return 0, err
	}
	if pick < 0 || pick >= len(options) {
		pick = 0
	}
	col := options[pick]
	n.location = &[2]int{nextRow, col}

	node := n.m.Get(nextRow, col)
	if err := n.notifyMap(ctx, controller); err != nil {
		return 0, err
	}
	return node.Room, nil
}

func (n *navigator) notifyMap(ctx stdctx.Context, controller proto.Controller) error {
	return controller.Notify(ctx, proto.Notification{Kind: proto.NotifyMapRendered, Map: n.m.String()})
}
