package mapgen

import "testing"

func TestGridAddExitAndRemove(t *testing.T) {
	g := NewGrid()
	if g.HasExit(3, 2, ExitUp) {
		t.Fatal("expected no exit on a never-visited cell")
	}
	g.AddExit(3, 2, ExitUp)
	if !g.HasExit(3, 2, ExitUp) {
		t.Fatal("expected ExitUp to be set")
	}
	if g.HasExit(3, 2, ExitLeft) {
		t.Fatal("did not expect ExitLeft to be set")
	}
	g.Remove(3, 2)
	if g.HasExit(3, 2, ExitUp) {
		t.Fatal("expected exits to be gone after Remove")
	}
}

func TestGridRoomAssignmentHelpers(t *testing.T) {
	g := NewGrid()
	g.AddExit(2, 1, ExitUp)
	g.AddExit(2, 2, ExitUp)
	g.SetRoom(2, 1, RoomShop)
	if !g.HasLeftSiblingRoomOf(2, 2, RoomShop) {
		t.Fatal("expected column 2 to see column 1's Shop as a left sibling")
	}
	if g.HasLeftSiblingRoomOf(2, 2, RoomElite) {
		t.Fatal("did not expect an Elite left sibling")
	}
}

func TestGridHasParentRoomOf(t *testing.T) {
	g := NewGrid()
	g.AddExit(0, 0, ExitUp)
	g.SetRoom(0, 0, RoomMonster)
	g.RecordParentCol(1, 0, 0)
	if !g.HasParentRoomOf(1, 0, RoomMonster) {
		t.Fatal("expected row 1 col 0's parent (row 0 col 0) to register as Monster")
	}
	if g.HasParentRoomOf(1, 0, RoomShop) {
		t.Fatal("did not expect a Shop parent")
	}
}

func TestGridExitBitsAsVecDimensions(t *testing.T) {
	g := NewGrid()
	vec := g.ExitBitsAsVec()
	if len(vec) != RowCount-1 {
		t.Fatalf("expected %d rows, got %d", RowCount-1, len(vec))
	}
	for _, row := range vec {
		if len(row) != ColumnCount {
			t.Fatalf("expected %d columns, got %d", ColumnCount, len(row))
		}
	}
}

func TestExitBitsGlyphs(t *testing.T) {
	cases := map[ExitBits]string{
		ExitRight:                   "  /",
		ExitUp:                      " | ",
		ExitUp | ExitRight:          " |/",
		ExitLeft:                    `\  `,
		ExitLeft | ExitRight:        `\ /`,
		ExitLeft | ExitUp:           `\| `,
		ExitLeft | ExitUp | ExitRight: `\|/`,
		exitsEmpty:                  "   ",
	}
	for bits, want := range cases {
		if got := bits.glyph(); got != want {
			t.Fatalf("glyph(%v) = %q, want %q", bits, got, want)
		}
	}
}
