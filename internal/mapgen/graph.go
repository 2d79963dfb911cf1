package mapgen

import (
	"github.com/nkessler/spireengine/internal/rng"
)

// GraphBuilder embeds PATH_DENSITY random paths into a Grid and prunes row 0
// down to a single exit per column, ported from
// original_source/sim/src/map/graph.rs.
type GraphBuilder struct {
	sts  *rng.StsRandom
	grid *Grid
}

// NewGraphBuilder constructs a builder over a fresh grid, drawing from sts.
func NewGraphBuilder(sts *rng.StsRandom) *GraphBuilder {
	return &GraphBuilder{sts: sts, grid: NewGrid()}
}

// Build runs path embedding and bottom-row pruning and returns the
// resulting grid.
func (b *GraphBuilder) Build() *Grid {
	b.embedPaths()
	b.pruneBottomRow()
	return b.grid
}

func (b *GraphBuilder) embedPaths() {
	firstPathStartCol := b.sts.GenRange(0, ColumnCount-1)
	b.embedPath(firstPathStartCol)
	for i := 1; i < pathDensity; i++ {
		pathStartCol := b.sts.GenRange(0, ColumnCount-1)
		for i == 1 && pathStartCol == firstPathStartCol {
			pathStartCol = b.sts.GenRange(0, ColumnCount-1)
		}
		b.embedPath(pathStartCol)
	}
}

func (b *GraphBuilder) pruneBottomRow() {
	var row1Seen [ColumnCount]bool
	for col := 0; col < ColumnCount; col++ {
		exitsToKeep := exitsEmpty
		if col > 0 && !row1Seen[col-1] && b.grid.HasExit(0, col, ExitLeft) {
			exitsToKeep |= ExitLeft
			row1Seen[col-1] = true
		}
		if !row1Seen[col] && b.grid.HasExit(0, col, ExitUp) {
			exitsToKeep |= ExitUp
			row1Seen[col] = true
		}
		if col < columnMax && !row1Seen[col+1] && b.grid.HasExit(0, col, ExitRight) {
			exitsToKeep |= ExitRight
			row1Seen[col+1] = true
		}
		b.grid.Remove(0, col)
		if exitsToKeep != exitsEmpty {
			b.grid.AddExit(0, col, exitsToKeep)
		}
	}
}

func (b *GraphBuilder) embedPath(col int) {
	for row := 0; row < RowCount-1; row++ {
		exit, nextCol := b.proposeExit(col)
		exit, nextCol = b.avoidSmallCycles(row, col, exit, nextCol)
		exit, nextCol = b.preventCrossedPaths(row, col, exit, nextCol)
		b.grid.AddExit(row, col, exit)
		b.grid.RecordParentCol(row+1, nextCol, col)
		col = nextCol
	}
	var finalExit ExitBits
	switch {
	case col < ColumnCount/2:
		finalExit = ExitRight
	case col == ColumnCount/2:
		finalExit = ExitUp
	default:
		finalExit = ExitLeft
	}
	b.grid.AddExit(RowCount-1, col, finalExit)
}

type exitChoice struct {
	exit ExitBits
	col  int
}

func (b *GraphBuilder) proposeExit(col int) (ExitBits, int) {
	var options []exitChoice
	switch {
	case col == 0:
		options = []exitChoice{{ExitUp, 0}, {ExitRight, 1}}
	case col == columnMax:
		options = []exitChoice{{ExitLeft, columnMax - 1}, {ExitUp, columnMax}}
	default:
		options = []exitChoice{{ExitLeft, col - 1}, {ExitUp, col}, {ExitRight, col + 1}}
	}
	pick := options[b.sts.Choose(len(options))]
	return pick.exit, pick.col
}

// avoidSmallCycles is ported verbatim from graph.rs, including the bug the
// reference documents extensively in-source: the loop over recorded parent
// columns is order-dependent, reconsiders edges whose cycle it already
// broke, tolerates duplicate parent entries, and checks ancestry against the
// original dest_col even after next_col has changed inside the loop. The
// reference keeps this broken behavior for fidelity with the original game,
// and so do we.
func (b *GraphBuilder) avoidSmallCycles(row, myCol int, exit ExitBits, nextCol int) (ExitBits, int) {
	if row == 0 {
		return exit, nextCol
	}
	destCol := nextCol
	for _, otherCol := range b.grid.RecordedParentCols(row+1, destCol) {
		if otherCol == myCol {
			continue
		}
		if b.grid.SharesParentWith(row, myCol, otherCol) {
			var options []exitChoice
			switch {
			case nextCol < myCol:
				var second exitChoice
				if myCol == columnMax {
					second = exitChoice{ExitUp, columnMax}
				} else {
					second = exitChoice{ExitRight, myCol + 1}
				}
				options = []exitChoice{{ExitUp, myCol}, second}
			case nextCol == myCol:
				var first, third exitChoice
				if myCol == 0 {
					first = exitChoice{ExitRight, 1}
				} else {
					first = exitChoice{ExitLeft, myCol - 1}
				}
				if myCol == columnMax {
					third = exitChoice{ExitLeft, columnMax - 1}
				} else {
					third = exitChoice{ExitRight, myCol + 1}
				}
				options = []exitChoice{first, {ExitUp, myCol}, third}
			default: // nextCol > myCol
				var first exitChoice
				if myCol == 0 {
					first = exitChoice{ExitUp, 0}
				} else {
					first = exitChoice{ExitLeft, myCol - 1}
				}
				options = []exitChoice{first, {ExitUp, myCol}}
			}
			pick := options[b.sts.Choose(len(options))]
			exit, nextCol = pick.exit, pick.col
		}
	}
	return exit, nextCol
}

func (b *GraphBuilder) preventCrossedPaths(row, col int, exit ExitBits, nextCol int) (ExitBits, int) {
	switch exit {
	case ExitLeft:
		if b.grid.HasExit(row, col-1, ExitRight) {
			return ExitUp, col
		}
		return exit, nextCol
	case ExitRight:
		if b.grid.HasExit(row, col+1, ExitLeft) {
			return ExitUp, col
		}
		return exit, nextCol
	default: // ExitUp
		return exit, nextCol
	}
}
