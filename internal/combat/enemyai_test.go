package combat

import (
	"testing"

	"github.com/nkessler/spireengine/internal/data"
)

func TestChooseEnemyMoveRespectsMaxConsecutive(t *testing.T) {
	enemy := newTestEnemy(t, data.EnemyJawWorm)
	ctx := newTestContext(t, newScriptedController(t), enemy)
	e := ctx.Enemies[0]

	// Jaw Worm's Chomp and Bellow both cap at MaxConsecutive 1: choose ten
	// moves in a row and confirm the guard never lets RunLength exceed the cap.
	for i := 0; i < 10; i++ {
		ctx.chooseEnemyMove(e)
		if e.Move.MaxConsecutive > 0 && e.RunLength > e.Move.MaxConsecutive {
			t.Fatalf("iteration %d: RunLength %d exceeds MaxConsecutive %d for move %q",
				i, e.RunLength, e.Move.MaxConsecutive, e.Move.Name)
		}
	}
}

func TestChooseEnemyMoveDeterministicForSameSeed(t *testing.T) {
	enemyA := newTestEnemy(t, data.EnemyJawWorm)
	ctxA := newTestContext(t, newScriptedController(t), enemyA)
	enemyB := newTestEnemy(t, data.EnemyJawWorm)
	ctxB := newTestContext(t, newScriptedController(t), enemyB)

	for i := 0; i < 5; i++ {
		ctxA.chooseEnemyMove(ctxA.Enemies[0])
		ctxB.chooseEnemyMove(ctxB.Enemies[0])
		if ctxA.Enemies[0].Move.Name != ctxB.Enemies[0].Move.Name {
			t.Fatalf("iteration %d: same-seed contexts diverged (%q vs %q)",
				i, ctxA.Enemies[0].Move.Name, ctxB.Enemies[0].Move.Name)
		}
	}
}
