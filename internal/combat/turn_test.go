package combat

import (
	"context"
	"testing"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/proto"
)

// autoAttackController is an integration-test double that always plays the
// first available card, targets the first living enemy, and ends the turn
// once no card is affordable — enough to grind down a single weak enemy
// without needing to script exact choice indices (the hand's shuffle order
// varies with the seed).
type autoAttackController struct {
	notes []proto.Notification
}

func (a *autoAttackController) Notify(ctx context.Context, n proto.Notification) error {
	a.notes = append(a.notes, n)
	return nil
}

func (a *autoAttackController) PromptChoice(ctx context.Context, prompt proto.Prompt, choices []proto.Choice) (int, error) {
	for i, c := range choices {
		switch c.(type) {
		case proto.PlayCardChoice, proto.TargetEnemyChoice:
			return i, nil
		}
	}
	for i, c := range choices {
		if _, ok := c.(proto.EndTurnChoice); ok {
			return i, nil
		}
	}
	return 0, nil
}

func (a *autoAttackController) GameOver(ctx context.Context, victory bool) error { return nil }

func TestRunGrindsDownASingleWeakEnemy(t *testing.T) {
	enemy := newTestEnemy(t, data.EnemyCultist)
	ctx := newTestContext(t, &autoAttackController{}, enemy)

	victory, err := ctx.Run(context.Background())
	if err != nil {
		t.Fatalf("Run returned error: %v", err)
	}
	if !victory {
		t.Fatalf("expected victory against a single Cultist with a full Ironclad starting hand, player HP=%d",
			ctx.Persistent.HP)
	}
	if ctx.EnemyCountAlive() != 0 {
		t.Errorf("expected no living enemies after victory, got %d", ctx.EnemyCountAlive())
	}
}

func TestEndTurnTicksPlayerConditions(t *testing.T) {
	enemy := newTestEnemy(t, data.EnemyCultist)
	controller := newScriptedController(t) // always falls through to index 0 (EndTurnChoice once hand exhausts picks)
	ctx := newTestContext(t, controller, enemy)
	ctx.Combat.Conditions.Apply(data.ConditionWeak, 2)

	// Force straight to end-of-turn handling without playing any cards.
	ctx.endOfTurnDiscard()
	ctx.tickPlayerConditions()

	if stacks := ctx.Combat.Conditions.StacksOf(data.ConditionWeak); stacks != 1 {
		t.Errorf("Weak stacks after one tick = %d, want 1", stacks)
	}
}
