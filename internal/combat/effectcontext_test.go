package combat

import (
	"testing"

	"github.com/nkessler/spireengine/internal/data"
)

func TestDealDamageAppliesVulnerable(t *testing.T) {
	enemy := newTestEnemy(t, data.EnemyJawWorm)
	ctx := newTestContext(t, newScriptedController(t), enemy)
	ctx.Enemies[0].Conditions.Apply(data.ConditionVulnerable, 1)
	startingHP := ctx.Enemies[0].HP

	ctx.DealDamage(4, 0)

	// 4 * 3/2 = 6
	if got := startingHP - ctx.Enemies[0].HP; got != 6 {
		t.Errorf("vulnerable damage = %d, want 6", got)
	}
}

func TestGainBlockRoutesThroughResolvingEnemy(t *testing.T) {
	enemy := newTestEnemy(t, data.EnemyJawWorm)
	ctx := newTestContext(t, newScriptedController(t), enemy)

	ctx.resolvingEnemy = 0
	ctx.GainBlock(5)
	if ctx.Enemies[0].Block != 5 {
		t.Errorf("enemy block = %d, want 5 (resolvingEnemy should route block to the enemy)", ctx.Enemies[0].Block)
	}

	ctx.resolvingEnemy = -1
	ctx.GainBlock(3)
	if ctx.Combat.Block != 3 {
		t.Errorf("player block = %d, want 3", ctx.Combat.Block)
	}
}

func TestApplyConditionSelfRoutesStrengthToDedicatedField(t *testing.T) {
	enemy := newTestEnemy(t, data.EnemyJawWorm)
	ctx := newTestContext(t, newScriptedController(t), enemy)

	ctx.resolvingEnemy = 0
	ctx.ApplyConditionSelf(data.ConditionStrength, 3)
	if ctx.Enemies[0].Strength != 3 {
		t.Errorf("enemy strength = %d, want 3", ctx.Enemies[0].Strength)
	}
	if stacks := ctx.Enemies[0].Conditions.StacksOf(data.ConditionStrength); stacks != 0 {
		t.Errorf("Strength should never appear in the enemy's condition list, got %d stacks", stacks)
	}

	ctx.resolvingEnemy = -1
	ctx.ApplyConditionSelf(data.ConditionStrength, 2)
	if ctx.Combat.Strength != 2 {
		t.Errorf("player strength = %d, want 2", ctx.Combat.Strength)
	}
}

func TestApplyConditionToPlayerAlwaysTargetsPlayer(t *testing.T) {
	enemy := newTestEnemy(t, data.EnemyJawWorm)
	ctx := newTestContext(t, newScriptedController(t), enemy)
	ctx.resolvingEnemy = 0

	ctx.ApplyConditionToPlayer(data.ConditionWeak, 1)

	if stacks := ctx.Combat.Conditions.StacksOf(data.ConditionWeak); stacks != 1 {
		t.Errorf("player should have 1 stack of Weak, got %d", stacks)
	}
	if stacks := ctx.Enemies[0].Conditions.StacksOf(data.ConditionWeak); stacks != 0 {
		t.Errorf("enemy should not receive Weak from ApplyConditionToPlayer, got %d stacks", stacks)
	}
}

func TestDealDamageToPlayerConsumesBlockAndCountsHPLoss(t *testing.T) {
	enemy := newTestEnemy(t, data.EnemyJawWorm)
	ctx := newTestContext(t, newScriptedController(t), enemy)
	ctx.Combat.Block = 2
	ctx.resolvingEnemy = 0
	ctx.Enemies[0].Strength = 1
	startingHP := ctx.Persistent.HP

	ctx.DealDamageToPlayer(5)

	// base 5 + strength 1 = 6, minus 2 block = 4 hp lost.
	if got := startingHP - ctx.Persistent.HP; got != 4 {
		t.Errorf("hp lost = %d, want 4", got)
	}
	if ctx.Combat.Block != 0 {
		t.Errorf("block remaining = %d, want 0", ctx.Combat.Block)
	}
	if ctx.Combat.HPLossCount != 1 {
		t.Errorf("HPLossCount = %d, want 1", ctx.Combat.HPLossCount)
	}
}

func TestEnemyCountReportsFixedSlotCount(t *testing.T) {
	enemy := newTestEnemy(t, data.EnemyJawWorm)
	ctx := newTestContext(t, newScriptedController(t), enemy)
	if ctx.EnemyCount() != len(ctx.Enemies) {
		t.Errorf("EnemyCount() = %d, want %d", ctx.EnemyCount(), len(ctx.Enemies))
	}
}

func TestIsEnemyAliveEmptySlotIsFalse(t *testing.T) {
	ctx := newTestContext(t, newScriptedController(t))
	if ctx.IsEnemyAlive(4) {
		t.Error("empty slot should report not alive")
	}
}
