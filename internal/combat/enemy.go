package combat

import (
	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/player"
	"github.com/nkessler/spireengine/internal/rng"
)

// EnemyState is spec.md §3's EnemyState: one live combatant occupying a
// fixed slot in the (≤5)-length enemy party array. Owned by the combat
// package rather than internal/player since the spec splits "the enemy's
// identity and runtime stats" from the player's persistent/combat split —
// an enemy has no persistent-state analogue, so one struct suffices here.
type EnemyState struct {
	Enemy *data.Enemy

	HP    int
	HPMax int
	Block int

	Strength int

	Conditions player.ConditionList

	// Move is the currently queued EnemyAction (spec calls it
	// current_action); RunLength counts consecutive repetitions of it,
	// both consumed by the AI dispatcher in enemyai.go.
	Move      *data.EnemyMove
	RunLength int
}

// NewEnemyState rolls starting HP from hp_rng (a stream separate from the
// AI stream, mirroring party_generator.rs's EnemyInCombat::new(enemy,
// hp_rng, ai_rng) split) and leaves Move nil until Setup or the first
// AdvanceAction call assigns an opening move.
func NewEnemyState(enemy *data.Enemy, hpRNG *rng.StsRandom) *EnemyState {
	hp := enemy.MinHP
	if enemy.MaxHP > enemy.MinHP {
		hp = hpRNG.GenRange(enemy.MinHP, enemy.MaxHP)
	}
	return &EnemyState{Enemy: enemy, HP: hp, HPMax: hp}
}

// IsAlive reports whether this enemy's HP is still above zero.
func (e *EnemyState) IsAlive() bool { return e != nil && e.HP > 0 }

// Intent renders the enemy's current queued move as a player-facing intent
// string, falling back to "Unknown" before any move has been chosen.
func (e *EnemyState) Intent() string {
	if e.Move == nil {
		return "Unknown"
	}
	return e.Move.Intent
}
