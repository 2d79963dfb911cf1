package combat

import (
	"context"
	"testing"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/player"
	"github.com/nkessler/spireengine/internal/proto"
	"github.com/nkessler/spireengine/internal/rng"
)

// scriptedController is this package's test double for proto.Controller,
// modeled on tcgx's ScriptedController in internal/game/testutil_test.go: a
// queue of pre-decided picks consumed in order, falling back to index 0 once
// exhausted (picking "the first available choice" is always valid, since
// EndTurnChoice is always present).
type scriptedController struct {
	t      *testing.T
	picks  []int
	notes  []proto.Notification
}

func newScriptedController(t *testing.T, picks ...int) *scriptedController {
	return &scriptedController{t: t, picks: picks}
}

func (s *scriptedController) Notify(ctx context.Context, n proto.Notification) error {
	s.notes = append(s.notes, n)
	return nil
}

func (s *scriptedController) PromptChoice(ctx context.Context, prompt proto.Prompt, choices []proto.Choice) (int, error) {
	if len(s.picks) == 0 {
		return 0, nil
	}
	pick := s.picks[0]
	s.picks = s.picks[1:]
	if pick >= len(choices) {
		return 0, nil
	}
	return pick, nil
}

func (s *scriptedController) GameOver(ctx context.Context, victory bool) error {
	return nil
}

// newTestContext builds a ready-to-run combat Context for an Ironclad-shaped
// persistent state against the given enemies, using a fixed seed for
// reproducible test RNG streams.
func newTestContext(t *testing.T, controller proto.Controller, enemies ...*EnemyState) *Context {
	t.Helper()
	character, err := data.LookupCharacter(data.CharacterIronclad)
	if err != nil {
		t.Fatalf("LookupCharacter: %v", err)
	}
	persistent := player.NewPersistentState(character)
	ctx := NewContext(persistent, rng.Seed(777), controller)
	if err := ctx.Setup(context.Background(), enemies); err != nil {
		t.Fatalf("Setup: %v", err)
	}
	return ctx
}

func newTestEnemy(t *testing.T, id data.EnemyID) *EnemyState {
	t.Helper()
	enemy, err := data.LookupEnemy(id)
	if err != nil {
		t.Fatalf("LookupEnemy: %v", err)
	}
	hpRNG := rng.NewStsRandom(rng.Seed(42))
	return NewEnemyState(enemy, hpRNG)
}
