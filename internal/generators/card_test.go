package generators

import (
	"testing"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/rng"
)

func ironclad(t *testing.T) *data.Character {
	t.Helper()
	c, err := data.LookupCharacter(data.CharacterIronclad)
	if err != nil {
		t.Fatalf("LookupCharacter: %v", err)
	}
	return c
}

func TestCardGeneratorDeterministic(t *testing.T) {
	char := ironclad(t)
	g1, err := NewCardGenerator(rng.Seed(7), char, 1)
	if err != nil {
		t.Fatalf("NewCardGenerator: %v", err)
	}
	g2, err := NewCardGenerator(rng.Seed(7), char, 1)
	if err != nil {
		t.Fatalf("NewCardGenerator: %v", err)
	}
	r1, err := g1.CombatRewards()
	if err != nil {
		t.Fatalf("CombatRewards: %v", err)
	}
	r2, err := g2.CombatRewards()
	if err != nil {
		t.Fatalf("CombatRewards: %v", err)
	}
	if len(r1) != 3 || len(r2) != 3 {
		t.Fatalf("expected 3 rewards, got %d and %d", len(r1), len(r2))
	}
	for i := range r1 {
		if r1[i] != r2[i] {
			t.Fatalf("same seed produced different rewards at %d: %v vs %v", i, r1[i], r2[i])
		}
	}
}

func TestCardGeneratorCombatRewardsDistinct(t *testing.T) {
	char := ironclad(t)
	for seed := rng.Seed(0); seed < 20; seed++ {
		g, err := NewCardGenerator(seed, char, 1)
		if err != nil {
			t.Fatalf("NewCardGenerator: %v", err)
		}
		rewards, err := g.CombatRewards()
		if err != nil {
			t.Fatalf("CombatRewards(seed=%d): %v", seed, err)
		}
		seen := map[data.CardID]bool{}
		for _, r := range rewards {
			if seen[r.ID] {
				t.Fatalf("seed %d produced duplicate card %v", seed, r.ID)
			}
			seen[r.ID] = true
			if !cardInAnyPool(char, r.ID) {
				t.Fatalf("seed %d produced card %v outside the character's pools", seed, r.ID)
			}
		}
	}
}

func cardInAnyPool(char *data.Character, id data.CardID) bool {
	for _, pool := range [][]data.CardID{char.CommonPool, char.UncommonPool, char.RarePool} {
		for _, c := range pool {
			if c == id {
				return true
			}
		}
	}
	return false
}

func TestCardGeneratorUnknownAct(t *testing.T) {
	char := ironclad(t)
	if _, err := NewCardGenerator(rng.Seed(1), char, 9); err == nil {
		t.Fatal("expected an error for an unknown act number")
	}
}

func TestThreeColorlessCardChoicesDistinct(t *testing.T) {
	char := ironclad(t)
	g, err := NewCardGenerator(rng.Seed(3), char, 1)
	if err != nil {
		t.Fatalf("NewCardGenerator: %v", err)
	}
	choices := g.ThreeColorlessCardChoices()
	if len(choices) != 3 {
		t.Fatalf("expected 3 choices, got %d", len(choices))
	}
	seen := map[data.CardID]bool{}
	for _, c := range choices {
		if seen[c] {
			t.Fatalf("duplicate colorless card choice %v", c)
		}
		seen[c] = true
	}
}

func TestOneCurseWithinPool(t *testing.T) {
	char := ironclad(t)
	g, err := NewCardGenerator(rng.Seed(11), char, 1)
	if err != nil {
		t.Fatalf("NewCardGenerator: %v", err)
	}
	curse := g.OneCurse()
	found := false
	for _, c := range data.CursePool {
		if c == curse {
			found = true
			break
		}
	}
	if !found {
		t.Fatalf("OneCurse returned %v, not a member of CursePool", curse)
	}
}
