package generators

import (
	"testing"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/rng"
)

func potionInPool(pool []data.PotionID, id data.PotionID) bool {
	for _, p := range pool {
		if p == id {
			return true
		}
	}
	return false
}

func TestPotionGeneratorGenPotionsWithinPool(t *testing.T) {
	char := ironclad(t)
	g := NewPotionGenerator(rng.Seed(5), char)
	potions := g.GenPotions(10)
	if len(potions) != 10 {
		t.Fatalf("expected 10 potions, got %d", len(potions))
	}
	for _, p := range potions {
		if !potionInPool(char.PotionPool, p) {
			t.Fatalf("potion %v not in character's potion pool", p)
		}
	}
}

func TestPotionGeneratorDeterministic(t *testing.T) {
	char := ironclad(t)
	g1 := NewPotionGenerator(rng.Seed(14), char)
	g2 := NewPotionGenerator(rng.Seed(14), char)
	p1 := g1.GenPotions(5)
	p2 := g2.GenPotions(5)
	for i := range p1 {
		if p1[i] != p2[i] {
			t.Fatalf("same seed produced different potions at %d: %v vs %v", i, p1[i], p2[i])
		}
	}
}

func TestPotionGeneratorCombatRewardThresholdSlides(t *testing.T) {
	char := ironclad(t)
	g := NewPotionGenerator(rng.Seed(2), char)
	awarded := 0
	for i := 0; i < 20; i++ {
		if _, ok := g.CombatReward(); ok {
			awarded++
		}
	}
	if awarded == 0 {
		t.Fatal("expected at least one potion award across 20 rolls with a starting 40% threshold")
	}
}
