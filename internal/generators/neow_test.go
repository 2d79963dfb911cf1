package generators

import (
	"testing"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/rng"
)

func TestNeowGeneratorBlessingChoicesShape(t *testing.T) {
	char := ironclad(t)
	cardGen, err := NewCardGenerator(rng.Seed(5), char, 1)
	if err != nil {
		t.Fatalf("NewCardGenerator: %v", err)
	}
	g := NewNeowGenerator(rng.Seed(3), char, cardGen.rng)
	choices := g.BlessingChoices()
	if choices[2].Blessing != data.NeowComposite {
		t.Fatalf("expected the third slot to be a composite blessing, got %v", choices[2].Blessing)
	}
	if choices[3].Blessing != data.NeowReplaceStarterRelic {
		t.Fatalf("expected the fourth slot to always replace the starter relic, got %v", choices[3].Blessing)
	}
}

func TestNeowGeneratorDeterministic(t *testing.T) {
	char := ironclad(t)
	cardGen1, err := NewCardGenerator(rng.Seed(9), char, 1)
	if err != nil {
		t.Fatalf("NewCardGenerator: %v", err)
	}
	cardGen2, err := NewCardGenerator(rng.Seed(9), char, 1)
	if err != nil {
		t.Fatalf("NewCardGenerator: %v", err)
	}
	g1 := NewNeowGenerator(rng.Seed(4), char, cardGen1.rng)
	g2 := NewNeowGenerator(rng.Seed(4), char, cardGen2.rng)
	if g1.BlessingChoices() != g2.BlessingChoices() {
		t.Fatal("same seed produced different blessing choices")
	}
}

func TestNeowGeneratorThreeCardChoicesDistinct(t *testing.T) {
	char := ironclad(t)
	cardGen, err := NewCardGenerator(rng.Seed(2), char, 1)
	if err != nil {
		t.Fatalf("NewCardGenerator: %v", err)
	}
	g := NewNeowGenerator(rng.Seed(6), char, cardGen.rng)
	cards := g.ThreeCardChoices()
	if len(cards) != 3 {
		t.Fatalf("expected 3 cards, got %d", len(cards))
	}
	seen := map[data.CardID]bool{}
	for _, c := range cards {
		if seen[c] {
			t.Fatalf("duplicate card choice %v", c)
		}
		seen[c] = true
	}
}

func TestNeowGeneratorOneRandomRareCardWithinPool(t *testing.T) {
	char := ironclad(t)
	cardGen, err := NewCardGenerator(rng.Seed(1), char, 1)
	if err != nil {
		t.Fatalf("NewCardGenerator: %v", err)
	}
	g := NewNeowGenerator(rng.Seed(1), char, cardGen.rng)
	rare := g.OneRandomRareCard()
	found := false
	for _, c := range char.RarePool {
		if c == rare {
			found = true
		}
	}
	if !found {
		t.Fatalf("OneRandomRareCard returned %v, not in the rare pool", rare)
	}
}
