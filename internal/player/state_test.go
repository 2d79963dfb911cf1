package player

import (
	"testing"

	"github.com/nkessler/spireengine/internal/data"
)

func ironclad(t *testing.T) *data.Character {
	t.Helper()
	c, err := data.LookupCharacter(data.CharacterIronclad)
	if err != nil {
		t.Fatalf("LookupCharacter: %v", err)
	}
	return c
}

func TestNewPersistentStateMatchesCharacter(t *testing.T) {
	c := ironclad(t)
	s := NewPersistentState(c)
	if s.HP != c.StartHP || s.HPMax != c.StartHP {
		t.Fatalf("expected HP/HPMax %d, got %d/%d", c.StartHP, s.HP, s.HPMax)
	}
	if len(s.Relics) != 1 || s.Relics[0] != c.StartingRelic {
		t.Fatalf("expected starting relic %v, got %v", c.StartingRelic, s.Relics)
	}
	if len(s.Deck) != len(c.StartingDeck) {
		t.Fatalf("expected deck length %d, got %d", len(c.StartingDeck), len(s.Deck))
	}
	if slot := s.EmptyPotionSlot(); slot != 0 {
		t.Fatalf("expected first potion slot empty, got %d", slot)
	}
}

func TestPersistentStatePotionSlots(t *testing.T) {
	s := NewPersistentState(ironclad(t))
	for i := 0; i < PotionSlotCount; i++ {
		if !s.AddPotion(data.PotionFire) {
			t.Fatalf("expected slot %d to accept a potion", i)
		}
	}
	if s.AddPotion(data.PotionFire) {
		t.Fatal("expected potion slots to be full")
	}
	s.ClearPotionSlot(1)
	if s.EmptyPotionSlot() != 1 {
		t.Fatalf("expected slot 1 empty after clear, got %d", s.EmptyPotionSlot())
	}
}

func TestConditionListMergesOnReapply(t *testing.T) {
	var cl ConditionList
	cl.Apply(data.ConditionVulnerable, 2)
	cl.Apply(data.ConditionWeak, 1)
	cl.Apply(data.ConditionVulnerable, 3)
	if len(cl) != 2 {
		t.Fatalf("expected 2 distinct conditions, got %d", len(cl))
	}
	if got := cl.StacksOf(data.ConditionVulnerable); got != 5 {
		t.Fatalf("expected merged Vulnerable stacks 5, got %d", got)
	}
}

func TestConditionListTickEndOfTurnDecaysAndDrops(t *testing.T) {
	var cl ConditionList
	cl.Apply(data.ConditionVulnerable, 1)
	cl.Apply(data.ConditionStrength, 3)
	cl.TickEndOfTurn(nil)
	if got := cl.StacksOf(data.ConditionVulnerable); got != 0 {
		t.Fatalf("expected Vulnerable to drop to 0 and be removed, StacksOf returned %d", got)
	}
	if len(cl) != 1 {
		t.Fatalf("expected only Strength to remain, got %d entries", len(cl))
	}
	if got := cl.StacksOf(data.ConditionStrength); got != 3 {
		t.Fatalf("expected Strength to persist at 3, got %d", got)
	}
}

func TestConditionListRitualGainsStrengthAfterFirstTurn(t *testing.T) {
	var cl ConditionList
	cl.Apply(data.ConditionRitual, 3)

	gained := 0
	cl.TickEndOfTurn(func(n int) { gained += n })
	if gained != 0 {
		t.Fatalf("expected no strength gain on the turn Ritual is applied, got %d", gained)
	}

	cl.TickEndOfTurn(func(n int) { gained += n })
	if gained != 3 {
		t.Fatalf("expected 3 strength gained on the following turn, got %d", gained)
	}
}

func TestCardPilesDrawAndShuffle(t *testing.T) {
	c := ironclad(t)
	var piles CardPiles
	for i, id := range c.StartingDeck {
		card, err := data.LookupCard(id)
		if err != nil {
			t.Fatalf("LookupCard: %v", err)
		}
		piles.ToDrawTop(NewCardInstance(card, i, false))
	}

	drawn := piles.DrawOne()
	if drawn == nil {
		t.Fatal("expected a card from a non-empty draw pile")
	}
	piles.AddToHand(drawn)
	if piles.HandSize() != 1 {
		t.Fatalf("expected hand size 1, got %d", piles.HandSize())
	}
	piles.RemoveFromHand(drawn)
	piles.ToDiscard(drawn)
	if piles.DiscardPileSize() != 1 {
		t.Fatalf("expected discard pile size 1, got %d", piles.DiscardPileSize())
	}

	before := len(piles.Draw)
	piles.ShuffleDiscardIntoDraw(func(swap func(i, j int), n int) {
		if n > 1 {
			swap(0, n-1)
		}
	})
	if piles.DiscardPileSize() != 0 {
		t.Fatal("expected discard pile to be empty after reshuffle")
	}
	if len(piles.Draw) != before+1 {
		t.Fatalf("expected draw pile to grow by 1, got %d -> %d", before, len(piles.Draw))
	}
}

func TestCombatStateGainBlockRespectsFrail(t *testing.T) {
	cs := NewCombatState(NewPersistentState(ironclad(t)))
	cs.GainBlock(8)
	if cs.Block != 8 {
		t.Fatalf("expected 8 block, got %d", cs.Block)
	}
	cs.Block = 0
	cs.Conditions.Apply(data.ConditionFrail, 1)
	cs.GainBlock(8)
	if cs.Block != 6 {
		t.Fatalf("expected Frail to floor 8 block to 6, got %d", cs.Block)
	}
}

func TestCombatStateResetTurnStateHonorsRetain(t *testing.T) {
	cs := NewCombatState(NewPersistentState(ironclad(t)))
	cs.Block = 5
	cs.RetainBlockNextTurn = true
	cs.ResetTurnState()
	if cs.Block != 5 {
		t.Fatalf("expected retained block to survive, got %d", cs.Block)
	}
	if cs.RetainBlockNextTurn {
		t.Fatal("expected RetainBlockNextTurn to clear after being honored once")
	}
	cs.ResetTurnState()
	if cs.Block != 0 {
		t.Fatalf("expected block to reset to 0 on the following turn, got %d", cs.Block)
	}
}
