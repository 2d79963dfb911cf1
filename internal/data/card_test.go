package data

import (
	"errors"
	"testing"
)

func TestLookupCardKnown(t *testing.T) {
	c, err := LookupCard(CardStrike)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if c.Name != "Strike" || c.Cost != 1 {
		t.Fatalf("unexpected card: %+v", c)
	}
}

func TestLookupCardUnknownIsUnimplemented(t *testing.T) {
	_, err := LookupCard(CardID(9999))
	if err == nil {
		t.Fatal("expected an error for an unregistered card ID")
	}
	var uerr *UnimplementedError
	if !errors.As(err, &uerr) {
		t.Fatalf("expected *UnimplementedError, got %T", err)
	}
	if uerr.Kind != KindCard {
		t.Fatalf("expected KindCard, got %v", uerr.Kind)
	}
}

func TestEffectiveCostRespectsUpgrade(t *testing.T) {
	c, _ := LookupCard(CardSeeingRed)
	if got := c.EffectiveCost(false); got != 1 {
		t.Fatalf("base cost = %d, want 1", got)
	}
	if got := c.EffectiveCost(true); got != 0 {
		t.Fatalf("upgraded cost = %d, want 0", got)
	}
}

func TestHeavyBladeConstructsWithStrengthMultiplier(t *testing.T) {
	c, err := LookupCard(CardHeavyBlade)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(c.Effects) != 1 {
		t.Fatalf("expected exactly one effect, got %d", len(c.Effects))
	}
}

func TestLookupEnemyUnknown(t *testing.T) {
	_, err := LookupEnemy(EnemyID(9999))
	var uerr *UnimplementedError
	if !errors.As(err, &uerr) || uerr.Kind != KindEnemy {
		t.Fatalf("expected unimplemented enemy error, got %v", err)
	}
}

func TestEnemyPartyForSmallSlimesCoinFlip(t *testing.T) {
	party, err := EnemyPartyFor(EncounterSmallSlimes, true)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(party) != 2 || party[0] != EnemySpikeSlimeS || party[1] != EnemyAcidSlimeM {
		t.Fatalf("unexpected party: %v", party)
	}
	if _, err := EnemyPartyFor(EncounterSmallSlimes, false); err == nil {
		t.Fatal("expected the unported SmallSlimes branch to be unimplemented")
	}
}

func TestLookupEventAlwaysUnimplemented(t *testing.T) {
	if err := LookupEvent(EventBigFish); err == nil {
		t.Fatal("expected event resolution to be unimplemented")
	}
}
