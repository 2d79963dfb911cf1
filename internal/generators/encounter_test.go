package generators

import (
	"testing"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/rng"
)

func TestEncounterGeneratorWeakThenStrong(t *testing.T) {
	g, err := NewEncounterGenerator(rng.Seed(5))
	if err != nil {
		t.Fatalf("NewEncounterGenerator: %v", err)
	}
	act, _ := data.LookupAct(1)
	for i := 0; i < act.WeakMonsterEncounterCount; i++ {
		id, _ := g.NextMonsterEncounter()
		found := false
		for _, w := range act.WeakMonsterPool {
			if w.Encounter == id {
				found = true
			}
		}
		if !found {
			t.Fatalf("expected roll %d to come from the weak pool, got %v", i, id)
		}
	}
	id, _ := g.NextMonsterEncounter()
	found := false
	for _, w := range act.StrongMonsterPool {
		if w.Encounter == id {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected roll after the weak count to come from the strong pool, got %v", id)
	}
}

func TestEncounterGeneratorDeterministic(t *testing.T) {
	g1, _ := NewEncounterGenerator(rng.Seed(42))
	g2, _ := NewEncounterGenerator(rng.Seed(42))
	for i := 0; i < 5; i++ {
		id1, flip1 := g1.NextMonsterEncounter()
		id2, flip2 := g2.NextMonsterEncounter()
		if id1 != id2 || flip1 != flip2 {
			t.Fatalf("same seed diverged at roll %d: (%v,%v) vs (%v,%v)", i, id1, flip1, id2, flip2)
		}
	}
}

func TestEncounterGeneratorBossFromPool(t *testing.T) {
	g, _ := NewEncounterGenerator(rng.Seed(7))
	act, _ := data.LookupAct(1)
	boss := g.NextBossEncounter()
	found := false
	for _, b := range act.BossEncounterPool {
		if b == boss {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected boss %v to come from the boss pool", boss)
	}
}
