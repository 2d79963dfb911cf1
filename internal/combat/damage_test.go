package combat

import "testing"

func TestCalculateInitialDamageFloorsAtZero(t *testing.T) {
	if got := CalculateInitialDamage(3, -10); got != 0 {
		t.Errorf("CalculateInitialDamage(3, -10) = %d, want 0", got)
	}
	if got := CalculateInitialDamage(6, 2); got != 8 {
		t.Errorf("CalculateInitialDamage(6, 2) = %d, want 8", got)
	}
}

func TestApplyWeakVulnerableOrder(t *testing.T) {
	// 8 damage, weak floors to 6, vulnerable then raises to 9.
	got := ApplyWeakVulnerable(8, true, true)
	if got != 9 {
		t.Errorf("ApplyWeakVulnerable(8, true, true) = %d, want 9", got)
	}
}

func TestCalculateDamageSkipsMultipliersForNonBlockableVariants(t *testing.T) {
	got := CalculateDamage(8, 0, true, true, DamageHpLoss)
	if got != 8 {
		t.Errorf("HpLoss variant should skip weak/vulnerable, got %d, want 8", got)
	}
}

func TestCalculateBlockAppliesFrailFloor(t *testing.T) {
	got := CalculateBlock(8, 2, true)
	// (8+2) * 3/4 = 7
	if got != 7 {
		t.Errorf("CalculateBlock(8, 2, frail) = %d, want 7", got)
	}
}

func TestApplyDamageConsumesBlockFirst(t *testing.T) {
	hpLost, blockRemaining := ApplyDamage(10, 6, DamageBlockable)
	if hpLost != 4 || blockRemaining != 0 {
		t.Errorf("ApplyDamage(10, 6) = (%d, %d), want (4, 0)", hpLost, blockRemaining)
	}

	hpLost, blockRemaining = ApplyDamage(4, 6, DamageBlockable)
	if hpLost != 0 || blockRemaining != 2 {
		t.Errorf("ApplyDamage(4, 6) = (%d, %d), want (0, 2)", hpLost, blockRemaining)
	}
}

func TestApplyDamageHpLossIgnoresBlock(t *testing.T) {
	hpLost, blockRemaining := ApplyDamage(5, 10, DamageHpLoss)
	if hpLost != 5 || blockRemaining != 10 {
		t.Errorf("ApplyDamage HpLoss = (%d, %d), want (5, 10)", hpLost, blockRemaining)
	}
}
