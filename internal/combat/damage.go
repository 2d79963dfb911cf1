package combat

// DamageVariant distinguishes the three outcomes spec §4.4.2 defines for
// CalculatedDamage: Blockable participates in the weak/vulnerable
// multipliers and can be absorbed by block; BlockableNonAttack can be
// absorbed by block but skips the multipliers; HpLoss skips both.
type DamageVariant int

const (
	DamageBlockable DamageVariant = iota
	DamageBlockableNonAttack
	DamageHpLoss
)

// CalculateInitialDamage applies stage 1 of §4.4.2: base amount plus
// attacker strength (floored at 0; the reference never lets an attack roll
// negative).
func CalculateInitialDamage(base, strength int) int {
	amount := base + strength
	if amount < 0 {
		return 0
	}
	return amount
}

// ApplyWeakVulnerable applies stage 2 of §4.4.2 in the documented order:
// attacker Weak floors the amount to ×0.75, then defender Vulnerable floors
// it to ×1.5. Only Blockable damage reaches this function; callers gate on
// DamageVariant before calling it.
func ApplyWeakVulnerable(amount int, attackerWeak, defenderVulnerable bool) int {
	if attackerWeak {
		amount = (amount * 3) / 4
	}
	if defenderVulnerable {
		amount = (amount * 3) / 2
	}
	return amount
}

// CalculateDamage runs both stages for a given variant, per §4.4.2: only
// Blockable damage receives the weak/vulnerable multipliers.
func CalculateDamage(base, strength int, attackerWeak, defenderVulnerable bool, variant DamageVariant) int {
	amount := CalculateInitialDamage(base, strength)
	if variant == DamageBlockable {
		amount = ApplyWeakVulnerable(amount, attackerWeak, defenderVulnerable)
	}
	return amount
}

// CalculateBlock runs §4.4.2's block-calculation rule: initial = amount +
// dexterity; Frail floors the result to ×0.75.
func CalculateBlock(amount, dexterity int, frail bool) int {
	initial := amount + dexterity
	if initial < 0 {
		initial = 0
	}
	if frail {
		initial = (initial * 3) / 4
	}
	return initial
}

// ApplyDamage consumes up to `block` of `amount` for Blockable and
// BlockableNonAttack variants (HpLoss passes through untouched), and
// returns the resulting hp lost plus the block remaining. Relic hooks that
// adjust hp_lost (Torii, TungstenRod in the reference) have no port in this
// engine's content-table scope — no relic in internal/data/relic.go
// implements a damage-modifying hook — so this function applies none; see
// DESIGN.md.
func ApplyDamage(amount, block int, variant DamageVariant) (hpLost int, blockRemaining int) {
	if variant == DamageHpLoss {
		return amount, block
	}
	if amount <= block {
		return 0, block - amount
	}
	return amount - block, 0
}
