package data

// Act 1 enemies. Cultist and Acid Slime (M)/Spike Slime (S) are directly
// grounded on original_source's enemy/party.rs, which implements exactly
// the Cultist and SmallSlimes (SpikeSlimeS+AcidSlimeM, or AcidSlimeS+
// SpikeSlimeM) encounters — SmallSlimes' coin-flip pairing is why Acid
// Slime (M) and Spike Slime (S) are the pair carried here. Jaw Worm is
// left as todo!() in that same file, so its move set below is the
// engine's own supplement (spec §9 content-table decision), not a port.

func newCultist() *Enemy {
	incantation := EnemyMove{
		Name:   "Incantation",
		Intent: "Buff",
		Effect: EnemyEffect{
			Name:   "Incantation",
			Intent: "Buff",
			Resolve: func(ctx EffectContext, upgraded bool) {
				ctx.ApplyConditionSelf(ConditionRitual, 3)
			},
		},
		Weight: 1,
	}
	darkStrike := EnemyMove{
		Name:   "Dark Strike",
		Intent: "Attack",
		Effect: EnemyEffect{
			Name:       "Dark Strike",
			Intent:     "Attack",
			BaseDamage: 6,
			Hits:       1,
			Resolve: func(ctx EffectContext, upgraded bool) {
				ctx.DealDamageToPlayer(6)
			},
		},
		Weight: 1,
	}
	return &Enemy{
		ID:        EnemyCultist,
		Name:      "Cultist",
		MinHP:     48,
		MaxHP:     54,
		FirstMove: &incantation,
		Moves:     []EnemyMove{darkStrike},
	}
}

func newJawWorm() *Enemy {
	chomp := EnemyMove{
		Name:   "Chomp",
		Intent: "Attack",
		Effect: EnemyEffect{
			Name:       "Chomp",
			Intent:     "Attack",
			BaseDamage: 11,
			Hits:       1,
			Resolve: func(ctx EffectContext, upgraded bool) {
				ctx.DealDamageToPlayer(11)
			},
		},
		Weight:         0.25,
		MaxConsecutive: 1,
	}
	thrash := EnemyMove{
		Name:   "Thrash",
		Intent: "AttackDefend",
		Effect: EnemyEffect{
			Name:       "Thrash",
			Intent:     "AttackDefend",
			BaseDamage: 7,
			Hits:       1,
			Resolve: func(ctx EffectContext, upgraded bool) {
				ctx.DealDamageToPlayer(7)
				ctx.GainBlock(5)
			},
		},
		Weight:         0.30,
		MaxConsecutive: 2,
	}
	bellow := EnemyMove{
		Name:   "Bellow",
		Intent: "Buff",
		Effect: EnemyEffect{
			Name:   "Bellow",
			Intent: "Buff",
			Resolve: func(ctx EffectContext, upgraded bool) {
				ctx.ApplyConditionSelf(ConditionStrength, 3)
				ctx.GainBlock(6)
			},
		},
		Weight:         0.45,
		MaxConsecutive: 1,
	}
	return &Enemy{
		ID:        EnemyJawWorm,
		Name:      "Jaw Worm",
		MinHP:     40,
		MaxHP:     44,
		FirstMove: &chomp,
		Moves:     []EnemyMove{chomp, thrash, bellow},
	}
}

func newAcidSlimeM() *Enemy {
	corrosiveSpit := EnemyMove{
		Name:   "Corrosive Spit",
		Intent: "Attack",
		Effect: EnemyEffect{
			Name:       "Corrosive Spit",
			Intent:     "Attack",
			BaseDamage: 7,
			Hits:       1,
			Resolve: func(ctx EffectContext, upgraded bool) {
				ctx.DealDamageToPlayer(7)
				ctx.AddCardToDiscard(CardSlimed, false)
			},
		},
		Weight:         0.30,
		MaxConsecutive: 2,
	}
	lick := EnemyMove{
		Name:   "Lick",
		Intent: "Debuff",
		Effect: EnemyEffect{
			Name:   "Lick",
			Intent: "Debuff",
			Resolve: func(ctx EffectContext, upgraded bool) {
				ctx.ApplyConditionToPlayer(ConditionWeak, 1)
			},
		},
		Weight:         0.30,
		MaxConsecutive: 2,
	}
	tackle := EnemyMove{
		Name:   "Tackle",
		Intent: "Attack",
		Effect: EnemyEffect{
			Name:       "Tackle",
			Intent:     "Attack",
			BaseDamage: 10,
			Hits:       1,
			Resolve: func(ctx EffectContext, upgraded bool) {
				ctx.DealDamageToPlayer(10)
			},
		},
		Weight:         0.40,
		MaxConsecutive: 2,
	}
	return &Enemy{
		ID:    EnemyAcidSlimeM,
		Name:  "Acid Slime (M)",
		MinHP: 28,
		MaxHP: 32,
		// Order matches the d100 bucket layout the reference's own AI roll
		// walks: 0-30 Corrosive Spit, 30-70 Tackle, 70-100 Lick.
		Moves: []EnemyMove{corrosiveSpit, tackle, lick},
	}
}

func newSpikeSlimeS() *Enemy {
	tackle := EnemyMove{
		Name:   "Tackle",
		Intent: "Attack",
		Effect: EnemyEffect{
			Name:       "Tackle",
			Intent:     "Attack",
			BaseDamage: 5,
			Hits:       1,
			Resolve: func(ctx EffectContext, upgraded bool) {
				ctx.DealDamageToPlayer(5)
			},
		},
		Weight: 1,
	}
	return &Enemy{
		ID:    EnemySpikeSlimeS,
		Name:  "Spike Slime (S)",
		MinHP: 10,
		MaxHP: 14,
		Moves: []EnemyMove{tackle},
	}
}
