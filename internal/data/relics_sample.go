package data

func newBurningBlood() *Relic {
	return &Relic{
		ID:          RelicBurningBlood,
		Name:        "Burning Blood",
		Tier:        RelicTierStarter,
		Description: "At the end of combat, heal 6 HP.",
		Hooks: RelicHooks{
			OnCombatEnd: func(ctx EffectContext) {
				ctx.HealSelf(6)
			},
		},
	}
}

func newAkabeko() *Relic {
	return &Relic{
		ID:   RelicAkabeko,
		Name: "Akabeko",
		Tier: RelicTierCommon,
		// Simplified from the reference's "next attack deals 8 extra
		// damage" one-shot buff to a flat Strength+1 for the whole combat,
		// since this engine's condition set has no single-use Vigor stack.
		Description: "At the start of combat, gain 1 Strength.",
		Hooks: RelicHooks{
			OnCombatStart: func(ctx EffectContext) {
				ctx.ApplyConditionSelf(ConditionStrength, 1)
			},
		},
	}
}

func newBagOfMarbles() *Relic {
	return &Relic{
		ID:          RelicBagOfMarbles,
		Name:        "Bag of Marbles",
		Tier:        RelicTierCommon,
		Description: "At the start of combat, apply 1 Vulnerable to all enemies.",
		Hooks: RelicHooks{
			OnCombatStart: func(ctx EffectContext) {
				for i := 0; i < ctx.EnemyCount(); i++ {
					if ctx.IsEnemyAlive(i) {
						ctx.ApplyCondition(i, ConditionVulnerable, 1)
					}
				}
			},
		},
	}
}

func newOrichalcum() *Relic {
	return &Relic{
		ID:          RelicOrichalcum,
		Name:        "Orichalcum",
		Tier:        RelicTierUncommon,
		Description: "If you end your turn without Block, gain 6 Block.",
		Hooks: RelicHooks{
			OnTurnEnd: func(ctx EffectContext) {
				if ctx.SelfBlock() == 0 {
					ctx.GainBlock(6)
				}
			},
		},
	}
}

func newSneckoEye() *Relic {
	return &Relic{
		ID:   RelicSneckoEye,
		Name: "Snecko Eye",
		Tier: RelicTierBoss,
		// relic_system.rs's extra_cards_to_draw_at_start_of_player_turn
		// grants +2 draw while the relic is held; the accompanying cost
		// randomisation is the same Confusion stack cards already respect
		// mid-combat (draw.go), applied once at combat start so it lasts
		// the whole fight rather than decaying turn to turn.
		Description: "At the start of combat, gain 1 Confusion. Draw 2 additional cards at the start of each turn.",
		Hooks: RelicHooks{
			OnCombatStart: func(ctx EffectContext) {
				ctx.ApplyConditionSelf(ConditionConfusion, 1)
			},
			OnTurnStart: func(ctx EffectContext) {
				ctx.Draw(2)
			},
		},
	}
}

// Runic Dome's only effect in the reference is hiding enemy intents from
// the player; this engine always renders EnemyView.Intent (no "hidden
// intent" mode exists anywhere in the notification layer), so there's
// nothing for a hook to toggle. Kept as a real boss-tier pool entry with no
// hooks, same shape as Circlet's documented no-op.
func newRunicDome() *Relic {
	return &Relic{
		ID:          RelicRunicDome,
		Name:        "Runic Dome",
		Tier:        RelicTierBoss,
		Description: "Enemy intents are not displayed.",
	}
}

// Circlet is the reference's documented fallback sentinel returned when a
// relic pool is exhausted (lib/src/rng/relic.rs): a relic with no effect.
func newCirclet() *Relic {
	return &Relic{
		ID:          RelicCirclet,
		Name:        "Circlet",
		Tier:        RelicTierRare,
		Description: "A relic with no effect, returned when a pool runs dry.",
	}
}
