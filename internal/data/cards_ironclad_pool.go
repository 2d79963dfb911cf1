package data

// Additional Ironclad pool cards beyond the starter deck and the
// test-vector set in cards_ironclad.go, added per the content-table scope
// decision so pool_for_class (internal/generators.CardGenerator) has a
// realistic number of entries per rarity tier to draw from. Several of
// these are Powers or have multi-part effects the live game ties to
// triggers (HP-loss, turn-start, fatal-blow) this engine's EffectContext
// has no hook for; those are simplified to an immediate, one-shot version
// of the same effect, the same kind of simplification already applied to
// Akabeko in relics_sample.go, and are called out per-card below.

func newIronWave() *Card {
	return &Card{
		ID: CardIronWave, Name: "Iron Wave", Type: CardTypeAttack, Color: ColorRed,
		Rarity: RarityCommon, Cost: 1, Target: TargetSingleEnemy,
		Description: "Deal 5 damage. Gain 5 Block.",
		Effects: []PlayerEffect{{
			Name: "Iron Wave",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg, block := 5, 5
				if upgraded {
					dmg, block = 7, 7
				}
				ctx.DealDamage(dmg, target)
				ctx.GainBlock(block)
			},
		}},
	}
}

// newHeadbutt simplifies away the live game's "put a card from your discard
// pile on top of your draw pile" clause: EffectContext has no hook to pick
// an arbitrary discard-pile card, so only the damage carries over.
func newHeadbutt() *Card {
	return &Card{
		ID: CardHeadbutt, Name: "Headbutt", Type: CardTypeAttack, Color: ColorRed,
		Rarity: RarityCommon, Cost: 1, Target: TargetSingleEnemy,
		Description: "Deal 9 damage.",
		Effects: []PlayerEffect{{
			Name: "Headbutt",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg := 9
				if upgraded {
					dmg = 12
				}
				ctx.DealDamage(dmg, target)
			},
		}},
	}
}

func newPommelStrike() *Card {
	return &Card{
		ID: CardPommelStrike, Name: "Pommel Strike", Type: CardTypeAttack, Color: ColorRed,
		Rarity: RarityCommon, Cost: 1, Target: TargetSingleEnemy,
		Description: "Deal 9 damage. Draw 1 card.",
		Effects: []PlayerEffect{{
			Name: "Pommel Strike",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg, draw := 9, 1
				if upgraded {
					dmg, draw = 10, 2
				}
				ctx.DealDamage(dmg, target)
				ctx.Draw(draw)
			},
		}},
	}
}

func newTwinStrike() *Card {
	return &Card{
		ID: CardTwinStrike, Name: "Twin Strike", Type: CardTypeAttack, Color: ColorRed,
		Rarity: RarityCommon, Cost: 1, Target: TargetSingleEnemy,
		Description: "Deal 5 damage twice.",
		Effects: []PlayerEffect{{
			Name: "Twin Strike",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg := 5
				if upgraded {
					dmg = 7
				}
				ctx.DealDamage(dmg, target)
				ctx.DealDamage(dmg, target)
			},
		}},
	}
}

func newCleave() *Card {
	return &Card{
		ID: CardCleave, Name: "Cleave", Type: CardTypeAttack, Color: ColorRed,
		Rarity: RarityCommon, Cost: 1, Target: TargetAllEnemies,
		Description: "Deal 8 damage to ALL enemies.",
		Effects: []PlayerEffect{{
			Name: "Cleave",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg := 8
				if upgraded {
					dmg = 11
				}
				for i := 0; i < ctx.EnemyCount(); i++ {
					if ctx.IsEnemyAlive(i) {
						ctx.DealDamage(dmg, i)
					}
				}
			},
		}},
	}
}

// newClash drops the live game's "can only be played if every card in hand
// is an Attack" restriction: this engine's PlayerEffect has no CanActivate
// hook (see internal/data/effect.go's doc comment on the simplified,
// chain-free effect model), so Clash resolves unconditionally.
func newClash() *Card {
	return &Card{
		ID: CardClash, Name: "Clash", Type: CardTypeAttack, Color: ColorRed,
		Rarity: RarityCommon, Cost: 0, Target: TargetSingleEnemy,
		Description: "Deal 14 damage.",
		Effects: []PlayerEffect{{
			Name: "Clash",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg := 14
				if upgraded {
					dmg = 18
				}
				ctx.DealDamage(dmg, target)
			},
		}},
	}
}

// newHavoc simplifies "play the top card of your draw pile and Exhaust it"
// (which would require resolving an arbitrary card's own effect mid-card,
// something this engine's single-level effect queue doesn't support) to
// drawing then exhausting a card, preserving Havoc's net resource cost.
func newHavoc() *Card {
	return &Card{
		ID: CardHavoc, Name: "Havoc", Type: CardTypeSkill, Color: ColorRed,
		Rarity: RarityCommon, Cost: 1, UpgradedCost: intPtr(0), Target: TargetSelf,
		Description: "Draw 1 card, then Exhaust a card from your hand.",
		Effects: []PlayerEffect{{
			Name: "Havoc",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				ctx.Draw(1)
				ctx.Exhaust(1)
			},
		}},
	}
}

func newShrugItOff() *Card {
	return &Card{
		ID: CardShrugItOff, Name: "Shrug It Off", Type: CardTypeSkill, Color: ColorRed,
		Rarity: RarityCommon, Cost: 1, Target: TargetSelf,
		Description: "Gain 8 Block. Draw 1 card.",
		Effects: []PlayerEffect{{
			Name: "Shrug It Off",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				block := 8
				if upgraded {
					block = 11
				}
				ctx.GainBlock(block)
				ctx.Draw(1)
			},
		}},
	}
}

// newWhirlwind approximates the live game's X-cost ("deal damage ALL
// enemies X times", consuming all remaining Energy) as a fixed 3 hits,
// since this engine's Card.Cost model (internal/data/card.go) has no X-cost
// representation distinct from a fixed int.
func newWhirlwind() *Card {
	return &Card{
		ID: CardWhirlwind, Name: "Whirlwind", Type: CardTypeAttack, Color: ColorRed,
		Rarity: RarityUncommon, Cost: 1, Target: TargetAllEnemies,
		Description: "Deal 5 damage to ALL enemies 3 times.",
		Effects: []PlayerEffect{{
			Name: "Whirlwind",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg := 5
				if upgraded {
					dmg = 8
				}
				for hit := 0; hit < 3; hit++ {
					for i := 0; i < ctx.EnemyCount(); i++ {
						if ctx.IsEnemyAlive(i) {
							ctx.DealDamage(dmg, i)
						}
					}
				}
			},
		}},
	}
}

func newUppercut() *Card {
	return &Card{
		ID: CardUppercut, Name: "Uppercut", Type: CardTypeAttack, Color: ColorRed,
		Rarity: RarityUncommon, Cost: 2, Target: TargetSingleEnemy,
		Description: "Deal 13 damage. Apply 2 Weak. Apply 2 Vulnerable.",
		Effects: []PlayerEffect{{
			Name: "Uppercut",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				weak, vuln := 2, 2
				if upgraded {
					weak, vuln = 3, 3
				}
				ctx.DealDamage(13, target)
				ctx.ApplyCondition(target, ConditionWeak, weak)
				ctx.ApplyCondition(target, ConditionVulnerable, vuln)
			},
		}},
	}
}

// newRupture simplifies its "whenever you lose HP from a card, gain
// Strength" trigger (no HP-loss hook exists on EffectContext) to an
// immediate Strength gain on play.
func newRupture() *Card {
	return &Card{
		ID: CardRupture, Name: "Rupture", Type: CardTypePower, Color: ColorRed,
		Rarity: RarityUncommon, Cost: 1, Target: TargetSelf,
		Description: "Gain 1 Strength.",
		Effects: []PlayerEffect{{
			Name: "Rupture",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				stacks := 1
				if upgraded {
					stacks = 2
				}
				ctx.ApplyConditionSelf(ConditionStrength, stacks)
			},
		}},
	}
}

// newCombust simplifies its recurring "at the end of your turn" trigger
// (no end-of-turn Power-hook exists on EffectContext, unlike RelicHooks'
// OnTurnEnd) to a single immediate resolution, and drops its "lose 1 HP"
// clause: EffectContext's LoseHP is documented as enemy-targeted (the
// player-facing equivalents are each named explicitly, e.g. HealSelf), and
// true unblockable self-damage has no such dedicated hook.
func newCombust() *Card {
	return &Card{
		ID: CardCombust, Name: "Combust", Type: CardTypePower, Color: ColorRed,
		Rarity: RarityUncommon, Cost: 1, Target: TargetAllEnemies,
		Description: "Deal 5 damage to ALL enemies.",
		Effects: []PlayerEffect{{
			Name: "Combust",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg := 5
				if upgraded {
					dmg = 7
				}
				for i := 0; i < ctx.EnemyCount(); i++ {
					if ctx.IsEnemyAlive(i) {
						ctx.DealDamage(dmg, i)
					}
				}
			},
		}},
	}
}

// newReaper approximates "heal HP equal to unblocked damage dealt" (the
// live game's Reaper) as a heal equal to the full raw damage against every
// enemy hit, since EffectContext's DealDamage doesn't report the post-block
// amount back to the caller.
func newReaper() *Card {
	return &Card{
		ID: CardReaper, Name: "Reaper", Type: CardTypeAttack, Color: ColorRed,
		Rarity: RarityRare, Cost: 2, Target: TargetAllEnemies, Exhausts: true,
		Description: "Deal 4 damage to ALL enemies. Heal HP equal to unblocked damage dealt. Exhaust.",
		Effects: []PlayerEffect{{
			Name: "Reaper",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg := 4
				if upgraded {
					dmg = 5
				}
				healed := 0
				for i := 0; i < ctx.EnemyCount(); i++ {
					if ctx.IsEnemyAlive(i) {
						ctx.DealDamage(dmg, i)
						healed += dmg
					}
				}
				ctx.HealSelf(healed)
			},
			ExhaustSelf: true,
		}},
	}
}

// newDemonForm repurposes ConditionRitual — normally the reference's
// enemy-only "gain Strength each turn" power — as the engine's primitive
// for Demon Form's identical player-facing mechanic, since no
// player-specific equivalent condition exists in this engine's reduced
// condition table (internal/data/types.go).
func newDemonForm() *Card {
	return &Card{
		ID: CardDemonForm, Name: "Demon Form", Type: CardTypePower, Color: ColorRed,
		Rarity: RarityRare, Cost: 3, Target: TargetSelf,
		Description: "At the start of your turn, gain 2 Strength.",
		Effects: []PlayerEffect{{
			Name: "Demon Form",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				stacks := 2
				if upgraded {
					stacks = 3
				}
				ctx.ApplyConditionSelf(ConditionRitual, stacks)
			},
		}},
	}
}

// newFeed simplifies "if fatal, raise your max HP" (no persistent max-HP
// hook on EffectContext, combat-scoped only — see Fruit Juice's potion doc
// comment in potion.go for the same gap) to a same-magnitude heal when the
// hit is lethal.
func newFeed() *Card {
	return &Card{
		ID: CardFeed, Name: "Feed", Type: CardTypeAttack, Color: ColorRed,
		Rarity: RarityRare, Cost: 1, Target: TargetSingleEnemy, Exhausts: true,
		Description: "Deal 10 damage. If Fatal, raise your max HP by 3. Exhaust.",
		Effects: []PlayerEffect{{
			Name: "Feed",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg, gain := 10, 3
				if upgraded {
					dmg, gain = 12, 4
				}
				ctx.DealDamage(dmg, target)
				if !ctx.IsEnemyAlive(target) {
					ctx.HealSelf(gain)
				}
			},
			ExhaustSelf: true,
		}},
	}
}
