package data

// Starter and common/uncommon/rare Ironclad cards. Values are the reference
// game's published numbers; card selection follows the content-table scope
// decision recorded in DESIGN.md (Ironclad starters plus the cards named by
// the concrete combat-math test vectors).

func newStrike() *Card {
	return &Card{
		ID:     CardStrike,
		Name:   "Strike",
		Type:   CardTypeAttack,
		Color:  ColorRed,
		Rarity: RarityBasic,
		Cost:   1,
		Target: TargetSingleEnemy,
		Description: "Deal 6 damage.",
		Effects: []PlayerEffect{{
			Name: "Strike",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg := 6
				if upgraded {
					dmg = 9
				}
				ctx.DealDamage(dmg, target)
			},
		}},
	}
}

func newDefend() *Card {
	return &Card{
		ID:     CardDefend,
		Name:   "Defend",
		Type:   CardTypeSkill,
		Color:  ColorRed,
		Rarity: RarityBasic,
		Cost:   1,
		Target: TargetSelf,
		Description: "Gain 5 Block.",
		Effects: []PlayerEffect{{
			Name: "Defend",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				block := 5
				if upgraded {
					block = 8
				}
				ctx.GainBlock(block)
			},
		}},
	}
}

func newBash() *Card {
	return &Card{
		ID:     CardBash,
		Name:   "Bash",
		Type:   CardTypeAttack,
		Color:  ColorRed,
		Rarity: RarityBasic,
		Cost:   2,
		Target: TargetSingleEnemy,
		Description: "Deal 8 damage. Apply 2 Vulnerable.",
		Effects: []PlayerEffect{{
			Name: "Bash",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg, vuln := 8, 2
				if upgraded {
					dmg, vuln = 10, 3
				}
				ctx.DealDamage(dmg, target)
				ctx.ApplyCondition(target, ConditionVulnerable, vuln)
			},
		}},
	}
}

func newAnger() *Card {
	return &Card{
		ID:     CardAnger,
		Name:   "Anger",
		Type:   CardTypeAttack,
		Color:  ColorRed,
		Rarity: RarityCommon,
		Cost:   0,
		Target: TargetSingleEnemy,
		Description: "Deal 6 damage. Add a copy of this card to your discard pile.",
		Effects: []PlayerEffect{{
			Name: "Anger",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg := 6
				if upgraded {
					dmg = 8
				}
				ctx.DealDamage(dmg, target)
				ctx.AddCardToDiscard(CardAnger, upgraded)
			},
		}},
	}
}

func newClothesline() *Card {
	return &Card{
		ID:     CardClothesline,
		Name:   "Clothesline",
		Type:   CardTypeAttack,
		Color:  ColorRed,
		Rarity: RarityCommon,
		Cost:   2,
		Target: TargetSingleEnemy,
		Description: "Deal 12 damage. Apply 2 Weak.",
		Effects: []PlayerEffect{{
			Name: "Clothesline",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg, weak := 12, 2
				if upgraded {
					dmg, weak = 14, 3
				}
				ctx.DealDamage(dmg, target)
				ctx.ApplyCondition(target, ConditionWeak, weak)
			},
		}},
	}
}

// newBloodForBlood has a fixed Cost of 4. Nothing lowers it when the player
// loses HP, so the cost reduction in its description does not happen.
func newBloodForBlood() *Card {
	return &Card{
		ID:     CardBloodForBlood,
		Name:   "Blood for Blood",
		Type:   CardTypeAttack,
		Color:  ColorRed,
		Rarity: RarityUncommon,
		Cost:   4,
		Target: TargetSingleEnemy,
		Description: "Costs 1 less energy each time you lose HP. Deal 18 damage.",
		Effects: []PlayerEffect{{
			Name: "Blood for Blood",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg := 18
				if upgraded {
					dmg = 22
				}
				ctx.DealDamage(dmg, target)
			},
		}},
	}
}

func newIntimidate() *Card {
	return &Card{
		ID:       CardIntimidate,
		Name:     "Intimidate",
		Type:     CardTypeSkill,
		Color:    ColorRed,
		Rarity:   RarityUncommon,
		Cost:     0,
		Target:   TargetAllEnemies,
		Exhausts: true,
		Description: "Apply 1 Weak to all enemies. Exhaust.",
		Effects: []PlayerEffect{{
			Name: "Intimidate",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				weak := 1
				if upgraded {
					weak = 2
				}
				for i := 0; i < ctx.EnemyCount(); i++ {
					if ctx.IsEnemyAlive(i) {
						ctx.ApplyCondition(i, ConditionWeak, weak)
					}
				}
			},
			ExhaustSelf: true,
		}},
	}
}

func newThunderclap() *Card {
	return &Card{
		ID:     CardThunderclap,
		Name:   "Thunderclap",
		Type:   CardTypeAttack,
		Color:  ColorRed,
		Rarity: RarityCommon,
		Cost:   1,
		Target: TargetAllEnemies,
		Description: "Deal 4 damage and apply 1 Vulnerable to ALL enemies.",
		Effects: []PlayerEffect{{
			Name: "Thunderclap",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg, vuln := 4, 1
				if upgraded {
					dmg = 7
				}
				for i := 0; i < ctx.EnemyCount(); i++ {
					if ctx.IsEnemyAlive(i) {
						ctx.DealDamage(dmg, i)
						ctx.ApplyCondition(i, ConditionVulnerable, vuln)
					}
				}
			},
		}},
	}
}

func newHeavyBlade() *Card {
	return &Card{
		ID:     CardHeavyBlade,
		Name:   "Heavy Blade",
		Type:   CardTypeAttack,
		Color:  ColorRed,
		Rarity: RarityCommon,
		Cost:   2,
		Target: TargetSingleEnemy,
		Description: "Deal 14 damage. Strength affects this card 3 times.",
		Effects: []PlayerEffect{{
			Name: "Heavy Blade",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				dmg, mult := 14, 3
				if upgraded {
					dmg, mult = 14, 5
				}
				ctx.DealDamageStrengthMultiplied(dmg, mult, target)
			},
		}},
	}
}

func newArmaments() *Card {
	return &Card{
		ID:     CardArmaments,
		Name:   "Armaments",
		Type:   CardTypeSkill,
		Color:  ColorRed,
		Rarity: RarityCommon,
		Cost:   1,
		Target: TargetSelf,
		Description: "Gain 5 Block. Upgrade a card in your hand for the rest of combat.",
		Effects: []PlayerEffect{{
			Name: "Armaments",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				ctx.GainBlock(5)
				if upgraded {
					ctx.UpgradeAllCardsInHand()
					return
				}
				if idx, ok := ctx.ChooseCardInHandToUpgrade(); ok {
					ctx.UpgradeCardInHand(idx)
				}
			},
		}},
		UpgradedEffects: nil,
	}
}

func newSeeingRed() *Card {
	return &Card{
		ID:       CardSeeingRed,
		Name:     "Seeing Red",
		Type:     CardTypeSkill,
		Color:    ColorRed,
		Rarity:   RarityUncommon,
		Cost:         1,
		UpgradedCost: intPtr(0),
		Target:       TargetSelf,
		Exhausts:     true,
		Description:  "Exhaust. Gain 2 Energy.",
		Effects: []PlayerEffect{{
			Name: "Seeing Red",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				ctx.GainEnergy(2)
			},
			ExhaustSelf: true,
		}},
	}
}
