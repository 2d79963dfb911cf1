package data

// Colorless cards, drawn from UNCOMMON_COLORLESS_CARD_POOL by Neow's
// "choose an uncommon colorless card" blessing and by the card generator's
// three_colorless_card_choices (lib/src/rng/card.rs).

var UncommonColorlessPool = []CardID{CardBandageUp, CardTrip}

func newBandageUp() *Card {
	return &Card{
		ID:          CardBandageUp,
		Name:        "Bandage Up",
		Type:        CardTypeSkill,
		Color:       ColorColorless,
		Rarity:      RarityUncommon,
		Cost:        0,
		Target:      TargetSelf,
		Exhausts:    true,
		Description: "Exhaust. Heal 4 HP.",
		Effects: []PlayerEffect{{
			Name: "Bandage Up",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				heal := 4
				if upgraded {
					heal = 6
				}
				ctx.HealSelf(heal)
			},
			ExhaustSelf: true,
		}},
	}
}

func newTrip() *Card {
	return &Card{
		ID:          CardTrip,
		Name:        "Trip",
		Type:        CardTypeSkill,
		Color:       ColorColorless,
		Rarity:      RarityUncommon,
		Cost:        0,
		Target:      TargetSingleEnemy,
		Description: "Apply 2 Vulnerable.",
		Effects: []PlayerEffect{{
			Name: "Trip",
			Resolve: func(ctx EffectContext, target int, upgraded bool) {
				vuln := 2
				if upgraded {
					vuln = 3
				}
				ctx.ApplyCondition(target, ConditionVulnerable, vuln)
			},
		}},
	}
}
