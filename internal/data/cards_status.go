package data

// CursePool is drawn from by the card generator's one_curse
// (lib/src/systems/rng/card_generator.rs), and by events that inflict a
// random curse.
var CursePool = []CardID{CardClumsy, CardParasite, CardDecay}

// Status and curse cards: unplayable filler that clutters the draw pile
// rather than granting a useful effect. All but Slimed have no Effects, and
// the combat engine never offers a card without Effects as a play (spec
// §4.4.3 keys Confusion/Corruption/Evolve/FireBreathing conditions off cards
// like these entering hand/discard/exhaust). Of their descriptions only
// Unplayable, Ethereal and Exhaust take effect: Parasite's Max HP loss and
// Decay's end-of-turn damage have no hook and do not happen.

func newClumsy() *Card {
	return &Card{
		ID:          CardClumsy,
		Name:        "Clumsy",
		Type:        CardTypeCurse,
		Color:       ColorCurse,
		Rarity:      RarityCurse,
		Cost:        -1,
		Target:      TargetNone,
		Description: "Unplayable.",
	}
}

func newParasite() *Card {
	return &Card{
		ID:          CardParasite,
		Name:        "Parasite",
		Type:        CardTypeCurse,
		Color:       ColorCurse,
		Rarity:      RarityCurse,
		Cost:        -1,
		Target:      TargetNone,
		Description: "Unplayable. When discarded, lose 3 Max HP.",
	}
}

func newDecay() *Card {
	return &Card{
		ID:          CardDecay,
		Name:        "Decay",
		Type:        CardTypeCurse,
		Color:       ColorCurse,
		Rarity:      RarityCurse,
		Cost:        -1,
		Target:      TargetNone,
		Description: "Unplayable. At the end of your turn, take 2 damage.",
	}
}

func newWound() *Card {
	return &Card{
		ID:          CardWound,
		Name:        "Wound",
		Type:        CardTypeStatus,
		Color:       ColorStatus,
		Rarity:      RaritySpecial,
		Cost:        -1,
		Target:      TargetNone,
		Description: "Unplayable.",
	}
}

func newDazed() *Card {
	return &Card{
		ID:          CardDazed,
		Name:        "Dazed",
		Type:        CardTypeStatus,
		Color:       ColorStatus,
		Rarity:      RaritySpecial,
		Cost:        -1,
		Target:      TargetNone,
		Ethereal:    true,
		Description: "Unplayable. Ethereal.",
	}
}

func newSlimed() *Card {
	return &Card{
		ID:       CardSlimed,
		Name:     "Slimed",
		Type:     CardTypeStatus,
		Color:    ColorStatus,
		Rarity:   RaritySpecial,
		Cost:     1,
		Target:   TargetNone,
		Exhausts: true,
		Description: "Exhaust.",
		Effects: []PlayerEffect{{
			Name:        "Slimed",
			Resolve:     func(ctx EffectContext, target int, upgraded bool) {},
			ExhaustSelf: true,
		}},
	}
}

func newAscendersBane() *Card {
	return &Card{
		ID:          CardAscendersBane,
		Name:        "Ascender's Bane",
		Type:        CardTypeCurse,
		Color:       ColorCurse,
		Rarity:      RarityCurse,
		Cost:        -1,
		Target:      TargetNone,
		Ethereal:    true,
		Description: "Unplayable. Ethereal. Cannot be removed from your deck.",
	}
}
