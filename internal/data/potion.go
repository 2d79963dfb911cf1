package data

// PotionID is the closed identifier set for potions.
type PotionID int

const (
	PotionUnknown PotionID = iota
	PotionFire
	PotionBlock
	PotionStrength
	PotionFruitJuice
)

// PotionRarity drives PotionGenerator's combat_reward rarity roll, ported
// from lib/src/data's PotionRarity.
type PotionRarity int

const (
	PotionRarityCommon PotionRarity = iota
	PotionRarityUncommon
	PotionRarityRare
)

type Potion struct {
	ID          PotionID
	Name        string
	Rarity      PotionRarity
	Description string
	// Drink applies the potion's effect. target is ignored for
	// non-targeted potions.
	Drink func(ctx EffectContext, target int)
}

var PotionRegistry = map[PotionID]func() *Potion{
	PotionFire:       newFirePotion,
	PotionBlock:      newBlockPotion,
	PotionStrength:   newStrengthPotion,
	PotionFruitJuice: newFruitJuicePotion,
}

func LookupPotion(id PotionID) (*Potion, error) {
	ctor, ok := PotionRegistry[id]
	if !ok {
		return nil, NewUnimplementedError(KindPotion, "potion")
	}
	return ctor(), nil
}

func newFirePotion() *Potion {
	return &Potion{
		ID:          PotionFire,
		Name:        "Fire Potion",
		Rarity:      PotionRarityCommon,
		Description: "Deal 20 damage to target enemy.",
		Drink: func(ctx EffectContext, target int) {
			ctx.DealDamage(20, target)
		},
	}
}

func newBlockPotion() *Potion {
	return &Potion{
		ID:          PotionBlock,
		Name:        "Block Potion",
		Rarity:      PotionRarityCommon,
		Description: "Gain 12 Block.",
		Drink: func(ctx EffectContext, target int) {
			ctx.GainBlock(12)
		},
	}
}

func newStrengthPotion() *Potion {
	return &Potion{
		ID:          PotionStrength,
		Name:        "Strength Potion",
		Rarity:      PotionRarityUncommon,
		Description: "Gain 2 Strength for the rest of combat.",
		Drink: func(ctx EffectContext, target int) {
			ctx.ApplyConditionSelf(ConditionStrength, 2)
		},
	}
}

// newFruitJuicePotion is the engine's one Rare-tier potion, needed so
// PotionGenerator.CombatReward's rarity re-roll loop always terminates; the
// reference's own potion data file was not part of the retrieved pack (see
// the Character.PotionPool doc comment), so this borrows the Rare potion
// from the live game rather than inventing an effect. Its real effect is a
// permanent max-HP raise outside combat; EffectContext has no persistent-HP
// hook (combat-scoped only, like Akabeko's simplification), so Drink is
// approximated as an in-combat heal of the same magnitude.
func newFruitJuicePotion() *Potion {
	return &Potion{
		ID:          PotionFruitJuice,
		Name:        "Fruit Juice",
		Rarity:      PotionRarityRare,
		Description: "Permanently raise your maximum HP by 5.",
		Drink: func(ctx EffectContext, target int) {
			ctx.HealSelf(5)
		},
	}
}
