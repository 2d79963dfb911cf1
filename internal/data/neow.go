package data

// NeowBlessing, NeowBonus, and NeowPenalty are ported directly from
// lib/src/data/neow.rs, including the exact FIRST/SECOND/THIRD pool
// orderings the comment there credits to "gamerpuppy" as matching the
// game's actual RNG draw order — reordering these would desync the
// generator from every seed-based test vector downstream.
type NeowBlessing int

const (
	NeowChooseCard NeowBlessing = iota
	NeowChooseColorlessCard
	NeowComposite
	NeowGainOneHundredGold
	NeowIncreaseMaxHpByTenPercent
	NeowsLament
	NeowObtainRandomCommonRelic
	NeowObtainRandomRareCard
	NeowObtainThreeRandomPotions
	NeowRemoveCard
	NeowReplaceStarterRelic
	NeowTransformCard
	NeowUpgradeCard
)

type NeowBonus int

const (
	NeowBonusChooseRareCard NeowBonus = iota
	NeowBonusChooseRareColorlessCard
	NeowBonusGainTwoHundredFiftyGold
	NeowBonusIncreaseMaxHpByTwentyPercent
	NeowBonusObtainRandomRareRelic
	NeowBonusRemoveTwoCards
	NeowBonusTransformTwoCards
)

type NeowPenalty int

const (
	NeowPenaltyDecreaseMaxHpByTenPercent NeowPenalty = iota
	NeowPenaltyLoseAllGold
	NeowPenaltyObtainCurse
	NeowPenaltyTakeDamage
)

// FirstNeowPool is drawn from for the generator's first blessing choice.
var FirstNeowPool = []NeowBlessing{
	NeowChooseCard,
	NeowObtainRandomRareCard,
	NeowRemoveCard,
	NeowUpgradeCard,
	NeowTransformCard,
	NeowChooseColorlessCard,
}

// SecondNeowPool is drawn from for the generator's second blessing choice.
var SecondNeowPool = []NeowBlessing{
	NeowObtainThreeRandomPotions,
	NeowObtainRandomCommonRelic,
	NeowIncreaseMaxHpByTenPercent,
	NeowsLament,
	NeowGainOneHundredGold,
}

// NeowPenaltyBonuses pairs a penalty with its associated bonus pool, for the
// generator's third (composite) blessing choice.
type NeowPenaltyBonuses struct {
	Penalty NeowPenalty
	Bonuses []NeowBonus
}

var ThirdNeowPool = []NeowPenaltyBonuses{
	{NeowPenaltyDecreaseMaxHpByTenPercent, []NeowBonus{
		NeowBonusChooseRareColorlessCard, NeowBonusRemoveTwoCards,
		NeowBonusObtainRandomRareRelic, NeowBonusChooseRareCard,
		NeowBonusGainTwoHundredFiftyGold, NeowBonusTransformTwoCards,
	}},
	{NeowPenaltyLoseAllGold, []NeowBonus{
		NeowBonusChooseRareColorlessCard, NeowBonusRemoveTwoCards,
		NeowBonusObtainRandomRareRelic, NeowBonusChooseRareCard,
		NeowBonusTransformTwoCards, NeowBonusIncreaseMaxHpByTwentyPercent,
	}},
	{NeowPenaltyObtainCurse, []NeowBonus{
		NeowBonusChooseRareColorlessCard, NeowBonusObtainRandomRareRelic,
		NeowBonusChooseRareCard, NeowBonusGainTwoHundredFiftyGold,
		NeowBonusTransformTwoCards, NeowBonusIncreaseMaxHpByTwentyPercent,
	}},
	{NeowPenaltyTakeDamage, []NeowBonus{
		NeowBonusChooseRareColorlessCard, NeowBonusRemoveTwoCards,
		NeowBonusObtainRandomRareRelic, NeowBonusChooseRareCard,
		NeowBonusGainTwoHundredFiftyGold, NeowBonusTransformTwoCards,
		NeowBonusIncreaseMaxHpByTwentyPercent,
	}},
}

// Description renders a human-readable label, ported from neow.rs's Display
// impls (minus the Composite match arm, which the generator renders itself
// by combining a bonus and penalty description at the call site).
func (b NeowBlessing) Description() string {
	switch b {
	case NeowChooseCard:
		return "Choose one of 3 cards to obtain"
	case NeowChooseColorlessCard:
		return "Choose an uncommon colorless card to obtain"
	case NeowGainOneHundredGold:
		return "Receive 100 gold"
	case NeowIncreaseMaxHpByTenPercent:
		return "Increase max HP by 10%"
	case NeowsLament:
		return "Enemies in the next three combat rooms have 1 HP"
	case NeowObtainRandomCommonRelic:
		return "Obtain a random common relic"
	case NeowObtainRandomRareCard:
		return "Obtain a random rare card"
	case NeowObtainThreeRandomPotions:
		return "Obtain 3 random potions"
	case NeowRemoveCard:
		return "Remove a card"
	case NeowReplaceStarterRelic:
		return "Replace your starter relic with a random boss relic"
	case NeowTransformCard:
		return "Transform a card"
	case NeowUpgradeCard:
		return "Upgrade a card"
	default:
		return ""
	}
}

func (b NeowBonus) Description() string {
	switch b {
	case NeowBonusChooseRareCard:
		return "Choose a rare card to obtain"
	case NeowBonusChooseRareColorlessCard:
		return "Choose a rare colorless card to obtain"
	case NeowBonusGainTwoHundredFiftyGold:
		return "Receive 250 gold"
	case NeowBonusIncreaseMaxHpByTwentyPercent:
		return "Increase max HP by 20%"
	case NeowBonusObtainRandomRareRelic:
		return "Obtain a random rare relic"
	case NeowBonusRemoveTwoCards:
		return "Remove two cards"
	case NeowBonusTransformTwoCards:
		return "Transform two cards"
	default:
		return ""
	}
}

func (p NeowPenalty) Description() string {
	switch p {
	case NeowPenaltyDecreaseMaxHpByTenPercent:
		return "Decrease max HP by 10%"
	case NeowPenaltyLoseAllGold:
		return "Lose all gold"
	case NeowPenaltyObtainCurse:
		return "Obtain a curse"
	case NeowPenaltyTakeDamage:
		return "Take 30% of your max HP as damage"
	default:
		return ""
	}
}
