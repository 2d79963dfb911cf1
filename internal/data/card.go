package data

import "fmt"

// CardID is the closed identifier set for every card the engine knows how
// to construct. Unknown names encountered in scenario files or content
// tables not listed in the registry surface as UnimplementedError rather
// than a zero-value Card.
type CardID int

const (
	CardUnknown CardID = iota
	CardStrike
	CardDefend
	CardBash
	CardAnger
	CardClothesline
	CardBloodForBlood
	CardIntimidate
	CardThunderclap
	CardHeavyBlade
	CardArmaments
	CardSeeingRed
	CardClumsy
	CardParasite
	CardDecay
	CardWound
	CardDazed
	CardSlimed
	CardAscendersBane
	CardBandageUp
	CardTrip
	CardIronWave
	CardHeadbutt
	CardPommelStrike
	CardTwinStrike
	CardCleave
	CardClash
	CardHavoc
	CardShrugItOff
	CardWhirlwind
	CardUppercut
	CardRupture
	CardCombust
	CardReaper
	CardDemonForm
	CardFeed
)

// Card is the static, immutable description of a card. Per-instance combat
// state (which pile it's in, whether it's upgraded this run) lives in
// internal/combat/internal/player, not here — exactly as the teacher splits
// Card (static) from CardInstance (runtime) in internal/game/types.go.
type Card struct {
	ID          CardID
	Name        string
	Type        CardType
	Color       Color
	Rarity      Rarity
	Cost        int // -1 on unplayable curse/status cards; no card here has an X cost
	// UpgradedCost overrides Cost when the card is upgraded. nil means the
	// cost is unchanged by upgrading, which is true for most cards.
	UpgradedCost *int
	Target      TargetMode
	Exhausts    bool
	Innate      bool
	Description string
	Effects     []PlayerEffect
	// UpgradedEffects, when non-nil, replaces Effects when the card is
	// played in its upgraded form. A nil slice means upgrading only changes
	// numeric fields baked into the same closures via the `upgraded` flag
	// threaded through PlayerEffect.Resolve.
	UpgradedEffects []PlayerEffect

	// Retain keeps a card in hand across the end-of-turn discard (§4.4.4).
	Retain bool
	// Ethereal cards exhaust instead of discarding at end of turn if still
	// in hand, even when Retain is also set.
	Ethereal bool

	// OnDraw fires when this card is drawn into hand (§3's CardCombatState:
	// "optional on_draw ... effect"). No card in this engine's
	// content-table scope currently sets it, but internal/combat/draw.go
	// calls it unconditionally when non-nil, so it is a live hook, not dead
	// weight.
	OnDraw *PlayerEffect
	// OnLinger fires when this card leaves the hand at end of turn, before
	// the discard/exhaust/retain decision is applied (§4.4.4). Same
	// forward-compatible-hook status as OnDraw.
	OnLinger *PlayerEffect
}

// EffectiveCost returns the card's energy cost given whether it is
// currently upgraded.
func (c *Card) EffectiveCost(upgraded bool) int {
	if upgraded && c.UpgradedCost != nil {
		return *c.UpgradedCost
	}
	return c.Cost
}

func intPtr(n int) *int { return &n }

// CardRegistry maps every known card ID to a constructor function, following
// the teacher's registry.go map[string]func() *Card pattern but keyed by a
// closed enum instead of a free-form string so unknown content fails at the
// call site with an explicit error instead of a registry-miss panic.
var CardRegistry = map[CardID]func() *Card{
	CardStrike:        newStrike,
	CardDefend:        newDefend,
	CardBash:          newBash,
	CardAnger:         newAnger,
	CardClothesline:   newClothesline,
	CardBloodForBlood: newBloodForBlood,
	CardIntimidate:    newIntimidate,
	CardThunderclap:   newThunderclap,
	CardHeavyBlade:    newHeavyBlade,
	CardArmaments:     newArmaments,
	CardSeeingRed:     newSeeingRed,
	CardClumsy:        newClumsy,
	CardParasite:      newParasite,
	CardDecay:         newDecay,
	CardWound:         newWound,
	CardDazed:         newDazed,
	CardSlimed:        newSlimed,
	CardAscendersBane: newAscendersBane,
	CardBandageUp:     newBandageUp,
	CardTrip:          newTrip,
	CardIronWave:      newIronWave,
	CardHeadbutt:      newHeadbutt,
	CardPommelStrike:  newPommelStrike,
	CardTwinStrike:    newTwinStrike,
	CardCleave:        newCleave,
	CardClash:         newClash,
	CardHavoc:         newHavoc,
	CardShrugItOff:    newShrugItOff,
	CardWhirlwind:     newWhirlwind,
	CardUppercut:      newUppercut,
	CardRupture:       newRupture,
	CardCombust:       newCombust,
	CardReaper:        newReaper,
	CardDemonForm:     newDemonForm,
	CardFeed:          newFeed,
}

// LookupCard constructs a fresh Card by ID, or returns an UnimplementedError
// for any CardID with no registry entry.
func LookupCard(id CardID) (*Card, error) {
	ctor, ok := CardRegistry[id]
	if !ok {
		return nil, NewUnimplementedError(KindCard, cardName(id))
	}
	return ctor(), nil
}

func cardName(id CardID) string {
	c, ok := CardRegistry[id]
	if !ok {
		return fmt.Sprintf("card#%d", id)
	}
	return c().Name
}
