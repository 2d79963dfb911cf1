package data

import (
	"fmt"
	"strings"
)

// CharacterID is the closed identifier set for playable characters.
type CharacterID int

const (
	CharacterUnknown CharacterID = iota
	CharacterIronclad
	CharacterSilent
	CharacterDefect
	CharacterWatcher
)

// ParseCharacter resolves the reference's single-letter prefix convention
// ((I)ronclad, (S)ilent, (D)efect, (W)atcher), ported from
// sim/src/data/character.rs's TryFrom<&str>.
func ParseCharacter(s string) (CharacterID, error) {
	if s == "" {
		return CharacterUnknown, fmt.Errorf("data: character name must not be empty")
	}
	switch strings.ToLower(s)[0] {
	case 'i':
		return CharacterIronclad, nil
	case 's':
		return CharacterSilent, nil
	case 'd':
		return CharacterDefect, nil
	case 'w':
		return CharacterWatcher, nil
	default:
		return CharacterUnknown, fmt.Errorf("data: character options are (I)ronclad, (S)ilent, (D)efect, and (W)atcher")
	}
}

// Character is the static description of a playable character's starting
// conditions and card pools, grounded on sim/src/data/character.rs.
type Character struct {
	ID            CharacterID
	Name          string
	StartHP       int
	StartingRelic RelicID
	StartingDeck  []CardID
	CommonPool    []CardID
	UncommonPool  []CardID
	RarePool      []CardID

	// Relic and potion pools feed RelicGenerator and PotionGenerator,
	// ported from lib/src/rng/relic.rs and
	// lib/src/systems/rng/potion_generator.rs.
	CommonRelicPool   []RelicID
	UncommonRelicPool []RelicID
	RareRelicPool     []RelicID
	BossRelicPool     []RelicID
	PotionPool        []PotionID
}

var characters = map[CharacterID]*Character{
	CharacterIronclad: {
		ID:            CharacterIronclad,
		Name:          "Ironclad",
		StartHP:       80,
		StartingRelic: RelicBurningBlood,
		StartingDeck: []CardID{
			CardStrike, CardStrike, CardStrike, CardStrike, CardStrike,
			CardDefend, CardDefend, CardDefend, CardDefend,
			CardBash,
		},
		CommonPool: []CardID{
			CardClothesline, CardThunderclap, CardAnger,
			CardIronWave, CardHeadbutt, CardPommelStrike, CardTwinStrike,
			CardCleave, CardClash, CardHavoc, CardShrugItOff,
		},
		UncommonPool: []CardID{
			CardBloodForBlood, CardIntimidate, CardArmaments, CardSeeingRed,
			CardWhirlwind, CardUppercut, CardRupture, CardCombust,
		},
		RarePool: []CardID{CardHeavyBlade, CardReaper, CardDemonForm, CardFeed},

		// Relic pools are thin relative to the reference's full roster
		// (see DESIGN.md's content-table scope decision); the rare pool is
		// left empty deliberately, so RelicGenerator.RareRelic falls
		// straight through to the Circlet sentinel as it does once the
		// reference's own pool runs dry.
		CommonRelicPool:   []RelicID{RelicAkabeko, RelicBagOfMarbles},
		UncommonRelicPool: []RelicID{RelicOrichalcum},
		RareRelicPool:     nil,
		BossRelicPool:     []RelicID{RelicSneckoEye, RelicRunicDome},
		PotionPool:        []PotionID{PotionFire, PotionBlock, PotionStrength, PotionFruitJuice},
	},
}

// LookupCharacter returns the static Character for an ID. Silent, Defect,
// and Watcher are named in the ID enum (matching sim/src/data/character.rs's
// four-character roster) but have no card pool or starting deck wired up in
// this engine's content-table scope, so they surface an UnimplementedError
// rather than a zero-value Character.
func LookupCharacter(id CharacterID) (*Character, error) {
	c, ok := characters[id]
	if !ok {
		return nil, NewUnimplementedError(KindCard, "character")
	}
	return c, nil
}
