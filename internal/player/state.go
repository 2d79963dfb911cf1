package player

import "github.com/nkessler/spireengine/internal/data"

// PotionSlotCount is the fixed potion-slot array length spec.md §3 requires
// ("fixed-length (≥3) potion-slot array"); the reference starts every run
// at 3 slots and never changes the count in this engine's scope.
const PotionSlotCount = 3

// PersistentState is spec.md §3's PlayerPersistentState: everything that
// survives between combats, created once at run start from the chosen
// data.Character and mutated by every non-combat transition (shop
// purchases, rest sites, card rewards, curses). Named PersistentState rather
// than PlayerPersistentState because it already lives in package player.
type PersistentState struct {
	Character *data.Character

	HP    int
	HPMax int
	Gold  int

	Relics []data.RelicID
	Deck   []DeckCard

	// Potions is the fixed-length potion-slot array; a nil entry is an
	// empty slot (Go's equivalent of the reference's Option<Potion>).
	Potions [PotionSlotCount]*data.PotionID
}

// DeckCard is one card in the persistent deck: an ID plus whether this
// specific copy has been upgraded, since upgrades attach to a deck slot, not
// to the CardID itself.
type DeckCard struct {
	ID       data.CardID
	Upgraded bool
}

// NewPersistentState builds the starting state for a fresh run from a
// character's static starting HP, relic, and deck, per spec.md §3's
// lifecycle note ("created at run start from the chosen Character").
func NewPersistentState(character *data.Character) *PersistentState {
	deck := make([]DeckCard, len(character.StartingDeck))
	for i, id := range character.StartingDeck {
		deck[i] = DeckCard{ID: id}
	}
	return &PersistentState{
		Character: character,
		HP:        character.StartHP,
		HPMax:     character.StartHP,
		Gold:      99,
		Relics:    []data.RelicID{character.StartingRelic},
		Deck:      deck,
	}
}

// HasRelic reports whether the given relic is currently owned.
func (s *PersistentState) HasRelic(id data.RelicID) bool {
	for _, r := range s.Relics {
		if r == id {
			return true
		}
	}
	return false
}

// AddRelic appends a newly obtained relic in acquisition order.
func (s *PersistentState) AddRelic(id data.RelicID) {
	s.Relics = append(s.Relics, id)
}

// RemoveRelic drops the first occurrence of the given relic (Neow's
// ReplaceStarterRelic swapping out the starting relic).
func (s *PersistentState) RemoveRelic(id data.RelicID) {
	for i, r := range s.Relics {
		if r == id {
			s.Relics = append(s.Relics[:i], s.Relics[i+1:]...)
			return
		}
	}
}

// AddCard appends a newly obtained card to the persistent deck.
func (s *PersistentState) AddCard(id data.CardID, upgraded bool) {
	s.Deck = append(s.Deck, DeckCard{ID: id, Upgraded: upgraded})
}

// RemoveCardAt removes the deck card at the given index (RemoveCard prompt
// outcome, e.g. a Shrine choice).
func (s *PersistentState) RemoveCardAt(i int) {
	if i < 0 || i >= len(s.Deck) {
		return
	}
	s.Deck = append(s.Deck[:i], s.Deck[i+1:]...)
}

// UpgradeCardAt marks the deck card at the given index as upgraded.
func (s *PersistentState) UpgradeCardAt(i int) {
	if i < 0 || i >= len(s.Deck) {
		return
	}
	s.Deck[i].Upgraded = true
}

// EmptyPotionSlot returns the index of the first empty potion slot, or -1 if
// full.
func (s *PersistentState) EmptyPotionSlot() int {
	for i, p := range s.Potions {
		if p == nil {
			return i
		}
	}
	return -1
}

// AddPotion places a potion in the first empty slot; reports false if full.
func (s *PersistentState) AddPotion(id data.PotionID) bool {
	i := s.EmptyPotionSlot()
	if i < 0 {
		return false
	}
	s.Potions[i] = &id
	return true
}

// ClearPotionSlot empties a slot (used after Drink or Discard).
func (s *PersistentState) ClearPotionSlot(i int) {
	if i < 0 || i >= PotionSlotCount {
		return
	}
	s.Potions[i] = nil
}

// IsAlive reports whether this persistent state still represents a living
// run (spec invariant — HP reaching 0 ends the run).
func (s *PersistentState) IsAlive() bool {
	return s.HP > 0
}

// CombatState is spec.md §3's PlayerCombatState: created when a combat room
// starts and destroyed at combat end, referencing the persistent state it
// was spawned from (strength/dexterity/conditions/energy/block never
// survive past the combat they were gained in, except through whatever
// effect on Persistent they triggered along the way — e.g. a curse added to
// the deck).
type CombatState struct {
	Persistent *PersistentState

	Energy int
	Block  int

	Conditions ConditionList
	Piles      CardPiles

	Strength  int
	Dexterity int

	// HPLossCount tracks how many times the player has lost HP this combat,
	// feeding cards costed ThreeMinusHpLossCount/FourMinusHpLossCount.
	HPLossCount int

	// PlayingHandIndex is the hand index of the card currently resolving,
	// or -1 when no card is mid-resolution; used by effects (Clash's "hand
	// must be all Attacks" style gating, Exhume-style "exhaust the card just
	// played") that need to know which hand slot is in flight.
	PlayingHandIndex int

	// RetainBlockNextTurn mirrors a Barricade-style modifier: when true,
	// the next end-of-turn block reset is skipped once, then cleared.
	RetainBlockNextTurn bool
}

// NewCombatState builds a fresh PlayerCombatState referencing the given
// persistent state, with an empty hand/draw/discard/exhaust bundle the
// combat's setup step (internal/combat) is responsible for populating from
// the persistent deck.
func NewCombatState(persistent *PersistentState) *CombatState {
	return &CombatState{
		Persistent:       persistent,
		PlayingHandIndex: -1,
	}
}

// GainBlock adds block, respecting Frail's ×0.75 floor per spec §4.4.2's
// block-calculation rule (this helper applies the dexterity/frail math; the
// combat damage calculator applies the same rule for incoming block from
// other sources via the same formula, duplicated there rather than shared
// since the two call sites take different raw inputs).
func (c *CombatState) GainBlock(amount int) {
	total := amount + c.Dexterity
	if total < 0 {
		total = 0
	}
	if c.Conditions.StacksOf(data.ConditionFrail) > 0 {
		total = (total * 3) / 4
	}
	c.Block += total
}

// LoseBlock consumes up to `amount` block, returning the unabsorbed
// remainder.
func (c *CombatState) LoseBlock(amount int) int {
	if amount <= c.Block {
		c.Block -= amount
		return 0
	}
	remainder := amount - c.Block
	c.Block = 0
	return remainder
}

// ResetTurnState zeroes block (unless retained) and clears the
// currently-playing marker, per spec invariant 5 and §4.4 PlayerTurnStart.
func (c *CombatState) ResetTurnState() {
	if c.RetainBlockNextTurn {
		c.RetainBlockNextTurn = false
	} else {
		c.Block = 0
	}
	c.PlayingHandIndex = -1
}
