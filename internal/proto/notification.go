package proto

// NotificationKind tags which of spec.md §6's Notification payloads this
// instance carries. Modeled as a single struct with a kind tag and optional
// fields rather than one-struct-per-kind (unlike Choice/StsMessage above)
// because the reference's Notification carries dozens of loosely related
// state-update payloads and tcgx's own ServerMessage/EventView follow the
// same single-struct-with-omitempty-fields shape for the same reason: a
// notification stream is consumed positionally by a renderer, not matched
// exhaustively by a type switch the way a Choice is.
type NotificationKind string

const (
	NotifyMapRendered        NotificationKind = "map_rendered"
	NotifyDeckChanged        NotificationKind = "deck_changed"
	NotifyGoldChanged        NotificationKind = "gold_changed"
	NotifyPotionsChanged     NotificationKind = "potions_changed"
	NotifyRelicsChanged      NotificationKind = "relics_changed"
	NotifyCardObtained       NotificationKind = "card_obtained"
	NotifyCardRemoved        NotificationKind = "card_removed"
	NotifyCardUpgraded       NotificationKind = "card_upgraded"
	NotifyCombatStarted      NotificationKind = "combat_started"
	NotifyCombatEnded        NotificationKind = "combat_ended"
	NotifyHandChanged        NotificationKind = "hand_changed"
	NotifyDrawPileChanged    NotificationKind = "draw_pile_changed"
	NotifyDiscardPileChanged NotificationKind = "discard_pile_changed"
	NotifyExhaustPileChanged NotificationKind = "exhaust_pile_changed"
	NotifyEnemyPartyChanged  NotificationKind = "enemy_party_changed"
	NotifyEnemyStatusChanged NotificationKind = "enemy_status_changed"
	NotifyEnemyDied          NotificationKind = "enemy_died"
	NotifyHPChanged          NotificationKind = "hp_changed"
	NotifyEnergyChanged      NotificationKind = "energy_changed"
	NotifyBlockChanged       NotificationKind = "block_changed"
	NotifyBlockGained        NotificationKind = "block_gained"
	NotifyDamageBlocked      NotificationKind = "damage_blocked"
	NotifyDamageTaken        NotificationKind = "damage_taken"
	NotifyStrengthChanged    NotificationKind = "strength_changed"
	NotifyDexterityChanged   NotificationKind = "dexterity_changed"
	NotifyConditionsChanged  NotificationKind = "conditions_changed"
	NotifyShuffleOccurred    NotificationKind = "shuffle_occurred"
)

// CardView is a sanitised, reportable snapshot of a card instance — just
// enough to render or log it, never a pointer into live combat state.
type CardView struct {
	Name     string
	Cost     int
	Upgraded bool
}

// ConditionView is a sanitised snapshot of one stack entry on a combatant.
type ConditionView struct {
	Name   string
	Stacks int
}

// EnemyView is a sanitised snapshot of one enemy slot.
type EnemyView struct {
	Slot       int
	Name       string
	HP         int
	HPMax      int
	Block      int
	Intent     string
	Conditions []ConditionView
}

// Notification is the engine's single state-update payload type. Every
// field besides Kind is optional; which are populated depends on Kind, the
// same convention tcgx's ServerMessage/EventView use for their envelope
// structs.
type Notification struct {
	Kind NotificationKind

	// Map rendering (§6 map string format).
	Map string

	// Persistent-state updates.
	Deck    []CardView
	Gold    int
	Potions []string // one entry per potion slot; "" marks an empty slot
	Relics  []string

	// Card/relic acquisition and mutation.
	Card        CardView
	RemovedCard CardView

	// Combat lifecycle.
	Victory bool

	// Pile snapshots (sanitised: draw & exhaust sorted by stable deck index
	// per spec §6 before emission — internal/combat is responsible for that
	// sort; this view only carries the already-sorted result).
	Hand         []CardView
	DrawPile     []CardView
	DiscardPile  []CardView
	ExhaustPile  []CardView

	// Enemy party / per-enemy updates.
	EnemyParty []EnemyView
	Enemy      EnemyView

	// Player resource deltas.
	HP            int
	HPMax         int
	Energy        int
	Block         int
	BlockGained   int
	DamageBlocked int
	DamageTaken   int
	Strength      int
	Dexterity     int
	Conditions    []ConditionView

	Shuffled bool
}
