// Package proto defines the engine↔client message channel: the tagged
// unions spec.md §6 calls StsMessage/Notification/Prompt/Choice, and the
// Controller interface the combat and run loops use to emit notifications
// and block on a choice. Grounded on the teacher's
// game.PlayerController{ChooseAction,ChooseCards,ChooseYesNo,Notify}
// interface in internal/game/duel.go, generalized from tcgx's per-purpose
// methods into one PromptChoice method parameterised by Prompt, since the
// spec's single "Choices(Prompt, [Choice])" message covers every decision
// point tcgx splits across three methods.
package proto

// StsMessage is the engine→client message envelope: a Go sum type rendered
// as a marker-interface union (the idiomatic Go equivalent of the
// reference's Rust enum), analogous to tcgx's single ServerMessage struct
// but split into one type per variant here since the three variants carry
// disjoint payloads with no natural shared field set.
type StsMessage interface {
	isStsMessage()
}

// NotificationMessage carries one state-update notification.
type NotificationMessage struct {
	Notification Notification
}

func (NotificationMessage) isStsMessage() {}

// ChoicesMessage is a decision point: the client must reply on the
// client→engine channel with an index into Choices.
type ChoicesMessage struct {
	Prompt  Prompt
	Choices []Choice
}

func (ChoicesMessage) isStsMessage() {}

// GameOverMessage ends the message stream; Victory is true on a win.
type GameOverMessage struct {
	Victory bool
}

func (GameOverMessage) isStsMessage() {}

// Prompt names the kind of decision a ChoicesMessage is asking for, per
// spec.md §6's enumerated Prompt variants.
type Prompt int

const (
	PromptUnknown Prompt = iota
	PromptChooseNeow
	PromptChooseOne
	PromptChooseNext
	PromptChooseCombatReward
	PromptChooseForEvent
	PromptChooseRestSiteAction
	PromptCombatAction
	PromptClimbFloor
	PromptClimbFloorHasPotion
	PromptRemoveCard
	PromptUpgradeCard
	PromptTargetEnemy
)

func (p Prompt) String() string {
	switch p {
	case PromptChooseNeow:
		return "ChooseNeow"
	case PromptChooseOne:
		return "ChooseOne"
	case PromptChooseNext:
		return "ChooseNext"
	case PromptChooseCombatReward:
		return "ChooseCombatReward"
	case PromptChooseForEvent:
		return "ChooseForEvent"
	case PromptChooseRestSiteAction:
		return "ChooseRestSiteAction"
	case PromptCombatAction:
		return "CombatAction"
	case PromptClimbFloor:
		return "ClimbFloor"
	case PromptClimbFloorHasPotion:
		return "ClimbFloorHasPotion"
	case PromptRemoveCard:
		return "RemoveCard"
	case PromptUpgradeCard:
		return "UpgradeCard"
	case PromptTargetEnemy:
		return "TargetEnemy"
	default:
		return "Unknown"
	}
}

// Choice is a Go sum type over spec.md §6's non-exhaustive Choice variant
// list: one struct per variant, a marker method joining them, mirroring
// StsMessage's union rendering above.
type Choice interface {
	isChoice()
	// Describe renders a short human-readable label, the one piece of
	// behavior every variant needs (the TTY client in cmd/stsim lists
	// choices by this string; tcgx's ActionView.Desc plays the same role).
	Describe() string
}

type ClimbFloorChoice struct{ Column int }

func (ClimbFloorChoice) isChoice()          {}
func (c ClimbFloorChoice) Describe() string { return "Climb to column" }

type NeowBlessingChoice struct {
	Index int
	Label string
}

func (NeowBlessingChoice) isChoice()          {}
func (c NeowBlessingChoice) Describe() string { return c.Label }

type ObtainCardChoice struct {
	RewardIndex int
	Card        CardView
}

func (ObtainCardChoice) isChoice()          {}
func (c ObtainCardChoice) Describe() string { return "Obtain " + c.Card.Name }

type ObtainGoldChoice struct{ Amount int }

func (ObtainGoldChoice) isChoice()          {}
func (c ObtainGoldChoice) Describe() string { return "Obtain gold" }

type ObtainPotionChoice struct{ Potion string }

func (ObtainPotionChoice) isChoice()          {}
func (c ObtainPotionChoice) Describe() string { return "Obtain " + c.Potion }

type PlayCardChoice struct {
	HandIndex int
	Card      CardView
	Cost      int
}

func (PlayCardChoice) isChoice()          {}
func (c PlayCardChoice) Describe() string { return "Play " + c.Card.Name }

type TargetEnemyChoice struct {
	Slot  int
	Enemy EnemyView
}

func (TargetEnemyChoice) isChoice()          {}
func (c TargetEnemyChoice) Describe() string { return "Target " + c.Enemy.Name }

// PotionAction distinguishes drinking a potion from discarding it.
type PotionAction int

const (
	PotionActionDrink PotionAction = iota
	PotionActionDiscard
)

type ExpendPotionChoice struct {
	Action PotionAction
	Slot   int
	Potion string
}

func (ExpendPotionChoice) isChoice() {}
func (c ExpendPotionChoice) Describe() string {
	if c.Action == PotionActionDrink {
		return "Drink " + c.Potion
	}
	return "Discard " + c.Potion
}

type RemoveCardChoice struct {
	DeckIndex int
	Card      CardView
}

func (RemoveCardChoice) isChoice()          {}
func (c RemoveCardChoice) Describe() string { return "Remove " + c.Card.Name }

type UpgradeCardChoice struct {
	DeckIndex int
	Card      CardView
}

func (UpgradeCardChoice) isChoice()          {}
func (c UpgradeCardChoice) Describe() string { return "Upgrade " + c.Card.Name }

type RestChoice struct{}

func (RestChoice) isChoice()          {}
func (RestChoice) Describe() string   { return "Rest" }

type SmithChoice struct{}

func (SmithChoice) isChoice()        {}
func (SmithChoice) Describe() string { return "Smith" }

type SkipChoice struct{}

func (SkipChoice) isChoice()        {}
func (SkipChoice) Describe() string { return "Skip" }

type EndTurnChoice struct{}

func (EndTurnChoice) isChoice()        {}
func (EndTurnChoice) Describe() string { return "End Turn" }

type EventChoice struct {
	ID   string
	Text string
}

func (EventChoice) isChoice()          {}
func (c EventChoice) Describe() string { return c.Text }
