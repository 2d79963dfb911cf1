package proto

// Wire is the JSON-serializable mirror of StsMessage, following tcgx's
// net/protocol.go split between an internal sum type and a flat envelope
// struct meant for encoding (ServerMessage there; Wire here). Nothing outside
// this package's tests calls ToWire; internal/mcpbridge renders its tool
// results through textlog and its own toolResponse envelope instead.
type Wire struct {
	Type string `json:"type"`

	Notification *WireNotification `json:"notification,omitempty"`

	Prompt  string      `json:"prompt,omitempty"`
	Choices []WireChoice `json:"choices,omitempty"`

	Victory bool `json:"victory,omitempty"`
}

// WireNotification mirrors every Notification field except Victory, which
// has no counterpart here, using omitempty so a given notification's JSON
// only carries the fields its Kind populates.
type WireNotification struct {
	Kind string `json:"kind"`

	Map string `json:"map,omitempty"`

	Deck    []WireCard `json:"deck,omitempty"`
	Gold    int        `json:"gold,omitempty"`
	Potions []string   `json:"potions,omitempty"`
	Relics  []string   `json:"relics,omitempty"`

	Card        *WireCard `json:"card,omitempty"`
	RemovedCard *WireCard `json:"removed_card,omitempty"`

	Hand        []WireCard `json:"hand,omitempty"`
	DrawPile    []WireCard `json:"draw_pile,omitempty"`
	DiscardPile []WireCard `json:"discard_pile,omitempty"`
	ExhaustPile []WireCard `json:"exhaust_pile,omitempty"`

	EnemyParty []WireEnemy `json:"enemy_party,omitempty"`
	Enemy      *WireEnemy  `json:"enemy,omitempty"`

	HP            int             `json:"hp,omitempty"`
	HPMax         int             `json:"hp_max,omitempty"`
	Energy        int             `json:"energy,omitempty"`
	Block         int             `json:"block,omitempty"`
	BlockGained   int             `json:"block_gained,omitempty"`
	DamageBlocked int             `json:"damage_blocked,omitempty"`
	DamageTaken   int             `json:"damage_taken,omitempty"`
	Strength      int             `json:"strength,omitempty"`
	Dexterity     int             `json:"dexterity,omitempty"`
	Conditions    []WireCondition `json:"conditions,omitempty"`

	Shuffled bool `json:"shuffled,omitempty"`
}

type WireCard struct {
	Name     string `json:"name"`
	Cost     int    `json:"cost"`
	Upgraded bool   `json:"upgraded,omitempty"`
}

type WireCondition struct {
	Name   string `json:"name"`
	Stacks int    `json:"stacks"`
}

type WireEnemy struct {
	Slot       int             `json:"slot"`
	Name       string          `json:"name"`
	HP         int             `json:"hp"`
	HPMax      int             `json:"hp_max"`
	Block      int             `json:"block"`
	Intent     string          `json:"intent"`
	Conditions []WireCondition `json:"conditions,omitempty"`
}

// WireChoice mirrors a Choice as a flat, client-renderable struct — the
// label plus whatever index fields a client would need to echo back.
type WireChoice struct {
	Index       int    `json:"index"`
	Description string `json:"description"`
}

func cardToWire(c CardView) WireCard {
	return WireCard{Name: c.Name, Cost: c.Cost, Upgraded: c.Upgraded}
}

func cardsToWire(cs []CardView) []WireCard {
	if cs == nil {
		return nil
	}
	out := make([]WireCard, len(cs))
	for i, c := range cs {
		out[i] = cardToWire(c)
	}
	return out
}

func conditionsToWire(cs []ConditionView) []WireCondition {
	if cs == nil {
		return nil
	}
	out := make([]WireCondition, len(cs))
	for i, c := range cs {
		out[i] = WireCondition{Name: c.Name, Stacks: c.Stacks}
	}
	return out
}

func enemyToWire(e EnemyView) WireEnemy {
	return WireEnemy{
		Slot: e.Slot, Name: e.Name, HP: e.HP, HPMax: e.HPMax,
		Block: e.Block, Intent: e.Intent, Conditions: conditionsToWire(e.Conditions),
	}
}

func enemiesToWire(es []EnemyView) []WireEnemy {
	if es == nil {
		return nil
	}
	out := make([]WireEnemy, len(es))
	for i, e := range es {
		out[i] = enemyToWire(e)
	}
	return out
}

// NotificationToWire converts the internal Notification into its JSON
// mirror.
func NotificationToWire(n Notification) WireNotification {
	w := WireNotification{
		Kind: string(n.Kind), Map: n.Map, Deck: cardsToWire(n.Deck),
		Gold: n.Gold, Potions: n.Potions, Relics: n.Relics,
		Hand: cardsToWire(n.Hand), DrawPile: cardsToWire(n.DrawPile),
		DiscardPile: cardsToWire(n.DiscardPile), ExhaustPile: cardsToWire(n.ExhaustPile),
		EnemyParty: enemiesToWire(n.EnemyParty),
		HP: n.HP, HPMax: n.HPMax, Energy: n.Energy, Block: n.Block,
		BlockGained: n.BlockGained, DamageBlocked: n.DamageBlocked, DamageTaken: n.DamageTaken,
		Strength: n.Strength, Dexterity: n.Dexterity, Conditions: conditionsToWire(n.Conditions),
		Shuffled: n.Shuffled,
	}
	if n.Card.Name != "" {
		c := cardToWire(n.Card)
		w.Card = &c
	}
	if n.RemovedCard.Name != "" {
		c := cardToWire(n.RemovedCard)
		w.RemovedCard = &c
	}
	if n.Enemy.Name != "" {
		e := enemyToWire(n.Enemy)
		w.Enemy = &e
	}
	return w
}

// ToWire converts an StsMessage into its JSON-serializable envelope.
func ToWire(msg StsMessage) Wire {
	switch m := msg.(type) {
	case NotificationMessage:
		w := NotificationToWire(m.Notification)
		return Wire{Type: "notification", Notification: &w}
	case ChoicesMessage:
		choices := make([]WireChoice, len(m.Choices))
		for i, c := range m.Choices {
			choices[i] = WireChoice{Index: i, Description: c.Describe()}
		}
		return Wire{Type: "choices", Prompt: m.Prompt.String(), Choices: choices}
	case GameOverMessage:
		return Wire{Type: "game_over", Victory: m.Victory}
	default:
		return Wire{Type: "unknown"}
	}
}
