// Package textlog renders the engine's proto.Notification stream as
// human-readable lines and keeps them for later inspection, grounded on the
// teacher's internal/log package (EventLogger/MemoryLogger/TextLogger,
// FormatEvent/FormatAll), generalized from tcgx's two-player GameEvent
// (Turn/Phase/Player-tagged) to this engine's flatter, kind-tagged
// Notification.
package textlog

import (
	"fmt"
	"io"
	"strings"

	"github.com/nkessler/spireengine/internal/proto"
)

// Logger is the interface every notification sink implements.
type Logger interface {
	Log(n proto.Notification)
	Notifications() []proto.Notification
}

// MemoryLogger stores notifications in memory, for test assertions and for
// the MCP bridge's event-draining protocol.
type MemoryLogger struct {
	notifications []proto.Notification
}

func NewMemoryLogger() *MemoryLogger {
	return &MemoryLogger{}
}

func (l *MemoryLogger) Log(n proto.Notification) {
	l.notifications = append(l.notifications, n)
}

func (l *MemoryLogger) Notifications() []proto.Notification {
	return l.notifications
}

// NotificationsOfKind returns every stored notification matching kind.
func (l *MemoryLogger) NotificationsOfKind(kind proto.NotificationKind) []proto.Notification {
	var out []proto.Notification
	for _, n := range l.notifications {
		if n.Kind == kind {
			out = append(out, n)
		}
	}
	return out
}

// Last returns the most recently logged notification, or a zero value if
// none have been logged yet.
func (l *MemoryLogger) Last() proto.Notification {
	if len(l.notifications) == 0 {
		return proto.Notification{}
	}
	return l.notifications[len(l.notifications)-1]
}

// Drain returns every stored notification and clears the buffer, the
// draining-event-log protocol the MCP bridge's tool responses use.
func (l *MemoryLogger) Drain() []proto.Notification {
	out := l.notifications
	l.notifications = nil
	return out
}

// TextLogger writes a formatted line per notification to w, in addition to
// keeping the MemoryLogger's in-memory record.
type TextLogger struct {
	MemoryLogger
	w io.Writer
}

func NewTextLogger(w io.Writer) *TextLogger {
	return &TextLogger{w: w}
}

func (l *TextLogger) Log(n proto.Notification) {
	l.MemoryLogger.Log(n)
	fmt.Fprintln(l.w, FormatNotification(n))
}

// FormatNotification renders a single notification as one human-readable
// line, covering the kinds a player-facing transcript most needs; any kind
// without a dedicated case still renders as its bracketed tag rather than
// being dropped silently.
func FormatNotification(n proto.Notification) string {
	switch n.Kind {
	case proto.NotifyMapRendered:
		return "Map:\n" + n.Map
	case proto.NotifyDeckChanged:
		return "Deck: " + joinCardViews(n.Deck)
	case proto.NotifyGoldChanged:
		return fmt.Sprintf("Gold: %d", n.Gold)
	case proto.NotifyPotionsChanged:
		return "Potions: " + joinPotionSlots(n.Potions)
	case proto.NotifyRelicsChanged:
		return "Relics: " + strings.Join(n.Relics, ", ")
	case proto.NotifyCardObtained:
		return "Obtained " + cardLabel(n.Card)
	case proto.NotifyCardRemoved:
		return "Removed " + cardLabel(n.RemovedCard)
	case proto.NotifyCardUpgraded:
		return "Upgraded " + cardLabel(n.Card)
	case proto.NotifyCombatStarted:
		return fmt.Sprintf("Combat started — HP %d/%d vs %s", n.HP, n.HPMax, joinEnemyViews(n.EnemyParty))
	case proto.NotifyCombatEnded:
		if n.Victory {
			return "Combat ended — victory"
		}
		return "Combat ended — defeat"
	case proto.NotifyHandChanged:
		return "Hand: " + joinCardViews(n.Hand)
	case proto.NotifyDrawPileChanged:
		return fmt.Sprintf("Draw pile: %d cards", len(n.DrawPile))
	case proto.NotifyDiscardPileChanged:
		return fmt.Sprintf("Discard pile: %d cards", len(n.DiscardPile))
	case proto.NotifyExhaustPileChanged:
		return fmt.Sprintf("Exhaust pile: %d cards", len(n.ExhaustPile))
	case proto.NotifyEnemyPartyChanged:
		return "Enemies: " + joinEnemyViews(n.EnemyParty)
	case proto.NotifyEnemyStatusChanged:
		return "Enemy status: " + enemyLabel(n.Enemy)
	case proto.NotifyEnemyDied:
		return n.Enemy.Name + " dies"
	case proto.NotifyHPChanged:
		return fmt.Sprintf("HP: %d/%d", n.HP, n.HPMax)
	case proto.NotifyEnergyChanged:
		return fmt.Sprintf("Energy: %d", n.Energy)
	case proto.NotifyBlockChanged:
		return fmt.Sprintf("Block: %d", n.Block)
	case proto.NotifyBlockGained:
		return fmt.Sprintf("Gained %d block", n.BlockGained)
	case proto.NotifyDamageBlocked:
		return fmt.Sprintf("Blocked %d damage", n.DamageBlocked)
	case proto.NotifyDamageTaken:
		return fmt.Sprintf("Took %d damage", n.DamageTaken)
	case proto.NotifyStrengthChanged:
		return fmt.Sprintf("Strength: %d", n.Strength)
	case proto.NotifyDexterityChanged:
		return fmt.Sprintf("Dexterity: %d", n.Dexterity)
	case proto.NotifyConditionsChanged:
		return "Conditions: " + joinConditionViews(n.Conditions)
	case proto.NotifyShuffleOccurred:
		return "Shuffled discard pile into draw pile"
	default:
		return fmt.Sprintf("[%s]", n.Kind)
	}
}

// FormatAll formats every notification in the slice as one line per entry.
func FormatAll(ns []proto.Notification) string {
	var sb strings.Builder
	for _, n := range ns {
		sb.WriteString(FormatNotification(n))
		sb.WriteByte('\n')
	}
	return sb.String()
}

func cardLabel(c proto.CardView) string {
	if c.Upgraded {
		return c.Name + "+"
	}
	return c.Name
}

func joinCardViews(cards []proto.CardView) string {
	names := make([]string, len(cards))
	for i, c := range cards {
		names[i] = cardLabel(c)
	}
	return strings.Join(names, ", ")
}

func joinPotionSlots(slots []string) string {
	labels := make([]string, len(slots))
	for i, s := range slots {
		if s == "" {
			labels[i] = "(empty)"
		} else {
			labels[i] = s
		}
	}
	return strings.Join(labels, ", ")
}

func enemyLabel(e proto.EnemyView) string {
	return fmt.Sprintf("%s (HP %d/%d, Block %d, Intent: %s)", e.Name, e.HP, e.HPMax, e.Block, e.Intent)
}

func joinEnemyViews(enemies []proto.EnemyView) string {
	labels := make([]string, len(enemies))
	for i, e := range enemies {
		labels[i] = enemyLabel(e)
	}
	return strings.Join(labels, ", ")
}

func joinConditionViews(conditions []proto.ConditionView) string {
	labels := make([]string, len(conditions))
	for i, c := range conditions {
		labels[i] = fmt.Sprintf("%s x%d", c.Name, c.Stacks)
	}
	return strings.Join(labels, ", ")
}
