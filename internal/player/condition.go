package player

import "github.com/nkessler/spireengine/internal/data"

// Condition is one entry in a bearer's ordered condition list: a buff or
// debuff with a stack count plus the "just applied this turn" flag Ritual
// needs to skip its first tick, ported from spec.md §4.4.6 / §3's
// PlayerCondition/EnemyCondition tagged union. Player and enemy state share
// this type (and ConditionList below) since the tick rules are identical for
// both bearers; only the owning combatant differs.
type Condition struct {
	ID          data.ConditionID
	Stacks      int
	JustApplied bool
}

// ConditionList is the ordered, merge-on-reapply condition set a combatant
// carries, modeled on tcgx's slice-of-active-modifiers pattern but keyed by
// ConditionID instead of a free-form stat name.
type ConditionList []Condition

// Apply merges stacks into an existing entry of the same ID or appends a new
// one, preserving insertion order (spec §4.4.6: "first scans for a matching
// variant and merges; else appends").
func (cl *ConditionList) Apply(id data.ConditionID, stacks int) {
	for i := range *cl {
		if (*cl)[i].ID == id {
			(*cl)[i].Stacks += stacks
			(*cl)[i].JustApplied = true
			return
		}
	}
	*cl = append(*cl, Condition{ID: id, Stacks: stacks, JustApplied: true})
}

// Remove drops the condition with the given ID, if present.
func (cl *ConditionList) Remove(id data.ConditionID) {
	for i := range *cl {
		if (*cl)[i].ID == id {
			*cl = append((*cl)[:i], (*cl)[i+1:]...)
			return
		}
	}
}

// StacksOf returns the current stack count for a condition, or 0 if absent.
func (cl ConditionList) StacksOf(id data.ConditionID) int {
	for _, c := range cl {
		if c.ID == id {
			return c.Stacks
		}
	}
	return 0
}

// TickEndOfTurn decrements every decaying condition by one stack (Weak,
// Vulnerable, Frail, Ritual's just_applied reset per §4.4.6) and drops any
// that reach zero. Ritual instead adds its stacks to strength via the
// caller-supplied gainStrength callback when it was not just applied this
// turn, matching the "on enemy turn end, if not just_applied add str" rule.
// Both the player and enemies can carry Ritual (Demon Form applies it to the
// player), so combat passes each bearer a callback that raises its Strength;
// a nil callback skips the gain.
func (cl *ConditionList) TickEndOfTurn(gainStrength func(amount int)) {
	kept := (*cl)[:0]
	for _, c := range *cl {
		if c.ID == data.ConditionRitual {
			if !c.JustApplied && gainStrength != nil {
				gainStrength(c.Stacks)
			}
			c.JustApplied = false
			kept = append(kept, c)
			continue
		}
		if c.ID.DecaysOnTick() {
			c.Stacks--
			if c.Stacks <= 0 {
				continue
			}
		}
		c.JustApplied = false
		kept = append(kept, c)
	}
	*cl = kept
}
