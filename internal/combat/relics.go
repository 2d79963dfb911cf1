package combat

import "github.com/nkessler/spireengine/internal/data"

// relics.go dispatches the four combat-lifecycle relic hooks spec.md §3's
// RelicHooks names, iterating the persistent relic list and calling
// whichever hook each relic binds. Mirrors tcgx's pattern of looping active
// modifiers and calling whichever optional closure field is set, rather than
// a per-relic switch statement.

func (c *Context) forEachRelic(call func(*data.Relic)) {
	for _, id := range c.Persistent.Relics {
		relic, err := data.LookupRelic(id)
		if err != nil {
			continue
		}
		call(relic)
	}
}

func (c *Context) fireOnCombatStart() {
	c.forEachRelic(func(r *data.Relic) {
		if r.Hooks.OnCombatStart != nil {
			r.Hooks.OnCombatStart(c)
		}
	})
}

func (c *Context) fireOnTurnStart() {
	c.forEachRelic(func(r *data.Relic) {
		if r.Hooks.OnTurnStart != nil {
			r.Hooks.OnTurnStart(c)
		}
	})
}

func (c *Context) fireOnTurnEnd() {
	c.forEachRelic(func(r *data.Relic) {
		if r.Hooks.OnTurnEnd != nil {
			r.Hooks.OnTurnEnd(c)
		}
	})
}

func (c *Context) fireOnCombatEnd() {
	c.forEachRelic(func(r *data.Relic) {
		if r.Hooks.OnCombatEnd != nil {
			r.Hooks.OnCombatEnd(c)
		}
	})
}
