package combat

// conditions.go orchestrates condition ticking at the turn boundaries spec
// §4.4.6 names: player conditions tick at PlayerTurnStart→end (i.e. when the
// player's turn ends), enemy conditions tick at EnemiesTurnEnd. Ritual is the
// one condition whose tick also mutates Strength, so both tick calls pass a
// gainStrength callback wired to the matching combatant.

// tickPlayerConditions runs at the end of the player's turn.
func (c *Context) tickPlayerConditions() {
	c.Combat.Conditions.TickEndOfTurn(func(amount int) {
		c.Combat.Strength += amount
	})
}

// tickEnemyConditions runs once per living enemy at the end of the enemies'
// turn (Cultist's Ritual-driven Strength ramp is the reason this needs a
// per-enemy gainStrength callback rather than a shared one).
func (c *Context) tickEnemyConditions() {
	for _, e := range c.Enemies {
		if !e.IsAlive() {
			continue
		}
		e.Conditions.TickEndOfTurn(func(amount int) {
			e.Strength += amount
		})
	}
}
