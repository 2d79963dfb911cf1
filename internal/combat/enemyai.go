package combat

// enemyai.go is the single generic move dispatcher every enemy species
// shares (enemy.go's doc comment already calls this out: the per-species
// data.Enemy.Moves pool stays data-driven while this file "owns the actual
// weighted-pick plus guard"), grounded on original_source's
// systems/enemy/party_generator.rs pattern of a shared AI rng stream feeding
// a per-species weighted table rather than bespoke per-species Go functions.

// chooseEnemyMove picks this enemy's next action from its move pool, using
// the AI stream and enforcing each move's MaxConsecutive cap (0 means
// unlimited) by zeroing that move's weight once the cap is hit and
// rerolling among what's left. If every move is capped simultaneously (a
// pool misconfiguration, not a reachable case for any enemy this engine
// implements), the cap is ignored rather than leaving the enemy with no
// action.
func (c *Context) chooseEnemyMove(e *EnemyState) {
	moves := e.Enemy.Moves
	if len(moves) == 0 {
		return
	}

	weights := make([]float64, len(moves))
	anyPositive := false
	for i, m := range moves {
		w := m.Weight
		if e.Move != nil && m.Name == e.Move.Name && m.MaxConsecutive > 0 && e.RunLength >= m.MaxConsecutive {
			w = 0
		}
		weights[i] = w
		if w > 0 {
			anyPositive = true
		}
	}
	if !anyPositive {
		for i, m := range moves {
			weights[i] = m.Weight
		}
	}

	idx := c.AIStream.WeightedChoose(weights)
	chosen := &moves[idx]

	if e.Move != nil && chosen.Name == e.Move.Name {
		e.RunLength++
	} else {
		e.RunLength = 1
	}
	e.Move = chosen
}
