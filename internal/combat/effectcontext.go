package combat

import (
	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/player"
	"github.com/nkessler/spireengine/internal/proto"
)

// effectcontext.go implements data.EffectContext on *Context, the boundary
// every card/relic/potion closure in internal/data resolves through. The
// design question this file answers is which combatant "self" means: a
// PlayerEffect's "self" is always the player, but an EnemyEffect's "self" is
// whichever enemy is acting (Cultist's Incantation buffs its own Ritual,
// Jaw Worm's Bellow buffs its own Strength — both via ApplyConditionSelf).
// Every "Self"-named method below branches on resolvingEnemy to resolve that
// ambiguity; DealDamageToPlayer/ApplyConditionToPlayer never branch, since
// they're only ever called from an EnemyEffect addressing the player
// specifically, and the enemy-indexed methods (DealDamage, ApplyCondition,
// EnemyGainBlock, EnemyHP, IsEnemyAlive, StacksOf) never need resolvingEnemy
// at all because they take an explicit target slot.

// DealDamage resolves Blockable damage from the player against a specific
// enemy slot.
func (c *Context) DealDamage(amount int, target int) {
	c.dealDamageTo(amount, target, DamageBlockable)
}

// DealDamageAll hits every living enemy for the same amount (Whirlwind-style
// AOE cards).
func (c *Context) DealDamageAll(amount int) {
	for i, e := range c.Enemies {
		if e.IsAlive() {
			c.dealDamageTo(amount, i, DamageBlockable)
		}
	}
}

// DealDamageStrengthMultiplied implements Heavy Blade's one mechanical
// special case: base damage plus strength counted mult times instead of
// once.
func (c *Context) DealDamageStrengthMultiplied(base, mult, target int) {
	amount := CalculateDamage(base, c.Combat.Strength*mult, c.Combat.Conditions.StacksOf(data.ConditionWeak) > 0,
		c.enemyVulnerable(target), DamageBlockable)
	c.applyDamageToEnemy(amount, target, DamageBlockable)
}

// dealDamageTo computes and applies player-sourced damage against one enemy
// slot, reading the player's strength/weak and the target's vulnerable.
func (c *Context) dealDamageTo(base int, target int, variant DamageVariant) {
	amount := CalculateDamage(base, c.Combat.Strength, c.Combat.Conditions.StacksOf(data.ConditionWeak) > 0,
		c.enemyVulnerable(target), variant)
	c.applyDamageToEnemy(amount, target, variant)
}

func (c *Context) enemyVulnerable(target int) bool {
	e := c.enemyAt(target)
	if e == nil {
		return false
	}
	return e.Conditions.StacksOf(data.ConditionVulnerable) > 0
}

func (c *Context) enemyAt(target int) *EnemyState {
	if target < 0 || target >= len(c.Enemies) {
		return nil
	}
	return c.Enemies[target]
}

func (c *Context) applyDamageToEnemy(amount int, target int, variant DamageVariant) {
	e := c.enemyAt(target)
	if !e.IsAlive() {
		return
	}
	hpLost, block := ApplyDamage(amount, e.Block, variant)
	e.Block = block
	e.HP -= hpLost
	if e.HP < 0 {
		e.HP = 0
	}
}

// DealDamageToPlayer resolves enemy-sourced damage: the acting enemy's
// strength/weak against the player's block and vulnerable.
func (c *Context) DealDamageToPlayer(amount int) {
	e := c.currentEnemy()
	weak := e != nil && e.Conditions.StacksOf(data.ConditionWeak) > 0
	strength := 0
	if e != nil {
		strength = e.Strength
	}
	vulnerable := c.Combat.Conditions.StacksOf(data.ConditionVulnerable) > 0
	total := CalculateDamage(amount, strength, weak, vulnerable, DamageBlockable)
	hpLost, block := ApplyDamage(total, c.Combat.Block, DamageBlockable)
	c.Combat.Block = block
	c.loseHPToPlayer(hpLost)
}

func (c *Context) loseHPToPlayer(amount int) {
	if amount <= 0 {
		return
	}
	c.Persistent.HP -= amount
	if c.Persistent.HP < 0 {
		c.Persistent.HP = 0
	}
	c.Combat.HPLossCount++
}

// GainBlock resolves to whichever combatant is currently "self".
func (c *Context) GainBlock(amount int) {
	if e := c.currentEnemy(); e != nil {
		e.Block += CalculateBlock(amount, 0, e.Conditions.StacksOf(data.ConditionFrail) > 0)
		return
	}
	c.Combat.GainBlock(amount)
}

// EnemyGainBlock grants block to an explicit enemy slot rather than via
// GainBlock's resolvingEnemy branch. No enemy move in internal/data calls it.
func (c *Context) EnemyGainBlock(target, amount int) {
	e := c.enemyAt(target)
	if e == nil {
		return
	}
	e.Block += CalculateBlock(amount, 0, e.Conditions.StacksOf(data.ConditionFrail) > 0)
}

// Draw, Discard, and Exhaust delegate to the matching file in this package;
// each owns the pile-mutation rules and RNG consumption for its operation.
func (c *Context) Draw(n int) {
	for i := 0; i < n; i++ {
		c.drawOne()
	}
}

func (c *Context) Discard(n int) {
	for i := 0; i < n && len(c.Combat.Piles.Hand) > 0; i++ {
		last := len(c.Combat.Piles.Hand) - 1
		card := c.Combat.Piles.RemoveFromHandAt(last)
		c.Combat.Piles.ToDiscard(card)
	}
}

func (c *Context) Exhaust(n int) {
	for i := 0; i < n && len(c.Combat.Piles.Hand) > 0; i++ {
		last := len(c.Combat.Piles.Hand) - 1
		card := c.Combat.Piles.RemoveFromHandAt(last)
		c.Combat.Piles.ToExhaust(card)
	}
}

func (c *Context) ExhaustCardInHand(handIndex int) {
	card := c.Combat.Piles.RemoveFromHandAt(handIndex)
	if card == nil {
		return
	}
	c.Combat.Piles.ToExhaust(card)
}

// GainEnergy adds to this turn's energy pool.
func (c *Context) GainEnergy(n int) {
	c.Combat.Energy += n
}

// ApplyCondition always addresses an explicit enemy slot.
func (c *Context) ApplyCondition(target int, cond data.ConditionID, stacks int) {
	e := c.enemyAt(target)
	if e == nil {
		return
	}
	applyConditionToEnemy(e, cond, stacks)
}

// ApplyConditionSelf resolves to whichever combatant is currently "self":
// the acting enemy while an EnemyEffect is resolving, otherwise the player.
func (c *Context) ApplyConditionSelf(cond data.ConditionID, stacks int) {
	if e := c.currentEnemy(); e != nil {
		applyConditionToEnemy(e, cond, stacks)
		return
	}
	applyConditionToPlayerCombat(c.Combat, cond, stacks)
}

// ApplyConditionToPlayer is only ever called from an EnemyEffect addressing
// the player specifically (Acid Slime M's Lick applying Weak to the player).
func (c *Context) ApplyConditionToPlayer(cond data.ConditionID, stacks int) {
	applyConditionToPlayerCombat(c.Combat, cond, stacks)
}

// applyConditionToPlayerCombat special-cases Strength and Dexterity, and
// applyConditionToEnemy special-cases Strength only: spec.md §3 tracks those
// as dedicated ints on CombatState/EnemyState rather than entries in the
// condition list. EnemyState has no Dexterity field, so Dexterity applied to
// an enemy goes into its condition list like any other condition.
func applyConditionToEnemy(e *EnemyState, cond data.ConditionID, stacks int) {
	if cond == data.ConditionStrength {
		e.Strength += stacks
		return
	}
	e.Conditions.Apply(cond, stacks)
}

func applyConditionToPlayerCombat(combat *player.CombatState, cond data.ConditionID, stacks int) {
	switch cond {
	case data.ConditionStrength:
		combat.Strength += stacks
	case data.ConditionDexterity:
		combat.Dexterity += stacks
	default:
		combat.Conditions.Apply(cond, stacks)
	}
}

// RemoveCondition strips a condition from an explicit enemy slot (used by
// cleanse-style effects; no card in this content-table scope currently calls
// it against the player, so there is no player-targeted variant yet).
func (c *Context) RemoveCondition(target int, cond data.ConditionID) {
	e := c.enemyAt(target)
	if e == nil {
		return
	}
	e.Conditions.Remove(cond)
}

// LoseHP reduces an enemy's HP directly, bypassing block (the HpLoss damage
// variant spec §4.4.2 distinguishes from Blockable damage).
func (c *Context) LoseHP(target int, amount int) {
	e := c.enemyAt(target)
	if e == nil {
		return
	}
	e.HP -= amount
	if e.HP < 0 {
		e.HP = 0
	}
}

// HealSelf restores HP to whichever combatant is currently "self", capped at
// max HP.
func (c *Context) HealSelf(amount int) {
	if e := c.currentEnemy(); e != nil {
		e.HP += amount
		if e.HP > e.HPMax {
			e.HP = e.HPMax
		}
		return
	}
	c.Persistent.HP += amount
	if c.Persistent.HP > c.Persistent.HPMax {
		c.Persistent.HP = c.Persistent.HPMax
	}
}

func (c *Context) newDeckIndex() int {
	i := c.nextDeckIndex
	c.nextDeckIndex++
	return i
}

// AddCardToHand, AddCardToDiscard, and AddCardToDrawPileRandom materialize a
// fresh CardInstance and place it directly, without going through the draw
// pile (Anger's copy into the discard pile, Acid Slime (M)'s Slimed).
func (c *Context) AddCardToHand(cardID data.CardID, upgraded bool) {
	inst := c.newCardInstance(cardID, upgraded)
	if inst == nil {
		return
	}
	c.Combat.Piles.AddToHand(inst)
}

func (c *Context) AddCardToDiscard(cardID data.CardID, upgraded bool) {
	inst := c.newCardInstance(cardID, upgraded)
	if inst == nil {
		return
	}
	c.Combat.Piles.ToDiscard(inst)
}

func (c *Context) AddCardToDrawPileRandom(cardID data.CardID, upgraded bool) {
	inst := c.newCardInstance(cardID, upgraded)
	if inst == nil {
		return
	}
	draw := c.Combat.Piles.Draw
	if len(draw) == 0 {
		c.Combat.Piles.ToDrawTop(inst)
		return
	}
	pos := c.MiscStream.GenRange(0, len(draw))
	draw = append(draw, nil)
	copy(draw[pos+1:], draw[pos:])
	draw[pos] = inst
	c.Combat.Piles.Draw = draw
}

func (c *Context) newCardInstance(cardID data.CardID, upgraded bool) *player.CardInstance {
	card, err := data.LookupCard(cardID)
	if err != nil {
		return nil
	}
	return player.NewCardInstance(card, c.newDeckIndex(), upgraded)
}

// UpgradeCardInHand marks one hand card upgraded and recomputes its cost.
func (c *Context) UpgradeCardInHand(handIndex int) {
	if handIndex < 0 || handIndex >= len(c.Combat.Piles.Hand) {
		return
	}
	upgradeCardInstance(c.Combat.Piles.Hand[handIndex])
}

// UpgradeAllCardsInHand upgrades every card currently in hand (Apotheosis-
// style effects; Armaments+ uses this path too).
func (c *Context) UpgradeAllCardsInHand() {
	for _, inst := range c.Combat.Piles.Hand {
		upgradeCardInstance(inst)
	}
}

func upgradeCardInstance(inst *player.CardInstance) {
	if inst == nil || inst.Upgraded {
		return
	}
	inst.Upgraded = true
	inst.BaseCost = inst.Card.EffectiveCost(true)
	inst.ThisTurnCost = inst.BaseCost
}

// ChooseCardInHandToUpgrade prompts the controller for which non-upgraded
// hand card to upgrade (Armaments' single-target upgrade), per spec.md §6's
// PromptUpgradeCard choice point. Falls back to the first eligible card on a
// controller error, since this method's signature (fixed by
// data.EffectContext) has no room to propagate one.
func (c *Context) ChooseCardInHandToUpgrade() (int, bool) {
	var indices []int
	var choices []proto.Choice
	for i, inst := range c.Combat.Piles.Hand {
		if inst.Upgraded {
			continue
		}
		indices = append(indices, i)
		choices = append(choices, proto.UpgradeCardChoice{
			DeckIndex: inst.DeckIndex,
			Card:      cardView(inst),
		})
	}
	if len(indices) == 0 {
		return 0, false
	}
	pick, err := c.Controller.PromptChoice(c.goCtx, proto.PromptUpgradeCard, choices)
	if err != nil || pick < 0 || pick >= len(indices) {
		return indices[0], true
	}
	return indices[pick], true
}

// HandSize reports the current hand length.
func (c *Context) HandSize() int { return len(c.Combat.Piles.Hand) }

// EnemyCount reports the fixed enemy-slot count, matching the teacher's
// pattern of iterating slots and guarding with IsEnemyAlive rather than
// reporting only the living count (Combust-style "for every enemy" effects
// rely on this to skip dead slots themselves).
func (c *Context) EnemyCount() int { return len(c.Enemies) }

func (c *Context) EnemyHP(target int) int {
	e := c.enemyAt(target)
	if e == nil {
		return 0
	}
	return e.HP
}

// SelfHP and SelfBlock report whichever combatant is currently "self".
func (c *Context) SelfHP() int {
	if e := c.currentEnemy(); e != nil {
		return e.HP
	}
	return c.Persistent.HP
}

func (c *Context) SelfBlock() int {
	if e := c.currentEnemy(); e != nil {
		return e.Block
	}
	return c.Combat.Block
}

func (c *Context) IsEnemyAlive(target int) bool {
	return c.enemyAt(target).IsAlive()
}

// StacksOf always addresses an explicit enemy slot.
func (c *Context) StacksOf(target int, cond data.ConditionID) int {
	e := c.enemyAt(target)
	if e == nil {
		return 0
	}
	if cond == data.ConditionStrength {
		return e.Strength
	}
	return e.Conditions.StacksOf(cond)
}

// SelfStacksOf resolves to whichever combatant is currently "self".
func (c *Context) SelfStacksOf(cond data.ConditionID) int {
	if e := c.currentEnemy(); e != nil {
		if cond == data.ConditionStrength {
			return e.Strength
		}
		return e.Conditions.StacksOf(cond)
	}
	switch cond {
	case data.ConditionStrength:
		return c.Combat.Strength
	case data.ConditionDexterity:
		return c.Combat.Dexterity
	default:
		return c.Combat.Conditions.StacksOf(cond)
	}
}

// RetainBlockNextTurn flags the player's block to survive the next
// end-of-turn reset once (Barricade-style relics/cards; no enemy analogue
// exists in this content-table scope).
func (c *Context) RetainBlockNextTurn() {
	c.Combat.RetainBlockNextTurn = true
}
