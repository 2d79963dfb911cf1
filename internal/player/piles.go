package player

// CardPiles is the four-zone bundle spec.md §3 calls the "card-piles
// bundle" on PlayerCombatState. Each pile is a slice with the top of the
// pile as the last element, mirroring the teacher's Player.Deck convention
// ("top of deck is last element (pop from end)") in
// _examples/peterkuimelis-tcgx/internal/game/state.go.
type CardPiles struct {
	Draw    []*CardInstance
	Hand    []*CardInstance
	Discard []*CardInstance
	Exhaust []*CardInstance
}

// DrawOne pops the top card of the draw pile and returns it, or nil if the
// draw pile is empty. Callers are responsible for the discard-pile reshuffle
// (internal/combat/draw.go owns the RNG stream that shuffle needs); this
// method only ever pops, never refills.
func (p *CardPiles) DrawOne() *CardInstance {
	n := len(p.Draw)
	if n == 0 {
		return nil
	}
	card := p.Draw[n-1]
	p.Draw = p.Draw[:n-1]
	return card
}

// AddToHand appends a card to the hand.
func (p *CardPiles) AddToHand(c *CardInstance) {
	p.Hand = append(p.Hand, c)
}

// RemoveFromHand removes a card from the hand by identity, matching the
// teacher's RemoveFromHand(card) pointer-identity lookup.
func (p *CardPiles) RemoveFromHand(c *CardInstance) {
	for i, h := range p.Hand {
		if h == c {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return
		}
	}
}

// RemoveFromHandAt removes and returns the card at the given hand index.
func (p *CardPiles) RemoveFromHandAt(i int) *CardInstance {
	if i < 0 || i >= len(p.Hand) {
		return nil
	}
	c := p.Hand[i]
	p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
	return c
}

// ToDiscard moves a card onto the discard pile.
func (p *CardPiles) ToDiscard(c *CardInstance) {
	p.Discard = append(p.Discard, c)
}

// ToExhaust moves a card onto the exhaust pile.
func (p *CardPiles) ToExhaust(c *CardInstance) {
	p.Exhaust = append(p.Exhaust, c)
}

// ToDrawTop pushes a card directly onto the top of the draw pile (Havoc's
// "play the top card of the draw pile" setup, and curse/status insertion
// effects that specify "on top").
func (p *CardPiles) ToDrawTop(c *CardInstance) {
	p.Draw = append(p.Draw, c)
}

// ShuffleDiscardIntoDraw empties the discard pile into the draw pile and
// shuffles it in place via the supplied swap function, which callers back
// with an rng.StsRandom.JavaCompatShuffle stream (§4.1) so the reshuffle
// point consumes the shuffle RNG rather than Go's math/rand, preserving
// bit-for-bit reproducibility.
func (p *CardPiles) ShuffleDiscardIntoDraw(shuffle func(swap func(i, j int), n int)) {
	p.Draw = append(p.Draw, p.Discard...)
	p.Discard = nil
	shuffle(func(i, j int) {
		p.Draw[i], p.Draw[j] = p.Draw[j], p.Draw[i]
	}, len(p.Draw))
}

// HandSize, DrawPileSize, DiscardPileSize, ExhaustPileSize report pile
// lengths for effects whose magnitude depends on pile sizes (spec §4.4.2's
// "hand-size / draw-pile-size inputs for those variants").
func (p *CardPiles) HandSize() int        { return len(p.Hand) }
func (p *CardPiles) DrawPileSize() int    { return len(p.Draw) }
func (p *CardPiles) DiscardPileSize() int { return len(p.Discard) }
func (p *CardPiles) ExhaustPileSize() int { return len(p.Exhaust) }

// AllCards returns every card instance currently tracked across all four
// piles, used by invariant checks (spec invariant 3: "the union of piles is
// invariant across turn boundaries") and by in-play reporting.
func (p *CardPiles) AllCards() []*CardInstance {
	all := make([]*CardInstance, 0, len(p.Draw)+len(p.Hand)+len(p.Discard)+len(p.Exhaust))
	all = append(all, p.Draw...)
	all = append(all, p.Hand...)
	all = append(all, p.Discard...)
	all = append(all, p.Exhaust...)
	return all
}
