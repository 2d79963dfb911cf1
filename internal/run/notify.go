package run

import (
	stdctx "context"

	"github.com/nkessler/spireengine/internal/data"
	"github.com/nkessler/spireengine/internal/proto"
)

// notify.go builds the sanitised proto views for persistent-state changes
// and the handful of mutator helpers every room handler calls into, mirrored
// on internal/combat/notify.go's cardView/notifyHP pattern but scoped to
// player.PersistentState rather than a combat's transient CombatState.

func cardViewFor(card *data.Card, upgraded bool) proto.CardView {
	cost := card.EffectiveCost(upgraded)
	return proto.CardView{Name: card.Name, Cost: cost, Upgraded: upgraded}
}

func (r *Run) deckViews() []proto.CardView {
	views := make([]proto.CardView, 0, len(r.persistent.Deck))
	for _, dc := range r.persistent.Deck {
		card, err := data.LookupCard(dc.ID)
		if err != nil {
			continue
		}
		views = append(views, cardViewFor(card, dc.Upgraded))
	}
	return views
}

func (r *Run) potionViews() []string {
	views := make([]string, len(r.persistent.Potions))
	for i, p := range r.persistent.Potions {
		if p == nil {
			continue
		}
		potion, err := data.LookupPotion(*p)
		if err != nil {
			continue
		}
		views[i] = potion.Name
	}
	return views
}

func (r *Run) relicViews() []string {
	views := make([]string, 0, len(r.persistent.Relics))
	for _, id := range r.persistent.Relics {
		relic, err := data.LookupRelic(id)
		if err != nil {
			continue
		}
		views = append(views, relic.Name)
	}
	return views
}

func (r *Run) notifyDeck(ctx stdctx.Context) error {
	return r.controller.Notify(ctx, proto.Notification{Kind: proto.NotifyDeckChanged, Deck: r.deckViews()})
}

func (r *Run) notifyGold(ctx stdctx.Context) error {
	return r.controller.Notify(ctx, proto.Notification{Kind: proto.NotifyGoldChanged, Gold: r.persistent.Gold})
}

func (r *Run) notifyPotions(ctx stdctx.Context) error {
	return r.controller.Notify(ctx, proto.Notification{Kind: proto.NotifyPotionsChanged, Potions: r.potionViews()})
}

func (r *Run) notifyRelics(ctx stdctx.Context) error {
	return r.controller.Notify(ctx, proto.Notification{Kind: proto.NotifyRelicsChanged, Relics: r.relicViews()})
}

func (r *Run) notifyHP(ctx stdctx.Context) error {
	return r.controller.Notify(ctx, proto.Notification{
		Kind:  proto.NotifyHPChanged,
		HP:    r.persistent.HP,
		HPMax: r.persistent.HPMax,
	})
}

// obtainCard appends a card to the deck and reports the change.
func (r *Run) obtainCard(ctx stdctx.Context, id data.CardID, upgraded bool) error {
	card, err := data.LookupCard(id)
	if err != nil {
		return err
	}
	r.persistent.AddCard(id, upgraded)
	if err := r.controller.Notify(ctx, proto.Notification{
		Kind: proto.NotifyCardObtained,
		Card: cardViewFor(card, upgraded),
	}); err != nil {
		return err
	}
	return r.notifyDeck(ctx)
}

// removeCardAt drops a deck card by index and reports the change.
func (r *Run) removeCardAt(ctx stdctx.Context, i int) error {
	if i < 0 || i >= len(r.persistent.Deck) {
		return nil
	}
	dc := r.persistent.Deck[i]
	card, err := data.LookupCard(dc.ID)
	if err != nil {
		return err
	}
	r.persistent.RemoveCardAt(i)
	if err := r.controller.Notify(ctx, proto.Notification{
		Kind:        proto.NotifyCardRemoved,
		RemovedCard: cardViewFor(card, dc.Upgraded),
	}); err != nil {
		return err
	}
	return r.notifyDeck(ctx)
}

// upgradeCardAt upgrades a deck card by index and reports the change.
func (r *Run) upgradeCardAt(ctx stdctx.Context, i int) error {
	if i < 0 || i >= len(r.persistent.Deck) {
		return nil
	}
	r.persistent.UpgradeCardAt(i)
	dc := r.persistent.Deck[i]
	card, err := data.LookupCard(dc.ID)
	if err != nil {
		return err
	}
	if err := r.controller.Notify(ctx, proto.Notification{
		Kind: proto.NotifyCardUpgraded,
		Card: cardViewFor(card, true),
	}); err != nil {
		return err
	}
	return r.notifyDeck(ctx)
}

// obtainRelic appends a relic and reports the change.
func (r *Run) obtainRelic(ctx stdctx.Context, id data.RelicID) error {
	r.persistent.AddRelic(id)
	return r.notifyRelics(ctx)
}

// gainGold and loseGold adjust the player's gold total, clamped at zero.
func (r *Run) gainGold(ctx stdctx.Context, amount int) error {
	r.persistent.Gold += amount
	return r.notifyGold(ctx)
}

func (r *Run) loseGold(ctx stdctx.Context, amount int) error {
	r.persistent.Gold -= amount
	if r.persistent.Gold < 0 {
		r.persistent.Gold = 0
	}
	return r.notifyGold(ctx)
}

// increaseMaxHP and decreaseMaxHP adjust HPMax, carrying current HP along by
// the same delta (increaseMaxHP also heals by the delta, the live game's
// convention; decreaseMaxHP clamps current HP down if it now exceeds HPMax).
func (r *Run) increaseMaxHP(ctx stdctx.Context, delta int) error {
	r.persistent.HPMax += delta
	r.persistent.HP += delta
	return r.notifyHP(ctx)
}

func (r *Run) decreaseMaxHP(ctx stdctx.Context, delta int) error {
	r.persistent.HPMax -= delta
	if r.persistent.HPMax < 1 {
		r.persistent.HPMax = 1
	}
	if r.persistent.HP > r.persistent.HPMax {
		r.persistent.HP = r.persistent.HPMax
	}
	return r.notifyHP(ctx)
}

// takeNeowDamage applies Neow's TakeDamage penalty, which per the live
// game's own rule can never itself be fatal.
func (r *Run) takeNeowDamage(ctx stdctx.Context, amount int) error {
	r.persistent.HP -= amount
	if r.persistent.HP < 1 {
		r.persistent.HP = 1
	}
	return r.notifyHP(ctx)
}

// choosePotionsToObtain offers a set of rolled potions for the
// ObtainThreeRandomPotions blessing; the player may take any subset up to
// however many empty slots remain, one prompt per potion.
func (r *Run) choosePotionsToObtain(ctx stdctx.Context, potionIDs []data.PotionID) error {
	for _, id := range potionIDs {
		if r.persistent.EmptyPotionSlot() < 0 {
			break
		}
		potion, err := data.LookupPotion(id)
		if err != nil {
			return err
		}
		choices := []proto.Choice{
			proto.ObtainPotionChoice{Potion: potion.Name},
			proto.SkipChoice{},
		}
		pick, err := r.controller.PromptChoice(ctx, proto.PromptChooseOne, choices)
		if err != nil {
			return err
		}
		if pick != 0 {
			continue
		}
		r.persistent.AddPotion(id)
		if err := r.notifyPotions(ctx); err != nil {
			return err
		}
	}
	return nil
}
