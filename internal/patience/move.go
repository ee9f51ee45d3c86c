package patience

import (
	"fmt"

	"github.com/lox/patience/internal/deck"
)

// Move describes relocating a single card between two slots
type Move struct {
	Card deck.Card
	From Slot
	To   Slot
}

func (m Move) String() string {
	return fmt.Sprintf("%s %s -> %s", m.Card, m.From, m.To)
}

// placer is implemented by piles that can take a card back without rules.
type placer interface {
	placeBack(card deck.Card) Pile
}

// Move relocates card from one slot to another and returns the new field.
// It is a relocation primitive, not a rules engine: callers check legality
// first (CanMove, Moves) and an illegal move panics. Use Apply for a checked
// move that reports errors instead.
//
// Moving a card onto its own slot takes it off and puts it straight back.
func (f *Field) Move(card deck.Card, from, to Slot) *Field {
	fromPile := f.mustPile(from)
	toPile := f.mustPile(to)

	newFrom := fromPile.Remove(card)
	var newTo Pile
	if from == to {
		p, ok := newFrom.(placer)
		if !ok {
			panic(fmt.Errorf("%s: move onto itself: %w", from, ErrIllegalMove))
		}
		newFrom = p.placeBack(card)
	} else {
		newTo = toPile.Accept(card, fromPile)
	}

	stock := f.stock
	playStacks := make([]PlayStack, len(f.playStacks))
	copy(playStacks, f.playStacks)
	finishStacks := make([]FinishStack, len(f.finishStacks))
	copy(finishStacks, f.finishStacks)

	put := func(slot Slot, p Pile) {
		switch slot.Kind {
		case KindStock:
			stock = p.(Stock)
		case KindTableau:
			playStacks[slot.Index] = p.(PlayStack)
		case KindFoundation:
			finishStacks[slot.Index] = p.(FinishStack)
		}
	}
	put(from, newFrom)
	if newTo != nil {
		put(to, newTo)
	}

	return New(stock, playStacks, finishStacks, WithRules(f.rules))
}

// CanMove reports whether card may legally move from one slot to another
func (f *Field) CanMove(card deck.Card, from, to Slot) bool {
	return f.checkMove(card, from, to) == nil
}

func (f *Field) checkMove(card deck.Card, from, to Slot) error {
	fromPile, ok := f.Pile(from)
	if !ok {
		return fmt.Errorf("from %s: %w", from, ErrUnknownPile)
	}
	toPile, ok := f.Pile(to)
	if !ok {
		return fmt.Errorf("to %s: %w", to, ErrUnknownPile)
	}
	if from.Kind == KindFoundation {
		return fmt.Errorf("%s from %s: %w", card, from, ErrFoundationRemove)
	}
	if to.Kind == KindStock {
		return fmt.Errorf("%s to %s: %w", card, to, ErrStockAccept)
	}
	if from == to {
		return fmt.Errorf("%s onto its own pile %s: %w", card, from, ErrIllegalMove)
	}
	top, ok := fromPile.Top()
	if !ok || !top.Is(card) {
		return fmt.Errorf("%s from %s: %w", card, from, ErrNotOnTop)
	}
	if !toPile.CanAccept(top, fromPile) {
		return fmt.Errorf("%s from %s to %s: %w", card, from, to, ErrIllegalMove)
	}
	return nil
}

// Apply checks the move and then performs it.
func (f *Field) Apply(card deck.Card, from, to Slot) (*Field, error) {
	if err := f.checkMove(card, from, to); err != nil {
		return nil, err
	}
	return f.Move(card, from, to), nil
}

// Moves enumerates every legal single-card move, origins outermost and
// destinations innermost, each in the order of Origins and Destinations.
func (f *Field) Moves() []Move {
	var moves []Move
	for _, from := range f.Origins() {
		fromPile := f.mustPile(from)
		card, ok := fromPile.Top()
		if !ok || !card.Visible {
			continue
		}
		for _, to := range f.Destinations() {
			if to == from {
				continue
			}
			if f.mustPile(to).CanAccept(card, fromPile) {
				moves = append(moves, Move{Card: card, From: from, To: to})
			}
		}
	}
	return moves
}

// NextCard turns the next stock card(s). Only the stock differs from f, so
// the tableau and the canonical identity are shared with it.
func (f *Field) NextCard() *Field {
	next := *f
	next.stock = f.stock.Next(f.rules.draw())
	return &next
}
