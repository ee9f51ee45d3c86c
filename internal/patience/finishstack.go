package patience

import (
	"fmt"

	"github.com/lox/patience/internal/deck"
)

// FinishStack is a foundation: a single suit built up from Ace to King.
// Its contents are always Ace..Rank() of Suit(), so it is fully described by
// its suit and card count.
type FinishStack struct {
	cards []deck.Card
}

// NewFinishStack returns an empty foundation
func NewFinishStack() FinishStack {
	return FinishStack{}
}

// newFinishStackRun builds a foundation holding Ace..top of suit.
func newFinishStackRun(suit deck.Suit, top deck.Rank) FinishStack {
	cards := make([]deck.Card, 0, top)
	for r := deck.Ace; r <= top; r++ {
		cards = append(cards, deck.Card{Suit: suit, Rank: r, Visible: true})
	}
	return FinishStack{cards: cards}
}

func (f FinishStack) Cards() []deck.Card { return cloneCards(f.cards) }

func (f FinishStack) Len() int { return len(f.cards) }

func (f FinishStack) Top() (deck.Card, bool) { return topOf(f.cards) }

// Rank returns the rank of the top card, or 0 for an empty foundation
func (f FinishStack) Rank() deck.Rank {
	return deck.Rank(len(f.cards))
}

// Suit returns the committed suit; ok is false while the foundation is empty
func (f FinishStack) Suit() (deck.Suit, bool) {
	if len(f.cards) == 0 {
		return 0, false
	}
	return f.cards[0].Suit, true
}

// CanAccept allows the next rank of the committed suit, or any Ace when empty.
func (f FinishStack) CanAccept(card deck.Card, origin Pile) bool {
	if _, fromFoundation := origin.(FinishStack); fromFoundation {
		return false
	}
	top, ok := f.Top()
	if !ok {
		return card.IsAce()
	}
	return top.Suit == card.Suit && card.Rank == top.Rank+1
}

func (f FinishStack) Accept(card deck.Card, origin Pile) Pile {
	if !f.CanAccept(card, origin) {
		panic(fmt.Errorf("foundation: accept %s: %w", card, ErrIllegalMove))
	}
	return FinishStack{cards: withTop(f.cards, card.Shown())}
}

func (f FinishStack) Remove(card deck.Card) Pile {
	panic(fmt.Errorf("foundation: remove %s: %w", card, ErrFoundationRemove))
}

func (f FinishStack) Hash() uint64 { return hashCards(f.cards) }

func (f FinishStack) Equal(other Pile) bool {
	o, ok := other.(FinishStack)
	return ok && equalCards(f.cards, o.cards)
}

// Row shows only the top card.
func (f FinishStack) Row(i int) (deck.Card, bool, bool) {
	if i != 0 {
		return deck.Card{}, false, false
	}
	top, ok := f.Top()
	return top, ok, false
}
