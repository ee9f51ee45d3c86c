package patience

import (
	"fmt"

	"github.com/lox/patience/internal/deck"
)

// Stock is the undealt draw pile. Cards stay in the pile until they are moved
// off; the cursor counts how many of them have been turned so far and the
// last turned card is the only one that can be played.
type Stock struct {
	cards  []deck.Card
	cursor int
}

// NewStock returns a stock holding cards face down with none turned
func NewStock(cards []deck.Card) Stock {
	return NewStockAt(cards, 0)
}

// NewStockAt returns a stock whose first cursor cards have already been turned
func NewStockAt(cards []deck.Card, cursor int) Stock {
	hidden := make([]deck.Card, len(cards))
	for i, c := range cards {
		hidden[i] = c.Hidden()
	}
	if cursor < 0 {
		cursor = 0
	}
	if cursor > len(hidden) {
		cursor = len(hidden)
	}
	return Stock{cards: hidden, cursor: cursor}
}

// Cards returns every card still in the stock, turned or not.
func (s Stock) Cards() []deck.Card { return cloneCards(s.cards) }

func (s Stock) Len() int { return len(s.cards) }

// Cursor returns how many cards have been turned
func (s Stock) Cursor() int { return s.cursor }

// Remaining returns how many cards are still waiting to be turned
func (s Stock) Remaining() int { return len(s.cards) - s.cursor }

// Top returns the last turned card, face up.
func (s Stock) Top() (deck.Card, bool) {
	if s.cursor == 0 {
		return deck.Card{}, false
	}
	return s.cards[s.cursor-1].Shown(), true
}

// Next turns up to draw more cards. Once every card has been turned the next
// call starts over from the beginning.
func (s Stock) Next(draw int) Stock {
	if draw < 1 {
		draw = 1
	}
	next := s.cursor + draw
	switch {
	case s.cursor == len(s.cards):
		next = 0
	case next > len(s.cards):
		next = len(s.cards)
	}
	return Stock{cards: s.cards, cursor: next}
}

func (s Stock) CanAccept(deck.Card, Pile) bool { return false }

func (s Stock) Accept(card deck.Card, _ Pile) Pile {
	panic(fmt.Errorf("stock: accept %s: %w", card, ErrStockAccept))
}

func (s Stock) Remove(card deck.Card) Pile {
	top, ok := s.Top()
	if !ok || !top.Is(card) {
		panic(fmt.Errorf("stock: remove %s: %w", card, ErrNotOnTop))
	}
	rest := make([]deck.Card, 0, len(s.cards)-1)
	rest = append(rest, s.cards[:s.cursor-1]...)
	rest = append(rest, s.cards[s.cursor:]...)
	return Stock{cards: rest, cursor: s.cursor - 1}
}

// placeBack undoes Remove: card goes back in as the playable card.
func (s Stock) placeBack(card deck.Card) Pile {
	cards := make([]deck.Card, 0, len(s.cards)+1)
	cards = append(cards, s.cards[:s.cursor]...)
	cards = append(cards, card.Hidden())
	cards = append(cards, s.cards[s.cursor:]...)
	return Stock{cards: cards, cursor: s.cursor + 1}
}

func (s Stock) Hash() uint64 {
	return hashCards(s.cards, byte(s.cursor))
}

func (s Stock) Equal(other Pile) bool {
	o, ok := other.(Stock)
	return ok && s.cursor == o.cursor && equalCards(s.cards, o.cards)
}

// Row shows the playable card, or a face-down card while none is turned.
func (s Stock) Row(i int) (deck.Card, bool, bool) {
	if i != 0 {
		return deck.Card{}, false, false
	}
	if top, ok := s.Top(); ok {
		return top, true, false
	}
	if len(s.cards) > 0 {
		return s.cards[0].Hidden(), true, false
	}
	return deck.Card{}, false, false
}
