package patience

import (
	"fmt"

	"github.com/lox/patience/internal/deck"
)

// PlayStack is a tableau column. Face-down cards sit below face-up ones and
// the top card is turned face up whenever the card above it leaves.
type PlayStack struct {
	cards []deck.Card
	rules Rules
}

// NewPlayStack deals cards into a column: all face down except the last.
// The column follows the rules of the Field it is placed in.
func NewPlayStack(cards []deck.Card) PlayStack {
	dealt := make([]deck.Card, len(cards))
	for i, c := range cards {
		dealt[i] = c.Hidden()
	}
	if n := len(dealt); n > 0 {
		dealt[n-1] = dealt[n-1].Shown()
	}
	return PlayStack{cards: dealt}
}

// PlayStackOf builds a column keeping the visibility of cards exactly as given.
func PlayStackOf(cards ...deck.Card) PlayStack {
	return PlayStack{cards: cloneCards(cards)}
}

func (p PlayStack) withRules(rules Rules) PlayStack {
	p.rules = rules
	return p
}

func (p PlayStack) Cards() []deck.Card { return cloneCards(p.cards) }

func (p PlayStack) Len() int { return len(p.cards) }

func (p PlayStack) Top() (deck.Card, bool) { return topOf(p.cards) }

// Hidden returns how many cards are still face down
func (p PlayStack) Hidden() int {
	n := 0
	for _, c := range p.cards {
		if !c.Visible {
			n++
		}
	}
	return n
}

// CanAccept applies the tableau building rule to the current top card.
// Foundations never give cards back, so nothing is accepted from one.
func (p PlayStack) CanAccept(card deck.Card, origin Pile) bool {
	if _, fromFoundation := origin.(FinishStack); fromFoundation {
		return false
	}
	top, ok := p.Top()
	if !ok {
		return p.rules.EmptyColumn == EmptyAny || card.Rank == deck.King
	}
	return top.Visible && p.rules.Build.allows(top, card)
}

func (p PlayStack) Accept(card deck.Card, origin Pile) Pile {
	if !p.CanAccept(card, origin) {
		panic(fmt.Errorf("tableau: accept %s: %w", card, ErrIllegalMove))
	}
	return p.placeBack(card)
}

// placeBack puts card on top without consulting the building rule.
func (p PlayStack) placeBack(card deck.Card) Pile {
	return PlayStack{cards: withTop(p.cards, card.Shown()), rules: p.rules}
}

func (p PlayStack) Remove(card deck.Card) Pile {
	rest := withoutTop("tableau", p.cards, card)
	if n := len(rest); n > 0 {
		rest[n-1] = rest[n-1].Shown()
	}
	return PlayStack{cards: rest, rules: p.rules}
}

func (p PlayStack) Hash() uint64 { return hashCards(p.cards) }

// Equal compares contents only; the rules are a property of the game.
func (p PlayStack) Equal(other Pile) bool {
	o, ok := other.(PlayStack)
	return ok && equalCards(p.cards, o.cards)
}

func (p PlayStack) compare(other PlayStack) int {
	return compareCards(p.cards, other.cards)
}

func (p PlayStack) Row(i int) (deck.Card, bool, bool) {
	if i < 0 || i >= len(p.cards) {
		return deck.Card{}, false, false
	}
	return p.cards[i], true, i+1 < len(p.cards)
}
