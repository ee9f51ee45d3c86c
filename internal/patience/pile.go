package patience

import (
	"fmt"

	"github.com/cespare/xxhash/v2"

	"github.com/lox/patience/internal/deck"
)

// Pile is an immutable ordered sequence of cards with its own acceptance rule.
// Accept and Remove never modify the receiver; they return a new pile.
type Pile interface {
	// Cards returns a copy of the cards, front (bottom) to back (top).
	Cards() []deck.Card
	Len() int
	// Top returns the most accessible card, if any.
	Top() (deck.Card, bool)
	// CanAccept reports whether card, taken from origin, may be placed here.
	CanAccept(card deck.Card, origin Pile) bool
	// Accept returns the pile with card placed on top. It panics with
	// ErrIllegalMove if CanAccept would return false.
	Accept(card deck.Card, origin Pile) Pile
	// Remove returns the pile without card, which must be the top card.
	Remove(card deck.Card) Pile
	// Hash is a structural hash of the ordered contents.
	Hash() uint64
	Equal(other Pile) bool
	// Row is the rendering hook for the console dump. It returns the card
	// shown on text row i (ok=false for a blank cell) and whether the pile
	// has rows after i.
	Row(i int) (card deck.Card, ok bool, more bool)
}

// Kind identifies which part of the field a pile belongs to
type Kind uint8

const (
	KindStock Kind = iota
	KindTableau
	KindFoundation
)

func (k Kind) String() string {
	switch k {
	case KindStock:
		return "stock"
	case KindTableau:
		return "tableau"
	case KindFoundation:
		return "foundation"
	default:
		return "unknown"
	}
}

// Slot addresses a pile within a Field. Moves substitute piles by slot,
// so two piles with identical contents are still distinct positions.
type Slot struct {
	Kind  Kind
	Index int
}

// StockSlot is the slot of the field's single stock
var StockSlot = Slot{Kind: KindStock}

// Tableau returns the slot of the i'th play stack
func Tableau(i int) Slot { return Slot{Kind: KindTableau, Index: i} }

// Foundation returns the slot of the i'th finish stack
func Foundation(i int) Slot { return Slot{Kind: KindFoundation, Index: i} }

func (s Slot) String() string {
	if s.Kind == KindStock {
		return "stock"
	}
	return fmt.Sprintf("%s[%d]", s.Kind, s.Index)
}

// hashCards hashes cards (suit, rank and visibility) plus any extra state bytes.
func hashCards(cards []deck.Card, extra ...byte) uint64 {
	buf := make([]byte, 0, len(cards)+len(extra))
	for _, c := range cards {
		b := byte(c.Index())
		if c.Visible {
			b |= 0x80
		}
		buf = append(buf, b)
	}
	buf = append(buf, extra...)
	return xxhash.Sum64(buf)
}

func equalCards(a, b []deck.Card) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func compareCards(a, b []deck.Card) int {
	for i := 0; i < len(a) && i < len(b); i++ {
		if d := a[i].Compare(b[i]); d != 0 {
			return d
		}
	}
	return len(a) - len(b)
}

func cloneCards(cards []deck.Card) []deck.Card {
	out := make([]deck.Card, len(cards))
	copy(out, cards)
	return out
}

func topOf(cards []deck.Card) (deck.Card, bool) {
	if len(cards) == 0 {
		return deck.Card{}, false
	}
	return cards[len(cards)-1], true
}

// withoutTop returns cards minus the last element after checking it is card.
func withoutTop(kind string, cards []deck.Card, card deck.Card) []deck.Card {
	top, ok := topOf(cards)
	if !ok || !top.Is(card) {
		panic(fmt.Errorf("%s: remove %s: %w", kind, card, ErrNotOnTop))
	}
	out := make([]deck.Card, len(cards)-1)
	copy(out, cards)
	return out
}

// withTop returns cards plus card appended, never sharing the input's backing array.
func withTop(cards []deck.Card, card deck.Card) []deck.Card {
	out := make([]deck.Card, len(cards)+1)
	copy(out, cards)
	out[len(cards)] = card
	return out
}
