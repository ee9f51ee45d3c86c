// Package patience models Klondike game states as immutable values.
//
// A Field is either freshly dealt or derived from another Field with Move,
// NextCard or DoTrivialMoves; every derivation returns a new Field and leaves
// its input untouched, so Fields can be shared freely between goroutines and
// kept in visited-state sets keyed by Hash and Equal.
package patience

import (
	"fmt"
	"sort"

	"github.com/lox/patience/internal/deck"
)

const (
	// Columns is the number of tableau columns in a full deal
	Columns = 7
	// Foundations is the number of foundations in a full deal
	Foundations = deck.NumSuits

	hashMultiplier = 81
)

// Field is an immutable game state
type Field struct {
	stock        Stock
	playStacks   []PlayStack
	finishStacks []FinishStack
	rules        Rules

	// canonical holds the non-empty play stacks ordered by Hash, so fields
	// that only differ in column positions compare equal.
	canonical []PlayStack
	hash      uint64
}

// Option configures New
type Option func(*Field)

// WithRules sets the rules every play stack of the field follows
func WithRules(rules Rules) Option {
	return func(f *Field) { f.rules = rules }
}

// New builds a field and computes its canonical identity once.
func New(stock Stock, playStacks []PlayStack, finishStacks []FinishStack, opts ...Option) *Field {
	f := &Field{rules: DefaultRules()}
	for _, opt := range opts {
		opt(f)
	}

	f.stock = stock
	f.playStacks = make([]PlayStack, len(playStacks))
	for i, p := range playStacks {
		f.playStacks[i] = p.withRules(f.rules)
	}
	f.finishStacks = make([]FinishStack, len(finishStacks))
	copy(f.finishStacks, finishStacks)

	f.canonical = canonicalOrder(f.playStacks)
	for i := len(f.canonical) - 1; i >= 0; i-- {
		f.hash = f.hash*hashMultiplier + f.canonical[i].Hash()
	}
	return f
}

func canonicalOrder(stacks []PlayStack) []PlayStack {
	out := make([]PlayStack, 0, len(stacks))
	for _, p := range stacks {
		if p.Len() > 0 {
			out = append(out, p)
		}
	}
	sort.Slice(out, func(i, j int) bool {
		hi, hj := out[i].Hash(), out[j].Hash()
		if hi != hj {
			return hi < hj
		}
		return out[i].compare(out[j]) < 0
	})
	return out
}

// Stock returns the draw pile
func (f *Field) Stock() Stock { return f.stock }

// PlayStacks returns the tableau columns in slot order
func (f *Field) PlayStacks() []PlayStack {
	out := make([]PlayStack, len(f.playStacks))
	copy(out, f.playStacks)
	return out
}

// FinishStacks returns the foundations in slot order
func (f *Field) FinishStacks() []FinishStack {
	out := make([]FinishStack, len(f.finishStacks))
	copy(out, f.finishStacks)
	return out
}

// Rules returns the rules the field was built with
func (f *Field) Rules() Rules { return f.rules }

// Hash returns the hash computed at construction. It folds the non-empty play
// stacks in descending hash order and ignores their slot positions.
func (f *Field) Hash() uint64 { return f.hash }

// Equal reports whether two fields are the same position regardless of how
// the tableau columns are arranged. Foundations are not compared: given the
// same stock and tableau, the remaining cards can only be on the foundations
// and each foundation's run from Ace is fixed by its suit and length.
func (f *Field) Equal(other *Field) bool {
	if f == nil || other == nil {
		return f == other
	}
	if f.hash != other.hash {
		return false
	}
	if !f.stock.Equal(other.stock) {
		return false
	}
	if len(f.canonical) != len(other.canonical) {
		return false
	}
	for i := range f.canonical {
		if !f.canonical[i].Equal(other.canonical[i]) {
			return false
		}
	}
	return true
}

// Pile returns the pile at slot
func (f *Field) Pile(slot Slot) (Pile, bool) {
	switch slot.Kind {
	case KindStock:
		return f.stock, slot.Index == 0
	case KindTableau:
		if slot.Index >= 0 && slot.Index < len(f.playStacks) {
			return f.playStacks[slot.Index], true
		}
	case KindFoundation:
		if slot.Index >= 0 && slot.Index < len(f.finishStacks) {
			return f.finishStacks[slot.Index], true
		}
	}
	return nil, false
}

func (f *Field) mustPile(slot Slot) Pile {
	p, ok := f.Pile(slot)
	if !ok {
		panic(fmt.Errorf("%s: %w", slot, ErrUnknownPile))
	}
	return p
}

// Origins lists the slots cards can be taken from, least promising first:
// the stock, then the tableau columns.
func (f *Field) Origins() []Slot {
	slots := make([]Slot, 0, 1+len(f.playStacks))
	slots = append(slots, StockSlot)
	for i := range f.playStacks {
		slots = append(slots, Tableau(i))
	}
	return slots
}

// Destinations lists the slots cards can be placed on, least promising first:
// the tableau columns, then the foundations.
func (f *Field) Destinations() []Slot {
	slots := make([]Slot, 0, len(f.playStacks)+len(f.finishStacks))
	for i := range f.playStacks {
		slots = append(slots, Tableau(i))
	}
	for i := range f.finishStacks {
		slots = append(slots, Foundation(i))
	}
	return slots
}

// Cards returns every card on the field: stock, tableau, then foundations
func (f *Field) Cards() []deck.Card {
	cards := f.stock.Cards()
	for _, p := range f.playStacks {
		cards = append(cards, p.cards...)
	}
	for _, fs := range f.finishStacks {
		cards = append(cards, fs.cards...)
	}
	return cards
}

// FoundationCards returns how many cards have reached the foundations
func (f *Field) FoundationCards() int {
	n := 0
	for _, fs := range f.finishStacks {
		n += fs.Len()
	}
	return n
}

// HiddenCards returns how many tableau cards are still face down
func (f *Field) HiddenCards() int {
	n := 0
	for _, p := range f.playStacks {
		n += p.Hidden()
	}
	return n
}

// IsDone reports whether no face-down card remains on the tableau. It does not
// check that the foundations are complete.
func (f *Field) IsDone() bool {
	for _, p := range f.playStacks {
		for _, c := range p.cards {
			if !c.Visible {
				return false
			}
		}
	}
	return true
}

// CheckCards verifies a full-deck field: all 52 cards present exactly once
// and every foundation holding a run from Ace of a single suit.
func (f *Field) CheckCards() error {
	var seen [deck.Size]bool
	cards := f.Cards()
	for _, c := range cards {
		idx := c.Index()
		if idx < 0 || idx >= deck.Size {
			return fmt.Errorf("invalid card %v", c)
		}
		if seen[idx] {
			return fmt.Errorf("duplicate card %s", c)
		}
		seen[idx] = true
	}
	if len(cards) != deck.Size {
		return fmt.Errorf("expected %d cards, found %d", deck.Size, len(cards))
	}
	for i, fs := range f.finishStacks {
		suit, ok := fs.Suit()
		if !ok {
			continue
		}
		for j, c := range fs.cards {
			if c.Suit != suit || c.Rank != deck.Rank(j+1) {
				return fmt.Errorf("foundation %d: %s out of sequence", i, c)
			}
		}
	}
	return nil
}
