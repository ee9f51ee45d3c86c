package patience

import "github.com/lox/patience/internal/deck"

// IsSafeToPlay reports whether sending card to a foundation can never cost a
// solution. Aces always are. Any other card is safe once every foundation has
// reached at least two ranks below it (an empty foundation counts as 0): the
// cards that could still want to be built on it can then all go home too.
func (f *Field) IsSafeToPlay(card deck.Card) bool {
	if card.IsAce() {
		return true
	}
	need := int(card.Rank) - 2
	for _, fs := range f.finishStacks {
		if int(fs.Rank()) < need {
			return false
		}
	}
	return true
}

// DoTrivialMoves keeps sending safe cards to the foundations until none is
// left. Tableau tops are tried first in column order, then the stock's
// playable card; every move restarts the scan on the new field.
func (f *Field) DoTrivialMoves() *Field {
	cur := f
	for {
		next, ok := cur.trivialMove()
		if !ok {
			return cur
		}
		cur = next
	}
}

func (f *Field) trivialMove() (*Field, bool) {
	for i, p := range f.playStacks {
		if next, ok := f.playHome(p, Tableau(i)); ok {
			return next, true
		}
	}
	return f.playHome(f.stock, StockSlot)
}

func (f *Field) playHome(from Pile, slot Slot) (*Field, bool) {
	card, ok := from.Top()
	if !ok || !card.Visible || !f.IsSafeToPlay(card) {
		return nil, false
	}
	for i, fs := range f.finishStacks {
		if fs.CanAccept(card, from) {
			return f.Move(card, slot, Foundation(i)), true
		}
	}
	return nil, false
}
