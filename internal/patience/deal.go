package patience

import (
	"math/rand/v2"

	"github.com/lox/patience/internal/deck"
	"github.com/lox/patience/internal/randutil"
)

// Deal shuffles a standard deck with rng and lays out a fresh game: columns
// of 1 to 7 cards with only their last card face up, four empty foundations
// and the remaining 24 cards in the stock.
func Deal(rng *rand.Rand, rules Rules) *Field {
	return dealCards(deck.Shuffled(rng), rules)
}

// FillWithRandomCards deals the game identified by seed
func FillWithRandomCards(seed int64, rules Rules) *Field {
	return Deal(randutil.New(seed), rules)
}

func dealCards(cards []deck.Card, rules Rules) *Field {
	playStacks := make([]PlayStack, 0, Columns)
	next := 0
	for n := 1; n <= Columns; n++ {
		playStacks = append(playStacks, NewPlayStack(cards[next:next+n]))
		next += n
	}
	finishStacks := make([]FinishStack, Foundations)
	return New(NewStock(cards[next:]), playStacks, finishStacks, WithRules(rules))
}
