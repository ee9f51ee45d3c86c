package deck

import (
	"math/rand/v2"

	"github.com/lox/patience/internal/randutil"
)

// Size is the number of cards in a standard deck
const Size = NumSuits * NumRanks

// StandardDeck returns the 52 cards of a standard deck, face down,
// in suit-major, rank-minor order
func StandardDeck() []Card {
	cards := make([]Card, 0, Size)
	for suit := Spades; suit <= Clubs; suit++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, NewCard(suit, rank))
		}
	}
	return cards
}

// Shuffled returns a standard deck shuffled with rng
func Shuffled(rng *rand.Rand) []Card {
	cards := StandardDeck()
	randutil.Shuffle(rng, cards)
	return cards
}
