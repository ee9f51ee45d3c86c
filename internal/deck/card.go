package deck

import (
	"fmt"
	"strings"
)

// Suit represents a card suit
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// NumSuits is the number of suits in a standard deck
const NumSuits = 4

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Letter returns the single-letter notation used by ParseCard
func (s Suit) Letter() byte {
	switch s {
	case Spades:
		return 's'
	case Hearts:
		return 'h'
	case Diamonds:
		return 'd'
	case Clubs:
		return 'c'
	default:
		return '?'
	}
}

// IsRed returns true if the suit is red (Hearts or Diamonds)
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Rank represents a card rank. Aces are low: Ace=1 through King=13.
type Rank uint8

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// NumRanks is the number of ranks per suit
const NumRanks = 13

const rankLetters = "A23456789TJQK"

// String returns the string representation of a rank
func (r Rank) String() string {
	if r < Ace || r > King {
		return "?"
	}
	return string(rankLetters[r-1])
}

// Card is an immutable playing card. Visible reports whether the card is face up;
// it is part of the card's state, not its identity (see Is).
type Card struct {
	Suit    Suit
	Rank    Rank
	Visible bool
}

// NewCard creates a new face-down card
func NewCard(suit Suit, rank Rank) Card {
	return Card{Suit: suit, Rank: rank}
}

// String returns the string representation of a card (e.g., "A♠")
func (c Card) String() string {
	return c.Rank.String() + c.Suit.String()
}

// Notation returns the two-character form accepted by ParseCard (e.g., "As")
func (c Card) Notation() string {
	return c.Rank.String() + string(c.Suit.Letter())
}

// IsRed returns true if the card is red
func (c Card) IsRed() bool {
	return c.Suit.IsRed()
}

// IsAce returns true if the card is an Ace
func (c Card) IsAce() bool {
	return c.Rank == Ace
}

// Is reports whether c and other are the same card, ignoring visibility
func (c Card) Is(other Card) bool {
	return c.Suit == other.Suit && c.Rank == other.Rank
}

// Shown returns a face-up copy of the card
func (c Card) Shown() Card {
	c.Visible = true
	return c
}

// Hidden returns a face-down copy of the card
func (c Card) Hidden() Card {
	c.Visible = false
	return c
}

// Index returns a dense 0..51 index, suit-major
func (c Card) Index() int {
	return int(c.Suit)*NumRanks + int(c.Rank) - 1
}

// Compare orders cards by suit, rank, then visibility (hidden first)
func (c Card) Compare(other Card) int {
	if d := c.Index() - other.Index(); d != 0 {
		return d
	}
	switch {
	case c.Visible == other.Visible:
		return 0
	case c.Visible:
		return 1
	default:
		return -1
	}
}

// ParseCard parses a string like "As" or "th" into a face-up Card
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, fmt.Errorf("invalid card string: %q", s)
	}

	idx := strings.IndexByte(rankLetters, upper(s[0]))
	if idx < 0 {
		return Card{}, fmt.Errorf("invalid rank %q in %q", s[0], s)
	}

	var suit Suit
	switch s[1] {
	case 's', 'S':
		suit = Spades
	case 'h', 'H':
		suit = Hearts
	case 'd', 'D':
		suit = Diamonds
	case 'c', 'C':
		suit = Clubs
	default:
		return Card{}, fmt.Errorf("invalid suit %q in %q", s[1], s)
	}

	return Card{Suit: suit, Rank: Rank(idx + 1), Visible: true}, nil
}

// ParseCards parses a run of concatenated cards such as "AsKh Qd", ignoring spaces
func ParseCards(s string) ([]Card, error) {
	s = strings.ReplaceAll(s, " ", "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("invalid card list: %q", s)
	}
	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		card, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, card)
	}
	return cards, nil
}

// MustParseCards is like ParseCards but panics on malformed input
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(err)
	}
	return cards
}

// MustParseCard is like ParseCard but panics on malformed input
func MustParseCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return card
}

func upper(b byte) byte {
	if b >= 'a' && b <= 'z' {
		return b - 'a' + 'A'
	}
	return b
}
