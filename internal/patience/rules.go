package patience

import (
	"fmt"

	"github.com/lox/patience/internal/deck"
)

// BuildRule constrains which card may be built onto a tableau card one rank higher
type BuildRule uint8

const (
	// BuildAlternate requires alternating colours (classic Klondike).
	BuildAlternate BuildRule = iota
	// BuildAnySuit only requires descending rank.
	BuildAnySuit
	// BuildSameSuit requires the same suit.
	BuildSameSuit
)

func (r BuildRule) String() string {
	switch r {
	case BuildAlternate:
		return "alternate"
	case BuildAnySuit:
		return "any-suit"
	case BuildSameSuit:
		return "same-suit"
	default:
		return "unknown"
	}
}

// ParseBuildRule parses the names produced by BuildRule.String
func ParseBuildRule(s string) (BuildRule, error) {
	switch s {
	case "alternate", "":
		return BuildAlternate, nil
	case "any-suit", "any":
		return BuildAnySuit, nil
	case "same-suit", "same":
		return BuildSameSuit, nil
	default:
		return 0, fmt.Errorf("unknown build rule %q", s)
	}
}

// allows reports whether card may sit directly on top of onto.
func (r BuildRule) allows(onto, card deck.Card) bool {
	if onto.Rank != card.Rank+1 {
		return false
	}
	switch r {
	case BuildAnySuit:
		return true
	case BuildSameSuit:
		return onto.Suit == card.Suit
	default:
		return onto.IsRed() != card.IsRed()
	}
}

// EmptyColumnRule decides what an empty tableau column accepts
type EmptyColumnRule uint8

const (
	// EmptyKing lets only a King fill an empty column.
	EmptyKing EmptyColumnRule = iota
	// EmptyAny lets any card fill an empty column.
	EmptyAny
)

func (r EmptyColumnRule) String() string {
	switch r {
	case EmptyKing:
		return "king"
	case EmptyAny:
		return "any"
	default:
		return "unknown"
	}
}

// ParseEmptyColumnRule parses the names produced by EmptyColumnRule.String
func ParseEmptyColumnRule(s string) (EmptyColumnRule, error) {
	switch s {
	case "king", "":
		return EmptyKing, nil
	case "any":
		return EmptyAny, nil
	default:
		return 0, fmt.Errorf("unknown empty column rule %q", s)
	}
}

// Rules are the configurable parts of the game
type Rules struct {
	Build       BuildRule
	EmptyColumn EmptyColumnRule
	// Draw is how many stock cards NextCard turns at once.
	Draw int
}

// DefaultRules returns classic draw-one Klondike
func DefaultRules() Rules {
	return Rules{Build: BuildAlternate, EmptyColumn: EmptyKing, Draw: 1}
}

// Validate checks the rules are usable
func (r Rules) Validate() error {
	if r.Build > BuildSameSuit {
		return fmt.Errorf("invalid build rule %d", r.Build)
	}
	if r.EmptyColumn > EmptyAny {
		return fmt.Errorf("invalid empty column rule %d", r.EmptyColumn)
	}
	if r.Draw < 1 {
		return fmt.Errorf("draw must be >= 1, got %d", r.Draw)
	}
	return nil
}

func (r Rules) draw() int {
	if r.Draw < 1 {
		return 1
	}
	return r.Draw
}
