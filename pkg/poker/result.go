package poker

import (
	"fmt"

	"handrank-server/pkg/deck"
)

// Result is the best hand found in a set of cards
type Result struct {
	Category Category    `json:"category"`
	Primary  []deck.Card `json:"primary"`
	Kickers  []deck.Card `json:"kickers"`
}

// newResult fills the kickers from the unused cards
// cards must be sorted highest first
func newResult(category Category, primary []deck.Card, cards []deck.Card) Result {
	return Result{
		Category: category,
		Primary:  primary,
		Kickers:  kickers(cards, primary, 5-len(primary)),
	}
}

// kickers returns up to n of the highest cards that are not used
// Used cards are removed one at a time, so duplicate cards are only consumed once each.
func kickers(cards, used []deck.Card, n int) []deck.Card {
	remaining := copyCards(cards)
	for _, u := range used {
		for i, c := range remaining {
			if c.Equal(u) {
				remaining = append(remaining[:i], remaining[i+1:]...)
				break
			}
		}
	}

	if n < 0 {
		n = 0
	}

	return copyCards(take(remaining, n))
}

// Cards returns the primary cards followed by the kickers
func (r Result) Cards() []deck.Card {
	cards := make([]deck.Card, 0, len(r.Primary)+len(r.Kickers))
	cards = append(cards, r.Primary...)
	return append(cards, r.Kickers...)
}

// Ranks returns the ranks of the primary cards followed by the kickers
func (r Result) Ranks() []deck.Rank {
	return deck.Hand(r.Cards()).Ranks()
}

// String returns the category followed by the cards, i.e., "Pair: Ah,Ad | Kc,9s,2d"
func (r Result) String() string {
	if len(r.Kickers) == 0 {
		return fmt.Sprintf("%s: %s", r.Category, deck.CardsToString(r.Primary))
	}

	return fmt.Sprintf("%s: %s | %s", r.Category, deck.CardsToString(r.Primary), deck.CardsToString(r.Kickers))
}

// Describe returns a description of the hand, i.e., "Full house, sevens full of kings"
func (r Result) Describe() string {
	if len(r.Primary) == 0 {
		return r.Category.String()
	}

	top := r.Primary[0].Rank
	switch r.Category {
	case RoyalFlush:
		return r.Category.String()
	case StraightFlush, Flush, Straight:
		return fmt.Sprintf("%s, %s high", r.Category, top)
	case FourOfAKind, ThreeOfAKind:
		return fmt.Sprintf("%s, %s", r.Category, top.Plural())
	case FullHouse:
		return fmt.Sprintf("%s, %s full of %s", r.Category, top.Plural(), r.Primary[len(r.Primary)-1].Rank.Plural())
	case TwoPair:
		return fmt.Sprintf("%s, %s and %s", r.Category, top.Plural(), r.Primary[len(r.Primary)-1].Rank.Plural())
	case Pair:
		return fmt.Sprintf("%s of %s", r.Category, top.Plural())
	default:
		return fmt.Sprintf("%s, %s", r.Category, top)
	}
}
