package deck

import (
	"fmt"

	"handrank-server/internal/rng"
)

// New returns the 52 card deck in a fixed order: suits in the order of Suits, ranks ascending
// The deck is never shuffled here.
func New() []Card {
	cards := make([]Card, 0, len(Suits)*len(Ranks))
	for _, suit := range Suits {
		for _, rank := range Ranks {
			cards = append(cards, Card{
				Rank: rank,
				Suit: suit,
			})
		}
	}

	return cards
}

// Shuffle shuffles the cards in place
func Shuffle(cards []Card, gen rng.Generator) {
	for j := len(cards) - 1; j > 0; j-- {
		i := gen.Intn(j + 1)
		cards[i], cards[j] = cards[j], cards[i]
	}
}

// Deal returns n cards from the top of a freshly shuffled deck
func Deal(n int, gen rng.Generator) ([]Card, error) {
	if n < 0 || n > len(Suits)*len(Ranks) {
		return nil, fmt.Errorf("cannot deal %d cards from a deck of %d", n, len(Suits)*len(Ranks))
	}

	cards := New()
	Shuffle(cards, gen)
	return cards[:n], nil
}
