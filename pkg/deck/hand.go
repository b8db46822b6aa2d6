package deck

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// ErrDuplicateCard is returned when the same card appears more than once in a hand
var ErrDuplicateCard = errors.New("duplicate card")

// Hand represents a collection of cards
type Hand []Card

// HasCard returns true if the hand contains the specified card
func (h Hand) HasCard(card Card) bool {
	for _, c := range h {
		if c.Equal(card) {
			return true
		}
	}

	return false
}

// SortByRank sorts the hand highest rank first
// Cards of the same rank keep their relative order.
func (h Hand) SortByRank() {
	sort.SliceStable(h, func(i, j int) bool {
		return h[i].Rank > h[j].Rank
	})
}

// Ranks returns the rank of each card, in order
func (h Hand) Ranks() []Rank {
	ranks := make([]Rank, len(h))
	for i, c := range h {
		ranks[i] = c.Rank
	}

	return ranks
}

// Clone returns a copy of the hand
func (h Hand) Clone() Hand {
	h2 := make(Hand, len(h))
	copy(h2, h)

	return h2
}

// String returns the hand in the format of Ah,Kh,Qh
func (h Hand) String() string {
	return CardsToString(h)
}

// Symbols returns the hand as space separated display symbols
func (h Hand) Symbols() string {
	s := make([]string, len(h))
	for i, c := range h {
		s[i] = c.Symbol()
	}

	return strings.Join(s, " ")
}

// CardsToString will convert a slice of cards to a string in the format of Ah,Kh,Qh
func CardsToString(cards []Card) string {
	c := make([]string, len(cards))
	for i, card := range cards {
		c[i] = card.String()
	}

	return strings.Join(c, ",")
}

// CheckUnique returns an ErrDuplicateCard if any card appears twice
func CheckUnique(cards []Card) error {
	seen := make(map[Card]bool, len(cards))
	for _, c := range cards {
		if seen[c] {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}

		seen[c] = true
	}

	return nil
}
