package poker

import (
	"sort"

	"handrank-server/pkg/deck"
)

type sortByRank []deck.Card

func (s sortByRank) Len() int {
	return len(s)
}

func (s sortByRank) Less(i, j int) bool {
	return s[i].Rank < s[j].Rank
}

func (s sortByRank) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// sortedHighFirst returns a copy of the cards, highest rank first
// Cards of equal rank keep their input order.
func sortedHighFirst(cards []deck.Card) []deck.Card {
	newCards := make([]deck.Card, len(cards))
	copy(newCards, cards)
	sort.Stable(sort.Reverse(sortByRank(newCards)))

	return newCards
}
