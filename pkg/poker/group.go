package poker

import (
	"sort"

	"handrank-server/pkg/deck"
)

// GroupBySuit groups the cards by suit
// Each group keeps the order the cards were given in.
func GroupBySuit(cards []deck.Card) map[deck.Suit][]deck.Card {
	groups := make(map[deck.Suit][]deck.Card, len(deck.Suits))
	for _, card := range cards {
		groups[card.Suit] = append(groups[card.Suit], card)
	}

	return groups
}

// RankGroups is an index of cards by rank
type RankGroups struct {
	cards map[deck.Rank][]deck.Card
	ranks []deck.Rank
}

// GroupByRank groups the cards by rank
// Each group keeps the order the cards were given in.
func GroupByRank(cards []deck.Card) RankGroups {
	g := RankGroups{
		cards: make(map[deck.Rank][]deck.Card, len(cards)),
		ranks: make([]deck.Rank, 0, len(cards)),
	}

	for _, card := range cards {
		if _, ok := g.cards[card.Rank]; !ok {
			g.ranks = append(g.ranks, card.Rank)
		}

		g.cards[card.Rank] = append(g.cards[card.Rank], card)
	}

	sort.Slice(g.ranks, func(i, j int) bool {
		return g.ranks[i] < g.ranks[j]
	})

	return g
}

// Count returns how many cards have the rank
func (g RankGroups) Count(rank deck.Rank) int {
	return len(g.cards[rank])
}

// Cards returns the cards of the rank
func (g RankGroups) Cards(rank deck.Rank) []deck.Card {
	return g.cards[rank]
}

// Ranks returns the distinct ranks, lowest first
func (g RankGroups) Ranks() []deck.Rank {
	return g.ranks
}

// Has returns true if at least one card has the rank
func (g RankGroups) Has(rank deck.Rank) bool {
	return g.Count(rank) > 0
}

// atLeast returns the ranks with at least n cards, highest first
func (g RankGroups) atLeast(n int) []deck.Rank {
	var ranks []deck.Rank
	for i := len(g.ranks) - 1; i >= 0; i-- {
		if r := g.ranks[i]; g.Count(r) >= n {
			ranks = append(ranks, r)
		}
	}

	return ranks
}
