package poker

import (
	"handrank-server/pkg/deck"
)

const straightLen = 5

// run is a five card straight, highest card first
type run struct {
	cards []deck.Card

	// high is the rank of the top card; a wheel is five-high
	high deck.Rank
}

// wheel is the ace-low straight, in the order its cards are reported
var wheel = []deck.Rank{deck.Five, deck.Four, deck.Three, deck.Two, deck.Ace}

// findStraight will return the best straight in the cards, if possible
// Only distinct ranks count. Ranks never wrap around past the ace, the ace-low
// wheel is the only exception to consecutive ranks.
func findStraight(cards []deck.Card) (run, bool) {
	groups := GroupByRank(cards)
	ranks := groups.Ranks()

	// ranks are distinct and ascending, so a window spanning four ranks has no gaps
	// later windows are higher, so the last match is the best
	var high deck.Rank
	for i := 0; i+straightLen <= len(ranks); i++ {
		if ranks[i+straightLen-1]-ranks[i] == straightLen-1 {
			high = ranks[i+straightLen-1]
		}
	}

	if high > 0 {
		r := run{
			cards: make([]deck.Card, 0, straightLen),
			high:  high,
		}

		for rank := high; rank > high-straightLen; rank-- {
			r.cards = append(r.cards, groups.Cards(rank)[0])
		}

		return r, true
	}

	for _, rank := range wheel {
		if !groups.Has(rank) {
			return run{}, false
		}
	}

	r := run{
		cards: make([]deck.Card, 0, straightLen),
		high:  deck.Five,
	}

	for _, rank := range wheel {
		r.cards = append(r.cards, groups.Cards(rank)[0])
	}

	return r, true
}

// findStraightFlush will return the best straight made only of cards of a single suit
func findStraightFlush(cards []deck.Card) (run, bool) {
	bySuit := GroupBySuit(cards)

	var best run
	found := false
	for _, suit := range deck.Suits {
		suited := bySuit[suit]
		if len(suited) < straightLen {
			continue
		}

		if r, ok := findStraight(suited); ok && (!found || r.high > best.high) {
			best = r
			found = true
		}
	}

	return best, found
}
