package poker

import (
	"errors"
	"fmt"

	"handrank-server/pkg/deck"
)

// hand size limits for Evaluate
const (
	MinCards = 5
	MaxCards = 7
)

// ErrHandSize is returned by ValidateSize when there are too few or too many cards
var ErrHandSize = errors.New("a hand must have between 5 and 7 cards")

// ValidateSize returns an ErrHandSize if the cards cannot be evaluated
// Evaluate does not call this; callers check their input before evaluating.
func ValidateSize(cards []deck.Card) error {
	if n := len(cards); n < MinCards || n > MaxCards {
		return fmt.Errorf("%w: got %d", ErrHandSize, n)
	}

	return nil
}

// HandAnalyzer can analyze a hand
// A HandAnalyzer is built for a single set of cards and is never shared between calls.
type HandAnalyzer struct {
	// highest rank first
	cards  []deck.Card
	byRank RankGroups
	bySuit map[deck.Suit][]deck.Card

	straight         run
	hasStraight      bool
	straightFlush    run
	hasStraightFlush bool

	result Result
}

// rung is a single step of the category ladder
type rung struct {
	category Category
	get      func(h *HandAnalyzer) ([]deck.Card, bool)
}

// ladder is checked from the best category down, the first match wins
// The order matters: i.e., a seven card flush that also holds a full house is a full house.
var ladder = []rung{
	{RoyalFlush, (*HandAnalyzer).GetRoyalFlush},
	{StraightFlush, (*HandAnalyzer).GetStraightFlush},
	{FourOfAKind, (*HandAnalyzer).GetFourOfAKind},
	{FullHouse, (*HandAnalyzer).GetFullHouse},
	{Flush, (*HandAnalyzer).GetFlush},
	{Straight, (*HandAnalyzer).GetStraight},
	{ThreeOfAKind, (*HandAnalyzer).GetThreeOfAKind},
	{TwoPair, (*HandAnalyzer).GetTwoPair},
	{Pair, (*HandAnalyzer).GetPair},
	{HighCard, (*HandAnalyzer).GetHighCard},
}

// NewHandAnalyzer will return a new HandAnalyzer instance
// The cards are copied; the caller's slice is never modified.
func NewHandAnalyzer(cards []deck.Card) *HandAnalyzer {
	sorted := sortedHighFirst(cards)

	h := &HandAnalyzer{
		cards:  sorted,
		byRank: GroupByRank(sorted),
		bySuit: GroupBySuit(sorted),
	}

	// the method order here is required
	h.analyzeHand()
	h.calculateHand()

	return h
}

// analyzeHand finds the straights up front, they are needed by more than one rung
func (h *HandAnalyzer) analyzeHand() {
	h.straight, h.hasStraight = findStraight(h.cards)
	h.straightFlush, h.hasStraightFlush = findStraightFlush(h.cards)
}

// calculateHand will determine the best hand
// This must be called after analyzeHand() has been called
func (h *HandAnalyzer) calculateHand() {
	for _, r := range ladder {
		if primary, ok := r.get(h); ok {
			h.result = newResult(r.category, primary, h.cards)
			return
		}
	}
}

// GetResult will return the best possible hand the cards can make
func (h *HandAnalyzer) GetResult() Result {
	return h.result
}

// GetCategory returns the category of the best possible hand
func (h *HandAnalyzer) GetCategory() Category {
	return h.result.Category
}

// GetRoyalFlush will return the royal flush, if possible
func (h *HandAnalyzer) GetRoyalFlush() ([]deck.Card, bool) {
	if h.hasStraightFlush && h.straightFlush.high == deck.Ace {
		return copyCards(h.straightFlush.cards), true
	}

	return nil, false
}

// GetStraightFlush will return the best straight flush, if possible
// A royal flush is also a straight flush.
func (h *HandAnalyzer) GetStraightFlush() ([]deck.Card, bool) {
	if h.hasStraightFlush {
		return copyCards(h.straightFlush.cards), true
	}

	return nil, false
}

// GetFourOfAKind will return the best four of a kind, if possible
func (h *HandAnalyzer) GetFourOfAKind() ([]deck.Card, bool) {
	quads := h.byRank.atLeast(4)
	if len(quads) == 0 {
		return nil, false
	}

	return copyCards(h.byRank.Cards(quads[0])[:4]), true
}

// GetFullHouse will return the best full house, if possible
// The trips come first, followed by the pair.
func (h *HandAnalyzer) GetFullHouse() ([]deck.Card, bool) {
	trips := h.byRank.atLeast(3)
	if len(trips) == 0 {
		return nil, false
	}

	tripsRank := trips[0]

	// a second set of trips can serve as the pair
	for _, pairRank := range h.byRank.atLeast(2) {
		if pairRank == tripsRank {
			continue
		}

		fullHouse := make([]deck.Card, 0, 5)
		fullHouse = append(fullHouse, h.byRank.Cards(tripsRank)[:3]...)
		fullHouse = append(fullHouse, h.byRank.Cards(pairRank)[:2]...)
		return fullHouse, true
	}

	return nil, false
}

// GetFlush will return the best possible flush, if possible
func (h *HandAnalyzer) GetFlush() ([]deck.Card, bool) {
	var best []deck.Card
	for _, suit := range deck.Suits {
		suited := h.bySuit[suit]
		if len(suited) < 5 {
			continue
		}

		// cards are already sorted, highest first
		if flush := suited[:5]; best == nil || compareRanks(flush, best) > 0 {
			best = flush
		}
	}

	if best == nil {
		return nil, false
	}

	return copyCards(best), true
}

// GetStraight will return the best straight, if possible
func (h *HandAnalyzer) GetStraight() ([]deck.Card, bool) {
	if h.hasStraight {
		return copyCards(h.straight.cards), true
	}

	return nil, false
}

// GetThreeOfAKind will return the best three of a kind, if possible
func (h *HandAnalyzer) GetThreeOfAKind() ([]deck.Card, bool) {
	trips := h.byRank.atLeast(3)
	if len(trips) == 0 {
		return nil, false
	}

	return copyCards(h.byRank.Cards(trips[0])[:3]), true
}

// GetTwoPair will return the best two pairs, if possible
// The higher pair comes first.
func (h *HandAnalyzer) GetTwoPair() ([]deck.Card, bool) {
	pairs := h.byRank.atLeast(2)
	if len(pairs) < 2 {
		return nil, false
	}

	twoPair := make([]deck.Card, 0, 4)
	twoPair = append(twoPair, h.byRank.Cards(pairs[0])[:2]...)
	twoPair = append(twoPair, h.byRank.Cards(pairs[1])[:2]...)
	return twoPair, true
}

// GetPair will return the best pair, if possible
func (h *HandAnalyzer) GetPair() ([]deck.Card, bool) {
	pairs := h.byRank.atLeast(2)
	if len(pairs) == 0 {
		return nil, false
	}

	return copyCards(h.byRank.Cards(pairs[0])[:2]), true
}

// GetHighCard will return the five highest cards
func (h *HandAnalyzer) GetHighCard() ([]deck.Card, bool) {
	return copyCards(take(h.cards, 5)), true
}

// Evaluate returns the best hand the cards make
// The cards must number between MinCards and MaxCards; see ValidateSize.
func Evaluate(cards []deck.Card) Result {
	return NewHandAnalyzer(cards).GetResult()
}

// HasRoyalFlush returns true if the cards contain a royal flush
func HasRoyalFlush(cards []deck.Card) bool {
	_, ok := NewHandAnalyzer(cards).GetRoyalFlush()
	return ok
}

// HasStraightFlush returns true if the cards contain a straight flush (royal flushes included)
func HasStraightFlush(cards []deck.Card) bool {
	_, ok := NewHandAnalyzer(cards).GetStraightFlush()
	return ok
}

// HasFourOfAKind returns true if the cards contain four of a kind
func HasFourOfAKind(cards []deck.Card) bool {
	_, ok := NewHandAnalyzer(cards).GetFourOfAKind()
	return ok
}

// HasFullHouse returns true if the cards contain a full house
func HasFullHouse(cards []deck.Card) bool {
	_, ok := NewHandAnalyzer(cards).GetFullHouse()
	return ok
}

// HasFlush returns true if the cards contain a flush
func HasFlush(cards []deck.Card) bool {
	_, ok := NewHandAnalyzer(cards).GetFlush()
	return ok
}

// HasStraight returns true if the cards contain a straight
func HasStraight(cards []deck.Card) bool {
	_, ok := NewHandAnalyzer(cards).GetStraight()
	return ok
}

// HasThreeOfAKind returns true if the cards contain three of a kind
func HasThreeOfAKind(cards []deck.Card) bool {
	_, ok := NewHandAnalyzer(cards).GetThreeOfAKind()
	return ok
}

// HasTwoPair returns true if the cards contain two pairs
func HasTwoPair(cards []deck.Card) bool {
	_, ok := NewHandAnalyzer(cards).GetTwoPair()
	return ok
}

// HasPair returns true if the cards contain a pair
func HasPair(cards []deck.Card) bool {
	_, ok := NewHandAnalyzer(cards).GetPair()
	return ok
}

// HasHighCard is always true, it is the last rung of the ladder
func HasHighCard(cards []deck.Card) bool {
	_, ok := NewHandAnalyzer(cards).GetHighCard()
	return ok
}

func take(cards []deck.Card, n int) []deck.Card {
	if len(cards) < n {
		return cards
	}

	return cards[:n]
}

func copyCards(cards []deck.Card) []deck.Card {
	c := make([]deck.Card, len(cards))
	copy(c, cards)

	return c
}
