package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"handrank-server/pkg/deck"
)

func TestHandAnalyzer_GetFourOfAKind(t *testing.T) {
	h := NewHandAnalyzer(deck.CardsFromString("2c,3c,3d,3h,3s"))
	r, ok := h.GetFourOfAKind()
	assert.True(t, ok)
	assert.Equal(t, "3c,3d,3h,3s", deck.CardsToString(r))
	assert.Equal(t, FourOfAKind, h.GetCategory())
	assert.Equal(t, "2c", deck.CardsToString(h.GetResult().Kickers))

	h = NewHandAnalyzer(deck.CardsFromString("4s,4h,5c,4d,4c"))
	r, ok = h.GetFourOfAKind()
	assert.True(t, ok)
	assert.Equal(t, "4s,4h,4d,4c", deck.CardsToString(r))

	h = NewHandAnalyzer(deck.CardsFromString("9s,4h,5c,4d,4c"))
	r, ok = h.GetFourOfAKind()
	assert.False(t, ok)
	assert.Nil(t, r)

	// quads beat the full house also in the cards
	h = NewHandAnalyzer(deck.CardsFromString("9c,9d,9h,9s,Kc,Kd,Kh"))
	assert.Equal(t, FourOfAKind, h.GetCategory())
	assert.Equal(t, "Kc", deck.CardsToString(h.GetResult().Kickers))
}

func TestHandAnalyzer_GetFullHouse(t *testing.T) {
	h := NewHandAnalyzer(deck.CardsFromString("Ac,2c,Ad,5c,Ah,2d,5h"))
	r, ok := h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, "Ac,Ad,Ah,5c,5h", deck.CardsToString(r))

	// the lower set of trips becomes the pair
	h = NewHandAnalyzer(deck.CardsFromString("3c,3d,3h,4c,4d,4h,5c"))
	r, ok = h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, "4c,4d,4h,3c,3d", deck.CardsToString(r))

	h = NewHandAnalyzer(deck.CardsFromString("7c,7d,7h,6c,6d,6h,5c"))
	r, ok = h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, "7c,7d,7h,6c,6d", deck.CardsToString(r))

	// a higher pair is preferred to a lower pair
	h = NewHandAnalyzer(deck.CardsFromString("7c,7d,7h,2c,2d,Kh,Ks"))
	r, ok = h.GetFullHouse()
	assert.True(t, ok)
	assert.Equal(t, "7c,7d,7h,Kh,Ks", deck.CardsToString(r))

	h = NewHandAnalyzer(deck.CardsFromString("3c,3d,3h,4c,5d,6h,8c"))
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)

	h = NewHandAnalyzer(deck.CardsFromString("3c,3d,4h,4c,5d,5h,6c"))
	r, ok = h.GetFullHouse()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetFlush(t *testing.T) {
	h := NewHandAnalyzer(deck.CardsFromString("2h,9h,Jh,4h,Ah,Kc,Kh"))
	r, ok := h.GetFlush()
	assert.True(t, ok)
	assert.Equal(t, "Ah,Kh,Jh,9h,4h", deck.CardsToString(r))
	assert.Equal(t, Flush, h.GetCategory())
	assert.Empty(t, h.GetResult().Kickers)

	h = NewHandAnalyzer(deck.CardsFromString("2h,9h,Jh,4h,Ac,Kc,Kd"))
	r, ok = h.GetFlush()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetStraight(t *testing.T) {
	h := NewHandAnalyzer(deck.CardsFromString("9c,Td,Jh,Qs,Kc,Ah,2d"))
	r, ok := h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, "Ah,Kc,Qs,Jh,Td", deck.CardsToString(r))

	// duplicate ranks are skipped
	h = NewHandAnalyzer(deck.CardsFromString("5c,6d,7h,8s,9c,9d,Tc"))
	r, ok = h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, "Tc,9c,8s,7h,6d", deck.CardsToString(r))
	assert.Equal(t, Straight, h.GetCategory())
	assert.Empty(t, h.GetResult().Kickers)

	h = NewHandAnalyzer(deck.CardsFromString("Ah,2d,3c,4s,5h,Kc,Kd"))
	r, ok = h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, "5h,4s,3c,2d,Ah", deck.CardsToString(r))

	// a six-high straight beats the wheel
	h = NewHandAnalyzer(deck.CardsFromString("Ah,2d,3c,4s,5h,6c,Kd"))
	r, ok = h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, "6c,5h,4s,3c,2d", deck.CardsToString(r))

	h = NewHandAnalyzer(deck.CardsFromString("Kh,As,2d,3c,4h"))
	r, ok = h.GetStraight()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetStraightFlush(t *testing.T) {
	h := NewHandAnalyzer(deck.CardsFromString("9h,Th,Jh,Qh,Kh,Ah,2c"))
	r, ok := h.GetRoyalFlush()
	assert.True(t, ok)
	assert.Equal(t, "Ah,Kh,Qh,Jh,Th", deck.CardsToString(r))
	r, ok = h.GetStraightFlush()
	assert.True(t, ok)
	assert.Equal(t, "Ah,Kh,Qh,Jh,Th", deck.CardsToString(r))
	assert.Equal(t, RoyalFlush, h.GetCategory())

	// the straight to the ace is not suited
	h = NewHandAnalyzer(deck.CardsFromString("8s,9s,Ts,Js,Qs,Ks,Ad"))
	_, ok = h.GetRoyalFlush()
	assert.False(t, ok)
	r, ok = h.GetStraightFlush()
	assert.True(t, ok)
	assert.Equal(t, "Ks,Qs,Js,Ts,9s", deck.CardsToString(r))
	r, ok = h.GetStraight()
	assert.True(t, ok)
	assert.Equal(t, "Ad,Ks,Qs,Js,Ts", deck.CardsToString(r))
	assert.Equal(t, StraightFlush, h.GetCategory())

	h = NewHandAnalyzer(deck.CardsFromString("Ah,2h,3h,4h,5h"))
	_, ok = h.GetRoyalFlush()
	assert.False(t, ok)
	r, ok = h.GetStraightFlush()
	assert.True(t, ok)
	assert.Equal(t, "5h,4h,3h,2h,Ah", deck.CardsToString(r))

	// a straight and a flush, but not together
	h = NewHandAnalyzer(deck.CardsFromString("9h,Th,Jh,Qh,2h,Kc,3d"))
	_, ok = h.GetStraightFlush()
	assert.False(t, ok)
	assert.Equal(t, Flush, h.GetCategory())
}

func TestHandAnalyzer_GetThreeOfAKind(t *testing.T) {
	h := NewHandAnalyzer(deck.CardsFromString("2c,5c,5h,5d,6d,4c,4d"))
	r, ok := h.GetThreeOfAKind()
	assert.True(t, ok)
	assert.Equal(t, "5c,5h,5d", deck.CardsToString(r))

	h = NewHandAnalyzer(deck.CardsFromString("Qh,Qd,Qs,2c,5d,9h,Kc"))
	assert.Equal(t, ThreeOfAKind, h.GetCategory())
	assert.Equal(t, "Qh,Qd,Qs", deck.CardsToString(h.GetResult().Primary))
	assert.Equal(t, "Kc,9h", deck.CardsToString(h.GetResult().Kickers))

	h = NewHandAnalyzer(deck.CardsFromString("2c,3c,4h,4d,2d"))
	r, ok = h.GetThreeOfAKind()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetTwoPair(t *testing.T) {
	h := NewHandAnalyzer(deck.CardsFromString("2c,5c,2h,5h,6d,Ks,Kd"))
	r, ok := h.GetTwoPair()
	assert.True(t, ok)
	assert.Equal(t, "Ks,Kd,5c,5h", deck.CardsToString(r))
	assert.Equal(t, "6d", deck.CardsToString(h.GetResult().Kickers))

	// the third pair can be the kicker
	h = NewHandAnalyzer(deck.CardsFromString("Ah,Ad,8c,8d,3s,3h,2c"))
	assert.Equal(t, TwoPair, h.GetCategory())
	assert.Equal(t, "Ah,Ad,8c,8d", deck.CardsToString(h.GetResult().Primary))
	assert.Equal(t, "3s", deck.CardsToString(h.GetResult().Kickers))

	h = NewHandAnalyzer(deck.CardsFromString("2c,3c,4h,4d,9d"))
	r, ok = h.GetTwoPair()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetPair(t *testing.T) {
	h := NewHandAnalyzer(deck.CardsFromString("2c,5c,2h,5h,6d"))
	r, ok := h.GetPair()
	assert.True(t, ok)
	assert.Equal(t, "5c,5h", deck.CardsToString(r))

	h = NewHandAnalyzer(deck.CardsFromString("Jh,Jd,2c,5d,9h,Kc,3s"))
	assert.Equal(t, Pair, h.GetCategory())
	assert.Equal(t, "Jh,Jd", deck.CardsToString(h.GetResult().Primary))
	assert.Equal(t, "Kc,9h,5d", deck.CardsToString(h.GetResult().Kickers))

	h = NewHandAnalyzer(deck.CardsFromString("2c,3c,4h,5h,7d"))
	r, ok = h.GetPair()
	assert.False(t, ok)
	assert.Nil(t, r)
}

func TestHandAnalyzer_GetHighCard(t *testing.T) {
	h := NewHandAnalyzer(deck.CardsFromString("Ac,2c,5c,8d,3h"))
	r, ok := h.GetHighCard()
	assert.True(t, ok)
	assert.Equal(t, "Ac,8d,5c,3h,2c", deck.CardsToString(r))

	h = NewHandAnalyzer(deck.CardsFromString("Ac,2c,5c,8d,3h,Jd,Tc"))
	r, ok = h.GetHighCard()
	assert.True(t, ok)
	assert.Equal(t, "Ac,Jd,Tc,8d,5c", deck.CardsToString(r))
	assert.Equal(t, HighCard, h.GetCategory())
	assert.Empty(t, h.GetResult().Kickers)
}

func TestNewHandAnalyzer_doesNotModifyInput(t *testing.T) {
	cards := deck.CardsFromString("2c,Ah,5c,Kd,3h")
	NewHandAnalyzer(cards)
	assert.Equal(t, "2c,Ah,5c,Kd,3h", deck.CardsToString(cards))
}

func TestPredicates(t *testing.T) {
	a := assert.New(t)

	royal := deck.CardsFromString("Ah,Kh,Qh,Jh,Th")
	a.True(HasRoyalFlush(royal))
	a.True(HasStraightFlush(royal))
	a.True(HasFlush(royal))
	a.True(HasStraight(royal))
	a.False(HasPair(royal))
	a.True(HasHighCard(royal))

	fullHouse := deck.CardsFromString("7c,7h,7d,Ks,Kh")
	a.True(HasFullHouse(fullHouse))
	a.True(HasThreeOfAKind(fullHouse))
	a.True(HasTwoPair(fullHouse))
	a.True(HasPair(fullHouse))
	a.False(HasFourOfAKind(fullHouse))
	a.False(HasFlush(fullHouse))

	quads := deck.CardsFromString("9c,9d,9h,9s,2c")
	a.True(HasFourOfAKind(quads))
	a.False(HasFullHouse(quads))
	a.False(HasTwoPair(quads))

	wrap := deck.CardsFromString("Kh,As,2d,3c,4h")
	a.False(HasStraight(wrap))
	a.False(HasStraightFlush(deck.CardsFromString("Kh,Ah,2h,3h,4h")))
	a.True(HasFlush(deck.CardsFromString("Kh,Ah,2h,3h,4h")))

	a.True(HasHighCard(quads))
	a.True(HasHighCard(nil))
}

func TestValidateSize(t *testing.T) {
	assert.NoError(t, ValidateSize(deck.CardsFromString("Ah,Kh,Qh,Jh,Th")))
	assert.NoError(t, ValidateSize(deck.CardsFromString("Ah,Kh,Qh,Jh,Th,2c,3c")))

	err := ValidateSize(deck.CardsFromString("Ah,Kh,Qh,Jh"))
	assert.ErrorIs(t, err, ErrHandSize)
	assert.EqualError(t, err, "a hand must have between 5 and 7 cards: got 4")

	assert.ErrorIs(t, ValidateSize(deck.CardsFromString("Ah,Kh,Qh,Jh,Th,2c,3c,4c")), ErrHandSize)
}
