package poker

import (
	"encoding/json"
	"fmt"
)

// Category is a poker hand category, i.e., royal flush
type Category int

// Constants for category, weakest first
const (
	HighCard Category = iota + 1
	Pair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
	RoyalFlush
)

// String returns the string representation of a category
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High card"
	case Pair:
		return "Pair"
	case TwoPair:
		return "Two pair"
	case ThreeOfAKind:
		return "Three of a kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full house"
	case FourOfAKind:
		return "Four of a kind"
	case StraightFlush:
		return "Straight flush"
	case RoyalFlush:
		return "Royal flush"
	default:
		panic(fmt.Sprintf("unknown category: %d", c))
	}
}

// primaryCount is how many cards define the category
func (c Category) primaryCount() int {
	switch c {
	case FourOfAKind, TwoPair:
		return 4
	case ThreeOfAKind:
		return 3
	case Pair:
		return 2
	default:
		return 5
	}
}

// MarshalJSON encodes the category as its name
func (c Category) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}
