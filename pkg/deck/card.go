package deck

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCard is the error wrapped by every ParseError
var ErrInvalidCard = errors.New("invalid card")

// Suit represents a card suit
type Suit string

// suit constants
const (
	Hearts   Suit = "hearts"
	Diamonds Suit = "diamonds"
	Clubs    Suit = "clubs"
	Spades   Suit = "spades"
)

// Suits lists every suit
var Suits = []Suit{Hearts, Diamonds, Clubs, Spades}

// Rank is the value of a card, Ace high
type Rank int

// rank constants
const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// Ranks lists every rank, lowest first
var Ranks = []Rank{Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten, Jack, Queen, King, Ace}

const rankChars = "23456789TJQKA"

// Card is an individual playing card
// Cards are values and are never mutated after construction
type Card struct {
	Rank Rank
	Suit Suit
}

// NewCard returns a card of the given suit and rank
func NewCard(suit Suit, rank Rank) Card {
	return Card{Rank: rank, Suit: suit}
}

// ParseError is returned when a card code cannot be parsed
type ParseError struct {
	Input  string
	Reason string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("could not parse card %q: %s", e.Input, e.Reason)
}

// Unwrap allows errors.Is(err, ErrInvalidCard)
func (e *ParseError) Unwrap() error {
	return ErrInvalidCard
}

// ParseCard returns a Card from its two character code, i.e., "Ah" or "Tc"
// The rank must be one of 23456789TJQKA and the suit one of hdcs. Both are case-insensitive.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 {
		return Card{}, &ParseError{Input: s, Reason: "expected two characters"}
	}

	rank, ok := RankFromChar(s[0])
	if !ok {
		return Card{}, &ParseError{Input: s, Reason: fmt.Sprintf("unknown rank %q", s[0])}
	}

	suit, ok := SuitFromChar(s[1])
	if !ok {
		return Card{}, &ParseError{Input: s, Reason: fmt.Sprintf("unknown suit %q", s[1])}
	}

	return Card{Rank: rank, Suit: suit}, nil
}

// ParseCards parses each code into a card
func ParseCards(codes ...string) ([]Card, error) {
	cards := make([]Card, len(codes))
	for i, code := range codes {
		card, err := ParseCard(code)
		if err != nil {
			return nil, err
		}

		cards[i] = card
	}

	return cards, nil
}

// MustParseCard is like ParseCard, but panics if the code is invalid
func MustParseCard(s string) Card {
	card, err := ParseCard(s)
	if err != nil {
		panic(err)
	}

	return card
}

// CardsFromString returns a slice of cards from a string in the format of Ah,Kh,Qh
// Whitespace around each code is ignored. This panics on an invalid card and is
// meant for fixtures; use ParseCards for user input.
func CardsFromString(s string) []Card {
	if s == "" {
		return []Card{}
	}

	cardStrings := strings.Split(s, ",")
	cards := make([]Card, len(cardStrings))
	for i, card := range cardStrings {
		cards[i] = MustParseCard(strings.TrimSpace(card))
	}

	return cards
}

// RankFromChar returns the rank for a rank character
func RankFromChar(c byte) (Rank, bool) {
	i := strings.IndexByte(rankChars, toUpper(c))
	if i < 0 {
		return 0, false
	}

	return Rank(i + 2), true
}

// SuitFromChar returns the suit for a suit character
func SuitFromChar(c byte) (Suit, bool) {
	switch toUpper(c) {
	case 'H':
		return Hearts, true
	case 'D':
		return Diamonds, true
	case 'C':
		return Clubs, true
	case 'S':
		return Spades, true
	}

	return "", false
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - 'a' + 'A'
	}

	return c
}

// Char returns the single character used for the rank in card codes
func (r Rank) Char() string {
	if r < Two || r > Ace {
		return "?"
	}

	return string(rankChars[r-Two])
}

// String returns the name of the rank, i.e., "king"
func (r Rank) String() string {
	switch r {
	case Two:
		return "two"
	case Three:
		return "three"
	case Four:
		return "four"
	case Five:
		return "five"
	case Six:
		return "six"
	case Seven:
		return "seven"
	case Eight:
		return "eight"
	case Nine:
		return "nine"
	case Ten:
		return "ten"
	case Jack:
		return "jack"
	case Queen:
		return "queen"
	case King:
		return "king"
	case Ace:
		return "ace"
	default:
		return fmt.Sprintf("rank(%d)", int(r))
	}
}

// Plural returns the plural name of the rank, i.e., "sixes"
func (r Rank) Plural() string {
	if r == Six {
		return "sixes"
	}

	return r.String() + "s"
}

// Char returns the single character used for the suit in card codes
func (s Suit) Char() string {
	switch s {
	case Hearts:
		return "h"
	case Diamonds:
		return "d"
	case Clubs:
		return "c"
	case Spades:
		return "s"
	default:
		return "?"
	}
}

// Symbol returns the unicode symbol for the suit
func (s Suit) Symbol() string {
	switch s {
	case Hearts:
		return "♡"
	case Diamonds:
		return "♢"
	case Clubs:
		return "♣"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// String returns the two character code of the card, i.e., "Ah"
func (c Card) String() string {
	return c.Rank.Char() + c.Suit.Char()
}

// Symbol returns a display form of the card, i.e., "A♡"
func (c Card) Symbol() string {
	return c.Rank.Char() + c.Suit.Symbol()
}

// Equal returns true if the cards are equal (matches suit and rank)
func (c Card) Equal(card Card) bool {
	return c.Suit == card.Suit && c.Rank == card.Rank
}

// Compare orders two cards by rank only
func (c Card) Compare(card Card) int {
	switch {
	case c.Rank < card.Rank:
		return -1
	case c.Rank > card.Rank:
		return 1
	default:
		return 0
	}
}

// MarshalText encodes the card as its two character code
func (c Card) MarshalText() ([]byte, error) {
	if c.Rank < Two || c.Rank > Ace || c.Suit.Char() == "?" {
		return nil, fmt.Errorf("cannot marshal card %d/%s: %w", int(c.Rank), c.Suit, ErrInvalidCard)
	}

	return []byte(c.String()), nil
}

// UnmarshalText decodes a two character code
func (c *Card) UnmarshalText(text []byte) error {
	card, err := ParseCard(string(text))
	if err != nil {
		return err
	}

	*c = card
	return nil
}

// ParseHand parses a hand written as card codes, i.e., "Ah,Kh,Qh", "Ah Kh Qh" or "AhKhQh"
func ParseHand(s string) ([]Card, error) {
	fields := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t'
	})

	codes := make([]string, 0, len(fields))
	for _, field := range fields {
		runes := []rune(field)
		if len(runes) <= 2 {
			codes = append(codes, field)
			continue
		}

		if len(runes)%2 != 0 {
			return nil, &ParseError{Input: field, Reason: "expected pairs of rank and suit characters"}
		}

		// split on runes so a stray symbol is reported whole
		for i := 0; i < len(runes); i += 2 {
			codes = append(codes, string(runes[i:i+2]))
		}
	}

	return ParseCards(codes...)
}
