// Package poker evaluates 5, 6, and 7 card poker hands in constant time.
//
// A Hand is a pair of packed 64-bit words updated incrementally as cards are
// added. Evaluating a hand costs one branch and one or two table lookups; the
// lookup tables are built once at package load and never mutated, so hands
// and ranks can be used freely from any number of goroutines.
package poker

import "fmt"

// Rank is a card face value, Two (0) through Ace (12).
type Rank uint8

const (
	Two Rank = iota
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

// Suit is one of the four card suits. The ordering follows the text notation
// (s, h, c, d), so card id 0 is the deuce of spades.
type Suit uint8

const (
	Spades Suit = iota
	Hearts
	Clubs
	Diamonds
)

const (
	NumCards = 52
	NumRanks = 13
	NumSuits = 4
)

// Card identifies one of the 52 cards as rank*4 + suit.
type Card uint8

// NewCard creates a card from a rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card(uint8(rank)*4 + uint8(suit))
}

// Rank returns the card's face value.
func (c Card) Rank() Rank {
	return Rank(c / 4)
}

// Suit returns the card's suit.
func (c Card) Suit() Suit {
	return Suit(c % 4)
}

var (
	rankChars = [NumRanks]byte{'2', '3', '4', '5', '6', '7', '8', '9', 'T', 'J', 'Q', 'K', 'A'}
	suitChars = [NumSuits]byte{'s', 'h', 'c', 'd'}
)

// String returns the two-character notation for the card, e.g. "As" or "2c".
func (c Card) String() string {
	if c >= NumCards {
		return fmt.Sprintf("Card(%d)", uint8(c))
	}
	return string([]byte{rankChars[c.Rank()], suitChars[c.Suit()]})
}

// ParseCard parses a single two-character card token such as "As" or "td".
func ParseCard(s string) (Card, error) {
	runes := []rune(s)
	if len(runes) == 0 {
		return 0, &ParseError{Expected: "rank", EOF: true}
	}
	rank, ok := rankFromChar(runes[0])
	if !ok {
		return 0, &ParseError{Expected: "rank", Got: runes[0]}
	}
	if len(runes) < 2 {
		return 0, &ParseError{Expected: "suit", EOF: true}
	}
	suit, ok := suitFromChar(runes[1])
	if !ok {
		return 0, &ParseError{Expected: "suit", Got: runes[1]}
	}
	if len(runes) > 2 {
		return 0, fmt.Errorf("trailing input after card: %q", string(runes[2:]))
	}
	return NewCard(rank, suit), nil
}

func rankFromChar(ch rune) (Rank, bool) {
	switch ch {
	case '2', '3', '4', '5', '6', '7', '8', '9':
		return Rank(ch - '2'), true
	case 'T', 't':
		return Ten, true
	case 'J', 'j':
		return Jack, true
	case 'Q', 'q':
		return Queen, true
	case 'K', 'k':
		return King, true
	case 'A', 'a':
		return Ace, true
	}
	return 0, false
}

func suitFromChar(ch rune) (Suit, bool) {
	switch ch {
	case 's', 'S':
		return Spades, true
	case 'h', 'H':
		return Hearts, true
	case 'c', 'C':
		return Clubs, true
	case 'd', 'D':
		return Diamonds, true
	}
	return 0, false
}
