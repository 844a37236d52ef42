package poker

import (
	"fmt"
	"math/bits"
	"strings"
)

// Hand is a multiset of cards packed into two 64-bit words: key carries the
// four biased suit counters and the rank-count key, mask carries one bit per
// card grouped by suit (see tables.go for the exact layout). Hands are small
// immutable values; every method returns a new Hand.
//
// A Hand only ranks meaningfully with 5 to 7 distinct cards. Adding a card
// twice, removing an absent card, or merging overlapping hands is not
// detected and produces garbage; callers own those invariants, keeping the
// accumulator free of checks on the hot path.
type Hand struct {
	key  uint64
	mask uint64
}

// NewHand returns the empty hand.
func NewHand() Hand {
	return Hand{key: handBias}
}

// FromCards builds a hand from distinct cards.
func FromCards(cards ...Card) Hand {
	h := NewHand()
	for _, c := range cards {
		h = h.AddCard(c)
	}
	return h
}

// AddCard returns the hand with card added. The card must not already be
// present.
func (h Hand) AddCard(card Card) Hand {
	e := cardTable[card]
	return Hand{key: h.key + e.key, mask: h.mask + e.mask}
}

// RemoveCard returns the hand with card removed. The card must be present.
func (h Hand) RemoveCard(card Card) Hand {
	e := cardTable[card]
	return Hand{key: h.key - e.key, mask: h.mask - e.mask}
}

// Merge combines two disjoint hands, e.g. hole cards and a board. Both inputs
// carry one copy of the suit-counter bias, so one copy is subtracted back out.
func (h Hand) Merge(other Hand) Hand {
	return Hand{key: h.key + other.key - handBias, mask: h.mask + other.mask}
}

// Contains reports whether the card is in the hand.
func (h Hand) Contains(card Card) bool {
	return h.mask&cardTable[card].mask != 0
}

// Len returns the number of cards in the hand.
func (h Hand) Len() int {
	return bits.OnesCount64(h.mask)
}

// IsEmpty reports whether the hand has no cards.
func (h Hand) IsEmpty() bool {
	return h.mask == 0
}

// Mask returns the packed card bitmask.
func (h Hand) Mask() uint64 {
	return h.mask
}

// Cards returns the cards in the hand in card-id order.
func (h Hand) Cards() []Card {
	cards := make([]Card, 0, h.Len())
	for c := Card(0); c < NumCards; c++ {
		if h.Contains(c) {
			cards = append(cards, c)
		}
	}
	return cards
}

// String returns the hand in compact notation, e.g. "2s3h3d".
func (h Hand) String() string {
	var sb strings.Builder
	for _, c := range h.Cards() {
		sb.WriteString(c.String())
	}
	return sb.String()
}

// ParseError describes the first malformed character in a hand string.
type ParseError struct {
	Expected string // "rank" or "suit"
	Got      rune   // offending character; ignored when EOF is set
	EOF      bool
}

func (e *ParseError) Error() string {
	if e.EOF {
		return fmt.Sprintf("expected %s character, but got EOF", e.Expected)
	}
	return fmt.Sprintf("expected %s character, but got '%c'", e.Expected, e.Got)
}

// ParseHand parses concatenated two-character card tokens ("AsKsQsJsTs") into
// a hand. An empty string parses to the empty hand. The parser performs no
// duplicate or cardinality validation.
func ParseHand(s string) (Hand, error) {
	h := NewHand()
	runes := []rune(s)
	for i := 0; i < len(runes); i += 2 {
		rank, ok := rankFromChar(runes[i])
		if !ok {
			return Hand{}, &ParseError{Expected: "rank", Got: runes[i]}
		}
		if i+1 >= len(runes) {
			return Hand{}, &ParseError{Expected: "suit", EOF: true}
		}
		suit, ok := suitFromChar(runes[i+1])
		if !ok {
			return Hand{}, &ParseError{Expected: "suit", Got: runes[i+1]}
		}
		h = h.AddCard(NewCard(rank, suit))
	}
	return h, nil
}

// MustParseHand parses a hand and panics on error.
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("poker: parsing %q: %v", s, err))
	}
	return h
}
