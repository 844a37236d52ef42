package poker

import (
	"fmt"
	"math/bits"
)

// HandRank is a 16-bit hand strength code: the top four bits hold the
// HandCategory and the low twelve bits an ascending index within the
// category, so plain integer comparison orders overall hand strength.
type HandRank uint16

// Category returns the hand's category.
func (hr HandRank) Category() HandCategory {
	return CategoryOf(hr)
}

// Index returns the hand's ascending-strength index within its category.
func (hr HandRank) Index() uint16 {
	return uint16(hr) & 0xFFF
}

// String returns the category name, e.g. "Full House".
func (hr HandRank) String() string {
	return hr.Category().String()
}

// HandCategory enumerates the nine poker hand classes in ascending strength.
type HandCategory uint8

const (
	HighCard HandCategory = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

var categoryNames = [...]string{
	"High Card",
	"One Pair",
	"Two Pair",
	"Three of a Kind",
	"Straight",
	"Flush",
	"Full House",
	"Four of a Kind",
	"Straight Flush",
}

// String returns a human-readable category name.
func (c HandCategory) String() string {
	if int(c) >= len(categoryNames) {
		return "Unknown"
	}
	return categoryNames[c]
}

// CategoryOf extracts the category from a rank code. A category field above
// StraightFlush cannot come out of correct tables, so it panics rather than
// being mapped to anything.
func CategoryOf(rank HandRank) HandCategory {
	c := HandCategory(rank >> 12)
	if c > StraightFlush {
		panic(fmt.Sprintf("poker: invalid hand rank %#04x", uint16(rank)))
	}
	return c
}

// Evaluate returns the strength of the best five-card hand. The hand must
// hold 5 to 7 distinct cards; the result is garbage otherwise (no check is
// performed, see the Hand contract).
//
// A suit counter overflows its top bit once five cards of the suit are
// present, and at most one suit can reach five cards in seven, so the flush
// branch resolves with a single lookup keyed by that suit's rank bits. All
// other hands depend only on rank counts: the low 32 bits of key feed a
// two-level displacement table, with wrapping 32-bit arithmetic matching the
// wrap used when the offsets were packed.
func (h Hand) Evaluate() HandRank {
	if signal := h.key & flushMask; signal != 0 {
		flushKey := uint16(h.mask >> (4 * bits.LeadingZeros64(signal)))
		return lookupFlush[flushKey]
	}
	rankKey := uint32(h.key)
	return nonFlush.lookup[rankKey+nonFlush.offsets[rankKey>>offsetShift]]
}
