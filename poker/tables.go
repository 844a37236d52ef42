package poker

import (
	"math/bits"
	"sort"
)

// Packed layout of Hand.key and Hand.mask.
//
// key holds the rank-count key (base-5 sum of per-rank counts) in bits 0..31,
// and four 4-bit suit counters in bits 48..63, suit s at bits [48+4s, 51+4s],
// each biased to 3 so the nibble's top bit flips once a fifth card of the
// suit arrives.
//
// mask holds one 16-bit field per suit, suit s at bits [48-16s, 60-16s], low
// bit of each field the deuce. The reversed field order makes the flush-path
// shift (4 x leading zeros of the overflowed counter bit) land the flush
// suit's 13 rank bits at the bottom of the word.
const (
	suitShift   = 48
	handBias    = uint64(0x3333) << suitShift
	flushMask   = uint64(0x8888) << suitShift
	offsetShift = 15

	flushTableSize  = 1 << 13
	offsetTableSize = 1 << (32 - offsetShift)
)

// rankKeys is the per-card rank-count contribution: rank r adds 5^r to the low
// 32 bits of the key. A rank appears at most four times in a hand, so the sum
// is the base-5 encoding of the count vector and never collides. The largest
// legal key (four aces, three kings) is 4*5^12 + 3*5^11 < 2^31, well clear of
// the suit-counter region.
var rankKeys = [NumRanks]uint32{
	1, 5, 25, 125, 625, 3125, 15625, 78125,
	390625, 1953125, 9765625, 48828125, 244140625,
}

type cardEntry struct {
	key  uint64
	mask uint64
}

var cardTable = func() [NumCards]cardEntry {
	var t [NumCards]cardEntry
	for c := 0; c < NumCards; c++ {
		r, s := c/4, c%4
		t[c] = cardEntry{
			key:  uint64(rankKeys[r]) + 1<<(suitShift+4*s),
			mask: 1 << (16*(3-s) + r),
		}
	}
	return t
}()

// straightHigh returns the rank of the highest card of the best straight in a
// 13-bit rank-presence mask, or 0 if there is none. The wheel (A-5) reports 3,
// the rank of the five, and is only reported when no longer run exists.
func straightHigh(mask uint16) uint8 {
	const wheel = 0x100F // A,2,3,4,5

	seq := mask & (mask >> 1) & (mask >> 2) & (mask >> 3) & (mask >> 4)
	if seq != 0 {
		return uint8(bits.Len16(seq) + 3)
	}
	if mask&wheel == wheel {
		return 3
	}
	return 0
}

// straightIndex maps a straight's high rank to its ascending-strength index:
// wheel 0, six-high 1, ... ace-high 9.
func straightIndex(high uint8) uint16 {
	return uint16(high - 3)
}

func handRankOf(category HandCategory, index uint16) HandRank {
	return HandRank(category)<<12 | HandRank(index)
}

// highCardIndex maps every 13-bit mask with exactly five ranks set and no
// straight to its ascending-strength index among the 1277 distinct high-card
// (equivalently, flush) rank sets. The loops emit sets ordered by highest
// rank, then second highest, and so on, which is exactly lexicographic
// strength order.
var highCardIndex = func() [flushTableSize]uint16 {
	var t [flushTableSize]uint16
	var idx uint16
	for r1 := 4; r1 <= 12; r1++ {
		for r2 := 3; r2 < r1; r2++ {
			for r3 := 2; r3 < r2; r3++ {
				for r4 := 1; r4 < r3; r4++ {
					for r5 := 0; r5 < r4; r5++ {
						m := uint16(1<<r1 | 1<<r2 | 1<<r3 | 1<<r4 | 1<<r5)
						if straightHigh(m) != 0 {
							continue
						}
						t[m] = idx
						idx++
					}
				}
			}
		}
	}
	return t
}()

// topFiveMask clears the lowest set bits of a rank mask until five remain.
func topFiveMask(m uint16) uint16 {
	for bits.OnesCount16(m) > 5 {
		m &= m - 1
	}
	return m
}

// lookupFlush maps the 13-bit rank mask of a flush suit to its hand rank.
// A straight within the suit outranks any plain flush, so the straight-flush
// entries are resolved here rather than by a separate check in the hot path.
// Entries whose popcount is outside 5..7 are unreachable for legal hands and
// stay zero.
var lookupFlush = func() [flushTableSize]HandRank {
	var t [flushTableSize]HandRank
	for m := 0; m < flushTableSize; m++ {
		n := bits.OnesCount16(uint16(m))
		if n < 5 || n > 7 {
			continue
		}
		if high := straightHigh(uint16(m)); high != 0 {
			t[m] = handRankOf(StraightFlush, straightIndex(high))
			continue
		}
		t[m] = handRankOf(Flush, highCardIndex[topFiveMask(uint16(m))])
	}
	return t
}()

// walkRankCounts invokes fn with every per-rank count vector reachable by a
// legal 5-7 card hand (counts at most 4, total 5..7) and its rank-count key.
func walkRankCounts(fn func(counts *[NumRanks]uint8, key uint32)) {
	var counts [NumRanks]uint8
	var walk func(rank int, total uint8, key uint32)
	walk = func(rank int, total uint8, key uint32) {
		if rank == NumRanks {
			if total >= 5 {
				fn(&counts, key)
			}
			return
		}
		for c := uint8(0); c <= 4 && total+c <= 7; c++ {
			counts[rank] = c
			walk(rank+1, total+c, key+uint32(c)*rankKeys[rank])
		}
		counts[rank] = 0
	}
	walk(0, 0, 0)
}

// ordinalBelow returns rank's position among the thirteen ranks after the
// excluded ranks are removed, for indexing kickers within a category.
func ordinalBelow(rank int, excluded ...int) int {
	ord := rank
	for _, ex := range excluded {
		if ex < rank {
			ord--
		}
	}
	return ord
}

func highestRank(mask uint16) int {
	return bits.Len16(mask) - 1
}

// rankFromCounts ranks the best five-card hand of a rank-count multiset,
// ignoring flushes (hands with a flush never reach the non-flush path).
// Within each category the index counts distinct rank combinations in
// ascending strength order, matching the spacing of handRankOf:
// quads and full houses 13*12, trips 13*C(12,2), two pair C(13,2)*11,
// one pair 13*C(12,3), straights 10, high card 1277.
func rankFromCounts(counts *[NumRanks]uint8) HandRank {
	var presence uint16
	quad, trip1, trip2 := -1, -1, -1
	pair1, pair2 := -1, -1
	for r := NumRanks - 1; r >= 0; r-- {
		switch counts[r] {
		case 0:
			continue
		case 4:
			quad = r
		case 3:
			if trip1 < 0 {
				trip1 = r
			} else if trip2 < 0 {
				trip2 = r
			}
		case 2:
			if pair1 < 0 {
				pair1 = r
			} else if pair2 < 0 {
				pair2 = r
			}
		}
		presence |= 1 << r
	}

	if quad >= 0 {
		kicker := highestRank(presence &^ (1 << quad))
		return handRankOf(FourOfAKind, uint16(quad*12+ordinalBelow(kicker, quad)))
	}

	if trip1 >= 0 && (trip2 >= 0 || pair1 >= 0) {
		pair := trip2
		if pair1 > pair {
			pair = pair1
		}
		return handRankOf(FullHouse, uint16(trip1*12+ordinalBelow(pair, trip1)))
	}

	if high := straightHigh(presence); high != 0 {
		return handRankOf(Straight, straightIndex(high))
	}

	if trip1 >= 0 {
		rest := presence &^ (1 << trip1)
		k1 := highestRank(rest)
		k2 := highestRank(rest &^ (1 << k1))
		a, b := ordinalBelow(k1, trip1), ordinalBelow(k2, trip1)
		return handRankOf(ThreeOfAKind, uint16(trip1*66+a*(a-1)/2+b))
	}

	if pair2 >= 0 {
		kicker := highestRank(presence &^ (1<<pair1 | 1<<pair2))
		ord := ordinalBelow(kicker, pair1, pair2)
		return handRankOf(TwoPair, uint16((pair1*(pair1-1)/2+pair2)*11+ord))
	}

	if pair1 >= 0 {
		rest := presence &^ (1 << pair1)
		k1 := highestRank(rest)
		rest &^= 1 << k1
		k2 := highestRank(rest)
		k3 := highestRank(rest &^ (1 << k2))
		a := ordinalBelow(k1, pair1)
		b := ordinalBelow(k2, pair1)
		c := ordinalBelow(k3, pair1)
		return handRankOf(OnePair, uint16(pair1*220+a*(a-1)*(a-2)/6+b*(b-1)/2+c))
	}

	return handRankOf(HighCard, highCardIndex[topFiveMask(presence)])
}

type nonFlushTables struct {
	// offsets displaces each key row (key >> offsetShift) so that
	// key + offsets[key>>offsetShift] is injective over all legal keys.
	offsets []uint32
	// lookup holds the hand rank at each displaced slot.
	lookup []HandRank
}

var nonFlush = buildNonFlushTables()

// buildNonFlushTables enumerates all 73,775 legal rank-count keys, ranks each
// count multiset, and packs the keys into a first-fit displacement table.
// Rows are placed largest first so the table stays compact; offsets wrap in
// 32-bit arithmetic, mirroring the wrapping add in Evaluate.
func buildNonFlushTables() nonFlushTables {
	type keyedRank struct {
		key  uint32
		rank HandRank
	}

	rows := make(map[uint32][]keyedRank)
	walkRankCounts(func(counts *[NumRanks]uint8, key uint32) {
		row := key >> offsetShift
		rows[row] = append(rows[row], keyedRank{key, rankFromCounts(counts)})
	})

	order := make([]uint32, 0, len(rows))
	for row := range rows {
		order = append(order, row)
	}
	sort.Slice(order, func(i, j int) bool {
		a, b := order[i], order[j]
		if len(rows[a]) != len(rows[b]) {
			return len(rows[a]) > len(rows[b])
		}
		return a < b
	})

	t := nonFlushTables{offsets: make([]uint32, offsetTableSize)}
	var used []bool
	firstFree := 0

	for _, row := range order {
		entries := rows[row]
		sort.Slice(entries, func(i, j int) bool { return entries[i].key < entries[j].key })
		base := entries[0].key

		slot := firstFree
	scan:
		for {
			for _, e := range entries {
				pos := slot + int(e.key-base)
				if pos < len(used) && used[pos] {
					slot++
					continue scan
				}
			}
			break
		}

		for _, e := range entries {
			pos := slot + int(e.key-base)
			if pos >= len(used) {
				used = append(used, make([]bool, pos+1-len(used))...)
				t.lookup = append(t.lookup, make([]HandRank, pos+1-len(t.lookup))...)
			}
			used[pos] = true
			t.lookup[pos] = e.rank
		}
		t.offsets[row] = uint32(slot) - base

		for firstFree < len(used) && used[firstFree] {
			firstFree++
		}
	}

	return t
}
