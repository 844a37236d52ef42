package poker

import (
	"math/bits"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Every legal rank-count multiset must map to a distinct low-32-bit key; the
// non-flush perfect hash assumes it.
func TestRankKeysInjective(t *testing.T) {
	t.Parallel()

	seen := make(map[uint32][NumRanks]uint8)
	total := 0
	walkRankCounts(func(counts *[NumRanks]uint8, key uint32) {
		if prev, ok := seen[key]; ok {
			t.Fatalf("key %d shared by counts %v and %v", key, prev, *counts)
		}
		seen[key] = *counts
		total++
	})

	// #{sum=5} + #{sum=6} + #{sum=7} count vectors with per-rank cap 4
	assert.Equal(t, 73775, total)
}

// The displacement table must place every legal key in its own slot, and the
// slot must hold the rank of that key's count multiset.
func TestNonFlushHashPerfect(t *testing.T) {
	t.Parallel()

	hit := make(map[uint32]bool)
	walkRankCounts(func(counts *[NumRanks]uint8, key uint32) {
		slot := key + nonFlush.offsets[key>>offsetShift]
		require.Less(t, int(slot), len(nonFlush.lookup))
		require.False(t, hit[slot], "slot %d reused", slot)
		hit[slot] = true
		require.Equal(t, rankFromCounts(counts), nonFlush.lookup[slot])
	})
}

func TestFlushTableOrdering(t *testing.T) {
	t.Parallel()

	var maxFlush, minStraightFlush HandRank = 0, 0xFFFF
	flushes, straightFlushes := 0, 0
	for m := 0; m < flushTableSize; m++ {
		n := bits.OnesCount16(uint16(m))
		if n < 5 || n > 7 {
			continue
		}
		rank := lookupFlush[m]
		switch rank.Category() {
		case StraightFlush:
			straightFlushes++
			if rank < minStraightFlush {
				minStraightFlush = rank
			}
		case Flush:
			flushes++
			if rank > maxFlush {
				maxFlush = rank
			}
		default:
			t.Fatalf("mask %#04x ranked as %s", m, rank.Category())
		}
	}

	assert.Greater(t, minStraightFlush, maxFlush)
	assert.NotZero(t, flushes)
	assert.NotZero(t, straightFlushes)
}

func TestStraightHigh(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mask uint16
		want uint8
	}{
		{"broadway", 0x1F00, 12},
		{"wheel", 0x100F, 3},
		{"six high", 0x001F, 4},
		{"no straight", 0x1555, 0},
		{"gap at four", 0x08EF, 0},
		{"wheel with gap above", 0x10EF, 3},
		{"six high beats wheel", 0x101F, 4},
		{"seven card run", 0x007F, 6},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, straightHigh(tt.mask))
		})
	}
}

func TestHighCardIndexBounds(t *testing.T) {
	t.Parallel()

	// Weakest and strongest non-straight five-rank sets:
	// 7-5-4-3-2 and A-K-Q-J-9.
	weakest := uint16(1<<5 | 1<<3 | 1<<2 | 1<<1 | 1<<0)
	strongest := uint16(1<<12 | 1<<11 | 1<<10 | 1<<9 | 1<<7)

	assert.Equal(t, uint16(0), highCardIndex[weakest])
	assert.Equal(t, uint16(1276), highCardIndex[strongest])
}

func TestCardTableLayout(t *testing.T) {
	t.Parallel()

	// Unique single-bit masks, grouped sixteen bits per suit.
	seen := make(map[uint64]bool)
	for c := 0; c < NumCards; c++ {
		e := cardTable[c]
		require.Equal(t, 1, bits.OnesCount64(e.mask), "card %d", c)
		require.False(t, seen[e.mask], "card %d mask reused", c)
		seen[e.mask] = true
	}

	// Five cards of one suit set that suit's overflow bit; four do not.
	four := FromCards(0, 4, 8, 12) // 2s 3s 4s 5s
	assert.Zero(t, four.key&flushMask)
	five := four.AddCard(24) // + 8s
	assert.NotZero(t, five.key&flushMask)
}
