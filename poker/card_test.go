package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardRoundTrip(t *testing.T) {
	t.Parallel()

	for c := Card(0); c < NumCards; c++ {
		parsed, err := ParseCard(c.String())
		require.NoError(t, err, "card %d", c)
		assert.Equal(t, c, parsed)
		assert.Equal(t, c, NewCard(c.Rank(), c.Suit()))
	}
}

func TestParseCard(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  Card
	}{
		{"2s", NewCard(Two, Spades)},
		{"As", NewCard(Ace, Spades)},
		{"Td", NewCard(Ten, Diamonds)},
		{"td", NewCard(Ten, Diamonds)},
		{"kH", NewCard(King, Hearts)},
		{"9c", NewCard(Nine, Clubs)},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseCard(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCardErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		input string
		want  string
	}{
		{"", "expected rank character, but got EOF"},
		{"A", "expected suit character, but got EOF"},
		{"1s", "expected rank character, but got '1'"},
		{"Ax", "expected suit character, but got 'x'"},
		{"Asd", `trailing input after card: "d"`},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := ParseCard(tt.input)
			require.Error(t, err)
			assert.EqualError(t, err, tt.want)
		})
	}
}

func TestCardString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "2s", Card(0).String())
	assert.Equal(t, "2d", Card(3).String())
	assert.Equal(t, "As", NewCard(Ace, Spades).String())
	assert.Equal(t, "Ad", Card(51).String())
	assert.Equal(t, "Card(52)", Card(52).String())
}
