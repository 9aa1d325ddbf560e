package draw

import (
	"testing"

	"github.com/solotto/draw-engine/common/errs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrizeTable(t *testing.T) {
	t.Run("stock ladder is valid and exhaustive", func(t *testing.T) {
		table, err := NewPrizeTable(DefaultTiers())
		require.NoError(t, err)

		for matches := 1; matches <= 5; matches++ {
			tier, ok := table.ForMatches(matches)
			assert.True(t, ok, "missing tier for %d matches", matches)
			assert.NotEmpty(t, tier.Name)
		}

		jackpot, ok := table.ForMatches(5)
		require.True(t, ok)
		assert.Equal(t, "Jackpot - Ferrari 488", jackpot.Name)
		assert.Equal(t, "$250,000", jackpot.Value)
	})

	t.Run("zero matches has no prize", func(t *testing.T) {
		table, err := NewPrizeTable(DefaultTiers())
		require.NoError(t, err)

		_, ok := table.ForMatches(0)
		assert.False(t, ok)
	})

	type testcase struct {
		name  string
		tiers []Tier
	}
	testcases := []testcase{
		{
			name: "missing tier",
			tiers: []Tier{
				{Matches: 5, Name: "Jackpot", Value: "$1"},
				{Matches: 4, Name: "Second", Value: "$1"},
				{Matches: 3, Name: "Third", Value: "$1"},
				{Matches: 2, Name: "Fourth", Value: "$1"},
			},
		},
		{
			name:  "duplicate tier",
			tiers: append(DefaultTiers(), Tier{Matches: 5, Name: "Another Jackpot", Value: "$2"}),
		},
		{
			name:  "match count out of range",
			tiers: append(DefaultTiers(), Tier{Matches: 6, Name: "Impossible", Value: "$2"}),
		},
		{
			name:  "zero match tier not allowed",
			tiers: append(DefaultTiers(), Tier{Matches: 0, Name: "Consolation", Value: "$2"}),
		},
		{
			name: "unnamed tier",
			tiers: []Tier{
				{Matches: 5, Name: "", Value: "$1"},
				{Matches: 4, Name: "Second", Value: "$1"},
				{Matches: 3, Name: "Third", Value: "$1"},
				{Matches: 2, Name: "Fourth", Value: "$1"},
				{Matches: 1, Name: "Fifth", Value: "$1"},
			},
		},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewPrizeTable(tc.tiers)
			require.Error(t, err)
			assert.ErrorIs(t, err, errs.InvalidArgument)
		})
	}
}
