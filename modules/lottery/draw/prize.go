package draw

import (
	"github.com/cockroachdb/errors"
	"github.com/solotto/draw-engine/common/errs"
	"github.com/solotto/draw-engine/modules/lottery/numberset"
)

// Tier names the prize for one match count.
type Tier struct {
	Matches int    `mapstructure:"matches" json:"matches"`
	Name    string `mapstructure:"name" json:"name"`
	Value   string `mapstructure:"value" json:"value"`
}

// PrizeTable maps a match count to its prize tier. A valid table covers every
// match count from 1 to numberset.Size exactly once; zero matches means no
// prize and never appears in the table.
type PrizeTable map[int]Tier

// NewPrizeTable validates tiers exhaustively at construction so an unmapped
// match count is a startup error, not a silent fallthrough at draw time.
func NewPrizeTable(tiers []Tier) (PrizeTable, error) {
	table := make(PrizeTable, numberset.Size)
	for _, tier := range tiers {
		if tier.Matches < 1 || tier.Matches > numberset.Size {
			return nil, errors.Wrapf(errs.InvalidArgument, "prize tier match count must be in [1, %d], got %d", numberset.Size, tier.Matches)
		}
		if _, ok := table[tier.Matches]; ok {
			return nil, errors.Wrapf(errs.InvalidArgument, "duplicate prize tier for %d matches", tier.Matches)
		}
		if tier.Name == "" {
			return nil, errors.Wrapf(errs.InvalidArgument, "prize tier for %d matches has no name", tier.Matches)
		}
		table[tier.Matches] = tier
	}
	for matches := 1; matches <= numberset.Size; matches++ {
		if _, ok := table[matches]; !ok {
			return nil, errors.Wrapf(errs.InvalidArgument, "prize table has no tier for %d matches", matches)
		}
	}
	return table, nil
}

// ForMatches returns the tier for a match count. ok is false for zero
// matches (no prize).
func (t PrizeTable) ForMatches(matches int) (Tier, bool) {
	tier, ok := t[matches]
	return tier, ok
}

// DefaultTiers is the stock prize ladder.
func DefaultTiers() []Tier {
	return []Tier{
		{Matches: 5, Name: "Jackpot - Ferrari 488", Value: "$250,000"},
		{Matches: 4, Name: "Second Prize - Mercedes AMG", Value: "$150,000"},
		{Matches: 3, Name: "Third Prize - Cash Prize", Value: "$50,000"},
		{Matches: 2, Name: "Fourth Prize - Dream Vacation", Value: "$25,000"},
		{Matches: 1, Name: "Fifth Prize - Rolex Submariner", Value: "$15,000"},
	}
}
