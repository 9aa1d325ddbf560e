// Package draw implements the draw and settlement engine: deterministic
// winning-number derivation from an external entropy seed, ticket scoring,
// and prize assignment.
package draw

import (
	"slices"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
	"github.com/solotto/draw-engine/modules/lottery/numberset"
	"github.com/solotto/draw-engine/modules/lottery/tickethash"
)

// Linear congruential generator parameters. These are published alongside the
// entropy seed: anyone can re-run the derivation and verify the winning
// numbers, which is the fairness property the whole system exists for.
// Changing them invalidates every published draw.
const (
	seedPrefixLen = 16

	lcgMultiplier = 9301
	lcgIncrement  = 49297
	lcgModulus    = 233280
)

// DeriveWinningNumbers deterministically derives the winning set from an
// entropy seed (a block hash). The numeric seed is the first 16 characters of
// the seed string read as base-16; a malformed or empty seed degenerates to
// seed 0 rather than failing, since a draw has no safe retry path once its
// entropy block is fixed.
func DeriveWinningNumbers(entropySeed string) numberset.NumberSet {
	prefix := entropySeed
	if len(prefix) > seedPrefixLen {
		prefix = prefix[:seedPrefixLen]
	}
	seed, err := strconv.ParseUint(prefix, 16, 64)
	if err != nil {
		seed = 0
	}
	seed %= lcgModulus

	picked := make([]int32, 0, numberset.Size)
	for len(picked) < numberset.Size {
		seed = (seed*lcgMultiplier + lcgIncrement) % lcgModulus
		candidate := int32(seed*(numberset.Max-numberset.Min+1)/lcgModulus) + numberset.Min
		if !slices.Contains(picked, candidate) {
			picked = append(picked, candidate)
		}
	}
	slices.Sort(picked)

	var winning numberset.NumberSet
	copy(winning[:], picked)
	return winning
}

// Engine scores a ticket ledger snapshot against derived winning numbers.
// It performs no I/O and never mutates its inputs; Conduct is a pure function
// of (seed, snapshot, unit price, draw time).
type Engine struct {
	hasher tickethash.Hasher
	prizes PrizeTable
}

func NewEngine(hasher tickethash.Hasher, prizes PrizeTable) *Engine {
	return &Engine{
		hasher: hasher,
		prizes: prizes,
	}
}

// Conduct runs a full draw over the given ledger snapshot. It cannot fail for
// any seed string: see DeriveWinningNumbers for the degenerate-seed behavior.
func (e *Engine) Conduct(entropySeed string, tickets []*entity.Ticket, unitPrice decimal.Decimal, drawTime time.Time) *entity.DrawResult {
	winning := DeriveWinningNumbers(entropySeed)

	winners := make([]entity.WinnerRecord, 0)
	var totalSold int64
	for _, ticket := range tickets {
		// quantity-weighted: a ticket with quantity 5 contributes 5
		totalSold += int64(ticket.Quantity)

		matches := ticket.Numbers.MatchCount(winning)
		if matches == 0 {
			continue
		}
		tier, ok := e.prizes.ForMatches(matches)
		if !ok {
			continue
		}
		winners = append(winners, entity.WinnerRecord{
			TicketFingerprint: ticket.Fingerprint,
			Buyer:             ticket.Buyer,
			Numbers:           ticket.Numbers,
			MatchCount:        matches,
			Prize:             tier.Name,
			PrizeValue:        tier.Value,
		})
	}

	timestamp := drawTime.UnixMilli()
	return &entity.DrawResult{
		ResultFingerprint: e.hasher.Fingerprint(winning, entropySeed, timestamp),
		WinningNumbers:    winning,
		EntropySeed:       entropySeed,
		DrawTimestamp:     timestamp,
		TotalTicketsSold:  totalSold,
		TotalPrizePool:    unitPrice.Mul(decimal.NewFromInt(totalSold)),
		Winners:           winners,
	}
}
