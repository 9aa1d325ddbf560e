package draw

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
	"github.com/solotto/draw-engine/modules/lottery/numberset"
	"github.com/solotto/draw-engine/modules/lottery/tickethash"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = "4a5b6c7d8e9f0a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293"

func TestDeriveWinningNumbers(t *testing.T) {
	t.Run("known seed", func(t *testing.T) {
		winning := DeriveWinningNumbers(testSeed)
		assert.Equal(t, numberset.NumberSet{2, 23, 29, 38, 45}, winning)
	})

	t.Run("degenerate seeds all derive the zero-seed set", func(t *testing.T) {
		// Block hashes with 16+ leading zero characters parse to zero, the
		// same value malformed seeds degenerate to.
		zeroSet := numberset.NumberSet{11, 27, 35, 37, 41}
		seeds := []string{
			"",
			"not-a-hex-seed!!",
			"000000000000000000028d37a9f3e2b1c4d5e6f7a8b9c0d1e2f3a4b5c6d7e8f9",
			"00000000000000000002c0cc73626b56fb3ee1ce605b0ce125cc4fb58775a0a9",
		}
		for _, seed := range seeds {
			assert.Equal(t, zeroSet, DeriveWinningNumbers(seed), "seed %q", seed)
		}
	})

	t.Run("always five distinct sorted numbers in range", func(t *testing.T) {
		seeds := []string{testSeed, "ff", "deadbeefdeadbeef", "0123456789abcdef0123456789abcdef"}
		for _, seed := range seeds {
			winning := DeriveWinningNumbers(seed)
			seen := make(map[int32]struct{})
			var prev int32
			for i, n := range winning.Slice() {
				assert.GreaterOrEqual(t, n, int32(numberset.Min))
				assert.LessOrEqual(t, n, int32(numberset.Max))
				if i > 0 {
					assert.Greater(t, n, prev, "numbers must be sorted ascending")
				}
				prev = n
				seen[n] = struct{}{}
			}
			assert.Len(t, seen, numberset.Size)
		}
	})

	t.Run("deterministic", func(t *testing.T) {
		assert.Equal(t, DeriveWinningNumbers(testSeed), DeriveWinningNumbers(testSeed))
	})
}

func newTestEngine(t *testing.T) *Engine {
	t.Helper()
	prizes, err := NewPrizeTable(DefaultTiers())
	require.NoError(t, err)
	return NewEngine(tickethash.New(), prizes)
}

func testTicket(numbers numberset.NumberSet, quantity int32, buyer string) *entity.Ticket {
	return &entity.Ticket{
		Fingerprint:       tickethash.New().Fingerprint(numbers, buyer, 1000),
		Numbers:           numbers,
		Quantity:          quantity,
		Buyer:             buyer,
		PurchaseTimestamp: 1000,
		PaymentReference:  entity.PendingPaymentReference,
	}
}

func TestConduct(t *testing.T) {
	engine := newTestEngine(t)
	unitPrice := decimal.RequireFromString("0.01")
	drawTime := time.UnixMilli(1700000000000)

	tickets := []*entity.Ticket{
		// 2 matches, 0 matches, 5 matches against the derived winning set
		testTicket(numberset.NumberSet{2, 23, 1, 3, 4}, 3, "buyerA"),
		testTicket(numberset.NumberSet{10, 11, 12, 13, 14}, 7, "buyerB"),
		testTicket(numberset.NumberSet{45, 38, 29, 23, 2}, 1, "buyerC"),
	}

	result := engine.Conduct(testSeed, tickets, unitPrice, drawTime)

	t.Run("winning numbers and metadata", func(t *testing.T) {
		assert.Equal(t, numberset.NumberSet{2, 23, 29, 38, 45}, result.WinningNumbers)
		assert.Equal(t, testSeed, result.EntropySeed)
		assert.Equal(t, int64(1700000000000), result.DrawTimestamp)
		assert.Equal(t, "3a8d958e", result.ResultFingerprint)
	})

	t.Run("quantity-weighted totals", func(t *testing.T) {
		assert.Equal(t, int64(11), result.TotalTicketsSold)
		assert.True(t, result.TotalPrizePool.Equal(decimal.RequireFromString("0.11")),
			"expected 0.11, got %s", result.TotalPrizePool)
	})

	t.Run("winners", func(t *testing.T) {
		require.Len(t, result.Winners, 2)

		assert.Equal(t, "buyerA", result.Winners[0].Buyer)
		assert.Equal(t, 2, result.Winners[0].MatchCount)
		assert.Equal(t, "Fourth Prize - Dream Vacation", result.Winners[0].Prize)
		assert.Equal(t, "$25,000", result.Winners[0].PrizeValue)

		assert.Equal(t, "buyerC", result.Winners[1].Buyer)
		assert.Equal(t, 5, result.Winners[1].MatchCount)
		assert.Equal(t, "Jackpot - Ferrari 488", result.Winners[1].Prize)
	})

	t.Run("deterministic for same inputs", func(t *testing.T) {
		again := engine.Conduct(testSeed, tickets, unitPrice, drawTime)
		assert.Equal(t, result, again)
	})
}

func TestConductEmptyLedger(t *testing.T) {
	engine := newTestEngine(t)

	result := engine.Conduct(testSeed, nil, decimal.RequireFromString("0.01"), time.UnixMilli(1000))

	assert.Equal(t, int64(0), result.TotalTicketsSold)
	assert.True(t, result.TotalPrizePool.IsZero())
	assert.Empty(t, result.Winners)
	assert.NotNil(t, result.Winners, "winners must marshal as [] not null")
}

func TestConductExactPoolArithmetic(t *testing.T) {
	engine := newTestEngine(t)

	tickets := []*entity.Ticket{
		testTicket(numberset.NumberSet{1, 2, 3, 4, 5}, 3, "buyerA"),
		testTicket(numberset.NumberSet{6, 7, 8, 9, 10}, 7, "buyerB"),
	}
	result := engine.Conduct(testSeed, tickets, decimal.RequireFromString("0.01"), time.UnixMilli(1000))

	assert.Equal(t, int64(10), result.TotalTicketsSold)
	assert.True(t, result.TotalPrizePool.Equal(decimal.RequireFromString("0.10")),
		"expected exactly 0.10, got %s", result.TotalPrizePool)
}
