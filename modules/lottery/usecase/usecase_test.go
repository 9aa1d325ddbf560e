package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/shopspring/decimal"
	"github.com/solotto/draw-engine/common/errs"
	"github.com/solotto/draw-engine/modules/lottery/draw"
	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
	"github.com/solotto/draw-engine/modules/lottery/numberset"
	"github.com/solotto/draw-engine/modules/lottery/repository/memory"
	"github.com/solotto/draw-engine/modules/lottery/tickethash"
	"github.com/solotto/draw-engine/pkg/entropy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSeed = "4a5b6c7d8e9f0a1b2c3d4e5f60718293a4b5c6d7e8f90a1b2c3d4e5f60718293"

func newTestUsecase(t *testing.T) *Usecase {
	t.Helper()

	prizes, err := draw.NewPrizeTable(draw.DefaultTiers())
	require.NoError(t, err)
	hasher := tickethash.New()
	repo := memory.NewRepository()

	u := New(repo, repo, draw.NewEngine(hasher, prizes), hasher, entropy.Static(testSeed), decimal.RequireFromString("0.01"))
	u.now = func() time.Time { return time.UnixMilli(1700000000000) }
	return u
}

func TestPurchaseTicket(t *testing.T) {
	ctx := context.Background()

	t.Run("valid purchase", func(t *testing.T) {
		u := newTestUsecase(t)
		ticket, err := u.PurchaseTicket(ctx, PurchaseTicketParams{
			Numbers:  []int32{35, 7, 28, 14, 21},
			Quantity: 2,
			Buyer:    "buyerA",
		})
		require.NoError(t, err)

		assert.Equal(t, []int32{35, 7, 28, 14, 21}, ticket.Numbers.Slice())
		assert.Equal(t, int32(2), ticket.Quantity)
		assert.Equal(t, entity.PendingPaymentReference, ticket.PaymentReference)
		assert.Equal(t, int64(1700000000000), ticket.PurchaseTimestamp)

		// fingerprint is reproducible from the stored fields
		expected := tickethash.New().Fingerprint(ticket.Numbers, "buyerA", 1700000000000)
		assert.Equal(t, expected, ticket.Fingerprint)
	})

	t.Run("rejects invalid selection", func(t *testing.T) {
		u := newTestUsecase(t)
		_, err := u.PurchaseTicket(ctx, PurchaseTicketParams{
			Numbers:  []int32{1, 2, 3, 4, 50},
			Quantity: 1,
			Buyer:    "buyerA",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, numberset.ErrOutOfRange)

		var publicErr *errs.PublicError
		assert.True(t, errors.As(err, &publicErr), "validation failures must be public errors")
	})

	t.Run("rejects zero quantity and empty buyer", func(t *testing.T) {
		u := newTestUsecase(t)
		_, err := u.PurchaseTicket(ctx, PurchaseTicketParams{
			Numbers:  []int32{1, 2, 3, 4, 5},
			Quantity: 0,
			Buyer:    "buyerA",
		})
		require.Error(t, err)

		_, err = u.PurchaseTicket(ctx, PurchaseTicketParams{
			Numbers:  []int32{1, 2, 3, 4, 5},
			Quantity: 1,
		})
		require.Error(t, err)
	})

	t.Run("rejects reused combination including permutations", func(t *testing.T) {
		u := newTestUsecase(t)
		_, err := u.PurchaseTicket(ctx, PurchaseTicketParams{
			Numbers:  []int32{2, 4, 6, 8, 10},
			Quantity: 1,
			Buyer:    "buyerA",
		})
		require.NoError(t, err)

		_, err = u.PurchaseTicket(ctx, PurchaseTicketParams{
			Numbers:  []int32{10, 8, 6, 4, 2},
			Quantity: 1,
			Buyer:    "buyerB",
		})
		require.Error(t, err)
		assert.ErrorIs(t, err, numberset.ErrCombinationAlreadyUsed)

		var publicErr *errs.PublicError
		assert.True(t, errors.As(err, &publicErr))
	})
}

func TestConfirmPayment(t *testing.T) {
	ctx := context.Background()

	t.Run("confirms a pending ticket", func(t *testing.T) {
		u := newTestUsecase(t)
		ticket, err := u.PurchaseTicket(ctx, PurchaseTicketParams{
			Numbers:  []int32{1, 2, 3, 4, 5},
			Quantity: 1,
			Buyer:    "buyerA",
		})
		require.NoError(t, err)

		updated, err := u.ConfirmPayment(ctx, ticket.Fingerprint, "tx-abc")
		require.NoError(t, err)
		assert.True(t, updated)

		tickets, err := u.GetTicketsByBuyer(ctx, "buyerA")
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, "tx-abc", tickets[0].PaymentReference)
	})

	t.Run("unknown fingerprint is a no-op", func(t *testing.T) {
		u := newTestUsecase(t)
		updated, err := u.ConfirmPayment(ctx, "missing", "tx-abc")
		require.NoError(t, err)
		assert.False(t, updated)
	})

	t.Run("rejects pending as a reference", func(t *testing.T) {
		u := newTestUsecase(t)
		_, err := u.ConfirmPayment(ctx, "fp", entity.PendingPaymentReference)
		require.Error(t, err)
	})
}

func TestConductDraw(t *testing.T) {
	ctx := context.Background()

	t.Run("uses entropy source when no override given", func(t *testing.T) {
		u := newTestUsecase(t)
		_, err := u.PurchaseTicket(ctx, PurchaseTicketParams{
			Numbers:  []int32{2, 23, 29, 38, 45},
			Quantity: 1,
			Buyer:    "buyerA",
		})
		require.NoError(t, err)

		result, err := u.ConductDraw(ctx, "")
		require.NoError(t, err)

		assert.Equal(t, testSeed, result.EntropySeed)
		assert.Equal(t, numberset.NumberSet{2, 23, 29, 38, 45}, result.WinningNumbers)
		require.Len(t, result.Winners, 1)
		assert.Equal(t, 5, result.Winners[0].MatchCount)
		assert.Equal(t, "Jackpot - Ferrari 488", result.Winners[0].Prize)
	})

	t.Run("seed override takes precedence", func(t *testing.T) {
		u := newTestUsecase(t)
		result, err := u.ConductDraw(ctx, "deadbeefdeadbeef")
		require.NoError(t, err)
		assert.Equal(t, "deadbeefdeadbeef", result.EntropySeed)
	})

	t.Run("result is persisted", func(t *testing.T) {
		u := newTestUsecase(t)
		conducted, err := u.ConductDraw(ctx, "")
		require.NoError(t, err)

		latest, err := u.GetLatestDraw(ctx)
		require.NoError(t, err)
		assert.Equal(t, conducted.ResultFingerprint, latest.ResultFingerprint)

		history, err := u.GetDrawHistory(ctx)
		require.NoError(t, err)
		assert.Len(t, history, 1)
	})

	t.Run("latest draw before any draw is not found", func(t *testing.T) {
		u := newTestUsecase(t)
		_, err := u.GetLatestDraw(ctx)
		require.Error(t, err)
		assert.ErrorIs(t, err, errs.NotFound)
	})
}

func TestGetAdminStats(t *testing.T) {
	ctx := context.Background()
	u := newTestUsecase(t)

	_, err := u.PurchaseTicket(ctx, PurchaseTicketParams{Numbers: []int32{1, 2, 3, 4, 5}, Quantity: 3, Buyer: "buyerA"})
	require.NoError(t, err)
	_, err = u.PurchaseTicket(ctx, PurchaseTicketParams{Numbers: []int32{6, 7, 8, 9, 10}, Quantity: 7, Buyer: "buyerB"})
	require.NoError(t, err)
	_, err = u.PurchaseTicket(ctx, PurchaseTicketParams{Numbers: []int32{11, 12, 13, 14, 15}, Quantity: 1, Buyer: "buyerA"})
	require.NoError(t, err)
	_, err = u.ConductDraw(ctx, "")
	require.NoError(t, err)

	stats, err := u.GetAdminStats(ctx)
	require.NoError(t, err)

	assert.Equal(t, int64(3), stats.TotalTicketRecords)
	assert.Equal(t, int64(11), stats.TotalTicketsSold)
	assert.True(t, stats.TotalRevenue.Equal(decimal.RequireFromString("0.11")),
		"expected 0.11, got %s", stats.TotalRevenue)
	assert.Equal(t, 2, stats.UniquePlayers)
	assert.Equal(t, int64(3), stats.PendingPayments)
	assert.Equal(t, 1, stats.CompletedDraws)
	assert.Equal(t, int64(1700000000000), stats.LastTicketTime)
}

func TestAuditLedger(t *testing.T) {
	ctx := context.Background()

	t.Run("clean ledger verifies fully", func(t *testing.T) {
		u := newTestUsecase(t)
		_, err := u.PurchaseTicket(ctx, PurchaseTicketParams{Numbers: []int32{1, 2, 3, 4, 5}, Quantity: 1, Buyer: "buyerA"})
		require.NoError(t, err)
		_, err = u.PurchaseTicket(ctx, PurchaseTicketParams{Numbers: []int32{6, 7, 8, 9, 10}, Quantity: 1, Buyer: "buyerB"})
		require.NoError(t, err)

		report, err := u.AuditLedger(ctx)
		require.NoError(t, err)

		assert.Equal(t, 2, report.TotalTickets)
		assert.Equal(t, 2, report.VerifiedTickets)
		assert.Empty(t, report.MismatchedFingerprints)
		assert.Equal(t, 2, report.PendingPayments)
	})

	t.Run("detects tampered fingerprint", func(t *testing.T) {
		prizes, err := draw.NewPrizeTable(draw.DefaultTiers())
		require.NoError(t, err)
		hasher := tickethash.New()
		repo := memory.NewRepository()
		u := New(repo, repo, draw.NewEngine(hasher, prizes), hasher, entropy.Static(testSeed), decimal.RequireFromString("0.01"))

		require.NoError(t, repo.CreateTicket(ctx, &entity.Ticket{
			Fingerprint:       "forged",
			Numbers:           numberset.NumberSet{1, 2, 3, 4, 5},
			Quantity:          1,
			Buyer:             "buyerA",
			PurchaseTimestamp: 1000,
			PaymentReference:  "tx-abc",
		}))

		report, err := u.AuditLedger(ctx)
		require.NoError(t, err)

		assert.Equal(t, 1, report.TotalTickets)
		assert.Equal(t, 0, report.VerifiedTickets)
		assert.Equal(t, []string{"forged"}, report.MismatchedFingerprints)
		assert.Equal(t, 0, report.PendingPayments)
	})

	t.Run("empty ledger", func(t *testing.T) {
		u := newTestUsecase(t)
		report, err := u.AuditLedger(ctx)
		require.NoError(t, err)
		assert.Equal(t, 0, report.TotalTickets)
		assert.Empty(t, report.MismatchedFingerprints)
	})
}

func TestTicketQueries(t *testing.T) {
	ctx := context.Background()
	u := newTestUsecase(t)

	_, err := u.PurchaseTicket(ctx, PurchaseTicketParams{Numbers: []int32{1, 2, 3, 4, 5}, Quantity: 1, Buyer: "buyerA"})
	require.NoError(t, err)
	_, err = u.PurchaseTicket(ctx, PurchaseTicketParams{Numbers: []int32{3, 4, 5, 6, 7}, Quantity: 1, Buyer: "buyerB"})
	require.NoError(t, err)

	t.Run("all tickets newest first", func(t *testing.T) {
		tickets, err := u.GetTickets(ctx)
		require.NoError(t, err)
		require.Len(t, tickets, 2)
		assert.Equal(t, "buyerB", tickets[0].Buyer)
	})

	t.Run("search by numbers", func(t *testing.T) {
		tickets, err := u.SearchTicketsByNumbers(ctx, []int32{3, 4, 5})
		require.NoError(t, err)
		assert.Len(t, tickets, 2)

		tickets, err = u.SearchTicketsByNumbers(ctx, []int32{1})
		require.NoError(t, err)
		require.Len(t, tickets, 1)
		assert.Equal(t, "buyerA", tickets[0].Buyer)
	})

	t.Run("search rejects out of range query", func(t *testing.T) {
		_, err := u.SearchTicketsByNumbers(ctx, []int32{99})
		require.Error(t, err)
	})

	t.Run("search rejects empty query", func(t *testing.T) {
		_, err := u.SearchTicketsByNumbers(ctx, nil)
		require.Error(t, err)
	})

	t.Run("by buyer requires buyer", func(t *testing.T) {
		_, err := u.GetTicketsByBuyer(ctx, "")
		require.Error(t, err)
	})
}
