package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
	"golang.org/x/sync/errgroup"
)

type AdminStats struct {
	TotalTicketRecords int64           `json:"totalTicketRecords"`
	TotalTicketsSold   int64           `json:"totalTicketsSold"`
	TotalRevenue       decimal.Decimal `json:"totalRevenue"`
	UniquePlayers      int             `json:"uniquePlayers"`
	PendingPayments    int64           `json:"pendingPayments"`
	CompletedDraws     int             `json:"completedDraws"`
	LastTicketTime     int64           `json:"lastTicketTime"`
}

// GetAdminStats aggregates sales figures over the whole ledger together with
// the number of completed draws.
func (u *Usecase) GetAdminStats(ctx context.Context) (*AdminStats, error) {
	var (
		tickets []*entity.Ticket
		draws   []*entity.DrawResult
	)
	eg, egctx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		var err error
		tickets, err = u.ticketDg.GetTickets(egctx)
		return errors.Wrap(err, "can't get tickets")
	})
	eg.Go(func() error {
		var err error
		draws, err = u.drawDg.GetDrawResults(egctx)
		return errors.Wrap(err, "can't get draw results")
	})
	if err := eg.Wait(); err != nil {
		return nil, errors.WithStack(err)
	}

	stats := &AdminStats{
		TotalTicketRecords: int64(len(tickets)),
		CompletedDraws:     len(draws),
		UniquePlayers:      len(lo.UniqBy(tickets, func(t *entity.Ticket) string { return t.Buyer })),
	}
	for _, t := range tickets {
		stats.TotalTicketsSold += int64(t.Quantity)
		if t.PaymentReference == entity.PendingPaymentReference {
			stats.PendingPayments++
		}
		if t.PurchaseTimestamp > stats.LastTicketTime {
			stats.LastTicketTime = t.PurchaseTimestamp
		}
	}
	stats.TotalRevenue = u.unitPrice.Mul(decimal.NewFromInt(stats.TotalTicketsSold))
	return stats, nil
}
