package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/solotto/draw-engine/common/errs"
	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
	"github.com/solotto/draw-engine/modules/lottery/numberset"
)

// GetTickets returns the full ledger, newest purchase first.
func (u *Usecase) GetTickets(ctx context.Context) ([]*entity.Ticket, error) {
	tickets, err := u.ticketDg.GetTickets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't get tickets")
	}
	return lo.Reverse(tickets), nil
}

// GetTicketsByBuyer returns the buyer's tickets, newest purchase first.
func (u *Usecase) GetTicketsByBuyer(ctx context.Context, buyer string) ([]*entity.Ticket, error) {
	if buyer == "" {
		return nil, errs.NewPublicError("buyer is required")
	}
	tickets, err := u.ticketDg.GetTicketsByBuyer(ctx, buyer)
	if err != nil {
		return nil, errors.Wrap(err, "can't get tickets by buyer")
	}
	return lo.Reverse(tickets), nil
}

// SearchTicketsByNumbers returns tickets whose selection contains every
// queried number. Empty queries and out-of-range numbers are rejected.
func (u *Usecase) SearchTicketsByNumbers(ctx context.Context, numbers []int32) ([]*entity.Ticket, error) {
	if len(numbers) == 0 || len(numbers) > numberset.Size {
		return nil, errs.NewPublicError("query must contain between 1 and 5 numbers")
	}
	for _, n := range numbers {
		if n < numberset.Min || n > numberset.Max {
			return nil, errs.NewPublicError("query numbers must be between 1 and 49")
		}
	}
	tickets, err := u.ticketDg.GetTicketsByNumbers(ctx, lo.Uniq(numbers))
	if err != nil {
		return nil, errors.Wrap(err, "can't search tickets by numbers")
	}
	return lo.Reverse(tickets), nil
}
