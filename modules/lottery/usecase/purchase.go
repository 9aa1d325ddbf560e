package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/solotto/draw-engine/common/errs"
	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
	"github.com/solotto/draw-engine/modules/lottery/numberset"
	"github.com/solotto/draw-engine/pkg/logger"
	"github.com/solotto/draw-engine/pkg/logger/slogx"
)

type PurchaseTicketParams struct {
	Numbers  []int32
	Quantity int32
	Buyer    string
}

// PurchaseTicket validates the selection, reserves the combination and appends
// the ticket to the ledger. The uniqueness check and the append happen under
// one lock, with the storage layer's conflict detection as a second line of
// defense for deployments running more than one instance.
func (u *Usecase) PurchaseTicket(ctx context.Context, params PurchaseTicketParams) (*entity.Ticket, error) {
	numbers, err := numberset.New(params.Numbers)
	if err != nil {
		return nil, errs.WithPublicMessage(errors.WithStack(err), "")
	}
	if params.Quantity < 1 {
		return nil, errs.NewPublicError("quantity must be at least 1")
	}
	if params.Buyer == "" {
		return nil, errs.NewPublicError("buyer is required")
	}

	u.purchaseMu.Lock()
	defer u.purchaseMu.Unlock()

	taken, err := u.ticketDg.HasCombination(ctx, numbers.CanonicalString())
	if err != nil {
		return nil, errors.Wrap(err, "can't check combination availability")
	}
	if taken {
		usedErr := numberset.AlreadyUsedError(numbers)
		return nil, errs.WithPublicMessage(errors.WithStack(usedErr), "")
	}

	purchasedAt := u.now().UnixMilli()
	ticket := &entity.Ticket{
		Fingerprint:       u.hasher.Fingerprint(numbers, params.Buyer, purchasedAt),
		Numbers:           numbers,
		Quantity:          params.Quantity,
		Buyer:             params.Buyer,
		PurchaseTimestamp: purchasedAt,
		PaymentReference:  entity.PendingPaymentReference,
	}
	if err := u.ticketDg.CreateTicket(ctx, ticket); err != nil {
		if errors.Is(err, errs.Conflict) {
			usedErr := numberset.AlreadyUsedError(numbers)
			return nil, errs.WithPublicMessage(errors.WithStack(usedErr), "")
		}
		return nil, errors.Wrap(err, "can't create ticket")
	}

	logger.InfoContext(ctx, "ticket purchased",
		slogx.String("fingerprint", ticket.Fingerprint),
		slogx.String("combination", numbers.CanonicalString()),
		slogx.String("buyer", ticket.Buyer),
		slogx.Int("quantity", int(ticket.Quantity)),
	)
	return ticket, nil
}

// ConfirmPayment attaches a payment reference to the newest pending ticket
// bearing the fingerprint. Returns false when no pending ticket matched,
// which callers treat as a no-op rather than a failure.
func (u *Usecase) ConfirmPayment(ctx context.Context, fingerprint string, reference string) (bool, error) {
	if fingerprint == "" {
		return false, errs.NewPublicError("fingerprint is required")
	}
	if reference == "" || reference == entity.PendingPaymentReference {
		return false, errs.NewPublicError("invalid payment reference")
	}

	updated, err := u.ticketDg.UpdatePaymentReference(ctx, fingerprint, reference)
	if err != nil {
		return false, errors.Wrap(err, "can't update payment reference")
	}
	if !updated {
		logger.WarnContext(ctx, "payment confirmation matched no pending ticket", slogx.String("fingerprint", fingerprint))
	}
	return updated, nil
}
