package datagateway

import (
	"context"

	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
)

// TicketDataGateway is the ticket ledger: an append-only, chronologically
// ordered collection of every purchased ticket. It enforces structural
// well-formedness only; domain rules (range, duplicates) are the validator's
// job upstream.
type TicketDataGateway interface {
	// CreateTicket appends a ticket. Returns errs.Conflict (wrapped) when the
	// canonical combination is already present.
	CreateTicket(ctx context.Context, ticket *entity.Ticket) error

	// GetTickets returns every ticket in insertion (chronological) order,
	// oldest first.
	GetTickets(ctx context.Context) ([]*entity.Ticket, error)

	// GetTicketsByBuyer returns the given buyer's tickets, oldest first.
	GetTicketsByBuyer(ctx context.Context, buyer string) ([]*entity.Ticket, error)

	// GetTicketsByNumbers returns tickets whose selection contains every one
	// of the given numbers, oldest first.
	GetTicketsByNumbers(ctx context.Context, numbers []int32) ([]*entity.Ticket, error)

	// HasCombination reports whether any ticket already uses the canonical
	// combination string ("a,b,c,d,e", ascending).
	HasCombination(ctx context.Context, combination string) (bool, error)

	// UpdatePaymentReference sets the payment reference on the most recent
	// still-pending ticket with the given fingerprint. Best effort: reports
	// whether a ticket was updated, and a miss is not an error.
	UpdatePaymentReference(ctx context.Context, fingerprint string, reference string) (bool, error)
}
