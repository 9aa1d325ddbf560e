// Package memory provides in-memory implementations of the lottery data
// gateways, used by tests and ephemeral runs. Data does not survive the
// process.
package memory

import (
	"context"
	"sync"

	"github.com/cockroachdb/errors"
	"github.com/samber/lo"
	"github.com/solotto/draw-engine/common/errs"
	"github.com/solotto/draw-engine/modules/lottery/datagateway"
	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
)

var (
	_ datagateway.TicketDataGateway = (*Repository)(nil)
	_ datagateway.DrawDataGateway   = (*Repository)(nil)
)

type Repository struct {
	mu           sync.RWMutex
	tickets      []*entity.Ticket
	combinations map[string]struct{}
	draws        []*entity.DrawResult
}

func NewRepository() *Repository {
	return &Repository{
		combinations: make(map[string]struct{}),
	}
}

func (r *Repository) CreateTicket(_ context.Context, ticket *entity.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return errors.WithStack(err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	combination := ticket.Numbers.CanonicalString()
	if _, ok := r.combinations[combination]; ok {
		return errors.Wrapf(errs.Conflict, "combination %q already used", combination)
	}

	clone := *ticket
	r.tickets = append(r.tickets, &clone)
	r.combinations[combination] = struct{}{}
	return nil
}

func (r *Repository) GetTickets(_ context.Context) ([]*entity.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneTickets(r.tickets), nil
}

func (r *Repository) GetTicketsByBuyer(_ context.Context, buyer string) ([]*entity.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := lo.Filter(r.tickets, func(t *entity.Ticket, _ int) bool {
		return t.Buyer == buyer
	})
	return cloneTickets(matched), nil
}

func (r *Repository) GetTicketsByNumbers(_ context.Context, numbers []int32) ([]*entity.Ticket, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	matched := lo.Filter(r.tickets, func(t *entity.Ticket, _ int) bool {
		return lo.EveryBy(numbers, t.Numbers.Contains)
	})
	return cloneTickets(matched), nil
}

func (r *Repository) HasCombination(_ context.Context, combination string) (bool, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.combinations[combination]
	return ok, nil
}

func (r *Repository) UpdatePaymentReference(_ context.Context, fingerprint string, reference string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	// most recent first, matching the "latest pending ticket" contract
	for i := len(r.tickets) - 1; i >= 0; i-- {
		ticket := r.tickets[i]
		if ticket.Fingerprint == fingerprint && ticket.PaymentReference == entity.PendingPaymentReference {
			ticket.PaymentReference = reference
			return true, nil
		}
	}
	return false, nil
}

func (r *Repository) CreateDrawResult(_ context.Context, result *entity.DrawResult) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := *result
	clone.Winners = append([]entity.WinnerRecord(nil), result.Winners...)
	r.draws = append(r.draws, &clone)
	return nil
}

func (r *Repository) GetLatestDrawResult(_ context.Context) (*entity.DrawResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if len(r.draws) == 0 {
		return nil, errors.Wrap(errs.NotFound, "no draw has been conducted yet")
	}
	clone := *r.draws[len(r.draws)-1]
	return &clone, nil
}

func (r *Repository) GetDrawResults(_ context.Context) ([]*entity.DrawResult, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.DrawResult, 0, len(r.draws))
	for _, d := range r.draws {
		clone := *d
		out = append(out, &clone)
	}
	return out, nil
}

func cloneTickets(tickets []*entity.Ticket) []*entity.Ticket {
	out := make([]*entity.Ticket, 0, len(tickets))
	for _, t := range tickets {
		clone := *t
		out = append(out, &clone)
	}
	return out
}
