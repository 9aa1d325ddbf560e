package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/solotto/draw-engine/common/errs"
	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
)

const insertTicket = `
INSERT INTO lottery_tickets ("fingerprint", "numbers", "combination", "quantity", "buyer", "purchase_timestamp", "payment_reference")
VALUES ($1, $2, $3, $4, $5, $6, $7)
`

func (r *Repository) CreateTicket(ctx context.Context, ticket *entity.Ticket) error {
	if err := ticket.Validate(); err != nil {
		return errors.WithStack(err)
	}

	_, err := r.db.Exec(ctx, insertTicket,
		ticket.Fingerprint,
		ticket.Numbers.Slice(),
		ticket.Numbers.CanonicalString(),
		ticket.Quantity,
		ticket.Buyer,
		ticket.PurchaseTimestamp,
		ticket.PaymentReference,
	)
	if err != nil {
		// unique_violation on the combination index
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return errors.Wrapf(errs.Conflict, "combination %q already used", ticket.Numbers.CanonicalString())
		}
		return wrapStorage(err, "failed to insert ticket")
	}
	return nil
}

const selectTickets = `
SELECT "fingerprint", "numbers", "quantity", "buyer", "purchase_timestamp", "payment_reference"
FROM lottery_tickets
`

func (r *Repository) GetTickets(ctx context.Context) ([]*entity.Ticket, error) {
	rows, err := r.db.Query(ctx, selectTickets+`ORDER BY "id" ASC`)
	if err != nil {
		return nil, wrapStorage(err, "failed to query tickets")
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *Repository) GetTicketsByBuyer(ctx context.Context, buyer string) ([]*entity.Ticket, error) {
	rows, err := r.db.Query(ctx, selectTickets+`WHERE "buyer" = $1 ORDER BY "id" ASC`, buyer)
	if err != nil {
		return nil, wrapStorage(err, "failed to query tickets by buyer")
	}
	defer rows.Close()
	return scanTickets(rows)
}

func (r *Repository) GetTicketsByNumbers(ctx context.Context, numbers []int32) ([]*entity.Ticket, error) {
	rows, err := r.db.Query(ctx, selectTickets+`WHERE "numbers" @> $1 ORDER BY "id" ASC`, numbers)
	if err != nil {
		return nil, wrapStorage(err, "failed to query tickets by numbers")
	}
	defer rows.Close()
	return scanTickets(rows)
}

const countCombination = `
SELECT count(1) FROM lottery_tickets WHERE "combination" = $1
`

func (r *Repository) HasCombination(ctx context.Context, combination string) (bool, error) {
	var count int64
	if err := r.db.QueryRow(ctx, countCombination, combination).Scan(&count); err != nil {
		return false, wrapStorage(err, "failed to count combination")
	}
	return count > 0, nil
}

const updatePaymentReference = `
UPDATE lottery_tickets SET "payment_reference" = $2
WHERE "id" = (
	SELECT "id" FROM lottery_tickets
	WHERE "fingerprint" = $1 AND "payment_reference" = $3
	ORDER BY "id" DESC
	LIMIT 1
)
`

func (r *Repository) UpdatePaymentReference(ctx context.Context, fingerprint string, reference string) (bool, error) {
	tag, err := r.db.Exec(ctx, updatePaymentReference, fingerprint, reference, entity.PendingPaymentReference)
	if err != nil {
		return false, wrapStorage(err, "failed to update payment reference")
	}
	return tag.RowsAffected() > 0, nil
}

func scanTickets(rows pgx.Rows) ([]*entity.Ticket, error) {
	tickets := make([]*entity.Ticket, 0)
	for rows.Next() {
		var model ticketModel
		if err := rows.Scan(
			&model.Fingerprint,
			&model.Numbers,
			&model.Quantity,
			&model.Buyer,
			&model.PurchaseTimestamp,
			&model.PaymentReference,
		); err != nil {
			return nil, wrapStorage(err, "failed to scan ticket row")
		}
		ticket, err := mapTicketModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to map ticket model to type")
		}
		tickets = append(tickets, ticket)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorage(err, "failed to iterate ticket rows")
	}
	return tickets, nil
}
