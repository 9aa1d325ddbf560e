package postgres

import (
	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/solotto/draw-engine/common/errs"
	"github.com/solotto/draw-engine/internal/postgres"
	"github.com/solotto/draw-engine/modules/lottery/datagateway"
)

// Make sure Repository implements the lottery data gateways
var (
	_ datagateway.TicketDataGateway = (*Repository)(nil)
	_ datagateway.DrawDataGateway   = (*Repository)(nil)
)

type Repository struct {
	db postgres.DB
}

func NewRepository(db postgres.DB) *Repository {
	return &Repository{
		db: db,
	}
}

// wrapStorage marks a backing-store failure as errs.StorageUnavailable so
// callers can distinguish it from domain errors. Retry policy is theirs.
func wrapStorage(err error, msg string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, pgx.ErrNoRows) {
		return errors.Wrap(errs.NotFound, msg)
	}
	return errors.Mark(errors.Wrap(err, msg), errs.StorageUnavailable)
}
