package postgres

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/jackc/pgx/v5"
	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
)

const insertDrawResult = `
INSERT INTO lottery_draws ("result_fingerprint", "winning_numbers", "entropy_seed", "draw_timestamp", "total_tickets_sold", "total_prize_pool", "winners")
VALUES ($1, $2, $3, $4, $5, $6::numeric, $7)
`

func (r *Repository) CreateDrawResult(ctx context.Context, result *entity.DrawResult) error {
	winners, err := marshalWinners(result.Winners)
	if err != nil {
		return errors.Wrap(err, "failed to marshal winners")
	}

	_, err = r.db.Exec(ctx, insertDrawResult,
		result.ResultFingerprint,
		result.WinningNumbers.Slice(),
		result.EntropySeed,
		result.DrawTimestamp,
		result.TotalTicketsSold,
		result.TotalPrizePool.String(),
		winners,
	)
	if err != nil {
		return wrapStorage(err, "failed to insert draw result")
	}
	return nil
}

const selectDrawResults = `
SELECT "result_fingerprint", "winning_numbers", "entropy_seed", "draw_timestamp", "total_tickets_sold", "total_prize_pool"::text, "winners"
FROM lottery_draws
`

func (r *Repository) GetLatestDrawResult(ctx context.Context) (*entity.DrawResult, error) {
	row := r.db.QueryRow(ctx, selectDrawResults+`ORDER BY "id" DESC LIMIT 1`)

	var model drawModel
	if err := row.Scan(
		&model.ResultFingerprint,
		&model.WinningNumbers,
		&model.EntropySeed,
		&model.DrawTimestamp,
		&model.TotalTicketsSold,
		&model.TotalPrizePool,
		&model.Winners,
	); err != nil {
		return nil, wrapStorage(err, "failed to get latest draw result")
	}

	result, err := mapDrawModelToType(model)
	if err != nil {
		return nil, errors.Wrap(err, "failed to map draw model to type")
	}
	return result, nil
}

func (r *Repository) GetDrawResults(ctx context.Context) ([]*entity.DrawResult, error) {
	rows, err := r.db.Query(ctx, selectDrawResults+`ORDER BY "id" ASC`)
	if err != nil {
		return nil, wrapStorage(err, "failed to query draw results")
	}
	defer rows.Close()
	return scanDrawResults(rows)
}

func scanDrawResults(rows pgx.Rows) ([]*entity.DrawResult, error) {
	results := make([]*entity.DrawResult, 0)
	for rows.Next() {
		var model drawModel
		if err := rows.Scan(
			&model.ResultFingerprint,
			&model.WinningNumbers,
			&model.EntropySeed,
			&model.DrawTimestamp,
			&model.TotalTicketsSold,
			&model.TotalPrizePool,
			&model.Winners,
		); err != nil {
			return nil, wrapStorage(err, "failed to scan draw result row")
		}
		result, err := mapDrawModelToType(model)
		if err != nil {
			return nil, errors.Wrap(err, "failed to map draw model to type")
		}
		results = append(results, result)
	}
	if err := rows.Err(); err != nil {
		return nil, wrapStorage(err, "failed to iterate draw result rows")
	}
	return results, nil
}
