package usecase

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
	"github.com/solotto/draw-engine/pkg/logger"
	"github.com/solotto/draw-engine/pkg/logger/slogx"
)

// ConductDraw runs a full draw over the current ledger and persists the
// result. When seedOverride is empty the configured entropy source supplies
// the seed. The draw itself is deterministic given the seed and the ledger.
func (u *Usecase) ConductDraw(ctx context.Context, seedOverride string) (*entity.DrawResult, error) {
	seed := seedOverride
	if seed == "" {
		var err error
		seed, err = u.entropy.Seed(ctx)
		if err != nil {
			return nil, errors.Wrap(err, "can't obtain entropy seed")
		}
	}

	tickets, err := u.ticketDg.GetTickets(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't load ticket ledger")
	}

	result := u.engine.Conduct(seed, tickets, u.unitPrice, u.now())
	if err := u.drawDg.CreateDrawResult(ctx, result); err != nil {
		return nil, errors.Wrap(err, "can't store draw result")
	}

	logger.InfoContext(ctx, "draw conducted",
		slogx.String("result_fingerprint", result.ResultFingerprint),
		slogx.String("winning_numbers", result.WinningNumbers.CanonicalString()),
		slogx.Int64("total_tickets_sold", result.TotalTicketsSold),
		slogx.Int("winners", len(result.Winners)),
	)
	return result, nil
}

// GetLatestDraw returns the most recent draw result, or errs.NotFound when no
// draw has been conducted yet.
func (u *Usecase) GetLatestDraw(ctx context.Context) (*entity.DrawResult, error) {
	result, err := u.drawDg.GetLatestDrawResult(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't get latest draw result")
	}
	return result, nil
}

// GetDrawHistory returns every stored draw result, oldest first.
func (u *Usecase) GetDrawHistory(ctx context.Context) ([]*entity.DrawResult, error) {
	results, err := u.drawDg.GetDrawResults(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "can't get draw history")
	}
	return results, nil
}
