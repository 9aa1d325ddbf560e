package datagateway

import (
	"context"

	"github.com/solotto/draw-engine/modules/lottery/internal/entity"
)

// DrawDataGateway persists draw results: a "current" result plus an
// append-only history. No validation logic lives here.
type DrawDataGateway interface {
	// CreateDrawResult appends a result to history and makes it current.
	CreateDrawResult(ctx context.Context, result *entity.DrawResult) error

	// GetLatestDrawResult returns the current result, or errs.NotFound
	// (wrapped) when no draw has been conducted yet.
	GetLatestDrawResult(ctx context.Context) (*entity.DrawResult, error)

	// GetDrawResults returns the full history in chronological order,
	// oldest first.
	GetDrawResults(ctx context.Context) ([]*entity.DrawResult, error)
}
