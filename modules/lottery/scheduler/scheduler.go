package scheduler

import (
	"context"

	"github.com/cockroachdb/errors"
	"github.com/robfig/cron/v3"
	"github.com/solotto/draw-engine/modules/lottery/usecase"
	"github.com/solotto/draw-engine/pkg/logger"
	"github.com/solotto/draw-engine/pkg/logger/slogx"
)

// Scheduler conducts draws automatically on a cron schedule. Each firing uses
// a fresh seed from the configured entropy source.
type Scheduler struct {
	usecase  *usecase.Usecase
	cronSpec string
	cron     *cron.Cron
}

func New(usecase *usecase.Usecase, cronSpec string) *Scheduler {
	return &Scheduler{
		usecase:  usecase,
		cronSpec: cronSpec,
		cron:     cron.New(),
	}
}

// Run starts the cron loop and blocks until ctx is canceled. Draw failures
// are logged and the schedule keeps running.
func (s *Scheduler) Run(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.cronSpec, func() {
		result, err := s.usecase.ConductDraw(ctx, "")
		if err != nil {
			logger.ErrorContext(ctx, "scheduled draw failed", slogx.Error(err))
			return
		}
		logger.InfoContext(ctx, "scheduled draw completed",
			slogx.String("result_fingerprint", result.ResultFingerprint),
			slogx.String("winning_numbers", result.WinningNumbers.CanonicalString()),
		)
	})
	if err != nil {
		return errors.Wrapf(err, "invalid cron spec %q", s.cronSpec)
	}

	logger.InfoContext(ctx, "draw scheduler started", slogx.String("cron_spec", s.cronSpec))
	s.cron.Start()
	<-ctx.Done()

	stopCtx := s.cron.Stop()
	<-stopCtx.Done()
	logger.InfoContext(ctx, "draw scheduler stopped")
	return nil
}
