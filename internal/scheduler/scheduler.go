package scheduler

import (
	"context"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"sustainable-bao-backend/pkg/waste"
)

// Scheduler manages scheduled background tasks.
type Scheduler struct {
	cron         *cron.Cron
	wasteService waste.WasteService
	logger       *zap.Logger
}

func NewScheduler(wasteService waste.WasteService, logger *zap.Logger) *Scheduler {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Scheduler{
		cron:         cron.New(),
		wasteService: wasteService,
		logger:       logger,
	}
}

// Start registers the weekly waste snapshot job (Mondays at 06:00) and
// starts the cron loop.
func (s *Scheduler) Start() {
	s.logger.Info("starting scheduler")

	_, err := s.cron.AddFunc("0 6 * * 1", s.captureWasteSnapshots)
	if err != nil {
		s.logger.Error("failed to schedule waste snapshots", zap.Error(err))
	}

	s.cron.Start()
}

// Stop stops the scheduler, waiting for any running job to finish.
func (s *Scheduler) Stop() {
	s.logger.Info("stopping scheduler")
	ctx := s.cron.Stop()
	<-ctx.Done()
}

func (s *Scheduler) captureWasteSnapshots() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	start := time.Now()
	if err := s.wasteService.CaptureWeeklySnapshots(ctx); err != nil {
		s.logger.Error("weekly waste snapshot run failed", zap.Error(err))
		return
	}

	s.logger.Info("weekly waste snapshots captured", zap.Duration("took", time.Since(start)))
}
