// Package cron provides scheduled background jobs using robfig/cron.
package cron

import (
	"context"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/FACorreiaa/ledgerbot/internal/domain/dialog"
	"github.com/FACorreiaa/ledgerbot/pkg/metrics"
)

// Scheduler manages background scheduled jobs using robfig/cron.
type Scheduler struct {
	cron     *cron.Cron
	arena    *dialog.Arena
	schedule string
	logger   *slog.Logger
}

// NewScheduler creates a new job scheduler.
func NewScheduler(arena *dialog.Arena, schedule string, logger *slog.Logger) *Scheduler {
	// Standard 5-field format, seconds disabled.
	c := cron.New(cron.WithLogger(cron.VerbosePrintfLogger(slog.NewLogLogger(logger.Handler(), slog.LevelDebug))))

	return &Scheduler{
		cron:     c,
		arena:    arena,
		schedule: schedule,
		logger:   logger,
	}
}

// Start begins scheduled jobs.
func (s *Scheduler) Start() error {
	_, err := s.cron.AddFunc(s.schedule, s.sweepIdleContexts)
	if err != nil {
		return err
	}

	s.cron.Start()
	s.logger.Info("cron scheduler started",
		slog.Int("jobs", len(s.cron.Entries())),
	)
	return nil
}

// Stop gracefully stops all scheduled jobs.
func (s *Scheduler) Stop() context.Context {
	s.logger.Info("cron scheduler stopping")
	return s.cron.Stop()
}

// RunNow manually triggers the idle-context sweep (for testing/admin).
func (s *Scheduler) RunNow() {
	go s.sweepIdleContexts()
}

func (s *Scheduler) sweepIdleContexts() {
	evicted := s.arena.Sweep(time.Now())
	metrics.ContextsEvicted.Add(float64(evicted))
}
