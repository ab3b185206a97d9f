// Package schedule wires up the cron job that periodically runs a full
// scrape cycle over all active alerts.
package schedule

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mouseagents/room-finder/internal/scraper"
)

// Scheduler wraps robfig/cron and manages the scrape loop.
type Scheduler struct {
	cron   *cron.Cron
	runner *scraper.Runner
	spec   string
	logger *slog.Logger
}

// New creates a Scheduler that fires every interval.
func New(runner *scraper.Runner, interval time.Duration, logger *slog.Logger) *Scheduler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scheduler{
		cron:   cron.New(),
		runner: runner,
		spec:   fmt.Sprintf("@every %s", interval),
		logger: logger,
	}
}

// Start registers the job and starts the scheduler. Also runs one cycle
// immediately so alerts are checked without waiting for the first tick.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.spec, func() {
		s.runCycle(ctx)
	})
	if err != nil {
		return fmt.Errorf("cron.AddFunc: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Scheduler started", "spec", s.spec)

	// Run immediately on startup (non-blocking)
	go s.runCycle(ctx)

	return nil
}

// Stop gracefully shuts down the scheduler.
func (s *Scheduler) Stop() {
	s.cron.Stop()
	s.logger.Info("Scheduler stopped")
}

func (s *Scheduler) runCycle(ctx context.Context) {
	if ctx.Err() != nil {
		return
	}
	result, err := s.runner.Run(ctx)
	if err != nil {
		s.logger.Error("Scrape cycle failed", "error", err)
		return
	}
	s.logger.Info("Scrape cycle complete", "summary", result.Summary())
}
