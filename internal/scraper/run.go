package scraper

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mouseagents/room-finder/internal/alert"
)

// AlertStore is the slice of the alert store the runner needs: reading the
// active set and writing back tracking timestamps.
type AlertStore interface {
	ListActive(ctx context.Context) ([]alert.Alert, error)
	UpdateTracking(ctx context.Context, id uuid.UUID, checkedAt time.Time, notifiedAt *time.Time) error
}

// Fetcher issues one upstream availability query.
type Fetcher interface {
	Fetch(ctx context.Context, q Query) ([]RoomOffer, error)
}

// Notifier delivers the matched rooms to an alert's owner.
type Notifier interface {
	Send(ctx context.Context, a *alert.Alert, matches []Match) error
}

// RunnerConfig bounds the fetch phase. Workers is the number of resorts
// queried concurrently; the delays space out successive queries to the same
// resort (jittered, politeness only).
type RunnerConfig struct {
	Workers       int
	MinQueryDelay time.Duration
	MaxQueryDelay time.Duration
}

// Runner executes one full scrape run over all active alerts.
type Runner struct {
	store    AlertStore
	fetcher  Fetcher
	notifier Notifier
	cfg      RunnerConfig
	logger   *slog.Logger
}

// NewRunner wires the run orchestrator.
func NewRunner(store AlertStore, fetcher Fetcher, notifier Notifier, cfg RunnerConfig, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	if cfg.Workers < 1 {
		cfg.Workers = 1
	}
	return &Runner{store: store, fetcher: fetcher, notifier: notifier, cfg: cfg, logger: logger}
}

// Run loads the active alerts, executes the query plan, and processes every
// alert. Only a store read failure aborts the run; upstream, notification,
// and tracking-write failures are logged and scoped to what they affect.
func (r *Runner) Run(ctx context.Context) (*RunResult, error) {
	start := time.Now()
	result := &RunResult{}

	alerts, err := r.store.ListActive(ctx)
	if err != nil {
		return nil, fmt.Errorf("load active alerts: %w", err)
	}
	if len(alerts) == 0 {
		r.logger.Info("No active alerts to check")
		result.Duration = time.Since(start)
		return result, nil
	}

	plan := BuildPlan(alerts)
	result.QueriesPlanned = len(plan.Queries)
	r.logger.Info("Run started",
		"alerts", len(alerts), "queries", len(plan.Queries))

	offers := r.fetchAll(ctx, plan, result)

	now := time.Now().UTC()
	for i := range alerts {
		a := &alerts[i]
		result.AlertsProcessed++

		matches := Dedupe(MatchAlert(a, plan.QueriesFor(a.ID), offers, r.logger))
		result.MatchesFound += len(matches)

		var notifiedAt *time.Time
		if len(matches) > 0 {
			if ShouldNotify(a.LastNotificationSent, now) {
				if err := r.notifier.Send(ctx, a, matches); err != nil {
					r.logger.Warn("Notification failed",
						"alert_id", a.ID, "email", a.UserEmail, "error", err)
					result.AddErrorf("alert %s: send: %v", a.ID, err)
				} else {
					sentAt := now
					notifiedAt = &sentAt
					result.NotificationsSent++
				}
			} else {
				r.logger.Info("Notification suppressed by cooldown",
					"alert_id", a.ID, "last_sent", a.LastNotificationSent)
			}
		}

		// last_checked_at always advances; last_notification_sent only on
		// a confirmed send, so a failed email leaves the alert eligible.
		if err := r.store.UpdateTracking(ctx, a.ID, now, notifiedAt); err != nil {
			r.logger.Error("Tracking update failed", "alert_id", a.ID, "error", err)
			result.AddErrorf("alert %s: tracking: %v", a.ID, err)
		}
	}

	result.Duration = time.Since(start)
	r.logger.Info("Run complete", "summary", result.Summary())
	return result, nil
}

// fetchAll executes every planned query exactly once and returns the filled
// offers cache. Queries are grouped by resort; groups run on a bounded
// worker pool while queries within a group run sequentially with a jittered
// delay between them. A failed query caches an empty result — the alerts it
// serves simply see no offers this run.
func (r *Runner) fetchAll(ctx context.Context, plan *Plan, result *RunResult) map[Query][]RoomOffer {
	groups := make(map[string][]Query)
	var resorts []string
	for _, q := range plan.Queries {
		if _, seen := groups[q.ResortSlug]; !seen {
			resorts = append(resorts, q.ResortSlug)
		}
		groups[q.ResortSlug] = append(groups[q.ResortSlug], q)
	}

	workers := r.cfg.Workers
	if workers > len(resorts) {
		workers = len(resorts)
	}

	cache := newOfferCache()
	ch := make(chan []Query, len(resorts))
	for _, slug := range resorts {
		ch <- groups[slug]
	}
	close(ch)

	var mu sync.Mutex
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for queries := range ch {
				for j, q := range queries {
					if j > 0 {
						r.pause(ctx)
					}
					offers, err := r.fetcher.Fetch(ctx, q)

					mu.Lock()
					result.QueriesIssued++
					if err != nil {
						result.QueriesFailed++
						result.AddErrorf("query %s %s..%s code=%s: %v",
							q.ResortSlug, q.CheckIn, q.CheckOut, q.DiscountCode, err)
					}
					mu.Unlock()

					if err != nil {
						r.logger.Warn("Query failed",
							"resort", q.ResortSlug, "check_in", q.CheckIn,
							"code", q.DiscountCode, "error", err)
						offers = nil
					}
					cache.put(q, offers)
				}
			}
		}()
	}
	wg.Wait()

	return cache.snapshot()
}

// pause sleeps a jittered interval between same-resort queries, returning
// early if the run is cancelled.
func (r *Runner) pause(ctx context.Context) {
	min, max := r.cfg.MinQueryDelay, r.cfg.MaxQueryDelay
	if max <= min {
		max = min
	}
	d := min
	if span := max - min; span > 0 {
		d += time.Duration(rand.Int64N(int64(span)))
	}
	if d <= 0 {
		return
	}
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-t.C:
	case <-ctx.Done():
	}
}
