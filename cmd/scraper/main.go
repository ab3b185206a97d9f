// Command scraper is the Room Finder availability scraper CLI.
//
// Usage:
//
//	room-scraper run
//	room-scraper schedule
//	room-scraper plan
package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/mouseagents/room-finder/internal/alert"
	"github.com/mouseagents/room-finder/internal/config"
	"github.com/mouseagents/room-finder/internal/db"
	"github.com/mouseagents/room-finder/internal/disney"
	"github.com/mouseagents/room-finder/internal/notify"
	"github.com/mouseagents/room-finder/internal/schedule"
	"github.com/mouseagents/room-finder/internal/scraper"
)

var logger = slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))

func main() {
	// Load .env if present
	_ = godotenv.Load(".env")

	root := &cobra.Command{
		Use:   "room-scraper",
		Short: "Room Finder availability scraper",
	}

	root.AddCommand(runCmd())
	root.AddCommand(scheduleCmd())
	root.AddCommand(planCmd())

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// --------------------------------------------------------------------------
// run command
// --------------------------------------------------------------------------

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Run one scrape cycle over all active alerts",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				runner := buildRunner(cfg, pool)
				start := time.Now()
				result, err := runner.Run(ctx)
				if err != nil {
					return err
				}
				logger.Info("Scrape finished",
					"duration", time.Since(start).Round(time.Second),
					"summary", result.Summary())
				for _, e := range result.Errors {
					logger.Error("scrape error", "error", e)
				}
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// schedule command
// --------------------------------------------------------------------------

func scheduleCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "schedule",
		Short: "Run scrape cycles on an interval until interrupted",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				runner := buildRunner(cfg, pool)
				sched := schedule.New(runner, cfg.ScrapeInterval, logger)
				if err := sched.Start(ctx); err != nil {
					return err
				}
				defer sched.Stop()

				<-ctx.Done()
				logger.Info("Shutting down...")
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// plan command
// --------------------------------------------------------------------------

func planCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "plan",
		Short: "Print the query plan for the active alerts without fetching",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPool(func(ctx context.Context, cfg *config.Config, pool *db.Pool) error {
				store := alert.NewStore(pool.Pool)
				alerts, err := store.ListActive(ctx)
				if err != nil {
					return err
				}

				plan := scraper.BuildPlan(alerts)
				fmt.Printf("%d active alert(s), %d distinct quer(ies)\n\n", len(alerts), len(plan.Queries))
				for _, q := range plan.Queries {
					served := plan.AlertsFor(q)
					fmt.Printf("%-40s %s..%s code=%-10s alerts=%d\n",
						q.ResortSlug, q.CheckIn, q.CheckOut, q.DiscountCode, len(served))
				}
				return nil
			})
		},
	}
}

// --------------------------------------------------------------------------
// Shared setup
// --------------------------------------------------------------------------

// buildRunner wires the scrape pipeline from configuration.
func buildRunner(cfg *config.Config, pool *db.Pool) *scraper.Runner {
	store := alert.NewStore(pool.Pool)

	client := disney.NewClient(cfg.WDWBaseURL, cfg.DLRBaseURL, cfg.RequestsPerMinute, disney.PartyMix{
		AdultCount:   cfg.PartyAdults,
		ChildCount:   cfg.PartyChildren,
		NonAdultAges: []int{},
	}, logger)

	mailer := notify.NewMailer(cfg.SendGridAPIKey, cfg.FromEmail, cfg.FromName, logger)
	if mailer == nil {
		logger.Info("Email delivery disabled (no SENDGRID_API_KEY)")
	}

	return scraper.NewRunner(store, client, mailer, scraper.RunnerConfig{
		Workers:       cfg.ScrapeWorkers,
		MinQueryDelay: cfg.MinQueryDelay,
		MaxQueryDelay: cfg.MaxQueryDelay,
	}, logger)
}

// withPool handles config loading, DB connection, and context cancellation.
func withPool(fn func(ctx context.Context, cfg *config.Config, pool *db.Pool) error) error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	pool, err := db.New(ctx, cfg)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	return fn(ctx, cfg, pool)
}
