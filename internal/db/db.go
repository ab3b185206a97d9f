// Package db provides a pgxpool-based connection pool with prepared statement
// registration and health checking.
package db

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/mouseagents/room-finder/internal/config"
)

// Pool wraps pgxpool.Pool with application-specific helpers.
type Pool struct {
	*pgxpool.Pool
}

// New creates and validates a new connection pool.
func New(ctx context.Context, cfg *config.Config) (*Pool, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.DatabaseURL)
	if err != nil {
		return nil, fmt.Errorf("parse database URL: %w", err)
	}

	poolCfg.MinConns = int32(cfg.DBPoolMinConns)
	poolCfg.MaxConns = int32(cfg.DBPoolMaxConns)
	poolCfg.MaxConnLifetime = cfg.DBPoolMaxLife
	poolCfg.MaxConnIdleTime = 5 * time.Minute

	// Register prepared statements on every new connection.
	poolCfg.AfterConnect = func(ctx context.Context, conn *pgx.Conn) error {
		return registerPreparedStatements(ctx, conn)
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create pool: %w", err)
	}

	// Verify connectivity
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return &Pool{Pool: pool}, nil
}

// HealthCheck runs a trivial query to verify the database is reachable.
func (p *Pool) HealthCheck(ctx context.Context) error {
	var n int
	return p.QueryRow(ctx, "health_check").Scan(&n)
}

// registerPreparedStatements registers all statements the scraper and admin
// API use. Prepared statements eliminate parse overhead on every request.
func registerPreparedStatements(ctx context.Context, conn *pgx.Conn) error {
	stmts := map[string]string{
		// Health
		"health_check": "SELECT 1",

		// Scraper: alert loading
		"list_active_alerts": `
			SELECT id, user_email, client_name, reservation_number,
			       resort_slug, room_category, check_in_date, check_out_date,
			       selected_discount_codes, availability_type, max_price,
			       status, last_notification_sent, last_checked_at
			FROM alerts
			WHERE status = 'active'
			ORDER BY created_at`,

		// Scraper: tracking updates
		"touch_alert_checked": `
			UPDATE alerts
			SET last_checked_at = $2, updated_at = NOW()
			WHERE id = $1`,
		"mark_alert_notified": `
			UPDATE alerts
			SET last_checked_at = $2, last_notification_sent = $2, updated_at = NOW()
			WHERE id = $1`,

		// Admin API
		"list_alerts": `
			SELECT id, user_email, client_name, reservation_number,
			       resort_slug, room_category, check_in_date, check_out_date,
			       selected_discount_codes, availability_type, max_price,
			       status, last_notification_sent, last_checked_at
			FROM alerts
			ORDER BY created_at DESC
			LIMIT $1`,
		"insert_alert": `
			INSERT INTO alerts (
				id, user_email, client_name, reservation_number,
				resort_slug, room_category, check_in_date, check_out_date,
				selected_discount_codes, availability_type, max_price, status
			) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,'active')`,
		"deactivate_alert": `
			UPDATE alerts
			SET status = 'inactive', updated_at = NOW()
			WHERE id = $1`,
	}

	for name, sql := range stmts {
		if _, err := conn.Prepare(ctx, name, sql); err != nil {
			return fmt.Errorf("prepare %q: %w", name, err)
		}
	}
	return nil
}
