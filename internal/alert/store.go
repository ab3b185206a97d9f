package alert

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// Store reads and updates alerts through the shared pool's prepared
// statements.
type Store struct {
	pool *pgxpool.Pool
}

// NewStore creates an alert store backed by the given pool.
func NewStore(pool *pgxpool.Pool) *Store {
	return &Store{pool: pool}
}

// ListActive returns all alerts with status 'active'.
func (s *Store) ListActive(ctx context.Context) ([]Alert, error) {
	rows, err := s.pool.Query(ctx, "list_active_alerts")
	if err != nil {
		return nil, fmt.Errorf("list active alerts: %w", err)
	}
	defer rows.Close()
	return scanAlerts(rows)
}

// List returns the most recent alerts regardless of status, for the admin
// API.
func (s *Store) List(ctx context.Context, limit int) ([]Alert, error) {
	rows, err := s.pool.Query(ctx, "list_alerts", limit)
	if err != nil {
		return nil, fmt.Errorf("list alerts: %w", err)
	}
	defer rows.Close()
	return scanAlerts(rows)
}

// Insert persists a new alert with status 'active'.
func (s *Store) Insert(ctx context.Context, a *Alert) error {
	_, err := s.pool.Exec(ctx, "insert_alert",
		a.ID, a.UserEmail, a.ClientName, a.ReservationNumber,
		a.ResortSlug, a.RoomCategory, a.CheckInDate, a.CheckOutDate,
		a.SelectedDiscountCodes, string(a.AvailabilityType), a.MaxPrice,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

// Deactivate flips an alert to 'inactive'.
func (s *Store) Deactivate(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, "deactivate_alert", id)
	if err != nil {
		return fmt.Errorf("deactivate alert %s: %w", id, err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("alert %s not found", id)
	}
	return nil
}

// UpdateTracking records that an alert was evaluated at checkedAt, and when
// notifiedAt is non-nil also advances last_notification_sent. A nil
// notifiedAt leaves the cooldown untouched so the alert stays eligible.
func (s *Store) UpdateTracking(ctx context.Context, id uuid.UUID, checkedAt time.Time, notifiedAt *time.Time) error {
	var err error
	if notifiedAt != nil {
		_, err = s.pool.Exec(ctx, "mark_alert_notified", id, *notifiedAt)
	} else {
		_, err = s.pool.Exec(ctx, "touch_alert_checked", id, checkedAt)
	}
	if err != nil {
		return fmt.Errorf("update tracking for alert %s: %w", id, err)
	}
	return nil
}

// scanAlerts drains rows produced by the alert list statements.
func scanAlerts(rows pgx.Rows) ([]Alert, error) {
	var alerts []Alert
	for rows.Next() {
		var (
			a      Alert
			avail  string
			status string
		)
		if err := rows.Scan(
			&a.ID, &a.UserEmail, &a.ClientName, &a.ReservationNumber,
			&a.ResortSlug, &a.RoomCategory, &a.CheckInDate, &a.CheckOutDate,
			&a.SelectedDiscountCodes, &avail, &a.MaxPrice,
			&status, &a.LastNotificationSent, &a.LastCheckedAt,
		); err != nil {
			return nil, fmt.Errorf("scan alert: %w", err)
		}
		a.AvailabilityType = AvailabilityType(avail)
		a.Status = Status(status)
		alerts = append(alerts, a)
	}
	return alerts, rows.Err()
}
