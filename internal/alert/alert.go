// Package alert defines the stored watch request and its Postgres-backed
// store. The scraper borrows alerts for one run and writes back only the
// tracking timestamps; everything else is owned by the dashboard.
package alert

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// AvailabilityType says whether an alert accepts standard pricing or
// demands an actual discount.
type AvailabilityType string

const (
	AvailabilityAny        AvailabilityType = "any"
	AvailabilityDiscounted AvailabilityType = "discounted"
)

// ParseAvailabilityType validates an availability type string.
func ParseAvailabilityType(s string) (AvailabilityType, error) {
	switch AvailabilityType(s) {
	case AvailabilityAny, AvailabilityDiscounted:
		return AvailabilityType(s), nil
	}
	return "", fmt.Errorf("invalid availability type %q", s)
}

// Status is the alert lifecycle state. Only active alerts are scraped.
type Status string

const (
	StatusActive   Status = "active"
	StatusInactive Status = "inactive"
)

// Alert is one stored watch request.
type Alert struct {
	ID                uuid.UUID
	UserEmail         string
	ClientName        string
	ReservationNumber *string

	ResortSlug   string
	RoomCategory string
	CheckInDate  time.Time
	CheckOutDate time.Time

	// SelectedDiscountCodes the user opted into; empty means standard
	// pricing only.
	SelectedDiscountCodes []string
	AvailabilityType      AvailabilityType
	MaxPrice              *int

	Status               Status
	LastNotificationSent *time.Time
	LastCheckedAt        *time.Time
}

// CheckIn returns the check-in date as the ISO calendar date the upstream
// API expects.
func (a *Alert) CheckIn() string {
	return a.CheckInDate.Format("2006-01-02")
}

// CheckOut returns the check-out date as an ISO calendar date.
func (a *Alert) CheckOut() string {
	return a.CheckOutDate.Format("2006-01-02")
}
