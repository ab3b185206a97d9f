package scraper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mouseagents/room-finder/internal/scraper"
)

func TestShouldNotify(t *testing.T) {
	now := time.Now().UTC()

	tests := []struct {
		name     string
		lastSent *time.Time
		want     bool
	}{
		{"never notified", nil, true},
		{"sent just now", timePtr(now), false},
		{"sent within cooldown", timePtr(now.Add(-scraper.NotifyCooldown + time.Minute)), false},
		{"cooldown exactly elapsed", timePtr(now.Add(-scraper.NotifyCooldown)), true},
		{"cooldown long elapsed", timePtr(now.Add(-24 * time.Hour)), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, scraper.ShouldNotify(tt.lastSent, now))
		})
	}
}

func timePtr(t time.Time) *time.Time { return &t }
