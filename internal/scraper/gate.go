package scraper

import "time"

// NotifyCooldown is the minimum elapsed time between successive
// notifications for the same alert.
const NotifyCooldown = 2 * time.Hour

// ShouldNotify reports whether an alert may fire again now: either it has
// never fired, or the cooldown has fully elapsed. Pure function of stored
// state and the clock.
func ShouldNotify(lastSent *time.Time, now time.Time) bool {
	if lastSent == nil {
		return true
	}
	return now.Sub(*lastSent) >= NotifyCooldown
}
