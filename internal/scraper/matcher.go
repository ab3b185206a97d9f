package scraper

import (
	"log/slog"

	"github.com/mouseagents/room-finder/internal/alert"
	"github.com/mouseagents/room-finder/internal/catalog"
)

// MatchAlert filters the cached offers of an alert's queries down to the
// offers satisfying all of its criteria. Matches from different queries are
// concatenated, not merged — deduplication happens afterwards.
func MatchAlert(a *alert.Alert, queries []Query, offers map[Query][]RoomOffer, logger *slog.Logger) []Match {
	if logger == nil {
		logger = slog.Default()
	}

	targets := catalog.Resolve(a.ResortSlug, a.RoomCategory, a.CheckInDate)
	if len(targets) == 0 {
		logger.Warn("No room codes for category",
			"resort", a.ResortSlug, "category", a.RoomCategory, "check_in", a.CheckIn())
		return nil
	}
	targetSet := make(map[string]bool, len(targets))
	for _, code := range targets {
		targetSet[code] = true
	}

	var matches []Match
	for _, q := range queries {
		for _, o := range offers[q] {
			if !targetSet[o.Code] {
				continue
			}
			if o.Unavailable || o.Price == nil {
				continue
			}
			if a.AvailabilityType == alert.AvailabilityDiscounted && catalog.IsStandard(o.DiscountCode) {
				continue
			}
			if a.MaxPrice != nil && *o.Price > *a.MaxPrice {
				continue
			}
			matches = append(matches, Match{
				RoomCategory: catalog.RoomName(a.ResortSlug, o.Code, a.CheckInDate),
				RoomCode:     o.Code,
				Price:        *o.Price,
				DiscountCode: o.DiscountCode,
				OfferName:    o.OfferName,
				OfferDetail:  o.OfferDetail,
			})
		}
	}
	return matches
}
