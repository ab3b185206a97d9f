// Package scraper implements the availability watch engine: it collapses the
// active alerts into the minimal set of distinct upstream queries, matches
// returned inventory against each alert's criteria, and decides which alerts
// are due a notification.
//
// Pipeline per run: plan queries → fetch (once per distinct query) → match →
// deduplicate → gate → notify + write back tracking timestamps.
package scraper

import "github.com/mouseagents/room-finder/internal/catalog"

// Query is one distinct upstream availability request. It is a comparable
// value and serves directly as the offers-cache key; dates are ISO calendar
// dates so equal tuples compare equal regardless of time zone.
type Query struct {
	ResortSlug   string
	CheckIn      string
	CheckOut     string
	DiscountCode string
}

// RoomOffer is one normalized room result returned for a Query. A nil Price
// means the upstream returned no usable rate; such offers never match.
type RoomOffer struct {
	Code         string
	Unavailable  bool
	Price        *int
	DiscountCode string

	// Marketing copy for the offer the price was fetched under, carried
	// through to the notification email.
	OfferName   string
	OfferDetail string
}

// Match is a room offer that satisfied one alert's filters. Matches live for
// a single run only.
type Match struct {
	RoomCategory string
	RoomCode     string
	Price        int
	DiscountCode string
	OfferName    string
	OfferDetail  string
}

// Discounted reports whether the match was priced under a real marketing
// offer rather than the standard rate.
func (m Match) Discounted() bool {
	return !catalog.IsStandard(m.DiscountCode)
}
