package scraper_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mouseagents/room-finder/internal/alert"
	"github.com/mouseagents/room-finder/internal/catalog"
	"github.com/mouseagents/room-finder/internal/scraper"
)

func intPtr(n int) *int { return &n }

// boardwalkOffers builds the cached offers for a standard query and an 11296
// query against BoardWalk Inn: Water View (IC) at $350 standard, $300 under
// the offer.
func boardwalkOffers() ([]scraper.Query, map[scraper.Query][]scraper.RoomOffer) {
	std := scraper.Query{
		ResortSlug: "boardwalk-inn", CheckIn: "2025-11-01", CheckOut: "2025-11-05",
		DiscountCode: catalog.StandardCode,
	}
	disc := scraper.Query{
		ResortSlug: "boardwalk-inn", CheckIn: "2025-11-01", CheckOut: "2025-11-05",
		DiscountCode: "11296",
	}
	offers := map[scraper.Query][]scraper.RoomOffer{
		std: {
			{Code: "IC", Price: intPtr(350), DiscountCode: catalog.StandardCode, OfferName: "Standard Price"},
			{Code: "IL", Price: intPtr(280), DiscountCode: catalog.StandardCode, OfferName: "Standard Price"},
		},
		disc: {
			{Code: "IC", Price: intPtr(300), DiscountCode: "11296", OfferName: "Fall Room Offer", OfferDetail: "Save up to 25%"},
		},
	}
	return []scraper.Query{std, disc}, offers
}

func TestMatchAlertAnyAvailability(t *testing.T) {
	queries, offers := boardwalkOffers()
	a := makeAlert("boardwalk-inn", "Water View", day(2025, time.November, 1), day(2025, time.November, 5))

	matches := scraper.MatchAlert(&a, queries, offers, nil)

	require.Len(t, matches, 2)
	assert.Equal(t, "Water View", matches[0].RoomCategory)
	assert.Equal(t, 350, matches[0].Price)
	assert.Equal(t, 300, matches[1].Price)
	assert.Equal(t, "11296", matches[1].DiscountCode)
}

func TestMatchAlertDiscountedOnly(t *testing.T) {
	queries, offers := boardwalkOffers()
	a := makeAlert("boardwalk-inn", "Water View", day(2025, time.November, 1), day(2025, time.November, 5))
	a.AvailabilityType = alert.AvailabilityDiscounted

	matches := scraper.MatchAlert(&a, queries, offers, nil)

	require.Len(t, matches, 1)
	assert.Equal(t, 300, matches[0].Price)
	assert.True(t, matches[0].Discounted())
}

func TestMatchAlertMaxPrice(t *testing.T) {
	queries, offers := boardwalkOffers()
	a := makeAlert("boardwalk-inn", "Water View", day(2025, time.November, 1), day(2025, time.November, 5))
	a.MaxPrice = intPtr(280)

	assert.Empty(t, scraper.MatchAlert(&a, queries, offers, nil))

	// At the cap the match survives.
	a.MaxPrice = intPtr(300)
	matches := scraper.MatchAlert(&a, queries, offers, nil)
	require.Len(t, matches, 1)
	assert.Equal(t, 300, matches[0].Price)
}

func TestMatchAlertIgnoresOtherRooms(t *testing.T) {
	queries, offers := boardwalkOffers()
	a := makeAlert("boardwalk-inn", "Resort View", day(2025, time.November, 1), day(2025, time.November, 5))

	matches := scraper.MatchAlert(&a, queries, offers, nil)

	require.Len(t, matches, 1)
	assert.Equal(t, "IL", matches[0].RoomCode)
}

func TestMatchAlertSkipsUnavailableAndUnpriced(t *testing.T) {
	q := scraper.Query{
		ResortSlug: "boardwalk-inn", CheckIn: "2025-11-01", CheckOut: "2025-11-05",
		DiscountCode: catalog.StandardCode,
	}
	offers := map[scraper.Query][]scraper.RoomOffer{
		q: {
			{Code: "IC", Unavailable: true, Price: intPtr(350), DiscountCode: catalog.StandardCode},
			{Code: "IC", Price: nil, DiscountCode: catalog.StandardCode},
		},
	}
	a := makeAlert("boardwalk-inn", "Water View", day(2025, time.November, 1), day(2025, time.November, 5))

	assert.Empty(t, scraper.MatchAlert(&a, []scraper.Query{q}, offers, nil))
}

func TestMatchAlertUnknownCategory(t *testing.T) {
	queries, offers := boardwalkOffers()
	a := makeAlert("boardwalk-inn", "Moon View", day(2025, time.November, 1), day(2025, time.November, 5))

	assert.Nil(t, scraper.MatchAlert(&a, queries, offers, nil))
}

func TestMatchAlertMultiCodeCategory(t *testing.T) {
	// A DLR category spanning several inventory ids matches any of them.
	q := scraper.Query{
		ResortSlug: "grand-californian-hotel", CheckIn: "2025-11-01", CheckOut: "2025-11-05",
		DiscountCode: catalog.StandardCode,
	}
	offers := map[scraper.Query][]scraper.RoomOffer{
		q: {
			{Code: "19172023", Price: intPtr(1100), DiscountCode: catalog.StandardCode},
			{Code: "13874720", Price: intPtr(600), DiscountCode: catalog.StandardCode},
		},
	}
	a := makeAlert("grand-californian-hotel", "Premium View - Club Level", day(2025, time.November, 1), day(2025, time.November, 5))

	matches := scraper.MatchAlert(&a, []scraper.Query{q}, offers, nil)

	require.Len(t, matches, 1)
	assert.Equal(t, "19172023", matches[0].RoomCode)
	assert.Equal(t, "Premium View - Club Level", matches[0].RoomCategory)
}
