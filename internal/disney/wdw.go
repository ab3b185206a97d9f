package disney

import (
	"context"
	"fmt"

	"github.com/mouseagents/room-finder/internal/catalog"
	"github.com/mouseagents/room-finder/internal/scraper"
)

// The WDW storefront prices one marketing offer per request, so the query's
// discount code goes out as marketingOfferId and every returned room is
// priced under that code.

type wdwRequest struct {
	CheckInDate        string   `json:"checkInDate"`
	CheckOutDate       string   `json:"checkOutDate"`
	PartyMix           PartyMix `json:"partyMix"`
	Region             string   `json:"region"`
	Accessible         bool     `json:"accessible"`
	PersonalizationID  string   `json:"personalizationId"`
	SendOffersCarousel bool     `json:"sendOffersCarousel"`
	MarketingOfferID   string   `json:"marketingOfferId"`
	Affiliations       []string `json:"affiliations"`
	PostalCode         string   `json:"postalCode"`
}

func (c *Client) fetchWDW(ctx context.Context, resort *catalog.Resort, q scraper.Query) ([]scraper.RoomOffer, error) {
	u := fmt.Sprintf("%s/wdw-resorts-details-api/api/v1/resort/%s/availability-and-prices/?storeId=wdw",
		c.wdwBaseURL, resort.ProviderSlug())

	body := wdwRequest{
		CheckInDate:        q.CheckIn,
		CheckOutDate:       q.CheckOut,
		PartyMix:           c.party,
		Region:             "US",
		PersonalizationID:  personalizationID(),
		SendOffersCarousel: true,
		MarketingOfferID:   q.DiscountCode,
		Affiliations:       []string{"STD_GST"},
		PostalCode:         "02101",
	}

	resp, err := c.post(ctx, u, body, c.wdwBaseURL)
	if err != nil {
		return nil, fmt.Errorf("wdw %s: %w", q.ResortSlug, err)
	}

	offers := make([]scraper.RoomOffer, 0, len(resp.RoomPriceLookup))
	for id, room := range resp.RoomPriceLookup {
		code := room.Code
		if code == "" {
			code = id
		}
		name, detail := "Standard Price", ""
		if !catalog.IsStandard(q.DiscountCode) {
			name, detail = resp.offerName(room.MarketingOfferID)
		}
		offers = append(offers, scraper.RoomOffer{
			Code:         code,
			Unavailable:  room.unavailable(),
			Price:        room.price(),
			DiscountCode: q.DiscountCode,
			OfferName:    name,
			OfferDetail:  detail,
		})
	}

	c.logger.Debug("WDW availability fetched",
		"resort", q.ResortSlug, "code", q.DiscountCode, "rooms", len(offers))
	return offers, nil
}
