package disney

import (
	"context"
	"fmt"

	"github.com/mouseagents/room-finder/internal/catalog"
	"github.com/mouseagents/room-finder/internal/scraper"
)

// dlrStandardOfferID is the marketing offer the DLR storefront uses for
// undiscounted pricing. Offers under it normalize to the standard
// pseudo-code.
const dlrStandardOfferID = "7010"

// The DLR storefront takes no offer parameter: a single request returns each
// room priced under whatever marketing offer currently applies to it. The
// planner collapses all of a DLR alert's codes to one canonical query, so
// this handler runs at most once per (resort, dates) per run.

type dlrRequest struct {
	CheckInDate  string   `json:"checkInDate"`
	CheckOutDate string   `json:"checkOutDate"`
	PartyMix     PartyMix `json:"partyMix"`
	Accessible   bool     `json:"accessible"`
	Affiliations []string `json:"affiliations"`
}

func (c *Client) fetchDLR(ctx context.Context, resort *catalog.Resort, q scraper.Query) ([]scraper.RoomOffer, error) {
	u := fmt.Sprintf("%s/dlr-resort-details-api/api/v1/availability-and-prices/%s?storeId=dlr&accessible=false",
		c.dlrBaseURL, resort.ProviderSlug())

	body := dlrRequest{
		CheckInDate:  q.CheckIn,
		CheckOutDate: q.CheckOut,
		PartyMix:     c.party,
		Affiliations: []string{"STD_GST"},
	}

	resp, err := c.post(ctx, u, body, c.dlrBaseURL)
	if err != nil {
		return nil, fmt.Errorf("dlr %s: %w", q.ResortSlug, err)
	}

	offers := make([]scraper.RoomOffer, 0, len(resp.RoomPriceLookup))
	for id, room := range resp.RoomPriceLookup {
		discountCode := room.MarketingOfferID
		if discountCode == "" || discountCode == dlrStandardOfferID {
			discountCode = catalog.StandardCode
		}
		name, detail := resp.offerName(room.MarketingOfferID)
		if discountCode == catalog.StandardCode {
			name, detail = "Standard Price", ""
		}
		offers = append(offers, scraper.RoomOffer{
			Code:         id,
			Unavailable:  room.unavailable(),
			Price:        room.price(),
			DiscountCode: discountCode,
			OfferName:    name,
			OfferDetail:  detail,
		})
	}

	c.logger.Debug("DLR availability fetched",
		"resort", q.ResortSlug, "rooms", len(offers))
	return offers, nil
}
