// Package disney provides HTTP client infrastructure for the resort
// availability-and-prices endpoints, shared by the WDW and DLR storefront
// handlers.
//
// Both storefronts take a POST with the stay parameters and answer with a
// roomPriceLookup map. Rate limiting is handled via a token bucket limiter;
// request headers imitate a browser session since the endpoints are the same
// ones the booking site calls.
package disney

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"math/rand/v2"
	"net/http"
	"strconv"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/mouseagents/room-finder/internal/catalog"
	"github.com/mouseagents/room-finder/internal/scraper"
)

// PartyMix is the party composition sent with every availability request.
type PartyMix struct {
	AdultCount   int   `json:"adultCount"`
	ChildCount   int   `json:"childCount"`
	NonAdultAges []int `json:"nonAdultAges"`
}

// Client issues availability queries against both storefronts. It implements
// scraper.Fetcher.
type Client struct {
	httpClient *http.Client
	wdwBaseURL string
	dlrBaseURL string
	limiter    *rate.Limiter
	party      PartyMix
	logger     *slog.Logger
}

// NewClient creates an availability client with rate limiting.
func NewClient(wdwBaseURL, dlrBaseURL string, requestsPerMinute int, party PartyMix, logger *slog.Logger) *Client {
	if logger == nil {
		logger = slog.Default()
	}
	if party.AdultCount == 0 {
		party.AdultCount = 2
	}
	if party.NonAdultAges == nil {
		party.NonAdultAges = []int{}
	}
	rps := float64(requestsPerMinute) / 60.0
	return &Client{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		wdwBaseURL: strings.TrimRight(wdwBaseURL, "/"),
		dlrBaseURL: strings.TrimRight(dlrBaseURL, "/"),
		limiter:    rate.NewLimiter(rate.Limit(rps), 1),
		party:      party,
		logger:     logger,
	}
}

// Fetch issues one upstream query and returns the normalized offers. Errors
// cover transport failures, non-2xx statuses, and malformed payloads — the
// orchestrator treats all of them as "no offers" for the affected query.
func (c *Client) Fetch(ctx context.Context, q scraper.Query) ([]scraper.RoomOffer, error) {
	resort, ok := catalog.Lookup(q.ResortSlug)
	if !ok {
		return nil, fmt.Errorf("unknown resort %q", q.ResortSlug)
	}
	if resort.Store == catalog.StoreDLR {
		return c.fetchDLR(ctx, resort, q)
	}
	return c.fetchWDW(ctx, resort, q)
}

// availabilityResponse is the common response wrapper of both storefronts.
type availabilityResponse struct {
	RoomPriceLookup      map[string]roomEntry  `json:"roomPriceLookup"`
	MarketingOfferLookup map[string]offerEntry `json:"marketingOfferLookup"`
}

type roomEntry struct {
	Code              string          `json:"code"`
	ReasonUnavailable json.RawMessage `json:"reasonUnavailable"`
	MarketingOfferID  string          `json:"marketingOfferId"`
	DisplayPrice      *displayPrice   `json:"displayPrice"`
}

type displayPrice struct {
	BasePrice *basePrice `json:"basePrice"`
}

type basePrice struct {
	Subtotal json.RawMessage `json:"subtotal"`
}

type offerEntry struct {
	Names offerNames `json:"names"`
}

type offerNames struct {
	DisplayName string `json:"displayName"`
	LongName    string `json:"longName"`
}

// unavailable reports whether the entry carries a reasonUnavailable marker.
func (e *roomEntry) unavailable() bool {
	trimmed := strings.TrimSpace(string(e.ReasonUnavailable))
	return trimmed != "" && trimmed != "null"
}

// price returns the nightly subtotal rounded to whole currency units, or nil
// when the entry has no usable rate. The API serves the subtotal either as a
// JSON number or a quoted decimal string.
func (e *roomEntry) price() *int {
	if e.DisplayPrice == nil || e.DisplayPrice.BasePrice == nil {
		return nil
	}
	raw := strings.Trim(strings.TrimSpace(string(e.DisplayPrice.BasePrice.Subtotal)), `"`)
	if raw == "" || raw == "null" {
		return nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f <= 0 {
		return nil
	}
	n := int(f + 0.5)
	return &n
}

// post performs a rate-limited POST against one of the storefront endpoints.
func (c *Client) post(ctx context.Context, u string, body any, origin string) (*availabilityResponse, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit wait: %w", err)
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json, text/plain, */*")
	req.Header.Set("Accept-Language", "en-US,en;q=0.9")
	req.Header.Set("User-Agent", randomUserAgent())
	if origin != "" {
		req.Header.Set("Origin", origin)
		req.Header.Set("Referer", origin+"/resorts/")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("availability API returned %d: %s", resp.StatusCode, truncate(raw, 200))
	}

	var result availabilityResponse
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	return &result, nil
}

// offerName resolves display copy for a marketing offer id, defaulting to
// the standard-rate label.
func (r *availabilityResponse) offerName(id string) (name, detail string) {
	if o, ok := r.MarketingOfferLookup[id]; ok && o.Names.DisplayName != "" {
		return o.Names.DisplayName, o.Names.LongName
	}
	return "Standard Price", ""
}

// personalizationID mimics the short random session id the booking site
// attaches to each request.
func personalizationID() string {
	const alphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	b := make([]byte, 9)
	for i := range b {
		b[i] = alphabet[rand.IntN(len(alphabet))]
	}
	return string(b)
}

// truncate returns a truncated string representation for error messages.
func truncate(b []byte, maxLen int) string {
	if len(b) <= maxLen {
		return string(b)
	}
	return string(b[:maxLen]) + "..."
}
