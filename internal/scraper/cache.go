package scraper

import "sync"

// offerCache holds each query's fetch result for the remainder of a run.
// Keys are the structured Query value itself — no string concatenation, so
// odd characters in slugs or codes cannot collide. Every key is written at
// most once (the plan has no duplicate queries); the mutex only guards
// insertion from concurrent fetch workers.
type offerCache struct {
	mu     sync.Mutex
	offers map[Query][]RoomOffer
}

func newOfferCache() *offerCache {
	return &offerCache{offers: make(map[Query][]RoomOffer)}
}

func (c *offerCache) put(q Query, offers []RoomOffer) {
	c.mu.Lock()
	c.offers[q] = offers
	c.mu.Unlock()
}

// snapshot returns the underlying map for read-only use after the fetch
// phase completes.
func (c *offerCache) snapshot() map[Query][]RoomOffer {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.offers
}
