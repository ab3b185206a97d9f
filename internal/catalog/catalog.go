// Package catalog holds the immutable resort and room-code tables that map
// human-readable room categories to the provider's booking codes.
//
// All tables are package-level data loaded once at startup; nothing here
// mutates after initialization. Code lookups are date-aware: a few resorts
// re-coded their booking categories at a fixed cutover date, so the table
// for those resorts carries two generations and the check-in date selects
// which one applies.
package catalog

import (
	"sort"
	"time"
)

// Store identifies which provider storefront a resort is booked through.
type Store string

const (
	StoreWDW Store = "wdw"
	StoreDLR Store = "dlr"
)

// Resort describes one property: its identity, its storefront, and its
// room-category → booking-code table.
type Resort struct {
	Slug        string
	DisplayName string
	Store       Store

	// apiSlug overrides Slug in provider URLs. Some properties share an
	// upstream listing (the Animal Kingdom villas are sold under the lodge).
	apiSlug string

	rooms effectiveDated[map[string][]string]
}

// ProviderSlug returns the slug used in provider API paths.
func (r *Resort) ProviderSlug() string {
	if r.apiSlug != "" {
		return r.apiSlug
	}
	return r.Slug
}

// Categories returns the room categories bookable for the given check-in
// date, sorted for stable output.
func (r *Resort) Categories(checkIn time.Time) []string {
	table, ok := r.rooms.at(checkIn)
	if !ok {
		return nil
	}
	cats := make([]string, 0, len(table))
	for name := range table {
		cats = append(cats, name)
	}
	sort.Strings(cats)
	return cats
}

// --------------------------------------------------------------------------
// Registry
// --------------------------------------------------------------------------

var resortIndex = buildIndex()

func buildIndex() map[string]*Resort {
	idx := make(map[string]*Resort, len(wdwResorts)+len(dlrResorts))
	for _, r := range wdwResorts {
		idx[r.Slug] = r
	}
	for _, r := range dlrResorts {
		idx[r.Slug] = r
	}
	return idx
}

// Lookup returns the resort for a slug.
func Lookup(slug string) (*Resort, bool) {
	r, ok := resortIndex[slug]
	return r, ok
}

// Resorts returns all known resorts sorted by slug.
func Resorts() []*Resort {
	all := make([]*Resort, 0, len(resortIndex))
	for _, r := range resortIndex {
		all = append(all, r)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].Slug < all[j].Slug })
	return all
}

// DisplayName returns the marketing name for a resort slug, falling back to
// the slug itself for unknown resorts.
func DisplayName(slug string) string {
	if r, ok := resortIndex[slug]; ok {
		return r.DisplayName
	}
	return slug
}

// --------------------------------------------------------------------------
// Code resolution
// --------------------------------------------------------------------------

// Resolve maps (resort, room category, check-in date) to the provider room
// codes for that category. Returns nil when the resort or category is
// unknown for that date — callers log a warning and treat the alert as
// matching nothing this run.
func Resolve(slug, category string, checkIn time.Time) []string {
	r, ok := resortIndex[slug]
	if !ok {
		return nil
	}
	table, ok := r.rooms.at(checkIn)
	if !ok {
		return nil
	}
	return table[category]
}

// RoomName reverses a booking code back to its room category for the given
// check-in date. Unknown codes come back verbatim, matching how the email
// templates handled unmapped rooms historically.
func RoomName(slug, code string, checkIn time.Time) string {
	r, ok := resortIndex[slug]
	if !ok {
		return code
	}
	table, ok := r.rooms.at(checkIn)
	if !ok {
		return code
	}
	for name, codes := range table {
		for _, c := range codes {
			if c == code {
				return name
			}
		}
	}
	return code
}

// date builds a UTC calendar date. All catalog cutovers and discount windows
// are calendar dates with no time component.
func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
