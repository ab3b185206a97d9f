package scraper

import (
	"github.com/google/uuid"

	"github.com/mouseagents/room-finder/internal/alert"
	"github.com/mouseagents/room-finder/internal/catalog"
)

// Plan is the deduplicated set of upstream queries for one run, with the
// mapping between queries and the alerts they serve. WDW plans one query per
// distinct (resort, check-in, check-out, code) tuple, however many alerts
// share it; DLR resorts plan one query per (resort, check-in, check-out).
type Plan struct {
	// Queries in first-planned order, each appearing exactly once.
	Queries []Query

	byQuery map[Query][]uuid.UUID
	byAlert map[uuid.UUID][]Query
}

// BuildPlan computes the run's query plan from the active alerts.
//
// Per alert, the requested discount codes are the standard pseudo-code plus
// any codes the user opted into, filtered by validity for the check-in date.
// Alerts that demand discounted availability never plan the standard code —
// a standard-price match could never notify them — and an alert whose code
// set filters down to nothing is left out of the plan entirely.
//
// DLR resorts take no offer parameter upstream: one response prices every
// room under whatever marketing offer applies to it. All of a DLR alert's
// codes therefore collapse to a single canonical (resort, dates) query.
func BuildPlan(alerts []alert.Alert) *Plan {
	p := &Plan{
		byQuery: make(map[Query][]uuid.UUID),
		byAlert: make(map[uuid.UUID][]Query),
	}

	for i := range alerts {
		a := &alerts[i]

		requested := make([]string, 0, len(a.SelectedDiscountCodes)+1)
		requested = append(requested, catalog.StandardCode)
		requested = append(requested, a.SelectedDiscountCodes...)

		codes := catalog.ValidDiscountCodes(a.CheckInDate, requested)
		if a.AvailabilityType == alert.AvailabilityDiscounted {
			codes = dropStandard(codes)
		}
		if len(codes) > 0 && isDLR(a.ResortSlug) {
			codes = []string{catalog.StandardCode}
		}

		for _, code := range codes {
			p.add(Query{
				ResortSlug:   a.ResortSlug,
				CheckIn:      a.CheckIn(),
				CheckOut:     a.CheckOut(),
				DiscountCode: code,
			}, a.ID)
		}
	}

	return p
}

// QueriesFor returns the queries planned on behalf of an alert. Empty for
// alerts excluded from this run.
func (p *Plan) QueriesFor(id uuid.UUID) []Query {
	return p.byAlert[id]
}

// AlertsFor returns the ids of the alerts a query serves.
func (p *Plan) AlertsFor(q Query) []uuid.UUID {
	return p.byQuery[q]
}

// Contains reports whether at least one query was planned for the alert.
func (p *Plan) Contains(id uuid.UUID) bool {
	return len(p.byAlert[id]) > 0
}

func (p *Plan) add(q Query, id uuid.UUID) {
	if _, seen := p.byQuery[q]; !seen {
		p.Queries = append(p.Queries, q)
	}
	p.byQuery[q] = append(p.byQuery[q], id)
	p.byAlert[id] = append(p.byAlert[id], q)
}

func isDLR(slug string) bool {
	r, ok := catalog.Lookup(slug)
	return ok && r.Store == catalog.StoreDLR
}

func dropStandard(codes []string) []string {
	kept := codes[:0]
	for _, c := range codes {
		if !catalog.IsStandard(c) {
			kept = append(kept, c)
		}
	}
	return kept
}
