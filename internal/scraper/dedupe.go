package scraper

// Dedupe collapses multiple matches for the same room category into one.
// A category that matched under both the standard rate and a marketing offer
// keeps only the offer; among several offers the cheapest wins, which makes
// the result deterministic whatever order the queries returned in. Categories
// with only standard matches keep the first one seen.
func Dedupe(matches []Match) []Match {
	if len(matches) <= 1 {
		return matches
	}

	var order []string
	groups := make(map[string][]Match)
	for _, m := range matches {
		if _, seen := groups[m.RoomCategory]; !seen {
			order = append(order, m.RoomCategory)
		}
		groups[m.RoomCategory] = append(groups[m.RoomCategory], m)
	}

	deduped := make([]Match, 0, len(order))
	for _, category := range order {
		deduped = append(deduped, pick(groups[category]))
	}
	return deduped
}

func pick(group []Match) Match {
	best := group[0]
	for _, m := range group[1:] {
		switch {
		case m.Discounted() && !best.Discounted():
			best = m
		case m.Discounted() && best.Discounted() && m.Price < best.Price:
			best = m
		}
	}
	return best
}
