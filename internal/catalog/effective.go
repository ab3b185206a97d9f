package catalog

import "time"

// span is one generation of an effective-dated value, valid from `from`
// until superseded by a later span.
type span[T any] struct {
	from  time.Time
	value T
}

// effectiveDated is a value that changes at fixed cutover instants: a sorted
// list of (validFrom, value) pairs queried by date. Room code generations and
// discount validity windows both use it.
type effectiveDated[T any] struct {
	spans []span[T]
}

// always returns a value with a single generation covering all dates.
func always[T any](v T) effectiveDated[T] {
	return effectiveDated[T]{spans: []span[T]{{value: v}}}
}

// from appends a generation taking effect at the given instant. Generations
// must be added in ascending order of cutover date.
func (e effectiveDated[T]) from(cutover time.Time, v T) effectiveDated[T] {
	e.spans = append(e.spans, span[T]{from: cutover, value: v})
	return e
}

// at returns the value in effect on the given date. Dates at or after a
// cutover use the newer generation. ok is false when the date precedes
// every generation.
func (e effectiveDated[T]) at(t time.Time) (T, bool) {
	for i := len(e.spans) - 1; i >= 0; i-- {
		if !t.Before(e.spans[i].from) {
			return e.spans[i].value, true
		}
	}
	var zero T
	return zero, false
}
