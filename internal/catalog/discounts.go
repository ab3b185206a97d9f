package catalog

import "time"

// StandardCode is the pseudo discount code for undiscounted ("room only")
// pricing. It is always queryable regardless of check-in date.
const StandardCode = "room-only"

// discountWindows records the check-in date range each marketing offer
// applies to, expressed as effective-dated validity so the same span
// machinery serves both room tables and offers. Codes without an entry are
// assumed valid — new offers show up upstream before anyone updates this
// table, and dropping them silently would hide real discounts.
var discountWindows = map[string]effectiveDated[bool]{
	// Fall 2025 room offer
	"11296": window(date(2025, time.September, 28), date(2025, time.December, 24)),
	// Holiday 2025 offer
	"11313": window(date(2025, time.October, 1), date(2026, time.January, 3)),
	// Early 2026 offer
	"11316": window(date(2025, time.November, 25), date(2026, time.March, 31)),
}

// window builds validity spans for a closed date interval [start, end].
func window(start, end time.Time) effectiveDated[bool] {
	return always(false).from(start, true).from(end.AddDate(0, 0, 1), false)
}

// IsStandard reports whether a discount code is the standard-price
// pseudo-code.
func IsStandard(code string) bool {
	return code == StandardCode
}

// ValidDiscountCodes filters the requested discount codes down to those
// meaningful for the given check-in date, preserving request order and
// dropping duplicates. The standard pseudo-code always passes.
func ValidDiscountCodes(checkIn time.Time, requested []string) []string {
	valid := make([]string, 0, len(requested))
	seen := make(map[string]bool, len(requested))
	for _, code := range requested {
		if seen[code] {
			continue
		}
		seen[code] = true

		if IsStandard(code) {
			valid = append(valid, code)
			continue
		}
		w, known := discountWindows[code]
		if !known {
			valid = append(valid, code)
			continue
		}
		if inWindow, _ := w.at(checkIn); inWindow {
			valid = append(valid, code)
		}
	}
	return valid
}
