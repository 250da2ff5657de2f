package util

import "time"

// Sentinels for the "all" period, wide enough to cover any plausible
// transaction date.
var (
	allStart = time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC)
	allEnd   = time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC)
)

// PeriodRange resolves a period token (day, week, month, year, all) against
// now into the half-open window [start, end). Comparisons downstream are
// always start <= date < end. Unrecognized tokens resolve like "month".
func PeriodRange(period string, now time.Time) (time.Time, time.Time) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	switch period {
	case "day":
		return midnight, midnight.AddDate(0, 0, 1)
	case "week":
		// Monday-start week: Go counts Sunday as 0.
		offset := (int(now.Weekday()) + 6) % 7
		start := midnight.AddDate(0, 0, -offset)
		return start, start.AddDate(0, 0, 7)
	case "year":
		start := time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(1, 0, 0)
	case "all":
		return allStart, allEnd
	default:
		// "month" and anything unknown.
		start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 1, 0)
	}
}
