package dashboard

import (
	"time"

	"tripboard/internal/domain/models"
)

// dayKey reduces t to its calendar day (in t's own location) as yyyymmdd.
func dayKey(t time.Time) int {
	y, m, d := t.Date()
	return y*10000 + int(m)*100 + d
}

// addDays returns midnight of the day n days after t, in t's location.
func addDays(t time.Time, n int) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d+n, 0, 0, 0, 0, t.Location())
}

// TripOnDate reports whether date falls within the trip's inclusive date range.
// Time of day is ignored on all three values.
func TripOnDate(t models.Trip, date time.Time) bool {
	k := dayKey(date)
	return dayKey(t.StartDate) <= k && k <= dayKey(t.EndDate)
}
