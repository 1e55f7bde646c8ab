// Package dateutil holds the single day-boundary policy for the whole
// application. Every write that normalizes a timestamp to a calendar day and
// every query that filters on one must go through these helpers, in UTC.
package dateutil

import (
	"math"
	"time"
)

// StartOfDay truncates t to midnight UTC.
func StartOfDay(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// NextDay returns midnight UTC of the day after t. Day filters are expressed
// as date >= StartOfDay && date < NextDay.
func NextDay(t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, 1)
}

// MonthRange returns the half-open interval [first day of month, first day of
// next month) in UTC.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}

// InclusiveDays counts calendar days between start and end with both
// endpoints included: ceil(end-start in days) + 1.
func InclusiveDays(start, end time.Time) int {
	diff := end.Sub(start)
	return int(math.Ceil(diff.Hours()/24)) + 1
}
