package util

import (
	"time"
)

const (
	monthKeyLayout   = "2006-01"
	monthLabelLayout = "Jan 2006"
	dateLayout       = "2006-01-02"
)

func MonthKey(t time.Time) string {
	return t.UTC().Format(monthKeyLayout)
}

func MonthLabel(t time.Time) string {
	return t.UTC().Format(monthLabelLayout)
}

func DateStamp(t time.Time) string {
	return t.UTC().Format(dateLayout)
}

// StartOfMonth truncates t to midnight UTC on the first day of its month.
func StartOfMonth(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), 1, 0, 0, 0, 0, time.UTC)
}

// LastMonths returns the first instant of each of the n months ending with
// the month containing now, oldest first.
func LastMonths(now time.Time, n int) []time.Time {
	if n <= 0 {
		return nil
	}
	start := StartOfMonth(now)
	months := make([]time.Time, n)
	for i := 0; i < n; i++ {
		months[i] = start.AddDate(0, i-(n-1), 0)
	}
	return months
}

func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, 0).Add(-time.Nanosecond)
}
