// Package dateutil provides calendar-month arithmetic for reservation terms.
//
// time.AddDate normalizes overflowing days (Jan 31 + 1 month = Mar 2/3),
// while reservation end dates follow the calendar rule where the result is
// clamped to the last valid day of the target month.
package dateutil

import "time"

// AddMonths adds whole calendar months to t, clamping the day to the last
// valid day of the resulting month: 2024-01-31 + 1 month = 2024-02-29.
func AddMonths(t time.Time, months int) time.Time {
	year, month, day := t.Date()

	firstOfTarget := time.Date(year, month+time.Month(months), 1, 0, 0, 0, 0, t.Location())
	if last := lastDayOfMonth(firstOfTarget); day > last {
		day = last
	}

	return time.Date(firstOfTarget.Year(), firstOfTarget.Month(), day,
		t.Hour(), t.Minute(), t.Second(), t.Nanosecond(), t.Location())
}

// YearsBetween returns the number of whole years elapsed from from to to,
// accounting for whether the anniversary has been reached.
func YearsBetween(from, to time.Time) int {
	years := to.Year() - from.Year()

	anniversary := AddMonths(from, years*12)
	if anniversary.After(to) {
		years--
	}

	return years
}

func lastDayOfMonth(t time.Time) int {
	firstOfNext := time.Date(t.Year(), t.Month()+1, 1, 0, 0, 0, 0, t.Location())
	return firstOfNext.AddDate(0, 0, -1).Day()
}
