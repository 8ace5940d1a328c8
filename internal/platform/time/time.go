// Package time contains time related helpers
package time

import "time"

// Ptr returns a pointer to t or nil if t is zero
func Ptr(t time.Time) *time.Time {
	if t.IsZero() {
		return nil
	}
	return &t
}

// DayStart truncates t to midnight UTC
func DayStart(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 0, 0, 0, 0, time.UTC)
}

// WeekStartSunday returns midnight UTC of the most recent Sunday at or before t
// Sunday itself maps to the same day
func WeekStartSunday(t time.Time) time.Time {
	d := DayStart(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// DaysAgo returns midnight UTC of the day n days before t
func DaysAgo(t time.Time, n int) time.Time {
	return DayStart(t).AddDate(0, 0, -n)
}
