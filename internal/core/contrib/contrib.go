// Package contrib derives contribution calendars and streaks from weekly
// commit activity. Everything here is pure so the service layer stays thin
package contrib

import (
	"time"

	ptime "folio/internal/platform/time"
)

// Weekly is one week of commit activity
// Week is a unix timestamp for the week's Sunday, Days holds Sunday..Saturday
type Weekly struct {
	Week  int64
	Total int
	Days  []int
}

// Day is a single calendar cell
type Day struct {
	Date  string `json:"date"`
	Count int    `json:"count"`
}

// Streaks summarizes consecutive-day activity
type Streaks struct {
	Current int `json:"current"`
	Longest int `json:"longest"`
}

// CalendarDays is the fixed window size, one year ending today
const CalendarDays = 365

// Calendar builds exactly CalendarDays consecutive days ending at now's
// UTC date. Weeks are keyed by their Sunday; activity rows for the same
// week are summed so multi-repo input aggregates instead of shadowing.
// Days with no matching week count zero
func Calendar(now time.Time, activity []Weekly) []Day {
	// index day counts by week start
	byWeek := map[int64][7]int{}
	for _, w := range activity {
		key := ptime.DayStart(time.Unix(w.Week, 0).UTC()).Unix()
		cur := byWeek[key]
		for i := 0; i < len(w.Days) && i < 7; i++ {
			cur[i] += w.Days[i]
		}
		byWeek[key] = cur
	}

	today := ptime.DayStart(now)
	out := make([]Day, 0, CalendarDays)
	for i := CalendarDays - 1; i >= 0; i-- {
		date := today.AddDate(0, 0, -i)
		weekKey := ptime.WeekStartSunday(date).Unix()
		count := 0
		if days, ok := byWeek[weekKey]; ok {
			count = days[int(date.Weekday())]
		}
		out = append(out, Day{
			Date:  date.Format("2006-01-02"),
			Count: count,
		})
	}
	return out
}

// CalcStreaks walks the calendar once
// current is the trailing non-zero run ending on the last day, zero when
// the last day is zero; longest is the max non-zero run anywhere, so
// longest >= current always holds
func CalcStreaks(days []Day) Streaks {
	var s Streaks
	run := 0
	for _, d := range days {
		if d.Count > 0 {
			run++
			if run > s.Longest {
				s.Longest = run
			}
		} else {
			run = 0
		}
	}
	s.Current = run
	return s
}
