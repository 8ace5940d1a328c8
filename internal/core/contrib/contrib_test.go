package contrib

import (
	"testing"
	"time"

	ptime "folio/internal/platform/time"
)

func day(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestCalendarDensity(t *testing.T) {
	now := day(2025, time.June, 15)
	cal := Calendar(now, nil)

	if len(cal) != CalendarDays {
		t.Fatalf("want %d days, got %d", CalendarDays, len(cal))
	}
	if got := cal[len(cal)-1].Date; got != "2025-06-15" {
		t.Fatalf("last day = %q, want today", got)
	}
	// consecutive, no gaps, no duplicates
	prev, _ := time.Parse("2006-01-02", cal[0].Date)
	for _, d := range cal[1:] {
		cur, err := time.Parse("2006-01-02", d.Date)
		if err != nil {
			t.Fatalf("bad date %q: %v", d.Date, err)
		}
		if cur.Sub(prev) != 24*time.Hour {
			t.Fatalf("gap between %s and %s", prev.Format("2006-01-02"), d.Date)
		}
		prev = cur
	}
	for _, d := range cal {
		if d.Count != 0 {
			t.Fatalf("no activity given but %s has count %d", d.Date, d.Count)
		}
	}
}

func TestCalendarMatchesWeeks(t *testing.T) {
	// Sunday June 15 2025
	now := day(2025, time.June, 15)
	week := ptime.WeekStartSunday(now)

	activity := []Weekly{
		{Week: week.Unix(), Total: 5, Days: []int{5, 0, 0, 0, 0, 0, 0}},
	}
	cal := Calendar(now, activity)

	last := cal[len(cal)-1]
	if last.Date != "2025-06-15" || last.Count != 5 {
		t.Fatalf("sunday cell = %+v, want count 5", last)
	}
}

func TestCalendarSumsDuplicateWeeks(t *testing.T) {
	now := day(2025, time.June, 18) // Wednesday
	week := ptime.WeekStartSunday(now)

	// two repos reporting the same week
	activity := []Weekly{
		{Week: week.Unix(), Total: 3, Days: []int{0, 0, 0, 3, 0, 0, 0}},
		{Week: week.Unix(), Total: 4, Days: []int{0, 0, 0, 4, 0, 0, 0}},
	}
	cal := Calendar(now, activity)

	last := cal[len(cal)-1]
	if last.Count != 7 {
		t.Fatalf("wednesday cell count = %d, want 7", last.Count)
	}
}

func TestCalcStreaksTrailingRun(t *testing.T) {
	days := make([]Day, 10)
	for i := range days {
		days[i] = Day{Date: "d", Count: 0}
	}
	// three day run at the end
	days[7].Count = 1
	days[8].Count = 2
	days[9].Count = 1

	s := CalcStreaks(days)
	if s.Current != 3 {
		t.Fatalf("current = %d, want 3", s.Current)
	}
	if s.Longest != 3 {
		t.Fatalf("longest = %d, want 3", s.Longest)
	}
}

func TestCalcStreaksZeroLastDay(t *testing.T) {
	days := []Day{
		{Count: 1}, {Count: 1}, {Count: 1}, {Count: 1}, {Count: 0},
	}
	s := CalcStreaks(days)
	if s.Current != 0 {
		t.Fatalf("current = %d, want 0 when last day is empty", s.Current)
	}
	if s.Longest != 4 {
		t.Fatalf("longest = %d, want 4", s.Longest)
	}
}

func TestCalcStreaksLongestNotTrailing(t *testing.T) {
	days := []Day{
		{Count: 1}, {Count: 1}, {Count: 1}, {Count: 0}, {Count: 2}, {Count: 2},
	}
	s := CalcStreaks(days)
	if s.Current != 2 {
		t.Fatalf("current = %d, want 2", s.Current)
	}
	if s.Longest != 3 {
		t.Fatalf("longest = %d, want 3", s.Longest)
	}
	if s.Longest < s.Current {
		t.Fatalf("longest %d < current %d", s.Longest, s.Current)
	}
}

func TestCalcStreaksEmpty(t *testing.T) {
	s := CalcStreaks(nil)
	if s.Current != 0 || s.Longest != 0 {
		t.Fatalf("empty calendar streaks = %+v, want zeros", s)
	}
}
