package utils

import "time"

// Trip dates travel as plain calendar dates. Serializing them with a time
// component invites timezone drift between the planner and the itinerary
// reader, so everything goes through this layout.
const DateLayout = "2006-01-02"

func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

func FormatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.Format(DateLayout)
}

// TripDayCount returns the inclusive number of calendar days between start
// and end. A one-day trip (start == end) counts as 1. Returns 0 when the
// range is inverted or either date is missing.
func TripDayCount(start, end time.Time) int {
	if start.IsZero() || end.IsZero() {
		return 0
	}
	s := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	e := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC)
	if e.Before(s) {
		return 0
	}
	return int(e.Sub(s).Hours()/24) + 1
}

// DayNumbers expands a trip length into the 1-based sequence the itinerary
// view renders, e.g. 3 -> [1 2 3].
func DayNumbers(count int) []int {
	if count <= 0 {
		return []int{}
	}
	days := make([]int, count)
	for i := range days {
		days[i] = i + 1
	}
	return days
}
