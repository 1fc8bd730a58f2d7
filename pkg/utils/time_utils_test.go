package utils

import (
	"testing"
	"time"
)

func TestTripDayCount(t *testing.T) {
	date := func(y int, m time.Month, d int) time.Time {
		return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
	}

	tests := []struct {
		name  string
		start time.Time
		end   time.Time
		want  int
	}{
		{"week inclusive", date(2024, 1, 10), date(2024, 1, 16), 7},
		{"same day", date(2024, 3, 5), date(2024, 3, 5), 1},
		{"overnight", date(2024, 3, 5), date(2024, 3, 6), 2},
		{"inverted", date(2024, 3, 6), date(2024, 3, 5), 0},
		{"missing start", time.Time{}, date(2024, 3, 5), 0},
		{"missing end", date(2024, 3, 5), time.Time{}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := TripDayCount(tt.start, tt.end); got != tt.want {
				t.Fatalf("TripDayCount = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestTripDayCount_IgnoresTimeOfDay(t *testing.T) {
	start := time.Date(2024, 1, 10, 23, 30, 0, 0, time.UTC)
	end := time.Date(2024, 1, 11, 0, 15, 0, 0, time.UTC)
	if got := TripDayCount(start, end); got != 2 {
		t.Fatalf("TripDayCount = %d, want 2", got)
	}
}

func TestDayNumbers(t *testing.T) {
	got := DayNumbers(3)
	if len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("DayNumbers(3) = %v", got)
	}
	if got := DayNumbers(0); len(got) != 0 {
		t.Fatalf("DayNumbers(0) = %v", got)
	}
}

func TestParseFormatDateRoundTrip(t *testing.T) {
	parsed, err := ParseDate("2024-01-10")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if got := FormatDate(parsed); got != "2024-01-10" {
		t.Fatalf("FormatDate = %q", got)
	}
	if got := FormatDate(time.Time{}); got != "" {
		t.Fatalf("FormatDate(zero) = %q", got)
	}
}
