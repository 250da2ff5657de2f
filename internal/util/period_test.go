package util

import (
	"testing"
	"time"
)

func TestPeriodRange(t *testing.T) {
	// Friday, mid-afternoon.
	now := time.Date(2024, 3, 15, 14, 23, 7, 0, time.UTC)

	tests := []struct {
		period    string
		wantStart time.Time
		wantEnd   time.Time
	}{
		{"day", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 16, 0, 0, 0, 0, time.UTC)},
		{"week", time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC), time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)},
		{"month", time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC), time.Date(2024, 4, 1, 0, 0, 0, 0, time.UTC)},
		{"year", time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"all", time.Date(1970, 1, 1, 0, 0, 0, 0, time.UTC), time.Date(3000, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.period, func(t *testing.T) {
			start, end := PeriodRange(tt.period, now)
			if !start.Equal(tt.wantStart) || !end.Equal(tt.wantEnd) {
				t.Errorf("PeriodRange(%q) = [%v, %v), want [%v, %v)",
					tt.period, start, end, tt.wantStart, tt.wantEnd)
			}
		})
	}
}

func TestPeriodRange_UnknownTokenFallsBackToMonth(t *testing.T) {
	now := time.Date(2024, 3, 15, 14, 23, 7, 0, time.UTC)
	wantStart, wantEnd := PeriodRange("month", now)

	for _, token := range []string{"", "quarter", "MONTH", "garbage"} {
		start, end := PeriodRange(token, now)
		if !start.Equal(wantStart) || !end.Equal(wantEnd) {
			t.Errorf("PeriodRange(%q) = [%v, %v), want month window [%v, %v)",
				token, start, end, wantStart, wantEnd)
		}
	}
}

func TestPeriodRange_MonthYearRollover(t *testing.T) {
	now := time.Date(2023, 12, 20, 8, 0, 0, 0, time.UTC)
	start, end := PeriodRange("month", now)

	if !start.Equal(time.Date(2023, 12, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, want 2023-12-01", start)
	}
	if !end.Equal(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v, want 2024-01-01", end)
	}
}

func TestPeriodRange_WeekWhenNowIsMonday(t *testing.T) {
	// A Monday must start its own week.
	now := time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)
	start, end := PeriodRange("week", now)

	if !start.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, want 2024-03-11", start)
	}
	if !end.Equal(time.Date(2024, 3, 18, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("end = %v, want 2024-03-18", end)
	}
}

func TestPeriodRange_WeekWhenNowIsSunday(t *testing.T) {
	// Sunday belongs to the week starting the previous Monday.
	now := time.Date(2024, 3, 17, 23, 59, 59, 0, time.UTC)
	start, _ := PeriodRange("week", now)

	if !start.Equal(time.Date(2024, 3, 11, 0, 0, 0, 0, time.UTC)) {
		t.Errorf("start = %v, want 2024-03-11", start)
	}
}

func TestPeriodRange_HalfOpenBoundaries(t *testing.T) {
	now := time.Date(2024, 3, 15, 12, 0, 0, 0, time.UTC)
	start, end := PeriodRange("day", now)

	atStart := start
	atEnd := end

	if !(atStart.Compare(start) >= 0 && atStart.Before(end)) {
		t.Error("a date exactly at start must fall inside the window")
	}
	if atEnd.Compare(start) >= 0 && atEnd.Before(end) {
		t.Error("a date exactly at end must fall outside the window")
	}
}
