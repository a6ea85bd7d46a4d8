package calendar

import (
	"testing"
	"time"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestHolidaysForDate(t *testing.T) {
	r := testResolver(t)

	result := r.HolidaysForDate(date(2025, time.May, 1))
	if len(result) != 2 {
		t.Fatalf("HolidaysForDate returned %d countries, want 2", len(result))
	}
	if len(result["cs"]) != 1 || result["cs"][0].Title != "Labour Day" {
		t.Errorf("cs = %+v, want Labour Day", result["cs"])
	}
	if len(result["sk"]) != 1 || result["sk"][0].Title != "Labour Day" {
		t.Errorf("sk = %+v, want Labour Day", result["sk"])
	}

	// sk has no May 8 holiday: empty list, not a missing key
	result = r.HolidaysForDate(date(2025, time.May, 8))
	if len(result["cs"]) != 1 {
		t.Errorf("cs on May 8 = %+v, want Victory Day", result["cs"])
	}
	if skList, ok := result["sk"]; !ok || len(skList) != 0 {
		t.Errorf("sk on May 8 = %+v, %v; want present and empty", skList, ok)
	}
}

func TestNameDaysForDate(t *testing.T) {
	r := testResolver(t)

	result := r.NameDaysForDate(date(2025, time.May, 1))
	if result["cs"] != "Alfa, Beta" {
		t.Errorf("cs = %q, want %q", result["cs"], "Alfa, Beta")
	}
	// sk has no May name days: empty string, not a missing key
	if name, ok := result["sk"]; !ok || name != "" {
		t.Errorf("sk = %q, %v; want present and empty", name, ok)
	}
}

func TestCheckOverlap(t *testing.T) {
	r := testResolver(t)

	overlap := r.CheckOverlap(date(2025, time.January, 1))
	if len(overlap["cs"]) != 1 || len(overlap["sk"]) != 1 {
		t.Errorf("overlap on Jan 1 = %+v, want one holiday per country", overlap)
	}

	overlap = r.CheckOverlap(date(2025, time.January, 6))
	if len(overlap["cs"]) != 0 || len(overlap["sk"]) != 1 {
		t.Errorf("overlap on Jan 6 = %+v, want sk only", overlap)
	}
}

func TestNextHoliday(t *testing.T) {
	r := testResolver(t)

	tests := []struct {
		name      string
		now       time.Time
		wantTitle string
		wantDate  string
	}{
		{"mid-year", date(2025, time.March, 15), "Labour Day", "2025-05-01"},
		{"on the holiday itself", date(2025, time.May, 8), "Victory Day", "2025-05-08"},
		{"between December holidays", date(2025, time.December, 25), "St. Stephen's Day", "2025-12-26"},
		{
			"just after the last holiday of the year",
			time.Date(2025, time.December, 31, 0, 0, 1, 0, time.UTC),
			"New Year", "2026-01-01",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.NextHoliday("cs", tt.now)
			if got == nil {
				t.Fatal("NextHoliday(cs) = nil")
			}
			if got.Title != tt.wantTitle || got.Date != tt.wantDate {
				t.Errorf("NextHoliday(cs, %s) = %s on %s; want %s on %s",
					tt.now, got.Title, got.Date, tt.wantTitle, tt.wantDate)
			}
		})
	}

	if got := r.NextHoliday("de", date(2025, time.March, 15)); got != nil {
		t.Errorf("NextHoliday(de) = %+v, want nil", got)
	}
}

func TestPreviousHoliday(t *testing.T) {
	r := testResolver(t)

	tests := []struct {
		name      string
		now       time.Time
		wantTitle string
		wantDate  string
	}{
		{"mid-year", date(2025, time.June, 15), "Victory Day", "2025-05-08"},
		{"holiday today is not previous", date(2025, time.May, 8), "Labour Day", "2025-05-01"},
		{
			"start of year rolls back to last year",
			date(2025, time.January, 1),
			"New Year's Eve", "2024-12-31",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.PreviousHoliday("cs", tt.now)
			if got == nil {
				t.Fatal("PreviousHoliday(cs) = nil")
			}
			if got.Title != tt.wantTitle || got.Date != tt.wantDate {
				t.Errorf("PreviousHoliday(cs, %s) = %s on %s; want %s on %s",
					tt.now, got.Title, got.Date, tt.wantTitle, tt.wantDate)
			}
		})
	}

	if got := r.PreviousHoliday("de", date(2025, time.June, 15)); got != nil {
		t.Errorf("PreviousHoliday(de) = %+v, want nil", got)
	}
}

func TestHolidayCountdown(t *testing.T) {
	r := testResolver(t)

	tests := []struct {
		name      string
		from      time.Time
		wantDays  int
		wantTitle string
	}{
		{"same day counts zero", date(2025, time.May, 8), 0, "Victory Day"},
		{"whole days", date(2025, time.May, 6), 2, "Victory Day"},
		{
			"partial days round up",
			time.Date(2025, time.May, 6, 12, 0, 0, 0, time.UTC),
			2, "Victory Day",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.HolidayCountdown("cs", tt.from)
			if got == nil {
				t.Fatal("HolidayCountdown(cs) = nil")
			}
			if got.Days != tt.wantDays || got.NextHoliday.Title != tt.wantTitle {
				t.Errorf("HolidayCountdown(cs, %s) = %d days to %s; want %d days to %s",
					tt.from, got.Days, got.NextHoliday.Title, tt.wantDays, tt.wantTitle)
			}
		})
	}

	if got := r.HolidayCountdown("de", date(2025, time.May, 6)); got != nil {
		t.Errorf("HolidayCountdown(de) = %+v, want nil", got)
	}
}

func TestHolidayCountdown_AgreesWithNextHoliday(t *testing.T) {
	r := testResolver(t)

	now := date(2025, time.March, 15)
	next := r.NextHoliday("cs", now)
	if next == nil {
		t.Fatal("NextHoliday(cs) = nil")
	}

	from, ok := ParseDateString(next.Date)
	if !ok {
		t.Fatalf("parse %q failed", next.Date)
	}
	countdown := r.HolidayCountdown("cs", from)
	if countdown == nil {
		t.Fatal("HolidayCountdown(cs) = nil")
	}
	if countdown.Days != 0 {
		t.Errorf("countdown from the next holiday's own date = %d days, want 0", countdown.Days)
	}
	if countdown.NextHoliday.Date != next.Date {
		t.Errorf("countdown target %s, want %s", countdown.NextHoliday.Date, next.Date)
	}
}
