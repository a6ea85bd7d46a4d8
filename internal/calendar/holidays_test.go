package calendar

import (
	"reflect"
	"strconv"
	"testing"

	"github.com/jsykora/holiday-api/internal/dataset"
)

func TestAllHolidays(t *testing.T) {
	r := testResolver(t)

	holidays, ok := r.AllHolidays("cs")
	if !ok {
		t.Fatal("AllHolidays(cs) not ok")
	}
	if len(holidays) != 6 {
		t.Fatalf("AllHolidays(cs) returned %d holidays, want 6", len(holidays))
	}

	// Months flatten in calendar order, holidays in day order
	first, last := holidays[0], holidays[len(holidays)-1]
	if first.Title != "New Year" || first.Month != "January" || first.MonthNumber != 1 || first.Day != 1 {
		t.Errorf("first holiday = %+v, want New Year on January 1", first)
	}
	if last.Title != "New Year's Eve" || last.MonthNumber != 12 || last.Day != 31 {
		t.Errorf("last holiday = %+v, want New Year's Eve on December 31", last)
	}
}

func TestAllHolidays_UnknownCountry(t *testing.T) {
	r := testResolver(t)

	if _, ok := r.AllHolidays("de"); ok {
		t.Error("AllHolidays(de) should not resolve")
	}
}

func TestAllHolidays_MatchesPerMonthSum(t *testing.T) {
	r := testResolver(t)

	for _, country := range dataset.Countries {
		all, ok := r.AllHolidays(country)
		if !ok {
			t.Fatalf("AllHolidays(%s) not ok", country)
		}

		sum := 0
		for _, key := range dataset.MonthKeys {
			if monthly, ok := r.HolidaysByMonth(country, key); ok {
				sum += len(monthly)
			}
		}
		if len(all) != sum {
			t.Errorf("country %s: AllHolidays has %d entries, per-month sum is %d", country, len(all), sum)
		}
	}
}

func TestHolidaysByMonth(t *testing.T) {
	r := testResolver(t)

	holidays, ok := r.HolidaysByMonth("cs", "may")
	if !ok {
		t.Fatal("HolidaysByMonth(cs, may) not ok")
	}
	want := []ResolvedHoliday{
		{Month: "May", MonthNumber: 5, Day: 1, Title: "Labour Day", Type: "public"},
		{Month: "May", MonthNumber: 5, Day: 8, Title: "Victory Day", Type: "public"},
	}
	if !reflect.DeepEqual(holidays, want) {
		t.Errorf("HolidaysByMonth(cs, may) = %+v, want %+v", holidays, want)
	}
}

func TestHolidaysByMonth_Absent(t *testing.T) {
	r := testResolver(t)

	if _, ok := r.HolidaysByMonth("cs", "march"); ok {
		t.Error("HolidaysByMonth(cs, march) should not resolve")
	}
	if _, ok := r.HolidaysByMonth("de", "may"); ok {
		t.Error("HolidaysByMonth(de, may) should not resolve")
	}
}

func TestHolidaysByDay(t *testing.T) {
	r := testResolver(t)

	holidays := r.HolidaysByDay("cs", "may", 8)
	if len(holidays) != 1 || holidays[0].Title != "Victory Day" {
		t.Fatalf("HolidaysByDay(cs, may, 8) = %+v, want Victory Day", holidays)
	}
}

func TestHolidaysByDay_NeverAbsent(t *testing.T) {
	r := testResolver(t)

	tests := []struct {
		name           string
		country, month string
		day            int
	}{
		{"no holiday that day", "cs", "may", 2},
		{"month absent", "cs", "march", 1},
		{"country absent", "de", "may", 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.HolidaysByDay(tt.country, tt.month, tt.day)
			if got == nil {
				t.Fatal("HolidaysByDay returned nil, want empty list")
			}
			if len(got) != 0 {
				t.Errorf("HolidaysByDay = %+v, want empty", got)
			}
		})
	}
}

func TestHolidaysByDay_NumericStringEquivalence(t *testing.T) {
	r := testResolver(t)

	// Day parameters arrive as path strings; the parsed value must hit
	// the same entries regardless of leading zeros.
	for _, raw := range []string{"8", "08"} {
		day, err := strconv.Atoi(raw)
		if err != nil {
			t.Fatalf("parse %q: %v", raw, err)
		}
		got := r.HolidaysByDay("cs", "may", day)
		if len(got) != 1 || got[0].Title != "Victory Day" {
			t.Errorf("HolidaysByDay(cs, may, %q) = %+v, want Victory Day", raw, got)
		}
	}
}
