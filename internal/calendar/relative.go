package calendar

import (
	"math"
	"time"

	"github.com/jsykora/holiday-api/internal/dataset"
)

// HolidayWithDate is a ResolvedHoliday materialized onto a concrete
// calendar date.
type HolidayWithDate struct {
	ResolvedHoliday
	Date string `json:"date"`
}

// Countdown reports the number of days until a country's next holiday.
type Countdown struct {
	Days        int              `json:"days"`
	NextHoliday CountdownHoliday `json:"nextHoliday"`
}

// CountdownHoliday identifies the holiday a countdown runs to.
type CountdownHoliday struct {
	Title string `json:"title"`
	Date  string `json:"date"`
}

// HolidaysForDate returns the holidays falling on the given calendar date
// for every supported country. A country without data for that month maps
// to an empty list.
func (r *Resolver) HolidaysForDate(date time.Time) map[string][]ResolvedHoliday {
	result := make(map[string][]ResolvedHoliday, len(dataset.Countries))
	monthKey, _ := MonthKeyFromNumber(int(date.Month()))
	for _, country := range dataset.Countries {
		result[country] = r.HolidaysByDay(country, monthKey, date.Day())
	}
	return result
}

// NameDaysForDate returns the name bound to the given calendar date for
// every supported country, with an empty string when unresolved.
func (r *Resolver) NameDaysForDate(date time.Time) map[string]string {
	result := make(map[string]string, len(dataset.Countries))
	month, _ := MonthKeyFromNumber(int(date.Month()))
	for _, country := range dataset.Countries {
		name, _ := r.NameDay(country, month, date.Day())
		result[country] = name
	}
	return result
}

// CheckOverlap reports which countries have a holiday on the given date,
// as a per-country day lookup over the same calendar date.
func (r *Resolver) CheckOverlap(date time.Time) map[string][]ResolvedHoliday {
	return r.HolidaysForDate(date)
}

// NextHoliday returns a country's earliest holiday on or after now,
// rolling over to the first holiday of next year when none remain this
// year. Nil if the country has no holidays at all.
func (r *Resolver) NextHoliday(country string, now time.Time) *HolidayWithDate {
	h, date, ok := r.nextHolidayAt(country, now)
	if !ok {
		return nil
	}
	return &HolidayWithDate{ResolvedHoliday: h, Date: date.Format("2006-01-02")}
}

// PreviousHoliday mirrors NextHoliday: the latest holiday strictly before
// now, rolling back to the last holiday of the previous year.
func (r *Resolver) PreviousHoliday(country string, now time.Time) *HolidayWithDate {
	all, ok := r.AllHolidays(country)
	if !ok || len(all) == 0 {
		return nil
	}

	var found *HolidayWithDate
	for _, h := range all {
		date := dateOf(h, now.Year(), now.Location())
		if date.Before(now) {
			found = &HolidayWithDate{ResolvedHoliday: h, Date: date.Format("2006-01-02")}
		}
	}
	if found != nil {
		return found
	}

	// Nothing earlier this year: the previous holiday is last year's final one.
	last := all[len(all)-1]
	date := dateOf(last, now.Year()-1, now.Location())
	return &HolidayWithDate{ResolvedHoliday: last, Date: date.Format("2006-01-02")}
}

// HolidayCountdown returns the number of days from the given date until
// the country's next holiday, rounded up to whole days. Nil when the
// country has no holidays.
func (r *Resolver) HolidayCountdown(country string, from time.Time) *Countdown {
	h, date, ok := r.nextHolidayAt(country, from)
	if !ok {
		return nil
	}

	days := int(math.Ceil(date.Sub(from).Hours() / 24))
	return &Countdown{
		Days: days,
		NextHoliday: CountdownHoliday{
			Title: h.Title,
			Date:  date.Format("2006-01-02"),
		},
	}
}

func (r *Resolver) nextHolidayAt(country string, now time.Time) (ResolvedHoliday, time.Time, bool) {
	all, ok := r.AllHolidays(country)
	if !ok || len(all) == 0 {
		return ResolvedHoliday{}, time.Time{}, false
	}

	for _, h := range all {
		date := dateOf(h, now.Year(), now.Location())
		if !date.Before(now) {
			return h, date, true
		}
	}

	// Past the last holiday of the year: roll over to next year's first.
	first := all[0]
	return first, dateOf(first, now.Year()+1, now.Location()), true
}

// dateOf materializes a holiday onto a concrete year at local midnight.
func dateOf(h ResolvedHoliday, year int, loc *time.Location) time.Time {
	return time.Date(year, time.Month(h.MonthNumber), h.Day, 0, 0, 0, 0, loc)
}
