package calendar

import (
	"strings"

	"github.com/jsykora/holiday-api/internal/dataset"
)

// NameDayMatch pairs a stored "DD/MM" date key with the matched name value.
type NameDayMatch struct {
	Date string `json:"date"`
	Name string `json:"name"`
}

// SearchHolidaysByTitle finds holidays whose title contains the given
// substring, case-insensitively, across both supported countries. Both
// country keys are always present, even when empty; the empty substring
// matches everything.
func (r *Resolver) SearchHolidaysByTitle(title string) map[string][]ResolvedHoliday {
	needle := strings.ToLower(title)
	result := make(map[string][]ResolvedHoliday, len(dataset.Countries))

	for _, country := range dataset.Countries {
		matches := []ResolvedHoliday{}
		all, ok := r.AllHolidays(country)
		if ok {
			for _, h := range all {
				if strings.Contains(strings.ToLower(h.Title), needle) {
					matches = append(matches, h)
				}
			}
		}
		result[country] = matches
	}
	return result
}

// SearchNameDays finds every stored name value containing the given
// substring, case-insensitively, across a country's full name-day
// calendar. False if the country is absent.
func (r *Resolver) SearchNameDays(country, name string) ([]NameDayMatch, bool) {
	months, ok := r.data.NameDayMonths(country)
	if !ok {
		return nil, false
	}

	needle := strings.ToLower(name)
	matches := []NameDayMatch{}
	for _, m := range months {
		for _, key := range m.DayKeys {
			value := m.Days[key]
			if strings.Contains(strings.ToLower(value), needle) {
				matches = append(matches, NameDayMatch{Date: key, Name: value})
			}
		}
	}
	return matches, true
}
