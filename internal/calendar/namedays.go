package calendar

import (
	"fmt"

	"github.com/jsykora/holiday-api/internal/dataset"
)

// AllNameDays returns a country's raw name-day calendar keyed by month,
// or false if the country is absent.
func (r *Resolver) AllNameDays(country string) (map[string]dataset.NameDayMonth, bool) {
	months, ok := r.data.NameDayMonths(country)
	if !ok {
		return nil, false
	}

	byMonth := make(map[string]dataset.NameDayMonth, len(months))
	for _, m := range months {
		byMonth[m.Key] = m
	}
	return byMonth, true
}

// NameDaysByMonth returns a month's "DD/MM" to name mapping, or false if
// the country, month, or the month's days map is absent.
func (r *Resolver) NameDaysByMonth(country, monthKey string) (map[string]string, bool) {
	m, ok := r.data.NameDayMonth(country, monthKey)
	if !ok || m.Days == nil {
		return nil, false
	}
	return m.Days, true
}

// NameDay returns the name bound to a date. The month may be a number or
// an English name; it is normalized first and an unresolvable month
// propagates as false. The lookup key is the zero-padded "DD/MM" form the
// dataset stores.
func (r *Resolver) NameDay(country, month string, day int) (string, bool) {
	monthKey, ok := r.MonthKey(country, month)
	if !ok {
		return "", false
	}
	monthNumber, _ := dataset.MonthNumber(monthKey)

	m, ok := r.data.NameDayMonth(country, monthKey)
	if !ok || m.Days == nil {
		return "", false
	}

	name, ok := m.Days[fmt.Sprintf("%02d/%02d", day, monthNumber)]
	if !ok || name == "" {
		return "", false
	}
	return name, true
}
