package calendar

import (
	"sort"
	"strings"
)

// HolidayStats aggregates a country's holidays by month and by type.
type HolidayStats struct {
	Total   int            `json:"total"`
	ByMonth map[string]int `json:"byMonth"`
	ByType  map[string]int `json:"byType"`
}

// NameCount is one entry of a name-frequency ranking.
type NameCount struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// Stats derives holiday counts for a country, keyed by the month's
// display name and the holiday's type tag. Nil if the country is absent.
func (r *Resolver) Stats(country string) *HolidayStats {
	all, ok := r.AllHolidays(country)
	if !ok {
		return nil
	}

	stats := &HolidayStats{
		Total:   len(all),
		ByMonth: make(map[string]int),
		ByType:  make(map[string]int),
	}
	for _, h := range all {
		stats.ByMonth[h.Month]++
		stats.ByType[h.Type]++
	}
	return stats
}

// nameSeparator splits a stored name-day value into individual given
// names. The separator is part of the dataset's value format.
const nameSeparator = ", "

// PopularNameDays ranks individual given names by how often they appear
// across a country's full name-day calendar, most frequent first. Ties
// keep encounter order. At most limit entries are returned; a
// non-positive limit means no cap. False if the country is absent.
func (r *Resolver) PopularNameDays(country string, limit int) ([]NameCount, bool) {
	months, ok := r.data.NameDayMonths(country)
	if !ok {
		return nil, false
	}

	counts := make(map[string]int)
	var order []string
	for _, m := range months {
		for _, key := range m.DayKeys {
			for _, name := range strings.Split(m.Days[key], nameSeparator) {
				if name == "" {
					continue
				}
				if _, seen := counts[name]; !seen {
					order = append(order, name)
				}
				counts[name]++
			}
		}
	}

	ranking := make([]NameCount, 0, len(order))
	for _, name := range order {
		ranking = append(ranking, NameCount{Name: name, Count: counts[name]})
	}
	sort.SliceStable(ranking, func(i, j int) bool {
		return ranking[i].Count > ranking[j].Count
	})

	if limit > 0 && len(ranking) > limit {
		ranking = ranking[:limit]
	}
	return ranking, true
}
