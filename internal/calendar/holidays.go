package calendar

// AllHolidays returns every holiday of a country, month by month in
// calendar order. The second result is false if the country is absent
// from the dataset.
func (r *Resolver) AllHolidays(country string) ([]ResolvedHoliday, bool) {
	months, ok := r.data.HolidayMonths(country)
	if !ok {
		return nil, false
	}

	var list []ResolvedHoliday
	for i := range months {
		m := &months[i]
		for _, h := range m.Holidays {
			list = append(list, resolve(m, h))
		}
	}
	return list, true
}

// HolidaysByMonth returns a month's holidays in stored order, or false if
// the country or month key is absent. monthKey must already be normalized
// via MonthKey.
func (r *Resolver) HolidaysByMonth(country, monthKey string) ([]ResolvedHoliday, bool) {
	m, ok := r.data.HolidayMonth(country, monthKey)
	if !ok {
		return nil, false
	}

	list := make([]ResolvedHoliday, 0, len(m.Holidays))
	for _, h := range m.Holidays {
		list = append(list, resolve(m, h))
	}
	return list, true
}

// HolidaysByDay returns the holidays falling on an exact day of a month.
// Unlike the other lookups there is no "absent" signal: an unknown
// country or month yields an empty list, same as a day with no holiday.
func (r *Resolver) HolidaysByDay(country, monthKey string, day int) []ResolvedHoliday {
	list := []ResolvedHoliday{}
	m, ok := r.data.HolidayMonth(country, monthKey)
	if !ok {
		return list
	}

	for _, h := range m.Holidays {
		if h.Day == day {
			list = append(list, resolve(m, h))
		}
	}
	return list
}
