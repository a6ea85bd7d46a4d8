// Package dataset holds the static holiday and name-day calendar the
// resolver operates on. The calendar is loaded once at startup and is
// read-only for the lifetime of the process.
package dataset

// Supported country codes.
const (
	CountryCzech  = "cs"
	CountrySlovak = "sk"
)

// Countries lists the country codes every multi-country operation covers.
var Countries = []string{CountryCzech, CountrySlovak}

// MonthKeys lists the canonical lowercase month keys in calendar order.
// Month keys index both the holiday and the name-day calendars.
var MonthKeys = [12]string{
	"january", "february", "march", "april", "may", "june",
	"july", "august", "september", "october", "november", "december",
}

// MonthNumber returns the 1-based month number for a canonical month key.
func MonthNumber(key string) (int, bool) {
	for i, k := range MonthKeys {
		if k == key {
			return i + 1, true
		}
	}
	return 0, false
}

// HolidayEntry is a single holiday inside a month. Duplicates by (day,
// title) are permitted and preserved.
type HolidayEntry struct {
	Day   int    `json:"day"`
	Title string `json:"title"`
	Type  string `json:"type"`
}

// Month is one month of a country's holiday calendar.
type Month struct {
	Key      string         `json:"-"`
	Name     string         `json:"name"`
	Number   int            `json:"number"`
	Holidays []HolidayEntry `json:"holidays"`
}

// NameDayMonth is one month of a country's name-day calendar. Days is
// keyed by zero-padded "DD/MM" strings; the key format is a contract
// inherited from the source data. DayKeys holds the same keys ordered by
// day number so iteration is deterministic.
type NameDayMonth struct {
	Key     string            `json:"-"`
	Days    map[string]string `json:"days"`
	DayKeys []string          `json:"-"`
}

// Calendar is the immutable in-memory dataset. Months are stored in
// calendar order and holidays within a month are sorted by day, so
// iterating a country's holidays always yields chronological order
// within a year.
type Calendar struct {
	holidayMonths map[string][]Month
	holidayByKey  map[string]map[string]*Month
	nameDayMonths map[string][]NameDayMonth
	nameDayByKey  map[string]map[string]*NameDayMonth
}

// HolidayMonths returns a country's holiday months in calendar order.
// The second result is false if the country is absent.
func (c *Calendar) HolidayMonths(country string) ([]Month, bool) {
	months, ok := c.holidayMonths[country]
	return months, ok
}

// HolidayMonth returns one month of a country's holiday calendar, or
// false if the country or month key is absent.
func (c *Calendar) HolidayMonth(country, monthKey string) (*Month, bool) {
	byKey, ok := c.holidayByKey[country]
	if !ok {
		return nil, false
	}
	m, ok := byKey[monthKey]
	return m, ok
}

// NameDayMonths returns a country's name-day months in calendar order.
func (c *Calendar) NameDayMonths(country string) ([]NameDayMonth, bool) {
	months, ok := c.nameDayMonths[country]
	return months, ok
}

// NameDayMonth returns one month of a country's name-day calendar, or
// false if the country or month key is absent.
func (c *Calendar) NameDayMonth(country, monthKey string) (*NameDayMonth, bool) {
	byKey, ok := c.nameDayByKey[country]
	if !ok {
		return nil, false
	}
	m, ok := byKey[monthKey]
	return m, ok
}
