package calendar

import "time"

// dateLayouts are the accepted input forms for date parameters.
var dateLayouts = []string{
	"2006-01-02",
	time.RFC3339,
	"2006-01-02T15:04:05",
}

// outputFormats maps the supported named output formats to Go layouts.
var outputFormats = map[string]string{
	"YYYY-MM-DD": "2006-01-02",
	"DD.MM.YYYY": "02.01.2006",
	"DD/MM/YYYY": "02/01/2006",
	"DD.MM.":     "02.01.",
}

// ParseDateString parses a date parameter, trying each accepted layout.
func ParseDateString(dateStr string) (time.Time, bool) {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, dateStr); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsValidDate reports whether the input parses to a real calendar date.
func IsValidDate(dateStr string) bool {
	_, ok := ParseDateString(dateStr)
	return ok
}

// IsWeekend reports whether the date falls on a Saturday or Sunday.
func IsWeekend(date time.Time) bool {
	wd := date.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// FormatDate renders a date string in one of the four named output
// formats. False for an unparseable date or an unrecognized format name.
func FormatDate(dateStr, format string) (string, bool) {
	layout, ok := outputFormats[format]
	if !ok {
		return "", false
	}
	t, ok := ParseDateString(dateStr)
	if !ok {
		return "", false
	}
	return t.Format(layout), true
}
