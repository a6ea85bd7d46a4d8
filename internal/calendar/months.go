package calendar

import (
	"strconv"
	"strings"

	"github.com/jsykora/holiday-api/internal/dataset"
)

// MonthKeyFromNumber maps a 1-based month number to its canonical
// lowercase key. Out-of-range numbers yield false.
func MonthKeyFromNumber(n int) (string, bool) {
	if n < 1 || n > 12 {
		return "", false
	}
	return dataset.MonthKeys[n-1], true
}

// MonthNumberFromName maps a month name (any case) to its 1-based number.
func MonthNumberFromName(name string) (int, bool) {
	return dataset.MonthNumber(strings.ToLower(name))
}

// MonthKey normalizes a month given as a number string or an English
// month name into the canonical lowercase key used as a dataset index.
// The country code does not vary the behavior; it is kept for interface
// symmetry with the other lookups.
func (r *Resolver) MonthKey(country, input string) (string, bool) {
	lower := strings.ToLower(strings.TrimSpace(input))
	if n, err := strconv.Atoi(lower); err == nil {
		return MonthKeyFromNumber(n)
	}
	if _, ok := dataset.MonthNumber(lower); ok {
		return lower, true
	}
	return "", false
}
