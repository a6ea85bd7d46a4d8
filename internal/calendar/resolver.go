// Package calendar implements the holiday and name-day resolution engine.
// Every function is a pure computation over the shared read-only dataset:
// absence of data is reported through ok-booleans or nil results, never
// through errors, and relative-date functions take the current instant as
// an explicit parameter so callers control the clock.
package calendar

import (
	"github.com/jsykora/holiday-api/internal/dataset"
)

// Resolver answers holiday and name-day queries against one Calendar.
// It holds no mutable state and is safe for concurrent use.
type Resolver struct {
	data *dataset.Calendar
}

// New creates a Resolver over the given dataset.
func New(data *dataset.Calendar) *Resolver {
	return &Resolver{data: data}
}

// ResolvedHoliday is the uniform holiday record returned by every lookup:
// the month context is flattened into each entry.
type ResolvedHoliday struct {
	Month       string `json:"month"`
	MonthNumber int    `json:"monthNumber"`
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Type        string `json:"type"`
}

// resolve flattens one holiday entry with its month context.
func resolve(m *dataset.Month, h dataset.HolidayEntry) ResolvedHoliday {
	return ResolvedHoliday{
		Month:       m.Name,
		MonthNumber: m.Number,
		Day:         h.Day,
		Title:       h.Title,
		Type:        h.Type,
	}
}
