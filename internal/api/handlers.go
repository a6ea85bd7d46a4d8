package api

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/jsykora/holiday-api/internal/calendar"
	"github.com/jsykora/holiday-api/internal/config"
)

// defaultPopularLimit caps the popular name-day ranking when the client
// does not ask for a specific size.
const defaultPopularLimit = 10

// Handlers contains all HTTP handlers and their dependencies.
type Handlers struct {
	resolver *calendar.Resolver
	cfg      *config.Config
	logger   *slog.Logger

	// now is the clock used by the today/tomorrow/next/previous
	// handlers. Tests replace it with a fixed instant.
	now func() time.Time
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(resolver *calendar.Resolver, cfg *config.Config, logger *slog.Logger) *Handlers {
	return &Handlers{
		resolver: resolver,
		cfg:      cfg,
		logger:   logger,
		now:      time.Now,
	}
}

// HealthCheck handles GET /health
func (h *Handlers) HealthCheck(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]string{
		"status": "healthy",
	})
}

// GetAllHolidays handles GET /api/v1/holidays/{country}
func (h *Handlers) GetAllHolidays(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")

	holidays, ok := h.resolver.AllHolidays(country)
	if !ok {
		WriteNotFound(w, "Country not found")
		return
	}
	WriteSuccess(w, holidays)
}

// GetHolidaysByMonth handles GET /api/v1/holidays/{country}/{month}
func (h *Handlers) GetHolidaysByMonth(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	month := chi.URLParam(r, "month")

	monthKey, ok := h.resolver.MonthKey(country, month)
	if !ok {
		WriteBadRequest(w, fmt.Sprintf("Invalid month: %s", month))
		return
	}

	holidays, ok := h.resolver.HolidaysByMonth(country, monthKey)
	if !ok {
		WriteNotFound(w, "No holidays found")
		return
	}
	WriteSuccess(w, holidays)
}

// GetHolidaysByDay handles GET /api/v1/holidays/{country}/{month}/{day}
func (h *Handlers) GetHolidaysByDay(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	month := chi.URLParam(r, "month")

	monthKey, ok := h.resolver.MonthKey(country, month)
	if !ok {
		WriteBadRequest(w, fmt.Sprintf("Invalid month: %s", month))
		return
	}

	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid day: %s", chi.URLParam(r, "day")))
		return
	}

	holidays := h.resolver.HolidaysByDay(country, monthKey, day)
	if len(holidays) == 0 {
		WriteNotFound(w, "No holidays on this day")
		return
	}
	WriteSuccess(w, holidays)
}

// SearchHolidays handles GET /api/v1/holidays/search/{title}
func (h *Handlers) SearchHolidays(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, h.resolver.SearchHolidaysByTitle(chi.URLParam(r, "title")))
}

// GetHolidayStats handles GET /api/v1/holidays/{country}/stats
func (h *Handlers) GetHolidayStats(w http.ResponseWriter, r *http.Request) {
	stats := h.resolver.Stats(chi.URLParam(r, "country"))
	if stats == nil {
		WriteNotFound(w, "Country not found")
		return
	}
	WriteSuccess(w, stats)
}

// GetNextHoliday handles GET /api/v1/holidays/{country}/next
func (h *Handlers) GetNextHoliday(w http.ResponseWriter, r *http.Request) {
	holiday := h.resolver.NextHoliday(chi.URLParam(r, "country"), h.now())
	if holiday == nil {
		WriteNotFound(w, "No holidays found")
		return
	}
	WriteSuccess(w, holiday)
}

// GetPreviousHoliday handles GET /api/v1/holidays/{country}/previous
func (h *Handlers) GetPreviousHoliday(w http.ResponseWriter, r *http.Request) {
	holiday := h.resolver.PreviousHoliday(chi.URLParam(r, "country"), h.now())
	if holiday == nil {
		WriteNotFound(w, "No holidays found")
		return
	}
	WriteSuccess(w, holiday)
}

// GetHolidayCountdown handles GET /api/v1/holidays/{country}/countdown/{date}
func (h *Handlers) GetHolidayCountdown(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")
	date, ok := calendar.ParseDateString(dateStr)
	if !ok {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}

	countdown := h.resolver.HolidayCountdown(chi.URLParam(r, "country"), date)
	if countdown == nil {
		WriteNotFound(w, "No holidays found")
		return
	}
	WriteSuccess(w, countdown)
}

// GetHolidayOverlap handles GET /api/v1/holidays/overlap/{date}
func (h *Handlers) GetHolidayOverlap(w http.ResponseWriter, r *http.Request) {
	dateStr := chi.URLParam(r, "date")
	date, ok := calendar.ParseDateString(dateStr)
	if !ok {
		WriteBadRequest(w, fmt.Sprintf("Invalid date format: %s. Use YYYY-MM-DD", dateStr))
		return
	}
	WriteSuccess(w, h.resolver.CheckOverlap(date))
}

// GetAllNameDays handles GET /api/v1/name-days/{country}
func (h *Handlers) GetAllNameDays(w http.ResponseWriter, r *http.Request) {
	days, ok := h.resolver.AllNameDays(chi.URLParam(r, "country"))
	if !ok {
		WriteNotFound(w, "Country not found")
		return
	}
	WriteSuccess(w, days)
}

// GetNameDaysByMonth handles GET /api/v1/name-days/{country}/{month}
func (h *Handlers) GetNameDaysByMonth(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	month := chi.URLParam(r, "month")

	monthKey, ok := h.resolver.MonthKey(country, month)
	if !ok {
		WriteBadRequest(w, fmt.Sprintf("Invalid month: %s", month))
		return
	}

	names, ok := h.resolver.NameDaysByMonth(country, monthKey)
	if !ok {
		WriteNotFound(w, "No name days found")
		return
	}
	WriteSuccess(w, names)
}

// GetNameDay handles GET /api/v1/name-days/{country}/{month}/{day}
//
// An unresolved date answers with an empty name rather than an error;
// the route never fails on missing data.
func (h *Handlers) GetNameDay(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	month := chi.URLParam(r, "month")

	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid day: %s", chi.URLParam(r, "day")))
		return
	}

	name, _ := h.resolver.NameDay(country, month, day)
	WriteSuccess(w, map[string]string{"name": name})
}

// SearchNameDays handles GET /api/v1/name-days/{country}/search/{name}
func (h *Handlers) SearchNameDays(w http.ResponseWriter, r *http.Request) {
	matches, ok := h.resolver.SearchNameDays(chi.URLParam(r, "country"), chi.URLParam(r, "name"))
	if !ok || len(matches) == 0 {
		WriteNotFound(w, "No name day found")
		return
	}
	WriteSuccess(w, matches)
}

// GetPopularNameDays handles GET /api/v1/name-days/{country}/popular?limit=N
func (h *Handlers) GetPopularNameDays(w http.ResponseWriter, r *http.Request) {
	limit := defaultPopularLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		if l, err := strconv.Atoi(limitStr); err == nil && l > 0 {
			limit = l
		}
	}

	popular, ok := h.resolver.PopularNameDays(chi.URLParam(r, "country"), limit)
	if !ok {
		WriteNotFound(w, "No name days found")
		return
	}
	WriteSuccess(w, popular)
}

// GetMonthCalendar handles GET /api/v1/calendar/{country}/{month}
func (h *Handlers) GetMonthCalendar(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	month := chi.URLParam(r, "month")

	monthKey, ok := h.resolver.MonthKey(country, month)
	if !ok {
		WriteBadRequest(w, fmt.Sprintf("Invalid month: %s", month))
		return
	}

	holidays, _ := h.resolver.HolidaysByMonth(country, monthKey)
	nameDays, _ := h.resolver.NameDaysByMonth(country, monthKey)
	WriteSuccess(w, map[string]interface{}{
		"holidays": holidays,
		"nameDays": nameDays,
	})
}

// GetDayInfo handles GET /api/v1/day/{country}/{month}/{day}
func (h *Handlers) GetDayInfo(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	month := chi.URLParam(r, "month")

	monthKey, ok := h.resolver.MonthKey(country, month)
	if !ok {
		WriteBadRequest(w, fmt.Sprintf("Invalid month: %s", month))
		return
	}

	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid day: %s", chi.URLParam(r, "day")))
		return
	}

	holidays := h.resolver.HolidaysByDay(country, monthKey, day)
	name, _ := h.resolver.NameDay(country, month, day)
	WriteSuccess(w, map[string]interface{}{
		"holidays": holidays,
		"name":     name,
	})
}

// GetDayWeekend handles GET /api/v1/day/{country}/{month}/{day}/weekend
//
// The date is materialized onto the current year, matching the relative
// lookups.
func (h *Handlers) GetDayWeekend(w http.ResponseWriter, r *http.Request) {
	country := chi.URLParam(r, "country")
	month := chi.URLParam(r, "month")

	monthKey, ok := h.resolver.MonthKey(country, month)
	if !ok {
		WriteBadRequest(w, fmt.Sprintf("Invalid month: %s", month))
		return
	}
	monthNumber, _ := calendar.MonthNumberFromName(monthKey)

	day, err := strconv.Atoi(chi.URLParam(r, "day"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid day: %s", chi.URLParam(r, "day")))
		return
	}

	now := h.now()
	date := time.Date(now.Year(), time.Month(monthNumber), day, 0, 0, 0, 0, now.Location())
	WriteSuccess(w, map[string]bool{"isWeekend": calendar.IsWeekend(date)})
}

// GetToday handles GET /api/v1/today
func (h *Handlers) GetToday(w http.ResponseWriter, r *http.Request) {
	h.writeDaySnapshot(w, h.now())
}

// GetTomorrow handles GET /api/v1/tomorrow
func (h *Handlers) GetTomorrow(w http.ResponseWriter, r *http.Request) {
	h.writeDaySnapshot(w, h.now().AddDate(0, 0, 1))
}

// writeDaySnapshot answers with the holidays and name days of one
// calendar date for every supported country.
func (h *Handlers) writeDaySnapshot(w http.ResponseWriter, date time.Time) {
	WriteSuccess(w, map[string]interface{}{
		"date":     date.Format("2006-01-02"),
		"holidays": h.resolver.HolidaysForDate(date),
		"nameDays": h.resolver.NameDaysForDate(date),
	})
}

// GetEaster handles GET /api/v1/easter/{year}
func (h *Handlers) GetEaster(w http.ResponseWriter, r *http.Request) {
	year, err := strconv.Atoi(chi.URLParam(r, "year"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid year: %s", chi.URLParam(r, "year")))
		return
	}

	date := calendar.EasterDate(year)
	WriteSuccess(w, map[string]string{"date": date.Format("2006-01-02")})
}

// GetMonthName handles GET /api/v1/months/name/{number}
func (h *Handlers) GetMonthName(w http.ResponseWriter, r *http.Request) {
	number, err := strconv.Atoi(chi.URLParam(r, "number"))
	if err != nil {
		WriteBadRequest(w, fmt.Sprintf("Invalid number: %s", chi.URLParam(r, "number")))
		return
	}

	name, ok := calendar.MonthKeyFromNumber(number)
	if !ok {
		WriteBadRequest(w, fmt.Sprintf("Invalid number: %d", number))
		return
	}
	WriteSuccess(w, map[string]string{"name": name})
}

// GetMonthNumber handles GET /api/v1/months/number/{name}
func (h *Handlers) GetMonthNumber(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")

	number, ok := calendar.MonthNumberFromName(name)
	if !ok {
		WriteBadRequest(w, fmt.Sprintf("Invalid name: %s", name))
		return
	}
	WriteSuccess(w, map[string]int{"number": number})
}

// ValidateDate handles GET /api/v1/date/validate/{date}
func (h *Handlers) ValidateDate(w http.ResponseWriter, r *http.Request) {
	WriteSuccess(w, map[string]bool{
		"isValid": calendar.IsValidDate(chi.URLParam(r, "date")),
	})
}

// FormatDate handles GET /api/v1/date/format/{date}/{format}
func (h *Handlers) FormatDate(w http.ResponseWriter, r *http.Request) {
	formatted, ok := calendar.FormatDate(chi.URLParam(r, "date"), chi.URLParam(r, "format"))
	if !ok {
		WriteBadRequest(w, "Invalid date or format")
		return
	}
	WriteSuccess(w, map[string]string{"formatted": formatted})
}
