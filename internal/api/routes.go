package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
)

// SetupRoutes configures all HTTP routes and returns the router.
//
// Literal segments (search, stats, next, previous, countdown, overlap,
// popular) are registered alongside the {month} captures; chi matches
// static segments first, so the specific routes win.
func SetupRoutes(handlers *Handlers, logger *slog.Logger) http.Handler {
	r := chi.NewRouter()

	r.Use(
		RecoveryMiddleware(logger),
		RequestIDMiddleware(),
		LoggingMiddleware(logger),
		CORSMiddleware(),
	)

	r.Get("/health", handlers.HealthCheck)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/holidays", func(r chi.Router) {
			r.Get("/search/{title}", handlers.SearchHolidays)
			r.Get("/overlap/{date}", handlers.GetHolidayOverlap)
			r.Get("/{country}", handlers.GetAllHolidays)
			r.Get("/{country}/stats", handlers.GetHolidayStats)
			r.Get("/{country}/next", handlers.GetNextHoliday)
			r.Get("/{country}/previous", handlers.GetPreviousHoliday)
			r.Get("/{country}/countdown/{date}", handlers.GetHolidayCountdown)
			r.Get("/{country}/{month}", handlers.GetHolidaysByMonth)
			r.Get("/{country}/{month}/{day}", handlers.GetHolidaysByDay)
		})

		r.Route("/name-days", func(r chi.Router) {
			r.Get("/{country}", handlers.GetAllNameDays)
			r.Get("/{country}/popular", handlers.GetPopularNameDays)
			r.Get("/{country}/search/{name}", handlers.SearchNameDays)
			r.Get("/{country}/{month}", handlers.GetNameDaysByMonth)
			r.Get("/{country}/{month}/{day}", handlers.GetNameDay)
		})

		r.Get("/calendar/{country}/{month}", handlers.GetMonthCalendar)
		r.Get("/day/{country}/{month}/{day}", handlers.GetDayInfo)
		r.Get("/day/{country}/{month}/{day}/weekend", handlers.GetDayWeekend)

		r.Get("/today", handlers.GetToday)
		r.Get("/tomorrow", handlers.GetTomorrow)

		r.Get("/easter/{year}", handlers.GetEaster)
		r.Get("/months/name/{number}", handlers.GetMonthName)
		r.Get("/months/number/{name}", handlers.GetMonthNumber)

		r.Get("/date/validate/{date}", handlers.ValidateDate)
		r.Get("/date/format/{date}/{format}", handlers.FormatDate)
	})

	return r
}
