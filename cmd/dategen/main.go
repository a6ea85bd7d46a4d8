package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jsykora/holiday-api/internal/calendar"
	"github.com/jsykora/holiday-api/internal/dataset"
)

// This tool materializes the holiday calendar onto concrete years: fixed
// holidays from the dataset plus the Easter-derived movable days the
// dataset cannot carry (Good Friday, Easter Monday).

// datedHoliday is one holiday pinned to a calendar date.
type datedHoliday struct {
	date    time.Time
	title   string
	kind    string
	movable bool
}

// movableHolidays lists the Easter offsets per country. Both countries
// observe Easter Monday; Good Friday is statutory in both since 2016.
var movableHolidays = map[string][]struct {
	offset int
	title  string
}{
	dataset.CountryCzech: {
		{-2, "Velký pátek"},
		{1, "Velikonoční pondělí"},
	},
	dataset.CountrySlovak: {
		{-2, "Veľký piatok"},
		{1, "Veľkonočný pondelok"},
	},
}

func main() {
	year := flag.Int("year", time.Now().Year(), "First year to generate")
	years := flag.Int("years", 1, "Number of years")
	dataPath := flag.String("data", "", "Dataset file (default: embedded copy)")
	publicOnly := flag.Bool("public", false, "Only statutory holidays, skip observances")
	flag.Parse()

	cal, err := loadDataset(*dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	resolver := calendar.New(cal)

	for y := *year; y < *year+*years; y++ {
		fmt.Printf("=== Holiday Calendar %d ===\n\n", y)
		easter := calendar.EasterDate(y)
		fmt.Printf("Easter Sunday: %s\n\n", easter.Format("2006-01-02"))

		for _, country := range dataset.Countries {
			printYear(resolver, country, y, easter, *publicOnly)
		}
	}
}

func loadDataset(path string) (*dataset.Calendar, error) {
	if path != "" {
		return dataset.LoadFile(path)
	}
	return dataset.Load()
}

func printYear(resolver *calendar.Resolver, country string, year int, easter time.Time, publicOnly bool) {
	holidays, ok := resolver.AllHolidays(country)
	if !ok {
		return
	}

	var dated []datedHoliday
	for _, h := range holidays {
		if publicOnly && h.Type != "public" {
			continue
		}
		dated = append(dated, datedHoliday{
			date:  time.Date(year, time.Month(h.MonthNumber), h.Day, 0, 0, 0, 0, time.UTC),
			title: h.Title,
			kind:  h.Type,
		})
	}
	for _, m := range movableHolidays[country] {
		dated = append(dated, datedHoliday{
			date:    easter.AddDate(0, 0, m.offset),
			title:   m.title,
			kind:    "public",
			movable: true,
		})
	}
	sort.Slice(dated, func(i, j int) bool { return dated[i].date.Before(dated[j].date) })

	fmt.Printf("--- %s ---\n", strings.ToUpper(country))
	for _, h := range dated {
		notes := h.kind
		if h.movable {
			notes += ", movable"
		}
		if calendar.IsWeekend(h.date) {
			notes += ", weekend"
		}
		fmt.Printf("  %s  %-9s %s (%s)\n",
			h.date.Format("2006-01-02"), h.date.Weekday(), h.title, notes)
	}
	fmt.Println()
}
