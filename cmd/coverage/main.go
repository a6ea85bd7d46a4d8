// Command coverage reports how completely the bundled calendar dataset
// covers the year: name days for every date, holidays per month and type.
//
// Usage:
//
//	go run ./cmd/coverage [-data path/to/data.json] [-v] [-o report.json]
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/jsykora/holiday-api/internal/dataset"
)

// daysInMonth is sized for a leap year; the dataset carries 29/02.
var daysInMonth = [12]int{31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// MonthCoverage describes one month of one country's name-day calendar.
type MonthCoverage struct {
	Month        string   `json:"month"`
	ExpectedDays int      `json:"expectedDays"`
	CoveredDays  int      `json:"coveredDays"`
	MissingDates []string `json:"missingDates,omitempty"`
}

// CountryReport aggregates coverage for one country.
type CountryReport struct {
	Country       string          `json:"country"`
	NameDayTotal  int             `json:"nameDayTotal"`
	NameDayTarget int             `json:"nameDayTarget"`
	Months        []MonthCoverage `json:"months"`
	HolidayTotal  int             `json:"holidayTotal"`
	HolidaysBy    map[string]int  `json:"holidaysByType"`
}

func main() {
	dataPath := flag.String("data", "", "Dataset file (default: embedded copy)")
	verbose := flag.Bool("v", false, "List every missing date")
	outputFile := flag.String("o", "", "Output report to JSON file")
	flag.Parse()

	cal, err := loadDataset(*dataPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("================================================================")
	fmt.Println("Calendar Dataset - Coverage Report")
	fmt.Println("================================================================")
	if *dataPath != "" {
		fmt.Printf("Dataset: %s\n", *dataPath)
	} else {
		fmt.Println("Dataset: embedded")
	}
	fmt.Printf("Run:     %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Println()

	var reports []CountryReport
	incomplete := false
	for _, country := range dataset.Countries {
		report := buildReport(cal, country)
		reports = append(reports, report)
		printReport(report, *verbose)
		if report.NameDayTotal < report.NameDayTarget {
			incomplete = true
		}
	}

	if *outputFile != "" {
		if err := writeReport(*outputFile, reports); err != nil {
			fmt.Fprintf(os.Stderr, "Error writing report: %v\n", err)
			os.Exit(1)
		}
		fmt.Printf("Report written to %s\n", *outputFile)
	}

	if incomplete {
		os.Exit(1)
	}
}

func loadDataset(path string) (*dataset.Calendar, error) {
	if path != "" {
		return dataset.LoadFile(path)
	}
	return dataset.Load()
}

func buildReport(cal *dataset.Calendar, country string) CountryReport {
	report := CountryReport{
		Country:    country,
		HolidaysBy: map[string]int{},
	}

	for i, key := range dataset.MonthKeys {
		expected := daysInMonth[i]
		report.NameDayTarget += expected

		coverage := MonthCoverage{Month: key, ExpectedDays: expected}
		month, ok := cal.NameDayMonth(country, key)
		for day := 1; day <= expected; day++ {
			dateKey := fmt.Sprintf("%02d/%02d", day, i+1)
			if ok {
				if _, present := month.Days[dateKey]; present {
					coverage.CoveredDays++
					continue
				}
			}
			coverage.MissingDates = append(coverage.MissingDates, dateKey)
		}
		report.NameDayTotal += coverage.CoveredDays
		report.Months = append(report.Months, coverage)
	}

	months, _ := cal.HolidayMonths(country)
	for _, month := range months {
		for _, h := range month.Holidays {
			report.HolidayTotal++
			report.HolidaysBy[h.Type]++
		}
	}

	return report
}

func printReport(report CountryReport, verbose bool) {
	fmt.Printf("--- %s ---\n", strings.ToUpper(report.Country))
	fmt.Printf("Name days: %d/%d dates covered\n", report.NameDayTotal, report.NameDayTarget)

	for _, m := range report.Months {
		marker := "✓"
		if m.CoveredDays < m.ExpectedDays {
			marker = "✗"
		}
		fmt.Printf("  %s %-10s %2d/%2d\n", marker, m.Month, m.CoveredDays, m.ExpectedDays)
		if verbose {
			for _, date := range m.MissingDates {
				fmt.Printf("      missing %s\n", date)
			}
		}
	}

	fmt.Printf("Holidays:  %d total", report.HolidayTotal)
	types := make([]string, 0, len(report.HolidaysBy))
	for t := range report.HolidaysBy {
		types = append(types, t)
	}
	sort.Strings(types)
	for _, t := range types {
		fmt.Printf(", %d %s", report.HolidaysBy[t], t)
	}
	fmt.Println()
	fmt.Println()
}

func writeReport(path string, reports []CountryReport) error {
	data, err := json.MarshalIndent(reports, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0o644)
}
