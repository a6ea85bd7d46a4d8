package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"
)

// =============================================================================
// Response Types - Match the actual API response structure
// =============================================================================

type APIResponse struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Error   *ErrorInfo  `json:"error,omitempty"`
}

type ErrorInfo struct {
	Message string `json:"message"`
	Code    string `json:"code,omitempty"`
}

// Holiday is one resolved holiday entry.
type Holiday struct {
	Month       string `json:"month"`
	MonthNumber int    `json:"monthNumber"`
	Day         int    `json:"day"`
	Title       string `json:"title"`
	Type        string `json:"type"`
}

// HolidayWithDate adds the materialized calendar date.
type HolidayWithDate struct {
	Holiday
	Date string `json:"date"`
}

// Countdown is the response for /holidays/{country}/countdown/{date}.
type Countdown struct {
	Days        int `json:"days"`
	NextHoliday struct {
		Title string `json:"title"`
		Date  string `json:"date"`
	} `json:"nextHoliday"`
}

// DaySnapshot is the response for /today and /tomorrow.
type DaySnapshot struct {
	Date     string               `json:"date"`
	Holidays map[string][]Holiday `json:"holidays"`
	NameDays map[string]string    `json:"nameDays"`
}

// HealthResponse is the response for /health.
type HealthResponse struct {
	Status string `json:"status"`
}

// =============================================================================
// Test Runner
// =============================================================================

type TestRunner struct {
	baseURL      string
	client       *http.Client
	verbose      bool
	successCount int
	errorCount   int
	errors       []string
}

func NewTestRunner(baseURL string, verbose bool) *TestRunner {
	return &TestRunner{
		baseURL: strings.TrimSuffix(baseURL, "/"),
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		verbose: verbose,
	}
}

func (tr *TestRunner) Run() {
	fmt.Println("==============================================")
	fmt.Println("Holiday API Test Suite")
	fmt.Println("==============================================")
	fmt.Printf("Base URL: %s\n", tr.baseURL)
	fmt.Println()

	// Run test groups
	tr.testHealth()
	tr.testHolidays()
	tr.testNameDays()
	tr.testRelativeDates()
	tr.testUtilities()
	tr.testEdgeCases()

	// Print summary
	tr.printSummary()
}

// =============================================================================
// Test Groups
// =============================================================================

func (tr *TestRunner) testHealth() {
	tr.printSection("Health Check")

	resp, err := tr.get("/health")
	if err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	var health HealthResponse
	if err := tr.parseDataAs(resp, &health); err != nil {
		tr.recordError("Health", err.Error())
		return
	}

	if health.Status == "healthy" {
		tr.recordSuccess("Health check passed")
	} else {
		tr.recordError("Health", fmt.Sprintf("Unexpected status: %s", health.Status))
	}
}

func (tr *TestRunner) testHolidays() {
	tr.printSection("Public Holidays")

	for _, country := range []string{"cs", "sk"} {
		resp, err := tr.get("/api/v1/holidays/" + country)
		if err != nil {
			tr.recordError(country, err.Error())
			continue
		}

		var holidays []Holiday
		if err := tr.parseDataAs(resp, &holidays); err != nil {
			tr.recordError(country, err.Error())
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s: %d holidays", country, len(holidays)))

		if tr.verbose {
			for _, h := range holidays {
				fmt.Printf("    %02d/%02d %s (%s)\n", h.Day, h.MonthNumber, h.Title, h.Type)
			}
		}
	}

	// Well-known fixed dates
	testCases := []struct {
		path        string
		title       string
		description string
	}{
		{"/api/v1/holidays/cs/1/1", "Den obnovy samostatného českého státu", "Czech Jan 1"},
		{"/api/v1/holidays/cs/december/24", "Štědrý den", "Czech Christmas Eve"},
		{"/api/v1/holidays/cs/7/5", "Den slovanských věrozvěstů Cyrila a Metoděje", "Cyril and Methodius"},
		{"/api/v1/holidays/sk/january/1", "Deň vzniku Slovenskej republiky", "Slovak Republic Day"},
		{"/api/v1/holidays/sk/9/15", "Sedembolestná Panna Mária", "Our Lady of Sorrows"},
	}
	for _, tc := range testCases {
		resp, err := tr.get(tc.path)
		if err != nil {
			tr.recordError(tc.description, err.Error())
			continue
		}

		var holidays []Holiday
		if err := tr.parseDataAs(resp, &holidays); err != nil {
			tr.recordError(tc.description, err.Error())
			continue
		}

		found := false
		for _, h := range holidays {
			if h.Title == tc.title {
				found = true
				break
			}
		}
		if found {
			tr.recordSuccess(fmt.Sprintf("%s: %s", tc.description, tc.title))
		} else {
			tr.recordError(tc.description, fmt.Sprintf("missing %q in %s", tc.title, tc.path))
		}
	}

	// Cross-country search
	resp, err := tr.get("/api/v1/holidays/search/práce")
	if err != nil {
		tr.recordError("Search", err.Error())
		return
	}
	var matches map[string][]Holiday
	if err := tr.parseDataAs(resp, &matches); err != nil {
		tr.recordError("Search", err.Error())
		return
	}
	if len(matches["cs"]) > 0 && len(matches["sk"]) > 0 {
		tr.recordSuccess("Labour Day found in both countries")
	} else {
		tr.recordError("Search", fmt.Sprintf("expected matches in both countries, got %d/%d",
			len(matches["cs"]), len(matches["sk"])))
	}
}

func (tr *TestRunner) testNameDays() {
	tr.printSection("Name Days")

	testCases := []struct {
		path        string
		description string
	}{
		{"/api/v1/name-days/cs/1/1", "Czech Jan 1"},
		{"/api/v1/name-days/cs/december/24", "Czech Christmas Eve names"},
		{"/api/v1/name-days/sk/2/29", "Slovak leap day"},
	}
	for _, tc := range testCases {
		resp, err := tr.get(tc.path)
		if err != nil {
			tr.recordError(tc.description, err.Error())
			continue
		}

		var body struct {
			Name string `json:"name"`
		}
		if err := tr.parseDataAs(resp, &body); err != nil {
			tr.recordError(tc.description, err.Error())
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s: %q", tc.description, body.Name))
	}

	// Popular ranking respects the limit parameter
	resp, err := tr.get("/api/v1/name-days/cs/popular?limit=5")
	if err != nil {
		tr.recordError("Popular", err.Error())
		return
	}
	var popular []struct {
		Name  string `json:"name"`
		Count int    `json:"count"`
	}
	if err := tr.parseDataAs(resp, &popular); err != nil {
		tr.recordError("Popular", err.Error())
		return
	}
	if len(popular) <= 5 {
		tr.recordSuccess(fmt.Sprintf("Popular names limited to %d entries", len(popular)))
	} else {
		tr.recordError("Popular", fmt.Sprintf("limit=5 returned %d entries", len(popular)))
	}
}

func (tr *TestRunner) testRelativeDates() {
	tr.printSection("Relative Dates")

	for _, country := range []string{"cs", "sk"} {
		resp, err := tr.get("/api/v1/holidays/" + country + "/next")
		if err != nil {
			tr.recordError("Next "+country, err.Error())
			continue
		}

		var next HolidayWithDate
		if err := tr.parseDataAs(resp, &next); err != nil {
			tr.recordError("Next "+country, err.Error())
			continue
		}
		tr.recordSuccess(fmt.Sprintf("Next %s holiday: %s on %s", country, next.Title, next.Date))
	}

	// Countdown from New Year's Day must land on New Year's Day
	resp, err := tr.get(fmt.Sprintf("/api/v1/holidays/cs/countdown/%d-01-01", time.Now().Year()))
	if err != nil {
		tr.recordError("Countdown", err.Error())
		return
	}
	var countdown Countdown
	if err := tr.parseDataAs(resp, &countdown); err != nil {
		tr.recordError("Countdown", err.Error())
		return
	}
	if countdown.Days == 0 {
		tr.recordSuccess("Countdown on a holiday reports zero days")
	} else {
		tr.recordError("Countdown", fmt.Sprintf("expected 0 days on Jan 1, got %d", countdown.Days))
	}

	// Today / tomorrow snapshots
	for _, path := range []string{"/api/v1/today", "/api/v1/tomorrow"} {
		resp, err := tr.get(path)
		if err != nil {
			tr.recordError(path, err.Error())
			continue
		}

		var snapshot DaySnapshot
		if err := tr.parseDataAs(resp, &snapshot); err != nil {
			tr.recordError(path, err.Error())
			continue
		}
		tr.recordSuccess(fmt.Sprintf("%s (%s): cs=%q sk=%q", path,
			snapshot.Date, snapshot.NameDays["cs"], snapshot.NameDays["sk"]))
	}
}

func (tr *TestRunner) testUtilities() {
	tr.printSection("Utilities")

	// Easter dates with known answers
	easterDates := map[int]string{
		2024: "2024-03-31",
		2025: "2025-04-20",
		2026: "2026-04-05",
	}
	for year, want := range easterDates {
		resp, err := tr.get(fmt.Sprintf("/api/v1/easter/%d", year))
		if err != nil {
			tr.recordError(fmt.Sprintf("Easter %d", year), err.Error())
			continue
		}

		var body struct {
			Date string `json:"date"`
		}
		if err := tr.parseDataAs(resp, &body); err != nil {
			tr.recordError(fmt.Sprintf("Easter %d", year), err.Error())
			continue
		}
		if body.Date == want {
			tr.recordSuccess(fmt.Sprintf("Easter %d: %s", year, body.Date))
		} else {
			tr.recordError(fmt.Sprintf("Easter %d", year),
				fmt.Sprintf("expected %s, got %s", want, body.Date))
		}
	}

	// Date formatting
	resp, err := tr.get("/api/v1/date/format/2024-03-19/DD.MM.YYYY")
	if err != nil {
		tr.recordError("Format", err.Error())
		return
	}
	var formatted struct {
		Formatted string `json:"formatted"`
	}
	if err := tr.parseDataAs(resp, &formatted); err != nil {
		tr.recordError("Format", err.Error())
		return
	}
	if formatted.Formatted == "19.03.2024" {
		tr.recordSuccess("Date formatted as 19.03.2024")
	} else {
		tr.recordError("Format", fmt.Sprintf("got %q", formatted.Formatted))
	}
}

func (tr *TestRunner) testEdgeCases() {
	tr.printSection("Edge Cases")

	// Unknown country
	resp, _ := tr.getRaw("/api/v1/holidays/de")
	if resp != nil && resp.StatusCode == 404 {
		tr.recordSuccess("Unknown country rejected with 404")
	} else {
		tr.recordError("Unknown country", "Should return 404")
	}

	// Invalid month
	resp2, _ := tr.getRaw("/api/v1/holidays/cs/13")
	if resp2 != nil && resp2.StatusCode == 400 {
		tr.recordSuccess("Invalid month rejected with 400")
	} else {
		tr.recordError("Invalid month", "Should return 400")
	}

	// Invalid date in countdown
	resp3, _ := tr.getRaw("/api/v1/holidays/cs/countdown/not-a-date")
	if resp3 != nil && resp3.StatusCode == 400 {
		tr.recordSuccess("Invalid countdown date rejected with 400")
	} else {
		tr.recordError("Invalid date", "Should return 400")
	}

	// Name day on an unset date still answers 200
	resp4, _ := tr.getRaw("/api/v1/name-days/cs/1/1")
	if resp4 != nil && resp4.StatusCode == 200 {
		tr.recordSuccess("Name day lookup is always 200")
	} else {
		tr.recordError("Name day", "Should return 200")
	}

	// Leap day is part of the calendar
	resp5, err := tr.get("/api/v1/name-days/cs/2/29")
	if err != nil {
		tr.recordError("Leap day", err.Error())
	} else {
		tr.recordSuccess("Leap day (29/02) handled")
	}
	_ = resp5
}

// =============================================================================
// Helper Methods
// =============================================================================

func (tr *TestRunner) get(path string) (*APIResponse, error) {
	resp, err := tr.getRaw(path)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read error: %w", err)
	}

	var apiResp APIResponse
	if err := json.Unmarshal(body, &apiResp); err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	if !apiResp.Success {
		errMsg := "unknown error"
		if apiResp.Error != nil {
			errMsg = apiResp.Error.Message
		}
		return nil, fmt.Errorf("API error: %s", errMsg)
	}

	return &apiResp, nil
}

func (tr *TestRunner) getRaw(path string) (*http.Response, error) {
	url := tr.baseURL + path
	return tr.client.Get(url)
}

func (tr *TestRunner) parseDataAs(resp *APIResponse, target interface{}) error {
	// Re-marshal and unmarshal to convert map to struct
	dataBytes, err := json.Marshal(resp.Data)
	if err != nil {
		return fmt.Errorf("marshal error: %w", err)
	}
	return json.Unmarshal(dataBytes, target)
}

func (tr *TestRunner) printSection(name string) {
	fmt.Println()
	fmt.Printf("--- %s ---\n", name)
	fmt.Println()
}

func (tr *TestRunner) recordSuccess(msg string) {
	tr.successCount++
	fmt.Printf("  ✓ %s\n", msg)
}

func (tr *TestRunner) recordError(context, msg string) {
	tr.errorCount++
	errStr := fmt.Sprintf("%s: %s", context, msg)
	tr.errors = append(tr.errors, errStr)
	fmt.Printf("  ✗ %s\n", errStr)
}

func (tr *TestRunner) printSummary() {
	fmt.Println()
	fmt.Println("==============================================")
	fmt.Println("Summary")
	fmt.Println("==============================================")
	fmt.Printf("  Passed: %d\n", tr.successCount)
	fmt.Printf("  Failed: %d\n", tr.errorCount)
	fmt.Println()

	if tr.errorCount > 0 {
		fmt.Println("Failures:")
		for _, err := range tr.errors {
			fmt.Printf("  • %s\n", err)
		}
		fmt.Println()
	}

	if tr.errorCount == 0 {
		fmt.Println("All tests passed! ✓")
	} else {
		fmt.Printf("Tests completed with %d failure(s)\n", tr.errorCount)
	}
}

// =============================================================================
// Main
// =============================================================================

func main() {
	baseURL := flag.String("url", "http://localhost:8080", "Base URL of the API")
	verbose := flag.Bool("v", false, "Verbose output (list every holiday)")
	flag.Parse()

	// Check if server is reachable
	client := &http.Client{Timeout: 2 * time.Second}
	_, err := client.Get(*baseURL + "/health")
	if err != nil {
		fmt.Printf("Error: Cannot connect to %s\n", *baseURL)
		fmt.Println("Make sure the API server is running.")
		os.Exit(1)
	}

	runner := NewTestRunner(*baseURL, *verbose)
	runner.Run()

	// Exit with error code if tests failed
	if runner.errorCount > 0 {
		os.Exit(1)
	}
}
