package dataset

import (
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	_ "embed"
)

//go:embed data.json
var embedded []byte

// document mirrors the JSON shape of the source file.
type document struct {
	PublicHolidays map[string]map[string]monthDoc        `json:"publicHolidays"`
	NameDays       map[string]map[string]nameDayMonthDoc `json:"nameDays"`
}

type monthDoc struct {
	Name     string         `json:"name"`
	Number   int            `json:"number"`
	Holidays []HolidayEntry `json:"holidays"`
}

type nameDayMonthDoc struct {
	Days map[string]string `json:"days"`
}

// Load parses the embedded calendar document.
func Load() (*Calendar, error) {
	return Parse(embedded)
}

// LoadFile parses a calendar document from disk. Used when DATASET_PATH
// overrides the embedded copy.
func LoadFile(path string) (*Calendar, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	cal, err := Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("parse dataset %s: %w", path, err)
	}
	return cal, nil
}

// Parse builds a Calendar from a JSON document. Months are normalized to
// calendar order and holidays within each month are sorted by day, so
// "dataset order" is chronological by construction rather than an
// accident of document key order.
func Parse(raw []byte) (*Calendar, error) {
	var doc document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("decode dataset: %w", err)
	}
	if doc.PublicHolidays == nil {
		return nil, fmt.Errorf("dataset has no publicHolidays section")
	}
	if doc.NameDays == nil {
		return nil, fmt.Errorf("dataset has no nameDays section")
	}

	cal := &Calendar{
		holidayMonths: make(map[string][]Month, len(doc.PublicHolidays)),
		holidayByKey:  make(map[string]map[string]*Month, len(doc.PublicHolidays)),
		nameDayMonths: make(map[string][]NameDayMonth, len(doc.NameDays)),
		nameDayByKey:  make(map[string]map[string]*NameDayMonth, len(doc.NameDays)),
	}

	for country, months := range doc.PublicHolidays {
		for key := range months {
			if _, ok := MonthNumber(key); !ok {
				return nil, fmt.Errorf("country %s: unknown month key %q", country, key)
			}
		}

		ordered := make([]Month, 0, len(months))
		for _, key := range MonthKeys {
			m, ok := months[key]
			if !ok {
				continue
			}
			holidays := make([]HolidayEntry, len(m.Holidays))
			copy(holidays, m.Holidays)
			sort.SliceStable(holidays, func(i, j int) bool {
				return holidays[i].Day < holidays[j].Day
			})
			ordered = append(ordered, Month{
				Key:      key,
				Name:     m.Name,
				Number:   m.Number,
				Holidays: holidays,
			})
		}

		byKey := make(map[string]*Month, len(ordered))
		for i := range ordered {
			byKey[ordered[i].Key] = &ordered[i]
		}
		cal.holidayMonths[country] = ordered
		cal.holidayByKey[country] = byKey
	}

	for country, months := range doc.NameDays {
		for key := range months {
			if _, ok := MonthNumber(key); !ok {
				return nil, fmt.Errorf("country %s: unknown month key %q", country, key)
			}
		}

		ordered := make([]NameDayMonth, 0, len(months))
		for _, key := range MonthKeys {
			m, ok := months[key]
			if !ok {
				continue
			}
			ordered = append(ordered, NameDayMonth{
				Key:     key,
				Days:    m.Days,
				DayKeys: sortedDayKeys(m.Days),
			})
		}

		byKey := make(map[string]*NameDayMonth, len(ordered))
		for i := range ordered {
			byKey[ordered[i].Key] = &ordered[i]
		}
		cal.nameDayMonths[country] = ordered
		cal.nameDayByKey[country] = byKey
	}

	return cal, nil
}

// sortedDayKeys orders "DD/MM" keys by day number. Keys that do not
// start with a number sort last in their original byte order.
func sortedDayKeys(days map[string]string) []string {
	keys := make([]string, 0, len(days))
	for k := range days {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		di, oki := dayOfKey(keys[i])
		dj, okj := dayOfKey(keys[j])
		if oki && okj && di != dj {
			return di < dj
		}
		if oki != okj {
			return oki
		}
		return keys[i] < keys[j]
	})
	return keys
}

func dayOfKey(key string) (int, bool) {
	dayPart, _, ok := strings.Cut(key, "/")
	if !ok {
		return 0, false
	}
	d, err := strconv.Atoi(dayPart)
	if err != nil {
		return 0, false
	}
	return d, true
}
