package calendar

import (
	"testing"

	"github.com/jsykora/holiday-api/internal/dataset"
)

// fixtureJSON is a small synthetic dataset exercising every lookup path:
// months missing from one country, multi-name values, duplicate names
// across dates, and both holiday types.
const fixtureJSON = `{
  "publicHolidays": {
    "cs": {
      "january": {
        "name": "January",
        "number": 1,
        "holidays": [
          {"day": 1, "title": "New Year", "type": "public"}
        ]
      },
      "may": {
        "name": "May",
        "number": 5,
        "holidays": [
          {"day": 1, "title": "Labour Day", "type": "public"},
          {"day": 8, "title": "Victory Day", "type": "public"}
        ]
      },
      "december": {
        "name": "December",
        "number": 12,
        "holidays": [
          {"day": 24, "title": "Christmas Eve", "type": "public"},
          {"day": 26, "title": "St. Stephen's Day", "type": "public"},
          {"day": 31, "title": "New Year's Eve", "type": "observance"}
        ]
      }
    },
    "sk": {
      "january": {
        "name": "January",
        "number": 1,
        "holidays": [
          {"day": 1, "title": "Republic Day", "type": "public"},
          {"day": 6, "title": "Epiphany", "type": "public"}
        ]
      },
      "may": {
        "name": "May",
        "number": 5,
        "holidays": [
          {"day": 1, "title": "Labour Day", "type": "public"}
        ]
      }
    }
  },
  "nameDays": {
    "cs": {
      "january": {
        "days": {
          "01/01": "Hope",
          "02/01": "Karina"
        }
      },
      "may": {
        "days": {
          "01/05": "Alfa, Beta",
          "08/05": "Gamma",
          "15/05": "Alfa"
        }
      },
      "december": {
        "days": {
          "24/12": "Adam, Eva"
        }
      }
    },
    "sk": {
      "january": {
        "days": {
          "01/01": "Nora"
        }
      }
    }
  }
}`

// testResolver builds a Resolver over the synthetic fixture.
func testResolver(t *testing.T) *Resolver {
	t.Helper()

	cal, err := dataset.Parse([]byte(fixtureJSON))
	if err != nil {
		t.Fatalf("parse fixture: %v", err)
	}
	return New(cal)
}
