package schedule

import (
	"strings"
	"time"
)

// DateKeyLayout is the canonical calendar-day form every store keys on.
const DateKeyLayout = "2006-01-02"

// dateLayouts are tried in order when normalizing. The canonical layout
// comes first so normalizing an already-canonical key is a cheap no-op.
var dateLayouts = []string{
	DateKeyLayout,
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006/01/02",
	"01/02/2006",
	time.RFC1123,
	time.RFC1123Z,
	"Jan 2, 2006",
	"January 2, 2006",
}

// previousDay returns the DateKey of the calendar day before the given one.
// The input is assumed canonical.
func previousDay(dateKey string) string {
	t, err := time.ParseInLocation(DateKeyLayout, dateKey, time.Local)
	if err != nil {
		return dateKey
	}
	return t.AddDate(0, 0, -1).Format(DateKeyLayout)
}

// NormalizeDate canonicalizes any date-like input to a YYYY-MM-DD key using
// the local calendar. It is idempotent on canonical keys. Inputs that parse
// under none of the accepted layouts return InvalidDateError.
func NormalizeDate(input string) (string, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", InvalidDateError{Input: input}
	}
	for _, layout := range dateLayouts {
		t, err := time.ParseInLocation(layout, trimmed, time.Local)
		if err != nil {
			continue
		}
		return t.Format(DateKeyLayout), nil
	}
	return "", InvalidDateError{Input: input}
}
