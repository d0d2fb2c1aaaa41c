package timeutil

import (
	"fmt"
	"strings"
	"time"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

const (
	// LayoutISO is the stored date format.
	LayoutISO = "2006-01-02"
	// LayoutPicker is the day-first input format used by date pickers.
	LayoutPicker = "02-01-2006"
	// LayoutDisplay is rendered upper-cased, e.g. "05 MAR 2024".
	LayoutDisplay = "02 Jan 2006"
)

// Sentinel is the sort key used for dates that cannot be parsed.
var Sentinel = time.Date(9999, time.December, 31, 0, 0, 0, 0, time.UTC)

// ParseDate parses an ISO-8601 calendar date (YYYY-MM-DD). The result is
// midnight UTC.
func ParseDate(v string) (time.Time, error) {
	return time.Parse(LayoutISO, v)
}

// FormatISO renders the civil date of t in the stored format.
func FormatISO(t time.Time) string {
	return Civil(t).Format(LayoutISO)
}

// Civil drops the clock and zone from t, keeping its calendar date as seen in
// t's own location.
func Civil(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// SortKey returns the parsed date or Sentinel when v is malformed.
func SortKey(v string) (time.Time, bool) {
	t, err := ParseDate(v)
	if err != nil {
		return Sentinel, false
	}
	return t, true
}

// DisplayDate renders a stored date for people, e.g. "01 JAN 2024". Malformed
// values are returned as-is with an "(invalid)" marker.
func DisplayDate(v string) string {
	t, err := ParseDate(v)
	if err != nil {
		return v + " (invalid)"
	}
	return cases.Upper(language.English).String(t.Format(LayoutDisplay))
}

// ParseInputDate accepts the date spellings offered on the command line and
// returns the ISO form. Empty input means today.
func ParseInputDate(input string, now time.Time) (string, error) {
	v := strings.ToLower(strings.TrimSpace(input))
	switch v {
	case "", "today":
		return FormatISO(now), nil
	case "yesterday":
		return FormatISO(now.AddDate(0, 0, -1)), nil
	}
	for _, layout := range []string{LayoutISO, LayoutPicker} {
		if t, err := time.Parse(layout, v); err == nil {
			return t.Format(LayoutISO), nil
		}
	}
	return "", fmt.Errorf("invalid date %q, expected YYYY-MM-DD or DD-MM-YYYY", input)
}
