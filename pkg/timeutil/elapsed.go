// Package timeutil parses and formats goal dates and describes how much time
// has passed since them.
package timeutil

import (
	"fmt"
	"strings"
	"time"
)

const (
	// InvalidDate is returned by Elapsed for dates that do not parse.
	InvalidDate = "Invalid Stored Date Format"
	// Today is returned by Elapsed when the date is today.
	Today = "Today is the day!"

	daysPerYear = 365
	secsPerDay  = 24 * 60 * 60
)

// Elapsed describes the time between date and today. Years are a fixed 365
// days. ok is false when date does not parse; in that case days is zero and
// text is InvalidDate. A negative days count means date is in the future.
func Elapsed(date string, today time.Time) (text string, days int, ok bool) {
	start, err := ParseDate(date)
	if err != nil {
		return InvalidDate, 0, false
	}
	total := DaysBetween(start, today)

	switch {
	case total < 0:
		return fmt.Sprintf("Date %s is in the future.", date), total, true
	case total == 0:
		return Today, 0, true
	}

	years := total / daysPerYear
	rest := total % daysPerYear

	parts := make([]string, 0, 2)
	if years > 0 {
		parts = append(parts, plural(years, "year"))
	}
	parts = append(parts, plural(rest, "day"))
	return strings.Join(parts, ", ") + " ago", total, true
}

// DaysBetween counts whole calendar days from a to b using each time's own
// calendar date.
func DaysBetween(a, b time.Time) int {
	return int((Civil(b).Unix() - Civil(a).Unix()) / secsPerDay)
}

func plural(n int, unit string) string {
	if n == 1 {
		return fmt.Sprintf("%d %s", n, unit)
	}
	return fmt.Sprintf("%d %ss", n, unit)
}
