// Package goal defines the goal record and the rules every record in a
// collection must satisfy.
package goal

import (
	"fmt"
	"strings"
)

// Goal is a named habit or target anchored to a start (or quit) date. Date is
// stored as an ISO-8601 calendar date but is not guaranteed to parse.
type Goal struct {
	Name string `json:"name"`
	Date string `json:"date"`
}

// New returns a goal with a normalized name and date.
func New(name, date string) Goal {
	return Goal{
		Name: NormalizeName(name),
		Date: strings.TrimSpace(date),
	}
}

// NormalizeName trims surrounding whitespace from a goal name.
func NormalizeName(name string) string {
	return strings.TrimSpace(name)
}

// SameName reports whether two names identify the same goal.
func SameName(a, b string) bool {
	return strings.EqualFold(NormalizeName(a), NormalizeName(b))
}

// Key returns the case-folded identity of a goal name.
func Key(name string) string {
	return strings.ToLower(NormalizeName(name))
}

func (g Goal) String() string {
	return fmt.Sprintf("%s (%s)", g.Name, g.Date)
}

// Validate checks name against the existing names, ignoring the entry at
// skip. Pass skip < 0 to compare against every entry.
func Validate(name string, existing []Goal, skip int) error {
	name = NormalizeName(name)
	if name == "" {
		return &ValidationError{Kind: EmptyName}
	}
	for i, g := range existing {
		if i == skip {
			continue
		}
		if SameName(g.Name, name) {
			return &ValidationError{Kind: DuplicateName, Name: name}
		}
	}
	return nil
}
