// Package timeutil resolves the timespan argument accepted by the report
// and adjust commands into a concrete start date.
package timeutil

import (
	"fmt"
	"regexp"
	"strconv"
	"time"
)

var relativeRe = regexp.MustCompile(`^-(\d+)\s(days?|weeks?|months?)$`)

// ParseTimespan resolves a timespan expression to the start date of the
// range, truncated to midnight in now's location.
//
// Valid inputs:
//   - "" or "today"
//   - "yesterday"
//   - "-N days", "-N weeks", "-N months" (singular also accepted)
//   - an absolute date "YYYY-MM-DD"
func ParseTimespan(input string, now time.Time) (time.Time, error) {
	today := StartOfDay(now)

	switch input {
	case "", "today":
		return today, nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if m := relativeRe.FindStringSubmatch(input); m != nil {
		n, err := strconv.Atoi(m[1])
		if err != nil {
			return time.Time{}, fmt.Errorf("invalid number in timespan: %s", m[1])
		}
		switch m[2][0] {
		case 'd':
			return today.AddDate(0, 0, -n), nil
		case 'w':
			return today.AddDate(0, 0, -7*n), nil
		default:
			return today.AddDate(0, -n, 0), nil
		}
	}

	if t, err := time.ParseInLocation("2006-01-02", input, now.Location()); err == nil {
		return t, nil
	}

	return time.Time{}, fmt.Errorf(
		"invalid timespan %q (use 'today', 'yesterday', '-N days', '-N weeks', '-N months', or YYYY-MM-DD)",
		input,
	)
}

// StartOfDay truncates t to midnight in its location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
