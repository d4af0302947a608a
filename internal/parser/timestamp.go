// Package parser turns the loose date expressions typed on the command line
// ("yesterday", "+3d", "last month", "2026-03-14") into times and ranges.
package parser

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-dateparser"
)

// relativeRegex matches offsets like "+3d", "-2w", "+1m" (days, weeks, months).
var relativeRegex = regexp.MustCompile(`^([+-])(\d+)([dwmy])$`)

// isoLayouts are tried before natural language parsing.
var isoLayouts = []string{"2006-01-02", "2006-01-02 15:04", time.RFC3339}

// ParseDate parses a date expression relative to now. Empty input and
// "now" return now.
func ParseDate(input string, now time.Time) (time.Time, error) {
	input = strings.TrimSpace(input)
	if input == "" || strings.EqualFold(input, "now") {
		return now, nil
	}

	if match := relativeRegex.FindStringSubmatch(strings.ToLower(input)); match != nil {
		return parseRelative(match[1], match[2], match[3], now)
	}

	for _, layout := range isoLayouts {
		if t, err := time.ParseInLocation(layout, input, now.Location()); err == nil {
			return t, nil
		}
	}

	cfg := &dateparser.Configuration{
		CurrentTime: now,
	}

	result, err := dateparser.Parse(cfg, input)
	if err != nil || result.Time.IsZero() {
		return time.Time{}, NewDateError("date", input)
	}

	return result.Time, nil
}

// ParseDay parses a date expression and truncates it to midnight in now's
// location. Manicure visits and due dates are day-granular.
func ParseDay(input string, now time.Time) (time.Time, error) {
	t, err := ParseDate(input, now)
	if err != nil {
		return time.Time{}, err
	}
	return StartOfDay(t.In(now.Location())), nil
}

// StartOfDay returns midnight of t's day in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func parseRelative(sign, amount, unit string, now time.Time) (time.Time, error) {
	n, err := strconv.Atoi(amount)
	if err != nil {
		return time.Time{}, NewDateError("date", sign+amount+unit)
	}
	if sign == "-" {
		n = -n
	}

	switch unit {
	case "d":
		return now.AddDate(0, 0, n), nil
	case "w":
		return now.AddDate(0, 0, 7*n), nil
	case "m":
		return now.AddDate(0, n, 0), nil
	default:
		return now.AddDate(n, 0, 0), nil
	}
}
