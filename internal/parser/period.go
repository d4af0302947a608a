package parser

import (
	"regexp"
	"strings"
	"time"
)

// TimeRange is a half-open interval [Start, End). A zero bound is open.
type TimeRange struct {
	Start time.Time
	End   time.Time
}

// IsAll reports whether the range is unbounded on both ends.
func (r TimeRange) IsAll() bool {
	return r.Start.IsZero() && r.End.IsZero()
}

// Contains reports whether t falls inside the range.
func (r TimeRange) Contains(t time.Time) bool {
	if !r.Start.IsZero() && t.Before(r.Start) {
		return false
	}
	if !r.End.IsZero() && !t.Before(r.End) {
		return false
	}
	return true
}

// periodRegex matches period expressions like "this week", "last month".
var periodRegex = regexp.MustCompile(`^(this|current|last|previous)\s+(week|month|year)$`)

// monthRegex matches an explicit month like "2026-03".
var monthRegex = regexp.MustCompile(`^\d{4}-\d{2}$`)

// ParsePeriod parses a listing period relative to now: "all", "today",
// "yesterday", "this|last week|month|year" or a month like "2026-03".
// Weeks start on Monday.
func ParsePeriod(input string, now time.Time) (TimeRange, error) {
	period := strings.ToLower(strings.Join(strings.Fields(input), " "))
	today := StartOfDay(now)

	switch period {
	case "", "all":
		return TimeRange{}, nil
	case "today":
		return TimeRange{Start: today, End: today.AddDate(0, 0, 1)}, nil
	case "yesterday":
		return TimeRange{Start: today.AddDate(0, 0, -1), End: today}, nil
	}

	if monthRegex.MatchString(period) {
		start, err := time.ParseInLocation("2006-01", period, now.Location())
		if err != nil {
			return TimeRange{}, NewPeriodError(input)
		}
		return TimeRange{Start: start, End: start.AddDate(0, 1, 0)}, nil
	}

	match := periodRegex.FindStringSubmatch(period)
	if match == nil {
		return TimeRange{}, NewPeriodError(input)
	}
	previous := match[1] == "last" || match[1] == "previous"

	var start, end time.Time
	switch match[2] {
	case "week":
		weekday := int(now.Weekday())
		if weekday == 0 {
			weekday = 7 // Sunday
		}
		start = today.AddDate(0, 0, -weekday+1)
		if previous {
			start = start.AddDate(0, 0, -7)
		}
		end = start.AddDate(0, 0, 7)

	case "month":
		start = time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		if previous {
			start = start.AddDate(0, -1, 0)
		}
		end = start.AddDate(0, 1, 0)

	default:
		start = time.Date(now.Year(), 1, 1, 0, 0, 0, 0, now.Location())
		if previous {
			start = start.AddDate(-1, 0, 0)
		}
		end = start.AddDate(1, 0, 0)
	}

	return TimeRange{Start: start, End: end}, nil
}
