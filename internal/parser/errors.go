package parser

import (
	"fmt"
	"strings"

	"github.com/manav03panchal/pocketlog/internal/errors"
)

// DateParseError represents a date parsing error with example inputs.
type DateParseError struct {
	Input      string
	Field      string
	Message    string
	Examples   []string
	Suggestion string
}

func (e *DateParseError) Error() string {
	return fmt.Sprintf("invalid %s '%s': %s", e.Field, e.Input, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidDate.
func (e *DateParseError) Unwrap() error {
	return errors.ErrInvalidDate
}

// FormatWithExamples returns the error message with example suggestions.
func (e *DateParseError) FormatWithExamples() string {
	var sb strings.Builder
	sb.WriteString(e.Error())

	if len(e.Examples) > 0 {
		sb.WriteString("\n\nValid examples:\n")
		for _, ex := range e.Examples {
			sb.WriteString("  - ")
			sb.WriteString(ex)
			sb.WriteString("\n")
		}
	}

	if e.Suggestion != "" {
		sb.WriteString("\n")
		sb.WriteString(e.Suggestion)
	}

	return sb.String()
}

// DateExamples provides example date formats.
var DateExamples = []string{
	"today",
	"yesterday",
	"2026-03-14",
	"+3d",
	"last friday",
	"2 weeks ago",
}

// PeriodExamples provides example period formats.
var PeriodExamples = []string{
	"today",
	"this week",
	"last month",
	"2026-03",
	"all",
}

// NewDateError creates a date parse error with standard examples.
func NewDateError(field, input string) *DateParseError {
	return &DateParseError{
		Input:      input,
		Field:      field,
		Message:    "could not parse date",
		Examples:   DateExamples,
		Suggestion: "Dates can be ISO (2026-03-14), relative (+3d, -1w) or natural language (yesterday).",
	}
}

// NewPeriodError creates a period parse error with standard examples.
func NewPeriodError(input string) *DateParseError {
	return &DateParseError{
		Input:      input,
		Field:      "period",
		Message:    "could not parse period",
		Examples:   PeriodExamples,
		Suggestion: "Use period names like 'today', 'this week', or 'last month'.",
	}
}

// ToUserError converts a DateParseError to a UserError for consistent handling.
func (e *DateParseError) ToUserError() *errors.UserError {
	suggestion := e.Suggestion
	if len(e.Examples) > 0 && suggestion == "" {
		suggestion = fmt.Sprintf("Try: %s", strings.Join(e.Examples[:min(3, len(e.Examples))], ", "))
	}

	return errors.NewUserErrorWithField(errors.ErrInvalidDate, e.Field, e.Input, e.Message, suggestion)
}
