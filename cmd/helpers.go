package cmd

import (
	stderrors "errors"
	"time"

	"github.com/manav03panchal/pocketlog/internal/parser"
	"github.com/manav03panchal/pocketlog/internal/runtime"
)

// saved turns a failed store write into the error shown to the user. The
// change is already applied in memory when this runs.
func saved(op, key string, err error) error {
	if err == nil {
		return nil
	}
	return runtime.StorageError(op, key, err)
}

// parseDay parses a day-granular date flag relative to the context clock.
func parseDay(field, value string) (time.Time, error) {
	t, err := parser.ParseDay(value, ctx.Now())
	if err != nil {
		var de *parser.DateParseError
		if stderrors.As(err, &de) {
			de.Field = field
			return time.Time{}, de.ToUserError()
		}
		return time.Time{}, err
	}
	return t, nil
}

// parsePeriod parses a --period flag relative to the context clock.
func parsePeriod(value string) (parser.TimeRange, error) {
	r, err := parser.ParsePeriod(value, ctx.Now())
	if err != nil {
		var de *parser.DateParseError
		if stderrors.As(err, &de) {
			return parser.TimeRange{}, de.ToUserError()
		}
		return parser.TimeRange{}, err
	}
	return r, nil
}

// printDeleted reports removed ids in the active output format.
func printDeleted(kind string, ids []string, what string) error {
	if ctx.IsJSON() {
		return ctx.JSONFormatter().PrintDeleted(kind, ids)
	}
	ctx.CLIFormatter().Success("Deleted " + what)
	return nil
}
