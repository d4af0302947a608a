package errors

import (
	"errors"
	"strings"
)

// Suggestions maps common errors to helpful suggestions.
var Suggestions = map[error]string{
	ErrRecordNotFound:   "Use the list command to see ids; a unique prefix of an id is enough.",
	ErrAmbiguousID:      "Type a few more characters of the id.",
	ErrInvalidDate:      "Try formats like 'yesterday', '3 days ago', 'last friday' or '2026-03-14'.",
	ErrInvalidStatus:    "Wardrobe statuses are in_use, store and buy.",
	ErrInvalidPriority:  "Priorities are low, medium and high.",
	ErrInvalidTechnique: "Techniques are classic, gel, acrylic, polish and other.",
	ErrInvalidColor:     "Use a color name or hex format like '#FF5733'.",
	ErrInvalidRating:    "Ratings go from 1 to 5.",
	ErrNoIdeas:          "Add some with 'pocketlog idea add <title>'.",
	ErrStorage:          "Your change is kept for this session but was not saved. Check free space and permissions of the data directory.",
	ErrPermissionDenied: "Check file permissions in your data directory (~/.local/share/pocketlog/).",
}

// GetSuggestion returns a suggestion for an error, if available.
// A UserError's own suggestion wins over the generic one.
func GetSuggestion(err error) string {
	if err == nil {
		return ""
	}

	if ue, ok := AsUserError(err); ok && ue.Suggestion != "" {
		return ue.Suggestion
	}

	for knownErr, suggestion := range Suggestions {
		if errors.Is(err, knownErr) {
			return suggestion
		}
	}

	return ""
}

// FormatError formats an error with its suggestion on the next line.
func FormatError(err error) string {
	if err == nil {
		return ""
	}
	var b strings.Builder
	b.WriteString(err.Error())
	if s := GetSuggestion(err); s != "" {
		b.WriteString("\n")
		b.WriteString(s)
	}
	return b.String()
}
