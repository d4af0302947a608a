// Package validate checks user input at the CLI boundary before it reaches
// a record store. The stores themselves accept whatever they are given.
package validate

import (
	"fmt"
	"regexp"
	"slices"
	"strings"
	"unicode/utf8"

	"github.com/manav03panchal/pocketlog/internal/errors"
	"github.com/manav03panchal/pocketlog/internal/model"
)

const (
	// MaxTitleLength is the maximum length for titles, names and terms.
	MaxTitleLength = 200
	// MaxNoteLength is the maximum length for a note.
	MaxNoteLength = 4096
	// MaxCategoryLength is the maximum length for a category or language.
	MaxCategoryLength = 64
	// MaxRating is the top of the 1..5 rating scale.
	MaxRating = 5
)

// colorNameRegex accepts plain color names like "red" or "dusty rose".
var colorNameRegex = regexp.MustCompile(`^[\p{L}][\p{L} -]*$`)

// Title validates a required short text field. field names it in errors.
func Title(field, value string) error {
	if strings.TrimSpace(value) == "" {
		return errors.NewUserErrorWithField(errors.ErrInvalidInput, field, value,
			fmt.Sprintf("%s cannot be empty", capitalize(field)),
			fmt.Sprintf("Provide a %s", field))
	}
	if utf8.RuneCountInString(value) > MaxTitleLength {
		return errors.NewUserErrorWithField(errors.ErrInvalidInput, field, value,
			fmt.Sprintf("%s too long", capitalize(field)),
			fmt.Sprintf("Keep it to %d characters or fewer", MaxTitleLength))
	}
	return nil
}

// Category validates an optional category, season or language label.
func Category(field, value string) error {
	if utf8.RuneCountInString(value) > MaxCategoryLength {
		return errors.NewUserErrorWithField(errors.ErrInvalidInput, field, value,
			fmt.Sprintf("%s too long", capitalize(field)),
			fmt.Sprintf("Keep it to %d characters or fewer", MaxCategoryLength))
	}
	return nil
}

// Note validates a note/description.
func Note(note string) error {
	if utf8.RuneCountInString(note) > MaxNoteLength {
		return errors.NewUserError(
			"Note too long",
			"Notes must be 4096 characters or fewer")
	}
	return nil
}

// Rating validates a 1..5 rating. Zero means unrated and is allowed.
func Rating(r int) error {
	if r < 0 || r > MaxRating {
		return errors.NewUserErrorWithField(errors.ErrInvalidRating, "rating", fmt.Sprint(r),
			"Rating out of range",
			"Use a rating from 1 to 5, or 0 for none")
	}
	return nil
}

// Price validates a non-negative amount.
func Price(p float64) error {
	if p < 0 {
		return errors.NewUserErrorWithField(errors.ErrInvalidInput, "price", fmt.Sprint(p),
			"Price cannot be negative",
			"Use 0 if it was free")
	}
	return nil
}

// Color validates a color given either as a name ("red") or as a hex
// code ("#FF5733"). Empty is allowed.
func Color(color string) error {
	if color == "" {
		return nil
	}
	if strings.HasPrefix(color, "#") {
		return HexColor(color)
	}
	if !colorNameRegex.MatchString(color) {
		return errors.NewUserErrorWithField(errors.ErrInvalidColor, "color", color,
			"Invalid color",
			"Use a color name like 'red' or a hex code like '#FF5733'")
	}
	return nil
}

// HexColor validates a hex color code.
func HexColor(color string) error {
	if color == "" {
		return nil // Empty is allowed (no color)
	}
	if !strings.HasPrefix(color, "#") {
		return errors.NewUserErrorWithField(errors.ErrInvalidColor, "color", color,
			"Invalid color format",
			"Use hex format like '#FF5733' or '#00FF00'")
	}
	hex := strings.TrimPrefix(color, "#")
	if len(hex) != 6 {
		return errors.NewUserErrorWithField(errors.ErrInvalidColor, "color", color,
			"Invalid color format",
			"Use 6-digit hex format like '#FF5733'")
	}
	for _, c := range hex {
		if !((c >= '0' && c <= '9') || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')) {
			return errors.NewUserErrorWithField(errors.ErrInvalidColor, "color", color,
				"Invalid hex character in color",
				"Use only hex digits (0-9, A-F)")
		}
	}
	return nil
}

// Priority parses a task priority. Empty yields medium.
func Priority(s string) (model.Priority, error) {
	switch p := model.Priority(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return model.PriorityMedium, nil
	case model.PriorityLow, model.PriorityMedium, model.PriorityHigh:
		return p, nil
	default:
		return "", errors.NewUserErrorWithField(errors.ErrInvalidPriority, "priority", s,
			"Unknown priority",
			"Use one of: low, medium, high")
	}
}

// Technique parses a manicure technique. Empty yields classic.
func Technique(s string) (model.Technique, error) {
	t := model.Technique(strings.ToLower(strings.TrimSpace(s)))
	if t == "" {
		return model.TechniqueClassic, nil
	}
	if slices.Contains(model.Techniques, t) {
		return t, nil
	}
	return "", errors.NewUserErrorWithField(errors.ErrInvalidTechnique, "technique", s,
		"Unknown technique",
		"Use one of: "+joinValues(model.Techniques))
}

// ItemStatus parses a wardrobe status. It accepts the stored values and a
// few spoken forms ("use", "storage", "to-buy").
func ItemStatus(s string) (model.ItemStatus, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "in_use", "in-use", "use", "using":
		return model.ItemInUse, nil
	case "store", "storage", "stored":
		return model.ItemStore, nil
	case "buy", "to-buy", "to_buy", "wishlist":
		return model.ItemBuy, nil
	default:
		return "", errors.NewUserErrorWithField(errors.ErrInvalidStatus, "status", s,
			"Unknown status",
			"Use one of: "+joinValues(model.ItemStatuses))
	}
}

func joinValues[S ~string](values []S) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = string(v)
	}
	return strings.Join(parts, ", ")
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
