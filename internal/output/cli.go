package output

import (
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/pocketlog/internal/model"
)

// Styles for CLI output.
var (
	// Colors
	colorPrimary   = lipgloss.Color("#7C3AED") // Purple
	colorSecondary = lipgloss.Color("#10B981") // Green
	colorMuted     = lipgloss.Color("#6B7280") // Gray
	colorWarning   = lipgloss.Color("#F59E0B") // Yellow
	colorError     = lipgloss.Color("#EF4444") // Red

	// Styles
	styleTitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	styleSuccess = lipgloss.NewStyle().
			Foreground(colorSecondary)

	styleWarning = lipgloss.NewStyle().
			Foreground(colorWarning)

	styleError = lipgloss.NewStyle().
			Foreground(colorError)

	styleMuted = lipgloss.NewStyle().
			Foreground(colorMuted)

	styleBold = lipgloss.NewStyle().
			Bold(true)

	styleCategory = lipgloss.NewStyle().
			Foreground(colorPrimary)

	styleDone = lipgloss.NewStyle().
			Strikethrough(true).
			Foreground(colorMuted)
)

// CLIFormatter provides CLI-specific formatting.
type CLIFormatter struct {
	*Formatter
}

// NewCLIFormatter creates a new CLI formatter.
func NewCLIFormatter(f *Formatter) *CLIFormatter {
	return &CLIFormatter{Formatter: f}
}

func (c *CLIFormatter) render(s lipgloss.Style, text string) string {
	if c.IsColorEnabled() {
		return s.Render(text)
	}
	return text
}

// Title prints a title.
func (c *CLIFormatter) Title(text string) {
	c.Println(c.render(styleTitle, text))
}

// Success prints a success message.
func (c *CLIFormatter) Success(text string) {
	c.Println(c.render(styleSuccess, "✓ "+text))
}

// Warning prints a warning message.
func (c *CLIFormatter) Warning(text string) {
	c.Println(c.render(styleWarning, "⚠ "+text))
}

// Error prints an error message.
func (c *CLIFormatter) Error(text string) {
	c.Println(c.render(styleError, "✗ "+text))
}

// Muted prints muted text.
func (c *CLIFormatter) Muted(text string) {
	c.Println(c.render(styleMuted, text))
}

// Category formats a category label.
func (c *CLIFormatter) Category(name string) string {
	if name == "" {
		return ""
	}
	return c.render(styleCategory, name)
}

// Checkbox renders a done/open marker.
func Checkbox(done bool) string {
	if done {
		return "[x]"
	}
	return "[ ]"
}

// ProgressBar creates a simple progress bar.
func ProgressBar(percentage float64, width int) string {
	if percentage > 100 {
		percentage = 100
	}
	if percentage < 0 {
		percentage = 0
	}

	filled := int(float64(width) * percentage / 100)
	empty := width - filled

	return strings.Repeat("█", filled) + strings.Repeat("░", empty)
}

// TableRow is one line of a table.
type TableRow struct {
	Columns []string
}

// PrintTable prints a simple table. The last column is truncated so rows
// fit the terminal width.
func (c *CLIFormatter) PrintTable(headers []string, rows []TableRow) {
	if len(rows) == 0 {
		return
	}

	// Calculate column widths
	widths := make([]int, len(headers))
	for i, h := range headers {
		widths[i] = lipgloss.Width(h)
	}
	for _, row := range rows {
		for i, col := range row.Columns {
			if i < len(widths) && lipgloss.Width(col) > widths[i] {
				widths[i] = lipgloss.Width(col)
			}
		}
	}

	last := len(widths) - 1
	used := 0
	for _, w := range widths[:last] {
		used += w + 2
	}
	if avail := c.Width() - used; avail >= 8 && widths[last] > avail {
		widths[last] = avail
	}

	// Print headers
	var headerLine strings.Builder
	for i, h := range headers {
		headerLine.WriteString(pad(h, widths[i]))
	}
	c.Println(c.render(styleBold, strings.TrimRight(headerLine.String(), " ")))

	// Print separator
	var sep strings.Builder
	for _, w := range widths {
		sep.WriteString(strings.Repeat("─", w) + "  ")
	}
	c.Println(strings.TrimRight(sep.String(), " "))

	// Print rows
	for _, row := range rows {
		var rowLine strings.Builder
		for i, col := range row.Columns {
			if i < len(widths) {
				rowLine.WriteString(pad(truncate(col, widths[i]), widths[i]))
			}
		}
		c.Println(strings.TrimRight(rowLine.String(), " "))
	}
}

func pad(s string, width int) string {
	return padRight(s, width) + "  "
}

func padRight(s string, width int) string {
	if n := width - lipgloss.Width(s); n > 0 {
		s += strings.Repeat(" ", n)
	}
	return s
}

func truncate(s string, width int) string {
	if lipgloss.Width(s) <= width {
		return s
	}
	runes := []rune(s)
	for len(runes) > 0 && lipgloss.Width(string(runes))+1 > width {
		runes = runes[:len(runes)-1]
	}
	return string(runes) + "…"
}

// =============================================================================
// Record listings
// =============================================================================

// PrintTasks prints a task listing.
func (c *CLIFormatter) PrintTasks(tasks []*model.Task, now time.Time) {
	if len(tasks) == 0 {
		c.Muted("No tasks.")
		return
	}
	rows := make([]TableRow, len(tasks))
	for i, t := range tasks {
		title := t.Title
		if t.Completed {
			title = c.render(styleDone, title)
		}
		due := FormatDate(derefTime(t.DueDate))
		if t.IsOverdue(now) {
			due = c.render(styleError, due+" !")
		}
		rows[i] = TableRow{Columns: []string{
			Checkbox(t.Completed), ShortID(t.ID), string(t.Priority), due, c.Category(t.Category), title,
		}}
	}
	c.PrintTable([]string{"", "ID", "PRIORITY", "DUE", "CATEGORY", "TITLE"}, rows)
}

// PrintTask prints one task in detail.
func (c *CLIFormatter) PrintTask(t *model.Task) {
	c.Printf("%s %s\n", Checkbox(t.Completed), c.render(styleBold, t.Title))
	c.Printf("  ID: %s\n", t.ID)
	if t.Category != "" {
		c.Printf("  Category: %s\n", c.Category(t.Category))
	}
	if t.Priority != "" {
		c.Printf("  Priority: %s\n", t.Priority)
	}
	if t.DueDate != nil {
		c.Printf("  Due: %s\n", FormatDate(*t.DueDate))
	}
	if t.Note != "" {
		c.Printf("  Note: %s\n", t.Note)
	}
	c.Printf("  Created: %s\n", FormatDateTime(t.CreatedAt))
	if t.ArchivedAt != nil {
		c.Printf("  Archived: %s\n", FormatDateTime(*t.ArchivedAt))
	}
}

// PrintManicures prints the manicure history.
func (c *CLIFormatter) PrintManicures(items []*model.Manicure) {
	if len(items) == 0 {
		c.Muted("No manicures logged.")
		return
	}
	rows := make([]TableRow, len(items))
	for i, m := range items {
		rows[i] = TableRow{Columns: []string{
			ShortID(m.ID), FormatDate(m.Date), m.Color, string(m.Technique), m.Shape,
			FormatMoney(m.Price), FormatRating(m.Rating), m.Salon,
		}}
	}
	c.PrintTable([]string{"ID", "DATE", "COLOR", "TECHNIQUE", "SHAPE", "PRICE", "RATING", "SALON"}, rows)
}

// PrintWardrobe prints wardrobe items.
func (c *CLIFormatter) PrintWardrobe(items []*model.WardrobeItem) {
	if len(items) == 0 {
		c.Muted("Wardrobe is empty.")
		return
	}
	rows := make([]TableRow, len(items))
	for i, w := range items {
		rows[i] = TableRow{Columns: []string{
			ShortID(w.ID), w.Status.Label(), c.Category(w.Category), w.Season, w.Color, FormatMoney(w.Price), w.Name,
		}}
	}
	c.PrintTable([]string{"ID", "STATUS", "CATEGORY", "SEASON", "COLOR", "PRICE", "NAME"}, rows)
}

// PrintWords prints vocabulary entries.
func (c *CLIFormatter) PrintWords(words []*model.Word) {
	if len(words) == 0 {
		c.Muted("No words yet.")
		return
	}
	rows := make([]TableRow, len(words))
	for i, w := range words {
		rows[i] = TableRow{Columns: []string{
			Checkbox(w.Learned), ShortID(w.ID), w.Language, w.Term, w.Translation,
		}}
	}
	c.PrintTable([]string{"", "ID", "LANG", "TERM", "TRANSLATION"}, rows)
}

// PrintIdeas prints ideas.
func (c *CLIFormatter) PrintIdeas(ideas []*model.Idea) {
	if len(ideas) == 0 {
		c.Muted("No ideas yet.")
		return
	}
	rows := make([]TableRow, len(ideas))
	for i, idea := range ideas {
		fav := ""
		if idea.Favorite {
			fav = "♥"
		}
		rows[i] = TableRow{Columns: []string{
			Checkbox(idea.Done), ShortID(idea.ID), fav, c.Category(idea.Category), idea.Title,
		}}
	}
	c.PrintTable([]string{"", "ID", "FAV", "CATEGORY", "TITLE"}, rows)
}

// PrintIdea prints the idea generator's pick.
func (c *CLIFormatter) PrintIdea(idea *model.Idea) {
	c.Title("How about: " + idea.Title)
	if idea.Category != "" {
		c.Printf("  Category: %s\n", c.Category(idea.Category))
	}
	if idea.Note != "" {
		c.Printf("  Note: %s\n", idea.Note)
	}
	c.Muted("  id " + ShortID(idea.ID))
}

// =============================================================================
// Statistics
// =============================================================================

// Count is a labelled count for bar charts.
type Count struct {
	Label string `json:"label"`
	Count int    `json:"count"`
}

// PrintCounts prints labelled counts as a bar chart scaled to the largest.
func (c *CLIFormatter) PrintCounts(title string, counts []Count) {
	c.Title(title)
	if len(counts) == 0 {
		c.Muted("  (none)")
		return
	}

	labelWidth, maxCount := 0, 0
	for _, n := range counts {
		labelWidth = max(labelWidth, lipgloss.Width(n.Label))
		maxCount = max(maxCount, n.Count)
	}
	barWidth := min(30, max(10, c.Width()-labelWidth-12))

	for _, n := range counts {
		pct := 0.0
		if maxCount > 0 {
			pct = float64(n.Count) / float64(maxCount) * 100
		}
		c.Printf("  %s  %s %d\n", padRight(n.Label, labelWidth),
			c.render(styleSuccess, ProgressBar(pct, barWidth)), n.Count)
	}
}

// PrintKeyValue prints an aligned "key: value" line.
func (c *CLIFormatter) PrintKeyValue(key string, value any) {
	c.Printf("  %-14s %v\n", key+":", value)
}

func derefTime(t *time.Time) time.Time {
	if t == nil {
		return time.Time{}
	}
	return *t
}
