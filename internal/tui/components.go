package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/output"
)

// SummaryComponent shows how much of the list is done.
type SummaryComponent struct {
	Done  int
	Total int
	Width int
}

// NewSummaryComponent counts completed tasks in the default view.
func NewSummaryComponent(tasks []*model.Task, width int) *SummaryComponent {
	sc := &SummaryComponent{Total: len(tasks), Width: width}
	for _, t := range tasks {
		if t.Completed {
			sc.Done++
		}
	}
	return sc
}

// View renders the summary line.
func (sc *SummaryComponent) View() string {
	pct := 0.0
	if sc.Total > 0 {
		pct = float64(sc.Done) / float64(sc.Total) * 100
	}
	barWidth := min(30, max(10, sc.Width-30))
	return fmt.Sprintf("%s %s",
		ProgressBar(pct, barWidth),
		StyleSubtitle.Render(fmt.Sprintf("%d/%d done", sc.Done, sc.Total)))
}

// ListComponent renders tasks with a cursor.
type ListComponent struct {
	Tasks  []*model.Task
	Cursor int
	Width  int
	Height int
	Now    time.Time
	Empty  string
}

// View renders the visible window of the list around the cursor.
func (lc *ListComponent) View() string {
	if len(lc.Tasks) == 0 {
		return StyleListBox.Width(max(lc.Width-2, 20)).Render(StyleSubtitle.Render(lc.Empty))
	}

	start, end := window(len(lc.Tasks), lc.Cursor, lc.Height)
	lines := make([]string, 0, end-start)
	for i := start; i < end; i++ {
		lines = append(lines, lc.renderTask(lc.Tasks[i], i == lc.Cursor))
	}
	return StyleListBox.Width(max(lc.Width-2, 20)).Render(strings.Join(lines, "\n"))
}

func (lc *ListComponent) renderTask(t *model.Task, selected bool) string {
	var sb strings.Builder

	if selected {
		sb.WriteString(StyleCursor.Render("› "))
	} else {
		sb.WriteString("  ")
	}
	sb.WriteString(output.Checkbox(t.Completed))
	sb.WriteString(" ")

	if t.Priority == model.PriorityHigh {
		sb.WriteString(StyleHigh.Render("! "))
	}

	title := t.Title
	switch {
	case t.Completed:
		title = StyleDone.Render(title)
	case selected:
		title = StyleCursor.Render(title)
	}
	sb.WriteString(title)

	if t.Category != "" {
		sb.WriteString("  ")
		sb.WriteString(StyleCategory.Render("#" + t.Category))
	}
	if t.DueDate != nil {
		due := "due " + output.FormatDate(*t.DueDate)
		sb.WriteString("  ")
		if t.IsOverdue(lc.Now) {
			sb.WriteString(StyleOverdue.Render(due))
		} else {
			sb.WriteString(StyleSubtitle.Render(due))
		}
	}
	return sb.String()
}

// window returns the [start, end) slice of n rows that keeps cursor visible
// within height rows. A non-positive height shows everything.
func window(n, cursor, height int) (int, int) {
	if height <= 0 || n <= height {
		return 0, n
	}
	start := cursor - height/2
	start = max(0, min(start, n-height))
	return start, start + height
}

type helpKey struct {
	key  string
	desc string
}

// HelpBar renders the help bar at the bottom. The archive view swaps the
// completion keys for restore and purge.
func HelpBar(archive bool) string {
	keys := []helpKey{
		{"↑/↓", "move"},
		{"space", "done"},
		{"a", "archive"},
		{"D", "delete"},
		{"tab", "archive view"},
		{"q", "quit"},
	}
	if archive {
		keys[1] = helpKey{"u", "restore"}
		keys[2] = helpKey{"P", "purge all"}
		keys[4].desc = "task view"
	}

	var parts []string
	for _, k := range keys {
		parts = append(parts, StyleHelpKey.Render(k.key)+" "+StyleHelpDesc.Render(k.desc))
	}

	return StyleHelp.Render(strings.Join(parts, "  •  "))
}
