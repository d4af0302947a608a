package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/records"
	"github.com/manav03panchal/pocketlog/internal/storage"
)

func newCLI() (*CLIFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf, Format: FormatCLI, ColorMode: ColorNever}
	return NewCLIFormatter(f), &buf
}

func newJSON() (*JSONFormatter, *bytes.Buffer) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf, Format: FormatJSON, ColorMode: ColorNever}
	return NewJSONFormatter(f), &buf
}

// =============================================================================
// Formatter Tests
// =============================================================================

func TestNewFormatter(t *testing.T) {
	f := NewFormatter()
	assert.NotNil(t, f)
	assert.Equal(t, FormatCLI, f.Format)
	assert.Equal(t, ColorAuto, f.ColorMode)
	assert.False(t, f.IsJSON())
}

func TestFormatterIsColorEnabled(t *testing.T) {
	t.Run("color_always", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorAlways}
		assert.True(t, f.IsColorEnabled())
	})

	t.Run("color_never", func(t *testing.T) {
		f := &Formatter{ColorMode: ColorNever}
		assert.False(t, f.IsColorEnabled())
	})

	t.Run("color_auto_non_terminal", func(t *testing.T) {
		var buf bytes.Buffer
		f := &Formatter{
			Writer:    &buf,
			ColorMode: ColorAuto,
		}
		// Buffer is not a terminal
		assert.False(t, f.IsColorEnabled())
	})
}

func TestFormatterWidthNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}
	assert.Equal(t, DefaultWidth, f.Width())
}

func TestFormatterPrint(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	f.Print("hello")
	f.Println(" world")
	f.Printf("%d", 42)
	assert.Equal(t, "hello world\n42", buf.String())
}

func TestFormatterJSON(t *testing.T) {
	var buf bytes.Buffer
	f := &Formatter{Writer: &buf}

	err := f.JSON(map[string]string{"key": "value"})
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), `"key": "value"`)
}

// =============================================================================
// Value Formatting Tests
// =============================================================================

func TestShortID(t *testing.T) {
	assert.Equal(t, "9a4e21c0", ShortID("0195f3a1-7c2b-7def-8000-00009a4e21c0"))
	assert.Equal(t, "id-1", ShortID("id-1"))
	assert.Equal(t, "", ShortID(""))
}

func TestFormatDate(t *testing.T) {
	ts := time.Date(2026, 3, 14, 9, 30, 0, 0, time.Local)
	assert.Equal(t, "2026-03-14", FormatDate(ts))
	assert.Equal(t, "2026-03-14 09:30", FormatDateTime(ts))
	assert.Equal(t, "", FormatDate(time.Time{}))
	assert.Equal(t, "", FormatDateTime(time.Time{}))
}

func TestFormatMoney(t *testing.T) {
	assert.Equal(t, "", FormatMoney(0))
	assert.Equal(t, "32.50", FormatMoney(32.5))
}

func TestFormatRating(t *testing.T) {
	assert.Equal(t, "", FormatRating(0))
	assert.Equal(t, "★☆☆☆☆", FormatRating(1))
	assert.Equal(t, "★★★☆☆", FormatRating(3))
	assert.Equal(t, "★★★★★", FormatRating(5))
	assert.Equal(t, "★★★★★", FormatRating(9))
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		pct    float64
		filled int
	}{
		{0, 0},
		{50, 5},
		{100, 10},
		{150, 10},
		{-10, 0},
	}
	for _, tt := range tests {
		bar := ProgressBar(tt.pct, 10)
		assert.Equal(t, tt.filled, strings.Count(bar, "█"), "pct %v", tt.pct)
		assert.Equal(t, 10-tt.filled, strings.Count(bar, "░"), "pct %v", tt.pct)
	}
}

// =============================================================================
// CLI Formatter Tests
// =============================================================================

func TestCLIFormatterMessages(t *testing.T) {
	c, buf := newCLI()
	c.Title("Tasks")
	c.Success("added")
	c.Warning("careful")
	c.Error("failed")
	c.Muted("quiet")

	assert.Equal(t, "Tasks\n✓ added\n⚠ careful\n✗ failed\nquiet\n", buf.String())
}

func TestCLIFormatterColor(t *testing.T) {
	var buf bytes.Buffer
	c := NewCLIFormatter(&Formatter{Writer: &buf, ColorMode: ColorAlways})
	assert.Contains(t, c.Category("home"), "home")
	assert.Equal(t, "", c.Category(""))
}

func TestPrintTable(t *testing.T) {
	c, buf := newCLI()
	c.PrintTable([]string{"ID", "NAME"}, []TableRow{
		{Columns: []string{"a", "short"}},
		{Columns: []string{"bbb", "much longer"}},
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "ID   NAME", lines[0])
	assert.Equal(t, "───  ───────────", lines[1])
	assert.Equal(t, "a    short", lines[2])
	assert.Equal(t, "bbb  much longer", lines[3])
}

func TestPrintTableEmpty(t *testing.T) {
	c, buf := newCLI()
	c.PrintTable([]string{"ID"}, nil)
	assert.Empty(t, buf.String())
}

func TestPrintTableTruncatesLastColumn(t *testing.T) {
	c, buf := newCLI()
	long := strings.Repeat("x", DefaultWidth*2)
	c.PrintTable([]string{"ID", "TITLE"}, []TableRow{{Columns: []string{"abc", long}}})

	for _, line := range strings.Split(strings.TrimRight(buf.String(), "\n"), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), DefaultWidth)
	}
	assert.Contains(t, buf.String(), "…")
}

func TestPrintTasks(t *testing.T) {
	now := time.Date(2026, 3, 14, 12, 0, 0, 0, time.Local)
	due := now.AddDate(0, 0, -1)

	milk := model.NewTask("buy milk", "groceries", model.PriorityHigh)
	milk.ID = "0195f3a1-7c2b-7def-8000-00009a4e21c0"
	milk.DueDate = &due
	eggs := model.NewTask("buy eggs", "", model.PriorityLow)
	eggs.ID = "0195f3a1-7c2b-7df0-8000-0000d31b77e5"
	eggs.SetCompleted(true, now)

	c, buf := newCLI()
	c.PrintTasks([]*model.Task{milk, eggs}, now)

	out := buf.String()
	assert.Contains(t, out, "9a4e21c0")
	assert.Contains(t, out, "d31b77e5")
	assert.NotContains(t, out, "0195f3a1")
	assert.Contains(t, out, "2026-03-13 !")
	assert.Contains(t, out, "[x]")
	assert.Contains(t, out, "groceries")
}

func TestPrintListsEmpty(t *testing.T) {
	c, buf := newCLI()
	c.PrintTasks(nil, time.Now())
	c.PrintManicures(nil)
	c.PrintWardrobe(nil)
	c.PrintWords(nil)
	c.PrintIdeas(nil)
	assert.Equal(t, "No tasks.\nNo manicures logged.\nWardrobe is empty.\nNo words yet.\nNo ideas yet.\n", buf.String())
}

func TestPrintRecords(t *testing.T) {
	c, buf := newCLI()

	m := model.NewManicure(time.Date(2026, 2, 9, 0, 0, 0, 0, time.Local), "red", model.TechniqueGel)
	m.Rating = 4
	m.Price = 30
	c.PrintManicures([]*model.Manicure{m})

	w := model.NewWardrobeItem("Boots", "shoes", model.ItemBuy)
	c.PrintWardrobe([]*model.WardrobeItem{w})

	word := model.NewWord("hola", "hello", "es")
	c.PrintWords([]*model.Word{word})

	idea := model.NewIdea("hike", "outdoor")
	idea.Favorite = true
	c.PrintIdeas([]*model.Idea{idea})
	c.PrintIdea(idea)

	out := buf.String()
	for _, want := range []string{"2026-02-09", "★★★★☆", "30.00", "To buy", "hola", "hello", "♥", "How about: hike"} {
		assert.Contains(t, out, want)
	}
}

func TestPrintCounts(t *testing.T) {
	c, buf := newCLI()
	c.PrintCounts("Per weekday", []Count{{Label: "Mon", Count: 4}, {Label: "Tue", Count: 2}})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Per weekday", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], " 4"))
	assert.Greater(t, strings.Count(lines[1], "█"), strings.Count(lines[2], "█"))

	buf.Reset()
	c.PrintCounts("Empty", nil)
	assert.Equal(t, "Empty\n  (none)\n", buf.String())
}

func TestPrintStats(t *testing.T) {
	mem := storage.NewMemory()
	tasks := records.NewTasks(mem)
	require.NoError(t, tasks.Add(model.NewTask("milk", "home", "")))
	ts := tasks.Stats(time.Now())
	ws := records.NewWords(mem).Stats()

	c, buf := newCLI()
	c.PrintStats(StatsResponse{Tasks: &ts, Words: &ws})

	out := buf.String()
	assert.Contains(t, out, "Tasks")
	assert.Contains(t, out, "home")
	assert.Contains(t, out, "Learned:")
	assert.NotContains(t, out, "Manicures")
}

func TestPrintInfo(t *testing.T) {
	c, buf := newCLI()
	c.PrintInfo(InfoResponse{
		Version:    "dev",
		Backend:    "memory",
		ConfigPath: "/tmp/config.yaml",
		Keys:       []storage.KeyStat{{Key: "tasks", Bytes: 120}},
		Counts:     map[string]int{"tasks": 2},
	})
	out := buf.String()
	assert.Contains(t, out, "pocketlog dev")
	assert.Contains(t, out, "tasks  2")
	assert.Contains(t, out, "120")
}

// =============================================================================
// JSON Formatter Tests
// =============================================================================

func TestJSONPrintList(t *testing.T) {
	j, buf := newJSON()
	task := model.NewTask("milk", "", "")
	task.ID = "a"
	require.NoError(t, j.PrintList("tasks", []*model.Task{task}, 1))

	var resp struct {
		Kind  string            `json:"kind"`
		Count int               `json:"count"`
		Items []json.RawMessage `json:"items"`
	}
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "tasks", resp.Kind)
	assert.Equal(t, 1, resp.Count)
	require.Len(t, resp.Items, 1)
	assert.Contains(t, string(resp.Items[0]), `"title": "milk"`)
}

func TestJSONPrintListEmpty(t *testing.T) {
	j, buf := newJSON()
	require.NoError(t, j.PrintList("ideas", []*model.Idea(nil), 0))
	assert.Contains(t, buf.String(), `"items": []`)
}

func TestJSONPrintRecordAndDelete(t *testing.T) {
	j, buf := newJSON()
	require.NoError(t, j.PrintRecord("created", "word", model.NewWord("hola", "hello", "es")))
	assert.Contains(t, buf.String(), `"status": "created"`)
	assert.Contains(t, buf.String(), `"term": "hola"`)

	buf.Reset()
	require.NoError(t, j.PrintDeleted("tasks", nil))
	var resp DeleteResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, "deleted", resp.Status)
	assert.Equal(t, []string{}, resp.IDs)
	assert.Zero(t, resp.Count)
}

func TestJSONPrintError(t *testing.T) {
	j, buf := newJSON()
	require.NoError(t, j.PrintError("error", "record not found", "no task abc", "Use 'pocketlog task list'"))

	var resp ErrorResponse
	require.NoError(t, json.Unmarshal(buf.Bytes(), &resp))
	assert.Equal(t, ErrorResponse{
		Status:     "error",
		Error:      "record not found",
		Message:    "no task abc",
		Suggestion: "Use 'pocketlog task list'",
	}, resp)
}

func TestJSONStatsOmitsMissingSections(t *testing.T) {
	j, buf := newJSON()
	is := records.IdeaStats{Total: 2}
	require.NoError(t, j.JSON(StatsResponse{Ideas: &is}))
	assert.Contains(t, buf.String(), `"ideas"`)
	assert.NotContains(t, buf.String(), `"tasks"`)
}
