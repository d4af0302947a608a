package tui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/records"
	"github.com/manav03panchal/pocketlog/internal/storage"
	"github.com/manav03panchal/pocketlog/internal/store"
)

var testNow = time.Date(2026, 3, 14, 9, 30, 0, 0, time.UTC)

func clock() time.Time { return testNow }

func newTasks(t *testing.T, backend *storage.Memory, titles ...string) *records.Tasks {
	t.Helper()
	n := 0
	tasks := records.NewTasks(backend,
		store.WithClock(clock),
		store.WithIDGenerator(func() (string, error) {
			n++
			return fmt.Sprintf("id-%d", n), nil
		}),
	)
	for _, title := range titles {
		require.NoError(t, tasks.Add(model.NewTask(title, "", model.PriorityMedium)))
	}
	return tasks
}

func key(s string) tea.KeyMsg {
	switch s {
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "up":
		return tea.KeyMsg{Type: tea.KeyUp}
	case "down":
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func press(m *BoardModel, keys ...string) {
	for _, k := range keys {
		m.Update(key(k))
	}
}

func titles(tasks []*model.Task) []string {
	out := make([]string, len(tasks))
	for i, t := range tasks {
		out[i] = t.Title
	}
	return out
}

// =============================================================================
// Component Tests
// =============================================================================

func TestProgressBar(t *testing.T) {
	for _, pct := range []float64{-10, 0, 50, 100, 150} {
		bar := ProgressBar(pct, 10)
		assert.NotEmpty(t, bar)
	}
}

func TestWindow(t *testing.T) {
	tests := []struct {
		name               string
		n, cursor, height  int
		wantStart, wantEnd int
	}{
		{"fits", 3, 0, 10, 0, 3},
		{"no height", 30, 5, 0, 0, 30},
		{"top", 30, 0, 10, 0, 10},
		{"middle", 30, 15, 10, 10, 20},
		{"bottom", 30, 29, 10, 20, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			start, end := window(tt.n, tt.cursor, tt.height)
			assert.Equal(t, tt.wantStart, start)
			assert.Equal(t, tt.wantEnd, end)
			assert.True(t, tt.cursor >= start && tt.cursor < end)
		})
	}
}

func TestHelpBar(t *testing.T) {
	active := HelpBar(false)
	assert.Contains(t, active, "done")
	assert.Contains(t, active, "archive view")
	assert.NotContains(t, active, "restore")

	archive := HelpBar(true)
	assert.Contains(t, archive, "restore")
	assert.Contains(t, archive, "purge all")
	assert.Contains(t, archive, "task view")
}

func TestSummaryComponent(t *testing.T) {
	tasks := []*model.Task{{Title: "a", Completed: true}, {Title: "b"}, {Title: "c"}}
	sc := NewSummaryComponent(tasks, 80)
	assert.Equal(t, 1, sc.Done)
	assert.Equal(t, 3, sc.Total)
	assert.Contains(t, sc.View(), "1/3 done")

	assert.Contains(t, NewSummaryComponent(nil, 80).View(), "0/0 done")
}

func TestListComponent(t *testing.T) {
	due := time.Date(2026, 3, 13, 12, 0, 0, 0, time.UTC)
	tasks := []*model.Task{
		{Title: "Pay rent", Category: "home", Priority: model.PriorityHigh, DueDate: &due},
		{Title: "Call mum", Completed: true},
	}

	t.Run("rows", func(t *testing.T) {
		lc := &ListComponent{Tasks: tasks, Width: 80, Now: testNow}
		view := lc.View()
		assert.Contains(t, view, "Pay rent")
		assert.Contains(t, view, "#home")
		assert.Contains(t, view, "due 2026-03-13")
		assert.Contains(t, view, "Call mum")
		assert.Contains(t, view, "›")
	})

	t.Run("empty", func(t *testing.T) {
		lc := &ListComponent{Width: 80, Empty: "Nothing here"}
		assert.Contains(t, lc.View(), "Nothing here")
	})

	t.Run("windowed", func(t *testing.T) {
		var many []*model.Task
		for i := range 20 {
			many = append(many, &model.Task{Title: fmt.Sprintf("task %02d", i)})
		}
		lc := &ListComponent{Tasks: many, Cursor: 19, Height: 5, Width: 80}
		view := lc.View()
		assert.Contains(t, view, "task 19")
		assert.NotContains(t, view, "task 00")
	})
}

// =============================================================================
// Board Tests
// =============================================================================

func TestBoardNavigation(t *testing.T) {
	tasks := newTasks(t, storage.NewMemory(), "one", "two", "three")
	m := NewBoardModel(BoardConfig{Tasks: tasks, Now: clock})
	defer m.Close()

	assert.Equal(t, 0, m.Cursor())
	press(m, "j", "down")
	assert.Equal(t, 2, m.Cursor())
	press(m, "j")
	assert.Equal(t, 2, m.Cursor(), "cursor stops at the last row")
	press(m, "k", "up", "up")
	assert.Equal(t, 0, m.Cursor())
}

func TestBoardToggleComplete(t *testing.T) {
	tasks := newTasks(t, storage.NewMemory(), "one", "two")
	m := NewBoardModel(BoardConfig{Tasks: tasks, Now: clock})
	defer m.Close()

	press(m, "j", "x")

	got, ok := tasks.Get("id-2")
	require.True(t, ok)
	assert.True(t, got.Completed)
	assert.True(t, m.Visible()[1].Completed, "board refreshes from the store")

	press(m, " ")
	got, _ = tasks.Get("id-2")
	assert.False(t, got.Completed)
}

func TestBoardArchiveRestore(t *testing.T) {
	tasks := newTasks(t, storage.NewMemory(), "one", "two")
	m := NewBoardModel(BoardConfig{Tasks: tasks, Now: clock})
	defer m.Close()

	press(m, "a")
	assert.Equal(t, []string{"two"}, titles(m.Visible()))

	press(m, "tab")
	assert.Equal(t, []string{"one"}, titles(m.Visible()))

	// Completion keys do nothing in the archive view.
	press(m, "x")
	got, _ := tasks.Get("id-1")
	assert.False(t, got.Completed)

	press(m, "u")
	assert.Empty(t, m.Visible())

	press(m, "tab")
	assert.Equal(t, []string{"one", "two"}, titles(m.Visible()))
}

func TestBoardDeleteAndPurge(t *testing.T) {
	tasks := newTasks(t, storage.NewMemory(), "one", "two", "three")
	m := NewBoardModel(BoardConfig{Tasks: tasks, Now: clock})
	defer m.Close()

	press(m, "D")
	assert.Equal(t, []string{"two", "three"}, titles(m.Visible()))

	press(m, "a", "a")
	assert.Empty(t, m.Visible())

	// Purge only works from the archive view.
	press(m, "P")
	assert.Equal(t, 2, tasks.Len())

	press(m, "tab", "P")
	assert.Empty(t, m.Visible())
	assert.Equal(t, 0, tasks.Len())
}

func TestBoardSeesExternalChanges(t *testing.T) {
	tasks := newTasks(t, storage.NewMemory(), "one")
	m := NewBoardModel(BoardConfig{Tasks: tasks, Now: clock})

	require.NoError(t, tasks.Add(model.NewTask("two", "", model.PriorityLow)))
	assert.Equal(t, []string{"one", "two"}, titles(m.Visible()))

	m.Close()
	require.NoError(t, tasks.Add(model.NewTask("three", "", model.PriorityLow)))
	assert.Len(t, m.Visible(), 2, "closed board no longer follows the store")
}

func TestBoardWriteFailure(t *testing.T) {
	backend := storage.NewMemory()
	tasks := newTasks(t, backend, "one")
	m := NewBoardModel(BoardConfig{Tasks: tasks, Now: clock})
	defer m.Close()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	backend.FailWrites = errors.New("disk on fire")
	press(m, "x")

	assert.True(t, m.Visible()[0].Completed, "memory keeps the change")
	assert.Contains(t, m.View(), "Not saved")
	assert.Contains(t, m.View(), "disk on fire")
}

func TestBoardView(t *testing.T) {
	tasks := newTasks(t, storage.NewMemory(), "Water plants")
	m := NewBoardModel(BoardConfig{Tasks: tasks, Now: clock})
	defer m.Close()

	assert.Equal(t, "Loading...", m.View())

	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})
	view := m.View()
	assert.Contains(t, view, "Tasks")
	assert.Contains(t, view, "Sat Mar 14")
	assert.Contains(t, view, "Water plants")
	assert.Contains(t, view, "0/1 done")

	press(m, "a")
	assert.Contains(t, m.View(), "Archived")

	press(m, "tab")
	view = m.View()
	assert.Contains(t, view, "Archive")
	assert.True(t, strings.Contains(view, "Water plants"))
}

func TestBoardMessageExpires(t *testing.T) {
	now := testNow
	tasks := newTasks(t, storage.NewMemory(), "one")
	m := NewBoardModel(BoardConfig{Tasks: tasks, Now: func() time.Time { return now }})
	defer m.Close()
	m.Update(tea.WindowSizeMsg{Width: 80, Height: 24})

	press(m, "a")
	assert.Contains(t, m.View(), `Archived "one"`)

	now = now.Add(3 * time.Second)
	m.Update(tickMsg(now))
	assert.NotContains(t, m.View(), `Archived "one"`)
}

func TestBoardQuit(t *testing.T) {
	tasks := newTasks(t, storage.NewMemory(), "one")
	m := NewBoardModel(BoardConfig{Tasks: tasks, Now: clock})

	_, cmd := m.Update(key("q"))
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
}
