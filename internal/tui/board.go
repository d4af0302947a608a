package tui

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/manav03panchal/pocketlog/internal/model"
	"github.com/manav03panchal/pocketlog/internal/records"
)

// tickMsg is sent when the timer ticks.
type tickMsg time.Time

// BoardModel is the bubbletea model for the task board. It renders from
// the snapshots the task store publishes after every change, whether the
// change came from a key press here or from anything else holding the
// same store.
type BoardModel struct {
	tasks *records.Tasks
	now   func() time.Time

	// Data
	snapshot []*model.Task
	visible  []*model.Task
	cancel   func()

	// UI state
	archive    bool
	cursor     int
	width      int
	height     int
	err        error
	message    string
	messageExp time.Time

	// Configuration
	refreshInterval time.Duration
}

// BoardConfig holds configuration for the board.
type BoardConfig struct {
	Tasks           *records.Tasks
	Now             func() time.Time
	RefreshInterval time.Duration
}

// NewBoardModel creates a board subscribed to the task store. Call Close
// (or quit the program) to drop the subscription.
func NewBoardModel(config BoardConfig) *BoardModel {
	if config.RefreshInterval == 0 {
		config.RefreshInterval = time.Second
	}
	if config.Now == nil {
		config.Now = time.Now
	}

	m := &BoardModel{
		tasks:           config.Tasks,
		now:             config.Now,
		refreshInterval: config.RefreshInterval,
	}
	m.apply(config.Tasks.All())
	// Subscribers run synchronously inside the store mutation, which the
	// board only performs from Update.
	m.cancel = config.Tasks.Subscribe(m.apply)
	return m
}

// apply installs a new store snapshot and recomputes the visible rows.
func (m *BoardModel) apply(snapshot []*model.Task) {
	m.snapshot = snapshot
	m.visible = nil
	for _, t := range snapshot {
		if t.Archived == m.archive {
			m.visible = append(m.visible, t)
		}
	}
	if m.cursor >= len(m.visible) {
		m.cursor = max(0, len(m.visible)-1)
	}
}

// Visible returns the rows currently shown.
func (m *BoardModel) Visible() []*model.Task {
	return m.visible
}

// Cursor returns the selected row index.
func (m *BoardModel) Cursor() int {
	return m.cursor
}

// Close drops the store subscription.
func (m *BoardModel) Close() {
	if m.cancel != nil {
		m.cancel()
		m.cancel = nil
	}
}

// Init initializes the model.
func (m *BoardModel) Init() tea.Cmd {
	return m.tickCmd()
}

// Update handles messages and updates the model.
func (m *BoardModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tickMsg:
		// Clear expired messages
		if !m.messageExp.IsZero() && m.now().After(m.messageExp) {
			m.message = ""
			m.messageExp = time.Time{}
		}
		return m, m.tickCmd()
	}

	return m, nil
}

// selected returns the task under the cursor, or nil for an empty view.
func (m *BoardModel) selected() *model.Task {
	if m.cursor < 0 || m.cursor >= len(m.visible) {
		return nil
	}
	return m.visible[m.cursor]
}

// handleKeyPress handles keyboard input.
func (m *BoardModel) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "q", "ctrl+c", "esc":
		m.Close()
		return m, tea.Quit

	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.visible)-1 {
			m.cursor++
		}

	case "tab":
		m.archive = !m.archive
		m.cursor = 0
		m.apply(m.snapshot)

	case " ", "x", "enter":
		if t := m.selected(); t != nil && !m.archive {
			m.mutate(func() error {
				_, err := m.tasks.ToggleComplete(t.ID)
				return err
			}, "")
		}

	case "a":
		if t := m.selected(); t != nil && !m.archive {
			m.mutate(func() error {
				_, err := m.tasks.Archive(t.ID)
				return err
			}, fmt.Sprintf("Archived %q", t.Title))
		}

	case "u":
		if t := m.selected(); t != nil && m.archive {
			m.mutate(func() error {
				_, err := m.tasks.Restore(t.ID)
				return err
			}, fmt.Sprintf("Restored %q", t.Title))
		}

	case "D":
		if t := m.selected(); t != nil {
			m.mutate(func() error {
				return m.tasks.Delete(t.ID)
			}, fmt.Sprintf("Deleted %q", t.Title))
		}

	case "P":
		if m.archive {
			var n int
			m.mutate(func() error {
				var err error
				n, err = m.tasks.DeleteArchived()
				return err
			}, "")
			if m.err == nil {
				m.setMessage(fmt.Sprintf("Purged %d archived tasks", n), 2*time.Second)
			}
		}
	}

	return m, nil
}

// mutate runs a store change. The snapshot arrives through the
// subscription; a failed write still changed memory, so only the error is
// recorded here.
func (m *BoardModel) mutate(fn func() error, success string) {
	if err := fn(); err != nil {
		m.err = err
		return
	}
	m.err = nil
	if success != "" {
		m.setMessage(success, 2*time.Second)
	}
}

// View renders the board.
func (m *BoardModel) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var sections []string
	sections = append(sections, m.renderHeader())

	if m.err != nil {
		sections = append(sections, StyleError.Render(fmt.Sprintf("Not saved: %v", m.err)))
	}
	if m.message != "" {
		sections = append(sections, StyleWarning.Render(m.message))
	}

	if !m.archive {
		sections = append(sections, NewSummaryComponent(m.visible, m.width).View())
	}

	empty := "Nothing to do. Add tasks with 'pocketlog task add <title>'."
	if m.archive {
		empty = "The archive is empty."
	}
	list := &ListComponent{
		Tasks:  m.visible,
		Cursor: m.cursor,
		Width:  m.width,
		Height: max(0, m.height-10),
		Now:    m.now(),
		Empty:  empty,
	}
	sections = append(sections, list.View())
	sections = append(sections, HelpBar(m.archive))

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// renderHeader renders the board header.
func (m *BoardModel) renderHeader() string {
	name := "Tasks"
	if m.archive {
		name = "Archive"
	}
	title := StyleTitle.Render("pocketlog · " + name)
	date := StyleSubtitle.Render(m.now().Format("Mon Jan 2"))

	return lipgloss.JoinHorizontal(lipgloss.Top, title, "  ", date) + "\n"
}

// setMessage sets a temporary message.
func (m *BoardModel) setMessage(msg string, duration time.Duration) {
	m.message = msg
	m.messageExp = m.now().Add(duration)
}

// tickCmd returns a command that sends a tick message.
func (m *BoardModel) tickCmd() tea.Cmd {
	return tea.Tick(m.refreshInterval, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Run starts the task board TUI.
func Run(config BoardConfig) error {
	model := NewBoardModel(config)
	defer model.Close()
	p := tea.NewProgram(model, tea.WithAltScreen())
	_, err := p.Run()
	return err
}
