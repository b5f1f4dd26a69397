// Package ui implements the interactive table and chart viewer on top of
// bubbletea. The terminal's raw alternate-screen mode is acquired and
// restored by the framework on every exit path, including errors.
package ui

import (
	"sort"

	"github.com/Saphereye/budget-tracker/internal/models"

	tea "github.com/charmbracelet/bubbletea"
)

// Model is the viewer state: the immutable record list and the selection
// cursor. Rendering never mutates it.
type Model struct {
	expenses []models.Expense
	cursor   int // index of the highlighted row, -1 when there are no records
	width    int
	height   int
}

// NewModel builds the viewer model. Records are shown newest first; the
// cursor starts on the first row, or unset when there are none.
func NewModel(expenses []models.Expense) Model {
	sorted := make([]models.Expense, len(expenses))
	copy(sorted, expenses)
	// ISO dates sort lexicographically
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	cursor := 0
	if len(sorted) == 0 {
		cursor = -1
	}
	return Model{expenses: sorted, cursor: cursor}
}

// Cursor returns the highlighted row index, -1 when unset.
func (m Model) Cursor() int {
	return m.cursor
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
	case tea.KeyMsg:
		switch msg.String() {
		case "q", "ctrl+c":
			return m, tea.Quit
		case "down", "s":
			m.moveDown()
		case "up", "w":
			m.moveUp()
		}
	}
	return m, nil
}

// moveDown advances the cursor by one, wrapping to the first row past the
// last. A no-op when there are no records.
func (m *Model) moveDown() {
	if m.cursor < 0 {
		return
	}
	m.cursor = (m.cursor + 1) % len(m.expenses)
}

// moveUp retreats the cursor by one, wrapping to the last row past the
// first. A no-op when there are no records.
func (m *Model) moveUp() {
	if m.cursor < 0 {
		return
	}
	if m.cursor == 0 {
		m.cursor = len(m.expenses) - 1
	} else {
		m.cursor--
	}
}

// Run starts the viewer and blocks until the user quits.
func Run(expenses []models.Expense) error {
	p := tea.NewProgram(NewModel(expenses), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
