package ui

import (
	"testing"

	"github.com/Saphereye/budget-tracker/internal/models"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixture(n int) []models.Expense {
	expenses := make([]models.Expense, 0, n)
	dates := []string{"2024-01-01", "2024-01-02", "2024-01-03", "2024-01-04", "2024-01-05"}
	for i := 0; i < n; i++ {
		expenses = append(expenses, models.NewExpense(dates[i%len(dates)], "Item", "Food", decimal.RequireFromString("-1.00")))
	}
	return expenses
}

func key(s string) tea.KeyMsg {
	if s == "down" {
		return tea.KeyMsg{Type: tea.KeyDown}
	}
	if s == "up" {
		return tea.KeyMsg{Type: tea.KeyUp}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) Model {
	t.Helper()
	next, _ := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model
}

func TestNewModel_CursorStartsAtZero(t *testing.T) {
	m := NewModel(fixture(3))
	assert.Equal(t, 0, m.Cursor())
}

func TestNewModel_EmptyCursorUnset(t *testing.T) {
	m := NewModel(nil)
	assert.Equal(t, -1, m.Cursor())
}

func TestNewModel_SortsNewestFirst(t *testing.T) {
	expenses := []models.Expense{
		models.NewExpense("2024-01-01", "Old", "Food", decimal.RequireFromString("-1")),
		models.NewExpense("2024-03-01", "New", "Food", decimal.RequireFromString("-1")),
	}

	m := NewModel(expenses)
	assert.Equal(t, "New", m.expenses[0].Description)
	assert.Equal(t, "Old", m.expenses[1].Description)
}

func TestUpdate_CursorWrapsForward(t *testing.T) {
	m := NewModel(fixture(3))

	m = update(t, m, key("down"))
	assert.Equal(t, 1, m.Cursor())
	m = update(t, m, key("down"))
	assert.Equal(t, 2, m.Cursor())
	m = update(t, m, key("down"))
	assert.Equal(t, 0, m.Cursor(), "advancing past the last row wraps to zero")
}

func TestUpdate_CursorWrapsBackward(t *testing.T) {
	m := NewModel(fixture(3))

	m = update(t, m, key("up"))
	assert.Equal(t, 2, m.Cursor(), "retreating past zero wraps to the last row")
	m = update(t, m, key("up"))
	assert.Equal(t, 1, m.Cursor())
}

func TestUpdate_AlternateKeys(t *testing.T) {
	m := NewModel(fixture(3))

	m = update(t, m, key("s"))
	assert.Equal(t, 1, m.Cursor())
	m = update(t, m, key("w"))
	assert.Equal(t, 0, m.Cursor())
}

func TestUpdate_SingleRecordMovesAreNoOps(t *testing.T) {
	m := NewModel(fixture(1))

	m = update(t, m, key("down"))
	assert.Equal(t, 0, m.Cursor())
	m = update(t, m, key("up"))
	assert.Equal(t, 0, m.Cursor())
}

func TestUpdate_EmptyMovesAreNoOps(t *testing.T) {
	m := NewModel(nil)

	m = update(t, m, key("down"))
	assert.Equal(t, -1, m.Cursor())
	m = update(t, m, key("up"))
	assert.Equal(t, -1, m.Cursor())
}

func TestUpdate_OtherKeysIgnored(t *testing.T) {
	m := NewModel(fixture(3))

	for _, k := range []string{"x", "enter", " ", "1"} {
		m = update(t, m, key(k))
		assert.Equal(t, 0, m.Cursor())
	}
}

func TestUpdate_QuitKeys(t *testing.T) {
	for _, k := range []tea.KeyMsg{key("q"), {Type: tea.KeyCtrlC}} {
		m := NewModel(fixture(3))
		_, cmd := m.Update(k)
		require.NotNil(t, cmd)
		assert.Equal(t, tea.Quit(), cmd())
	}
}

func TestUpdate_WindowSize(t *testing.T) {
	m := NewModel(fixture(3))
	m = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	assert.Equal(t, 120, m.width)
	assert.Equal(t, 40, m.height)
}

func TestView_ContainsTableAndCharts(t *testing.T) {
	expenses := []models.Expense{
		models.NewExpense("2024-01-15", "Groceries", "Food", decimal.RequireFromString("-54.32")),
		models.NewExpense("2024-01-20", "Paycheck", "Personal", decimal.RequireFromString("1500.00")),
	}

	view := NewModel(expenses).View()

	assert.Contains(t, view, "Groceries")
	assert.Contains(t, view, "Paycheck")
	assert.Contains(t, view, "Expenditure")
	assert.Contains(t, view, "Income")
	assert.Contains(t, view, "Net Total")
	assert.Contains(t, view, "Total Spent")
	assert.Contains(t, view, "Total Earned")
}

func TestView_EmptyDoesNotPanic(t *testing.T) {
	view := NewModel(nil).View()
	assert.Contains(t, view, "no records yet")
}

func TestView_DoesNotMutateModel(t *testing.T) {
	m := NewModel(fixture(3))
	before := m.Cursor()
	_ = m.View()
	assert.Equal(t, before, m.Cursor())
}
