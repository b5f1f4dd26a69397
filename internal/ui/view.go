package ui

import (
	"fmt"
	"strings"

	"github.com/Saphereye/budget-tracker/internal/report"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	dateColWidth     = 12
	categoryColWidth = 12
	amountColWidth   = 12
	cursorSymbol     = ">>"

	defaultWidth  = 100
	defaultHeight = 30
)

var (
	headerStyle    = lipgloss.NewStyle().Bold(true)
	selectedStyle  = lipgloss.NewStyle().Reverse(true)
	totalsStyle    = lipgloss.NewStyle().Bold(true)
	paneStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder())
	spentBarStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	earnedBarStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	valueStyle     = lipgloss.NewStyle().Bold(true)

	printer = message.NewPrinter(language.English)
)

// View renders the two-pane layout: expense table with a totals footer on
// the left, the two stacked category bar charts on the right. It is a pure
// function of the model.
func (m Model) View() string {
	width, height := m.width, m.height
	if width <= 0 {
		width = defaultWidth
	}
	if height <= 0 {
		height = defaultHeight
	}

	leftWidth := width * 3 / 5
	rightWidth := width - leftWidth

	left := lipgloss.JoinVertical(lipgloss.Left,
		m.renderTable(leftWidth, height-5),
		m.renderTotals(),
	)

	earned, spent := report.SplitSigned(report.ByCategory(m.expenses))
	chartHeight := height / 2
	right := lipgloss.JoinVertical(lipgloss.Left,
		renderChart("Expenditure", spent, rightWidth, chartHeight, spentBarStyle),
		renderChart("Income", earned, rightWidth, chartHeight, earnedBarStyle),
	)

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (m Model) renderTable(width, height int) string {
	descWidth := width - dateColWidth - categoryColWidth - amountColWidth - len(cursorSymbol) - 4
	if descWidth < 10 {
		descWidth = 10
	}

	row := func(date, desc, category, amount string) string {
		return fmt.Sprintf("%-*s %-*s %-*s %*s",
			dateColWidth, truncate(date, dateColWidth),
			descWidth, truncate(desc, descWidth),
			categoryColWidth, truncate(category, categoryColWidth),
			amountColWidth, truncate(amount, amountColWidth))
	}

	lines := []string{headerStyle.Render("   " + row("Date", "Description", "Category", "Amount"))}

	visible := height - 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if m.cursor >= visible {
		start = m.cursor - visible + 1
	}
	end := start + visible
	if end > len(m.expenses) {
		end = len(m.expenses)
	}

	for i := start; i < end; i++ {
		e := m.expenses[i]
		text := row(e.Date, e.Description, e.Category.String(), formatAmount(e.Amount))
		if i == m.cursor {
			lines = append(lines, selectedStyle.Render(cursorSymbol+" "+text))
		} else {
			lines = append(lines, "   "+text)
		}
	}
	if len(m.expenses) == 0 {
		lines = append(lines, "   (no records yet, run with --add to create one)")
	}

	return paneStyle.Render(strings.Join(lines, "\n"))
}

func (m Model) renderTotals() string {
	net, spent, earned := report.Totals(m.expenses)
	lines := []string{
		fmt.Sprintf("%-16s %12s", "Net Total", formatAmount(net)),
		fmt.Sprintf("%-16s %12s", "Total Spent", formatAmount(spent)),
		fmt.Sprintf("%-16s %12s", "Total Earned", formatAmount(earned)),
	}
	return totalsStyle.Render(strings.Join(lines, "\n"))
}

// renderChart draws one titled pane of horizontal bars, one per category,
// scaled to the widest amount in the bucket.
func renderChart(title string, entries []report.CategoryAmount, width, height int, barStyle lipgloss.Style) string {
	labelWidth := 10
	valueWidth := 10
	barWidth := width - labelWidth - valueWidth - 6
	if barWidth < 4 {
		barWidth = 4
	}

	max := decimal.Zero
	for _, entry := range entries {
		if entry.Amount.GreaterThan(max) {
			max = entry.Amount
		}
	}

	lines := []string{headerStyle.Render(title)}
	for _, entry := range entries {
		bar := ""
		if max.IsPositive() {
			ratio, _ := entry.Amount.Div(max).Float64()
			n := int(ratio * float64(barWidth))
			if n < 1 && entry.Amount.IsPositive() {
				n = 1
			}
			bar = strings.Repeat("█", n)
		}
		lines = append(lines, fmt.Sprintf("%-*s %s %s",
			labelWidth, truncate(entry.Category.String(), labelWidth),
			barStyle.Render(bar),
			valueStyle.Render(formatAmount(entry.Amount))))
	}
	if len(entries) == 0 {
		lines = append(lines, "(nothing here)")
	}

	return paneStyle.Height(height - 2).Render(strings.Join(lines, "\n"))
}

func formatAmount(d decimal.Decimal) string {
	f, _ := d.Float64()
	return printer.Sprintf("%.2f", f)
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) <= width {
		return s
	}
	if width <= 1 {
		return string(runes[:width])
	}
	return string(runes[:width-1]) + "…"
}
