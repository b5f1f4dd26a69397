package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Saphereye/budget-tracker/internal/models"
)

func TestSummarize(t *testing.T) {
	expenses := []models.Expense{
		expense("2024-01-01", "Groceries", "Food", "-54.32"),
		expense("2024-01-02", "Refund", "Food", "4.32"),
		expense("2024-01-03", "Paycheck", "Personal", "1500.00"),
	}

	rows := Summarize(expenses)

	require.Len(t, rows, 2)
	assert.Equal(t, SummaryRow{Category: "Food", Spent: "54.32", Earned: "4.32", Net: "-50.00"}, rows[0])
	assert.Equal(t, SummaryRow{Category: "Personal", Spent: "0.00", Earned: "1500.00", Net: "1500.00"}, rows[1])
}

func TestSummarize_Empty(t *testing.T) {
	assert.Empty(t, Summarize(nil))
}

func TestWriteSummaryCSV(t *testing.T) {
	expenses := []models.Expense{
		expense("2024-01-01", "Groceries", "Food", "-54.32"),
		expense("2024-01-03", "Paycheck", "Personal", "1500.00"),
	}

	var buf bytes.Buffer
	require.NoError(t, WriteSummaryCSV(&buf, expenses))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3)
	assert.Equal(t, "Category,Spent,Earned,Net", lines[0])
	assert.Equal(t, "Food,54.32,0.00,-54.32", lines[1])
	assert.Equal(t, "Personal,0.00,1500.00,1500.00", lines[2])
}
