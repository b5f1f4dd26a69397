package report

import (
	"fmt"
	"io"
	"sort"

	"github.com/Saphereye/budget-tracker/internal/models"

	"github.com/gocarina/gocsv"
	"github.com/shopspring/decimal"
)

// SummaryRow is one exported line of the category summary. Unlike the store
// file this output is proper quoted CSV, so category names containing commas
// are safe here.
type SummaryRow struct {
	Category string `csv:"Category"`
	Spent    string `csv:"Spent"`
	Earned   string `csv:"Earned"`
	Net      string `csv:"Net"`
}

// Summarize builds one row per category with its spent, earned and net
// amounts, ordered by category name.
func Summarize(expenses []models.Expense) []SummaryRow {
	spent := make(map[models.Category]decimal.Decimal)
	earned := make(map[models.Category]decimal.Decimal)
	for _, e := range expenses {
		if e.Amount.IsNegative() {
			spent[e.Category] = spent[e.Category].Add(e.Amount.Neg())
		} else {
			earned[e.Category] = earned[e.Category].Add(e.Amount)
		}
	}

	categories := make([]models.Category, 0, len(spent)+len(earned))
	seen := make(map[models.Category]bool)
	for c := range spent {
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	for c := range earned {
		if !seen[c] {
			seen[c] = true
			categories = append(categories, c)
		}
	}
	sort.Slice(categories, func(i, j int) bool {
		return categories[i].String() < categories[j].String()
	})

	rows := make([]SummaryRow, 0, len(categories))
	for _, c := range categories {
		rows = append(rows, SummaryRow{
			Category: c.String(),
			Spent:    spent[c].StringFixed(2),
			Earned:   earned[c].StringFixed(2),
			Net:      earned[c].Sub(spent[c]).StringFixed(2),
		})
	}
	return rows
}

// WriteSummaryCSV writes the category summary for the given records as
// quoted CSV.
func WriteSummaryCSV(w io.Writer, expenses []models.Expense) error {
	rows := Summarize(expenses)
	if err := gocsv.Marshal(&rows, w); err != nil {
		return fmt.Errorf("error writing summary CSV: %w", err)
	}
	return nil
}
