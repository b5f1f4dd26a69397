// Package search filters expense records with fuzzy matching before they
// reach the interactive viewer.
package search

import (
	"github.com/Saphereye/budget-tracker/internal/models"

	"github.com/sahilm/fuzzy"
)

type expenseSource []models.Expense

func (s expenseSource) String(i int) string {
	return s[i].Description + " " + s[i].Category.String()
}

func (s expenseSource) Len() int {
	return len(s)
}

// Filter returns the records whose description or category fuzzy-matches the
// query. An empty query returns the input unchanged. Matches keep their
// original file order.
func Filter(expenses []models.Expense, query string) []models.Expense {
	if query == "" {
		return expenses
	}

	matches := fuzzy.FindFrom(query, expenseSource(expenses))

	indexes := make(map[int]bool, len(matches))
	for _, m := range matches {
		indexes[m.Index] = true
	}

	filtered := make([]models.Expense, 0, len(matches))
	for i, e := range expenses {
		if indexes[i] {
			filtered = append(filtered, e)
		}
	}
	return filtered
}
