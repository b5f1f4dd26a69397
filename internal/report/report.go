// Package report computes the aggregate views rendered by the viewer: sums
// per category, the signed spent/earned split, and overall totals. All
// functions are pure; results are recomputed from the full record list on
// every redraw.
package report

import (
	"sort"

	"github.com/Saphereye/budget-tracker/internal/models"

	"github.com/shopspring/decimal"
)

// CategoryAmount pairs a category with an aggregate amount, for chart
// rendering and export.
type CategoryAmount struct {
	Category models.Category
	Amount   decimal.Decimal
}

// ByCategory groups records by category in a single linear pass and returns
// the signed sum per category. Categories absent from the input never appear
// in the result.
func ByCategory(expenses []models.Expense) map[models.Category]decimal.Decimal {
	sums := make(map[models.Category]decimal.Decimal)
	for _, e := range expenses {
		sums[e.Category] = sums[e.Category].Add(e.Amount)
	}
	return sums
}

// SplitSigned partitions category sums by sign. Earned holds the
// non-negative sums as-is; spent holds the strictly-negative sums flipped
// positive for display. Both buckets are ordered by category name so
// rendering is stable.
func SplitSigned(sums map[models.Category]decimal.Decimal) (earned, spent []CategoryAmount) {
	for category, amount := range sums {
		if amount.IsNegative() {
			spent = append(spent, CategoryAmount{Category: category, Amount: amount.Neg()})
		} else {
			earned = append(earned, CategoryAmount{Category: category, Amount: amount})
		}
	}

	byName := func(entries []CategoryAmount) {
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Category.String() < entries[j].Category.String()
		})
	}
	byName(earned)
	byName(spent)
	return earned, spent
}

// Totals reduces the full record set to (net, total spent, total earned).
// Spent is the sum of strictly-negative amounts, earned the sum of
// non-negative amounts; net is always their sum.
func Totals(expenses []models.Expense) (net, spent, earned decimal.Decimal) {
	for _, e := range expenses {
		net = net.Add(e.Amount)
		if e.Amount.IsNegative() {
			spent = spent.Add(e.Amount)
		} else {
			earned = earned.Add(e.Amount)
		}
	}
	return net, spent, earned
}
