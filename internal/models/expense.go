// Package models defines the expense record and its text serialization.
//
// The on-disk line format is the naive comma-joined form the store has always
// used: date,description,category,amount with no quoting or escaping. A
// description containing a comma corrupts the record layout; the format is
// kept for compatibility with existing store files and the limitation is
// deliberate.
package models

import (
	"fmt"
	"strings"

	"github.com/Saphereye/budget-tracker/internal/apperror"

	"github.com/shopspring/decimal"
)

// FieldCount is the number of comma-separated fields in a store line.
const FieldCount = 4

// Expense is one expense or income entry. A negative amount is an expense,
// a non-negative amount is income. Records are immutable once appended to
// the store; editing the file externally is the only mutation path.
type Expense struct {
	Date        string
	Description string
	Category    Category
	Amount      decimal.Decimal
}

// NewExpense builds an Expense, normalizing the category text through
// ParseCategory.
func NewExpense(date, description, category string, amount decimal.Decimal) Expense {
	return Expense{
		Date:        date,
		Description: description,
		Category:    ParseCategory(category),
		Amount:      amount,
	}
}

// MarshalLine renders the record as a single store line, without a trailing
// newline. Amounts are written with two fixed decimal places, so for any
// record carrying a cent-precision amount ParseLine(MarshalLine(e))
// reproduces e.
func (e Expense) MarshalLine() string {
	return fmt.Sprintf("%s,%s,%s,%s", e.Date, e.Description, e.Category, e.Amount.StringFixed(2))
}

// ParseLine parses one store data line. It returns a
// *apperror.MalformedRecordError when the line does not have exactly four
// fields or the amount is not a valid decimal.
func ParseLine(line string) (Expense, error) {
	fields := strings.Split(line, ",")
	if len(fields) != FieldCount {
		return Expense{}, malformed("line", line,
			fmt.Errorf("expected %d fields, got %d", FieldCount, len(fields)))
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(fields[3]))
	if err != nil {
		return Expense{}, malformed("amount", fields[3], err)
	}

	return Expense{
		Date:        fields[0],
		Description: fields[1],
		Category:    ParseCategory(fields[2]),
		Amount:      amount,
	}, nil
}

func malformed(field, value string, err error) error {
	return &apperror.MalformedRecordError{Field: field, Value: value, Err: err}
}
