// Package prompt implements the line-oriented interactive add flow. Invalid
// input is recovered locally by re-prompting and never propagates; the only
// errors returned are IO failures on the input stream.
package prompt

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/Saphereye/budget-tracker/internal/config"
	"github.com/Saphereye/budget-tracker/internal/dateutils"
	"github.com/Saphereye/budget-tracker/internal/models"

	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
)

var log = config.Logger

// SetLogger allows setting a custom logger
func SetLogger(logger *logrus.Logger) {
	if logger != nil {
		log = logger
	}
}

// Prompter reads expense fields from a line-oriented input stream.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// New creates a Prompter reading from in and writing prompts to out.
func New(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		scanner: bufio.NewScanner(in),
		out:     out,
	}
}

// Expense runs the full add-flow prompt sequence and returns the assembled
// record. extraCategories lists custom category names shown in the category
// prompt alongside the built-in set.
func (p *Prompter) Expense(extraCategories []string) (models.Expense, error) {
	date, err := p.date()
	if err != nil {
		return models.Expense{}, err
	}

	description, err := p.read("Enter description: ")
	if err != nil {
		return models.Expense{}, err
	}

	category, err := p.category(extraCategories)
	if err != nil {
		return models.Expense{}, err
	}

	amount, err := p.amount()
	if err != nil {
		return models.Expense{}, err
	}

	expense := models.Expense{
		Date:        date,
		Description: description,
		Category:    category,
		Amount:      amount,
	}
	log.WithFields(logrus.Fields{
		"date":     expense.Date,
		"category": expense.Category.String(),
	}).Debug("Assembled expense from prompts")
	return expense, nil
}

// read prints a prompt and returns one trimmed input line.
func (p *Prompter) read(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(p.scanner.Text()), nil
}

// date prompts until a valid date arrives. Blank input means today.
func (p *Prompter) date() (string, error) {
	for {
		input, err := p.read("Enter date (YYYY-MM-DD or YYYY/MM/DD, leave empty for today's date): ")
		if err != nil {
			return "", err
		}
		if input == "" {
			return dateutils.Today(), nil
		}
		if parsed, err := dateutils.ParseInput(input); err == nil {
			return dateutils.ToISODate(parsed), nil
		}
		fmt.Fprintln(p.out, "Invalid date format. Please enter the date in YYYY-MM-DD or YYYY/MM/DD format.")
	}
}

// category prompts once; parsing is total, so anything entered is accepted.
func (p *Prompter) category(extraCategories []string) (models.Category, error) {
	names := append(models.KnownCategoryNames(), extraCategories...)
	input, err := p.read(fmt.Sprintf("Enter category (%s or anything else): ", strings.Join(names, ", ")))
	if err != nil {
		return models.Category{}, err
	}
	return models.ParseCategory(input), nil
}

// amount prompts until a valid signed decimal arrives.
func (p *Prompter) amount() (decimal.Decimal, error) {
	for {
		input, err := p.read("Enter amount (negative for expenses): ")
		if err != nil {
			return decimal.Decimal{}, err
		}
		if amount, err := decimal.NewFromString(input); err == nil {
			return amount, nil
		}
		fmt.Fprintln(p.out, "Invalid amount. Please enter a valid number.")
	}
}
