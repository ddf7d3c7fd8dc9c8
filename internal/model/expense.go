package model

import (
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrNegativeAmount is returned when an expense amount is below zero.
var ErrNegativeAmount = errors.New("negative amount")

var hundred = decimal.NewFromInt(100)

// MonthlyRater looks up the inflation rate, in percent, for a month.
type MonthlyRater interface {
	MonthlyRate(year int, m Month) (decimal.Decimal, error)
}

// Expense is a single recorded spending transaction. The zero value is not
// meaningful; construct with NewExpense or ParseExpense.
type Expense struct {
	amount   decimal.Decimal
	category string
	month    Month
	year     int
}

// NewExpense validates and normalizes an expense.
func NewExpense(amount decimal.Decimal, category, month string, year int) (Expense, error) {
	if amount.IsNegative() {
		return Expense{}, fmt.Errorf("%w: %s", ErrNegativeAmount, amount)
	}
	m, err := ParseMonth(month)
	if err != nil {
		return Expense{}, err
	}
	return Expense{amount: amount, category: category, month: m, year: year}, nil
}

// ParseExpense builds an Expense from text fields, as read from a CSV row
// or the command line.
func ParseExpense(amount, category, month, year string) (Expense, error) {
	amt, err := decimal.NewFromString(strings.TrimSpace(amount))
	if err != nil {
		return Expense{}, fmt.Errorf("parsing amount %q: %w", amount, err)
	}
	y, err := strconv.Atoi(strings.TrimSpace(year))
	if err != nil {
		return Expense{}, fmt.Errorf("parsing year %q: %w", year, err)
	}
	return NewExpense(amt, category, month, y)
}

// Amount returns the expense amount.
func (e Expense) Amount() decimal.Decimal { return e.amount }

// Category returns the expense category label.
func (e Expense) Category() string { return e.category }

// Month returns the normalized month.
func (e Expense) Month() Month { return e.month }

// Year returns the calendar year.
func (e Expense) Year() int { return e.year }

// Fields returns (amount, category, month, year).
func (e Expense) Fields() (decimal.Decimal, string, Month, int) {
	return e.amount, e.category, e.month, e.year
}

// AdjustForInflation rescales the amount by the rate recorded for the
// expense's own month: amount * (1 + rate/100).
func (e Expense) AdjustForInflation(rates MonthlyRater) (decimal.Decimal, error) {
	rate, err := rates.MonthlyRate(e.year, e.month)
	if err != nil {
		return decimal.Decimal{}, err
	}
	return Scale(e.amount, rate), nil
}

// Scale applies a percentage rate to an amount.
func Scale(amount, ratePercent decimal.Decimal) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(1).Add(ratePercent.Div(hundred)))
}
