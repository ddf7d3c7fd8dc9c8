package ledger

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/model"
)

var (
	// ErrNoData is returned when a summary or adjustment query matches no expenses.
	ErrNoData = errors.New("no data found")
	// ErrAdjustmentUnavailable is returned for years whose average inflation
	// rate has not been finalized yet.
	ErrAdjustmentUnavailable = errors.New("inflation adjustment unavailable")
)

// RateSource is the read-only inflation table the ledger adjusts against.
type RateSource interface {
	AnnualAverage(year int) (decimal.Decimal, error)
	LatestFinalizedYear() (int, bool)
}

// CategoryTotal is the summed amount spent in one category.
type CategoryTotal struct {
	Category string
	Total    decimal.Decimal
}

// MonthTotal is the summed amount spent in one month. Total is invalid for
// months without any expenses.
type MonthTotal struct {
	Month model.Month
	Total decimal.NullDecimal
}

// AdjustedExpense pairs an expense with its inflation-adjusted amount.
type AdjustedExpense struct {
	Expense  model.Expense
	Rate     decimal.Decimal // annual average, percent
	Adjusted decimal.Decimal
}

// Ledger is an append-only, in-memory collection of expenses. It is safe
// for concurrent use.
type Ledger struct {
	mu       sync.RWMutex
	expenses []model.Expense
	rates    RateSource
}

// New creates an empty Ledger that adjusts against rates.
func New(rates RateSource) *Ledger {
	return &Ledger{rates: rates}
}

// Add appends an expense.
func (l *Ledger) Add(e model.Expense) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.expenses = append(l.expenses, e)
}

// AddAll appends expenses in order.
func (l *Ledger) AddAll(es []model.Expense) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.expenses = append(l.expenses, es...)
}

// Len returns the number of recorded expenses.
func (l *Ledger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.expenses)
}

// All returns a copy of every expense in insertion order.
func (l *Ledger) All() []model.Expense {
	return l.filter(func(model.Expense) bool { return true })
}

// ByCategory returns the expenses whose category matches exactly.
// An unknown category yields an empty slice.
func (l *Ledger) ByCategory(category string) []model.Expense {
	return l.filter(func(e model.Expense) bool { return e.Category() == category })
}

// Categories returns the distinct categories, sorted.
func (l *Ledger) Categories() []string {
	l.mu.RLock()
	defer l.mu.RUnlock()

	seen := make(map[string]bool)
	var out []string
	for _, e := range l.expenses {
		if !seen[e.Category()] {
			seen[e.Category()] = true
			out = append(out, e.Category())
		}
	}
	sort.Strings(out)
	return out
}

// MonthlySummary totals the expenses of one month per category, sorted by
// category. The month accepts any spelling ParseMonth does.
func (l *Ledger) MonthlySummary(month string, year int) ([]CategoryTotal, error) {
	m, err := model.ParseMonth(month)
	if err != nil {
		return nil, err
	}

	rows := l.filter(func(e model.Expense) bool { return e.Month() == m && e.Year() == year })
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w for %s %d", ErrNoData, m, year)
	}

	totals := make(map[string]decimal.Decimal)
	for _, e := range rows {
		totals[e.Category()] = totals[e.Category()].Add(e.Amount())
	}

	out := make([]CategoryTotal, 0, len(totals))
	for c, t := range totals {
		out = append(out, CategoryTotal{Category: c, Total: t})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Category < out[j].Category })
	return out, nil
}

// YearlySummary totals the expenses of one year per month, Jan through Dec.
func (l *Ledger) YearlySummary(year int) ([]MonthTotal, error) {
	rows := l.filter(func(e model.Expense) bool { return e.Year() == year })
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w for %d", ErrNoData, year)
	}

	out := make([]MonthTotal, len(model.Months))
	for i, m := range model.Months {
		out[i].Month = m
	}
	for _, e := range rows {
		mt := &out[e.Month()-1]
		mt.Total = decimal.NewNullDecimal(mt.Total.Decimal.Add(e.Amount()))
	}
	return out, nil
}

// InflationAdjusted rescales every expense of a year by that year's average
// inflation rate. Years past the newest finalized average are unavailable
// regardless of what the ledger holds.
func (l *Ledger) InflationAdjusted(year int) ([]AdjustedExpense, error) {
	if !l.adjustable(year) {
		return nil, fmt.Errorf("%w: no inflation average calculated yet for %d", ErrAdjustmentUnavailable, year)
	}

	rate, err := l.rates.AnnualAverage(year)
	if err != nil {
		return nil, err
	}

	rows := l.filter(func(e model.Expense) bool { return e.Year() == year })
	if len(rows) == 0 {
		return nil, fmt.Errorf("%w for %d", ErrNoData, year)
	}

	out := make([]AdjustedExpense, len(rows))
	for i, e := range rows {
		out[i] = AdjustedExpense{
			Expense:  e,
			Rate:     rate,
			Adjusted: model.Scale(e.Amount(), rate),
		}
	}
	return out, nil
}

func (l *Ledger) adjustable(year int) bool {
	finalized, ok := l.rates.LatestFinalizedYear()
	return ok && year <= finalized
}

func (l *Ledger) filter(keep func(model.Expense) bool) []model.Expense {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]model.Expense, 0)
	for _, e := range l.expenses {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}
