package inflation

import (
	"errors"
	"fmt"
	"os"
	"sort"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// ErrRateUnavailable is returned when the table has no value for a lookup.
var ErrRateUnavailable = errors.New("inflation rate unavailable")

// Row holds one year of rates, in percent. A missing map entry or an
// invalid Average means the value has not been published.
type Row struct {
	Monthly map[model.Month]decimal.Decimal
	Average decimal.NullDecimal
}

// Table is a read-only grid of inflation rates keyed by year.
type Table struct {
	rows  map[int]Row
	years []int
}

// NewTable builds a Table from rows. The rows are copied.
func NewTable(rows map[int]Row) *Table {
	t := &Table{rows: make(map[int]Row, len(rows))}
	for y, r := range rows {
		monthly := make(map[model.Month]decimal.Decimal, len(r.Monthly))
		for m, v := range r.Monthly {
			monthly[m] = v
		}
		t.rows[y] = Row{Monthly: monthly, Average: r.Average}
		t.years = append(t.years, y)
	}
	sort.Ints(t.years)
	return t
}

// Load reads a rate table CSV from disk.
func Load(path string) (*Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening rate table: %w", err)
	}
	defer f.Close()

	t, err := ReadTable(f)
	if err != nil {
		return nil, fmt.Errorf("reading rate table %s: %w", path, err)
	}
	return t, nil
}

// Years returns the years present in the table, ascending.
func (t *Table) Years() []int {
	out := make([]int, len(t.years))
	copy(out, t.years)
	return out
}

// MonthlyRate returns the rate for a single month.
func (t *Table) MonthlyRate(year int, m model.Month) (decimal.Decimal, error) {
	row, ok := t.rows[year]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no rates for %d", ErrRateUnavailable, year)
	}
	rate, ok := row.Monthly[m]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no rate for %s %d", ErrRateUnavailable, m, year)
	}
	return rate, nil
}

// AnnualAverage returns the year's Ave column.
func (t *Table) AnnualAverage(year int) (decimal.Decimal, error) {
	row, ok := t.rows[year]
	if !ok {
		return decimal.Decimal{}, fmt.Errorf("%w: no rates for %d", ErrRateUnavailable, year)
	}
	if !row.Average.Valid {
		return decimal.Decimal{}, fmt.Errorf("%w: no average for %d", ErrRateUnavailable, year)
	}
	return row.Average.Decimal, nil
}

// LatestYear returns the newest year in the table.
func (t *Table) LatestYear() (int, bool) {
	if len(t.years) == 0 {
		return 0, false
	}
	return t.years[len(t.years)-1], true
}

// LatestFinalizedYear returns the newest year that has an average.
func (t *Table) LatestFinalizedYear() (int, bool) {
	for i := len(t.years) - 1; i >= 0; i-- {
		if t.rows[t.years[i]].Average.Valid {
			return t.years[i], true
		}
	}
	return 0, false
}
