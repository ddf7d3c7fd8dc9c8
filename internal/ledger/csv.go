package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// Header is the CSV header for expense files.
const Header = "amount,category,month,year"

// AdjustedHeader is the CSV header for inflation-adjusted exports.
const AdjustedHeader = "amount,category,month,year,rate,adjusted_amount"

const (
	numFields   = 4
	colAmount   = 0
	colCategory = 1
	colMonth    = 2
	colYear     = 3
)

// ReadExpenses reads all expenses from an expense CSV reader.
func ReadExpenses(r io.Reader) ([]model.Expense, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading expenses CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var expenses []model.Expense
	for i, rec := range records[1:] {
		e, err := UnmarshalExpense(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		expenses = append(expenses, e)
	}
	return expenses, nil
}

// LoadExpenses reads an expense CSV file from disk.
func LoadExpenses(path string) ([]model.Expense, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening expenses: %w", err)
	}
	defer f.Close()

	expenses, err := ReadExpenses(f)
	if err != nil {
		return nil, fmt.Errorf("reading expenses %s: %w", path, err)
	}
	return expenses, nil
}

// WriteExpenses writes expenses to a writer (including header).
func WriteExpenses(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range expenses {
		if err := cw.Write(MarshalExpense(e)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// WriteAdjusted writes inflation-adjusted expenses (including header).
func WriteAdjusted(w io.Writer, adjusted []AdjustedExpense) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(AdjustedHeader, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, a := range adjusted {
		row := append(MarshalExpense(a.Expense), a.Rate.String(), a.Adjusted.StringFixed(2))
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalExpense converts an Expense to a CSV row.
func MarshalExpense(e model.Expense) []string {
	row := make([]string, numFields)
	row[colAmount] = e.Amount().StringFixed(2)
	row[colCategory] = e.Category()
	row[colMonth] = e.Month().String()
	row[colYear] = strconv.Itoa(e.Year())
	return row
}

// UnmarshalExpense converts a CSV row to an Expense.
func UnmarshalExpense(record []string) (model.Expense, error) {
	if len(record) != numFields {
		return model.Expense{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}
	return model.ParseExpense(record[colAmount], record[colCategory], record[colMonth], record[colYear])
}
