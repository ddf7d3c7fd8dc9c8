package inflation

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/model"
)

// AverageColumn is the header of the yearly average column.
const AverageColumn = "Ave"

// column maps a header cell to either a month or the average.
type column struct {
	month   model.Month
	average bool
}

// ReadTable reads a rate table CSV. The first column holds the year; the
// remaining header cells name months ("Jan".."Dec") or "Ave". Blank cells
// are treated as unpublished values.
func ReadTable(r io.Reader) (*Table, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading rate table CSV: %w", err)
	}

	if len(records) == 0 {
		return NewTable(nil), nil
	}

	cols, err := parseHeader(records[0])
	if err != nil {
		return nil, fmt.Errorf("header: %w", err)
	}

	rows := make(map[int]Row, len(records)-1)
	for i, rec := range records[1:] {
		year, row, err := parseRow(rec, cols)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		if _, dup := rows[year]; dup {
			return nil, fmt.Errorf("row %d: duplicate year %d", i+2, year)
		}
		rows[year] = row
	}
	return NewTable(rows), nil
}

func parseHeader(header []string) ([]column, error) {
	if len(header) < 2 {
		return nil, fmt.Errorf("expected a year column and at least one rate column, got %d fields", len(header))
	}

	cols := make([]column, len(header)-1)
	for i, h := range header[1:] {
		h = strings.TrimSpace(h)
		if strings.EqualFold(h, AverageColumn) {
			cols[i] = column{average: true}
			continue
		}
		m, err := model.ParseMonth(h)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", i+2, err)
		}
		cols[i] = column{month: m}
	}
	return cols, nil
}

func parseRow(rec []string, cols []column) (int, Row, error) {
	year, err := strconv.Atoi(strings.TrimSpace(rec[0]))
	if err != nil {
		return 0, Row{}, fmt.Errorf("parsing year %q: %w", rec[0], err)
	}

	row := Row{Monthly: make(map[model.Month]decimal.Decimal, 12)}
	for i, col := range cols {
		cell := strings.TrimSpace(rec[i+1])
		if cell == "" {
			continue
		}
		rate, err := decimal.NewFromString(cell)
		if err != nil {
			return 0, Row{}, fmt.Errorf("parsing rate %q for %d: %w", cell, year, err)
		}
		if col.average {
			row.Average = decimal.NewNullDecimal(rate)
		} else {
			row.Monthly[col.month] = rate
		}
	}
	return year, row, nil
}

// WriteTable writes a table in the format ReadTable accepts.
func WriteTable(w io.Writer, t *Table) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	header := []string{"Year"}
	for _, m := range model.Months {
		header = append(header, m.String())
	}
	header = append(header, AverageColumn)
	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, y := range t.years {
		row := t.rows[y]
		rec := make([]string, 0, len(header))
		rec = append(rec, strconv.Itoa(y))
		for _, m := range model.Months {
			if v, ok := row.Monthly[m]; ok {
				rec = append(rec, v.String())
			} else {
				rec = append(rec, "")
			}
		}
		if row.Average.Valid {
			rec = append(rec, row.Average.Decimal.String())
		} else {
			rec = append(rec, "")
		}
		if err := cw.Write(rec); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}
