// Package chart renders labeled totals as horizontal terminal bar charts.
package chart

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/pennywise-dev/pennywise/internal/ledger"
	"github.com/pennywise-dev/pennywise/internal/model"
)

// NoData is printed in place of a bar for labels without a value.
const NoData = "-"

// Bar is one labeled value. An invalid Value means no data.
type Bar struct {
	Label string
	Value decimal.NullDecimal
}

// Chart is a titled series of bars.
type Chart struct {
	Title  string
	XLabel string
	YLabel string
	Bars   []Bar
}

// Options controls rendering.
type Options struct {
	Width   int    // columns used by the longest bar
	BarChar string // glyph repeated to draw bars
}

// DefaultOptions returns the options used when none are configured.
func DefaultOptions() Options {
	return Options{Width: 40, BarChar: "█"}
}

// Monthly builds the category breakdown chart for one month.
func Monthly(month model.Month, year int, totals []ledger.CategoryTotal) Chart {
	c := Chart{
		Title:  fmt.Sprintf("Expense Summary for %s %d", month.Name(), year),
		XLabel: "Category",
		YLabel: "Amount Spent",
	}
	for _, t := range totals {
		c.Bars = append(c.Bars, Bar{Label: t.Category, Value: decimal.NewNullDecimal(t.Total)})
	}
	return c
}

// Yearly builds the Jan..Dec chart for one year.
func Yearly(year int, totals []ledger.MonthTotal) Chart {
	c := Chart{
		Title:  fmt.Sprintf("Expense Summary for %d", year),
		XLabel: "Month",
		YLabel: "Amount Spent",
	}
	for _, t := range totals {
		c.Bars = append(c.Bars, Bar{Label: t.Month.String(), Value: t.Total})
	}
	return c
}

// Render writes c to w. Styling is dropped when w is not a terminal.
func Render(w io.Writer, c Chart, opts Options) error {
	if opts.Width <= 0 {
		opts.Width = DefaultOptions().Width
	}
	if opts.BarChar == "" {
		opts.BarChar = DefaultOptions().BarChar
	}

	r := lipgloss.NewRenderer(w)
	titleStyle := r.NewStyle().Bold(true)
	axisStyle := r.NewStyle().Faint(true)
	barStyle := r.NewStyle().Foreground(lipgloss.Color("12"))

	labelWidth := utf8.RuneCountInString(c.XLabel)
	maxValue := decimal.Zero
	for _, b := range c.Bars {
		if n := utf8.RuneCountInString(b.Label); n > labelWidth {
			labelWidth = n
		}
		if b.Value.Valid && b.Value.Decimal.GreaterThan(maxValue) {
			maxValue = b.Value.Decimal
		}
	}

	var sb strings.Builder
	sb.WriteString(titleStyle.Render(c.Title))
	sb.WriteString("\n")
	sb.WriteString(axisStyle.Render(pad(c.XLabel, labelWidth) + " | " + c.YLabel))
	sb.WriteString("\n")

	for _, b := range c.Bars {
		sb.WriteString(pad(b.Label, labelWidth))
		sb.WriteString(" | ")
		if !b.Value.Valid {
			sb.WriteString(NoData)
			sb.WriteString("\n")
			continue
		}
		if n := barLength(b.Value.Decimal, maxValue, opts.Width); n > 0 {
			sb.WriteString(barStyle.Render(strings.Repeat(opts.BarChar, n)))
			sb.WriteString(" ")
		}
		sb.WriteString(b.Value.Decimal.StringFixed(2))
		sb.WriteString("\n")
	}

	_, err := io.WriteString(w, sb.String())
	return err
}

func barLength(v, maxValue decimal.Decimal, width int) int {
	if !maxValue.IsPositive() || !v.IsPositive() {
		return 0
	}
	n := int(v.Div(maxValue).Mul(decimal.NewFromInt(int64(width))).Round(0).IntPart())
	if n == 0 {
		n = 1
	}
	return n
}

func pad(s string, width int) string {
	if n := utf8.RuneCountInString(s); n < width {
		return s + strings.Repeat(" ", width-n)
	}
	return s
}
