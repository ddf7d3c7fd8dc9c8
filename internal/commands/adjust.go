package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/ledger"
	"github.com/pennywise-dev/pennywise/internal/model"
)

func newAdjustCommand(flags *globalFlags) *cobra.Command {
	var asCSV bool

	cmd := &cobra.Command{
		Use:   "adjust <year>",
		Short: "Rescale a year's expenses by its average inflation rate",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			year, err := parseYear(args[0])
			if err != nil {
				return err
			}

			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			l, err := a.openLedger()
			if err != nil {
				return err
			}

			adjusted, err := l.InflationAdjusted(year)
			if err != nil {
				return err
			}

			if asCSV {
				return ledger.WriteAdjusted(cmd.OutOrStdout(), adjusted)
			}
			fmt.Fprintln(cmd.OutOrStdout(), adjustedTable(adjusted))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asCSV, "csv", false, "write CSV instead of a table")

	return cmd
}

func newInflateCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "inflate <amount> <category> <month> <year>",
		Short: "Adjust a single expense by its month's inflation rate",
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := model.ParseExpense(args[0], args[1], args[2], args[3])
			if err != nil {
				return err
			}

			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}

			adjusted, err := e.AdjustForInflation(a.rates)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "your inflation adjusted expense is %s\n", adjusted.StringFixed(2))
			return nil
		},
	}
}

func adjustedTable(adjusted []ledger.AdjustedExpense) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Amount", "Category", "Month", "Year", "Rate %", "Adjusted Amount")
	for _, a := range adjusted {
		amount, category, month, year := a.Expense.Fields()
		t.Row(amount.StringFixed(2), category, month.String(), strconv.Itoa(year), a.Rate.String(), a.Adjusted.StringFixed(2))
	}
	return t.Render()
}
