package commands

import (
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/chart"
	"github.com/pennywise-dev/pennywise/internal/model"
)

func newSummaryCommand(flags *globalFlags) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Chart spending for a month or a year",
	}
	cmd.AddCommand(newSummaryMonthCommand(flags))
	cmd.AddCommand(newSummaryYearCommand(flags))
	return cmd
}

func newSummaryMonthCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "month <month> <year>",
		Short: "Chart category totals for one month",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			month, err := model.ParseMonth(args[0])
			if err != nil {
				return err
			}
			year, err := parseYear(args[1])
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

			totals, err := l.MonthlySummary(args[0], year)
			if err != nil {
				return err
			}
			return chart.Render(cmd.OutOrStdout(), chart.Monthly(month, year, totals), a.chartOptions())
		},
	}
}

func newSummaryYearCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "year <year>",
		Short: "Chart month totals for one year",
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

			totals, err := l.YearlySummary(year)
			if err != nil {
				return err
			}
			return chart.Render(cmd.OutOrStdout(), chart.Yearly(year, totals), a.chartOptions())
		},
	}
}
