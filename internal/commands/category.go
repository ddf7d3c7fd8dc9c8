package commands

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/model"
)

func newCategoryCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "category <name>",
		Short: "List the expenses recorded under a category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			l, err := a.openLedger()
			if err != nil {
				return err
			}

			expenses := l.ByCategory(args[0])
			if len(expenses) == 0 {
				fmt.Fprintf(cmd.OutOrStdout(), "No expenses in category %q.\n", args[0])
				return nil
			}
			fmt.Fprintln(cmd.OutOrStdout(), expenseTable(expenses))
			return nil
		},
	}
}

func newCategoriesCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "categories",
		Short: "List the distinct expense categories",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := loadApp(cmd, flags)
			if err != nil {
				return err
			}
			l, err := a.openLedger()
			if err != nil {
				return err
			}

			for _, c := range l.Categories() {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func expenseTable(expenses []model.Expense) string {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Amount", "Category", "Month", "Year")
	for _, e := range expenses {
		t.Row(e.Amount().StringFixed(2), e.Category(), e.Month().String(), strconv.Itoa(e.Year()))
	}
	return t.Render()
}
