package commands

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/buildinfo"
	"github.com/pennywise-dev/pennywise/internal/config"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	configPath   string
	ratesFile    string
	expensesFile string
	logLevel     string
}

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	var flags globalFlags

	rootCmd := &cobra.Command{
		Use:     "pennywise",
		Short:   "Personal expense tracking with inflation adjustment",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A .env file is optional.
			_ = godotenv.Load()
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&flags.configPath, "config", config.FileName, "config file")
	pf.StringVar(&flags.ratesFile, "rates", "", "inflation rate table CSV (overrides config)")
	pf.StringVar(&flags.expensesFile, "expenses", "", "expenses CSV (overrides config)")
	pf.StringVar(&flags.logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newCategoryCommand(&flags))
	rootCmd.AddCommand(newCategoriesCommand(&flags))
	rootCmd.AddCommand(newSummaryCommand(&flags))
	rootCmd.AddCommand(newAdjustCommand(&flags))
	rootCmd.AddCommand(newInflateCommand(&flags))

	return rootCmd
}
