package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/chart"
	"github.com/pennywise-dev/pennywise/internal/config"
	"github.com/pennywise-dev/pennywise/internal/inflation"
	"github.com/pennywise-dev/pennywise/internal/ledger"
	"github.com/pennywise-dev/pennywise/internal/logging"
)

// app bundles what a subcommand needs once config has been resolved.
type app struct {
	cfg    *config.Config
	logger *log.Logger
	rates  *inflation.Table
}

// loadApp resolves config (file, then environment, then flags), sets up
// logging and reads the rate table.
func loadApp(cmd *cobra.Command, flags *globalFlags) (*app, error) {
	cfg, fromFile, err := loadConfig(cmd, flags)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(cmd.ErrOrStderr(), cfg.LogLevel)
	if err != nil {
		return nil, err
	}
	if !fromFile {
		logger.Warn("config file not found, using defaults", "path", flags.configPath)
	}

	rates, err := inflation.Load(cfg.RatesFile)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded rate table", "path", cfg.RatesFile, "years", len(rates.Years()))

	return &app{cfg: cfg, logger: logger, rates: rates}, nil
}

func loadConfig(cmd *cobra.Command, flags *globalFlags) (*config.Config, bool, error) {
	explicit := cmd.Flags().Changed("config")

	cfg, err := config.Load(flags.configPath)
	fromFile := err == nil
	switch {
	case err == nil:
		// Paths in the file are relative to the file.
		dir := filepath.Dir(flags.configPath)
		cfg.RatesFile = resolvePath(dir, cfg.RatesFile)
		cfg.ExpensesFile = resolvePath(dir, cfg.ExpensesFile)
	case errors.Is(err, fs.ErrNotExist) && !explicit:
		cfg = config.Default()
	default:
		return nil, false, err
	}

	cfg.ApplyEnv(os.LookupEnv)

	if cmd.Flags().Changed("rates") {
		cfg.RatesFile = flags.ratesFile
	}
	if cmd.Flags().Changed("expenses") {
		cfg.ExpensesFile = flags.expensesFile
	}
	if cmd.Flags().Changed("log-level") {
		cfg.LogLevel = flags.logLevel
	}

	if err := cfg.Validate(); err != nil {
		return nil, false, err
	}
	return cfg, fromFile, nil
}

func resolvePath(dir, path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(dir, path)
}

// openLedger builds a ledger over the rate table and imports the expenses
// file. A missing expenses file yields an empty ledger.
func (a *app) openLedger() (*ledger.Ledger, error) {
	l := ledger.New(a.rates)
	if a.cfg.ExpensesFile == "" {
		return l, nil
	}

	expenses, err := ledger.LoadExpenses(a.cfg.ExpensesFile)
	if errors.Is(err, fs.ErrNotExist) {
		a.logger.Warn("expenses file not found, starting empty", "path", a.cfg.ExpensesFile)
		return l, nil
	}
	if err != nil {
		return nil, err
	}

	l.AddAll(expenses)
	a.logger.Debug("loaded expenses", "path", a.cfg.ExpensesFile, "rows", l.Len())
	return l, nil
}

func (a *app) chartOptions() chart.Options {
	return chart.Options{Width: a.cfg.Chart.Width, BarChar: a.cfg.Chart.BarChar}
}

func parseYear(s string) (int, error) {
	year, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("parsing year %q: %w", s, err)
	}
	return year, nil
}
