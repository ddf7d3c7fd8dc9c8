package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pennywise-dev/pennywise/internal/config"
	"github.com/pennywise-dev/pennywise/internal/ledger"
)

func newInitCommand() *cobra.Command {
	var ratesFile string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new pennywise project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			if err := runInit(absDir, ratesFile); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Initialized pennywise project at %s\n", absDir)
			return nil
		},
	}

	cmd.Flags().StringVar(&ratesFile, "rates-file", config.Default().RatesFile, "rate table path to record in the config")

	return cmd
}

func runInit(dir, ratesFile string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory %s: %w", dir, err)
	}

	configPath := filepath.Join(dir, config.FileName)
	if _, err := os.Stat(configPath); err == nil {
		return fmt.Errorf("%s already exists", configPath)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("checking config: %w", err)
	}

	// Write pennywise.yaml.
	cfg := config.Default()
	cfg.RatesFile = ratesFile
	if err := config.Save(configPath, cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write an empty expenses file unless one is already there.
	expensesPath := filepath.Join(dir, cfg.ExpensesFile)
	if _, err := os.Stat(expensesPath); errors.Is(err, fs.ErrNotExist) {
		if err := os.WriteFile(expensesPath, []byte(ledger.Header+"\n"), 0o644); err != nil {
			return fmt.Errorf("writing expenses file: %w", err)
		}
	}

	return nil
}
