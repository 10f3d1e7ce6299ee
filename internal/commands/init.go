package commands

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/config"
	"github.com/pocketbook-dev/pocketbook/internal/store"
)

func newInitCommand() *cobra.Command {
	var ledgerName string
	var currency string

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new pocketbook",
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

			return runInit(cmd, absDir, ledgerName, currency)
		},
	}

	cmd.Flags().StringVar(&ledgerName, "ledger-file", "database.json", "ledger file name")
	cmd.Flags().StringVar(&currency, "currency", "USD", "default currency for new accounts")

	return cmd
}

func runInit(cmd *cobra.Command, dir, ledgerName, currency string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating directory: %w", err)
	}

	// Write pocketbook.yaml.
	cfg := config.Default()
	cfg.Ledger.Path = ledgerName
	cfg.Defaults.Currency = currency
	if err := config.Save(filepath.Join(dir, "pocketbook.yaml"), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	// Write an empty ledger.
	if err := store.New(filepath.Join(dir, ledgerName)).Save(map[string]store.Record{}); err != nil {
		return fmt.Errorf("writing ledger: %w", err)
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Initialized pocketbook at %s\n", dir)
	return nil
}
