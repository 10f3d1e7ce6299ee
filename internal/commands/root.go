// Package commands wires the pocketbook CLI.
package commands

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/buildinfo"
	"github.com/pocketbook-dev/pocketbook/internal/config"
	"github.com/pocketbook-dev/pocketbook/internal/ledger"
	"github.com/pocketbook-dev/pocketbook/internal/rates"
	"github.com/pocketbook-dev/pocketbook/internal/store"
)

// envRatesEndpoint overrides the configured rate service endpoint.
const envRatesEndpoint = "POCKETBOOK_RATES_ENDPOINT"

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:     "pocketbook",
		Short:   "Personal finance bookkeeping",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "pocketbook.yaml", "config file")
	rootCmd.PersistentFlags().StringVar(&opts.ledgerPath, "ledger", "", "ledger file (overrides config)")

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newAccountCommand(opts))
	rootCmd.AddCommand(newTxCommand(opts))
	rootCmd.AddCommand(newBalanceCommand(opts))
	rootCmd.AddCommand(newShellCommand(opts))

	return rootCmd
}

type rootOptions struct {
	configPath string
	ledgerPath string
}

// newService resolves config (file, .env, flags) and builds the ledger
// service with its rate client.
func (o *rootOptions) newService() (*ledger.Service, *config.Config, error) {
	_ = godotenv.Load()

	cfg, err := config.Load(o.configPath)
	if errors.Is(err, fs.ErrNotExist) {
		cfg = config.Default()
	} else if err != nil {
		return nil, nil, err
	}

	if o.ledgerPath != "" {
		cfg.Ledger.Path = o.ledgerPath
	}
	if v := os.Getenv(envRatesEndpoint); v != "" {
		cfg.Rates.Endpoint = v
	}

	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	client := rates.NewClient(cfg.Rates.Endpoint, time.Duration(cfg.Rates.TimeoutSeconds)*time.Second, logger)

	return ledger.NewService(store.New(cfg.Ledger.Path), client), cfg, nil
}
