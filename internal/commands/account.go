package commands

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/ledger"
	"github.com/pocketbook-dev/pocketbook/internal/model"
)

func newAccountCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "account",
		Short: "Account operations",
	}
	cmd.AddCommand(newAccountCreateCommand(opts))
	cmd.AddCommand(newAccountListCommand(opts))
	return cmd
}

func newAccountCreateCommand(opts *rootOptions) *cobra.Command {
	var budgetStr string
	var currency string

	cmd := &cobra.Command{
		Use:   "create <name>",
		Short: "Create a new account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := opts.newService()
			if err != nil {
				return err
			}

			budget, err := model.ParseAmount(budgetStr)
			if err != nil {
				return fmt.Errorf("invalid budget: %w", err)
			}

			cur := currency
			if cur == "" {
				cur = cfg.Defaults.Currency
			}

			acct, err := svc.CreateAccount(cmd.Context(), args[0], budget, cur)
			var ice *ledger.InvalidCurrencyError
			if errors.As(err, &ice) {
				fmt.Fprintf(cmd.ErrOrStderr(), "Available currencies: %s\n", strings.Join(ice.Valid, ", "))
				return err
			}
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", acct.Summary())
			return nil
		},
	}

	cmd.Flags().StringVar(&budgetStr, "budget", "", "starting budget (required)")
	_ = cmd.MarkFlagRequired("budget")
	cmd.Flags().StringVar(&currency, "currency", "", "3-letter currency code (defaults from config)")

	return cmd
}

func newAccountListCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List existing accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.newService()
			if err != nil {
				return err
			}

			names := svc.ListAccounts()
			if len(names) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No accounts found.")
				return nil
			}
			for _, name := range names {
				fmt.Fprintf(cmd.OutOrStdout(), "- %s\n", model.Capitalize(name))
			}
			return nil
		},
	}
}
