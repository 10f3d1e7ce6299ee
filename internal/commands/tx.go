package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

func newTxCommand(opts *rootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tx",
		Short: "Transaction operations",
	}
	cmd.AddCommand(newTxAddCommand(opts))
	cmd.AddCommand(newTxExportCommand(opts))
	cmd.AddCommand(newTxImportCommand(opts))
	return cmd
}

func newTxAddCommand(opts *rootOptions) *cobra.Command {
	var description string
	var amountStr string
	var dateStr string

	cmd := &cobra.Command{
		Use:   "add <account>",
		Short: "Add a transaction to an account",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.newService()
			if err != nil {
				return err
			}

			amount, err := model.ParseAmount(amountStr)
			if err != nil {
				return fmt.Errorf("invalid amount: %w", err)
			}

			var date model.Date
			if dateStr != "" {
				date, err = model.ParseDate(dateStr)
				if err != nil {
					return fmt.Errorf("invalid date: %w", err)
				}
			}

			tx, err := svc.AddTransaction(args[0], description, amount, date)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added %s\n", tx)
			return nil
		},
	}

	cmd.Flags().StringVar(&description, "description", "", "transaction description (required)")
	_ = cmd.MarkFlagRequired("description")
	cmd.Flags().StringVar(&amountStr, "amount", "", "transaction amount (required)")
	_ = cmd.MarkFlagRequired("amount")
	cmd.Flags().StringVar(&dateStr, "date", "", "transaction date YYYY-MM-DD (default today)")

	return cmd
}

func newTxExportCommand(opts *rootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "export <account>",
		Short: "Export an account's transactions as CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.newService()
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			if outPath != "" {
				f, err := os.Create(outPath)
				if err != nil {
					return fmt.Errorf("creating export file: %w", err)
				}
				defer f.Close()
				w = f
			}

			return svc.ExportTransactions(args[0], w)
		},
	}

	cmd.Flags().StringVar(&outPath, "out", "", "output file (default stdout)")

	return cmd
}

func newTxImportCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "import <account> <file>",
		Short: "Import transactions from a CSV file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.newService()
			if err != nil {
				return err
			}

			f, err := os.Open(args[1])
			if err != nil {
				return fmt.Errorf("opening import file: %w", err)
			}
			defer f.Close()

			n, err := svc.ImportTransactions(args[0], f)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Imported %d transactions into %s\n", n, args[0])
			return nil
		},
	}
}
