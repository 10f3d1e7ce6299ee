package commands

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newBalanceCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "balance <account>",
		Short: "Show an account's balance",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := opts.newService()
			if err != nil {
				return err
			}

			acct, err := svc.LoadAccount(args[0])
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Account balance: %s %s\n", acct.Balance(), acct.Currency)
			return nil
		},
	}
}
