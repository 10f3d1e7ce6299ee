package commands

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/pocketbook-dev/pocketbook/internal/config"
	"github.com/pocketbook-dev/pocketbook/internal/ledger"
	"github.com/pocketbook-dev/pocketbook/internal/model"
)

func newShellCommand(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "shell",
		Short: "Interactive bookkeeping menu",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, cfg, err := opts.newService()
			if err != nil {
				return err
			}

			sh := &shell{
				svc:      svc,
				defaults: cfg.Defaults,
				in:       bufio.NewScanner(cmd.InOrStdin()),
				out:      cmd.OutOrStdout(),
				ctx:      cmd.Context(),
			}
			sh.run()
			return nil
		},
	}
}

// shell is the line-oriented numbered menu. All input parsing happens
// here; parse failures reprompt and never reach the ledger service.
type shell struct {
	svc      *ledger.Service
	defaults config.DefaultsConfig
	in       *bufio.Scanner
	out      io.Writer
	ctx      context.Context
}

func (sh *shell) run() {
	fmt.Fprintln(sh.out, "Welcome to your personal finance dashboard!")
	for {
		fmt.Fprintln(sh.out, "1. Create a new account")
		fmt.Fprintln(sh.out, "2. View existing accounts")
		fmt.Fprintln(sh.out, "3. Add a transaction to an account")
		fmt.Fprintln(sh.out, "4. View account balance")
		fmt.Fprintln(sh.out, "5. Exit")

		choice, ok := sh.prompt("Enter your choice (1-5): ")
		if !ok {
			return
		}

		switch choice {
		case "1":
			sh.createAccount()
		case "2":
			sh.listAccounts()
		case "3":
			sh.addTransaction()
		case "4":
			sh.viewBalance()
		case "5":
			fmt.Fprintln(sh.out, "Exiting. Goodbye!")
			return
		default:
			fmt.Fprintln(sh.out, "Invalid choice. Please try again.")
		}
	}
}

// prompt prints msg and reads one trimmed line. ok is false on EOF.
func (sh *shell) prompt(msg string) (line string, ok bool) {
	fmt.Fprint(sh.out, msg)
	if !sh.in.Scan() {
		return "", false
	}
	return strings.TrimSpace(sh.in.Text()), true
}

func (sh *shell) createAccount() {
	name, ok := sh.prompt("Enter account name: ")
	if !ok {
		return
	}

	budgetStr, ok := sh.prompt("Enter budget: ")
	if !ok {
		return
	}
	budget, err := model.ParseAmount(budgetStr)
	if err != nil {
		fmt.Fprintln(sh.out, "Invalid budget. Please enter a numeric value.")
		return
	}

	currency, ok := sh.prompt(fmt.Sprintf("Enter currency (default is %s): ", sh.defaults.Currency))
	if !ok {
		return
	}
	if currency == "" {
		currency = sh.defaults.Currency
	}

	acct, err := sh.svc.CreateAccount(sh.ctx, name, budget, currency)
	var ice *ledger.InvalidCurrencyError
	switch {
	case errors.As(err, &ice):
		fmt.Fprintf(sh.out, "Available currencies: %s\n", strings.Join(ice.Valid, ", "))
		fmt.Fprintln(sh.out, "Enter a valid currency from the above list.")
	case errors.Is(err, ledger.ErrAccountExists):
		fmt.Fprintln(sh.out, "Account already exists.")
	case err != nil:
		fmt.Fprintf(sh.out, "Could not create account: %v\n", err)
	default:
		fmt.Fprintf(sh.out, "Account '%s' created successfully!\n", acct.Name)
	}
}

func (sh *shell) listAccounts() {
	names := sh.svc.ListAccounts()
	if len(names) == 0 {
		fmt.Fprintln(sh.out, "No accounts found.")
		return
	}
	fmt.Fprintln(sh.out, "Existing accounts:")
	for _, name := range names {
		fmt.Fprintf(sh.out, "- %s\n", model.Capitalize(name))
	}
}

func (sh *shell) addTransaction() {
	name, ok := sh.prompt("Enter account name: ")
	if !ok {
		return
	}

	dateStr, ok := sh.prompt("Enter transaction date (YYYY-MM-DD) or leave blank for today: ")
	if !ok {
		return
	}
	var date model.Date
	if dateStr != "" {
		var err error
		date, err = model.ParseDate(dateStr)
		if err != nil {
			fmt.Fprintln(sh.out, "Invalid date format. Please use YYYY-MM-DD.")
			return
		}
	}

	description, ok := sh.prompt("Enter transaction description: ")
	if !ok {
		return
	}

	amountStr, ok := sh.prompt("Enter transaction amount: ")
	if !ok {
		return
	}
	amount, err := model.ParseAmount(amountStr)
	if err != nil {
		fmt.Fprintln(sh.out, "Invalid amount. Please enter a numeric value.")
		return
	}

	if _, err := sh.svc.AddTransaction(name, description, amount, date); err != nil {
		if errors.Is(err, ledger.ErrAccountNotFound) {
			fmt.Fprintln(sh.out, "Account not found.")
			return
		}
		fmt.Fprintf(sh.out, "Could not add transaction: %v\n", err)
		return
	}
	fmt.Fprintln(sh.out, "Transaction added successfully!")
}

func (sh *shell) viewBalance() {
	name, ok := sh.prompt("Enter account name: ")
	if !ok {
		return
	}

	acct, err := sh.svc.LoadAccount(name)
	if err != nil {
		if errors.Is(err, ledger.ErrAccountNotFound) {
			fmt.Fprintln(sh.out, "Account not found.")
			return
		}
		fmt.Fprintf(sh.out, "Could not load account: %v\n", err)
		return
	}
	fmt.Fprintf(sh.out, "Account Balance: %s %s\n", acct.Balance(), acct.Currency)
}
