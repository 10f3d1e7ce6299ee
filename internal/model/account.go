package model

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Account is a named budget ledger with a currency and an append-only
// transaction history. The lowercased name is its unique key in the store.
type Account struct {
	Name         string
	Budget       Amount
	Currency     string
	Transactions []Transaction
}

// NewAccount builds an Account with no transactions. The name is
// lowercased and the currency uppercased; currency validation is the
// ledger service's job.
func NewAccount(name string, budget Amount, currency string) *Account {
	return &Account{
		Name:     strings.ToLower(name),
		Budget:   budget,
		Currency: strings.ToUpper(currency),
	}
}

// Balance returns the budget minus the sum of all transaction amounts.
// Positive amounts reduce the balance; the sign convention is the
// caller's responsibility.
func (a *Account) Balance() Amount {
	sum := decimal.Zero
	for _, t := range a.Transactions {
		sum = sum.Add(t.Amount.Decimal)
	}
	return Amount{a.Budget.Sub(sum)}
}

// Summary returns a one-line human-readable description.
func (a *Account) Summary() string {
	return fmt.Sprintf("Account: %s | Budget: %s %s, Transactions: %d",
		Capitalize(a.Name), a.Budget, a.Currency, len(a.Transactions))
}
