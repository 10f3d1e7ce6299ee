// Package ledger provides account-level operations over the store.
package ledger

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/pocketbook-dev/pocketbook/internal/model"
	"github.com/pocketbook-dev/pocketbook/internal/store"
)

var (
	// ErrAccountExists is returned when creating an account whose name is taken.
	ErrAccountExists = errors.New("account already exists")
	// ErrAccountNotFound is returned when an operation names an unknown account.
	ErrAccountNotFound = errors.New("account not found")
)

// InvalidCurrencyError reports a currency code outside the known set. It
// carries the valid codes so the boundary layer can render guidance; the
// core never prints.
type InvalidCurrencyError struct {
	Code  string
	Valid []string
}

func (e *InvalidCurrencyError) Error() string {
	return fmt.Sprintf("invalid currency %q (valid: %s)", e.Code, strings.Join(e.Valid, ", "))
}

// CurrencyLister reports which currency codes are currently valid.
type CurrencyLister interface {
	Currencies(ctx context.Context) []string
}

// Service provides business logic for accounts and their transactions.
type Service struct {
	store      *store.Store
	currencies CurrencyLister
}

// NewService creates a ledger Service.
func NewService(st *store.Store, currencies CurrencyLister) *Service {
	return &Service{store: st, currencies: currencies}
}

// CreateAccount validates the currency, creates a new account, and
// persists it immediately. The name is lowercased and must be unused;
// creating over an existing name fails with ErrAccountExists rather than
// silently adopting the stored budget and currency.
func (s *Service) CreateAccount(ctx context.Context, name string, budget model.Amount, currency string) (*model.Account, error) {
	code := strings.ToUpper(currency)
	valid := s.currencies.Currencies(ctx)
	if !slices.Contains(valid, code) {
		return nil, &InvalidCurrencyError{Code: code, Valid: valid}
	}

	records := s.store.Load()
	key := strings.ToLower(name)
	if _, ok := records[key]; ok {
		return nil, fmt.Errorf("creating account %q: %w", key, ErrAccountExists)
	}

	acct := model.NewAccount(name, budget, code)
	records[key] = recordFor(acct)
	if err := s.store.Save(records); err != nil {
		return nil, fmt.Errorf("saving ledger: %w", err)
	}
	return acct, nil
}

// LoadAccount reads an existing account, rebuilding its transaction list
// from the stored records. Read-only: the ledger file is not rewritten.
func (s *Service) LoadAccount(name string) (*model.Account, error) {
	key := strings.ToLower(name)
	rec, ok := s.store.Load()[key]
	if !ok {
		return nil, fmt.Errorf("loading account %q: %w", key, ErrAccountNotFound)
	}
	return accountFor(key, rec), nil
}

// AddTransaction appends a transaction to an account and persists the
// full ledger. A zero date means today. Duplicate transactions, negative
// resulting balances, and any date are accepted uncritically.
func (s *Service) AddTransaction(name, description string, amount model.Amount, date model.Date) (model.Transaction, error) {
	if date.IsZero() {
		date = model.Today()
	}

	key := strings.ToLower(name)
	records := s.store.Load()
	rec, ok := records[key]
	if !ok {
		return model.Transaction{}, fmt.Errorf("adding transaction to %q: %w", key, ErrAccountNotFound)
	}

	tx := model.NewTransaction(description, amount, date)
	rec.Transactions = append(rec.Transactions, tx)
	records[key] = rec
	if err := s.store.Save(records); err != nil {
		return model.Transaction{}, fmt.Errorf("saving ledger: %w", err)
	}
	return tx, nil
}

// Balance returns budget minus the sum of transaction amounts.
func (s *Service) Balance(name string) (model.Amount, error) {
	acct, err := s.LoadAccount(name)
	if err != nil {
		return model.Amount{}, err
	}
	return acct.Balance(), nil
}

// ListAccounts returns the sorted names of all stored accounts.
func (s *Service) ListAccounts() []string {
	return s.store.ListAccountNames()
}

func recordFor(a *model.Account) store.Record {
	txs := a.Transactions
	if txs == nil {
		// The ledger file stores an empty array, not null.
		txs = []model.Transaction{}
	}
	return store.Record{Budget: a.Budget, Currency: a.Currency, Transactions: txs}
}

func accountFor(name string, rec store.Record) *model.Account {
	txs := make([]model.Transaction, len(rec.Transactions))
	for i, t := range rec.Transactions {
		txs[i] = model.NewTransaction(t.Description, t.Amount, t.Date)
	}
	return &model.Account{Name: name, Budget: rec.Budget, Currency: rec.Currency, Transactions: txs}
}
