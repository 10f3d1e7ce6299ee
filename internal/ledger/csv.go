package ledger

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// Header is the CSV header for transaction exports.
const Header = "date,description,amount"

const (
	numFields = 3
	colDate   = 0
	colDesc   = 1
	colAmount = 2
)

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(tx model.Transaction) []string {
	row := make([]string, numFields)
	row[colDate] = tx.Date.String()
	row[colDesc] = tx.Description
	row[colAmount] = tx.Amount.String()
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := model.ParseDate(record[colDate])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := model.ParseAmount(record[colAmount])
	if err != nil {
		return model.Transaction{}, err
	}

	return model.NewTransaction(record[colDesc], amount, date), nil
}

// WriteTransactions writes transactions as CSV, including the header.
func WriteTransactions(w io.Writer, txs []model.Transaction) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}
	for i, tx := range txs {
		if err := cw.Write(MarshalTransaction(tx)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// ReadTransactions reads a transaction CSV produced by WriteTransactions.
func ReadTransactions(r io.Reader) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txs []model.Transaction
	for i, rec := range records[1:] {
		tx, err := UnmarshalTransaction(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// ExportTransactions writes an account's transactions as CSV.
func (s *Service) ExportTransactions(name string, w io.Writer) error {
	acct, err := s.LoadAccount(name)
	if err != nil {
		return err
	}
	return WriteTransactions(w, acct.Transactions)
}

// ImportTransactions appends all transactions from a CSV to an account
// and persists once. Returns the number of transactions imported.
func (s *Service) ImportTransactions(name string, r io.Reader) (int, error) {
	txs, err := ReadTransactions(r)
	if err != nil {
		return 0, err
	}

	key := strings.ToLower(name)
	records := s.store.Load()
	rec, ok := records[key]
	if !ok {
		return 0, fmt.Errorf("importing into %q: %w", key, ErrAccountNotFound)
	}

	rec.Transactions = append(rec.Transactions, txs...)
	records[key] = rec
	if err := s.store.Save(records); err != nil {
		return 0, fmt.Errorf("saving ledger: %w", err)
	}
	return len(txs), nil
}
