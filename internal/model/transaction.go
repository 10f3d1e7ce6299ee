package model

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Transaction is a single dated amount recorded against one account.
// Immutable after creation; serializes to exactly these three fields.
type Transaction struct {
	Description string `json:"description"`
	Amount      Amount `json:"amount"`
	Date        Date   `json:"date"`
}

// NewTransaction builds a Transaction. The description is normalized to
// lowercase on creation.
func NewTransaction(description string, amount Amount, date Date) Transaction {
	return Transaction{
		Description: strings.ToLower(description),
		Amount:      amount,
		Date:        date,
	}
}

func (t Transaction) String() string {
	return fmt.Sprintf("%s: %s on %s", Capitalize(t.Description), t.Amount, t.Date)
}

// Capitalize uppercases the first rune, the display form for lowercased
// names and descriptions.
func Capitalize(s string) string {
	if s == "" {
		return s
	}
	r, size := utf8.DecodeRuneInString(s)
	return string(unicode.ToUpper(r)) + s[size:]
}
