package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

func amt(s string) model.Amount {
	return model.NewAmount(decimal.RequireFromString(s))
}

func TestLoadMissingFile(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "nonexistent.json"))
	records := st.Load()
	assert.NotNil(t, records)
	assert.Empty(t, records)
}

func TestLoadMalformedFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"garbage", "not json at all"},
		{"wrong type", `["a", "b"]`},
		{"truncated", `{"alice": {"budget": 5`},
		{"null", "null"},
		{"empty file", ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "database.json")
			require.NoError(t, os.WriteFile(path, []byte(tt.content), 0o644))

			records := New(path).Load()
			assert.NotNil(t, records)
			assert.Empty(t, records)
		})
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "database.json"))

	records := map[string]Record{
		"alice": {
			Budget:   amt("500"),
			Currency: "USD",
			Transactions: []model.Transaction{
				model.NewTransaction("coffee", amt("4.5"), model.NewDate(2024, time.January, 1)),
			},
		},
		"bob": {Budget: amt("1000"), Currency: "JPY", Transactions: []model.Transaction{}},
	}
	require.NoError(t, st.Save(records))

	got := st.Load()
	require.Len(t, got, 2)
	assert.True(t, got["alice"].Budget.Equal(decimal.RequireFromString("500")))
	assert.Equal(t, "USD", got["alice"].Currency)
	require.Len(t, got["alice"].Transactions, 1)
	assert.Equal(t, "coffee", got["alice"].Transactions[0].Description)
	assert.Equal(t, "2024-01-01", got["alice"].Transactions[0].Date.String())
	assert.Empty(t, got["bob"].Transactions)
}

func TestSaveFileFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	st := New(path)

	records := map[string]Record{
		"alice": {
			Budget:   amt("500"),
			Currency: "USD",
			Transactions: []model.Transaction{
				model.NewTransaction("coffee", amt("4.5"), model.NewDate(2024, time.January, 1)),
			},
		},
	}
	require.NoError(t, st.Save(records))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	contents := string(data)

	// Pretty-printed with 4-space indentation, amounts as bare numbers.
	assert.Contains(t, contents, "    \"alice\"")
	assert.Contains(t, contents, `"budget": 500`)
	assert.Contains(t, contents, `"amount": 4.5`)
	assert.Contains(t, contents, `"date": "2024-01-01"`)

	assert.JSONEq(t, `{
		"alice": {
			"budget": 500,
			"currency": "USD",
			"transactions": [
				{"description": "coffee", "amount": 4.5, "date": "2024-01-01"}
			]
		}
	}`, contents)
}

func TestSaveOverwritesWholeFile(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "database.json"))

	require.NoError(t, st.Save(map[string]Record{
		"alice": {Budget: amt("500"), Currency: "USD", Transactions: []model.Transaction{}},
	}))
	require.NoError(t, st.Save(map[string]Record{
		"bob": {Budget: amt("10"), Currency: "INR", Transactions: []model.Transaction{}},
	}))

	got := st.Load()
	require.Len(t, got, 1)
	_, ok := got["bob"]
	assert.True(t, ok)
}

func TestSaveLeavesNoTempFiles(t *testing.T) {
	dir := t.TempDir()
	st := New(filepath.Join(dir, "database.json"))
	require.NoError(t, st.Save(map[string]Record{}))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, "database.json", entries[0].Name())
}

func TestSaveCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "database.json")
	require.NoError(t, New(path).Save(map[string]Record{}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{}`, string(data))
}

func TestListAccountNamesSorted(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "database.json"))
	require.NoError(t, st.Save(map[string]Record{
		"zoe":   {Budget: amt("1"), Currency: "USD", Transactions: []model.Transaction{}},
		"alice": {Budget: amt("2"), Currency: "USD", Transactions: []model.Transaction{}},
		"bob":   {Budget: amt("3"), Currency: "USD", Transactions: []model.Transaction{}},
	}))

	assert.Equal(t, []string{"alice", "bob", "zoe"}, st.ListAccountNames())
}

func TestListAccountNamesEmptyStore(t *testing.T) {
	st := New(filepath.Join(t.TempDir(), "database.json"))
	assert.Empty(t, st.ListAccountNames())
}

func TestEmptyTransactionsSerializeAsArray(t *testing.T) {
	path := filepath.Join(t.TempDir(), "database.json")
	st := New(path)
	require.NoError(t, st.Save(map[string]Record{
		"alice": {Budget: amt("500"), Currency: "USD", Transactions: []model.Transaction{}},
	}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"transactions": []`)
	assert.False(t, strings.Contains(string(data), "null"))

	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
}
