// Package store persists the full ledger as a single JSON document
// mapping account names to their stored records.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pocketbook-dev/pocketbook/internal/model"
)

// Record is the persisted form of one account.
type Record struct {
	Budget       model.Amount        `json:"budget"`
	Currency     string              `json:"currency"`
	Transactions []model.Transaction `json:"transactions"`
}

// Store reads and writes the ledger file. The whole document is read and
// rewritten on every access; there are no partial updates and no locking.
// Concurrent external access is unsupported.
type Store struct {
	path string
}

// New creates a Store for the given ledger file path.
func New(path string) *Store {
	return &Store{path: path}
}

// Path returns the ledger file path.
func (s *Store) Path() string {
	return s.path
}

// Load reads the full ledger. A missing or unparsable file is treated as
// an empty ledger, never an error.
func (s *Store) Load() map[string]Record {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return map[string]Record{}
	}
	var records map[string]Record
	if err := json.Unmarshal(data, &records); err != nil || records == nil {
		return map[string]Record{}
	}
	return records
}

// Save overwrites the ledger file with the full record set, pretty-printed
// with 4-space indentation. The document is written to a temp file in the
// target directory and renamed into place so a crash mid-write cannot
// corrupt the previous ledger. I/O failures propagate to the caller.
func (s *Store) Save(records map[string]Record) error {
	data, err := json.MarshalIndent(records, "", "    ")
	if err != nil {
		return fmt.Errorf("marshaling ledger: %w", err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating ledger dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".ledger-*.json")
	if err != nil {
		return fmt.Errorf("creating temp ledger: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing ledger: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp ledger: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replacing ledger: %w", err)
	}
	return nil
}

// ListAccountNames returns the sorted account names in the ledger.
func (s *Store) ListAccountNames() []string {
	records := s.Load()
	names := make([]string, 0, len(records))
	for name := range records {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
