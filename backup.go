package nestegg

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// Backup is the JSON document produced by export and consumed by import:
// every collection plus a timestamp. Restoring a backup replaces all
// collections at once, or none at all.
type Backup struct {
	Assets       []Asset       `json:"assets"`
	Transactions []Transaction `json:"transactions"`
	Goals        []Goal        `json:"goals"`
	ExportedAt   time.Time     `json:"exportedAt"`
}

// NewBackup captures the ledger's records into a backup document stamped
// with the current time.
func NewBackup(l *Ledger) *Backup {
	return &Backup{
		Assets:       l.Assets(),
		Transactions: l.Transactions(),
		Goals:        l.Goals(),
		ExportedAt:   time.Now().UTC(),
	}
}

// Encode writes the backup as an indented JSON document.
func (b *Backup) Encode(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(b); err != nil {
		return fmt.Errorf("could not encode backup: %w", err)
	}
	return nil
}

// DecodeBackup reads a backup document and validates every record in it.
// A single invalid record rejects the whole document, so an import is
// atomic by construction.
func DecodeBackup(r io.Reader) (*Backup, error) {
	var b Backup
	if err := json.NewDecoder(r).Decode(&b); err != nil {
		return nil, fmt.Errorf("could not decode backup: %w", err)
	}
	for _, a := range b.Assets {
		if err := a.Validate(); err != nil {
			return nil, fmt.Errorf("backup rejected: %w", err)
		}
	}
	for _, tx := range b.Transactions {
		if err := tx.Validate(); err != nil {
			return nil, fmt.Errorf("backup rejected: %w", err)
		}
	}
	for _, g := range b.Goals {
		if err := g.Validate(); err != nil {
			return nil, fmt.Errorf("backup rejected: %w", err)
		}
	}
	return &b, nil
}

// Ledger materializes the backup into a fresh ledger.
func (b *Backup) Ledger() *Ledger {
	l := NewLedger()
	l.AddAssets(b.Assets...)
	l.Append(b.Transactions...)
	l.AddGoals(b.Goals...)
	return l
}
