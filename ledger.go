package nestegg

import (
	"slices"
)

// Ledger holds the full set of user records: assets, transactions, and
// goals, already materialized in memory. Transactions are always kept in
// chronological order; entries on the same day keep their input order.
//
// A Ledger never writes anywhere. Every derived figure (holdings,
// snapshots, rates, scores) is recomputed from scratch on each call, so a
// ledger may be shared between concurrent readers.
type Ledger struct {
	assets       []Asset
	transactions []Transaction
	goals        []Goal
}

// NewLedger creates an empty ledger.
func NewLedger() *Ledger {
	return &Ledger{}
}

// AddAssets adds asset records to the ledger.
func (l *Ledger) AddAssets(assets ...Asset) {
	l.assets = append(l.assets, assets...)
}

// Append appends transactions to this ledger and maintains the
// chronological order of transactions.
func (l *Ledger) Append(txs ...Transaction) {
	l.transactions = append(l.transactions, txs...)
	l.stableSort()
}

// AddGoals adds goal records to the ledger.
func (l *Ledger) AddGoals(goals ...Goal) {
	l.goals = append(l.goals, goals...)
}

// stableSort orders transactions by date ascending. The sort must be stable:
// the tie-break policy for same-day transactions is their input order.
func (l *Ledger) stableSort() {
	slices.SortStableFunc(l.transactions, func(a, b Transaction) int {
		switch {
		case a.Date.Before(b.Date):
			return -1
		case a.Date.After(b.Date):
			return 1
		default:
			return 0
		}
	})
}

// Assets returns all asset records.
func (l *Ledger) Assets() []Asset { return l.assets }

// Asset returns the asset with the given id.
func (l *Ledger) Asset(id string) (Asset, bool) {
	for _, a := range l.assets {
		if a.ID == id {
			return a, true
		}
	}
	return Asset{}, false
}

// Transactions returns all transactions in chronological order.
func (l *Ledger) Transactions() []Transaction { return l.transactions }

// AssetTransactions returns the transactions of one asset in chronological
// order.
func (l *Ledger) AssetTransactions(assetID string) []Transaction {
	var txs []Transaction
	for _, tx := range l.transactions {
		if tx.AssetID == assetID {
			txs = append(txs, tx)
		}
	}
	return txs
}

// Goals returns all goal records.
func (l *Ledger) Goals() []Goal { return l.goals }
