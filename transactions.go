package nestegg

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// TxKind identifies the direction of a transaction.
type TxKind string

const (
	// TxBuy acquires units of an asset for qty*price plus fees.
	TxBuy TxKind = "BUY"
	// TxSell disposes of units of an asset. Fees paid on a sale do not
	// reduce the cost basis (see Holding).
	TxSell TxKind = "SELL"
	// TxDividend records a cash distribution as a count-times-amount pair;
	// it never affects units or cost.
	TxDividend TxKind = "DIVIDEND"
)

// ParseTxKind parses a string into a TxKind.
func ParseTxKind(s string) (TxKind, error) {
	switch TxKind(s) {
	case TxBuy, TxSell, TxDividend:
		return TxKind(s), nil
	default:
		return "", fmt.Errorf("unknown transaction kind: %q", s)
	}
}

// Transaction is a single immutable ledger entry. Quantity is always
// positive; the direction is implied by Kind. A Transaction referring to a
// deleted asset is tolerated everywhere, never fatal.
type Transaction struct {
	ID      string          `json:"id"`
	AssetID string          `json:"assetId"`
	Kind    TxKind          `json:"type"`
	Date    Date            `json:"date"`
	Qty     decimal.Decimal `json:"qty"`
	Price   decimal.Decimal `json:"price"`
	Fees    decimal.Decimal `json:"fees"`
}

// NewBuy creates a BUY transaction.
func NewBuy(day Date, assetID string, qty, price, fees decimal.Decimal) Transaction {
	return Transaction{AssetID: assetID, Kind: TxBuy, Date: day, Qty: qty, Price: price, Fees: fees}
}

// NewSell creates a SELL transaction.
func NewSell(day Date, assetID string, qty, price, fees decimal.Decimal) Transaction {
	return Transaction{AssetID: assetID, Kind: TxSell, Date: day, Qty: qty, Price: price, Fees: fees}
}

// NewDividend creates a DIVIDEND transaction of count qty times amount price.
func NewDividend(day Date, assetID string, qty, amount decimal.Decimal) Transaction {
	return Transaction{AssetID: assetID, Kind: TxDividend, Date: day, Qty: qty, Price: amount}
}

// GrossAmount returns qty*price + fees, the full cash magnitude of the
// transaction as used by the cash-flow schedule.
func (t Transaction) GrossAmount() decimal.Decimal {
	return t.Qty.Mul(t.Price).Add(t.Fees)
}

// Validate checks the transaction record at the ingestion boundary.
func (t Transaction) Validate() error {
	if t.AssetID == "" {
		return &ValidationError{Record: "transaction", Field: "assetId", Reason: "is required"}
	}
	if _, err := ParseTxKind(string(t.Kind)); err != nil {
		return &ValidationError{Record: "transaction", Field: "type", Reason: err.Error()}
	}
	if t.Date.IsZero() {
		return &ValidationError{Record: "transaction", Field: "date", Reason: "is required"}
	}
	if !t.Qty.IsPositive() {
		return &ValidationError{Record: "transaction", Field: "qty", Reason: "must be positive"}
	}
	if t.Price.IsNegative() {
		return &ValidationError{Record: "transaction", Field: "price", Reason: "must not be negative"}
	}
	if t.Fees.IsNegative() {
		return &ValidationError{Record: "transaction", Field: "fees", Reason: "must not be negative"}
	}
	return nil
}
