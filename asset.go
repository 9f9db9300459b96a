package nestegg

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Category classifies an asset. Debt is the distinguished liability category:
// a Debt asset is valued as a positive magnitude and subtracted from net wealth.
type Category string

const (
	Stock      Category = "STOCK"
	ETF        Category = "ETF"
	Crypto     Category = "CRYPTO"
	Cash       Category = "CASH"
	RealEstate Category = "REAL_ESTATE"
	Bond       Category = "BOND"
	Debt       Category = "DEBT"
	Other      Category = "OTHER"
)

// Categories lists all valid asset categories.
var Categories = []Category{Stock, ETF, Crypto, Cash, RealEstate, Bond, Debt, Other}

// ParseCategory parses a string into a Category.
func ParseCategory(s string) (Category, error) {
	for _, c := range Categories {
		if string(c) == s {
			return c, nil
		}
	}
	return "", fmt.Errorf("unknown asset category: %q", s)
}

// Asset is a user-owned holding: an investment, a cash account, or a debt.
type Asset struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	Ticker           string          `json:"ticker,omitempty"`
	Category         Category        `json:"type"`
	CurrentPrice     decimal.Decimal `json:"currentPrice"`
	TargetAllocation Percent         `json:"targetAllocation,omitempty"`
}

// IsLiability reports whether the asset is a liability.
func (a Asset) IsLiability() bool { return a.Category == Debt }

// Validate checks the asset record at the ingestion boundary.
func (a Asset) Validate() error {
	if a.Name == "" {
		return &ValidationError{Record: "asset", Field: "name", Reason: "is required"}
	}
	if _, err := ParseCategory(string(a.Category)); err != nil {
		return &ValidationError{Record: "asset", Field: "type", Reason: err.Error()}
	}
	if a.CurrentPrice.IsNegative() {
		return &ValidationError{Record: "asset", Field: "currentPrice", Reason: "must not be negative"}
	}
	return nil
}
