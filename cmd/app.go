package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"

	"github.com/nestegg-app/nestegg"
	"github.com/nestegg-app/nestegg/store"
)

const (
	envDB       = "NESTEGG_DB"
	envCurrency = "NESTEGG_CURRENCY"
)

// loadEnv loads a .env file when present. A missing file is fine: plain
// environment variables still apply.
func loadEnv() {
	_ = godotenv.Load()
}

// OpenStore opens the sqlite database configured by NESTEGG_DB
// (default nestegg.db in the working directory).
func OpenStore() (*store.Store, error) {
	loadEnv()
	path := os.Getenv(envDB)
	if path == "" {
		path = "nestegg.db"
	}
	return store.Open(path)
}

// ReportCurrency returns the display currency configured by
// NESTEGG_CURRENCY (default USD). The ledger itself is single-currency;
// this only affects formatting.
func ReportCurrency() string {
	if cur := os.Getenv(envCurrency); cur != "" {
		return cur
	}
	return "USD"
}

// findAsset resolves a user-supplied asset reference against id, ticker,
// or name, in that order.
func findAsset(assets []nestegg.Asset, ref string) (nestegg.Asset, bool) {
	for _, a := range assets {
		if a.ID == ref {
			return a, true
		}
	}
	for _, a := range assets {
		if a.Ticker != "" && strings.EqualFold(a.Ticker, ref) {
			return a, true
		}
	}
	for _, a := range assets {
		if strings.EqualFold(a.Name, ref) {
			return a, true
		}
	}
	return nestegg.Asset{}, false
}

// parseAmount parses a decimal flag value.
func parseAmount(name, value string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("invalid %s %q: %w", name, value, err)
	}
	return amount, nil
}
