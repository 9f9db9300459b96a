// Package renderer turns computed portfolio records into markdown reports
// for the command-line tool. All formatting (currency, percentage rounding)
// happens here; the engine only ever hands over plain values.
package renderer

import (
	"github.com/shopspring/decimal"

	"github.com/nestegg-app/nestegg"
)

// money formats a decimal amount in the report currency.
func money(amount decimal.Decimal, currency string) string {
	return nestegg.M(amount, currency).String()
}

// signedMoney formats a decimal amount with an explicit sign, "-" for zero.
func signedMoney(amount decimal.Decimal, currency string) string {
	return nestegg.M(amount, currency).SignedString()
}
