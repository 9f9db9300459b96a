package renderer

import (
	"fmt"
	"strings"

	"github.com/nestegg-app/nestegg"
)

// TransactionsMarkdown renders the transaction log in chronological order.
// A transaction whose asset was deleted is rendered as "unknown" rather
// than dropped: the log stays complete.
func TransactionsMarkdown(ledger *nestegg.Ledger, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Transactions\n\n")

	txs := ledger.Transactions()
	if len(txs) == 0 {
		fmt.Fprintln(&b, "No transactions yet.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Date | Kind | Asset | Qty | Price | Fees |")
	fmt.Fprintln(&b, "|:---|:---|:---|---:|---:|---:|")
	for _, tx := range txs {
		name := "unknown"
		if asset, ok := ledger.Asset(tx.AssetID); ok {
			name = asset.Name
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s |\n",
			tx.Date,
			tx.Kind,
			name,
			tx.Qty,
			money(tx.Price, currency),
			money(tx.Fees, currency),
		)
	}
	return b.String()
}
