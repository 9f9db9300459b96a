package renderer

import (
	"fmt"
	"strings"

	"github.com/nestegg-app/nestegg"
)

// HistoryMarkdown renders the monthly invested-capital series. The series
// approximates wealth from cumulative invested capital, so the column is
// labelled accordingly rather than as a market value.
func HistoryMarkdown(points []nestegg.WealthPoint, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Wealth History\n\n")

	if len(points) == 0 {
		fmt.Fprintln(&b, "No transactions yet.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Month | Invested |")
	fmt.Fprintln(&b, "|:---|---:|")
	for _, p := range points {
		fmt.Fprintf(&b, "| %s | %s |\n", p.Month, money(p.Invested, currency))
	}
	return b.String()
}
