package renderer

import (
	"fmt"
	"strings"

	"github.com/nestegg-app/nestegg"
)

// SummaryMarkdown renders the full portfolio standing: one row per asset,
// net figures, the health score, and the annualized return.
func SummaryMarkdown(s *nestegg.Snapshot, ledger *nestegg.Ledger, currency string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Portfolio Summary on %s\n\n", s.Date)

	if len(s.Lines) == 0 {
		fmt.Fprintln(&b, "No assets yet. Add one with `negg add-asset`.")
		return b.String()
	}

	fmt.Fprintln(&b, "| Asset | Category | Units | Cost | Value | Return | Return % | Income |")
	fmt.Fprintln(&b, "|:---|:---|---:|---:|---:|---:|---:|---:|")
	for _, line := range s.Lines {
		name := line.Name
		if line.Liability {
			name += " (liability)"
		}
		fmt.Fprintf(&b, "| %s | %s | %s | %s | %s | %s | %s | %s |\n",
			name,
			line.Category,
			line.Units,
			money(line.Cost, currency),
			money(line.Value, currency),
			signedMoney(line.AbsoluteReturn, currency),
			line.ReturnPct.SignedString(),
			money(line.Income, currency),
		)
	}
	fmt.Fprintln(&b)

	fmt.Fprintf(&b, "* Total assets: %s\n", money(s.TotalAssets(), currency))
	fmt.Fprintf(&b, "* Total liabilities: %s\n", money(s.TotalLiabilities(), currency))
	fmt.Fprintf(&b, "* Net wealth: **%s**\n", money(s.NetWealth(), currency))
	fmt.Fprintf(&b, "* Income received: %s\n", money(s.TotalIncome(), currency))

	rate, ok := ledger.XIRR(s.Date, s.NetWealth())
	if ok {
		fmt.Fprintf(&b, "* Annualized return (XIRR): %s\n", rate.SignedString())
	} else {
		fmt.Fprintln(&b, "* Annualized return (XIRR): n/a")
	}
	fmt.Fprintf(&b, "* Health score: %.0f/100\n", s.HealthScore())

	return b.String()
}
