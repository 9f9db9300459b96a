package renderer

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/nestegg-app/nestegg"
)

func d(value string) decimal.Decimal {
	return decimal.RequireFromString(value)
}

func testLedger() *nestegg.Ledger {
	ledger := nestegg.NewLedger()
	ledger.AddAssets(
		nestegg.Asset{ID: "1", Name: "ACME", Category: nestegg.Stock, CurrentPrice: d("150")},
		nestegg.Asset{ID: "2", Name: "Mortgage", Category: nestegg.Debt, CurrentPrice: d("1")},
	)
	ledger.Append(
		nestegg.NewBuy(nestegg.MustParseDate("2023-01-01"), "1", d("10"), d("100"), d("5")),
		nestegg.NewBuy(nestegg.MustParseDate("2023-01-01"), "2", d("500"), d("1"), d("0")),
	)
	return ledger
}

func TestSummaryMarkdown(t *testing.T) {
	ledger := testLedger()
	s := ledger.Snapshot(nestegg.MustParseDate("2023-12-31"))

	md := SummaryMarkdown(s, ledger, "USD")

	for _, want := range []string{
		"# Portfolio Summary on 2023-12-31",
		"| ACME |",
		"Mortgage (liability)",
		"$1,500.00",       // ACME value
		"Net wealth: **$1,000.00**",
		"Health score:",
		"Annualized return (XIRR):",
	} {
		if !strings.Contains(md, want) {
			t.Errorf("SummaryMarkdown missing %q in:\n%s", want, md)
		}
	}
}

func TestSummaryMarkdown_Empty(t *testing.T) {
	ledger := nestegg.NewLedger()
	md := SummaryMarkdown(ledger.Snapshot(nestegg.Today()), ledger, "USD")
	if !strings.Contains(md, "No assets yet") {
		t.Errorf("empty summary = %q", md)
	}
}

func TestGoalsMarkdown(t *testing.T) {
	ledger := testLedger()
	ledger.AddGoals(nestegg.Goal{ID: "g", Name: "FI", TargetAmount: d("2000")})
	s := ledger.Snapshot(nestegg.Today())

	md := GoalsMarkdown(s.GoalProgress(ledger.Goals()), "USD")

	if !strings.Contains(md, "| FI |") {
		t.Errorf("GoalsMarkdown missing goal row:\n%s", md)
	}
	// Net wealth 1000 against target 2000.
	if !strings.Contains(md, "50.00%") {
		t.Errorf("GoalsMarkdown missing progress percentage:\n%s", md)
	}
}

func TestGoalsMarkdown_NegativeProgress(t *testing.T) {
	// An unlinked goal tracks net wealth, which goes negative when debt
	// outweighs assets. The report must render, not panic.
	ledger := nestegg.NewLedger()
	ledger.AddAssets(
		nestegg.Asset{ID: "1", Name: "Savings", Category: nestegg.Cash, CurrentPrice: d("1")},
		nestegg.Asset{ID: "2", Name: "Loan", Category: nestegg.Debt, CurrentPrice: d("1")},
	)
	ledger.Append(
		nestegg.NewBuy(nestegg.MustParseDate("2023-01-01"), "1", d("100"), d("1"), d("0")),
		nestegg.NewBuy(nestegg.MustParseDate("2023-01-01"), "2", d("500"), d("1"), d("0")),
	)
	ledger.AddGoals(nestegg.Goal{ID: "g", Name: "FI", TargetAmount: d("2000")})

	s := ledger.Snapshot(nestegg.Today())
	md := GoalsMarkdown(s.GoalProgress(ledger.Goals()), "USD")

	// Net wealth -400 against target 2000.
	if !strings.Contains(md, "-20.00%") {
		t.Errorf("GoalsMarkdown missing negative progress:\n%s", md)
	}
	if !strings.Contains(md, strings.Repeat("░", 10)) {
		t.Errorf("GoalsMarkdown must render an empty bar for negative progress:\n%s", md)
	}
}

func TestTransactionsMarkdown_DanglingAssetRenderedAsUnknown(t *testing.T) {
	ledger := nestegg.NewLedger()
	ledger.Append(nestegg.NewBuy(nestegg.MustParseDate("2023-01-01"), "gone", d("1"), d("10"), d("0")))

	md := TransactionsMarkdown(ledger, "USD")
	if !strings.Contains(md, "| unknown |") {
		t.Errorf("TransactionsMarkdown must render dangling references as unknown:\n%s", md)
	}
}

func TestHistoryMarkdown(t *testing.T) {
	ledger := testLedger()
	md := HistoryMarkdown(ledger.WealthHistory(), "USD")
	if !strings.Contains(md, "| 2023-01 |") {
		t.Errorf("HistoryMarkdown missing month row:\n%s", md)
	}
}

func TestProgressBar(t *testing.T) {
	testCases := []struct {
		progress nestegg.Percent
		filled   int
	}{
		{-120, 0},
		{-5, 0},
		{0, 0},
		{49, 4},
		{50, 5},
		{100, 10},
	}
	for _, tc := range testCases {
		bar := progressBar(tc.progress)
		if got := strings.Count(bar, "█"); got != tc.filled {
			t.Errorf("progressBar(%v) has %d filled steps, want %d", tc.progress, got, tc.filled)
		}
	}
}
