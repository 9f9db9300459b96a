package nestegg

import (
	"bytes"
	"strings"
	"testing"
)

func TestBackup_RoundTrip(t *testing.T) {
	ledger := NewLedger()
	ledger.AddAssets(
		Asset{ID: "1", Name: "ACME", Ticker: "ACM", Category: Stock, CurrentPrice: d("150")},
		Asset{ID: "2", Name: "Mortgage", Category: Debt, CurrentPrice: d("1")},
	)
	ledger.Append(
		NewBuy(MustParseDate("2023-01-01"), "1", d("10"), d("100"), d("5")),
		NewDividend(MustParseDate("2023-06-01"), "1", d("10"), d("1.5")),
	)
	ledger.AddGoals(Goal{ID: "g", Name: "FI", TargetAmount: d("100000")})

	var buf bytes.Buffer
	if err := NewBackup(ledger).Encode(&buf); err != nil {
		t.Fatalf("Encode() error = %v", err)
	}

	restored, err := DecodeBackup(&buf)
	if err != nil {
		t.Fatalf("DecodeBackup() error = %v", err)
	}

	got := restored.Ledger()
	if len(got.Assets()) != 2 || len(got.Transactions()) != 2 || len(got.Goals()) != 1 {
		t.Fatalf("restored ledger has %d assets, %d transactions, %d goals",
			len(got.Assets()), len(got.Transactions()), len(got.Goals()))
	}

	// The engine must produce identical figures after a round trip.
	before := ledger.Snapshot(MustParseDate("2023-12-31"))
	after := got.Snapshot(MustParseDate("2023-12-31"))
	if !before.NetWealth().Equal(after.NetWealth()) {
		t.Errorf("NetWealth after round trip = %s, want %s", after.NetWealth(), before.NetWealth())
	}
	if !before.TotalIncome().Equal(after.TotalIncome()) {
		t.Errorf("TotalIncome after round trip = %s, want %s", after.TotalIncome(), before.TotalIncome())
	}
}

func TestDecodeBackup_RejectsInvalidRecords(t *testing.T) {
	testCases := []struct {
		name string
		doc  string
	}{
		{
			name: "non-numeric quantity",
			doc:  `{"assets":[],"transactions":[{"id":"t","assetId":"1","type":"BUY","date":"2023-01-01","qty":"abc","price":100,"fees":0}],"goals":[]}`,
		},
		{
			name: "unknown category",
			doc:  `{"assets":[{"id":"1","name":"A","type":"POKEMON","currentPrice":1}],"transactions":[],"goals":[]}`,
		},
		{
			name: "zero goal target",
			doc:  `{"assets":[],"transactions":[],"goals":[{"id":"g","name":"FI","targetAmount":0}]}`,
		},
		{
			name: "negative fees",
			doc:  `{"assets":[],"transactions":[{"id":"t","assetId":"1","type":"BUY","date":"2023-01-01","qty":1,"price":100,"fees":-2}],"goals":[]}`,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := DecodeBackup(strings.NewReader(tc.doc)); err == nil {
				t.Error("DecodeBackup() accepted an invalid document, want error")
			}
		})
	}
}

func TestDecodeBackup_ToleratesDanglingReferences(t *testing.T) {
	// A transaction pointing to a deleted asset is a valid record; it is
	// ignored at valuation time, not at import time.
	doc := `{"assets":[],"transactions":[{"id":"t","assetId":"gone","type":"SELL","date":"2023-01-01","qty":1,"price":100,"fees":0}],"goals":[]}`
	b, err := DecodeBackup(strings.NewReader(doc))
	if err != nil {
		t.Fatalf("DecodeBackup() error = %v", err)
	}
	if s := b.Ledger().Snapshot(Today()); len(s.Lines) != 0 {
		t.Errorf("Snapshot has %d lines, want 0", len(s.Lines))
	}
}
