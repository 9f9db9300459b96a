package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/nestegg-app/nestegg"
)

// dividendCmd holds the flags for the 'dividend' subcommand.
type dividendCmd struct {
	asset string
	date  string
	qty   string
	price string
}

func (*dividendCmd) Name() string     { return "dividend" }
func (*dividendCmd) Synopsis() string { return "record a dividend payment" }
func (*dividendCmd) Usage() string {
	return `negg dividend -a <asset> -q <qty> -p <amount> [-d <date>]

  Records a dividend of qty times the per-unit amount. Dividends accrue
  as income and never change units or cost basis.
`
}

func (c *dividendCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Asset id, ticker, or name")
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD, default today)")
	f.StringVar(&c.qty, "q", "1", "Number of units paid on")
	f.StringVar(&c.price, "p", "", "Dividend amount per unit")
}

func (c *dividendCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(c.asset, c.date, func(day nestegg.Date, assetID string) (nestegg.Transaction, error) {
		qty, err := parseAmount("quantity", c.qty)
		if err != nil {
			return nestegg.Transaction{}, err
		}
		amount, err := parseAmount("amount", c.price)
		if err != nil {
			return nestegg.Transaction{}, err
		}
		return nestegg.NewDividend(day, assetID, qty, amount), nil
	})
}
