package cmd

import (
	"context"
	"flag"

	"github.com/google/subcommands"

	"github.com/nestegg-app/nestegg"
)

// sellCmd holds the flags for the 'sell' subcommand.
type sellCmd struct {
	asset string
	date  string
	qty   string
	price string
	fees  string
}

func (*sellCmd) Name() string     { return "sell" }
func (*sellCmd) Synopsis() string { return "record a sale" }
func (*sellCmd) Usage() string {
	return `negg sell -a <asset> -q <qty> -p <price> [-f <fees>] [-d <date>]

  Records a sale of qty units at the given price per unit. The cost basis
  is reduced at the average cost per unit. Selling more units than held is
  allowed and leaves a short position.
`
}

func (c *sellCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Asset id, ticker, or name")
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD, default today)")
	f.StringVar(&c.qty, "q", "", "Number of units")
	f.StringVar(&c.price, "p", "", "Price per unit")
	f.StringVar(&c.fees, "f", "0", "Transaction fees")
}

func (c *sellCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	return recordTransaction(c.asset, c.date, func(day nestegg.Date, assetID string) (nestegg.Transaction, error) {
		qty, err := parseAmount("quantity", c.qty)
		if err != nil {
			return nestegg.Transaction{}, err
		}
		price, err := parseAmount("price", c.price)
		if err != nil {
			return nestegg.Transaction{}, err
		}
		fees, err := parseAmount("fees", c.fees)
		if err != nil {
			return nestegg.Transaction{}, err
		}
		return nestegg.NewSell(day, assetID, qty, price, fees), nil
	})
}
