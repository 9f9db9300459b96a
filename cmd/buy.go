package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/nestegg-app/nestegg"
)

// buyCmd holds the flags for the 'buy' subcommand.
type buyCmd struct {
	asset string
	date  string
	qty   string
	price string
	fees  string
}

func (*buyCmd) Name() string     { return "buy" }
func (*buyCmd) Synopsis() string { return "record a purchase" }
func (*buyCmd) Usage() string {
	return `negg buy -a <asset> -q <qty> -p <price> [-f <fees>] [-d <date>]

  Records a purchase of qty units at the given price per unit. Fees are
  added to the cost basis. The date defaults to today.
`
}

func (c *buyCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Asset id, ticker, or name")
	f.StringVar(&c.date, "d", "", "Transaction date (YYYY-MM-DD, default today)")
	f.StringVar(&c.qty, "q", "", "Number of units")
	f.StringVar(&c.price, "p", "", "Price per unit")
	f.StringVar(&c.fees, "f", "0", "Transaction fees")
}

func (c *buyCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
		return nestegg.NewBuy(day, assetID, qty, price, fees), nil
	})
}

// recordTransaction resolves the asset reference, builds the transaction
// and persists it. Shared by buy, sell and dividend.
func recordTransaction(assetRef, date string, build func(nestegg.Date, string) (nestegg.Transaction, error)) subcommands.ExitStatus {
	day := nestegg.Today()
	if date != "" {
		parsed, err := nestegg.ParseDate(date)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return subcommands.ExitUsageError
		}
		day = parsed
	}

	db, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	assets, err := db.Assets()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
		return subcommands.ExitFailure
	}
	asset, ok := findAsset(assets, assetRef)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown asset %q\n", assetRef)
		return subcommands.ExitFailure
	}

	tx, err := build(day, asset.ID)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}
	if err := db.SaveTransaction(&tx); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving transaction: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Recorded %s of %s %s on %s\n", tx.Kind, tx.Qty, asset.Name, tx.Date)
	return subcommands.ExitSuccess
}
