package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// priceCmd holds the flags for the 'price' subcommand.
type priceCmd struct {
	asset string
	price string
}

func (*priceCmd) Name() string     { return "price" }
func (*priceCmd) Synopsis() string { return "update the current price of an asset" }
func (*priceCmd) Usage() string {
	return `negg price -a <asset> -p <price>

  Updates the current market price of an asset. The asset may be referred
  to by id, ticker, or name.
`
}

func (c *priceCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Asset id, ticker, or name")
	f.StringVar(&c.price, "p", "", "New price per unit")
}

func (c *priceCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := parseAmount("price", c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
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
	asset, ok := findAsset(assets, c.asset)
	if !ok {
		fmt.Fprintf(os.Stderr, "Error: unknown asset %q\n", c.asset)
		return subcommands.ExitFailure
	}

	if err := db.UpdatePrice(asset.ID, price); err != nil {
		fmt.Fprintf(os.Stderr, "Error updating price: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Updated %s to %s\n", asset.Name, price)
	return subcommands.ExitSuccess
}
