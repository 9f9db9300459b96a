package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/nestegg-app/nestegg"
)

// addAssetCmd holds the flags for the 'add-asset' subcommand.
type addAssetCmd struct {
	name     string
	ticker   string
	category string
	price    string
	target   float64
}

func (*addAssetCmd) Name() string     { return "add-asset" }
func (*addAssetCmd) Synopsis() string { return "create a new asset" }
func (*addAssetCmd) Usage() string {
	return `negg add-asset -n <name> -c <category> [-t <ticker>] [-p <price>] [-alloc <pct>]

  Creates an asset. Categories: STOCK, ETF, CRYPTO, CASH, REAL_ESTATE,
  BOND, DEBT, OTHER. DEBT assets are liabilities: valued like any other
  asset, but subtracted from net wealth.
`
}

func (c *addAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Asset name")
	f.StringVar(&c.ticker, "t", "", "Optional ticker symbol")
	f.StringVar(&c.category, "c", string(nestegg.Stock), "Asset category")
	f.StringVar(&c.price, "p", "0", "Current price per unit")
	f.Float64Var(&c.target, "alloc", 0, "Target allocation percentage")
}

func (c *addAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	price, err := parseAmount("price", c.price)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return subcommands.ExitUsageError
	}

	category, err := nestegg.ParseCategory(c.category)
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

	asset := nestegg.Asset{
		Name:             c.name,
		Ticker:           c.ticker,
		Category:         category,
		CurrentPrice:     price,
		TargetAllocation: nestegg.Percent(c.target),
	}
	if err := db.SaveAsset(&asset); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving asset: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created asset %s (%s)\n", asset.Name, asset.ID)
	return subcommands.ExitSuccess
}
