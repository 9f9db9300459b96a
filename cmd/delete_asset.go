package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// deleteAssetCmd holds the flags for the 'delete-asset' subcommand.
type deleteAssetCmd struct {
	asset string
}

func (*deleteAssetCmd) Name() string     { return "delete-asset" }
func (*deleteAssetCmd) Synopsis() string { return "delete an asset and its transactions" }
func (*deleteAssetCmd) Usage() string {
	return `negg delete-asset -a <asset>

  Deletes an asset together with all of its transactions. Goals linked to
  the asset keep their link; the missing asset simply stops contributing.
`
}

func (c *deleteAssetCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.asset, "a", "", "Asset id, ticker, or name")
}

func (c *deleteAssetCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	if err := db.DeleteAsset(asset.ID); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting asset: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted %s and its transactions\n", asset.Name)
	return subcommands.ExitSuccess
}
