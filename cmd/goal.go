package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/google/subcommands"

	"github.com/nestegg-app/nestegg"
)

// goalCmd holds the flags for the 'goal' subcommand.
type goalCmd struct {
	name   string
	target string
	linked string
}

func (*goalCmd) Name() string     { return "goal" }
func (*goalCmd) Synopsis() string { return "create a savings goal" }
func (*goalCmd) Usage() string {
	return `negg goal -n <name> -t <target> [-a <asset,asset,...>]

  Creates a savings goal with a target amount. When -a lists assets, the
  goal tracks the combined value of those assets; otherwise it tracks
  total net wealth.
`
}

func (c *goalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.name, "n", "", "Goal name")
	f.StringVar(&c.target, "t", "", "Target amount")
	f.StringVar(&c.linked, "a", "", "Comma-separated asset references to track")
}

func (c *goalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	target, err := parseAmount("target", c.target)
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

	var linked []string
	if c.linked != "" {
		assets, err := db.Assets()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error loading assets: %v\n", err)
			return subcommands.ExitFailure
		}
		for _, ref := range strings.Split(c.linked, ",") {
			ref = strings.TrimSpace(ref)
			asset, ok := findAsset(assets, ref)
			if !ok {
				fmt.Fprintf(os.Stderr, "Error: unknown asset %q\n", ref)
				return subcommands.ExitFailure
			}
			linked = append(linked, asset.ID)
		}
	}

	goal := nestegg.Goal{
		Name:         c.name,
		TargetAmount: target,
		LinkedAssets: linked,
	}
	if err := db.SaveGoal(&goal); err != nil {
		fmt.Fprintf(os.Stderr, "Error saving goal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Created goal %s (%s)\n", goal.Name, goal.ID)
	return subcommands.ExitSuccess
}
