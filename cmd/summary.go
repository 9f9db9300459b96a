package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/nestegg-app/nestegg"
	"github.com/nestegg-app/nestegg/renderer"
)

// summaryCmd holds the flags for the 'summary' subcommand.
type summaryCmd struct {
	date string
}

func (*summaryCmd) Name() string     { return "summary" }
func (*summaryCmd) Synopsis() string { return "report the portfolio valuation" }
func (*summaryCmd) Usage() string {
	return `negg summary [-d <date>]

  Prints the portfolio valued at the given date (default today): every
  holding with its value and return, net wealth, annualized return and
  the health score.
`
}

func (c *summaryCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Valuation date (YYYY-MM-DD, default today)")
}

func (c *summaryCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	day := nestegg.Today()
	if c.date != "" {
		parsed, err := nestegg.ParseDate(c.date)
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

	ledger, err := db.Ledger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	snapshot := ledger.Snapshot(day)
	printMarkdown(renderer.SummaryMarkdown(snapshot, ledger, ReportCurrency()))
	return subcommands.ExitSuccess
}
