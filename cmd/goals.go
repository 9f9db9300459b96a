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

// goalsCmd holds the flags for the 'goals' subcommand.
type goalsCmd struct {
	date string
}

func (*goalsCmd) Name() string     { return "goals" }
func (*goalsCmd) Synopsis() string { return "report progress towards goals" }
func (*goalsCmd) Usage() string {
	return `negg goals [-d <date>]

  Prints progress towards every goal, valued at the given date
  (default today).
`
}

func (c *goalsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.date, "d", "", "Valuation date (YYYY-MM-DD, default today)")
}

func (c *goalsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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
	report := snapshot.GoalProgress(ledger.Goals())
	printMarkdown(renderer.GoalsMarkdown(report, ReportCurrency()))
	return subcommands.ExitSuccess
}
