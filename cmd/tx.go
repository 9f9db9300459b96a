package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"

	"github.com/nestegg-app/nestegg/renderer"
)

// txCmd holds the flags for the 'tx' subcommand.
type txCmd struct {
	del string
}

func (*txCmd) Name() string     { return "tx" }
func (*txCmd) Synopsis() string { return "list or delete transactions" }
func (*txCmd) Usage() string {
	return `negg tx [-rm <id>]

  Without flags, prints the transaction log in date order. With -rm,
  deletes the transaction with the given id.
`
}

func (c *txCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.del, "rm", "", "Id of a transaction to delete")
}

func (c *txCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	if c.del != "" {
		if err := db.DeleteTransaction(c.del); err != nil {
			fmt.Fprintf(os.Stderr, "Error deleting transaction: %v\n", err)
			return subcommands.ExitFailure
		}
		fmt.Printf("Deleted transaction %s\n", c.del)
		return subcommands.ExitSuccess
	}

	ledger, err := db.Ledger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading ledger: %v\n", err)
		return subcommands.ExitFailure
	}

	printMarkdown(renderer.TransactionsMarkdown(ledger, ReportCurrency()))
	return subcommands.ExitSuccess
}
