package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/google/subcommands"
)

// deleteGoalCmd holds the flags for the 'delete-goal' subcommand.
type deleteGoalCmd struct {
	id string
}

func (*deleteGoalCmd) Name() string     { return "delete-goal" }
func (*deleteGoalCmd) Synopsis() string { return "delete a goal" }
func (*deleteGoalCmd) Usage() string {
	return `negg delete-goal -id <goal>

  Deletes a goal. Assets and transactions are untouched.
`
}

func (c *deleteGoalCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.id, "id", "", "Goal id or name")
}

func (c *deleteGoalCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	db, err := OpenStore()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening store: %v\n", err)
		return subcommands.ExitFailure
	}
	defer db.Close()

	goals, err := db.Goals()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading goals: %v\n", err)
		return subcommands.ExitFailure
	}
	id := c.id
	for _, g := range goals {
		if g.Name == c.id {
			id = g.ID
			break
		}
	}

	if err := db.DeleteGoal(id); err != nil {
		fmt.Fprintf(os.Stderr, "Error deleting goal: %v\n", err)
		return subcommands.ExitFailure
	}

	fmt.Printf("Deleted goal %s\n", c.id)
	return subcommands.ExitSuccess
}
