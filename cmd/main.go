package cmd

import (
	"github.com/google/subcommands"
)

// Register registers all negg subcommands on the commander.
func Register(c *subcommands.Commander) {
	c.Register(&addAssetCmd{}, "assets")
	c.Register(&priceCmd{}, "assets")
	c.Register(&deleteAssetCmd{}, "assets")

	c.Register(&buyCmd{}, "transactions")
	c.Register(&sellCmd{}, "transactions")
	c.Register(&dividendCmd{}, "transactions")
	c.Register(&txCmd{}, "transactions")

	c.Register(&goalCmd{}, "goals")
	c.Register(&goalsCmd{}, "goals")
	c.Register(&deleteGoalCmd{}, "goals")

	c.Register(&summaryCmd{}, "reports")
	c.Register(&historyCmd{}, "reports")

	c.Register(&exportCmd{}, "backup")
	c.Register(&importCmd{}, "backup")

	c.Register(&topicCmd{}, "documentation")
}
