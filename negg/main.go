package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/google/subcommands"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"

	"github.com/nestegg-app/nestegg/cmd"
)

func main() {
	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "help")
	commander.Register(commander.FlagsCommand(), "help")
	commander.Register(commander.CommandsCommand(), "help")
	cmd.Register(commander)

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion for the negg subcommands. It is a
// no-op outside of a shell completion request.
func completion() {
	asset := map[string]complete.Predictor{"a": predict.Something}
	tx := map[string]complete.Predictor{
		"a": predict.Something,
		"d": predict.Something,
		"q": predict.Something,
		"p": predict.Something,
		"f": predict.Something,
	}
	date := map[string]complete.Predictor{"d": predict.Something}

	root := &complete.Command{
		Sub: map[string]*complete.Command{
			"add-asset": {Flags: map[string]complete.Predictor{
				"n":     predict.Something,
				"t":     predict.Something,
				"c":     predict.Set{"STOCK", "ETF", "CRYPTO", "CASH", "REAL_ESTATE", "BOND", "DEBT", "OTHER"},
				"p":     predict.Something,
				"alloc": predict.Something,
			}},
			"price":        {Flags: map[string]complete.Predictor{"a": predict.Something, "p": predict.Something}},
			"delete-asset": {Flags: asset},
			"buy":          {Flags: tx},
			"sell":         {Flags: tx},
			"dividend":     {Flags: tx},
			"tx":           {Flags: map[string]complete.Predictor{"rm": predict.Something}},
			"goal": {Flags: map[string]complete.Predictor{
				"n": predict.Something,
				"t": predict.Something,
				"a": predict.Something,
			}},
			"goals":       {Flags: date},
			"delete-goal": {Flags: map[string]complete.Predictor{"id": predict.Something}},
			"summary":     {Flags: date},
			"history":     {},
			"export":      {Flags: map[string]complete.Predictor{"o": predict.Files("*.json")}},
			"import":      {Flags: map[string]complete.Predictor{"i": predict.Files("*.json")}},
			"topic":       {Args: predict.Set{"readme", "model", "reports"}},
		},
	}
	root.Complete("negg")
}
