package main

import (
	"context"
	"flag"
	"os"
	"path"

	"github.com/etnz/garbanzo/cmd"
	"github.com/google/subcommands"
	"github.com/joho/godotenv"
	"github.com/posener/complete/v2"
	"github.com/posener/complete/v2/predict"
)

func main() {
	// Load .env for local setups; GARBANZO_LEDGER sets the default ledger file.
	_ = godotenv.Load()

	completion()

	commander := subcommands.NewCommander(flag.CommandLine, path.Base(os.Args[0]))
	commander.Register(commander.HelpCommand(), "")
	commander.Register(commander.FlagsCommand(), "")
	commander.Register(commander.CommandsCommand(), "")

	for _, c := range cmd.Commands {
		commander.Register(c, "")
	}

	flag.Parse()
	os.Exit(int(commander.Execute(context.Background())))
}

// completion installs shell completion and handles completion requests,
// exiting early when invoked by the shell.
func completion() {
	sub := make(map[string]*complete.Command, len(cmd.Commands))
	for _, c := range cmd.Commands {
		sub[c.Name()] = &complete.Command{}
	}
	app := &complete.Command{
		Sub: sub,
		Flags: map[string]complete.Predictor{
			"ledger": predict.Files("*.jsonl"),
		},
	}
	app.Complete("garbanzo")
}
