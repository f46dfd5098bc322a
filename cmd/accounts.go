package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/garbanzo/renderer"
	"github.com/google/subcommands"
)

type accountsCmd struct{}

func (*accountsCmd) Name() string     { return "accounts" }
func (*accountsCmd) Synopsis() string { return "display the ledger's root account names" }
func (*accountsCmd) Usage() string {
	return `garbanzo accounts

  Displays the display name and chart color assigned to each root
  account type (assets, liabilities, income, expenses, equity).
`
}

func (c *accountsCmd) SetFlags(f *flag.FlagSet) {}

func (c *accountsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.AccountTypesMarkdown(ledger.AccountNames(), ledger.AccountTypeColors()))
	return subcommands.ExitSuccess
}
