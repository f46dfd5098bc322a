package cmd

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/etnz/garbanzo"
	"github.com/etnz/garbanzo/renderer"
	"github.com/google/subcommands"
)

// flowsCmd holds the flags for the 'flows' subcommand.
type flowsCmd struct {
	account    string
	period     string
	currency   string
	depth      int
	adjustSign bool
	since      string
	until      string
}

func (*flowsCmd) Name() string     { return "flows" }
func (*flowsCmd) Synopsis() string { return "aggregate cash flows for an account subtree" }
func (*flowsCmd) Usage() string {
	return `garbanzo flows -account <prefix> [-p <period>] [-currency <code>] [-depth <n>] [-adjust-sign] [-since <date>] [-until <date>]

  Sums the flows of every posting under the given account prefix, bucketed
  by calendar period. With -depth, flows are additionally grouped by the
  account truncated to that many segments.

Usage Examples:
# Monthly expense totals.
$ garbanzo flows -account Expenses

# Weekly income, with the credit sign flipped to read as positive.
$ garbanzo flows -account Income -p weekly -adjust-sign

# Expenses broken down by category.
$ garbanzo flows -account Expenses -depth 2
`
}

func (c *flowsCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.account, "account", "", "Account prefix to aggregate (e.g. Expenses:Food)")
	f.StringVar(&c.period, "p", "monthly", "Bucketing period: daily, weekly, monthly, quarterly or yearly")
	f.StringVar(&c.currency, "currency", "", "Currency of the flows to keep. Defaults to the ledger's operating currency.")
	f.IntVar(&c.depth, "depth", 0, "Group flows by account truncated to this many segments. 0 disables grouping.")
	f.BoolVar(&c.adjustSign, "adjust-sign", false, "Negate income and liability flows so they read as positive amounts")
	f.StringVar(&c.since, "since", "", "Only include postings on or after this date. Defaults to the ledger's default start date.")
	f.StringVar(&c.until, "until", "", "Only include postings on or before this date")
}

func (c *flowsCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
	if c.account == "" {
		fmt.Fprintln(os.Stderr, "Error: -account is required")
		return subcommands.ExitUsageError
	}
	grain, err := garbanzo.ParsePeriod(c.period)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error parsing -p: %v\n", err)
		return subcommands.ExitUsageError
	}

	ledger, err := DecodeLedger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitFailure
	}
	window, err := parseWindow(ledger, c.since, c.until)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return subcommands.ExitUsageError
	}
	ledger = ledger.Filter(window)

	prefix := garbanzo.Account(c.account)
	opts := garbanzo.FlowOptions{Currency: c.currency, AdjustSign: c.adjustSign}
	currency := c.currency
	if currency == "" {
		currency = ledger.MainCurrency()
	}

	if c.depth > 0 {
		rows, err := ledger.GroupedAccountFlows(prefix, grain, c.depth, opts)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error computing flows: %v\n", err)
			return subcommands.ExitFailure
		}
		printMarkdown(renderer.GroupedFlowsMarkdown(prefix, grain, currency, rows))
		return subcommands.ExitSuccess
	}

	series, err := ledger.AccountFlows(prefix, grain, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing flows: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.FlowsMarkdown(prefix, grain, currency, series))
	return subcommands.ExitSuccess
}
