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

// cashflowCmd holds the flags for the 'cashflow' subcommand.
type cashflowCmd struct {
	period   string
	currency string
	since    string
	until    string
}

func (*cashflowCmd) Name() string     { return "cashflow" }
func (*cashflowCmd) Synopsis() string { return "display income, expenses and savings per period" }
func (*cashflowCmd) Usage() string {
	return `garbanzo cashflow [-p <period>] [-currency <code>] [-since <date>] [-until <date>]

  Displays a period-by-period report of income, disposable income
  (income after the configured deductions), expenses and savings.

Usage Examples:
# Monthly cash-flow report.
$ garbanzo cashflow

# Yearly report in euros.
$ garbanzo cashflow -p yearly -currency EUR
`
}

func (c *cashflowCmd) SetFlags(f *flag.FlagSet) {
	f.StringVar(&c.period, "p", "monthly", "Bucketing period: daily, weekly, monthly, quarterly or yearly")
	f.StringVar(&c.currency, "currency", "", "Currency of the flows to keep. Defaults to the ledger's operating currency.")
	f.StringVar(&c.since, "since", "", "Only include postings on or after this date. Defaults to the ledger's default start date.")
	f.StringVar(&c.until, "until", "", "Only include postings on or before this date")
}

func (c *cashflowCmd) Execute(_ context.Context, f *flag.FlagSet, _ ...interface{}) subcommands.ExitStatus {
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

	report, err := ledger.IncomeExpense(grain, c.currency)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error computing cash flow: %v\n", err)
		return subcommands.ExitFailure
	}
	printMarkdown(renderer.IncomeExpenseMarkdown(report))
	return subcommands.ExitSuccess
}
