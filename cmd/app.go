// Package cmd implements the CLI application to report on a cash-flow ledger.
package cmd

import (
	"flag"
	"fmt"
	"os"

	"github.com/etnz/garbanzo"
	"github.com/google/subcommands"
)

// Commands lists every subcommand of the application. A main package
// registers them all and executes the user-selected one.
var Commands = []subcommands.Command{
	&flowsCmd{},
	&cashflowCmd{},
	&accountsCmd{},
	&topicCmd{},
}

// as a CLI application, it has a very short lived lifecycle, so it is ok to use global variables.

var ledgerFile = flag.String("ledger", "", "Path to the ledger file (JSONL format). Defaults to $GARBANZO_LEDGER, then ledger.jsonl.")

// resolveLedgerFile picks the ledger path at command-execution time, so
// that a GARBANZO_LEDGER loaded from .env by main is honored. Resolving
// in the flag default would read the environment before godotenv runs.
func resolveLedgerFile() string {
	if *ledgerFile != "" {
		return *ledgerFile
	}
	if v := os.Getenv("GARBANZO_LEDGER"); v != "" {
		return v
	}
	return "ledger.jsonl"
}

// DecodeLedger is the central function to load the app ledger file.
func DecodeLedger() (*garbanzo.Ledger, error) {
	filename := resolveLedgerFile()
	f, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("opening ledger file %q: %w", filename, err)
	}
	defer f.Close()

	src, err := garbanzo.DecodeSource(f)
	if err != nil {
		return nil, fmt.Errorf("reading ledger file %q: %w", filename, err)
	}
	return garbanzo.NewLedger(src)
}

// parseWindow turns the -since and -until flags into a date filter. An
// empty -since falls back to the ledger's default start date option.
func parseWindow(ledger *garbanzo.Ledger, since, until string) (garbanzo.Filter, error) {
	var f garbanzo.Filter
	if since == "" {
		f.Since = ledger.Config().DefaultStartDate
	} else {
		d, err := garbanzo.ParseDate(since)
		if err != nil {
			return f, fmt.Errorf("parsing -since: %w", err)
		}
		f.Since = d
	}
	if until != "" {
		d, err := garbanzo.ParseDate(until)
		if err != nil {
			return f, fmt.Errorf("parsing -until: %w", err)
		}
		f.Until = d
	}
	return f, nil
}
