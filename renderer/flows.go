package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/garbanzo"
)

// FlowsMarkdown renders a flow series as a markdown table, one row per
// period.
func FlowsMarkdown(prefix garbanzo.Account, grain garbanzo.Period, currency string, series garbanzo.FlowSeries) string {
	var b strings.Builder
	title := string(prefix)
	if title == "" {
		title = "All accounts"
	}
	fmt.Fprintf(&b, "# %s flows per %s (%s)\n\n", title, grain.Name(), currency)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(series) == 0 {
			fmt.Fprintln(w, "No matching postings.")
			return true
		}
		fmt.Fprintf(w, "| Period | Amount |\n")
		fmt.Fprintf(w, "|:---|---:|\n")
		for _, p := range series {
			fmt.Fprintf(w, "| %s | %s |\n", grain.Identifier(p.Period), garbanzo.M(p.Amount, currency))
		}
		fmt.Fprintf(w, "| **Total** | **%s** |\n", garbanzo.M(series.Sum(), currency))
		return true
	})
	return b.String()
}

// GroupedFlowsMarkdown renders a depth-grouped flow table, one row per
// (period, account) pair.
func GroupedFlowsMarkdown(prefix garbanzo.Account, grain garbanzo.Period, currency string, rows []garbanzo.AccountFlow) string {
	var b strings.Builder
	title := string(prefix)
	if title == "" {
		title = "All accounts"
	}
	fmt.Fprintf(&b, "# %s flows per %s and account (%s)\n\n", title, grain.Name(), currency)

	if len(rows) == 0 {
		fmt.Fprintln(&b, "No matching postings.")
		return b.String()
	}
	fmt.Fprintf(&b, "| Period | Account | Amount |\n")
	fmt.Fprintf(&b, "|:---|:---|---:|\n")
	for _, row := range rows {
		fmt.Fprintf(&b, "| %s | %s | %s |\n", grain.Identifier(row.Period), row.Account, garbanzo.M(row.Amount, currency))
	}
	return b.String()
}

// AccountTypesMarkdown renders the configured account-type display names
// with their chart colors.
func AccountTypesMarkdown(names garbanzo.AccountNames, colors map[string]string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Account types\n\n")
	fmt.Fprintf(&b, "| Category | Display name | Color |\n")
	fmt.Fprintf(&b, "|:---|:---|:---|\n")
	byCategory := names.ByCategory()
	for _, category := range []string{"assets", "liabilities", "income", "expenses", "equity"} {
		name := byCategory[category]
		fmt.Fprintf(&b, "| %s | %s | %s |\n", category, name, colors[name])
	}
	return b.String()
}
