package renderer

import (
	"fmt"
	"io"
	"strings"

	"github.com/etnz/garbanzo"
)

// IncomeExpenseMarkdown renders the combined income/expense report as a
// markdown table, keeping the report's column order: income, disposable,
// expenses, savings.
func IncomeExpenseMarkdown(r *garbanzo.IncomeExpenseReport) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Cash flow per %s (%s)\n\n", r.Grain.Name(), r.Currency)

	ConditionalBlock(&b, func(w io.Writer) bool {
		if len(r.Rows) == 0 {
			fmt.Fprintln(w, "No matching postings.")
			return true
		}
		fmt.Fprintf(w, "| Period | %s | Disposable | %s | Savings |\n", r.IncomeLabel, r.ExpenseLabel)
		fmt.Fprintf(w, "|:---|---:|---:|---:|---:|\n")
		for _, row := range r.Rows {
			fmt.Fprintf(w, "| %s | %s | %s | %s | %s |\n",
				r.Grain.Identifier(row.Period),
				garbanzo.M(row.Income, r.Currency),
				garbanzo.M(row.Disposable, r.Currency),
				garbanzo.M(row.Expenses, r.Currency),
				garbanzo.M(row.Savings, r.Currency).SignedString(),
			)
		}
		return true
	})
	return b.String()
}
