package garbanzo

import (
	"testing"

	"github.com/shopspring/decimal"
)

// testOptions returns a minimal valid options mapping, the way a parser
// would report it: operating currency plus the five account-type names.
func testOptions() Options {
	return Options{
		"operating_currency": []string{"USD"},
		"name_assets":        "Assets",
		"name_liabilities":   "Liabilities",
		"name_income":        "Income",
		"name_expenses":      "Expenses",
		"name_equity":        "Equity",
	}
}

// txn builds a single-posting source transaction.
func txn(date string, account Account, amount float64, currency string) SourceTransaction {
	return SourceTransaction{
		Date: MustParse(date),
		Postings: []SourcePosting{
			{Account: account, Amount: decimal.NewFromFloat(amount), Currency: currency},
		},
	}
}

func mustLedger(t *testing.T, src Source) *Ledger {
	t.Helper()
	l, err := NewLedger(src)
	if err != nil {
		t.Fatalf("NewLedger: %v", err)
	}
	return l
}

func dec(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
