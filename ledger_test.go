package garbanzo

import (
	"errors"
	"fmt"
	"reflect"
	"testing"
)

func TestNewLedger_assignsPositionalIDs(t *testing.T) {
	src := Source{
		Options: testOptions(),
		Transactions: []SourceTransaction{
			{
				Date:      MustParse("2024-01-15"),
				Payee:     "Cafe",
				Narration: "lunch",
				Postings: []SourcePosting{
					{Account: "Expenses:Food", Amount: dec(50), Currency: "USD"},
					{Account: "Assets:Checking", Amount: dec(-50), Currency: "USD"},
				},
			},
			txn("2024-01-20", "Expenses:Rent", 1200, "USD"),
		},
	}
	l := mustLedger(t, src)

	if got := len(l.Transactions()); got != 2 {
		t.Fatalf("got %d transactions, want 2", got)
	}
	if got := len(l.Postings()); got != 3 {
		t.Fatalf("got %d postings, want 3", got)
	}
	wantIDs := []int{0, 0, 1}
	for i, p := range l.Postings() {
		if p.TxnID != wantIDs[i] {
			t.Errorf("posting %d has txn id %d, want %d", i, p.TxnID, wantIDs[i])
		}
		if p.Date != l.Transactions()[p.TxnID].Date {
			t.Errorf("posting %d date %v differs from its transaction's %v", i, p.Date, l.Transactions()[p.TxnID].Date)
		}
	}
}

func TestNewLedger_normalizesTags(t *testing.T) {
	src := Source{
		Options: testOptions(),
		Transactions: []SourceTransaction{{
			Date: MustParse("2024-01-15"),
			Tags: []string{"travel", "2024", "travel"},
		}},
	}
	l := mustLedger(t, src)
	want := []string{"2024", "travel"}
	if got := l.Transactions()[0].Tags; !reflect.DeepEqual(got, want) {
		t.Errorf("Tags = %v, want sorted unique %v", got, want)
	}
}

func TestNewLedger_refusesParseErrors(t *testing.T) {
	src := Source{
		Options: testOptions(),
		Errors:  []error{errors.New("syntax error on line 12")},
	}
	if _, err := NewLedger(src); !errors.Is(err, ErrLoad) {
		t.Errorf("NewLedger = %v, want ErrLoad", err)
	}
}

func TestNewLedger_missingAccountName(t *testing.T) {
	options := testOptions()
	delete(options, "name_equity")
	if _, err := NewLedger(Source{Options: options}); !errors.Is(err, ErrMissingOption) {
		t.Errorf("NewLedger = %v, want ErrMissingOption", err)
	}
}

func TestNewLedger_invalidOptionDirective(t *testing.T) {
	src := Source{
		Options: testOptions(),
		Customs: []Custom{option("typo-option", 1)},
	}
	if _, err := NewLedger(src); !errors.Is(err, ErrInvalidConfig) {
		t.Errorf("NewLedger = %v, want ErrInvalidConfig", err)
	}
}

func TestLedger_MainCurrency(t *testing.T) {
	l := mustLedger(t, Source{Options: testOptions()})
	if got := l.MainCurrency(); got != "USD" {
		t.Errorf("MainCurrency = %q, want USD", got)
	}

	options := testOptions()
	options["operating_currency"] = []string{"EUR", "USD"}
	l = mustLedger(t, Source{Options: options})
	if got := l.MainCurrency(); got != "EUR" {
		t.Errorf("MainCurrency = %q, want first operating currency EUR", got)
	}

	options = testOptions()
	delete(options, "operating_currency")
	l = mustLedger(t, Source{Options: options})
	if got := l.MainCurrency(); got != FallbackCurrency {
		t.Errorf("MainCurrency = %q, want fallback %q", got, FallbackCurrency)
	}
}

func TestLedger_AccountNames(t *testing.T) {
	options := testOptions()
	options["name_income"] = "Revenus"
	l := mustLedger(t, Source{Options: options})

	names := l.AccountNames()
	if names.Income != "Revenus" {
		t.Errorf("Income display name = %q, want Revenus", names.Income)
	}
	want := map[string]string{
		"assets":      "Assets",
		"liabilities": "Liabilities",
		"income":      "Revenus",
		"expenses":    "Expenses",
		"equity":      "Equity",
	}
	if got := names.ByCategory(); !reflect.DeepEqual(got, want) {
		t.Errorf("ByCategory = %v, want %v", got, want)
	}
}

func TestLedger_AccountTypeColors(t *testing.T) {
	l := mustLedger(t, Source{Options: testOptions()})
	colors := l.AccountTypeColors()
	if len(colors) != 5 {
		t.Fatalf("got %d colors, want one per category", len(colors))
	}
	// colors follow canonical category order, not display-name order
	if colors["Assets"] != palette[0] || colors["Equity"] != palette[4] {
		t.Errorf("colors are not assigned by canonical position: %v", colors)
	}
	seen := map[string]bool{}
	for _, c := range colors {
		if seen[c] {
			t.Errorf("color %s assigned twice", c)
		}
		seen[c] = true
	}
}

func TestLedger_Filter(t *testing.T) {
	src := Source{
		Options: testOptions(),
		Transactions: []SourceTransaction{
			txn("2024-01-15", "Expenses:Food", 50, "USD"),
			txn("2024-02-20", "Expenses:Rent", 1200, "USD"),
			txn("2024-03-05", "Expenses:Food", 40, "USD"),
		},
		Prices: []Price{
			{Date: MustParse("2024-01-10"), Currency: "VTI", Amount: dec(220), ConvCurrency: "USD"},
			{Date: MustParse("2024-04-01"), Currency: "VTI", Amount: dec(230), ConvCurrency: "USD"},
		},
	}
	l := mustLedger(t, src)

	narrowed := l.Filter(Filter{Since: MustParse("2024-02-01"), Until: MustParse("2024-03-31")})

	if got := len(narrowed.Transactions()); got != 2 {
		t.Errorf("got %d transactions, want 2", got)
	}
	if got := len(narrowed.Postings()); got != 2 {
		t.Errorf("got %d postings, want 2", got)
	}
	if got := len(narrowed.Prices()); got != 0 {
		t.Errorf("got %d prices, want 0", got)
	}
	// the original is untouched
	if got := len(l.Transactions()); got != 3 {
		t.Errorf("original ledger mutated: %d transactions, want 3", got)
	}
	// configuration and options are shared
	if narrowed.MainCurrency() != l.MainCurrency() {
		t.Errorf("filtered ledger lost its options")
	}

	// every kept row satisfies the filter, in original order
	f := Filter{Since: MustParse("2024-02-01"), Until: MustParse("2024-03-31")}
	for _, p := range narrowed.Postings() {
		if !f.Matches(p.Date) {
			t.Errorf("posting dated %v does not match the filter", p.Date)
		}
	}
}

func TestLedger_Filter_resolvesTxnIDs(t *testing.T) {
	l := mustLedger(t, Source{
		Options: testOptions(),
		Transactions: []SourceTransaction{
			txn("2024-01-15", "Expenses:Food", 50, "USD"),
			txn("2024-06-01", "Expenses:Rent", 1200, "USD"),
		},
	})
	summer := l.Filter(Filter{Since: MustParse("2024-05-01")})
	if got := len(summer.Postings()); got != 1 {
		t.Fatalf("got %d postings, want 1", got)
	}

	// the kept posting's TxnID still references its transaction, even
	// though the transaction table was renumbered by the filter
	p := summer.Postings()[0]
	owner, ok := summer.Transaction(p.TxnID)
	if !ok {
		t.Fatalf("TxnID %d does not resolve on the filtered ledger", p.TxnID)
	}
	if owner.ID != p.TxnID || owner.Date != p.Date {
		t.Errorf("resolved transaction = %+v, want id %d dated %v", owner, p.TxnID, p.Date)
	}

	// a transaction outside the filter is absent, not misbound
	if _, ok := summer.Transaction(0); ok {
		t.Error("transaction 0 resolves on the filtered ledger, want absent")
	}
}

func TestLedger_Transaction(t *testing.T) {
	l := mustLedger(t, Source{
		Options: testOptions(),
		Transactions: []SourceTransaction{
			txn("2024-01-15", "Expenses:Food", 50, "USD"),
			txn("2024-02-20", "Expenses:Rent", 1200, "USD"),
			txn("2024-03-05", "Expenses:Food", 40, "USD"),
		},
	})
	for id := 0; id < 3; id++ {
		got, ok := l.Transaction(id)
		if !ok || got.ID != id {
			t.Errorf("Transaction(%d) = %+v, %v", id, got, ok)
		}
	}
	if _, ok := l.Transaction(3); ok {
		t.Error("Transaction(3) resolves, want absent")
	}
	if _, ok := l.Transaction(-1); ok {
		t.Error("Transaction(-1) resolves, want absent")
	}
}

func TestLedger_Filter_identity(t *testing.T) {
	l := mustLedger(t, Source{
		Options: testOptions(),
		Transactions: []SourceTransaction{
			txn("2024-01-15", "Expenses:Food", 50, "USD"),
			txn("2024-02-20", "Expenses:Rent", 1200, "USD"),
		},
	})
	same := l.Filter(Filter{})
	if !reflect.DeepEqual(same.Postings(), l.Postings()) {
		t.Errorf("unbounded filter is not the identity on postings")
	}
	if !reflect.DeepEqual(same.Transactions(), l.Transactions()) {
		t.Errorf("unbounded filter is not the identity on transactions")
	}
}

func TestFilter_Matches(t *testing.T) {
	on := MustParse("2024-02-15")
	tests := []struct {
		name   string
		filter Filter
		want   bool
	}{
		{"unbounded", Filter{}, true},
		{"within both bounds", Filter{Since: MustParse("2024-02-01"), Until: MustParse("2024-02-28")}, true},
		{"bounds are inclusive", Filter{Since: on, Until: on}, true},
		{"before since", Filter{Since: MustParse("2024-02-16")}, false},
		{"after until", Filter{Until: MustParse("2024-02-14")}, false},
		{"only since, satisfied", Filter{Since: MustParse("2024-01-01")}, true},
		{"only until, satisfied", Filter{Until: MustParse("2024-12-31")}, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.filter.Matches(on); got != tt.want {
				t.Errorf("Matches(%v) = %v, want %v", on, got, tt.want)
			}
		})
	}
}

func ExampleLedger_Filter() {
	l, _ := NewLedger(Source{
		Options: Options{
			"operating_currency": []string{"USD"},
			"name_assets":        "Assets",
			"name_liabilities":   "Liabilities",
			"name_income":        "Income",
			"name_expenses":      "Expenses",
			"name_equity":        "Equity",
		},
		Transactions: []SourceTransaction{
			{Date: MustParse("2024-01-15"), Postings: []SourcePosting{{Account: "Expenses:Food", Amount: dec(50), Currency: "USD"}}},
			{Date: MustParse("2024-06-01"), Postings: []SourcePosting{{Account: "Expenses:Food", Amount: dec(60), Currency: "USD"}}},
		},
	})
	spring := l.Filter(Filter{Until: MustParse("2024-03-31")})
	fmt.Println(len(spring.Postings()))
	// Output: 1
}
