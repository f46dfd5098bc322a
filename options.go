package garbanzo

import "fmt"

// FallbackCurrency is used when the ledger declares no operating currency.
const FallbackCurrency = "USD"

// Options is the raw key-value options mapping reported by the parser,
// e.g. beancount's option directives.
type Options map[string]any

// MainCurrency returns the first operating currency listed in the options,
// or [FallbackCurrency] when none is declared.
func (o Options) MainCurrency() string {
	switch currencies := o["operating_currency"].(type) {
	case []string:
		if len(currencies) > 0 {
			return currencies[0]
		}
	case []any:
		if len(currencies) > 0 {
			if cur, ok := currencies[0].(string); ok {
				return cur
			}
		}
	}
	return FallbackCurrency
}

// accountTypeKeys lists the canonical account-type categories in their
// fixed order. The order also indexes the display color palette.
var accountTypeKeys = []string{"assets", "liabilities", "income", "expenses", "equity"}

// AccountNames maps each canonical account-type category to its
// ledger-configured display name, one named field per category. It is
// validated once at load time, so a ledger missing a name_<category>
// option fails to load instead of failing on first access.
type AccountNames struct {
	Assets      string
	Liabilities string
	Income      string
	Expenses    string
	Equity      string
}

// newAccountNames builds the display-name record from the name_<category>
// options. A missing or non-string entry wraps [ErrMissingOption].
func newAccountNames(o Options) (AccountNames, error) {
	var names AccountNames
	fields := map[string]*string{
		"assets":      &names.Assets,
		"liabilities": &names.Liabilities,
		"income":      &names.Income,
		"expenses":    &names.Expenses,
		"equity":      &names.Equity,
	}
	for _, key := range accountTypeKeys {
		name, ok := o["name_"+key].(string)
		if !ok || name == "" {
			return AccountNames{}, fmt.Errorf("%w: name_%s", ErrMissingOption, key)
		}
		*fields[key] = name
	}
	return names, nil
}

// ByCategory returns the mapping from canonical lowercase category names
// to their configured display names.
func (n AccountNames) ByCategory() map[string]string {
	return map[string]string{
		"assets":      n.Assets,
		"liabilities": n.Liabilities,
		"income":      n.Income,
		"expenses":    n.Expenses,
		"equity":      n.Equity,
	}
}

// category returns the canonical category for a display name.
func (n AccountNames) category(display string) (string, bool) {
	for category, name := range n.ByCategory() {
		if name == display {
			return category, true
		}
	}
	return "", false
}

// palette is the fixed qualitative palette used to color account types in
// charts, indexed by canonical-category order. It must have at least one
// entry per category.
var palette = []string{
	"#1F77B4", // blue
	"#FF7F0E", // orange
	"#2CA02C", // green
	"#D62728", // red
	"#9467BD", // purple
	"#8C564B", // brown
	"#E377C2", // pink
	"#7F7F7F", // gray
	"#BCBD22", // olive
	"#17BECF", // cyan
}

// Colors returns a stable mapping from each configured display name to a
// chart color, assigned by canonical-category position in the palette.
func (n AccountNames) Colors() map[string]string {
	colors := make(map[string]string, len(accountTypeKeys))
	byCategory := n.ByCategory()
	for i, key := range accountTypeKeys {
		colors[byCategory[key]] = palette[i%len(palette)]
	}
	return colors
}
