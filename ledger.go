package garbanzo

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// Source bundles the already-parsed records handed over by an external
// ledger parser. The engine never reads ledger-file syntax itself: this is
// its whole input surface.
type Source struct {
	Transactions []SourceTransaction
	Prices       []Price
	Customs      []Custom
	Options      Options

	// Errors reported by the parser. A ledger with recorded errors
	// refuses to load.
	Errors []error
}

// SourceTransaction is a parsed transaction with its nested postings, as
// produced by the parser before ids are assigned.
type SourceTransaction struct {
	Date      Date
	Payee     string
	Narration string
	Tags      []string
	Links     []string
	Meta      Metadata
	Postings  []SourcePosting
}

// SourcePosting is a parsed posting leg, not yet bound to a transaction id.
type SourcePosting struct {
	Account  Account
	Amount   decimal.Decimal
	Currency string
	Cost     *Lot
	Price    *Lot
	Meta     Metadata
}

// Ledger is the immutable in-memory representation of a parsed ledger:
// its configuration, raw options, and the transaction, posting and price
// tables. It is constructed once by [NewLedger] and never mutated;
// [Ledger.Filter] produces new, independent ledgers, so concurrent readers
// need no locking.
type Ledger struct {
	config  Config
	options Options
	names   AccountNames

	transactions []Transaction
	postings     []Posting
	prices       []Price
}

// NewLedger materializes a ledger from parsed records.
//
// Each transaction is assigned its positional id and its postings are
// expanded into posting rows carrying that id and the transaction's date.
// Tags and links are sorted and de-duplicated. The configuration is built
// from the garbanzo-option custom directives and the account-type display
// names are validated, so a misconfigured ledger fails here rather than on
// first use. Wraps [ErrLoad] when the parser reported any error.
func NewLedger(src Source) (*Ledger, error) {
	if n := len(src.Errors); n > 0 {
		return nil, fmt.Errorf("%w: %d error(s) reported by the parser, first is: %v", ErrLoad, n, src.Errors[0])
	}
	config, err := newConfig(src.Customs)
	if err != nil {
		return nil, err
	}
	names, err := newAccountNames(src.Options)
	if err != nil {
		return nil, err
	}

	l := &Ledger{
		config:       config,
		options:      src.Options,
		names:        names,
		transactions: make([]Transaction, 0, len(src.Transactions)),
		prices:       slices.Clone(src.Prices),
	}
	for id, txn := range src.Transactions {
		l.transactions = append(l.transactions, Transaction{
			ID:        id,
			Date:      txn.Date,
			Payee:     txn.Payee,
			Narration: txn.Narration,
			Tags:      normalizeSet(txn.Tags),
			Links:     normalizeSet(txn.Links),
			Meta:      txn.Meta,
		})
		for _, p := range txn.Postings {
			l.postings = append(l.postings, Posting{
				TxnID:    id,
				Date:     txn.Date,
				Account:  p.Account,
				Amount:   p.Amount,
				Currency: p.Currency,
				Cost:     p.Cost,
				Price:    p.Price,
				Meta:     p.Meta,
			})
		}
	}
	return l, nil
}

// normalizeSet sorts and de-duplicates an unordered tag or link set.
func normalizeSet(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	set := slices.Clone(values)
	slices.Sort(set)
	return slices.Compact(set)
}

// Config returns the ledger's validated configuration.
func (l *Ledger) Config() Config { return l.config }

// Options returns the raw options mapping reported by the parser. The map
// is shared, callers must treat it as read-only.
func (l *Ledger) Options() Options { return l.options }

// MainCurrency returns the ledger's first operating currency, or
// [FallbackCurrency] when none is declared.
func (l *Ledger) MainCurrency() string { return l.options.MainCurrency() }

// AccountNames returns the configured display name per canonical
// account-type category.
func (l *Ledger) AccountNames() AccountNames { return l.names }

// AccountTypeColors returns a stable mapping from each account-type
// display name to its chart color.
func (l *Ledger) AccountTypeColors() map[string]string { return l.names.Colors() }

// Transactions returns the transaction table. The slice must be treated
// as read-only. On a freshly loaded ledger a transaction's id is its
// index; on a filtered ledger ids are sparse, use [Ledger.Transaction]
// to resolve a posting's TxnID.
func (l *Ledger) Transactions() []Transaction { return l.transactions }

// Transaction resolves a transaction by its load-time id. It reports
// false when the ledger holds no such transaction, which on a filtered
// ledger only means the transaction fell outside the filter.
func (l *Ledger) Transaction(id int) (Transaction, bool) {
	// ids are assigned in load order and filtering preserves order, so
	// the table stays sorted by id
	if n := len(l.transactions); n > 0 && id >= l.transactions[0].ID && id <= l.transactions[n-1].ID {
		lo, hi := 0, n-1
		for lo <= hi {
			mid := (lo + hi) / 2
			switch txn := l.transactions[mid]; {
			case txn.ID == id:
				return txn, true
			case txn.ID < id:
				lo = mid + 1
			default:
				hi = mid - 1
			}
		}
	}
	return Transaction{}, false
}

// Postings returns the posting table. The slice must be treated as
// read-only.
func (l *Ledger) Postings() []Posting { return l.postings }

// Prices returns the price table. The slice must be treated as read-only.
func (l *Ledger) Prices() []Price { return l.prices }

// Filter returns a new, independent ledger sharing this ledger's
// configuration and options, with the transaction, posting and price
// tables narrowed to the rows matching f. Row order is preserved and the
// receiver is unaffected. Posting ids keep referencing the positional
// assignment made at load time.
func (l *Ledger) Filter(f Filter) *Ledger {
	return &Ledger{
		config:       l.config,
		options:      l.options,
		names:        l.names,
		transactions: filterByDate(f, l.transactions, func(t Transaction) Date { return t.Date }),
		postings:     filterByDate(f, l.postings, func(p Posting) Date { return p.Date }),
		prices:       filterByDate(f, l.prices, func(p Price) Date { return p.Date }),
	}
}
