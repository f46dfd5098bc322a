package garbanzo

import "github.com/shopspring/decimal"

// Metadata is the free-form, string-keyed metadata a parser may attach to
// transactions and postings. The engine carries it but never interprets it.
type Metadata map[string]any

// Transaction is one ledger event. Its id is assigned once at load time
// and referenced by its postings; the id survives filtering, so it is not
// an index into a narrowed transaction table.
type Transaction struct {
	ID        int
	Date      Date
	Payee     string
	Narration string
	Tags      []string // sorted, unique
	Links     []string // sorted, unique
	Meta      Metadata
}

// Lot is an amount/currency pair attached to a posting, used for both the
// cost of held-at-cost lots and per-unit price annotations.
type Lot struct {
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
}

// Posting is one leg of a transaction.
//
// The amount keeps the ledger's own double-entry sign convention: assets
// and expenses are positive on debit, income, liabilities and equity are
// positive on credit, so income and liability postings are typically
// negative. The sign is recorded as parsed, never normalized in storage.
type Posting struct {
	TxnID    int  // load-time id of the owning transaction
	Date     Date // copied from the owning transaction
	Account  Account
	Amount   decimal.Decimal
	Currency string
	Cost     *Lot // nil unless the posting is held at cost
	Price    *Lot // nil unless the posting is price-annotated
	Meta     Metadata
}

// Price is a quoted exchange rate: one unit of Currency was worth Amount
// units of ConvCurrency on Date.
type Price struct {
	Date         Date
	Currency     string
	Amount       decimal.Decimal
	ConvCurrency string
}
