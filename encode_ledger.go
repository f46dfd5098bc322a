package garbanzo

import (
	"bufio"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"slices"

	"github.com/shopspring/decimal"
)

func init() {
	decimal.MarshalJSONWithoutQuotes = true
}

// The interchange format is one JSON object per line, each carrying a
// "directive" discriminator. It is the durable form of the records an
// external ledger parser hands to [NewLedger]; it is not a ledger-file
// syntax, which the engine never reads.
const (
	recTransaction = "txn"
	recPrice       = "price"
	recCustom      = "custom"
	recOption      = "option"
	recError       = "error"
)

// postingRecord mirrors a SourcePosting on the wire.
type postingRecord struct {
	Account  Account         `json:"account"`
	Amount   decimal.Decimal `json:"amount"`
	Currency string          `json:"currency"`
	Cost     *Lot            `json:"cost,omitempty"`
	Price    *Lot            `json:"price,omitempty"`
	Meta     Metadata        `json:"meta,omitempty"`
}

// txnRecord mirrors a SourceTransaction on the wire.
type txnRecord struct {
	Date      Date            `json:"date"`
	Payee     string          `json:"payee,omitempty"`
	Narration string          `json:"narration,omitempty"`
	Tags      []string        `json:"tags,omitempty"`
	Links     []string        `json:"links,omitempty"`
	Meta      Metadata        `json:"meta,omitempty"`
	Postings  []postingRecord `json:"postings"`
}

// priceRecord mirrors a Price on the wire.
type priceRecord struct {
	Date         Date            `json:"date"`
	Currency     string          `json:"currency"`
	Amount       decimal.Decimal `json:"amount"`
	ConvCurrency string          `json:"convCurrency"`
}

// customRecord mirrors a Custom directive on the wire.
type customRecord struct {
	Date   Date   `json:"date"`
	Type   string `json:"type"`
	Values []any  `json:"values"`
}

// DecodeSource reads a stream of JSONL parsed-ledger records and returns
// the reassembled Source. Option directives accumulate into the options
// mapping; error directives accumulate into Source.Errors so that
// [NewLedger] can refuse the ledger.
func DecodeSource(r io.Reader) (Source, error) {
	src := Source{Options: make(Options)}
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	line := 0
	for scanner.Scan() {
		line++
		lineBytes := scanner.Bytes()
		if len(lineBytes) == 0 {
			continue // skip empty lines
		}

		var identifier struct {
			Directive string `json:"directive"`
		}
		if err := json.Unmarshal(lineBytes, &identifier); err != nil {
			return Source{}, fmt.Errorf("line %d: could not identify directive: %w", line, err)
		}

		switch identifier.Directive {
		case recTransaction:
			var rec txnRecord
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return Source{}, fmt.Errorf("line %d: invalid transaction: %w", line, err)
			}
			txn := SourceTransaction{
				Date:      rec.Date,
				Payee:     rec.Payee,
				Narration: rec.Narration,
				Tags:      rec.Tags,
				Links:     rec.Links,
				Meta:      rec.Meta,
			}
			for _, p := range rec.Postings {
				txn.Postings = append(txn.Postings, SourcePosting(p))
			}
			src.Transactions = append(src.Transactions, txn)

		case recPrice:
			var rec priceRecord
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return Source{}, fmt.Errorf("line %d: invalid price: %w", line, err)
			}
			src.Prices = append(src.Prices, Price(rec))

		case recCustom:
			var rec customRecord
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return Source{}, fmt.Errorf("line %d: invalid custom directive: %w", line, err)
			}
			src.Customs = append(src.Customs, Custom(rec))

		case recOption:
			var rec struct {
				Key   string `json:"key"`
				Value any    `json:"value"`
			}
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return Source{}, fmt.Errorf("line %d: invalid option: %w", line, err)
			}
			src.Options[rec.Key] = rec.Value

		case recError:
			var rec struct {
				Message string `json:"message"`
			}
			if err := json.Unmarshal(lineBytes, &rec); err != nil {
				return Source{}, fmt.Errorf("line %d: invalid error record: %w", line, err)
			}
			src.Errors = append(src.Errors, errors.New(rec.Message))

		default:
			return Source{}, fmt.Errorf("line %d: unknown directive %q", line, identifier.Directive)
		}
	}
	if err := scanner.Err(); err != nil {
		return Source{}, fmt.Errorf("could not read ledger records: %w", err)
	}
	return src, nil
}

// EncodeSource writes the Source as JSONL parsed-ledger records, one per
// line, in a stable field order.
func EncodeSource(w io.Writer, src Source) error {
	enc := json.NewEncoder(w)
	write := func(obj *jsonObjectWriter) error { return enc.Encode(obj) }

	optionKeys := make([]string, 0, len(src.Options))
	for key := range src.Options {
		optionKeys = append(optionKeys, key)
	}
	slices.Sort(optionKeys)
	for _, key := range optionKeys {
		var obj jsonObjectWriter
		obj.Append("directive", recOption).Append("key", key).Append("value", src.Options[key])
		if err := write(&obj); err != nil {
			return err
		}
	}
	for _, c := range src.Customs {
		var obj jsonObjectWriter
		obj.Append("directive", recCustom).Append("date", c.Date).Append("type", c.Type).Append("values", c.Values)
		if err := write(&obj); err != nil {
			return err
		}
	}
	for _, txn := range src.Transactions {
		postings := make([]postingRecord, 0, len(txn.Postings))
		for _, p := range txn.Postings {
			postings = append(postings, postingRecord(p))
		}
		var obj jsonObjectWriter
		obj.Append("directive", recTransaction).
			Append("date", txn.Date).
			Optional("payee", txn.Payee).
			Optional("narration", txn.Narration).
			Optional("tags", txn.Tags).
			Optional("links", txn.Links).
			Optional("meta", txn.Meta).
			Append("postings", postings)
		if err := write(&obj); err != nil {
			return err
		}
	}
	for _, p := range src.Prices {
		var obj jsonObjectWriter
		obj.Append("directive", recPrice).
			Append("date", p.Date).
			Append("currency", p.Currency).
			Append("amount", p.Amount).
			Append("convCurrency", p.ConvCurrency)
		if err := write(&obj); err != nil {
			return err
		}
	}
	for _, e := range src.Errors {
		var obj jsonObjectWriter
		obj.Append("directive", recError).Append("message", e.Error())
		if err := write(&obj); err != nil {
			return err
		}
	}
	return nil
}
