package garbanzo

import (
	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// Money is a monetary value used for display. Flow amounts stay
// decimal.Decimal inside the engine; Money only adds the per-currency
// formatting (symbol, fraction digits, separators) when a value reaches a
// human.
type Money struct {
	value decimal.Decimal // in major units
	cur   string
}

// M builds a Money from a value and a currency code.
func M[T float64 | int | int64 | decimal.Decimal](value T, currency string) Money {
	return Money{value: newDecimal(value), cur: currency}
}

// newDecimal is a convenient factory for decimal.Decimal.
func newDecimal[T float64 | int | int64 | decimal.Decimal](value T) decimal.Decimal {
	switch v := any(value).(type) {
	case decimal.Decimal:
		return v
	case float64:
		return decimal.NewFromFloat(v)
	case int:
		return decimal.NewFromInt(int64(v))
	case int64:
		return decimal.NewFromInt(v)
	default:
		panic("unsupported type")
	}
}

// currency returns the full currency description for the code.
func (m Money) currency() money.Currency {
	// the Money constructor guarantees a non-nil currency even for
	// unknown codes
	return *money.New(0, m.cur).Currency()
}

// String formats the value with its currency symbol and fraction digits.
func (m Money) String() string {
	cur := m.currency()
	dec := m.value.Shift(int32(cur.Fraction))
	return cur.Formatter().Format(dec.IntPart())
}

// SignedString is like String with an explicit sign; zero renders as "-".
func (m Money) SignedString() string {
	if m.value.IsZero() {
		return "-"
	}
	if m.value.IsPositive() {
		return "+" + m.String()
	}
	return m.String()
}

func (m Money) Currency() string   { return m.cur }
func (m Money) IsZero() bool       { return m.value.IsZero() }
func (m Money) IsNegative() bool   { return m.value.IsNegative() }
func (m Money) Neg() Money         { return Money{value: m.value.Neg(), cur: m.cur} }
func (m Money) Add(n Money) Money  { return Money{value: m.value.Add(n.value), cur: mergeCur(m, n)} }
func (m Money) Sub(n Money) Money  { return Money{value: m.value.Sub(n.value), cur: mergeCur(m, n)} }
func (m Money) Equal(n Money) bool { return m.value.Equal(n.value) && m.cur == n.cur }

// mergeCur makes the "" currency totally weak.
func mergeCur(a, b Money) string {
	if a.cur == "" {
		return b.cur
	}
	if b.cur == "" {
		return a.cur
	}
	if a.cur != b.cur {
		panic("currency mismatch " + a.cur + " != " + b.cur)
	}
	return a.cur
}
