package garbanzo

import (
	"fmt"
	"math"
	"time"

	"github.com/shopspring/decimal"
)

// OptionDirective is the custom-directive type carrying engine settings
// inside the ledger itself, e.g.:
//
//	2024-01-01 custom "garbanzo-option" "default-account-depth" 4
const OptionDirective = "garbanzo-option"

// DefaultAccountDepth is the hierarchy display depth used when the ledger
// does not configure one.
const DefaultAccountDepth = 3

// Custom is a custom directive as reported by the parser: a directive-type
// string and its ordered, loosely typed values.
type Custom struct {
	Date   Date
	Type   string
	Values []any
}

// Config holds the typed, validated settings derived from the ledger's
// garbanzo-option directives.
type Config struct {
	// DefaultStartDate, when set, is the start of the default reporting
	// range offered to presentation layers.
	DefaultStartDate Date

	// DefaultAccountDepth is the account-hierarchy depth used by default
	// when breaking flows down per account.
	DefaultAccountDepth int

	// IncomeDeductionAccounts lists the account prefixes (e.g. withheld
	// taxes) subtracted from income when computing disposable income.
	IncomeDeductionAccounts []Account
}

// newConfig builds a Config by scanning custom directives of the
// recognized [OptionDirective] type. The configuration is closed: an
// unrecognized key or a value failing type validation wraps
// [ErrInvalidConfig]. Repeated "income-deduction-account" keys accumulate;
// any other repeated key overwrites, last occurrence wins.
func newConfig(customs []Custom) (Config, error) {
	cfg := Config{DefaultAccountDepth: DefaultAccountDepth}
	for _, c := range customs {
		if c.Type != OptionDirective {
			continue
		}
		if len(c.Values) != 2 {
			return Config{}, fmt.Errorf("%w: option directive on %s wants 2 values, got %d", ErrInvalidConfig, c.Date, len(c.Values))
		}
		key, ok := c.Values[0].(string)
		if !ok {
			return Config{}, fmt.Errorf("%w: option key on %s is not a string", ErrInvalidConfig, c.Date)
		}
		val := c.Values[1]
		var err error
		switch key {
		case "income-deduction-account":
			var account string
			if account, err = stringValue(val); err == nil {
				cfg.IncomeDeductionAccounts = append(cfg.IncomeDeductionAccounts, Account(account))
			}
		case "default-start-date":
			cfg.DefaultStartDate, err = dateValue(val)
		case "default-account-depth":
			cfg.DefaultAccountDepth, err = depthValue(val)
		default:
			return Config{}, fmt.Errorf("%w: unrecognized option %q", ErrInvalidConfig, key)
		}
		if err != nil {
			return Config{}, fmt.Errorf("%w: option %q: %v", ErrInvalidConfig, key, err)
		}
	}
	return cfg, nil
}

func stringValue(v any) (string, error) {
	s, ok := v.(string)
	if !ok {
		return "", fmt.Errorf("want a string, got %T", v)
	}
	return s, nil
}

func dateValue(v any) (Date, error) {
	switch d := v.(type) {
	case Date:
		return d, nil
	case time.Time:
		return NewDate(d.Date()), nil
	case string:
		return ParseDate(d)
	default:
		return Date{}, fmt.Errorf("want a date, got %T", v)
	}
}

// depthValue accepts the integer shapes a parser or a JSON decoder may
// hand over, and rejects negative or fractional depths.
func depthValue(v any) (int, error) {
	var depth int
	switch n := v.(type) {
	case int:
		depth = n
	case int64:
		depth = int(n)
	case float64:
		if n != math.Trunc(n) {
			return 0, fmt.Errorf("want an integer depth, got %v", n)
		}
		depth = int(n)
	case decimal.Decimal:
		if !n.IsInteger() {
			return 0, fmt.Errorf("want an integer depth, got %v", n)
		}
		depth = int(n.IntPart())
	default:
		return 0, fmt.Errorf("want an integer depth, got %T", v)
	}
	if depth < 0 {
		return 0, fmt.Errorf("depth must be non-negative, got %d", depth)
	}
	return depth, nil
}
