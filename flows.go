package garbanzo

import (
	"fmt"
	"slices"

	"github.com/shopspring/decimal"
)

// FlowOptions tunes a flow aggregation.
type FlowOptions struct {
	// Currency selects postings by currency. Empty means the ledger's
	// main currency.
	Currency string

	// AdjustSign negates income and liability flows so that "money
	// received" reads positive. The ledger stores those postings with
	// their natural credit (negative) sign.
	AdjustSign bool
}

// FlowPoint is the summed posting amount of one time bucket, keyed by the
// bucket's period-start date.
type FlowPoint struct {
	Period Date
	Amount decimal.Decimal
}

// FlowSeries is a flow per period, ordered by increasing period start.
// Periods with no matching postings are simply absent.
type FlowSeries []FlowPoint

// At returns the flow recorded for the given period start, or zero when
// the series has no bucket there.
func (s FlowSeries) At(period Date) decimal.Decimal {
	for _, p := range s {
		if p.Period == period {
			return p.Amount
		}
	}
	return decimal.Decimal{}
}

// has reports whether the series recorded a bucket at the given period
// start, distinguishing a zero flow from an absent one.
func (s FlowSeries) has(period Date) bool {
	for _, p := range s {
		if p.Period == period {
			return true
		}
	}
	return false
}

// Sum returns the total of all buckets in the series.
func (s FlowSeries) Sum() decimal.Decimal {
	var total decimal.Decimal
	for _, p := range s {
		total = total.Add(p.Amount)
	}
	return total
}

// AccountFlow is one row of a depth-grouped flow table: the summed amount
// for one truncated account within one time bucket.
type AccountFlow struct {
	Period  Date
	Account Account
	Amount  decimal.Decimal
}

// AccountFlows computes the total cash flow under an account prefix, per
// period of the given time grain.
//
// A posting is selected when its account lies in the subtree of prefix
// (matched at path-segment boundaries, so "Expenses" never selects
// "ExpensesOther") and its currency equals the selected one. Selected
// amounts are summed per period-start bucket. An empty result is a
// legitimate outcome, not an error: unknown prefixes or currencies simply
// have no flows.
//
// With AdjustSign set, flows of income- and liability-rooted prefixes are
// negated; a prefix whose root segment matches no configured display name
// wraps [ErrUnknownAccountType].
func (l *Ledger) AccountFlows(prefix Account, period Period, o FlowOptions) (FlowSeries, error) {
	negate, err := l.flowSign(prefix, o)
	if err != nil {
		return nil, err
	}
	currency := l.flowCurrency(o)

	sums := make(map[Date]decimal.Decimal)
	for _, p := range l.postings {
		if !p.Account.Under(prefix) || p.Currency != currency {
			continue
		}
		bucket := p.Date.StartOf(period)
		sums[bucket] = sums[bucket].Add(p.Amount)
	}

	series := make(FlowSeries, 0, len(sums))
	for bucket, amount := range sums {
		if negate {
			amount = amount.Neg()
		}
		series = append(series, FlowPoint{Period: bucket, Amount: amount})
	}
	slices.SortFunc(series, func(a, b FlowPoint) int {
		return a.Period.time().Compare(b.Period.time())
	})
	return series, nil
}

// GroupedAccountFlows is like [Ledger.AccountFlows] but additionally
// groups each time bucket by the posting's account truncated to the given
// hierarchy depth. Rows are ordered by increasing period start, then by
// ascending account within a period.
func (l *Ledger) GroupedAccountFlows(prefix Account, period Period, depth int, o FlowOptions) ([]AccountFlow, error) {
	negate, err := l.flowSign(prefix, o)
	if err != nil {
		return nil, err
	}
	currency := l.flowCurrency(o)

	type key struct {
		period  Date
		account Account
	}
	sums := make(map[key]decimal.Decimal)
	for _, p := range l.postings {
		if !p.Account.Under(prefix) || p.Currency != currency {
			continue
		}
		k := key{period: p.Date.StartOf(period), account: p.Account.AtDepth(depth)}
		sums[k] = sums[k].Add(p.Amount)
	}

	rows := make([]AccountFlow, 0, len(sums))
	for k, amount := range sums {
		if negate {
			amount = amount.Neg()
		}
		rows = append(rows, AccountFlow{Period: k.period, Account: k.account, Amount: amount})
	}
	slices.SortFunc(rows, func(a, b AccountFlow) int {
		if c := a.Period.time().Compare(b.Period.time()); c != 0 {
			return c
		}
		return slices.Compare(a.Account.Split(), b.Account.Split())
	})
	return rows, nil
}

// flowCurrency resolves the posting currency selected by the options.
func (l *Ledger) flowCurrency(o FlowOptions) string {
	if o.Currency != "" {
		return o.Currency
	}
	return l.MainCurrency()
}

// flowSign decides whether flows under prefix must be negated. Only
// income and liability flows are stored with a credit sign worth flipping.
func (l *Ledger) flowSign(prefix Account, o FlowOptions) (negate bool, err error) {
	if !o.AdjustSign {
		return false, nil
	}
	category, ok := l.names.category(prefix.Root())
	if !ok {
		return false, fmt.Errorf("%w: account %q has root %q", ErrUnknownAccountType, prefix, prefix.Root())
	}
	return category == "income" || category == "liabilities", nil
}

// IncomeExpenseRow is one period of the combined income/expense report.
// All four amounts refer to the same period start; Income and Expenses are
// sign-adjusted so both read positive in the usual case.
type IncomeExpenseRow struct {
	Period     Date
	Income     decimal.Decimal
	Disposable decimal.Decimal // income minus configured deduction flows
	Expenses   decimal.Decimal
	Savings    decimal.Decimal // income minus expenses, identically
}

// IncomeExpenseReport combines income and expense flows into one table
// indexed by period, with the derived disposable-income and savings
// columns. Presentation order is income, disposable, expenses, savings.
type IncomeExpenseReport struct {
	Grain    Period
	Currency string

	// IncomeLabel and ExpenseLabel are the configured display names of
	// the income and expenses account types, doubling as column labels.
	IncomeLabel  string
	ExpenseLabel string

	Rows []IncomeExpenseRow
}

// IncomeExpense composes the income and expense flow series for the given
// time grain into a single report.
//
// Both series are computed sign-adjusted over the configured income and
// expenses account-type names, then combined onto the union of their
// period indexes with missing cells filled with zero: a period with only
// expenses reports zero income, and vice versa. Disposable income is the
// income minus the flows of every configured income-deduction account,
// subtracted only in periods where income was actually recorded, so an
// income-less period reads zero instead of a negative deduction
// artifact; savings is income minus expenses, identically.
func (l *Ledger) IncomeExpense(grain Period, currency string) (*IncomeExpenseReport, error) {
	opts := FlowOptions{Currency: currency, AdjustSign: true}

	income, err := l.AccountFlows(Account(l.names.Income), grain, opts)
	if err != nil {
		return nil, err
	}
	expenses, err := l.AccountFlows(Account(l.names.Expenses), grain, opts)
	if err != nil {
		return nil, err
	}
	deductions := make([]FlowSeries, 0, len(l.config.IncomeDeductionAccounts))
	for _, account := range l.config.IncomeDeductionAccounts {
		flows, err := l.AccountFlows(account, grain, opts)
		if err != nil {
			return nil, fmt.Errorf("deduction account %q: %w", account, err)
		}
		deductions = append(deductions, flows)
	}

	report := &IncomeExpenseReport{
		Grain:        grain,
		Currency:     l.flowCurrency(opts),
		IncomeLabel:  l.names.Income,
		ExpenseLabel: l.names.Expenses,
	}
	for _, period := range unionPeriods(income, expenses) {
		row := IncomeExpenseRow{
			Period:   period,
			Income:   income.At(period),
			Expenses: expenses.At(period),
		}
		row.Disposable = row.Income
		if income.has(period) {
			for _, flows := range deductions {
				row.Disposable = row.Disposable.Sub(flows.At(period))
			}
		}
		row.Savings = row.Income.Sub(row.Expenses)
		report.Rows = append(report.Rows, row)
	}
	return report, nil
}

// unionPeriods merges the period indexes of several series, sorted by
// increasing period start.
func unionPeriods(series ...FlowSeries) []Date {
	seen := make(map[Date]bool)
	var periods []Date
	for _, s := range series {
		for _, p := range s {
			if !seen[p.Period] {
				seen[p.Period] = true
				periods = append(periods, p.Period)
			}
		}
	}
	slices.SortFunc(periods, func(a, b Date) int { return a.time().Compare(b.time()) })
	return periods
}
