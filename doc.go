// Package garbanzo computes time-bucketed cash-flow aggregates over a
// personal double-entry ledger, broken down by account hierarchy, currency
// and sign convention, for presentation in charts.
//
// The package is the aggregation engine only. It consumes records already
// produced by an external ledger parser (transactions with their postings,
// price quotes, custom directives and the options mapping) and exposes:
//
//   - Ledger: the immutable in-memory store of parsed records, with
//     derived lookups such as the main currency, the account-type display
//     names and their chart colors.
//   - Filter: an inclusive date-range predicate producing new, narrowed
//     ledgers without touching the original.
//   - AccountFlows and GroupedAccountFlows: per-period flow totals under
//     an account prefix, optionally grouped at a fixed hierarchy depth,
//     with sign normalization for income and liability accounts.
//   - IncomeExpense: the combined income/expense table with the derived
//     disposable-income and savings columns.
//
// Every operation is a pure function over immutable tables: one loaded
// Ledger can be shared by concurrent callers without locking. Currency
// conversion, balance validation and ledger editing are out of scope.
package garbanzo
