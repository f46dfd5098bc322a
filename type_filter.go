package garbanzo

// Filter is an inclusive date-range predicate applied uniformly to the
// transaction, posting and price tables. A zero bound leaves that side
// unbounded, so the zero Filter matches everything.
type Filter struct {
	Since Date // inclusive minimum date, zero for unbounded
	Until Date // inclusive maximum date, zero for unbounded
}

// Matches reports whether a record dated on satisfies the filter.
func (f Filter) Matches(on Date) bool {
	if !f.Since.IsZero() && on.Before(f.Since) {
		return false
	}
	if !f.Until.IsZero() && on.After(f.Until) {
		return false
	}
	return true
}

// filterByDate returns the subsequence of rows whose date satisfies the
// filter, preserving order. The input slice is never mutated.
func filterByDate[T any](f Filter, rows []T, dateOf func(T) Date) []T {
	kept := make([]T, 0, len(rows))
	for _, row := range rows {
		if f.Matches(dateOf(row)) {
			kept = append(kept, row)
		}
	}
	return kept
}
