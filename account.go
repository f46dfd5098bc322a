package garbanzo

import "strings"

// accountSeparator is the hierarchy delimiter in account names.
const accountSeparator = ":"

// Account is a colon-delimited hierarchical account name, such as
// "Expenses:Food:Restaurants". A prefix of the path selects an entire
// subtree of the account hierarchy.
type Account string

// Split returns the ordered segments of the account path.
func (a Account) Split() []string {
	if a == "" {
		return nil
	}
	return strings.Split(string(a), accountSeparator)
}

// AtDepth truncates the account to its first depth segments. A depth of
// zero or less yields the empty account; an account shorter than depth is
// returned unchanged.
func (a Account) AtDepth(depth int) Account {
	if depth <= 0 {
		return ""
	}
	segments := a.Split()
	if depth >= len(segments) {
		return a
	}
	return Account(strings.Join(segments[:depth], accountSeparator))
}

// Root returns the first segment of the account path, the one naming its
// canonical account type (e.g. "Expenses").
func (a Account) Root() string { return string(a.AtDepth(1)) }

// Under reports whether the account lies in the subtree selected by prefix.
// The match is made at segment boundaries: "ExpensesOther" is not under
// "Expenses". The empty prefix selects every account.
func (a Account) Under(prefix Account) bool {
	if prefix == "" || a == prefix {
		return true
	}
	return strings.HasPrefix(string(a), string(prefix)+accountSeparator)
}
