package garbanzo

import "errors"

// The engine has no transient failure class: every error below signals
// either a malformed ledger or a programming error in the caller, and is
// surfaced immediately. Callers match with errors.Is.
var (
	// ErrLoad is reported when the upstream parser recorded errors: the
	// ledger refuses to materialize, there is no partial load.
	ErrLoad = errors.New("ledger has parse errors")

	// ErrInvalidConfig is reported for an unrecognized or mistyped
	// garbanzo-option directive.
	ErrInvalidConfig = errors.New("invalid ledger configuration")

	// ErrMissingOption is reported when a required option (such as an
	// account-type display name) is absent from the ledger options.
	ErrMissingOption = errors.New("missing ledger option")

	// ErrUnknownGrain is reported for an unrecognized time-grain name.
	ErrUnknownGrain = errors.New("unknown time grain")

	// ErrUnknownAccountType is reported when sign adjustment is requested
	// for an account whose root segment matches no configured display name.
	ErrUnknownAccountType = errors.New("unknown account type")
)
