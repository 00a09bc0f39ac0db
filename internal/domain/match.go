package domain

// CheckoutMatch selects how a check-out finds the record it closes.
type CheckoutMatch string

const (
	// MatchRecord closes the record the open check-in refers to.
	MatchRecord CheckoutMatch = "record"

	// MatchDay closes the newest open record of the user dated on the
	// check-out day. A session that spans midnight cannot be closed.
	MatchDay CheckoutMatch = "day"
)
