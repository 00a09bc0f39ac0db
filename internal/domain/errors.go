package domain

import "errors"

var (
	// ErrNotCheckedIn indicates a check-out without an open check-in.
	ErrNotCheckedIn = errors.New("not checked in")

	// ErrInconsistentState indicates the tracker and the store disagree
	// about a user's open record.
	ErrInconsistentState = errors.New("attendance state inconsistent with store")

	// ErrStorage indicates the record store could not be read or written.
	ErrStorage = errors.New("storage unavailable")

	// ErrUnauthorized indicates a non-admin asked for cross-user statistics.
	ErrUnauthorized = errors.New("unauthorized")
)
