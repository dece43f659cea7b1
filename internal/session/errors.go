package session

import "errors"

var (
	// ErrInvalidUserID is returned by Create when the user id is not a
	// positive identifier.
	ErrInvalidUserID = errors.New("invalid user id")

	// ErrSessionNotFound is returned by Resolve when the session id is
	// empty or no record maps to it.
	ErrSessionNotFound = errors.New("session not found")

	// ErrSessionExpired is returned by Resolve when the record exists but
	// its time-to-live has elapsed. Callers treat it as not found; the
	// distinct value exists for logging.
	ErrSessionExpired = errors.New("session expired")
)
