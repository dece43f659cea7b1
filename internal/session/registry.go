// Package session implements the session registry: the mapping from opaque
// session identifiers to user identifiers that backs cookie-based
// authentication.
//
// Three variants exist, selected at construction time and injected into the
// auth service:
//
//   - NewMemoryRegistry: process-lifetime map, sessions never expire.
//   - NewExpiringMemoryRegistry: same map with a time-to-live evaluated
//     lazily at lookup.
//   - NewStoreRegistry: durable records via a store.SessionRepository, same
//     expiry arithmetic, sessions survive process restarts.
//
// All variants share one record shape (user id + creation timestamp) and the
// same identifier scheme. Expiry is only ever checked at lookup time; no
// background sweep exists, so stale in-memory entries remain in the map and
// are reported as not found on every subsequent lookup.
package session

import (
	"context"
	"time"
)

// Registry maps opaque session identifiers to user identifiers.
type Registry interface {
	// Create generates a fresh, collision-resistant session identifier for
	// the user and records the mapping. It does not check that the user
	// exists. Returns ErrInvalidUserID for a non-positive user id.
	Create(ctx context.Context, userID int64) (string, error)

	// Resolve returns the user id owning the session. Returns
	// ErrSessionNotFound for an empty or unknown identifier and
	// ErrSessionExpired when the record's time-to-live has elapsed.
	Resolve(ctx context.Context, sessionID string) (int64, error)

	// Destroy removes the session and reports whether a record was
	// actually removed. Destroying an empty or unknown identifier is not
	// an error; it reports false.
	Destroy(ctx context.Context, sessionID string) (bool, error)
}

// IDGenerator produces opaque session identifiers. Satisfied by
// utils.UUIDGenerator; tests substitute deterministic generators.
type IDGenerator interface {
	Generate() string
}

// expired reports whether a record created at createdAt has outlived
// duration as of now. A non-positive duration means sessions never expire;
// this is a deliberate escape hatch matching the non-expiring variant, not
// a bug.
func expired(createdAt, now time.Time, duration time.Duration) bool {
	if duration <= 0 {
		return false
	}

	return !now.Before(createdAt.Add(duration))
}
