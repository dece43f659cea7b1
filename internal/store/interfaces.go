package store

import (
	"context"

	"github.com/Yemmy22/alx-backend-user-data/models"
)

// UserRepository is the persistence contract for user records.
//
// FindUserBy performs an exact-match lookup over any subset of the queryable
// columns (id, email, session_id, reset_token). When several rows match, the
// first in insertion order is returned; session_id deliberately carries no
// uniqueness constraint, so multiple matches are possible there.
type UserRepository interface {
	// CreateUser persists a new user record and returns it with its
	// server-assigned identifier. Returns ErrEmailAlreadyExists on a
	// uniqueness violation.
	CreateUser(ctx context.Context, email, hashedPassword string) (models.User, error)

	// FindUserBy returns the first user matching all criteria.
	// Returns ErrNoUserWasFound on an empty result, ErrInvalidField on an
	// unrecognized column name, ErrNoCriteriaProvided on an empty set.
	FindUserBy(ctx context.Context, criteria map[string]any) (models.User, error)

	// UpdateUser sets the named columns on the identified record. A nil
	// value stores SQL NULL. Returns ErrInvalidField on an unrecognized
	// column name and ErrNoUserWasFound when the id does not exist.
	UpdateUser(ctx context.Context, userID int64, fields map[string]any) error
}

// SessionRepository is the persistence contract for durable session records,
// backing the store-backed session registry variant.
type SessionRepository interface {
	// CreateSession persists the session record as given.
	CreateSession(ctx context.Context, session models.Session) error

	// FindSessionByID returns the session with the given identifier.
	// Returns ErrSessionNotFound on an empty result.
	FindSessionByID(ctx context.Context, sessionID string) (models.Session, error)

	// DeleteSession removes the session record and reports whether a row
	// was actually removed.
	DeleteSession(ctx context.Context, sessionID string) (bool, error)
}
