package service

import (
	"context"

	"github.com/Yemmy22/alx-backend-user-data/models"
)

// AuthService is the facade composing the credential hasher, the user store,
// and the active session registry variant into the operations the HTTP layer
// needs.
type AuthService interface {
	// Register creates a new account with a hashed password.
	// Returns ErrAlreadyRegistered when the email is taken.
	Register(ctx context.Context, email, password string) (models.User, error)

	// ValidLogin reports whether the credentials match a stored account.
	// An unknown email is false, not an error; the error return is reserved
	// for storage failures.
	ValidLogin(ctx context.Context, email, password string) (bool, error)

	// UserFromCredentials resolves credentials to the stored account.
	// Returns store.ErrNoUserWasFound for an unknown email and
	// ErrWrongPassword when the bcrypt check fails.
	UserFromCredentials(ctx context.Context, email, password string) (models.User, error)

	// CreateSession opens a session for the user registered under email and
	// returns its identifier. The session id is also persisted onto the
	// user record. Returns store.ErrNoUserWasFound for an unknown email.
	CreateSession(ctx context.Context, email string) (string, error)

	// UserFromSession resolves a session identifier to its owning user.
	// Returns store.ErrNoUserWasFound when the session is unknown, expired,
	// or the user no longer resolves.
	UserFromSession(ctx context.Context, sessionID string) (models.User, error)

	// DestroySession ends any session association for the user. It is
	// idempotent and never fails when no session exists.
	DestroySession(ctx context.Context, userID int64) error

	// IssueResetToken generates a fresh single-use password-reset token,
	// overwriting any prior token for the user.
	// Returns store.ErrNoUserWasFound for an unknown email.
	IssueResetToken(ctx context.Context, email string) (string, error)

	// ConsumeResetToken sets a new password if token matches the user's
	// outstanding reset token, then clears the token so it cannot be used
	// again. Returns ErrInvalidResetToken on a mismatch or absent token.
	ConsumeResetToken(ctx context.Context, email, token, newPassword string) error
}

// TokenGenerator produces opaque reset tokens. Satisfied by
// utils.UUIDGenerator; tests substitute deterministic generators.
type TokenGenerator interface {
	Generate() string
}
