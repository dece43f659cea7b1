package models

import "time"

// User represents a registered account. It contains identity attributes and
// credential-related data. Sensitive fields must never be exposed outside
// trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON and is used only at the persistence layer.
	UserID int64 `json:"-"`

	// Email is the unique login identifier, stored case-sensitive.
	Email string `json:"email"`

	// HashedPassword stores the bcrypt digest of the user's password.
	// This value MUST be a derived value, never plaintext.
	HashedPassword string `json:"-"`

	// SessionID is the identifier of the user's live session, if any.
	// At most one value is live per user; empty means no session.
	SessionID string `json:"-"`

	// ResetToken is the user's outstanding single-use password-reset token.
	// Issuing a new token overwrites any prior value; empty means none.
	ResetToken string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
