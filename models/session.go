package models

import "time"

// Session maps an opaque session identifier to the user that owns it.
// Sessions are owned by the session registry; the User entity holds at most
// the back-reference (SessionID), never the reverse.
type Session struct {
	// SessionID is the opaque, unguessable identifier of the session.
	SessionID string `json:"session_id"`

	// UserID is the identifier of the user that owns the session.
	UserID int64 `json:"user_id"`

	// CreatedAt is when the session was created. Expiry is computed from it
	// lazily at lookup time.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}
