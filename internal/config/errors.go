package config

import "errors"

var (
	// ErrInvalidAuthType is returned when APP_AUTH_TYPE is set to a value
	// other than "session_auth" or "basic_auth".
	ErrInvalidAuthType = errors.New("invalid auth type: must be session_auth or basic_auth")

	// ErrInvalidSessionStore is returned when APP_SESSION_STORE is set to a
	// value other than "memory" or "db".
	ErrInvalidSessionStore = errors.New("invalid session store: must be memory or db")
)
