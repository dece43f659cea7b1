package config

import (
	"time"
)

// Supported values for [App.AuthType], selecting which guard protects the
// authenticated route group.
const (
	// AuthTypeSession authenticates requests by the session cookie.
	AuthTypeSession = "session_auth"

	// AuthTypeBasic authenticates requests by the Basic Authorization header.
	AuthTypeBasic = "basic_auth"
)

// Supported values for [App.SessionStore], selecting the session registry
// variant constructed at startup.
const (
	// SessionStoreMemory keeps sessions in a process-lifetime map.
	SessionStoreMemory = "memory"

	// SessionStoreDB persists sessions in the relational store so they
	// survive process restarts.
	SessionStoreDB = "db"
)

// StructuredConfig is the top-level configuration container for the
// authentication service. It aggregates all sub-configurations and is
// populated by merging values from environment variables, command-line
// flags, and an optional JSON file.
//
// Struct tags:
//   - envPrefix — prefix applied to all nested env tag lookups (caarlos0/env).
//   - env       — direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds application-level settings: session cookie name, session
	// lifetime, registry variant, and the active authentication scheme.
	App App `envPrefix:"APP_"`

	// Storage holds configuration for the relational persistence backend.
	Storage Storage `envPrefix:"STORAGE_"`

	// Server holds network address and timeout settings for the HTTP server.
	Server Server `envPrefix:"SERVER_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values controlling the session
// lifecycle and the authentication scheme.
type App struct {
	// SessionName is the name of the cookie carrying the session identifier.
	// The encompassing HTTP layer never hardcodes the cookie name.
	// Env: APP_SESSION_NAME
	SessionName string `env:"SESSION_NAME"`

	// SessionDuration is how long a session remains valid after creation
	// (e.g. "1h", "30m"). Zero or negative means sessions never expire.
	// Env: APP_SESSION_DURATION
	SessionDuration time.Duration `env:"SESSION_DURATION"`

	// SessionStore selects the session registry variant:
	// "memory" (default) or "db".
	// Env: APP_SESSION_STORE
	SessionStore string `env:"SESSION_STORE"`

	// AuthType selects the guard for authenticated routes:
	// "session_auth" (default) or "basic_auth".
	// Env: APP_AUTH_TYPE
	AuthType string `env:"AUTH_TYPE"`
}

// Storage groups the configuration for the persistence backend.
type Storage struct {
	// DB holds the relational database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the relational database backend.
type DB struct {
	// DSN is the Data Source Name used to open the database connection.
	// A "postgres://" (or "postgresql://") URI selects the PostgreSQL
	// backend; any other value is treated as a SQLite file path, which is
	// created on first start when absent.
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Server holds network and timeout settings for the inbound transport layer.
type Server struct {
	// HTTPAddress is the TCP address on which the HTTP server listens,
	// in "host:port" format (e.g. "0.0.0.0:8080").
	// Env: SERVER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout is the maximum duration allowed for a single inbound
	// request before the server cancels it (e.g. "30s", "1m").
	// Env: SERVER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (first non-zero value wins):
//  1. Environment variables
//  2. Command-line flags
//  3. JSON file (path resolved from sources 1 and 2)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withEnv().
		withFlags().
		withJSON().
		build()
}
