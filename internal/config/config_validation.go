package config

// Default values applied after all sources are merged. The SQLite file
// default keeps the service runnable with zero configuration.
const (
	defaultHTTPAddress    = "localhost:8080"
	defaultDSN            = "a.db"
	defaultSessionName    = "_my_session_id"
	defaultSessionStore   = SessionStoreMemory
	defaultAuthType       = AuthTypeSession
	defaultRequestTimeout = 0 // no per-request deadline unless configured
)

// applyDefaults fills in default values for fields left empty by every
// configuration source. It never overrides an explicitly provided value.
func (cfg *StructuredConfig) applyDefaults() {
	if cfg.Server.HTTPAddress == "" {
		cfg.Server.HTTPAddress = defaultHTTPAddress
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = defaultDSN
	}
	if cfg.App.SessionName == "" {
		cfg.App.SessionName = defaultSessionName
	}
	if cfg.App.SessionStore == "" {
		cfg.App.SessionStore = defaultSessionStore
	}
	if cfg.App.AuthType == "" {
		cfg.App.AuthType = defaultAuthType
	}
}

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// Returns nil if the configuration is valid, or a descriptive error otherwise.
func (cfg *StructuredConfig) validate() error {
	switch cfg.App.AuthType {
	case AuthTypeSession, AuthTypeBasic:
	default:
		return ErrInvalidAuthType
	}

	switch cfg.App.SessionStore {
	case SessionStoreMemory, SessionStoreDB:
	default:
		return ErrInvalidSessionStore
	}

	return nil
}
