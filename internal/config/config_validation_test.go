package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestApplyDefaults_EmptyConfig verifies that a zero config receives all
// documented defaults.
func TestApplyDefaults_EmptyConfig(t *testing.T) {
	cfg := &StructuredConfig{}
	cfg.applyDefaults()

	assert.Equal(t, defaultHTTPAddress, cfg.Server.HTTPAddress)
	assert.Equal(t, defaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, defaultSessionName, cfg.App.SessionName)
	assert.Equal(t, SessionStoreMemory, cfg.App.SessionStore)
	assert.Equal(t, AuthTypeSession, cfg.App.AuthType)
}

// TestApplyDefaults_DoesNotOverride verifies that explicit values survive the
// defaulting pass.
func TestApplyDefaults_DoesNotOverride(t *testing.T) {
	cfg := &StructuredConfig{
		App: App{
			SessionName:     "_explicit",
			SessionDuration: time.Hour,
			SessionStore:    SessionStoreDB,
			AuthType:        AuthTypeBasic,
		},
		Storage: Storage{DB: DB{DSN: "postgres://localhost/auth"}},
		Server:  Server{HTTPAddress: "0.0.0.0:1234"},
	}
	cfg.applyDefaults()

	assert.Equal(t, "_explicit", cfg.App.SessionName)
	assert.Equal(t, SessionStoreDB, cfg.App.SessionStore)
	assert.Equal(t, AuthTypeBasic, cfg.App.AuthType)
	assert.Equal(t, "postgres://localhost/auth", cfg.Storage.DB.DSN)
	assert.Equal(t, "0.0.0.0:1234", cfg.Server.HTTPAddress)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		app     App
		wantErr error
	}{
		{
			name: "valid session auth with memory store",
			app:  App{AuthType: AuthTypeSession, SessionStore: SessionStoreMemory},
		},
		{
			name: "valid basic auth with db store",
			app:  App{AuthType: AuthTypeBasic, SessionStore: SessionStoreDB},
		},
		{
			name:    "unknown auth type",
			app:     App{AuthType: "oauth", SessionStore: SessionStoreMemory},
			wantErr: ErrInvalidAuthType,
		},
		{
			name:    "unknown session store",
			app:     App{AuthType: AuthTypeSession, SessionStore: "redis"},
			wantErr: ErrInvalidSessionStore,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{App: tt.app}
			err := cfg.validate()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}
