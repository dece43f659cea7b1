package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yemmy22/alx-backend-user-data/internal/config"
	"github.com/Yemmy22/alx-backend-user-data/internal/logger"
	"github.com/Yemmy22/alx-backend-user-data/internal/service"
	"github.com/Yemmy22/alx-backend-user-data/models"
)

// TestInit_WelcomeRoute drives the full router to make sure the middleware
// chain and the public group are wired.
func TestInit_WelcomeRoute(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(traceIDHeader))
}

// TestInit_GuardedRoutes verifies the authenticated group rejects anonymous
// requests under both guard configurations.
func TestInit_GuardedRoutes(t *testing.T) {
	tests := []struct {
		name     string
		authType string
	}{
		{name: "session guard", authType: config.AuthTypeSession},
		{name: "basic guard", authType: config.AuthTypeBasic},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				userFromSessionFn: func(_ context.Context, _ string) (models.User, error) {
					return models.User{}, nil
				},
				userFromCredentialsFn: func(_ context.Context, _, _ string) (models.User, error) {
					return models.User{}, nil
				},
			}
			svcs := &service.Services{AuthService: auth}
			cfg := config.App{SessionName: testSessionName, AuthType: tt.authType}
			router := NewHandler(svcs, cfg, logger.Nop()).Init()

			req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
			rec := httptest.NewRecorder()

			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

// TestInit_BasicGuardAllowsCredentialedRequest verifies that the basic_auth
// configuration resolves the user from the Authorization header.
func TestInit_BasicGuardAllowsCredentialedRequest(t *testing.T) {
	auth := &mockAuthService{
		userFromCredentialsFn: func(_ context.Context, email, _ string) (models.User, error) {
			return models.User{UserID: 1, Email: email}, nil
		},
	}
	svcs := &service.Services{AuthService: auth}
	cfg := config.App{SessionName: testSessionName, AuthType: config.AuthTypeBasic}
	router := NewHandler(svcs, cfg, logger.Nop()).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.SetBasicAuth("bob@bob.com", "MyPwd")
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}
