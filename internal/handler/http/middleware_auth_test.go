package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Yemmy22/alx-backend-user-data/internal/store"
	"github.com/Yemmy22/alx-backend-user-data/internal/utils"
	"github.com/Yemmy22/alx-backend-user-data/models"
)

// nextCapturingUser returns a terminal handler that records the user the
// middleware stored in the request context.
func nextCapturingUser(called *bool, got *models.User) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		*called = true
		if user, ok := utils.GetUserFromContext(r.Context()); ok {
			*got = user
		}
		w.WriteHeader(http.StatusOK)
	})
}

func TestSessionAuth_Success(t *testing.T) {
	auth := &mockAuthService{
		userFromSessionFn: func(_ context.Context, sessionID string) (models.User, error) {
			require.Equal(t, "session-id-1", sessionID)
			return bobUser, nil
		},
	}
	h := newHandlerWithAuth(t, auth)

	var called bool
	var got models.User

	req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
	req.AddCookie(&http.Cookie{Name: testSessionName, Value: "session-id-1"})
	rec := httptest.NewRecorder()

	h.sessionAuth(nextCapturingUser(&called, &got)).ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, called)
	assert.Equal(t, bobUser, got)
}

func TestSessionAuth_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		cookie *http.Cookie
	}{
		{name: "no cookie"},
		{name: "empty cookie value", cookie: &http.Cookie{Name: testSessionName, Value: ""}},
		{name: "stale session", cookie: &http.Cookie{Name: testSessionName, Value: "stale-session-id"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				userFromSessionFn: func(_ context.Context, _ string) (models.User, error) {
					return models.User{}, store.ErrNoUserWasFound
				},
			}
			h := newHandlerWithAuth(t, auth)

			var called bool
			var got models.User

			req := httptest.NewRequest(http.MethodGet, "/api/user/profile", nil)
			if tt.cookie != nil {
				req.AddCookie(tt.cookie)
			}
			rec := httptest.NewRecorder()

			h.sessionAuth(nextCapturingUser(&called, &got)).ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.False(t, called)
		})
	}
}
