package http

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestCheckHTTPMethod verifies that an unsupported method on a known route
// yields 404 instead of chi's default 405.
func TestCheckHTTPMethod(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodDelete, "/api/user/register", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCheckHTTPMethod_UnknownRoute(t *testing.T) {
	h := newHandlerWithAuth(t, &mockAuthService{})
	router := h.Init()

	req := httptest.NewRequest(http.MethodGet, "/api/user/unknown", nil)
	rec := httptest.NewRecorder()

	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
