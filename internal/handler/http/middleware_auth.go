// Package http implements the HTTP transport layer of the application.
// It provides middleware, route handlers, and request/response utilities
// for the REST API. Authentication, logging, and tracing concerns are all
// handled at this layer before requests are forwarded to the service layer.
package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/Yemmy22/alx-backend-user-data/internal/logger"
	"github.com/Yemmy22/alx-backend-user-data/internal/store"
	"github.com/Yemmy22/alx-backend-user-data/internal/utils"
)

// sessionAuth is an HTTP middleware that enforces session-cookie
// authentication.
//
// It reads the session cookie (name taken from config), resolves it via
// [service.AuthService.UserFromSession], and — on success — stores the
// authenticated user in the request context under [utils.UserCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The session cookie is absent or empty.
//   - The session is unknown, expired, or its user no longer resolves.
//
// All rejection events are logged using the context-scoped logger obtained
// via [logger.FromRequest].
func (h *Handler) sessionAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(h.cfg.SessionName)
		if err != nil || cookie.Value == "" {
			log.Warn().Msg("no session cookie")
			http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.UserFromSession(ctx, cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNoUserWasFound):
				log.Warn().Msg("unknown or expired session")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during session resolution")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		// Store the authenticated user in the context so that downstream
		// handlers can retrieve it without resolving the session again.
		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
