package http

import (
	"context"
	"encoding/base64"
	"errors"
	"net/http"
	"strings"

	"github.com/Yemmy22/alx-backend-user-data/internal/logger"
	"github.com/Yemmy22/alx-backend-user-data/internal/service"
	"github.com/Yemmy22/alx-backend-user-data/internal/store"
	"github.com/Yemmy22/alx-backend-user-data/internal/utils"
)

// basicAuth is an HTTP middleware that enforces Basic authentication.
//
// It parses the "Authorization" header, validates the credentials via
// [service.AuthService.UserFromCredentials], and — on success — stores the
// authenticated user in the request context under [utils.UserCtxKey] before
// delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized when:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header does not carry the "Basic " scheme or its payload is not
//     valid base64 ([ErrInvalidAuthorizationHeader]).
//   - The decoded payload has no colon separator ([ErrMalformedCredentials]).
//   - The email is unknown or the password is wrong.
func (h *Handler) basicAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		email, password, err := credentialsFromBasicHeader(r.Header.Get("Authorization"))
		if err != nil {
			log.Err(err).Send()
			http.Error(w, err.Error(), http.StatusUnauthorized)
			return
		}

		ctx := r.Context()
		user, err := h.services.AuthService.UserFromCredentials(ctx, email, password)
		if err != nil {
			switch {
			case errors.Is(err, store.ErrNoUserWasFound), errors.Is(err, service.ErrWrongPassword):
				log.Warn().Str("email", email).Msg("invalid basic credentials")
				http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
				return
			default:
				log.Err(err).Msg("error occurred during credential validation")
				http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
				return
			}
		}

		ctx = context.WithValue(ctx, utils.UserCtxKey, user)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// credentialsFromBasicHeader extracts the email/password pair from a raw
// "Authorization" HTTP header value.
//
// The header is expected to follow the standard format:
//
//	Authorization: Basic base64(email:password)
//
// Only the first colon separates the email from the password, so passwords
// may themselves contain colons.
//
// It returns the following sentinel errors:
//   - [ErrEmptyAuthorizationHeader] — if the header is empty.
//   - [ErrInvalidAuthorizationHeader] — if the scheme is not "Basic" or the
//     payload is not valid base64.
//   - [ErrMalformedCredentials] — if the decoded payload has no colon.
func credentialsFromBasicHeader(authHeader string) (string, string, error) {
	if authHeader == "" {
		return "", "", ErrEmptyAuthorizationHeader
	}

	const scheme = "Basic "
	if !strings.HasPrefix(authHeader, scheme) {
		return "", "", ErrInvalidAuthorizationHeader
	}

	decoded, err := base64.StdEncoding.DecodeString(strings.TrimPrefix(authHeader, scheme))
	if err != nil {
		return "", "", ErrInvalidAuthorizationHeader
	}

	email, password, found := strings.Cut(string(decoded), ":")
	if !found {
		return "", "", ErrMalformedCredentials
	}

	return email, password, nil
}
