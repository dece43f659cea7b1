package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/Yemmy22/alx-backend-user-data/internal/config"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Get("/", h.welcome)
		r.Post("/api/user/register", h.register)
		r.Post("/api/user/login", h.login)
		r.Post("/api/user/reset_password", h.issueResetToken)
		r.Put("/api/user/reset_password", h.updatePassword)
	})

	// routes guarded by the configured authentication scheme
	router.Group(func(r chi.Router) {
		r.Use(h.guard())
		r.Get("/api/user/profile", h.profile)
		r.Delete("/api/user/logout", h.logout)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}

// guard returns the authentication middleware selected by AuthType.
// Config validation guarantees the value is one of the two known schemes.
func (h *Handler) guard() func(next http.Handler) http.Handler {
	if h.cfg.AuthType == config.AuthTypeBasic {
		return h.basicAuth
	}

	return h.sessionAuth
}
