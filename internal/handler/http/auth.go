package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/Yemmy22/alx-backend-user-data/internal/logger"
	"github.com/Yemmy22/alx-backend-user-data/internal/service"
	"github.com/Yemmy22/alx-backend-user-data/internal/store"
	"github.com/Yemmy22/alx-backend-user-data/internal/utils"
)

// credentials is the JSON request body shared by the register, login, and
// reset-password endpoints.
type credentials struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	ResetToken  string `json:"reset_token,omitempty"`
	NewPassword string `json:"new_password,omitempty"`
}

func (h *Handler) welcome(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, map[string]string{"message": "Bienvenue"}, http.StatusOK)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	registeredUser, err := h.services.AuthService.Register(ctx, creds.Email, creds.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided):
			log.Err(err).Msg("invalid data provided")
			http.Error(w, "invalid data provided", http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrAlreadyRegistered):
			log.Err(err).Msg("email already registered")
			utils.WriteJSON(w, map[string]string{"message": "email already registered"}, http.StatusBadRequest)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	log.Debug().Int64("id", registeredUser.UserID).Msg("user successfully registered")

	utils.WriteJSON(w, map[string]string{
		"email":   registeredUser.Email,
		"message": "user created",
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	email, password, err := h.loginCredentials(r)
	if err != nil {
		log.Err(err).Msg("no credentials provided")
		http.Error(w, "no credentials provided", http.StatusBadRequest)
		return
	}

	valid, err := h.services.AuthService.ValidLogin(ctx, email, password)
	if err != nil {
		log.Err(err).Msg("unexpected error occurred during login validation")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}
	if !valid {
		log.Warn().Str("email", email).Msg("invalid email/password")
		http.Error(w, "invalid email/password", http.StatusUnauthorized)
		return
	}

	sessionID, err := h.services.AuthService.CreateSession(ctx, email)
	if err != nil {
		log.Err(err).Msg("creation of session failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, h.sessionCookie(sessionID))

	log.Debug().Str("email", email).Msg("user successfully logged in")

	utils.WriteJSON(w, map[string]string{"email": email}, http.StatusOK)
}

// loginCredentials extracts the email/password pair from the JSON body, or
// from the Basic Authorization header when the body carries no email.
func (h *Handler) loginCredentials(r *http.Request) (string, string, error) {
	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err == nil && creds.Email != "" {
		return creds.Email, creds.Password, nil
	}

	return credentialsFromBasicHeader(r.Header.Get("Authorization"))
}

// sessionCookie builds the session cookie. The cookie name comes from config;
// a finite session duration bounds the cookie lifetime as well.
func (h *Handler) sessionCookie(sessionID string) *http.Cookie {
	cookie := &http.Cookie{
		Name:     h.cfg.SessionName,
		Value:    sessionID,
		Path:     "/",
		HttpOnly: true,
	}
	if h.cfg.SessionDuration > 0 {
		cookie.Expires = time.Now().Add(h.cfg.SessionDuration)
	}

	return cookie
}

func (h *Handler) logout(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	user, ok := utils.GetUserFromContext(ctx)
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	if err := h.services.AuthService.DestroySession(ctx, user.UserID); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("session destruction failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     h.cfg.SessionName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	user, ok := utils.GetUserFromContext(r.Context())
	if !ok {
		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, map[string]string{"email": user.Email}, http.StatusOK)
}

func (h *Handler) issueResetToken(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	resetToken, err := h.services.AuthService.IssueResetToken(ctx, creds.Email)
	if err != nil {
		switch {
		case errors.Is(err, store.ErrNoUserWasFound):
			log.Warn().Str("email", creds.Email).Msg("reset token requested for unregistered email")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during reset token generation")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, map[string]string{
		"email":       creds.Email,
		"reset_token": resetToken,
	}, http.StatusOK)
}

func (h *Handler) updatePassword(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var creds credentials
	if err := json.NewDecoder(r.Body).Decode(&creds); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	err := h.services.AuthService.ConsumeResetToken(ctx, creds.Email, creds.ResetToken, creds.NewPassword)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidResetToken), errors.Is(err, store.ErrNoUserWasFound):
			log.Warn().Str("email", creds.Email).Msg("password update rejected")
			http.Error(w, http.StatusText(http.StatusForbidden), http.StatusForbidden)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during password update")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, map[string]string{
		"email":   creds.Email,
		"message": "Password updated",
	}, http.StatusOK)
}
