package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/Yemmy22/alx-backend-user-data/internal/crypto"
	"github.com/Yemmy22/alx-backend-user-data/internal/logger"
	"github.com/Yemmy22/alx-backend-user-data/internal/session"
	"github.com/Yemmy22/alx-backend-user-data/internal/store"
	"github.com/Yemmy22/alx-backend-user-data/models"
)

// authService is the concrete implementation of AuthService.
// It composes bcrypt credential hashing, a UserRepository for account
// persistence, and the session registry variant selected at startup.
type authService struct {
	// users is the data-access layer used to create, look up, and update
	// user accounts.
	users store.UserRepository

	// sessions is the active session registry variant. Its expiry policy
	// and persistence are fixed at construction time.
	sessions session.Registry

	// tokens generates opaque single-use reset tokens.
	tokens TokenGenerator

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs an AuthService wired to the given repositories
// and session registry.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(users store.UserRepository, sessions session.Registry, tokens TokenGenerator, logger *logger.Logger) AuthService {
	a := &authService{
		users:    users,
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
	a.logger.Debug().Msg("auth service created")

	return a
}

// Register creates a new user account.
//
// It hashes the password with bcrypt and delegates persistence to the
// UserRepository. The password may be empty; the hasher imposes no lower
// bound on input length.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if the email is empty.
//   - ErrAlreadyRegistered if a user with that email exists. The existing
//     record is unaffected.
func (a *authService) Register(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" {
		log.Error().Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	if _, err := a.users.FindUserBy(ctx, map[string]any{"email": email}); err == nil {
		log.Warn().Str("email", email).Msg("registration rejected: email taken")
		return models.User{}, ErrAlreadyRegistered
	} else if !errors.Is(err, store.ErrNoUserWasFound) {
		log.Err(err).Str("email", email).Msg("user lookup before registration failed")
		return models.User{}, fmt.Errorf("user lookup before registration failed: %w", err)
	}

	hashedPassword, err := crypto.HashPassword(password)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	registeredUser, err := a.users.CreateUser(ctx, email, hashedPassword)
	if err != nil {
		// the uniqueness constraint closes the check-then-create race
		if errors.Is(err, store.ErrEmailAlreadyExists) {
			return models.User{}, ErrAlreadyRegistered
		}

		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// ValidLogin reports whether the credentials identify a stored account.
// An unknown email yields (false, nil); the bcrypt comparison decides the
// rest. Only storage failures surface as errors.
func (a *authService) ValidLogin(ctx context.Context, email, password string) (bool, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.FindUserBy(ctx, map[string]any{"email": email})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return false, nil
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return false, fmt.Errorf("user search by email failed: %w", err)
	}

	return crypto.CheckPassword(user.HashedPassword, password), nil
}

// UserFromCredentials resolves credentials to the stored account, for callers
// that need the user record and not just a yes/no answer (the Basic auth
// guard).
//
// Returns:
//   - store.ErrNoUserWasFound for an unknown email.
//   - ErrWrongPassword when the bcrypt check fails.
func (a *authService) UserFromCredentials(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.FindUserBy(ctx, map[string]any{"email": email})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, store.ErrNoUserWasFound
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !crypto.CheckPassword(user.HashedPassword, password) {
		return models.User{}, ErrWrongPassword
	}

	return user, nil
}

// CreateSession opens a session for the user registered under email.
//
// The identifier produced by the registry is also persisted onto the user
// record so that the user row and the registry agree on the live session.
//
// Returns the session identifier or:
//   - store.ErrNoUserWasFound if no user has that email.
//   - A wrapped registry or storage error otherwise.
func (a *authService) CreateSession(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.FindUserBy(ctx, map[string]any{"email": email})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return "", store.ErrNoUserWasFound
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	sessionID, err := a.sessions.Create(ctx, user.UserID)
	if err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("session creation failed")
		return "", fmt.Errorf("session creation failed: %w", err)
	}

	if err := a.users.UpdateUser(ctx, user.UserID, map[string]any{"session_id": sessionID}); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("persisting session id onto user failed")
		return "", fmt.Errorf("persisting session id onto user failed: %w", err)
	}

	return sessionID, nil
}

// UserFromSession resolves a session identifier to its owning user.
//
// Both an unknown/expired session and a dangling user lookup are reported as
// store.ErrNoUserWasFound; the HTTP layer treats them uniformly as an
// unauthenticated request.
func (a *authService) UserFromSession(ctx context.Context, sessionID string) (models.User, error) {
	log := logger.FromContext(ctx)

	userID, err := a.sessions.Resolve(ctx, sessionID)
	if err != nil {
		switch {
		case errors.Is(err, session.ErrSessionExpired):
			log.Debug().Str("session_id", sessionID).Msg("session expired")
			return models.User{}, store.ErrNoUserWasFound
		case errors.Is(err, session.ErrSessionNotFound):
			return models.User{}, store.ErrNoUserWasFound
		default:
			log.Err(err).Msg("session resolution failed")
			return models.User{}, fmt.Errorf("session resolution failed: %w", err)
		}
	}

	user, err := a.users.FindUserBy(ctx, map[string]any{"id": userID})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return models.User{}, store.ErrNoUserWasFound
		}

		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return models.User{}, fmt.Errorf("user search by id failed: %w", err)
	}

	return user, nil
}

// DestroySession ends any session association for the user.
//
// The operation is idempotent: an unknown user id or an absent session is a
// no-op, never an error. Only unexpected storage failures surface.
func (a *authService) DestroySession(ctx context.Context, userID int64) error {
	log := logger.FromContext(ctx)

	if userID <= 0 {
		return nil
	}

	user, err := a.users.FindUserBy(ctx, map[string]any{"id": userID})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return nil
		}

		log.Err(err).Int64("id", userID).Msg("user search by id failed")
		return fmt.Errorf("user search by id failed: %w", err)
	}

	if user.SessionID != "" {
		if _, err := a.sessions.Destroy(ctx, user.SessionID); err != nil {
			log.Err(err).Int64("id", userID).Msg("session destruction failed")
			return fmt.Errorf("session destruction failed: %w", err)
		}
	}

	if err := a.users.UpdateUser(ctx, userID, map[string]any{"session_id": nil}); err != nil {
		log.Err(err).Int64("id", userID).Msg("clearing session id on user failed")
		return fmt.Errorf("clearing session id on user failed: %w", err)
	}

	return nil
}

// IssueResetToken generates a fresh opaque reset token for the user and
// persists it, overwriting any prior token. At most one token is outstanding
// per user at any time.
//
// Returns store.ErrNoUserWasFound for an unknown email.
func (a *authService) IssueResetToken(ctx context.Context, email string) (string, error) {
	log := logger.FromContext(ctx)

	user, err := a.users.FindUserBy(ctx, map[string]any{"email": email})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return "", store.ErrNoUserWasFound
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return "", fmt.Errorf("user search by email failed: %w", err)
	}

	resetToken := a.tokens.Generate()
	if err := a.users.UpdateUser(ctx, user.UserID, map[string]any{"reset_token": resetToken}); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("persisting reset token failed")
		return "", fmt.Errorf("persisting reset token failed: %w", err)
	}

	return resetToken, nil
}

// ConsumeResetToken sets a new password for the user if token matches the
// outstanding reset token, then clears the token so a second consume fails.
//
// Returns:
//   - store.ErrNoUserWasFound for an unknown email.
//   - ErrInvalidResetToken when the token is empty, already consumed, or
//     does not match.
func (a *authService) ConsumeResetToken(ctx context.Context, email, token, newPassword string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return ErrInvalidResetToken
	}

	user, err := a.users.FindUserBy(ctx, map[string]any{"email": email})
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			return store.ErrNoUserWasFound
		}

		log.Err(err).Str("email", email).Msg("user search by email failed")
		return fmt.Errorf("user search by email failed: %w", err)
	}

	if user.ResetToken == "" || user.ResetToken != token {
		log.Warn().Int64("id", user.UserID).Msg("reset token mismatch")
		return ErrInvalidResetToken
	}

	hashedPassword, err := crypto.HashPassword(newPassword)
	if err != nil {
		log.Err(err).Msg("password hashing failed")
		return fmt.Errorf("password hashing failed: %w", err)
	}

	fields := map[string]any{
		"hashed_password": hashedPassword,
		"reset_token":     nil,
	}
	if err := a.users.UpdateUser(ctx, user.UserID, fields); err != nil {
		log.Err(err).Int64("id", user.UserID).Msg("persisting new password failed")
		return fmt.Errorf("persisting new password failed: %w", err)
	}

	return nil
}
