package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/Yemmy22/alx-backend-user-data/internal/store"
	"github.com/Yemmy22/alx-backend-user-data/models"
)

// storeRegistry is the durable implementation of [Registry]. Session records
// are persisted through a [store.SessionRepository] and therefore survive
// process restarts. The expiry arithmetic is identical to the in-memory
// expiring variant, evaluated against the durable record's creation
// timestamp.
type storeRegistry struct {
	sessions store.SessionRepository

	ids      IDGenerator
	duration time.Duration
	now      func() time.Time
}

// NewStoreRegistry constructs a registry persisting sessions via sessions.
// A duration <= 0 means persisted sessions never expire.
func NewStoreRegistry(sessions store.SessionRepository, ids IDGenerator, duration time.Duration) Registry {
	return &storeRegistry{
		sessions: sessions,
		ids:      ids,
		duration: duration,
		now:      time.Now,
	}
}

// Create implements [Registry]. The registry owns the clock: the creation
// timestamp is assigned here and persisted verbatim.
func (r *storeRegistry) Create(ctx context.Context, userID int64) (string, error) {
	if userID <= 0 {
		return "", ErrInvalidUserID
	}

	session := models.Session{
		SessionID: r.ids.Generate(),
		UserID:    userID,
		CreatedAt: r.now().UTC(),
	}

	if err := r.sessions.CreateSession(ctx, session); err != nil {
		return "", fmt.Errorf("error persisting session: %w", err)
	}

	return session.SessionID, nil
}

// Resolve implements [Registry].
func (r *storeRegistry) Resolve(ctx context.Context, sessionID string) (int64, error) {
	if sessionID == "" {
		return 0, ErrSessionNotFound
	}

	session, err := r.sessions.FindSessionByID(ctx, sessionID)
	if err != nil {
		if errors.Is(err, store.ErrSessionNotFound) {
			return 0, ErrSessionNotFound
		}

		return 0, fmt.Errorf("error looking up session: %w", err)
	}

	if expired(session.CreatedAt, r.now(), r.duration) {
		return 0, ErrSessionExpired
	}

	return session.UserID, nil
}

// Destroy implements [Registry].
func (r *storeRegistry) Destroy(ctx context.Context, sessionID string) (bool, error) {
	if sessionID == "" {
		return false, nil
	}

	removed, err := r.sessions.DeleteSession(ctx, sessionID)
	if err != nil {
		return false, fmt.Errorf("error deleting session: %w", err)
	}

	return removed, nil
}
