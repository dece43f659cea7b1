package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Yemmy22/alx-backend-user-data/internal/logger"
	"github.com/Yemmy22/alx-backend-user-data/models"
)

// sessionRepository is the SQL-backed implementation of [SessionRepository].
// It persists session records in the "sessions" table so that sessions
// survive process restarts. Expiry is never evaluated here; the registry
// layer applies its duration policy to the record's creation timestamp.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists the session record exactly as given, including its
// creation timestamp (the registry owns the clock).
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) error {
	log := logger.FromContext(ctx)

	_, err := r.db.ExecContext(ctx, createSession, session.SessionID, session.UserID, session.CreatedAt)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: inserting session failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	return nil
}

// FindSessionByID retrieves the session record with the given identifier.
//
// Error handling:
//   - Empty result set → [ErrSessionNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *sessionRepository) FindSessionByID(ctx context.Context, sessionID string) (models.Session, error) {
	log := logger.FromContext(ctx)

	var session models.Session
	row := r.db.QueryRowContext(ctx, findSessionByID, sessionID)

	err := row.Scan(&session.SessionID, &session.UserID, &session.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrSessionNotFound
		}

		log.Err(err).Str("func", "*sessionRepository.FindSessionByID").Msg("error: scanning session failed")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return session, nil
}

// DeleteSession removes the session record and reports whether a row was
// actually removed. Deleting a nonexistent session is not an error.
func (r *sessionRepository) DeleteSession(ctx context.Context, sessionID string) (bool, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, deleteSession, sessionID)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error: deleting session failed")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSession").Msg("error: reading affected rows failed")
		return false, fmt.Errorf("unexpected DB error: %w", err)
	}

	return affected > 0, nil
}
