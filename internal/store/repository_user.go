package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Yemmy22/alx-backend-user-data/internal/logger"
	"github.com/Yemmy22/alx-backend-user-data/models"
)

// userRepository is the SQL-backed implementation of [UserRepository].
// It handles user account creation, lookup, and partial updates against the
// "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with its server-assigned identifier.
//
// Error handling:
//   - Uniqueness violation on email → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, email, hashedPassword string) (models.User, error) {
	log := logger.FromContext(ctx)

	user := models.User{
		Email:          email,
		HashedPassword: hashedPassword,
		CreatedAt:      time.Now().UTC(),
	}

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.HashedPassword, user.CreatedAt)

	if err := row.Scan(&user.UserID); err != nil {
		if isUniqueViolation(err) {
			return models.User{}, ErrEmailAlreadyExists
		}

		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: inserting user failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return user, nil
}

// FindUserBy retrieves the first user record (in insertion order) matching
// all given criteria exactly.
//
// Error handling:
//   - Empty criteria → [ErrNoCriteriaProvided].
//   - Unknown column in criteria → [ErrInvalidField].
//   - Empty result set → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) FindUserBy(ctx context.Context, criteria map[string]any) (models.User, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindUserQuery(criteria)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserBy").Msg("error: building query failed")
		return models.User{}, err
	}

	row := r.db.QueryRowContext(ctx, query, args...)

	var foundUser models.User
	var sessionID, resetToken sql.NullString
	err = row.Scan(
		&foundUser.UserID,
		&foundUser.Email,
		&foundUser.HashedPassword,
		&sessionID,
		&resetToken,
		&foundUser.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}

		log.Err(err).Str("func", "*userRepository.FindUserBy").Msg("error: scanning user failed")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	foundUser.SessionID = sessionID.String
	foundUser.ResetToken = resetToken.String

	return foundUser, nil
}

// UpdateUser sets the named columns on the identified record. Each call is a
// single UPDATE statement, immediately durable.
//
// Error handling:
//   - Empty field set → [ErrNoFieldsProvided].
//   - Unknown or immutable column → [ErrInvalidField].
//   - Nonexistent user id → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) UpdateUser(ctx context.Context, userID int64, fields map[string]any) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateUserQuery(userID, fields)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: building query failed")
		return err
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: executing update failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		log.Err(err).Str("func", "*userRepository.UpdateUser").Msg("error: reading affected rows failed")
		return fmt.Errorf("unexpected DB error: %w", err)
	}

	if affected == 0 {
		return ErrNoUserWasFound
	}

	return nil
}
