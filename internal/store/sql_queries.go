package store

import (
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, hashed_password, created_at)
    VALUES ($1, $2, $3)
    RETURNING id;`

	createSession = `INSERT INTO sessions (session_id, user_id, created_at)
    VALUES ($1, $2, $3);`

	findSessionByID = `SELECT session_id, user_id, created_at
    FROM sessions
    WHERE session_id = $1;`

	deleteSession = `DELETE FROM sessions
    WHERE session_id = $1;`
)

// userColumns is the column list scanned into models.User, in scan order.
var userColumns = []string{"id", "email", "hashed_password", "session_id", "reset_token", "created_at"}

// userQueryableColumns are the columns accepted as FindUserBy criteria.
var userQueryableColumns = map[string]bool{
	"id":          true,
	"email":       true,
	"session_id":  true,
	"reset_token": true,
}

// userUpdatableColumns are the columns accepted as UpdateUser fields.
// The identifier is immutable and therefore absent.
var userUpdatableColumns = map[string]bool{
	"email":           true,
	"hashed_password": true,
	"session_id":      true,
	"reset_token":     true,
}

// buildFindUserQuery builds a SELECT for an exact match on all criteria.
// The result is limited to the first row in insertion order, which defines
// the behavior when a non-unique column (session_id) matches several rows.
//
// Returns ErrNoCriteriaProvided for an empty criteria set and ErrInvalidField
// when a criterion names an unknown column.
func buildFindUserQuery(criteria map[string]any) (string, []any, error) {
	if len(criteria) == 0 {
		return "", nil, ErrNoCriteriaProvided
	}

	eq := sq.Eq{}
	for field, value := range criteria {
		if !userQueryableColumns[field] {
			return "", nil, ErrInvalidField
		}
		eq[field] = value
	}

	query, args, err := sq.
		Select(userColumns...).
		From("users").
		Where(eq).
		OrderBy("id ASC").
		Limit(1).
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, ErrBuildingSQLQuery
	}

	return query, args, nil
}

// buildUpdateUserQuery builds an UPDATE setting the named columns on the
// identified record. A nil value stores SQL NULL.
//
// Returns ErrNoFieldsProvided for an empty field set and ErrInvalidField
// when a field names an unknown or immutable column.
func buildUpdateUserQuery(userID int64, fields map[string]any) (string, []any, error) {
	if len(fields) == 0 {
		return "", nil, ErrNoFieldsProvided
	}

	builder := sq.Update("users").PlaceholderFormat(sq.Dollar)
	for field, value := range fields {
		if !userUpdatableColumns[field] {
			return "", nil, ErrInvalidField
		}
		builder = builder.Set(field, value)
	}

	query, args, err := builder.Where(sq.Eq{"id": userID}).ToSql()
	if err != nil {
		return "", nil, ErrBuildingSQLQuery
	}

	return query, args, nil
}
