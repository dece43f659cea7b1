package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"

	"github.com/Yemmy22/alx-backend-user-data/internal/logger"
	"github.com/Yemmy22/alx-backend-user-data/models"
)

func newTestSessionRepo(t *testing.T) (*sessionRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &sessionRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestCreateSession_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	session := models.Session{
		SessionID: "sess-1",
		UserID:    7,
		CreatedAt: time.Now().UTC(),
	}

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(session.SessionID, session.UserID, session.CreatedAt).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.CreateSession(context.Background(), session); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestCreateSession_DBError(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO sessions").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	err := repo.CreateSession(context.Background(), models.Session{SessionID: "sess-1", UserID: 7})
	if err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestFindSessionByID_Success(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	createdAt := time.Now().UTC().Add(-time.Minute)
	rows := sqlmock.
		NewRows([]string{"session_id", "user_id", "created_at"}).
		AddRow("sess-1", 7, createdAt)

	mock.ExpectQuery("SELECT session_id, user_id, created_at FROM sessions").
		WithArgs("sess-1").
		WillReturnRows(rows)

	session, err := repo.FindSessionByID(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if session.UserID != 7 {
		t.Errorf("expected UserID=7, got %d", session.UserID)
	}
	if !session.CreatedAt.Equal(createdAt) {
		t.Errorf("expected CreatedAt=%v, got %v", createdAt, session.CreatedAt)
	}
}

func TestFindSessionByID_NotFound(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectQuery("SELECT session_id, user_id, created_at FROM sessions").
		WithArgs("missing").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.FindSessionByID(context.Background(), "missing")
	if !errors.Is(err, ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteSession_Removed(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("sess-1").
		WillReturnResult(sqlmock.NewResult(0, 1))

	removed, err := repo.DeleteSession(context.Background(), "sess-1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !removed {
		t.Error("expected removed=true")
	}
}

func TestDeleteSession_NothingToRemove(t *testing.T) {
	repo, mock, db := newTestSessionRepo(t)
	defer db.Close()

	mock.ExpectExec("DELETE FROM sessions").
		WithArgs("missing").
		WillReturnResult(sqlmock.NewResult(0, 0))

	removed, err := repo.DeleteSession(context.Background(), "missing")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if removed {
		t.Error("expected removed=false for nonexistent session")
	}
}
