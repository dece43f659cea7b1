package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/Yemmy22/alx-backend-user-data/internal/config"
	"github.com/Yemmy22/alx-backend-user-data/internal/logger"
)

// Storages bundles the database connection and the repositories built on it.
// It is constructed once at startup and injected into the service layer.
type Storages struct {
	DB                *DB
	UserRepository    UserRepository
	SessionRepository SessionRepository
}

// NewStorages opens the database connection selected by the DSN, applies
// pending migrations, and wires the repositories.
//
// A "postgres://" or "postgresql://" DSN selects the PostgreSQL backend;
// any other value is treated as a SQLite file path (created when absent),
// matching the zero-configuration default.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	var db *DB
	var err error

	if isPostgresDSN(cfg.DB.DSN) {
		db, err = NewConnectPostgres(ctx, cfg.DB, log)
	} else {
		db, err = NewConnectSQLite(ctx, cfg.DB, log)
	}
	if err != nil {
		return nil, fmt.Errorf("error connecting storage: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating storage: %w", err)
	}

	return &Storages{
		DB:                db,
		UserRepository:    NewUserRepository(db, log),
		SessionRepository: NewSessionRepository(db, log),
	}, nil
}

func isPostgresDSN(dsn string) bool {
	return strings.HasPrefix(dsn, "postgres://") || strings.HasPrefix(dsn, "postgresql://")
}
