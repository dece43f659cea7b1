package main

import (
	"context"
	"fmt"

	"github.com/Yemmy22/alx-backend-user-data/internal/config"
	"github.com/Yemmy22/alx-backend-user-data/internal/logger"
	"github.com/Yemmy22/alx-backend-user-data/internal/server"
	"github.com/Yemmy22/alx-backend-user-data/internal/service"
	"github.com/Yemmy22/alx-backend-user-data/internal/session"
	"github.com/Yemmy22/alx-backend-user-data/internal/store"
	"github.com/Yemmy22/alx-backend-user-data/internal/utils"

	handler "github.com/Yemmy22/alx-backend-user-data/internal/handler/http"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	printBuildInfo()

	// every log line passes through the redacting writer so credentials and
	// reset tokens never reach the log stream in plaintext
	log := logger.NewRedactedLogger("auth-server", "password", "new_password", "reset_token")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	log.Debug().Any("config", cfg).Msg("received configs")

	ctx := log.WithContext(context.Background())

	storages, err := store.NewStorages(ctx, cfg.Storage, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating storages")
	}

	ids := utils.NewUUIDGenerator()
	registry := newSessionRegistry(cfg.App, storages, ids)

	services := service.NewServices(storages, registry, ids, log)
	handlers := handler.NewHandler(services, cfg.App, log)

	srv, err := server.NewServer(handlers, cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

// newSessionRegistry builds the session registry variant selected by config:
// a process-lifetime map (optionally expiring) or the DB-backed registry that
// survives restarts.
func newSessionRegistry(cfg config.App, storages *store.Storages, ids session.IDGenerator) session.Registry {
	if cfg.SessionStore == config.SessionStoreDB {
		return session.NewStoreRegistry(storages.SessionRepository, ids, cfg.SessionDuration)
	}

	if cfg.SessionDuration > 0 {
		return session.NewExpiringMemoryRegistry(ids, cfg.SessionDuration)
	}

	return session.NewMemoryRegistry(ids)
}

func printBuildInfo() {
	if buildVersion == "" {
		buildVersion = "N/A"
	}

	if buildDate == "" {
		buildDate = "N/A"
	}

	if buildCommit == "" {
		buildCommit = "N/A"
	}

	fmt.Printf("Build version: %s\n", buildVersion)
	fmt.Printf("Build date: %s\n", buildDate)
	fmt.Printf("Build commit: %s\n", buildCommit)
}
