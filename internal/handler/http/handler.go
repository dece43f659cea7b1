package http

import (
	"github.com/Yemmy22/alx-backend-user-data/internal/config"
	"github.com/Yemmy22/alx-backend-user-data/internal/logger"
	"github.com/Yemmy22/alx-backend-user-data/internal/service"
)

type Handler struct {
	services *service.Services

	cfg config.App

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg config.App, logger *logger.Logger) *Handler {
	logger.Info().Str("auth_type", cfg.AuthType).Msg("http handler created")
	return &Handler{
		services: services,
		cfg:      cfg,
		logger:   logger,
	}
}
