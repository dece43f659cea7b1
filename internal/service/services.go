package service

import (
	"github.com/Yemmy22/alx-backend-user-data/internal/logger"
	"github.com/Yemmy22/alx-backend-user-data/internal/session"
	"github.com/Yemmy22/alx-backend-user-data/internal/store"
)

type Services struct {
	AuthService AuthService
}

func NewServices(storages *store.Storages, sessions session.Registry, tokens TokenGenerator, logger *logger.Logger) *Services {
	return &Services{
		AuthService: NewAuthService(storages.UserRepository, sessions, tokens, logger),
	}
}
