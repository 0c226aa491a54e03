package service

import (
	"github.com/MKhiriev/go-member-gate/internal/config"
	"github.com/MKhiriev/go-member-gate/internal/crypto"
	"github.com/MKhiriev/go-member-gate/internal/logger"
	"github.com/MKhiriev/go-member-gate/internal/store"
)

type Services struct {
	AuthService    AuthService
	SessionService SessionService
}

func NewServices(storages *store.Storages, hasher crypto.PasswordHasher, cfg config.App, logger *logger.Logger) *Services {
	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, hasher, logger),
		SessionService: NewSessionService(storages.SessionRepository, storages.UserRepository, cfg.SessionDuration, logger),
	}
}
