package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-member-gate/internal/config"
	"github.com/MKhiriev/go-member-gate/internal/crypto"
	"github.com/MKhiriev/go-member-gate/internal/logger"
)

// Storages aggregates every repository the application persists through.
type Storages struct {
	UserRepository    UserRepository
	SessionRepository SessionRepository
}

// NewStorages connects to the database, applies pending migrations, and
// wires up all repositories.
func NewStorages(ctx context.Context, cfg config.Storage, hasher crypto.PasswordHasher, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	if err := db.Migrate(); err != nil {
		return nil, fmt.Errorf("error migrating database: %w", err)
	}

	return &Storages{
		UserRepository:    NewUserRepository(db, hasher, log),
		SessionRepository: NewSessionRepository(db, log),
	}, nil
}
