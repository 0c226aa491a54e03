package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-member-gate/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository is the persistence boundary for member accounts.
type UserRepository interface {
	// CreateUser validates the email shape and the presence of a
	// plaintext credential, hashes the credential, and persists a new
	// account. Hashing happens inside the call, before the write: no
	// caller can persist a plaintext credential through this interface.
	CreateUser(ctx context.Context, email string, plaintextCredential string) (models.User, error)

	// FindUserByEmail retrieves the account whose email matches the given
	// one byte-for-byte.
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// SessionRepository is the persistence boundary for server-side sessions,
// keyed by the SHA-256 hash of a client-held token.
type SessionRepository interface {
	CreateSession(ctx context.Context, session models.Session) (models.Session, error)
	FindSessionByTokenHash(ctx context.Context, tokenHash string) (models.Session, error)
	UpdateLastSeen(ctx context.Context, tokenHash string, lastSeen time.Time) error
	DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error

	// DeleteExpiredSessions removes every session whose expiry lies at or
	// before the given instant and reports how many rows were removed.
	DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error)
}
