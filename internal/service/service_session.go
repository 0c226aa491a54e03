package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-member-gate/internal/crypto"
	"github.com/MKhiriev/go-member-gate/internal/logger"
	"github.com/MKhiriev/go-member-gate/internal/store"
	"github.com/MKhiriev/go-member-gate/models"
)

// sessionService is the concrete implementation of SessionService.
// Sessions are stored server-side keyed by the SHA-256 hash of the token;
// the plaintext token exists only in flight and in the client's cookie.
type sessionService struct {
	// sessionRepository persists session rows.
	sessionRepository store.SessionRepository

	// userRepository re-resolves the user record on every Resolve call.
	// A session row is a non-owning reference by email and never serves
	// user data of its own.
	userRepository store.UserRepository

	// sessionDuration controls how long an established session remains valid.
	sessionDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewSessionService constructs a new SessionService wired to the given
// repositories and populated with the session lifetime from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction. Operations on different tokens are independent.
func NewSessionService(sessionRepository store.SessionRepository, userRepository store.UserRepository, sessionDuration time.Duration, logger *logger.Logger) SessionService {
	return &sessionService{
		sessionRepository: sessionRepository,
		userRepository:    userRepository,
		sessionDuration:   sessionDuration,
		logger:            logger,
	}
}

// Establish creates a session for an authenticated user and returns the
// opaque token for the client's cookie. Only the token's hash is persisted.
func (s *sessionService) Establish(ctx context.Context, user models.User) (string, error) {
	log := logger.FromContext(ctx)

	token, tokenHash, err := crypto.GenerateSessionToken()
	if err != nil {
		log.Err(err).Msg("session token generation failed")
		return "", fmt.Errorf("session token generation failed: %w", err)
	}

	now := time.Now()
	session := models.Session{
		TokenHash:  tokenHash,
		UserEmail:  user.Email,
		ExpiresAt:  now.Add(s.sessionDuration),
		CreatedAt:  now,
		LastSeenAt: now,
	}

	if _, err := s.sessionRepository.CreateSession(ctx, session); err != nil {
		log.Err(err).Str("email", user.Email).Msg("session creation ended with error")
		return "", fmt.Errorf("session creation ended with error: %w", err)
	}

	return token, nil
}

// Resolve maps a client-held token to the identity-safe projection of its
// user.
//
// The user record is re-read on every call, so a deleted account makes its
// sessions resolve as anonymous immediately. The returned projection never
// carries the stored credential.
//
// Returns:
//   - ErrSessionNotFound for an empty or unknown token, or when the
//     referenced account no longer exists.
//   - ErrSessionExpired for a known-but-stale token; the stale row is
//     deleted on the way out.
//   - A wrapped storage error for any other repository failure.
func (s *sessionService) Resolve(ctx context.Context, token string) (models.SessionUser, error) {
	log := logger.FromContext(ctx)

	if token == "" {
		return models.SessionUser{}, ErrSessionNotFound
	}

	tokenHash := crypto.HashSessionToken(token)

	session, err := s.sessionRepository.FindSessionByTokenHash(ctx, tokenHash)
	if err != nil {
		if errors.Is(err, store.ErrNoSessionWasFound) {
			return models.SessionUser{}, ErrSessionNotFound
		}
		log.Err(err).Msg("session search by token hash failed")
		return models.SessionUser{}, fmt.Errorf("session search by token hash failed: %w", err)
	}

	if session.IsExpired() {
		// best effort: the sweeper removes the row anyway
		if err := s.sessionRepository.DeleteSessionByTokenHash(ctx, tokenHash); err != nil && !errors.Is(err, store.ErrNoSessionWasFound) {
			log.Err(err).Msg("deleting expired session failed")
		}
		return models.SessionUser{}, ErrSessionExpired
	}

	user, err := s.userRepository.FindUserByEmail(ctx, session.UserEmail)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			log.Error().Str("email", session.UserEmail).Msg("session references a missing user")
			return models.SessionUser{}, ErrSessionNotFound
		}
		log.Err(err).Str("email", session.UserEmail).Msg("user search by email failed")
		return models.SessionUser{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err := s.sessionRepository.UpdateLastSeen(ctx, tokenHash, time.Now()); err != nil {
		// resolution succeeds regardless
		log.Err(err).Msg("updating session last-seen failed")
	}

	return models.SessionUser{
		UserID: user.UserID,
		Email:  user.Email,
	}, nil
}

// Terminate invalidates the session behind the token. Terminating a token
// with no session returns ErrSessionNotFound, which callers may ignore.
func (s *sessionService) Terminate(ctx context.Context, token string) error {
	log := logger.FromContext(ctx)

	if token == "" {
		return ErrSessionNotFound
	}

	err := s.sessionRepository.DeleteSessionByTokenHash(ctx, crypto.HashSessionToken(token))
	if err != nil {
		if errors.Is(err, store.ErrNoSessionWasFound) {
			return ErrSessionNotFound
		}
		log.Err(err).Msg("session termination ended with error")
		return fmt.Errorf("session termination ended with error: %w", err)
	}

	return nil
}
