package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-member-gate/internal/logger"
	"github.com/MKhiriev/go-member-gate/models"
)

// sessionRepository is the PostgreSQL-backed implementation of
// [SessionRepository]. Sessions are looked up exclusively by token hash;
// the plaintext token never reaches this layer.
type sessionRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewSessionRepository constructs a [SessionRepository] backed by the
// provided database connection and logger.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	logger.Debug().Msg("creating session repository")
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

// CreateSession persists a new session row and returns it with the
// server-assigned SessionID.
func (r *sessionRepository) CreateSession(ctx context.Context, session models.Session) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildCreateSessionQuery(session)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: building query failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: row is nil")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	var saved models.Session
	if err := row.Scan(&saved.SessionID, &saved.TokenHash, &saved.UserEmail, &saved.ExpiresAt, &saved.CreatedAt, &saved.LastSeenAt); err != nil {
		log.Err(err).Str("func", "*sessionRepository.CreateSession").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return saved, nil
}

// FindSessionByTokenHash retrieves the session row matching the given token
// hash, or [ErrNoSessionWasFound] when no such row exists.
func (r *sessionRepository) FindSessionByTokenHash(ctx context.Context, tokenHash string) (models.Session, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildFindSessionByTokenHashQuery(tokenHash)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSessionByTokenHash").Msg("error: building query failed")
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var found models.Session
	row := r.db.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*sessionRepository.FindSessionByTokenHash").Msg("error: row is nil")
		return models.Session{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&found.SessionID, &found.TokenHash, &found.UserEmail, &found.ExpiresAt, &found.CreatedAt, &found.LastSeenAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Session{}, ErrNoSessionWasFound
		}
		log.Err(err).Str("func", "*sessionRepository.FindSessionByTokenHash").Msg("error: scanning error")
		return models.Session{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return found, nil
}

// UpdateLastSeen stamps the session's last activity. A missing row is not
// an error here: the session may have been terminated concurrently, which
// is equivalent for the caller.
func (r *sessionRepository) UpdateLastSeen(ctx context.Context, tokenHash string, lastSeen time.Time) error {
	log := logger.FromContext(ctx)

	query, args, err := buildUpdateLastSeenQuery(tokenHash, lastSeen)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.UpdateLastSeen").Msg("error: building query failed")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		log.Err(err).Str("func", "*sessionRepository.UpdateLastSeen").Msg("error: executing statement failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// DeleteSessionByTokenHash removes the session row matching the given token
// hash. Deleting an already-absent session returns [ErrNoSessionWasFound].
func (r *sessionRepository) DeleteSessionByTokenHash(ctx context.Context, tokenHash string) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteSessionQuery(tokenHash)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSessionByTokenHash").Msg("error: building query failed")
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteSessionByTokenHash").Msg("error: executing statement failed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoSessionWasFound
	}

	return nil
}

// DeleteExpiredSessions removes every session whose expiry lies at or
// before now and reports how many rows were removed. Used by the
// background sweeper.
func (r *sessionRepository) DeleteExpiredSessions(ctx context.Context, now time.Time) (int64, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteExpiredSessionsQuery(now)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error: building query failed")
		return 0, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*sessionRepository.DeleteExpiredSessions").Msg("error: executing statement failed")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
