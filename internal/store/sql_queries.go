package store

import (
	"time"

	"github.com/MKhiriev/go-member-gate/models"
	sq "github.com/Masterminds/squirrel"
)

const (
	createUser = `INSERT INTO users (email, credential)
    VALUES ($1, $2)
    RETURNING user_id, email, credential, created_at;`

	findUserByEmail = `SELECT user_id, email, credential, created_at
    FROM users
    WHERE email = $1;`
)

// psql is the statement builder used for all session-table queries.
// PostgreSQL uses $N placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

func buildCreateSessionQuery(session models.Session) (string, []any, error) {
	return psql.
		Insert(session.TableName()).
		Columns("token_hash", "user_email", "expires_at", "created_at", "last_seen_at").
		Values(session.TokenHash, session.UserEmail, session.ExpiresAt, session.CreatedAt, session.LastSeenAt).
		Suffix("RETURNING session_id, token_hash, user_email, expires_at, created_at, last_seen_at").
		ToSql()
}

func buildFindSessionByTokenHashQuery(tokenHash string) (string, []any, error) {
	return psql.
		Select("session_id", "token_hash", "user_email", "expires_at", "created_at", "last_seen_at").
		From(models.Session{}.TableName()).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
}

func buildUpdateLastSeenQuery(tokenHash string, lastSeen time.Time) (string, []any, error) {
	return psql.
		Update(models.Session{}.TableName()).
		Set("last_seen_at", lastSeen).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
}

func buildDeleteSessionQuery(tokenHash string) (string, []any, error) {
	return psql.
		Delete(models.Session{}.TableName()).
		Where(sq.Eq{"token_hash": tokenHash}).
		ToSql()
}

func buildDeleteExpiredSessionsQuery(now time.Time) (string, []any, error) {
	return psql.
		Delete(models.Session{}.TableName()).
		Where(sq.LtOrEq{"expires_at": now}).
		ToSql()
}
