package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"

	"github.com/MKhiriev/go-member-gate/internal/crypto"
	"github.com/MKhiriev/go-member-gate/internal/logger"
	"github.com/MKhiriev/go-member-gate/models"
	"github.com/jackc/pgerrcode"
)

// emailPattern is the shape an identity must have before it can become a
// record. Matching is byte-exact everywhere else: no case-folding, no
// trimming.
var emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles member account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
	hasher crypto.PasswordHasher
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection, password hasher, and logger.
//
// A debug-level log message is emitted at construction time to aid
// application startup diagnostics.
func NewUserRepository(db *DB, hasher crypto.PasswordHasher, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		hasher: hasher,
		logger: logger,
	}
}

// CreateUser persists a new member account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The plaintext credential is replaced by its hashed stored form before the
// INSERT runs. The repository owns this precondition, so no caller can
// write a record that skips hashing.
//
// Error handling:
//   - Empty or malformed email → [ErrInvalidEmail], nothing is written.
//   - Empty credential → [ErrEmptyCredential], nothing is written.
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, email string, plaintextCredential string) (models.User, error) {
	log := logger.FromContext(ctx)

	if !emailPattern.MatchString(email) {
		log.Error().Str("email", email).Msg("email is empty or not well-formed")
		return models.User{}, ErrInvalidEmail
	}
	if plaintextCredential == "" {
		log.Error().Str("email", email).Msg("empty credential provided")
		return models.User{}, ErrEmptyCredential
	}

	storedForm, err := r.hasher.Hash(plaintextCredential)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: hashing credential failed")
		return models.User{}, fmt.Errorf("error hashing credential: %w", err)
	}

	row := r.db.QueryRowContext(ctx, createUser, email, storedForm)

	// create user in db
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	var user models.User
	if err := row.Scan(&user.UserID, &user.Email, &user.Credential, &user.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail retrieves the account whose email matches the given one
// byte-for-byte.
//
// Error handling:
//   - No matching row → [ErrNoUserWasFound].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	// find user by email
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Email, &foundUser.Credential, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrNoUserWasFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}
