package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-member-gate/internal/crypto"
	"github.com/MKhiriev/go-member-gate/internal/logger"
	"github.com/MKhiriev/go-member-gate/internal/store"
	"github.com/MKhiriev/go-member-gate/models"
)

// dummyCredential is a syntactically valid bcrypt stored form that belongs
// to no account. When a login names an unknown email the service still
// burns one verification against it, so the unknown-email path costs the
// same as the wrong-password path and response timing does not enumerate
// identities.
const dummyCredential = "$2a$10$N9qo8uLOickgx2ZMRZoMyeIjZAgcfl7p92ldGxad68LJZdL17lhWy"

// authService is the concrete implementation of AuthService.
// It handles member registration and credential verification using a
// UserRepository for persistence and a PasswordHasher for the one-way
// credential transform.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher verifies plaintext attempts against stored credential forms.
	// Hashing on creation happens inside the repository; the service only
	// ever verifies.
	hasher crypto.PasswordHasher

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given
// UserRepository and PasswordHasher.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, hasher crypto.PasswordHasher, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		logger:         logger,
	}
}

// RegisterUser creates a new member account.
//
// It validates that both Email and Password are non-empty and delegates
// creation, including email-shape validation and credential hashing, to
// the UserRepository.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - A wrapped storage error if the repository call fails, e.g.
//     store.ErrEmailAlreadyExists or store.ErrInvalidEmail.
func (a *authService) RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		log.Error().Str("email", creds.Email).Msg("invalid credentials data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, creds.Email, creds.Password)
	if err != nil {
		log.Err(err).Str("email", creds.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Authenticate verifies a member's credentials.
//
// It looks the account up by email and compares the plaintext attempt
// against the stored credential form. This is the single authorization
// gate for login: no other path may mark a session authenticated.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if Email or Password is empty.
//   - ErrInvalidCredentials if the email is unknown OR the password does
//     not match. The two cases are indistinguishable by error kind and,
//     thanks to the dummy verification, by timing.
//   - A wrapped storage error for any other repository failure.
func (a *authService) Authenticate(ctx context.Context, creds models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	if creds.Email == "" || creds.Password == "" {
		log.Error().Str("email", creds.Email).Msg("invalid credentials data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, creds.Email)
	if err != nil {
		if errors.Is(err, store.ErrNoUserWasFound) {
			// keep the unknown-email path as slow as the known-email one
			a.hasher.Verify(creds.Password, dummyCredential)
			log.Error().Str("email", creds.Email).Msg("no user was found")
			return models.User{}, ErrInvalidCredentials
		}
		log.Err(err).Str("email", creds.Email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if !a.hasher.Verify(creds.Password, foundUser.Credential) {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrInvalidCredentials
	}

	return foundUser, nil
}
