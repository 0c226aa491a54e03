package service

import (
	"context"

	"github.com/MKhiriev/go-member-gate/models"
)

// AuthService owns the credential lifecycle: account creation and the
// single verification gate through which every login must pass.
type AuthService interface {
	// RegisterUser creates a new member account from the supplied
	// credentials. The plaintext password is hashed before persistence.
	RegisterUser(ctx context.Context, creds models.Credentials) (models.User, error)

	// Authenticate verifies the supplied credentials against the stored
	// record. An unknown email and a wrong password fail identically with
	// [ErrInvalidCredentials] so callers cannot enumerate accounts.
	Authenticate(ctx context.Context, creds models.Credentials) (models.User, error)
}

// SessionService binds authentication results to opaque per-client tokens
// and resolves those tokens back to identities on later requests.
//
// Per token the state machine is Anonymous → Authenticated (Establish) and
// Authenticated → Anonymous (Terminate or expiry); no other transitions
// exist.
type SessionService interface {
	// Establish creates a session referencing the user's identity and
	// returns the opaque token to hand to the client. It must only be
	// called with a user returned by [AuthService].
	Establish(ctx context.Context, user models.User) (string, error)

	// Resolve maps a client-held token to the identity-safe projection of
	// its user, re-reading the user record on every call. Missing,
	// unknown, and expired tokens fail with [ErrSessionNotFound] or
	// [ErrSessionExpired]; the projection never carries the credential.
	Resolve(ctx context.Context, token string) (models.SessionUser, error)

	// Terminate invalidates the session behind the token. Subsequent
	// Resolve calls with the same token fail.
	Terminate(ctx context.Context, token string) error
}
