// Package crypto provides the credential-handling primitives of the
// application: one-way password hashing with per-call salts, and opaque
// session token generation.
package crypto

//go:generate mockgen -source=interfaces.go -destination=../mock/crypto_mock.go -package=mock

// PasswordHasher turns plaintext credentials into storable, verifiable
// forms. Implementations must be stateless and safe for concurrent use.
type PasswordHasher interface {
	// Hash produces the stored form of the plaintext credential. The salt
	// is generated per call, so two hashes of the same plaintext differ.
	Hash(plaintext string) (string, error)

	// Verify reports whether storedForm was produced by Hash applied to
	// plaintext. A malformed storedForm verifies as false, never as an
	// error or a panic.
	Verify(plaintext string, storedForm string) bool
}
