package crypto

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
)

// BcryptHasher implements [PasswordHasher] on top of bcrypt. The salt is
// generated by bcrypt itself and recoverable from the stored form, and the
// comparison runs in constant time with respect to where a mismatch occurs.
type BcryptHasher struct {
	// cost is the bcrypt work factor. Values below bcrypt.MinCost make
	// bcrypt fall back to bcrypt.DefaultCost.
	cost int
}

// NewBcryptHasher constructs a [BcryptHasher] with the given work factor.
// Pass 0 to use the bcrypt default.
func NewBcryptHasher(cost int) *BcryptHasher {
	return &BcryptHasher{cost: cost}
}

// Hash produces a salted bcrypt hash of plaintext.
//
// Returns [ErrEmptyPassword] for an empty plaintext, or a wrapped bcrypt
// error (e.g. plaintext longer than 72 bytes).
func (h *BcryptHasher) Hash(plaintext string) (string, error) {
	if plaintext == "" {
		return "", ErrEmptyPassword
	}

	storedForm, err := bcrypt.GenerateFromPassword([]byte(plaintext), h.cost)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}

	return string(storedForm), nil
}

// Verify reports whether storedForm is a bcrypt hash of plaintext.
//
// Any failure verifies as false, including a malformed or truncated
// stored form. Callers never need to distinguish the cases.
func (h *BcryptHasher) Verify(plaintext string, storedForm string) bool {
	return bcrypt.CompareHashAndPassword([]byte(storedForm), []byte(plaintext)) == nil
}
