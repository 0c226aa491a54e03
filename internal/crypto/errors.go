package crypto

import "errors"

var (
	// ErrEmptyPassword is returned by [PasswordHasher.Hash] when the
	// plaintext credential is empty. An empty secret must never acquire a
	// stored form.
	ErrEmptyPassword = errors.New("password cannot be empty")
)
