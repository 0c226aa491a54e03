package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")

	// ErrInvalidCredentials covers both an unknown email and a wrong
	// password. The two cases are deliberately indistinguishable to
	// callers.
	ErrInvalidCredentials = errors.New("invalid email/password")

	ErrSessionNotFound = errors.New("session is missing or invalid")
	ErrSessionExpired  = errors.New("session is expired")
)
