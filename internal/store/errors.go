package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an attempt to create a new
	// account fails because an account with the same email already exists.
	// Under concurrent signups for the same email the database unique
	// index is the authority: exactly one creation succeeds and every
	// other racer receives this error.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrInvalidEmail is returned when the supplied identity is empty or
	// not email-shaped.
	ErrInvalidEmail = errors.New("email is empty or not well-formed")

	// ErrEmptyCredential is returned when the supplied plaintext
	// credential is empty.
	ErrEmptyCredential = errors.New("credential must not be empty")

	// ErrNoUserWasFound is returned when a query expected to match at least
	// one user record produces an empty result set.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrNoSessionWasFound is returned when no session row matches the
	// given token hash.
	ErrNoSessionWasFound = errors.New("no session was found")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")
)
