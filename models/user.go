package models

import "time"

// User represents one member account. It is the persisted identity record:
// a unique email plus the stored form of the member's credential.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// UserID is the internal unique identifier of the user.
	// It is not exposed via JSON directly; public responses use the
	// SessionUser projection instead.
	UserID int64 `json:"-"`

	// Email is the unique account key. It is matched byte-for-byte as
	// stored; no case-folding or trimming is applied anywhere.
	Email string `json:"email"`

	// Credential is the stored form of the member's password: a salted
	// bcrypt hash, never the plaintext. It is never serialised.
	Credential string `json:"-"`

	// CreatedAt is the timestamp when the account was created.
	CreatedAt time.Time `json:"created_at"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
