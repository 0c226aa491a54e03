package models

import "time"

// Session is one server-side session row. The client holds the plaintext
// token in a cookie; only its SHA-256 hash is persisted, so a database leak
// does not leak usable tokens.
//
// A session is a non-owning reference to a user by email. It never carries
// user data of its own: resolution re-reads the user row on every request.
type Session struct {
	// SessionID is the internal unique identifier of the session row.
	SessionID int64 `json:"-"`

	// TokenHash is the hex-encoded SHA-256 hash of the opaque token
	// issued to the client.
	TokenHash string `json:"-"`

	// UserEmail references the owning user's identity key.
	UserEmail string `json:"user_email"`

	// ExpiresAt is the instant after which the session resolves to
	// anonymous. Expired rows are removed by the background sweeper.
	ExpiresAt time.Time `json:"expires_at"`

	// CreatedAt is the timestamp when the session was established.
	CreatedAt time.Time `json:"created_at"`

	// LastSeenAt is updated on every successful resolution.
	LastSeenAt time.Time `json:"last_seen_at"`
}

// TableName returns the name of the database table
// associated with the Session model.
func (s Session) TableName() string {
	return "sessions"
}

// IsExpired reports whether the session has expired.
func (s Session) IsExpired() bool {
	return s.IsExpiredAt(time.Now())
}

// IsExpiredAt reports whether the session would be expired at the given
// instant. Useful for tests with deterministic time values.
func (s Session) IsExpiredAt(t time.Time) bool {
	return t.After(s.ExpiresAt)
}
