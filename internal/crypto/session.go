package crypto

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// sessionTokenBytes is the entropy of a session token: 32 random bytes,
// 64 hex characters on the wire.
const sessionTokenBytes = 32

// GenerateSessionToken creates a fresh opaque session token along with its
// hash. The plaintext token goes to the client; only the hash is persisted,
// so stored session rows cannot be replayed as cookies.
//
// Returns (plaintext token, hex SHA-256 of the token, error).
func GenerateSessionToken() (string, string, error) {
	buf := make([]byte, sessionTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", "", fmt.Errorf("error generating session token: %w", err)
	}

	token := hex.EncodeToString(buf)

	return token, HashSessionToken(token), nil
}

// HashSessionToken computes the hex-encoded SHA-256 hash of a session
// token, the form under which tokens are stored and looked up.
func HashSessionToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
