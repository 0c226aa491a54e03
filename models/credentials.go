package models

// Credentials is the request payload shared by the signup and login
// endpoints: the claimed identity plus the plaintext secret presented to
// prove it. The plaintext never travels further than the layer that hashes
// or verifies it.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
