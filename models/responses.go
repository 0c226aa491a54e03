package models

// SessionUser is the identity-safe projection of a user attached to a
// resolved session. It is the only user shape that ever leaves the API:
// the stored credential has no field here and cannot leak by accident.
type SessionUser struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
}

// ErrorResponse is the JSON payload returned by endpoints that reject a
// request with an error status.
type ErrorResponse struct {
	Error string `json:"error"`
}
