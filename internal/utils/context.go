// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys,
// HTTP response writing, and other common operations.
package utils

import (
	"context"

	"github.com/MKhiriev/go-member-gate/models"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
// Implements the fmt.Stringer interface.
func (c contextKey) String() string {
	return string(c)
}

// SessionUserCtxKey is the key used to store the resolved session identity
// in the context. Used together with GetSessionUserFromContext for
// type-safe retrieval.
//
// Example of writing a value to the context:
//
//	ctx := context.WithValue(ctx, utils.SessionUserCtxKey, sessionUser)
var SessionUserCtxKey = contextKey("sessionUser")

// GetSessionUserFromContext retrieves the resolved session identity from
// the context.
//
// Returns the identity projection and an ok flag:
//   - ok == true: a session was resolved for this request
//   - ok == false: the request is anonymous
//
// Example usage:
//
//	sessionUser, ok := utils.GetSessionUserFromContext(ctx)
//	if !ok {
//	    // treat the request as anonymous
//	}
func GetSessionUserFromContext(ctx context.Context) (models.SessionUser, bool) {
	sessionUser, ok := ctx.Value(SessionUserCtxKey).(models.SessionUser)
	return sessionUser, ok
}
