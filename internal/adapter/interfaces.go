// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides transport-layer abstractions for communicating with
// the member-gate server.
//
// The primary abstraction is [ServerAdapter], which decouples callers from the
// underlying protocol. The package ships an HTTP/REST implementation
// ([NewHTTPServerAdapter]) that carries the session cookie across requests.
//
// Error values defined in errors.go are mapped from HTTP status codes by
// mapHTTPError so that callers can use [errors.Is] for transport-agnostic error
// handling (e.g. [ErrUnauthorized] for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-member-gate/models"
)

// ServerAdapter defines transport-agnostic communication with the member-gate
// server. Implementations are responsible for serialisation, session state
// management, and mapping transport-level errors to the sentinel values
// defined in this package.
type ServerAdapter interface {
	// Signup registers a new account with the provided credentials. The
	// server answers registration with a redirect into login, so a
	// successful Signup leaves the adapter holding an authenticated session
	// and returns the signed-in identity.
	Signup(ctx context.Context, creds models.Credentials) (models.SessionUser, error)

	// Login authenticates with the provided credentials. On success the
	// session cookie issued by the server is retained for subsequent
	// requests and the signed-in identity is returned.
	Login(ctx context.Context, creds models.Credentials) (models.SessionUser, error)

	// UserData fetches the identity bound to the adapter's current session.
	// A session that is missing, expired, or revoked yields ok=false with a
	// zero identity; the request itself still succeeds.
	UserData(ctx context.Context) (user models.SessionUser, ok bool, err error)

	// Logout terminates the adapter's current session on the server and
	// discards the local session cookie.
	Logout(ctx context.Context) error
}
