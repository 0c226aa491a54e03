// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/MKhiriev/go-member-gate/internal/config"
	"github.com/MKhiriev/go-member-gate/internal/logger"
	"github.com/MKhiriev/go-member-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testCookieName = "mg_session"

// newTestAdapter builds an httpServerAdapter pointed at the test server.
func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: serverURL}, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// newGateServer fakes the server side of the session flow: signup redirects
// into login, login sets a cookie, user_data reads it, logout clears it.
func newGateServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()

	mux.HandleFunc("POST /api/signup", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/api/login", http.StatusTemporaryRedirect)
	})

	mux.HandleFunc("POST /api/login", func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))

		if creds.Password != "secret" {
			w.WriteHeader(http.StatusUnauthorized)
			_, _ = w.Write([]byte(`{"error":"invalid email/password"}`))
			return
		}

		http.SetCookie(w, &http.Cookie{Name: testCookieName, Value: "issued-token", Path: "/", HttpOnly: true})
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(models.SessionUser{UserID: 1, Email: creds.Email})
	})

	mux.HandleFunc("GET /api/user_data", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		if c, err := r.Cookie(testCookieName); err == nil && c.Value == "issued-token" {
			_ = json.NewEncoder(w).Encode(models.SessionUser{UserID: 1, Email: "alice@example.com"})
			return
		}
		_, _ = w.Write([]byte(`{}`))
	})

	mux.HandleFunc("GET /logout", func(w http.ResponseWriter, r *http.Request) {
		http.SetCookie(w, &http.Cookie{Name: testCookieName, Value: "", Path: "/", MaxAge: -1})
		http.Redirect(w, r, "/", http.StatusFound)
	})

	return httptest.NewServer(mux)
}

// ── NewHTTPServerAdapter ─────────────────────────────────────────────────────

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: ""}, logger.Nop())
	require.Error(t, err)
}

func TestNewHTTPServerAdapter_SchemeDefaulting(t *testing.T) {
	a, err := NewHTTPServerAdapter(config.Adapter{HTTPAddress: "localhost:8080"}, logger.Nop())
	require.NoError(t, err)
	assert.Equal(t, "http://localhost:8080", a.(*httpServerAdapter).client.BaseURL)
}

// ── Signup ───────────────────────────────────────────────────────────────────

func TestSignup_FollowsRedirectIntoLogin(t *testing.T) {
	srv := newGateServer(t)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, err := a.Signup(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, int64(1), user.UserID)

	// the session issued during the handoff must already work
	got, ok, err := a.UserData(context.Background())
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, "alice@example.com", got.Email)
}

func TestSignup_Rejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"email already exists"}`))
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Signup(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── Login ────────────────────────────────────────────────────────────────────

func TestLogin_Success(t *testing.T) {
	srv := newGateServer(t)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", user.Email)
}

func TestLogin_InvalidCredentials(t *testing.T) {
	srv := newGateServer(t)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "wrong"})

	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

// ── UserData ─────────────────────────────────────────────────────────────────

func TestUserData_AnonymousIsNotAnError(t *testing.T) {
	srv := newGateServer(t)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	user, ok, err := a.UserData(context.Background())

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, user.Email)
}

func TestUserData_CookiePersistsAcrossCalls(t *testing.T) {
	srv := newGateServer(t)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		got, ok, err := a.UserData(context.Background())
		require.NoError(t, err)
		require.True(t, ok, "call %d must still carry the session", i+1)
		assert.Equal(t, "alice@example.com", got.Email)
	}
}

// ── Logout ───────────────────────────────────────────────────────────────────

func TestLogout_DropsSession(t *testing.T) {
	srv := newGateServer(t)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Login(context.Background(), models.Credentials{Email: "alice@example.com", Password: "secret"})
	require.NoError(t, err)

	require.NoError(t, a.Logout(context.Background()))

	_, ok, err := a.UserData(context.Background())
	require.NoError(t, err)
	assert.False(t, ok, "session must be gone after logout")
}
