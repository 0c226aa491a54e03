package http

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-member-gate/internal/service"
	"github.com/MKhiriev/go-member-gate/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSessionStore backs the mock services with just enough state for a
// full signup → login → user_data → logout walk through the router.
type fakeSessionStore struct {
	users    map[string]models.User
	sessions map[string]models.SessionUser
	nextID   int64
}

func newScenarioHandler(t *testing.T) *Handler {
	t.Helper()

	fake := &fakeSessionStore{
		users:    map[string]models.User{},
		sessions: map[string]models.SessionUser{},
		nextID:   1,
	}

	auth := &mockAuthService{
		registerUserFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			if _, taken := fake.users[creds.Email]; taken {
				return models.User{}, service.ErrInvalidDataProvided
			}
			u := models.User{UserID: fake.nextID, Email: creds.Email, Credential: "stored:" + creds.Password}
			fake.nextID++
			fake.users[creds.Email] = u
			return u, nil
		},
		authenticateFn: func(_ context.Context, creds models.Credentials) (models.User, error) {
			u, found := fake.users[creds.Email]
			if !found || u.Credential != "stored:"+creds.Password {
				return models.User{}, service.ErrInvalidCredentials
			}
			return u, nil
		},
	}
	sessions := &mockSessionService{
		establishFn: func(_ context.Context, u models.User) (string, error) {
			token := "token-for-" + u.Email
			fake.sessions[token] = models.SessionUser{UserID: u.UserID, Email: u.Email}
			return token, nil
		},
		resolveFn: func(_ context.Context, token string) (models.SessionUser, error) {
			su, found := fake.sessions[token]
			if !found {
				return models.SessionUser{}, service.ErrSessionNotFound
			}
			return su, nil
		},
		terminateFn: func(_ context.Context, token string) error {
			if _, found := fake.sessions[token]; !found {
				return service.ErrSessionNotFound
			}
			delete(fake.sessions, token)
			return nil
		},
	}

	return newTestHandler(t, auth, sessions)
}

// TestRouter_FullSessionLifecycle drives the whole flow through the real
// route table: register, follow the redirect into login, read the identity
// with the issued cookie, log out, and confirm the identity is gone.
func TestRouter_FullSessionLifecycle(t *testing.T) {
	router := newScenarioHandler(t).Init()

	body := `{"email":"alice@example.com","password":"secret"}`

	// 1. signup answers a 307 into login
	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(body))
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusTemporaryRedirect, rec.Code)
	require.Equal(t, "/api/login", rec.Header().Get("Location"))

	// 2. replaying the same body against login issues the cookie
	req = httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(body))
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	cookie := sessionCookie(rec)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)

	// 3. user_data with the cookie reports the identity
	req = httptest.NewRequest(http.MethodGet, "/api/user_data", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"id":1,"email":"alice@example.com"}`, rec.Body.String())

	// 4. logout revokes the session and clears the cookie
	req = httptest.NewRequest(http.MethodGet, "/logout", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusFound, rec.Code)

	// 5. the old cookie no longer resolves
	req = httptest.NewRequest(http.MethodGet, "/api/user_data", nil)
	req.AddCookie(cookie)
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{}`, rec.Body.String())
}

// TestRouter_LoginFailuresShareOneAnswer verifies through the router that
// an unknown email and a wrong password are indistinguishable.
func TestRouter_LoginFailuresShareOneAnswer(t *testing.T) {
	router := newScenarioHandler(t).Init()

	// create one account
	req := httptest.NewRequest(http.MethodPost, "/api/signup", strings.NewReader(`{"email":"alice@example.com","password":"secret"}`))
	router.ServeHTTP(httptest.NewRecorder(), req)

	unknown := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"ghost@example.com","password":"secret"}`))
	router.ServeHTTP(unknown, req)

	wrongPassword := httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodPost, "/api/login", strings.NewReader(`{"email":"alice@example.com","password":"wrong"}`))
	router.ServeHTTP(wrongPassword, req)

	require.Equal(t, http.StatusUnauthorized, unknown.Code)
	require.Equal(t, http.StatusUnauthorized, wrongPassword.Code)
	assert.Equal(t, unknown.Body.String(), wrongPassword.Body.String(),
		"unknown-email and wrong-password answers must be identical")
}

func TestRouter_UnregisteredMethodAnswers404(t *testing.T) {
	router := newScenarioHandler(t).Init()

	// /api/signup is POST-only; GET must answer 404, not 405
	req := httptest.NewRequest(http.MethodGet, "/api/signup", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_UnknownPathAnswers404(t *testing.T) {
	router := newScenarioHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRouter_TraceIDHeaderIsSet(t *testing.T) {
	router := newScenarioHandler(t).Init()

	req := httptest.NewRequest(http.MethodGet, "/api/user_data", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.NotEmpty(t, rec.Header().Get("X-Trace-ID"))
}
