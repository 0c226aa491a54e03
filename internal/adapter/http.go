package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-member-gate/internal/config"
	"github.com/MKhiriev/go-member-gate/internal/logger"
	"github.com/MKhiriev/go-member-gate/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *resty.Client
	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL, request
// timeout, and a cookie jar that carries the session cookie between calls.
//
// Redirects are not followed automatically: registration and logout answer
// with redirect statuses that the adapter interprets itself.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.Adapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("create cookie jar: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetCookieJar(jar).
		SetRedirectPolicy(resty.RedirectPolicyFunc(func(req *http.Request, via []*http.Request) error {
			return http.ErrUseLastResponse
		}))

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// Signup implements [ServerAdapter]. It POSTs the credentials to
// POST /api/signup. The server answers a successful registration with a
// 307 redirect into login; the adapter completes that handoff by replaying
// the same credentials against Login, so a successful Signup returns an
// authenticated session. Returns an error if the request fails or the server
// rejects the registration.
func (h *httpServerAdapter) Signup(ctx context.Context, creds models.Credentials) (models.SessionUser, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		Post("/api/signup")
	if err != nil {
		return models.SessionUser{}, fmt.Errorf("signup request: %w", err)
	}

	if resp.StatusCode() == http.StatusTemporaryRedirect {
		return h.Login(ctx, creds)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionUser{}, err
	}

	// Unexpected but tolerated: a direct 2xx with the identity in the body.
	var user models.SessionUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.SessionUser{}, fmt.Errorf("signup decode response: %w", err)
	}

	return user, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/login. On success the session cookie set by the server is stored
// in the client's cookie jar and the signed-in identity from the response body
// is returned. Returns an error if the request fails or the server responds
// with a non-2xx status.
func (h *httpServerAdapter) Login(ctx context.Context, creds models.Credentials) (models.SessionUser, error) {
	var user models.SessionUser

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(creds).
		SetResult(&user).
		Post("/api/login")
	if err != nil {
		return models.SessionUser{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionUser{}, err
	}

	return user, nil
}

// UserData implements [ServerAdapter]. It GETs /api/user_data with the stored
// session cookie. The server always answers 200: an empty JSON object when no
// valid session is attached, or the identity of the signed-in account. The
// second return value reports whether an identity was present.
func (h *httpServerAdapter) UserData(ctx context.Context) (models.SessionUser, bool, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/user_data")
	if err != nil {
		return models.SessionUser{}, false, fmt.Errorf("user_data request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.SessionUser{}, false, err
	}

	var user models.SessionUser
	if err = json.Unmarshal(resp.Body(), &user); err != nil {
		return models.SessionUser{}, false, fmt.Errorf("user_data decode response: %w", err)
	}

	return user, user.Email != "", nil
}

// Logout implements [ServerAdapter]. It GETs /logout, which revokes the
// server-side session and answers with a redirect home. Any remaining local
// cookies are discarded regardless of the server's answer to the revocation.
func (h *httpServerAdapter) Logout(ctx context.Context) error {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/logout")

	// Drop the local session cookie even if the server call failed.
	if jar, jarErr := cookiejar.New(nil); jarErr == nil {
		h.client.SetCookieJar(jar)
	}

	if err != nil {
		return fmt.Errorf("logout request: %w", err)
	}
	if resp.StatusCode() == http.StatusFound {
		return nil
	}

	return mapHTTPError(resp)
}
