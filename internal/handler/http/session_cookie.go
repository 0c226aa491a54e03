package http

import (
	"net/http"
	"time"
)

// SessionCookieName is the cookie under which the client holds its opaque
// session token.
const SessionCookieName = "mg_session"

// newSessionCookie wraps a freshly established session token. The cookie
// carries no Expires attribute: it lives for the browser session, and the
// authoritative lifetime is the server-side session row.
func newSessionCookie(token string) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	}
}

// expiredSessionCookie instructs the client to drop its session cookie.
func expiredSessionCookie() *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
		MaxAge:   -1,
		Expires:  time.Unix(0, 0),
	}
}
