package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/MKhiriev/go-member-gate/internal/logger"
	"github.com/MKhiriev/go-member-gate/internal/service"
	"github.com/MKhiriev/go-member-gate/internal/utils"
)

// withSession is an HTTP middleware that resolves the session cookie into a
// request identity.
//
// On success the identity-safe projection is stored in the request context
// under [utils.SessionUserCtxKey] for downstream handlers. Every failure,
// including a missing cookie, an unknown token, an expired session, or a
// storage error, degrades to an anonymous request: this middleware never
// rejects, because the endpoints behind it answer anonymous callers too.
func (h *Handler) withSession(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromRequest(r)

		cookie, err := r.Cookie(SessionCookieName)
		if err != nil || cookie.Value == "" {
			next.ServeHTTP(w, r)
			return
		}

		ctx := r.Context()
		sessionUser, err := h.services.SessionService.Resolve(ctx, cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrSessionNotFound), errors.Is(err, service.ErrSessionExpired):
				log.Debug().Msg("session cookie did not resolve, continuing as anonymous")
			default:
				log.Err(err).Msg("error occurred during session resolution")
			}
			next.ServeHTTP(w, r)
			return
		}

		// Store the resolved identity in the context so that downstream
		// handlers can retrieve it without re-resolving the token.
		ctx = context.WithValue(ctx, utils.SessionUserCtxKey, sessionUser)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
