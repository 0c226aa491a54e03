package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// CheckHTTPMethod replaces chi's default MethodNotAllowed behaviour.
// When a path matches a registered route but the HTTP method is not
// handled, the response is 404 Not Found rather than 405, so the route's
// existence is not disclosed to callers probing with other methods.
// Requests for registered methods pass through to the router unchanged.
//
// Register it via router.MethodNotAllowed(CheckHTTPMethod(router)).
func CheckHTTPMethod(router *chi.Mux) func(w http.ResponseWriter, r *http.Request) {
	return func(w http.ResponseWriter, r *http.Request) {
		var matched chi.Route
		for _, route := range router.Routes() {
			if route.Pattern == r.URL.Path {
				matched = route
				break
			}
		}

		if _, ok := matched.Handlers[r.Method]; !ok {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		router.ServeHTTP(w, r)
	}
}
