package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	// routes that do not need a resolved session
	router.Group(func(r chi.Router) {
		r.Post("/api/signup", h.signup)
		r.Post("/api/login", h.login)
		r.Get("/logout", h.logout)
	})

	// routes that read the session identity (and stay open to anonymous callers)
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)
		r.Get("/api/user_data", h.userData)
	})

	router.MethodNotAllowed(CheckHTTPMethod(router))

	return router
}
