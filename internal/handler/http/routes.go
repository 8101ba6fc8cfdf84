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

	// routes without authorization
	router.Group(func(r chi.Router) {
		r.Post("/auth/login", h.login)
	})

	// The GraphQL endpoint sits behind the session middleware, which
	// attaches a principal when a valid session cookie is present but never
	// rejects on its own: per-operation authorization happens inside the
	// resolvers, so the public createUser mutation stays reachable without
	// a session.
	router.Group(func(r chi.Router) {
		r.Use(h.withSession)
		r.Post("/query", h.graphQL)
	})

	return router
}
