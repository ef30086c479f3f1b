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
	router.Use(h.withSession)

	router.Get("/", h.root)
	router.Post("/auth", h.signIn)

	router.Route("/user", func(r chi.Router) {
		r.Get("/", h.getProfile)
		r.Post("/", h.updateProfile)
		r.Get("/check", h.checkHandle)
	})

	router.Route("/forum", func(r chi.Router) {
		r.Get("/", h.forumOverview)
		r.Get("/posts", h.forumPosts)
	})

	return router
}
