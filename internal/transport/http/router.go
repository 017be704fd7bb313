package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

// RouteRegistrar mounts a handler's routes on a router.
type RouteRegistrar interface {
	RegisterRoutes(r chi.Router)
}

// NewRouter builds the REST API. Handlers are mounted under /api/v1.
func NewRouter(handlers ...RouteRegistrar) http.Handler {
	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Logger)
	router.Use(middleware.Recoverer)

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		respond(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	router.Route("/api/v1", func(r chi.Router) {
		for _, h := range handlers {
			h.RegisterRoutes(r)
		}
	})

	return router
}
