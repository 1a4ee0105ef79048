package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/heartmarshall/signphon/internal/transport/middleware"
)

// Routes bundles the handlers and middleware mounted by NewRouter.
type Routes struct {
	Signs  *SignHandler
	Health *HealthHandler

	// Global wraps every route, probes included. API wraps only /v1.
	Global []middleware.Middleware
	API    []middleware.Middleware
}

// NewRouter builds the HTTP route tree.
func NewRouter(rt Routes) *chi.Mux {
	r := chi.NewRouter()
	for _, mw := range rt.Global {
		if mw != nil {
			r.Use(mw)
		}
	}

	r.NotFound(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusNotFound, "not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, _ *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
	})

	r.Get("/live", rt.Health.Live)
	r.Get("/ready", rt.Health.Ready)
	r.Get("/health", rt.Health.Health)

	r.Route("/v1", func(r chi.Router) {
		for _, mw := range rt.API {
			if mw != nil {
				r.Use(mw)
			}
		}

		r.Post("/parse", rt.Signs.Parse)
		r.Get("/translate", rt.Signs.Translate)
		r.Post("/compare", rt.Signs.Compare)

		r.Route("/signs", func(r chi.Router) {
			r.Get("/", rt.Signs.List)
			r.Post("/", rt.Signs.Create)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", rt.Signs.Get)
				r.Delete("/", rt.Signs.Delete)
				r.Get("/similar", rt.Signs.Similar)
				r.Post("/reparse", rt.Signs.Reparse)
			})
		})
	})

	return r
}
