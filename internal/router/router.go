// Package router sets up all HTTP routes and middleware chains for the
// ShopForge engine. It organizes routes into the authenticated editor API
// and the public storefront lookup.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"shopforge/internal/handlers"
	"shopforge/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up.
func New(editor *handlers.Editor, public *handlers.Public) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — no auth.
	r.Get("/health", healthHandler)

	// Editor API — owner identity required on every route.
	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.RequireOwner)

		r.Get("/layouts", editor.Layouts)

		r.Route("/site", func(r chi.Router) {
			r.Get("/", editor.GetSite)
			r.Put("/", editor.SaveSite)
			r.Post("/actions", editor.ApplyAction)
			r.Get("/coach", editor.Coach)
			r.Post("/hero-image", editor.HeroImage)

			// Publishing is rate limited: slug claims hit the store's
			// unique index and should not be hammered.
			r.Group(func(r chi.Router) {
				limiter := middleware.NewRateLimiter(10, time.Minute)
				r.Use(limiter.Middleware)
				r.Post("/publish", editor.Publish)
				r.Post("/unpublish", editor.Unpublish)
			})
		})
	})

	// Public storefront lookup by slug.
	r.Get("/s/{slug}", public.Site)

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
