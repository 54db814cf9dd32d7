// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up the HTTP routes and middleware chain for the
// toolnav JSON API.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"toolnav/internal/handlers"
	"toolnav/internal/middleware"
)

// New creates the configured Chi router. limiter may be nil to disable
// rate limiting of the /api routes.
func New(api *handlers.API, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	r.NotFound(notFoundHandler)
	r.MethodNotAllowed(methodNotAllowedHandler)

	// Health check stays outside the rate limit.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		if limiter != nil {
			r.Use(limiter.Middleware)
		}

		r.Route("/categories", func(r chi.Router) {
			r.Get("/", api.CategoriesList)
			r.Post("/", api.CategoryCreate)
			r.Get("/{id}", api.CategoryGet)
			r.Put("/{id}", api.CategoryUpdate)
			r.Delete("/{id}", api.CategoryDelete)
		})

		r.Route("/tools", func(r chi.Router) {
			r.Get("/", api.ToolsList)
			r.Post("/", api.ToolCreate)
			r.Get("/favorites", api.FavoritesList)
			r.Put("/order", api.ToolsReorder)
			r.Get("/{id}", api.ToolGet)
			r.Put("/{id}", api.ToolUpdate)
			r.Delete("/{id}", api.ToolDelete)
			r.Post("/{id}/favorite", api.ToolToggleFavorite)
			r.Post("/{id}/click", api.ToolClick)
		})

		r.Post("/reset", api.Reset)
		r.Get("/stats", api.Stats)
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte(`{"error":"not found"}`))
}

func methodNotAllowedHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusMethodNotAllowed)
	w.Write([]byte(`{"error":"method not allowed"}`))
}
