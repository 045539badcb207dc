// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package router sets up all HTTP routes and middleware chains for the
// promptpress API. Read routes are cheap and uncapped; mutation routes are
// rate-limited per client IP.
package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"promptpress/internal/handlers"
	"promptpress/internal/middleware"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. The rate limiter guards only the mutation
// endpoints.
func New(templates *handlers.Templates, prompts *handlers.Prompts, limiter *middleware.RateLimiter) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)

	// Health check.
	r.Get("/health", healthHandler)

	r.Route("/api", func(r chi.Router) {
		// Template catalog — read-only.
		r.Get("/templates", templates.List)
		r.Get("/templates/{id}", templates.Get)
		r.Post("/templates/{id}/render", templates.Render)

		// Saved prompts — reads.
		r.Get("/saved", prompts.List)
		r.Get("/saved/{id}", prompts.Get)

		// Saved prompts — mutations, rate-limited.
		r.Group(func(r chi.Router) {
			r.Use(limiter.Middleware)
			r.Post("/save-prompt", prompts.Save)
			r.Post("/delete-prompt", prompts.Delete)
			r.Post("/update-rating", prompts.UpdateRating)
		})
	})

	return r
}

// healthHandler returns a simple JSON health check response.
func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
