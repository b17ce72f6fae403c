// Package router sets up all HTTP routes and middleware chains. Routes
// fall into two groups: the open board API the device talks to, and the
// caregiver admin area behind the passcode lock.
package router

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"nutq/internal/handlers"
	"nutq/internal/middleware"
	"nutq/internal/session"
)

// New creates and returns the configured Chi router with all middleware
// and route groups wired up. secure marks cookies HTTPS-only.
func New(sessionStore *session.Store, board *handlers.Board, admin *handlers.Admin, auth *handlers.Auth, secure bool) chi.Router {
	r := chi.NewRouter()

	// Global middleware — applied to every request.
	r.Use(middleware.Recoverer)
	r.Use(middleware.Logger)
	r.Use(middleware.SecureHeaders)

	// Health check — no auth, no CSRF.
	r.Get("/health", healthHandler)

	// Board API — open. The device itself is the user; the caregiver lock
	// only guards editing.
	r.Route("/api/board", func(r chi.Router) {
		r.Get("/", board.Get)
		r.Post("/cards/{id}/select", board.SelectCard)
		r.Post("/sentence/speak", board.Speak)
		r.Delete("/sentence/last", board.RemoveLastWord)
		r.Delete("/sentence", board.ClearSentence)
		r.Put("/category", board.SetCategory)
	})

	// Caregiver admin — session, CSRF, and a rate-limited login.
	loginLimiter := middleware.NewRateLimiter(10, time.Minute)

	r.Route("/admin", func(r chi.Router) {
		r.Use(middleware.NewCSRF(secure))
		r.Use(middleware.LoadSession(sessionStore))

		// Opening the lock needs no session, but brute force trips the
		// per-IP limiter.
		r.With(loginLimiter.Middleware).Post("/login", auth.Login)
		r.Post("/logout", auth.Logout)

		// Everything else requires the lock to be open.
		r.Group(func(r chi.Router) {
			r.Use(middleware.RequireCaregiver)

			r.Route("/cards", func(r chi.Router) {
				r.Get("/", admin.ListCards)
				r.Post("/", admin.CreateCard)
				r.Put("/{id}", admin.UpdateCard)
				r.Delete("/{id}", admin.DeleteCard)
			})

			r.Route("/categories", func(r chi.Router) {
				r.Get("/", admin.ListCategories)
				r.Post("/", admin.CreateCategory)
				r.Put("/{id}", admin.UpdateCategory)
				r.Delete("/{id}", admin.DeleteCategory)
			})

			r.Put("/settings", admin.UpdateSettings)

			r.Route("/recordings", func(r chi.Router) {
				r.Post("/start", admin.StartRecording)
				r.Post("/stop", admin.StopRecording)
			})

			r.Post("/media", admin.MediaUpload)
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
