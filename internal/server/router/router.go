// Package router assembles the chi route tree and the middleware
// stack.
package router

import (
	"log/slog"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/iudanet/habitsync/internal/server/handlers"
	"github.com/iudanet/habitsync/internal/server/jwt"
	"github.com/iudanet/habitsync/internal/server/middleware"
	"github.com/iudanet/habitsync/internal/server/storage"
)

// Deps bundles what the HTTP surface needs
type Deps struct {
	Logger  *slog.Logger
	Users   storage.UserStorage
	Habits  storage.HabitStorage
	Tokens  *jwt.Service
	Version string

	// AuthRateLimit caps auth requests per minute per IP;
	// zero disables limiting (tests)
	AuthRateLimit int
}

// New builds the route tree
func New(deps Deps) *chi.Mux {
	authHandler := handlers.NewAuthHandler(deps.Logger, deps.Users, deps.Tokens)
	habitsHandler := handlers.NewHabitsHandler(deps.Logger, deps.Habits)
	logsHandler := handlers.NewLogsHandler(deps.Logger, deps.Habits)
	healthHandler := handlers.NewHealthHandler(deps.Logger, deps.Version)

	r := chi.NewRouter()
	r.Use(middleware.RecoveryMiddleware(deps.Logger))
	r.Use(middleware.LoggingMiddleware(deps.Logger))

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/health", healthHandler.Health)
		r.Head("/health", healthHandler.Health)

		r.Route("/auth", func(r chi.Router) {
			if deps.AuthRateLimit > 0 {
				r.Use(middleware.RateLimitMiddleware(deps.AuthRateLimit, time.Minute, deps.Logger))
			}
			r.Post("/register", authHandler.Register)
			r.Post("/login", authHandler.Login)
		})

		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(deps.Logger, deps.Tokens))

			r.Route("/habits", func(r chi.Router) {
				r.Get("/", habitsHandler.List)
				r.Post("/", habitsHandler.Create)
				r.Put("/{habitID}", habitsHandler.Update)
				r.Delete("/{habitID}", habitsHandler.Delete)

				r.Post("/{habitID}/logs", logsHandler.Create)
				r.Delete("/{habitID}/logs/{date}", logsHandler.Delete)
			})

			r.Get("/logs", logsHandler.List)
		})
	})

	return r
}
