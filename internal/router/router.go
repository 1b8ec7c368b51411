package router

import (
	"net/http"
	"time"

	"cricket-scorecard-api/internal/handler"
	"cricket-scorecard-api/internal/middleware"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

// Config holds the configuration for creating a router.
type Config struct {
	Handler        *handler.Handler
	PlayerHandler  *handler.PlayerHandler
	InningsHandler *handler.InningsHandler
	Metrics        http.Handler
	RequestTimeout time.Duration
}

// New creates and configures the HTTP router.
func New(cfg Config) *chi.Mux {
	r := chi.NewRouter()

	timeout := cfg.RequestTimeout
	if timeout == 0 {
		timeout = 30 * time.Second
	}

	// Global middleware stack (applies to ALL routes)
	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.Metrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"X-Request-ID", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}))
	r.Use(chimiddleware.Timeout(timeout))

	// Banner and store introspection
	if cfg.Handler != nil {
		r.Get("/", cfg.Handler.Root)
		r.Get("/test", cfg.Handler.Test)
	}

	// Prometheus scrape endpoint
	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics)
	}

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		// Health check endpoints
		if cfg.Handler != nil {
			r.Get("/health", cfg.Handler.Health)
			r.Get("/ready", cfg.Handler.Ready)
		}

		// Player endpoints
		if cfg.PlayerHandler != nil {
			r.Route("/players", func(r chi.Router) {
				r.Post("/", cfg.PlayerHandler.Create)
				r.Get("/", cfg.PlayerHandler.List)
				r.Get("/{playerID}", cfg.PlayerHandler.Get)
				r.Get("/{playerID}/export", cfg.PlayerHandler.Export)
			})
		}

		// Innings endpoint
		if cfg.InningsHandler != nil {
			r.Post("/innings", cfg.InningsHandler.Create)
		}
	})

	return r
}
