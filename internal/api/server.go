package api

import (
	"log/slog"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	corslib "github.com/rs/cors"
	httpSwagger "github.com/swaggo/http-swagger/v2"

	"github.com/ptpsports/clinic-facts/internal/api/handler"
	"github.com/ptpsports/clinic-facts/internal/cache"
	"github.com/ptpsports/clinic-facts/internal/config"
	"github.com/ptpsports/clinic-facts/internal/metrics"
	"github.com/ptpsports/clinic-facts/internal/store"
)

// NewRouter creates and configures the Chi router with all middleware and routes.
func NewRouter(st store.Store, appCache *cache.Cache, m *metrics.Metrics, cfg *config.Config, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// --- Middleware stack ---
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(TimingMiddleware)
	r.Use(LoggingMiddleware(logger))
	r.Use(middleware.Compress(5)) // gzip

	// CORS
	c := corslib.New(corslib.Options{
		AllowedOrigins:   cfg.CORSAllowOrigins,
		AllowedMethods:   []string{"GET", "HEAD", "OPTIONS", "PUT"},
		AllowedHeaders:   []string{"Accept", "Accept-Encoding", "Content-Type", "If-None-Match", "Cache-Control"},
		ExposedHeaders:   []string{"X-Process-Time", "X-Cache", "ETag"},
		AllowCredentials: false,
	})
	r.Use(c.Handler)

	// Rate limiting
	if cfg.RateLimitEnabled {
		r.Use(RateLimitMiddleware(cfg.RateLimitRequests, cfg.RateLimitWindow))
	}

	// --- Handler dependencies ---
	h := handler.New(st, appCache, m, cfg, logger)

	// --- Routes ---

	r.Get("/", h.Root)

	r.Route("/health", func(r chi.Router) {
		r.Get("/", h.HealthCheck)
		r.Get("/db", h.HealthCheckDB)
		r.Get("/cache", h.HealthCheckCache)
	})

	r.Handle("/metrics", m.Handler())

	r.Get("/docs/*", httpSwagger.Handler(
		httpSwagger.URL("/docs/doc.json"),
	))

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/products", h.ListProducts)

		r.Route("/products/{productID}", func(r chi.Router) {
			// Page render
			r.Get("/facts", h.GetFacts)
			r.Get("/event", h.GetEvent)
			r.Get("/meta", h.GetMeta)
			r.Get("/head", h.GetHead)

			// Product tabs
			r.Get("/location", h.GetLocation)
			r.Get("/schedule", h.GetSchedule)
			r.Get("/safety", h.GetSafety)

			// Admin
			r.Put("/location", h.PutLocation)
			r.Put("/schedule", h.PutSchedule)
			r.Put("/safety", h.PutSafety)
		})
	})

	return r
}
