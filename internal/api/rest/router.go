package rest

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/exemplar/itemsvc/internal/api/rest/middleware"
)

func (s *Server) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.Recovery)
	r.Use(middleware.RequestID)
	r.Use(middleware.Logging)
	r.Use(middleware.CORS(s.cfg.CORSOrigins))
	if s.cfg.MetricsEnabled {
		r.Use(middleware.Metrics(s.metrics))
	}
	if s.cfg.RateLimitEnabled {
		limiter := middleware.NewRateLimiter(s.cfg.RateLimitRPS, s.cfg.RateLimitBurst)
		r.Use(limiter.Middleware)
	}

	r.Route("/health", func(r chi.Router) {
		r.Get("/", s.healthHandler.HandleHealth)
		r.Get("/live", s.healthHandler.HandleLiveness)
		r.Get("/ready", s.healthHandler.HandleReadiness)
		if s.cfg.MetricsEnabled {
			r.Method(http.MethodGet, "/metrics", s.metrics.Handler())
		}
	})

	r.Route("/auth", func(r chi.Router) {
		r.Post("/login", s.authHandler.HandleLogin)
		r.Post("/refresh", s.authHandler.HandleRefresh)
	})

	r.Route("/api/v1", func(r chi.Router) {
		if s.cfg.AuthEnabled {
			r.Use(middleware.Auth(s.tokens, s.cfg.APIKey))
		}

		r.Route("/items", func(r chi.Router) {
			r.Get("/", s.itemHandler.HandleListItems)
			r.Post("/", s.itemHandler.HandleCreateItem)
			r.Get("/{id}", s.itemHandler.HandleGetItem)
			r.Put("/{id}", s.itemHandler.HandleUpdateItem)
			r.Delete("/{id}", s.itemHandler.HandleDeleteItem)
		})
	})

	return r
}
