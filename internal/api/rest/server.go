package rest

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/exemplar/itemsvc/internal/api/rest/handlers"
	"github.com/exemplar/itemsvc/internal/auth"
	"github.com/exemplar/itemsvc/internal/health"
	"github.com/exemplar/itemsvc/internal/metrics"
	"github.com/exemplar/itemsvc/internal/service"
)

type Config struct {
	Host string
	Port int

	CORSOrigins []string

	AuthEnabled bool
	APIKey      string

	RateLimitEnabled bool
	RateLimitRPS     float64
	RateLimitBurst   int

	MetricsEnabled bool

	Version string
}

type Server struct {
	cfg        Config
	httpServer *http.Server
	tokens     *auth.TokenManager
	metrics    *metrics.Metrics

	itemHandler   *handlers.ItemHandler
	healthHandler *handlers.HealthHandler
	authHandler   *handlers.AuthHandler
}

func NewServer(cfg Config, svc *service.Service, tokens *auth.TokenManager, checker *health.Checker, m *metrics.Metrics) *Server {
	s := &Server{
		cfg:           cfg,
		tokens:        tokens,
		metrics:       m,
		itemHandler:   handlers.NewItemHandler(svc),
		healthHandler: handlers.NewHealthHandler(checker, cfg.Version),
		authHandler:   handlers.NewAuthHandler(tokens),
	}

	router := s.setupRouter()

	s.httpServer = &http.Server{
		Addr:         fmt.Sprintf("%s:%d", cfg.Host, cfg.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s
}

// Handler exposes the assembled router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

func (s *Server) Start() error {
	slog.Info("starting REST server", "addr", s.httpServer.Addr)
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("REST server failed: %w", err)
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	slog.Info("shutting down REST server")
	return s.httpServer.Shutdown(ctx)
}
