package main

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	grpclib "google.golang.org/grpc"

	grpcapi "github.com/exemplar/itemsvc/internal/api/grpc"
	"github.com/exemplar/itemsvc/internal/api/rest"
	"github.com/exemplar/itemsvc/internal/auth"
	"github.com/exemplar/itemsvc/internal/cache"
	"github.com/exemplar/itemsvc/internal/config"
	"github.com/exemplar/itemsvc/internal/db/postgres"
	"github.com/exemplar/itemsvc/internal/health"
	"github.com/exemplar/itemsvc/internal/metrics"
	"github.com/exemplar/itemsvc/internal/service"
	pb "github.com/exemplar/itemsvc/proto/item/v1"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.LoadServiceConfig()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	setupLogging(cfg.LogLevel, cfg.LogFormat)

	slog.Info("starting item service", "version", version)

	if err := runMigrations(cfg.MigrationsPath, cfg.DBURL); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	store, err := postgres.New(postgres.Config{
		URL:             cfg.DBURL,
		MaxOpenConns:    cfg.DBMaxOpenConns,
		MaxIdleConns:    cfg.DBMaxIdleConns,
		ConnMaxLifetime: cfg.DBConnMaxLifetime,
		ConnMaxIdleTime: cfg.DBConnMaxIdleTime,
		ConnectAttempts: cfg.DBConnectAttempts,
		ConnectBackoff:  cfg.DBConnectBackoff,
	})
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer store.Close()

	slog.Info("database connected")

	var itemCache *cache.ItemCache
	if cfg.RedisURL != "" {
		itemCache, err = cache.New(cfg.RedisURL, cfg.CacheTTL)
		if err != nil {
			return fmt.Errorf("connect to redis: %w", err)
		}
		defer itemCache.Close()
		slog.Info("item cache enabled")
	}

	tokens, err := setupAuth(cfg)
	if err != nil {
		return fmt.Errorf("setup auth: %w", err)
	}

	checks := []health.Check{
		{Name: "database", Check: store.Ping},
	}
	if itemCache != nil {
		checks = append(checks, health.Check{Name: "cache", Check: itemCache.Ping})
	}
	checker := health.NewChecker(2*time.Second, checks...)

	var m *metrics.Metrics
	if cfg.MetricsEnabled {
		m = metrics.New()
	}

	svc := service.New(store, itemCache)

	grpcAddr := fmt.Sprintf("%s:%d", cfg.GRPCHost, cfg.GRPCPort)
	listener, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", grpcAddr, err)
	}

	grpcServer := grpclib.NewServer()
	pb.RegisterItemServiceServer(grpcServer, grpcapi.NewServer(svc))

	go func() {
		slog.Info("grpc server listening", "address", grpcAddr)
		if err := grpcServer.Serve(listener); err != nil {
			slog.Error("grpc server failed", "error", err)
		}
	}()

	restServer := rest.NewServer(rest.Config{
		Host:             cfg.RESTHost,
		Port:             cfg.RESTPort,
		CORSOrigins:      cfg.CORSOrigins,
		AuthEnabled:      cfg.AuthEnabled,
		APIKey:           cfg.APIKey,
		RateLimitEnabled: cfg.RateLimitEnabled,
		RateLimitRPS:     cfg.RateLimitRPS,
		RateLimitBurst:   cfg.RateLimitBurst,
		MetricsEnabled:   cfg.MetricsEnabled,
		Version:          version,
	}, svc, tokens, checker, m)
	go func() {
		if err := restServer.Start(); err != nil {
			slog.Error("rest server failed", "error", err)
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)
	<-sigCh

	slog.Info("shutdown signal received, stopping gracefully")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := restServer.Shutdown(shutdownCtx); err != nil {
		slog.Error("rest server shutdown failed", "error", err)
	}

	grpcServer.GracefulStop()

	slog.Info("shutdown complete")
	return nil
}

func setupAuth(cfg *config.ServiceConfig) (*auth.TokenManager, error) {
	var users []auth.User
	if cfg.AuthUsername != "" && cfg.AuthPasswordHash != "" {
		users = append(users, auth.User{
			ID:           uuid.NewString(),
			Username:     cfg.AuthUsername,
			PasswordHash: cfg.AuthPasswordHash,
			Roles:        []string{"admin"},
		})
	} else if cfg.AuthEnabled {
		// No operator-provided user. Seed a dev account so the token
		// endpoints are usable out of the box.
		hash, err := auth.HashPassword("admin")
		if err != nil {
			return nil, err
		}
		users = append(users, auth.User{
			ID:           uuid.NewString(),
			Username:     "admin",
			PasswordHash: hash,
			Roles:        []string{"admin"},
		})
		slog.Warn("no auth user configured, seeded default dev account", "username", "admin")
	}

	return auth.NewTokenManager(auth.Config{
		Secret:        cfg.JWTSecret,
		Algorithm:     cfg.JWTAlgorithm,
		AccessExpiry:  cfg.AccessTokenExpiry,
		RefreshExpiry: cfg.RefreshTokenExpiry,
		Users:         users,
	})
}

func runMigrations(path, dbURL string) error {
	m, err := migrate.New(path, dbURL)
	if err != nil {
		return fmt.Errorf("migration init: %w", err)
	}
	defer m.Close()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("migration up: %w", err)
	}

	slog.Info("database migrations completed")
	return nil
}

func setupLogging(level, format string) {
	var logLevel slog.Level
	switch level {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	var handler slog.Handler
	if format == "json" {
		handler = slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	} else {
		handler = slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: logLevel})
	}

	slog.SetDefault(slog.New(handler))
}
