package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

type ServiceConfig struct {
	DBURL string `env:"ITEMSVC_DB_URL,required"`

	RESTHost string `env:"ITEMSVC_REST_HOST" envDefault:"0.0.0.0"`
	RESTPort int    `env:"ITEMSVC_REST_PORT" envDefault:"8080"`

	GRPCHost string `env:"ITEMSVC_GRPC_HOST" envDefault:"0.0.0.0"`
	GRPCPort int    `env:"ITEMSVC_GRPC_PORT" envDefault:"9090"`

	CORSOrigins []string `env:"ITEMSVC_CORS_ORIGINS" envSeparator:","`

	AuthEnabled        bool          `env:"ITEMSVC_AUTH_ENABLED" envDefault:"true"`
	JWTSecret          string        `env:"ITEMSVC_JWT_SECRET" envDefault:"dev-secret-change-me"`
	JWTAlgorithm       string        `env:"ITEMSVC_JWT_ALGORITHM" envDefault:"HS256"`
	AccessTokenExpiry  time.Duration `env:"ITEMSVC_ACCESS_TOKEN_EXPIRY" envDefault:"30m"`
	RefreshTokenExpiry time.Duration `env:"ITEMSVC_REFRESH_TOKEN_EXPIRY" envDefault:"168h"`
	APIKey             string        `env:"ITEMSVC_API_KEY"`
	AuthUsername       string        `env:"ITEMSVC_AUTH_USERNAME"`
	AuthPasswordHash   string        `env:"ITEMSVC_AUTH_PASSWORD_HASH"`

	RedisURL string        `env:"ITEMSVC_REDIS_URL"`
	CacheTTL time.Duration `env:"ITEMSVC_CACHE_TTL" envDefault:"5m"`

	MetricsEnabled   bool    `env:"ITEMSVC_METRICS_ENABLED" envDefault:"true"`
	RateLimitEnabled bool    `env:"ITEMSVC_RATE_LIMIT_ENABLED" envDefault:"false"`
	RateLimitRPS     float64 `env:"ITEMSVC_RATE_LIMIT_RPS" envDefault:"50"`
	RateLimitBurst   int     `env:"ITEMSVC_RATE_LIMIT_BURST" envDefault:"100"`

	DBMaxOpenConns    int           `env:"ITEMSVC_DB_MAX_OPEN_CONNS" envDefault:"100"`
	DBMaxIdleConns    int           `env:"ITEMSVC_DB_MAX_IDLE_CONNS" envDefault:"10"`
	DBConnMaxLifetime time.Duration `env:"ITEMSVC_DB_CONN_MAX_LIFETIME" envDefault:"5m"`
	DBConnMaxIdleTime time.Duration `env:"ITEMSVC_DB_CONN_MAX_IDLE_TIME" envDefault:"5m"`
	DBConnectAttempts int           `env:"ITEMSVC_DB_CONNECT_ATTEMPTS" envDefault:"5"`
	DBConnectBackoff  time.Duration `env:"ITEMSVC_DB_CONNECT_BACKOFF" envDefault:"2s"`

	MigrationsPath string `env:"ITEMSVC_MIGRATIONS_PATH" envDefault:"file://migrations"`

	LogLevel  string `env:"ITEMSVC_LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"ITEMSVC_LOG_FORMAT" envDefault:"json"`
}

func LoadServiceConfig() (*ServiceConfig, error) {
	cfg := &ServiceConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse service config: %w", err)
	}
	return cfg, nil
}
