package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

// ErrMissingSecret indicates the signing secret is absent. The process must
// refuse to start rather than fail per-request.
var ErrMissingSecret = errors.New("config: JWT_SECRET is required")

type Config struct {
	Port      string        `env:"PORT,      default=8080"`
	Env       string        `env:"ENV,       default=development"`
	JWTSecret string        `env:"JWT_SECRET"`
	TokenTTL  time.Duration `env:"TOKEN_TTL, default=1h"`
	LogLevel  string        `env:"LOG_LEVEL, default=info"`

	Postgres PostgresConfig
	Mongo    MongoConfig
	Redis    RedisConfig
	AI       AIConfig

	LabelWorkers int `env:"LABEL_WORKERS, default=4"`
}

type PostgresConfig struct {
	DSN string `env:"POSTGRES_DSN, default=host=localhost user=postgres password=postgres dbname=citysphere port=5432 sslmode=disable"`
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI, default=mongodb://localhost:27017"`
	Database string `env:"MONGO_DB,  default=citysphere"`
}

type RedisConfig struct {
	Addr string `env:"REDIS_ADDR, default=localhost:6379"`
	DB   int    `env:"REDIS_DB,   default=0"`
}

type AIConfig struct {
	BaseURL string        `env:"AI_BASE_URL, default=https://generativelanguage.googleapis.com"`
	APIKey  string        `env:"AI_API_KEY"`
	Model   string        `env:"AI_MODEL,    default=gemini-1.5-flash"`
	Timeout time.Duration `env:"AI_TIMEOUT,  default=30s"`
}

// Load reads configuration from environment variables using go-envconfig and
// rejects fatally misconfigured processes (missing signing secret).
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, ErrMissingSecret
	}
	return &cfg, nil
}
