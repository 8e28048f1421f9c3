package config

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-envconfig"
)

type Config struct {
	Port     string        `env:"PORT,      default=8080"`
	Env      string        `env:"ENV,       default=development"`
	LogLevel string        `env:"LOG_LEVEL, default=info"`
	TokenTTL time.Duration `env:"TOKEN_TTL, default=24h"`

	// JWTSecret signs every session token. The process refuses to start
	// without it.
	JWTSecret string `env:"JWT_SECRET"`

	BcryptCost int `env:"BCRYPT_COST, default=12"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS, default=http://localhost:3000"`

	AuditWorkers int `env:"AUDIT_WORKERS, default=4"`

	LoginMaxFailures int           `env:"LOGIN_MAX_FAILURES, default=10"`
	LoginWindow      time.Duration `env:"LOGIN_WINDOW,       default=15m"`

	Mongo MongoConfig
	Redis RedisConfig
}

type MongoConfig struct {
	URI      string `env:"MONGO_URI"`
	Database string `env:"MONGO_DB, default=marketplace"`
}

type RedisConfig struct {
	Addr     string `env:"REDIS_ADDR, default=localhost:6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB,   default=0"`
}

// Load reads configuration from environment variables using go-envconfig.
func Load(ctx context.Context) (*Config, error) {
	var cfg Config
	if err := envconfig.Process(ctx, &cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return &cfg, nil
}

// Validate reports the fatal startup conditions: a missing signing secret or
// store connection string cannot be recovered per-request.
func (c *Config) Validate() error {
	if c.JWTSecret == "" {
		return errors.New("config: JWT_SECRET is required")
	}
	if c.Mongo.URI == "" {
		return errors.New("config: MONGO_URI is required")
	}
	return nil
}

// Development reports whether the process runs with development conveniences
// (pretty logs, detailed errors).
func (c *Config) Development() bool {
	return c.Env == "development"
}
