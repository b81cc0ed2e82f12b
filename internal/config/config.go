package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Supported database types.
const (
	DBTypeSQLite   = "sqlite"
	DBTypePostgres = "postgres"
)

// Config holds all configuration for the application.
type Config struct {
	// Application
	Environment string `env:"APP_ENV" envDefault:"development"`

	// Server configuration
	ServerPort      string        `env:"SERVER_PORT" envDefault:"3000"`
	ReadTimeout     time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout    time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout     time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	CORSOrigins     []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"http://localhost:4200" envSeparator:","`

	// Database configuration
	DBType              string        `env:"DB_TYPE" envDefault:"sqlite"`
	DBHost              string        `env:"DB_HOST" envDefault:"localhost"`
	DBPort              int           `env:"DB_PORT" envDefault:"5432"`
	DBUser              string        `env:"DB_USERNAME" envDefault:"superuser"`
	DBPassword          string        `env:"DB_PASSWORD" envDefault:"superpass123"`
	DBName              string        `env:"DB_DATABASE"`
	DBSSLMode           string        `env:"DB_SSL_MODE" envDefault:"disable"`
	DBMaxConns          int32         `env:"DB_MAX_CONNS" envDefault:"25"`
	DBMinConns          int32         `env:"DB_MIN_CONNS" envDefault:"5"`
	DBMaxConnLifetime   time.Duration `env:"DB_MAX_CONN_LIFETIME" envDefault:"1h"`
	DBMaxConnIdleTime   time.Duration `env:"DB_MAX_CONN_IDLE_TIME" envDefault:"30m"`
	DBHealthCheckPeriod time.Duration `env:"DB_HEALTH_CHECK_PERIOD" envDefault:"1m"`
	DBAutoMigrate       bool          `env:"DB_AUTO_MIGRATE" envDefault:"true"`

	// Redis stats cache; empty address disables caching
	RedisAddr     string        `env:"REDIS_ADDR"`
	RedisPassword string        `env:"REDIS_PASSWORD"`
	RedisDB       int           `env:"REDIS_DB" envDefault:"0"`
	StatsCacheTTL time.Duration `env:"STATS_CACHE_TTL" envDefault:"30s"`

	// Logging configuration
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFormat string `env:"LOG_FORMAT" envDefault:"json"`
}

// Load loads configuration from environment variables.
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		var aggErr env.AggregateError
		if errors.As(err, &aggErr) && len(aggErr.Errors) > 0 {
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}

	if cfg.DBName == "" {
		cfg.DBName = cfg.defaultDBName()
	}

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// IsProduction reports whether the application runs in production.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

func (c *Config) defaultDBName() string {
	if c.DBType == DBTypePostgres {
		return "superheroes"
	}
	return "superheroes.db"
}

// validate validates the configuration.
func (c *Config) validate() error {
	if c.ServerPort == "" {
		return fmt.Errorf("SERVER_PORT is required")
	}
	switch c.DBType {
	case DBTypeSQLite:
	case DBTypePostgres:
		if c.DBHost == "" {
			return fmt.Errorf("DB_HOST is required for postgres")
		}
		if c.DBUser == "" {
			return fmt.Errorf("DB_USERNAME is required for postgres")
		}
		if c.DBMaxConns < 1 {
			return fmt.Errorf("DB_MAX_CONNS must be at least 1")
		}
		if c.DBMinConns < 0 || c.DBMinConns > c.DBMaxConns {
			return fmt.Errorf("DB_MIN_CONNS must be between 0 and DB_MAX_CONNS")
		}
	default:
		return fmt.Errorf("DB_TYPE must be one of: %s, %s", DBTypeSQLite, DBTypePostgres)
	}
	if c.StatsCacheTTL <= 0 {
		return fmt.Errorf("STATS_CACHE_TTL must be positive")
	}
	switch c.LogFormat {
	case "json", "text":
	default:
		return fmt.Errorf("LOG_FORMAT must be json or text")
	}
	return nil
}
