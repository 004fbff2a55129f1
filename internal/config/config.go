package config

import (
	"fmt"
	"log"
	"time"

	"github.com/caarlos0/env/v9"
	"github.com/joho/godotenv"
)

// Config holds the service settings read from the environment.
type Config struct {
	Env              string        `env:"ENV" envDefault:"development"`
	Port             string        `env:"PORT" envDefault:"3000"`
	LogLevel         string        `env:"LOG_LEVEL" envDefault:"info"`
	CORSAllowOrigins string        `env:"CORS_ALLOW_ORIGINS" envDefault:"http://localhost:5173"`
	RateLimitMax     int           `env:"RATE_LIMIT_MAX" envDefault:"120"`
	RateLimitWindow  time.Duration `env:"RATE_LIMIT_WINDOW" envDefault:"1m"`
	BatchMaxItems    int           `env:"BATCH_MAX_ITEMS" envDefault:"100"`
	ShutdownTimeout  time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"10s"`
	Redis            RedisConfig
}

// RedisConfig configures the optional rate-limit store. An empty Host
// disables Redis and the limiter keeps its counters in memory.
type RedisConfig struct {
	Host     string `env:"REDIS_HOST"`
	Port     string `env:"REDIS_PORT" envDefault:"6379"`
	Password string `env:"REDIS_PASSWORD"`
	DB       int    `env:"REDIS_DB" envDefault:"0"`
}

// Enabled reports whether a Redis host was configured.
func (r RedisConfig) Enabled() bool {
	return r.Host != ""
}

// LoadEnv loads variables from a .env file if present.
func LoadEnv() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file found: %v", err)
	}
}

// Load parses the environment into a Config.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.RateLimitMax <= 0 {
		return nil, fmt.Errorf("RATE_LIMIT_MAX must be positive, got %d", cfg.RateLimitMax)
	}
	if cfg.BatchMaxItems <= 0 {
		return nil, fmt.Errorf("BATCH_MAX_ITEMS must be positive, got %d", cfg.BatchMaxItems)
	}

	return &cfg, nil
}

// IsProduction checks if the app runs in production mode.
func (c *Config) IsProduction() bool {
	return c.Env == "production"
}
