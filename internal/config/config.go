package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	Port          string        `env:"PORT" envDefault:"8080"`
	Environment   string        `env:"ENVIRONMENT" envDefault:"production"`
	LogLevel      string        `env:"LOG_LEVEL" envDefault:"info"`
	RedisAddr     string        `env:"CACHE_REDIS_ADDR"`
	CacheTTL      time.Duration `env:"CACHE_TTL" envDefault:"10m"`
	CacheCapacity int           `env:"CACHE_CAPACITY" envDefault:"1024"`
}

// Load reads Config from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.CacheCapacity <= 0 {
		return Config{}, fmt.Errorf("parse env: CACHE_CAPACITY must be positive, got %d", cfg.CacheCapacity)
	}
	return cfg, nil
}
