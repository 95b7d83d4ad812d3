package config

import (
	"strings"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "8080" {
		t.Fatalf("expected default port 8080, got %s", cfg.Port)
	}
	if cfg.CacheTTL != 10*time.Minute {
		t.Fatalf("expected default ttl 10m, got %s", cfg.CacheTTL)
	}
	if cfg.RedisAddr != "" {
		t.Fatalf("expected no redis by default, got %q", cfg.RedisAddr)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("CACHE_REDIS_ADDR", "localhost:6379")
	t.Setenv("CACHE_TTL", "30s")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Port != "9090" || cfg.RedisAddr != "localhost:6379" || cfg.CacheTTL != 30*time.Second {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestLoadError(t *testing.T) {
	t.Setenv("CACHE_CAPACITY", "not-an-int")

	_, err := Load()
	if err == nil {
		t.Fatal("expected error")
	}
	if !strings.Contains(err.Error(), "parse env:") {
		t.Fatalf("expected parse env prefix, got %v", err)
	}
}

func TestLoadRejectsZeroCapacity(t *testing.T) {
	t.Setenv("CACHE_CAPACITY", "0")

	if _, err := Load(); err == nil {
		t.Fatal("expected error")
	}
}
