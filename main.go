package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/valyala/fasthttp"
	"go.uber.org/zap"

	"inheritance-engine/internal/config"
	"inheritance-engine/internal/engine"
	"inheritance-engine/internal/handler"
	"inheritance-engine/internal/logging"
	"inheritance-engine/internal/snapshot"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	logger, _, err := logging.New(cfg.Environment, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	var store snapshot.Store = snapshot.NewMemoryStore(cfg.CacheCapacity)
	if cfg.RedisAddr != "" {
		rs := snapshot.NewRedisStore(cfg.RedisAddr, cfg.CacheTTL)
		ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		err := rs.Ping(ctx)
		cancel()
		if err != nil {
			logger.Warn("redis unavailable, using in-memory cache", zap.String("addr", cfg.RedisAddr), zap.Error(err))
			rs.Close()
		} else {
			store = rs
			defer rs.Close()
		}
	}

	h := handler.New(engine.New(store, logger), logger)

	logger.Info("inheritance engine starting", zap.String("port", cfg.Port), zap.String("environment", cfg.Environment))
	if err := fasthttp.ListenAndServe(":"+cfg.Port, h.Route); err != nil {
		logger.Fatal("server failed", zap.Error(err))
	}
}
