// Package logging builds the service's zap logger.
package logging

import (
	"fmt"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// New returns a development (console) logger for "development" and "local"
// environments and a production (JSON) logger otherwise. An empty level
// defaults to debug in development and info elsewhere.
func New(environment, level string) (*zap.Logger, zap.AtomicLevel, error) {
	dev := environment == "development" || environment == "local"

	cfg := zap.NewProductionConfig()
	if dev {
		cfg = zap.NewDevelopmentConfig()
	}
	cfg.EncoderConfig.EncodeLevel = zapcore.CapitalLevelEncoder
	cfg.DisableStacktrace = true

	atomic := cfg.Level
	if strings.TrimSpace(level) != "" {
		var parsed zapcore.Level
		if err := parsed.Set(level); err != nil {
			return nil, zap.AtomicLevel{}, fmt.Errorf("invalid level %q: %w", level, err)
		}
		atomic = zap.NewAtomicLevelAt(parsed)
	}
	cfg.Level = atomic

	logger, err := cfg.Build()
	if err != nil {
		return nil, zap.AtomicLevel{}, fmt.Errorf("build logger: %w", err)
	}
	return logger, atomic, nil
}
