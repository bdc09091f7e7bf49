// Package logger provides structured logging using Zap.
package logger

import (
	"sync"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

var (
	sugar *zap.SugaredLogger
	once  sync.Once
)

// Init initializes the global logger for the given environment and minimum
// level. For "production", it uses a JSON encoder. For all other
// environments, it uses a human-readable console encoder. An empty or
// unparseable level falls back to the encoder's default.
func Init(env, level string) {
	once.Do(func() {
		var config zap.Config
		if env == "production" {
			config = zap.NewProductionConfig()
		} else {
			config = zap.NewDevelopmentConfig()
		}

		if level != "" {
			if parsed, err := zapcore.ParseLevel(level); err == nil {
				config.Level = zap.NewAtomicLevelAt(parsed)
			}
		}

		base, err := config.Build()
		if err != nil {
			// Fallback to nop logger if initialization fails.
			base = zap.NewNop()
		}

		sugar = base.Sugar()
	})
}

// Get returns the global sugared logger.
// If Init has not been called, it initializes a development logger.
func Get() *zap.SugaredLogger {
	if sugar == nil {
		Init("development", "")
	}
	return sugar
}

// Sync flushes any buffered log entries. Call this before application exit.
func Sync() {
	if sugar != nil {
		_ = sugar.Sync()
	}
}
