package internal

import (
	"context"
	"log/slog"
	"time"
)

// runConfig holds configuration for App.Run.
type runConfig struct {
	logger          *slog.Logger
	shutdownHooks   []func(context.Context) error
	baseCtx         context.Context
	shutdownTimeout time.Duration
}

// RunOption configures App.Run.
type RunOption func(*runConfig)

func buildRunConfig(opts ...RunOption) *runConfig {
	cfg := &runConfig{}
	for _, opt := range opts {
		opt(cfg)
	}
	return cfg
}

// Logger sets the logger used for server startup/shutdown messages.
func Logger(l *slog.Logger) RunOption {
	return func(cfg *runConfig) {
		cfg.logger = l
	}
}

// ShutdownTimeout sets the maximum time allowed for graceful shutdown.
func ShutdownTimeout(d time.Duration) RunOption {
	return func(cfg *runConfig) {
		cfg.shutdownTimeout = d
	}
}

// WithShutdownHook registers a function to run during graceful shutdown,
// such as closing a connection pool.
func WithShutdownHook(hook func(context.Context) error) RunOption {
	return func(cfg *runConfig) {
		cfg.shutdownHooks = append(cfg.shutdownHooks, hook)
	}
}

// BaseContext sets the base context for signal handling, useful in tests.
func BaseContext(ctx context.Context) RunOption {
	return func(cfg *runConfig) {
		cfg.baseCtx = ctx
	}
}
