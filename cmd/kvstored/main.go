package main

import (
	"context"
	"embed"
	"log/slog"
	"os"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/getsentry/sentry-go"

	"github.com/kvstored/kvstored/internal"
	"github.com/kvstored/kvstored/internal/cache"
	"github.com/kvstored/kvstored/internal/coordinator"
	"github.com/kvstored/kvstored/internal/httpapi"
	"github.com/kvstored/kvstored/internal/pool"
	"github.com/kvstored/kvstored/middlewares"
	"github.com/kvstored/kvstored/pkg/db"
	"github.com/kvstored/kvstored/pkg/logger"
)

//go:embed migrations/*.sql
var migrations embed.FS

type config struct {
	DB     db.Config
	Pool   pool.Config
	Sentry logger.SentryConfig

	CacheCapacity   int           `env:"CACHE_CAPACITY" envDefault:"100"`
	Address         string        `env:"ADDRESS" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`
}

func main() {
	ctx := context.Background()

	var cfg config
	if err := env.Parse(&cfg); err != nil {
		slog.Error("failed to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	log := logger.NewWithSentry(cfg.Sentry, middlewares.RequestIDExtractor()).
		With(slog.String("component", "kvstored"))

	if err := db.Migrate(ctx, cfg.DB, migrations, log); err != nil {
		log.Error("failed to apply migrations", slog.String("error", err.Error()))
		os.Exit(1)
	}

	sessions, err := pool.New(ctx, cfg.Pool, func(ctx context.Context) (pool.Conn, error) {
		return db.Connect(ctx, cfg.DB)
	}, pool.WithLogger(log))
	if err != nil {
		log.Error("failed to construct session pool", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if !sessions.IsConnected() {
		// Startup-fatal: serving traffic without a single backend session
		// would leave every backend-bound request blocked in Acquire.
		log.Error("no backend sessions established, refusing to start")
		os.Exit(1)
	}

	coord := coordinator.New(cache.New(cfg.CacheCapacity), sessions, coordinator.WithLogger(log))

	app := internal.New(
		internal.WithCustomLogger(log),
		internal.WithMiddleware(
			middlewares.RequestID(),
			middlewares.Recover(),
			middlewares.CORS(),
		),
		internal.WithHandlers(httpapi.NewHandler(coord)),
		internal.WithErrorHandler(httpapi.ErrorHandler()),
		internal.WithHealthChecks(
			internal.WithReadinessCheck("postgres", sessions.Healthcheck),
		),
	)

	err = app.Run(cfg.Address,
		internal.Logger(log),
		internal.ShutdownTimeout(cfg.ShutdownTimeout),
		internal.WithShutdownHook(sessions.Close),
		internal.WithShutdownHook(func(ctx context.Context) error {
			sentry.Flush(2 * time.Second)
			return nil
		}),
	)
	if err != nil {
		log.Error("server error", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
