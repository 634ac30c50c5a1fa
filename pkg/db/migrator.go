package db

import (
	"context"
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
)

// Migrate applies pending schema migrations from the embedded filesystem.
// It runs on a short-lived database/sql handle bridged from a pgx connection
// config, separate from the runtime session pool, and closes it when done.
func Migrate(ctx context.Context, cfg Config, migrations embed.FS, log *slog.Logger) error {
	connConfig, err := pgx.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return errors.Join(ErrFailedToParseDBConfig, err)
	}

	db := sql.OpenDB(stdlib.GetConnector(*connConfig))
	defer func() {
		if err := db.Close(); err != nil {
			log.Warn("failed to close migration connection", slog.String("error", err.Error()))
		}
	}()

	goose.SetBaseFS(migrations)
	goose.SetLogger(&gooseLoggerAdapter{log})
	goose.SetTableName(cfg.MigrationsTable)

	if err := goose.SetDialect("postgres"); err != nil {
		return errors.Join(ErrSetDialect, err)
	}

	if err := goose.UpContext(ctx, db, "."); err != nil {
		return errors.Join(ErrApplyMigrations, err)
	}

	return nil
}

type gooseLoggerAdapter struct {
	log *slog.Logger
}

func (g *gooseLoggerAdapter) Printf(format string, args ...any) {
	g.log.Info(fmt.Sprintf(format, args...))
}

func (g *gooseLoggerAdapter) Fatalf(format string, args ...any) {
	// Log at error level only - goose will return an error that propagates up.
	// We avoid os.Exit(1) to allow proper shutdown and cleanup.
	g.log.Error(fmt.Sprintf(format, args...))
}
