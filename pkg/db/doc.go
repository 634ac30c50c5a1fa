// Package db provides PostgreSQL connection and migration utilities.
//
// This package wraps [github.com/jackc/pgx/v5] at the single-connection
// level. It deliberately does not pool: the store maintains its own bounded
// session pool, and each of those sessions is dialed through [Connect].
//
// # Features
//
//   - Single-connection dialing with retry logic during startup
//   - Connection verification via ping to catch authentication issues early
//   - Database migrations using [github.com/pressly/goose/v3] over an
//     embedded filesystem, run on a short-lived database/sql handle
//   - Environment-based configuration for deployment convenience
//
// # Configuration
//
// All settings are loaded from environment variables:
//
//	DATABASE_CONN_URL         - PostgreSQL connection URL (required)
//	DATABASE_MIGRATIONS_TABLE - Migrations table name (default: schema_migrations)
//	DATABASE_RETRY_ATTEMPTS   - Connection retry attempts (default: 3)
//	DATABASE_RETRY_INTERVAL   - Base retry interval (default: 5s)
//
// # Usage
//
// Apply migrations once at startup, then dial sessions for the pool:
//
//	//go:embed migrations/*.sql
//	var migrations embed.FS
//
//	var cfg db.Config
//	if err := env.Parse(&cfg); err != nil {
//		log.Fatal(err)
//	}
//
//	if err := db.Migrate(ctx, cfg, migrations, logger); err != nil {
//		log.Fatal(err)
//	}
//
//	conn, err := db.Connect(ctx, cfg)
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer conn.Close(ctx)
//
// Migration files follow goose's naming convention (00001_create_table.sql)
// with -- +goose Up and -- +goose Down annotations.
//
// # Error Handling
//
// The package defines sentinel errors for common failure modes:
//
//   - [ErrFailedToParseDBConfig] - Invalid connection string format
//   - [ErrFailedToOpenDBConnection] - Connection failed after all retries
//   - [ErrSetDialect] - Migration dialect configuration error
//   - [ErrApplyMigrations] - Migration execution failed
//
// Errors are wrapped using [errors.Join] to preserve the original error context.
package db
