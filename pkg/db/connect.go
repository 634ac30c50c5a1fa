package db

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
)

// Connect establishes a single PostgreSQL connection with retry logic for
// reliable startup. Each session in the store's pool is dialed through this
// function, so transient network issues at boot degrade the pool instead of
// failing it outright.
func Connect(ctx context.Context, cfg Config) (*pgx.Conn, error) {
	connConfig, err := pgx.ParseConfig(cfg.ConnectionString)
	if err != nil {
		return nil, errors.Join(ErrFailedToParseDBConfig, err)
	}

	// Backoff grows linearly: attempt 1 waits RetryInterval, attempt 2 waits 2x.
	// This prevents thundering herd problems when multiple services restart simultaneously.
	attempts := max(cfg.RetryAttempts, 1)
	for i := range attempts {
		conn, err := pgx.ConnectConfig(ctx, connConfig)
		if err != nil {
			select {
			case <-ctx.Done():
				return nil, errors.Join(ErrFailedToOpenDBConnection, ctx.Err())
			case <-time.After(time.Duration(i+1) * cfg.RetryInterval):
			}
			continue
		}

		// Verify the connection with an actual ping to catch authentication
		// and permission issues that connect alone may not surface.
		if err := conn.Ping(ctx); err != nil {
			_ = conn.Close(ctx)
			select {
			case <-ctx.Done():
				return nil, errors.Join(ErrFailedToOpenDBConnection, ctx.Err())
			case <-time.After(time.Duration(i+1) * cfg.RetryInterval):
			}
			continue
		}

		return conn, nil
	}

	return nil, ErrFailedToOpenDBConnection
}
