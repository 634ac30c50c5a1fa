// Package backend translates the store's three logical operations into
// parameterised statements executed on a single borrowed session at a time.
// The package is stateless; callers supply the connection on every call.
package backend

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrUpsertFailed = errors.New("backend: upsert failed")
	ErrLookupFailed = errors.New("backend: lookup failed")
	ErrDeleteFailed = errors.New("backend: delete failed")
)

const (
	upsertQuery = `INSERT INTO kv_pairs (key, value) VALUES ($1, $2) ON CONFLICT (key) DO UPDATE SET value = EXCLUDED.value`
	lookupQuery = `SELECT value FROM kv_pairs WHERE key = $1`
	deleteQuery = `DELETE FROM kv_pairs WHERE key = $1`
)

// Querier is the connection surface the adapter needs, satisfied by a
// pooled session's connection.
type Querier interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// Upsert durably writes value under key, replacing any previous value.
func Upsert(ctx context.Context, q Querier, key, value string) error {
	if _, err := q.Exec(ctx, upsertQuery, key, value); err != nil {
		return errors.Join(ErrUpsertFailed, err)
	}
	return nil
}

// Lookup reads the value stored under key. The result is tri-state: the
// value with found=true, found=false for an absent key, or an error when
// the backend round trip itself failed.
func Lookup(ctx context.Context, q Querier, key string) (string, bool, error) {
	var value string
	err := q.QueryRow(ctx, lookupQuery, key).Scan(&value)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, errors.Join(ErrLookupFailed, err)
	}
	return value, true, nil
}

// Delete removes key. Deleting an absent key is not an error; the statement
// simply matches zero rows.
func Delete(ctx context.Context, q Querier, key string) error {
	if _, err := q.Exec(ctx, deleteQuery, key); err != nil {
		return errors.Join(ErrDeleteFailed, err)
	}
	return nil
}
