// Package coordinator sequences cache and backend operations so successful
// writes are reflected in both places and failed writes leave the cache no
// more stale than before. The backend is always written first: the cache
// must never advertise a value that was not durably stored.
package coordinator

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"golang.org/x/sync/singleflight"

	"github.com/kvstored/kvstored/internal/backend"
	"github.com/kvstored/kvstored/internal/cache"
	"github.com/kvstored/kvstored/internal/pool"
)

// ErrNotFound reports a key absent in both the cache and the backend.
// Backend read failures collapse into it as well; they are logged but not
// distinguishable by callers.
var ErrNotFound = errors.New("coordinator: key not found")

// Source reports where a read was served from.
type Source int

const (
	SourceCache Source = iota
	SourceStore
)

// Coordinator implements the read-through / write-through / delete-through
// policies over the shared cache and session pool.
type Coordinator struct {
	cache  *cache.LRU
	pool   *pool.Pool
	flight singleflight.Group
	log    *slog.Logger
}

// Option configures the coordinator.
type Option func(*Coordinator)

// WithLogger sets the logger for backend failure diagnostics.
func WithLogger(l *slog.Logger) Option {
	return func(c *Coordinator) {
		if l != nil {
			c.log = l
		}
	}
}

// New creates a coordinator over the given cache and session pool.
func New(lru *cache.LRU, p *pool.Pool, opts ...Option) *Coordinator {
	c := &Coordinator{
		cache: lru,
		pool:  p,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Create durably writes value under key, then installs it in the cache.
// On backend failure the cache is left untouched.
func (c *Coordinator) Create(ctx context.Context, key, value string) error {
	lease := c.pool.Acquire()
	defer lease.Release()

	if err := backend.Upsert(ctx, lease.Conn(), key, value); err != nil {
		c.log.ErrorContext(ctx, "write-through upsert failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return err
	}

	c.cache.Put(key, value)
	return nil
}

// Read returns the value for key, consulting the cache first and falling
// through to the backend on a miss. A backend hit populates the cache before
// returning. Concurrent misses on the same key are collapsed into a single
// backend round trip.
func (c *Coordinator) Read(ctx context.Context, key string) (string, Source, error) {
	if v, ok := c.cache.Get(key); ok {
		return v, SourceCache, nil
	}

	type readResult struct {
		value  string
		source Source
	}

	v, err, _ := c.flight.Do(key, func() (any, error) {
		// A racing writer may have filled the cache while this call waited
		// its turn in the flight group.
		if v, ok := c.cache.Get(key); ok {
			return readResult{value: v, source: SourceCache}, nil
		}

		lease := c.pool.Acquire()
		defer lease.Release()

		value, found, err := backend.Lookup(ctx, lease.Conn(), key)
		if err != nil {
			c.log.WarnContext(ctx, "read-through lookup failed, reporting not found",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
			return nil, ErrNotFound
		}
		if !found {
			return nil, ErrNotFound
		}

		c.cache.Put(key, value)
		return readResult{value: value, source: SourceStore}, nil
	})
	if err != nil {
		return "", SourceStore, err
	}
	r := v.(readResult)
	return r.value, r.source, nil
}

// Delete durably removes key, then drops it from the cache. On backend
// failure the cache is left untouched.
func (c *Coordinator) Delete(ctx context.Context, key string) error {
	lease := c.pool.Acquire()
	defer lease.Release()

	if err := backend.Delete(ctx, lease.Conn(), key); err != nil {
		c.log.ErrorContext(ctx, "delete-through failed",
			slog.String("key", key),
			slog.String("error", err.Error()),
		)
		return err
	}

	c.cache.Remove(key)
	return nil
}

// Status returns a point-in-time snapshot of the cache.
func (c *Coordinator) Status() cache.Snapshot {
	return c.cache.TakeSnapshot()
}
