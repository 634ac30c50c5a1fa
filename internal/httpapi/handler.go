// Package httpapi exposes the key-value store over HTTP: create, read, and
// delete operations plus a plain-text cache status page.
package httpapi

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/kvstored/kvstored/internal"
	"github.com/kvstored/kvstored/internal/cache"
	"github.com/kvstored/kvstored/internal/coordinator"
)

// Store is the coordinator surface the HTTP handlers consume.
type Store interface {
	Create(ctx context.Context, key, value string) error
	Read(ctx context.Context, key string) (string, coordinator.Source, error)
	Delete(ctx context.Context, key string) error
	Status() cache.Snapshot
}

// Handler routes the store's HTTP surface.
type Handler struct {
	store Store

	// Write parameters are accepted from the form body or the query string,
	// matching what load generators and curl both send.
	keyField   internal.Extractor
	valueField internal.Extractor
}

// NewHandler creates the HTTP handler over the given store.
func NewHandler(store Store) *Handler {
	return &Handler{
		store:      store,
		keyField:   internal.NewExtractor(internal.FromForm("key"), internal.FromQuery("key")),
		valueField: internal.NewExtractor(internal.FromForm("value"), internal.FromQuery("value")),
	}
}

func (h *Handler) Routes(r internal.Router) {
	r.POST("/create", h.create)
	r.GET("/read", h.read)
	r.DELETE("/delete", h.delete)
	r.GET("/cache-status", h.cacheStatus)
}

func (h *Handler) create(c internal.Context) error {
	key, okKey := h.keyField.Extract(c)
	value, okValue := h.valueField.Extract(c)
	if !okKey || !okValue {
		return internal.ErrBadRequest("Missing 'key' or 'value' parameters")
	}

	if err := h.store.Create(c, key, value); err != nil {
		return internal.ErrInternal("Database operation failed", internal.WithError(err))
	}

	return c.String(http.StatusOK, "Successfully created/updated key: "+key)
}

func (h *Handler) read(c internal.Context) error {
	key := c.Query("key")
	if key == "" {
		return internal.ErrBadRequest("Missing 'key' parameter")
	}

	value, source, err := h.store.Read(c, key)
	if err != nil {
		return internal.ErrNotFound("Key not found", internal.WithError(err))
	}

	if source == coordinator.SourceCache {
		return c.String(http.StatusOK, "Value (from cache): "+value)
	}
	return c.String(http.StatusOK, "Value (from DB): "+value)
}

func (h *Handler) delete(c internal.Context) error {
	key := c.Query("key")
	if key == "" {
		return internal.ErrBadRequest("Missing 'key' parameter")
	}

	if err := h.store.Delete(c, key); err != nil {
		return internal.ErrInternal("Database operation failed", internal.WithError(err))
	}

	return c.String(http.StatusOK, "Successfully deleted key: "+key)
}

func (h *Handler) cacheStatus(c internal.Context) error {
	snap := h.store.Status()

	var sb strings.Builder
	sb.WriteString("--- Cache Status ---\n")
	fmt.Fprintf(&sb, "Occupied: %d / %d\n", snap.CurrentSize, snap.MaxSize)
	sb.WriteString("\n--- Items (MRU to LRU) ---\n")

	if len(snap.Entries) == 0 {
		sb.WriteString("(Cache is empty)\n")
	} else {
		for i, entry := range snap.Entries {
			fmt.Fprintf(&sb, "%d. Key: '%s', Value: '%s'\n", i+1, entry.Key, entry.Value)
		}
	}

	return c.String(http.StatusOK, sb.String())
}
