// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package handlers contains the JSON HTTP handlers for the tool catalog.
// Handlers receive their dependencies through the API struct and translate
// catalog errors into HTTP status codes.
package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"sync/atomic"

	"toolnav/internal/cache"
	"toolnav/internal/catalog"
	"toolnav/internal/seed"
)

// maxBodyBytes caps request bodies accepted by the JSON endpoints.
const maxBodyBytes = 1 << 20

// ResponseCache stores rendered listing bodies. *cache.ResponseCache
// satisfies it.
type ResponseCache interface {
	Get(ctx context.Context, key string) ([]byte, bool)
	Set(ctx context.Context, key string, body []byte)
	InvalidateAll(ctx context.Context)
}

// API groups the catalog HTTP handlers and their dependencies.
type API struct {
	store  *catalog.Store
	cache  ResponseCache
	source seed.Source

	// gen is bumped on every mutation and versions cache keys, so a body
	// rendered before a mutation is never stored under a key read after it.
	gen atomic.Uint64
}

// NewAPI creates the handler group. rc may be nil to disable response
// caching; source is what POST /api/reset reloads from.
func NewAPI(store *catalog.Store, rc ResponseCache, source seed.Source) *API {
	return &API{store: store, cache: rc, source: source}
}

// errorResponse is the body of every non-2xx answer.
type errorResponse struct {
	Error string `json:"error"`
}

// writeJSON encodes data with the given status code.
func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

// writeError sends a JSON error body.
func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeStoreError maps a catalog error to its HTTP status.
func writeStoreError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalog.ErrNotFound):
		writeError(w, http.StatusNotFound, err.Error())
	case errors.Is(err, catalog.ErrInvalidParent), errors.Is(err, catalog.ErrDuplicateID):
		writeError(w, http.StatusUnprocessableEntity, err.Error())
	default:
		slog.Error("catalog operation failed", "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
	}
}

// decodeJSON reads a size-limited JSON body into dst.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return fmt.Errorf("invalid JSON body: %w", err)
	}
	return nil
}

// versionedKey scopes key to the current store generation.
func (a *API) versionedKey(key string) string {
	return key + ":v" + strconv.FormatUint(a.gen.Load(), 10)
}

// serveCached writes the listing stored under key, rendering it with
// build and caching the result on a miss. The generation is read before
// build runs, so a listing that races a mutation is filed under the stale
// generation.
func (a *API) serveCached(w http.ResponseWriter, r *http.Request, key string, build func() any) {
	ctx := r.Context()
	key = a.versionedKey(key)
	if a.cache != nil {
		if body, ok := a.cache.Get(ctx, key); ok {
			w.Header().Set("Content-Type", "application/json; charset=utf-8")
			w.Header().Set("X-Cache", "HIT")
			w.Write(body)
			return
		}
	}

	body, err := json.Marshal(build())
	if err != nil {
		slog.Error("encode listing failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "Internal Server Error")
		return
	}
	body = append(body, '\n')

	if a.cache != nil {
		a.cache.Set(ctx, key, body)
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.Header().Set("X-Cache", "MISS")
	w.Write(body)
}

// invalidate retires cached listings after a successful mutation.
func (a *API) invalidate(ctx context.Context) {
	a.gen.Add(1)
	if a.cache != nil {
		a.cache.InvalidateAll(ctx)
	}
}

// Stats reports catalog counters.
func (a *API) Stats(w http.ResponseWriter, r *http.Request) {
	a.serveCached(w, r, cache.KeyStats, func() any { return a.store.Stats() })
}

// Reset reloads the catalog from the configured seed source, discarding
// every change made since startup.
func (a *API) Reset(w http.ResponseWriter, r *http.Request) {
	d, err := a.source.Load(r.Context())
	if err != nil {
		slog.Error("reload seed source failed", "source", a.source.Name(), "error", err)
		writeError(w, http.StatusInternalServerError, "could not reload catalog")
		return
	}

	a.store.Reset(d)
	a.invalidate(r.Context())
	slog.Info("catalog reloaded", "source", a.source.Name())

	writeJSON(w, http.StatusOK, a.store.Stats())
}
