// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"toolnav/internal/cache"
	"toolnav/internal/catalog"
	"toolnav/internal/models"
	"toolnav/internal/seed"
)

func TestWriteStoreError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"not found", fmt.Errorf("tool x: %w", catalog.ErrNotFound), http.StatusNotFound},
		{"invalid parent", fmt.Errorf("add: %w", catalog.ErrInvalidParent), http.StatusUnprocessableEntity},
		{"duplicate id", fmt.Errorf("update: %w", catalog.ErrDuplicateID), http.StatusUnprocessableEntity},
		{"other", errSourceDown, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := httptest.NewRecorder()
			writeStoreError(rec, tt.err)
			assertStatus(t, rec, tt.want)
			body := decodeBody[errorResponse](t, rec)
			if body.Error == "" {
				t.Error("error body is empty")
			}
		})
	}
}

func TestListingCache(t *testing.T) {
	env := newTestEnv(t)

	rec := httptest.NewRecorder()
	env.API.ToolsList(rec, jsonRequest(t, http.MethodGet, "/api/tools", nil))
	assertStatus(t, rec, http.StatusOK)
	if got := rec.Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("first request X-Cache: got %q, want MISS", got)
	}

	rec = httptest.NewRecorder()
	env.API.ToolsList(rec, jsonRequest(t, http.MethodGet, "/api/tools", nil))
	if got := rec.Header().Get("X-Cache"); got != "HIT" {
		t.Errorf("second request X-Cache: got %q, want HIT", got)
	}
	if got := len(decodeBody[[]models.Tool](t, rec)); got != 5 {
		t.Errorf("cached tools: got %d, want 5", got)
	}

	t.Run("mutation invalidates", func(t *testing.T) {
		rec := httptest.NewRecorder()
		env.API.ToolClick(rec, withChiURLParam(jsonRequest(t, http.MethodPost, "/api/tools/1/click", nil), "id", "1"))
		assertStatus(t, rec, http.StatusOK)
		if env.Cache.Invalidations() != 1 {
			t.Errorf("invalidations: got %d, want 1", env.Cache.Invalidations())
		}

		rec = httptest.NewRecorder()
		env.API.ToolsList(rec, jsonRequest(t, http.MethodGet, "/api/tools", nil))
		if got := rec.Header().Get("X-Cache"); got != "MISS" {
			t.Errorf("after mutation X-Cache: got %q, want MISS", got)
		}
		tools := decodeBody[[]models.Tool](t, rec)
		if tools[0].ClickCount != 121 {
			t.Errorf("click count: got %d, want 121", tools[0].ClickCount)
		}
	})

	t.Run("failed mutation keeps cache", func(t *testing.T) {
		before := env.Cache.Invalidations()
		rec := httptest.NewRecorder()
		env.API.ToolClick(rec, withChiURLParam(jsonRequest(t, http.MethodPost, "/api/tools/nope/click", nil), "id", "nope"))
		assertStatus(t, rec, http.StatusNotFound)
		if env.Cache.Invalidations() != before {
			t.Error("failed mutation invalidated the cache")
		}
	})
}

// TestListingCacheMutationDuringRender covers a mutation that lands after a
// listing was rendered but before it was stored.
func TestListingCacheMutationDuringRender(t *testing.T) {
	env := newTestEnv(t)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	rec := httptest.NewRecorder()
	env.API.serveCached(rec, jsonRequest(t, http.MethodGet, "/api/stats", nil), cache.KeyStats, func() any {
		st := env.Store.Stats()
		if err := env.Store.DeleteTool("1"); err != nil {
			t.Fatalf("DeleteTool: %v", err)
		}
		env.API.invalidate(ctx)
		return st
	})
	assertStatus(t, rec, http.StatusOK)
	if got := decodeBody[catalog.Stats](t, rec).Tools; got != 5 {
		t.Fatalf("render tools: got %d, want 5", got)
	}

	rec = httptest.NewRecorder()
	env.API.Stats(rec, jsonRequest(t, http.MethodGet, "/api/stats", nil))
	if got := rec.Header().Get("X-Cache"); got != "MISS" {
		t.Errorf("X-Cache: got %q, want MISS", got)
	}
	if got := decodeBody[catalog.Stats](t, rec).Tools; got != 4 {
		t.Errorf("tools: got %d, want 4", got)
	}
}

func TestNilCache(t *testing.T) {
	store := catalog.New(catalog.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	store.InitializeData()
	api := NewAPI(store, nil, seed.BuiltinSource{})

	rec := httptest.NewRecorder()
	api.CategoriesList(rec, jsonRequest(t, http.MethodGet, "/api/categories", nil))
	assertStatus(t, rec, http.StatusOK)
	if got := len(decodeBody[[]models.Category](t, rec)); got != 4 {
		t.Errorf("root categories: got %d, want 4", got)
	}

	rec = httptest.NewRecorder()
	api.ToolDelete(rec, withChiURLParam(jsonRequest(t, http.MethodDelete, "/api/tools/1", nil), "id", "1"))
	assertStatus(t, rec, http.StatusNoContent)
}

func TestStats(t *testing.T) {
	env := newTestEnv(t)
	rec := httptest.NewRecorder()
	env.API.Stats(rec, jsonRequest(t, http.MethodGet, "/api/stats", nil))
	assertStatus(t, rec, http.StatusOK)

	got := decodeBody[catalog.Stats](t, rec)
	want := catalog.Stats{Categories: 9, Tools: 5, Favorites: 2, TotalClicks: 400}
	if got != want {
		t.Errorf("stats: got %+v, want %+v", got, want)
	}
}

func TestReset(t *testing.T) {
	t.Run("reloads source wholesale", func(t *testing.T) {
		env := newTestEnv(t)
		env.API.source = stubSource{data: seed.Data{
			Tools: []models.Tool{{ID: "only", Name: "Only"}},
		}}

		rec := httptest.NewRecorder()
		env.API.Reset(rec, jsonRequest(t, http.MethodPost, "/api/reset", nil))
		assertStatus(t, rec, http.StatusOK)

		if got := decodeBody[catalog.Stats](t, rec); got.Tools != 1 || got.Categories != 0 {
			t.Errorf("stats after reset: %+v", got)
		}
		if len(env.Store.Categories()) != 0 {
			t.Error("categories survived reset")
		}
		if env.Cache.Invalidations() != 1 {
			t.Errorf("invalidations: got %d, want 1", env.Cache.Invalidations())
		}
	})

	t.Run("source failure keeps state", func(t *testing.T) {
		env := newTestEnv(t)
		env.API.source = stubSource{err: errSourceDown}

		rec := httptest.NewRecorder()
		env.API.Reset(rec, jsonRequest(t, http.MethodPost, "/api/reset", nil))
		assertStatus(t, rec, http.StatusInternalServerError)
		if got := len(env.Store.Tools()); got != 5 {
			t.Errorf("tools: got %d, want 5", got)
		}
	})

	t.Run("undoes mutations", func(t *testing.T) {
		env := newTestEnv(t)
		env.Store.DeleteTool("1")

		rec := httptest.NewRecorder()
		env.API.Reset(rec, jsonRequest(t, http.MethodPost, "/api/reset", nil))
		assertStatus(t, rec, http.StatusOK)
		if _, ok := env.Store.FindToolByID("1"); !ok {
			t.Error("deleted tool not restored")
		}
	})
}

// TestValkeyResponseCache runs the listing cache against a real Valkey.
func TestValkeyResponseCache(t *testing.T) {
	vk := testValkeyClient(t)
	store := catalog.New(catalog.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	store.InitializeData()
	api := NewAPI(store, cache.NewResponseCache(vk, time.Minute), seed.BuiltinSource{})

	get := func() *httptest.ResponseRecorder {
		rec := httptest.NewRecorder()
		api.FavoritesList(rec, jsonRequest(t, http.MethodGet, "/api/tools/favorites", nil))
		assertStatus(t, rec, http.StatusOK)
		return rec
	}

	get()
	if rec := get(); rec.Header().Get("X-Cache") != "HIT" {
		t.Errorf("X-Cache: got %q, want HIT", rec.Header().Get("X-Cache"))
	}

	rec := httptest.NewRecorder()
	api.ToolToggleFavorite(rec, withChiURLParam(jsonRequest(t, http.MethodPost, "/api/tools/2/favorite", nil), "id", "2"))
	assertStatus(t, rec, http.StatusOK)

	after := get()
	if after.Header().Get("X-Cache") != "MISS" {
		t.Errorf("X-Cache after toggle: got %q, want MISS", after.Header().Get("X-Cache"))
	}
	if got := len(decodeBody[[]models.Tool](t, after)); got != 3 {
		t.Errorf("favorites: got %d, want 3", got)
	}
}
