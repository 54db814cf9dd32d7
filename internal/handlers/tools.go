// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"toolnav/internal/cache"
	"toolnav/internal/models"
)

// ToolsList returns every tool in catalog order, or only the tools tagged
// with ?category=ID.
func (a *API) ToolsList(w http.ResponseWriter, r *http.Request) {
	if categoryID := r.URL.Query().Get("category"); categoryID != "" {
		a.serveCached(w, r, cache.CategoryToolsKey(categoryID), func() any {
			return a.store.ToolsInCategory(categoryID)
		})
		return
	}
	a.serveCached(w, r, cache.KeyTools, func() any { return a.store.Tools() })
}

// FavoritesList returns the enabled favorite tools.
func (a *API) FavoritesList(w http.ResponseWriter, r *http.Request) {
	a.serveCached(w, r, cache.KeyFavorites, func() any { return a.store.FavoriteTools() })
}

// ToolGet returns a single tool.
func (a *API) ToolGet(w http.ResponseWriter, r *http.Request) {
	t, ok := a.store.FindToolByID(chi.URLParam(r, "id"))
	if !ok {
		writeError(w, http.StatusNotFound, "tool not found")
		return
	}
	writeJSON(w, http.StatusOK, t)
}

// ToolCreate appends a new tool to the catalog.
func (a *API) ToolCreate(w http.ResponseWriter, r *http.Request) {
	var in models.NewTool
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateTool(in.Name, in.URL, in.Description, in.Icon, in.Tags); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	t := a.store.AddTool(in)
	a.invalidate(r.Context())
	writeJSON(w, http.StatusCreated, t)
}

// ToolUpdate replaces the tool named by the path. updatedAt is set by the
// server.
func (a *API) ToolUpdate(w http.ResponseWriter, r *http.Request) {
	var t models.Tool
	if err := decodeJSON(w, r, &t); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	t.ID = chi.URLParam(r, "id")
	if msg := validateTool(t.Name, t.URL, t.Description, t.Icon, t.Tags); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}
	if t.ClickCount < 0 {
		writeError(w, http.StatusBadRequest, "Click count must not be negative.")
		return
	}

	updated, err := a.store.UpdateTool(t)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	a.invalidate(r.Context())
	writeJSON(w, http.StatusOK, updated)
}

// ToolDelete removes a tool.
func (a *API) ToolDelete(w http.ResponseWriter, r *http.Request) {
	if err := a.store.DeleteTool(chi.URLParam(r, "id")); err != nil {
		writeStoreError(w, err)
		return
	}
	a.invalidate(r.Context())
	w.WriteHeader(http.StatusNoContent)
}

// favoriteResponse is the body returned by ToolToggleFavorite.
type favoriteResponse struct {
	ID       string `json:"id"`
	Favorite bool   `json:"favorite"`
}

// ToolToggleFavorite flips a tool's favorite flag.
func (a *API) ToolToggleFavorite(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	fav, err := a.store.ToggleFavorite(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	a.invalidate(r.Context())
	writeJSON(w, http.StatusOK, favoriteResponse{ID: id, Favorite: fav})
}

// clickResponse is the body returned by ToolClick.
type clickResponse struct {
	ID         string `json:"id"`
	ClickCount int    `json:"clickCount"`
}

// ToolClick records one visit of a tool.
func (a *API) ToolClick(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	n, err := a.store.IncrementClickCount(id)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	a.invalidate(r.Context())
	writeJSON(w, http.StatusOK, clickResponse{ID: id, ClickCount: n})
}

// reorderRequest is the body accepted by ToolsReorder.
type reorderRequest struct {
	IDs []string `json:"ids"`
}

// ToolsReorder rebuilds the tool list in the requested order. Tools left
// out of ids are removed and reported as dropped.
func (a *API) ToolsReorder(w http.ResponseWriter, r *http.Request) {
	var req reorderRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.IDs == nil {
		writeError(w, http.StatusBadRequest, "ids is required.")
		return
	}

	res := a.store.ReorderTools(req.IDs)
	a.invalidate(r.Context())
	writeJSON(w, http.StatusOK, res)
}
