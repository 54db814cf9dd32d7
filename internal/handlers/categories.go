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

// CategoriesList returns the whole category forest.
func (a *API) CategoriesList(w http.ResponseWriter, r *http.Request) {
	a.serveCached(w, r, cache.KeyCategories, func() any { return a.store.Categories() })
}

// CategoryGet returns one category, searched at any depth.
func (a *API) CategoryGet(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	c, ok := a.store.FindCategoryByID(id)
	if !ok {
		writeError(w, http.StatusNotFound, "category not found")
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// CategoryCreate adds a category at the root or under parentId.
func (a *API) CategoryCreate(w http.ResponseWriter, r *http.Request) {
	var in models.NewCategory
	if err := decodeJSON(w, r, &in); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if msg := validateCategory(in.Name); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	c, err := a.store.AddCategory(in)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	a.invalidate(r.Context())
	writeJSON(w, http.StatusCreated, c)
}

// CategoryUpdate replaces the category named by the path. The body's id is
// ignored and its children, if any, replace the stored subtree.
func (a *API) CategoryUpdate(w http.ResponseWriter, r *http.Request) {
	var c models.Category
	if err := decodeJSON(w, r, &c); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c.ID = chi.URLParam(r, "id")
	if msg := validateCategory(c.Name); msg != "" {
		writeError(w, http.StatusBadRequest, msg)
		return
	}

	updated, err := a.store.UpdateCategory(c)
	if err != nil {
		writeStoreError(w, err)
		return
	}
	a.invalidate(r.Context())

	writeJSON(w, http.StatusOK, updated)
}

// CategoryDelete removes a category subtree and strips its id from every
// tool.
func (a *API) CategoryDelete(w http.ResponseWriter, r *http.Request) {
	err := a.store.DeleteCategory(chi.URLParam(r, "id"))
	// Tools are cleaned even when the category was already gone.
	a.invalidate(r.Context())
	if err != nil {
		writeStoreError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
